package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type SyncAction string

const (
	SyncActionCreate SyncAction = "create"
	SyncActionUpdate SyncAction = "update"
	SyncActionDelete SyncAction = "delete"
)

func (a SyncAction) Valid() bool {
	switch a {
	case SyncActionCreate, SyncActionUpdate, SyncActionDelete:
		return true
	}
	return false
}

// PendingSyncItem is a mutation recorded while offline, waiting to be pushed.
// Data holds a single ProgramDay when DayIndex is set, the full sequence otherwise.
type PendingSyncItem struct {
	ID        string          `json:"id"`
	Action    SyncAction      `json:"action"`
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"` // epoch ms
	DayIndex  *int            `json:"dayIndex,omitempty"`
}

// NewPendingSyncItem snapshots either days[*dayIndex] or the whole sequence.
// IDs are UUIDv7 so they sort by creation time.
func NewPendingSyncItem(action SyncAction, days []ProgramDay, dayIndex *int, now time.Time) (PendingSyncItem, error) {
	if !action.Valid() {
		return PendingSyncItem{}, fmt.Errorf("invalid sync action %q", action)
	}

	var snapshot interface{} = days
	if dayIndex != nil {
		if *dayIndex < 0 || *dayIndex >= len(days) {
			return PendingSyncItem{}, fmt.Errorf("%w: %d", ErrDayOutOfRange, *dayIndex)
		}
		snapshot = days[*dayIndex]
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return PendingSyncItem{}, fmt.Errorf("failed to serialize sync snapshot: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return PendingSyncItem{}, fmt.Errorf("failed to generate sync item id: %w", err)
	}

	item := PendingSyncItem{
		ID:        id.String(),
		Action:    action,
		Data:      data,
		Timestamp: now.UnixMilli(),
	}
	if dayIndex != nil {
		idx := *dayIndex
		item.DayIndex = &idx
	}
	return item, nil
}

// Day decodes a single-day snapshot.
func (p PendingSyncItem) Day() (ProgramDay, error) {
	if p.DayIndex == nil {
		return ProgramDay{}, fmt.Errorf("sync item %s holds the full sequence", p.ID)
	}
	var d ProgramDay
	if err := json.Unmarshal(p.Data, &d); err != nil {
		return ProgramDay{}, fmt.Errorf("failed to decode sync item %s: %w", p.ID, err)
	}
	return d, nil
}

// Days decodes a full-sequence snapshot.
func (p PendingSyncItem) Days() ([]ProgramDay, error) {
	if p.DayIndex != nil {
		return nil, fmt.Errorf("sync item %s holds a single day", p.ID)
	}
	var days []ProgramDay
	if err := json.Unmarshal(p.Data, &days); err != nil {
		return nil, fmt.Errorf("failed to decode sync item %s: %w", p.ID, err)
	}
	return days, nil
}

// CreatedAt returns the item timestamp as a time.Time.
func (p PendingSyncItem) CreatedAt() time.Time {
	return time.UnixMilli(p.Timestamp)
}
