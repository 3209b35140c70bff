package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/hakanduyar/goal-compass-daily/internal/constants"
	"github.com/hakanduyar/goal-compass-daily/internal/logger"
	"github.com/hakanduyar/goal-compass-daily/internal/models"
)

// Local persists the program, the pending-sync queue and the last sync time.
// Save paths return errors; load paths log and degrade to "nothing stored".
type Local struct {
	backend Backend
	mu      sync.Mutex
}

func NewLocal(backend Backend) *Local {
	return &Local{backend: backend}
}

func (l *Local) Backend() Backend {
	return l.backend
}

func (l *Local) SaveProgramData(days []models.ProgramDay) error {
	data, err := json.Marshal(days)
	if err != nil {
		return fmt.Errorf("failed to serialize program data: %w", err)
	}
	if err := l.backend.Set(constants.KeyProgramData, string(data)); err != nil {
		return fmt.Errorf("failed to save program data: %w", err)
	}
	logger.Debug("Program data saved", "days", len(days))
	return nil
}

// LoadProgramData returns nil when nothing usable is stored.
func (l *Local) LoadProgramData() []models.ProgramDay {
	raw, err := l.backend.Get(constants.KeyProgramData)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("Failed to load program data", "error", err)
		}
		return nil
	}

	var days []models.ProgramDay
	if err := json.Unmarshal([]byte(raw), &days); err != nil {
		logger.Warn("Stored program data is corrupt, ignoring it", "error", err)
		return nil
	}
	return days
}

func (l *Local) AddPendingSync(item models.PendingSyncItem) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	queue := l.pendingSync()
	queue = append(queue, item)

	data, err := json.Marshal(queue)
	if err != nil {
		return fmt.Errorf("failed to serialize pending sync queue: %w", err)
	}
	if err := l.backend.Set(constants.KeyPendingSync, string(data)); err != nil {
		return fmt.Errorf("failed to save pending sync queue: %w", err)
	}
	logger.Debug("Queued offline change", "id", item.ID, "action", item.Action, "items", len(queue))
	return nil
}

// GetPendingSync returns the queue in insertion order, or an empty slice.
func (l *Local) GetPendingSync() []models.PendingSyncItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pendingSync()
}

func (l *Local) pendingSync() []models.PendingSyncItem {
	raw, err := l.backend.Get(constants.KeyPendingSync)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("Failed to load pending sync queue", "error", err)
		}
		return []models.PendingSyncItem{}
	}

	var queue []models.PendingSyncItem
	if err := json.Unmarshal([]byte(raw), &queue); err != nil {
		logger.Warn("Stored pending sync queue is corrupt, ignoring it", "error", err)
		return []models.PendingSyncItem{}
	}
	if queue == nil {
		queue = []models.PendingSyncItem{}
	}
	return queue
}

func (l *Local) ClearPendingSync() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.backend.Delete(constants.KeyPendingSync); err != nil {
		return fmt.Errorf("failed to clear pending sync queue: %w", err)
	}
	return nil
}

// RemovePendingSync drops the given items and keeps anything queued since.
func (l *Local) RemovePendingSync(ids []string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	done := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		done[id] = struct{}{}
	}

	var remaining []models.PendingSyncItem
	for _, item := range l.pendingSync() {
		if _, ok := done[item.ID]; !ok {
			remaining = append(remaining, item)
		}
	}

	if len(remaining) == 0 {
		if err := l.backend.Delete(constants.KeyPendingSync); err != nil {
			return fmt.Errorf("failed to clear pending sync queue: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(remaining)
	if err != nil {
		return fmt.Errorf("failed to serialize pending sync queue: %w", err)
	}
	if err := l.backend.Set(constants.KeyPendingSync, string(data)); err != nil {
		return fmt.Errorf("failed to save pending sync queue: %w", err)
	}
	return nil
}

// SetLastSync stores t as epoch milliseconds.
func (l *Local) SetLastSync(t time.Time) error {
	if err := l.backend.Set(constants.KeyLastSync, strconv.FormatInt(t.UnixMilli(), 10)); err != nil {
		return fmt.Errorf("failed to save last sync time: %w", err)
	}
	return nil
}

func (l *Local) GetLastSync() *time.Time {
	raw, err := l.backend.Get(constants.KeyLastSync)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("Failed to load last sync time", "error", err)
		}
		return nil
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.Warn("Stored last sync time is corrupt, ignoring it", "value", raw, "error", err)
		return nil
	}
	t := time.UnixMilli(ms)
	return &t
}

// ClearAll removes the program, the queue and the last sync time.
func (l *Local) ClearAll() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.backend.Delete(constants.KeyProgramData, constants.KeyPendingSync, constants.KeyLastSync); err != nil {
		return fmt.Errorf("failed to clear local data: %w", err)
	}
	logger.Info("Local data cleared")
	return nil
}

func (l *Local) Settings() (models.Settings, error) {
	return l.backend.GetSettings()
}

func (l *Local) SaveSettings(settings models.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	return l.backend.SaveSettings(settings)
}
