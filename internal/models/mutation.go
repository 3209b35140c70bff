package models

import (
	"fmt"
	"math"
)

// Mutation is a single typed edit of the day sequence.
// Apply never modifies its input; it returns an updated copy.
type Mutation interface {
	Apply(days []ProgramDay) ([]ProgramDay, error)
	// Action is the kind recorded on the pending-sync item.
	Action() SyncAction
	// Index is the affected day, or nil when the whole sequence changes.
	Index() *int
}

type SetBootcampDone struct {
	Day  int
	Done bool
}

type SetSportDone struct {
	Day  int
	Done bool
}

type SetTransferPlusDone struct {
	Day  int
	Done bool
}

// SetTransferPlusValue logs hours for a day. A nil Hours clears the value.
type SetTransferPlusValue struct {
	Day   int
	Hours *float64
}

// ReplaceProgram swaps the whole sequence, e.g. after regeneration.
type ReplaceProgram struct {
	Days []ProgramDay
}

func editDay(days []ProgramDay, idx int, fn func(d *ProgramDay) error) ([]ProgramDay, error) {
	if idx < 0 || idx >= len(days) {
		return nil, fmt.Errorf("%w: %d (program has %d days)", ErrDayOutOfRange, idx, len(days))
	}
	out := CloneDays(days)
	if err := fn(&out[idx]); err != nil {
		return nil, err
	}
	return out, nil
}

func (m SetBootcampDone) Apply(days []ProgramDay) ([]ProgramDay, error) {
	return editDay(days, m.Day, func(d *ProgramDay) error {
		if m.Done && !d.Bootcamp.IsApplicable() {
			return fmt.Errorf("bootcamp on %s: %w", d.Date, ErrNotApplicable)
		}
		d.BootcampDone = m.Done
		return nil
	})
}

func (m SetSportDone) Apply(days []ProgramDay) ([]ProgramDay, error) {
	return editDay(days, m.Day, func(d *ProgramDay) error {
		if m.Done && !d.Sport.IsApplicable() {
			return fmt.Errorf("sport on %s: %w", d.Date, ErrNotApplicable)
		}
		d.SportDone = m.Done
		return nil
	})
}

func (m SetTransferPlusDone) Apply(days []ProgramDay) ([]ProgramDay, error) {
	return editDay(days, m.Day, func(d *ProgramDay) error {
		if d.TransferPlus == TransferHoliday {
			return fmt.Errorf("%s: %w", d.Date, ErrTransferPlusLocked)
		}
		d.TransferPlusDone = m.Done
		return nil
	})
}

func (m SetTransferPlusValue) Apply(days []ProgramDay) ([]ProgramDay, error) {
	return editDay(days, m.Day, func(d *ProgramDay) error {
		if d.TransferPlus == TransferHoliday {
			return fmt.Errorf("%s: %w", d.Date, ErrTransferPlusLocked)
		}
		if m.Hours == nil {
			d.TransferPlusValue = nil
			return nil
		}
		h := *m.Hours
		if math.IsNaN(h) || math.IsInf(h, 0) {
			return fmt.Errorf("invalid hours value %v", h)
		}
		if h < 0 {
			return fmt.Errorf("%v: %w", h, ErrNegativeHours)
		}
		d.TransferPlusValue = &h
		return nil
	})
}

func (m ReplaceProgram) Apply(_ []ProgramDay) ([]ProgramDay, error) {
	return CloneDays(m.Days), nil
}

func (m SetBootcampDone) Action() SyncAction { return SyncActionUpdate }
func (m SetSportDone) Action() SyncAction { return SyncActionUpdate }
func (m SetTransferPlusDone) Action() SyncAction { return SyncActionUpdate }
func (m SetTransferPlusValue) Action() SyncAction { return SyncActionUpdate }
func (m ReplaceProgram) Action() SyncAction { return SyncActionCreate }

func (m SetBootcampDone) Index() *int { return intPtr(m.Day) }
func (m SetSportDone) Index() *int { return intPtr(m.Day) }
func (m SetTransferPlusDone) Index() *int { return intPtr(m.Day) }
func (m SetTransferPlusValue) Index() *int { return intPtr(m.Day) }
func (m ReplaceProgram) Index() *int { return nil }

func intPtr(i int) *int { return &i }
