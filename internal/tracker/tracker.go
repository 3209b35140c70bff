// Package tracker owns the in-memory day sequence and routes every change
// through the sync queue.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hakanduyar/goal-compass-daily/internal/constants"
	"github.com/hakanduyar/goal-compass-daily/internal/logger"
	"github.com/hakanduyar/goal-compass-daily/internal/models"
	"github.com/hakanduyar/goal-compass-daily/internal/offline"
	"github.com/hakanduyar/goal-compass-daily/internal/program"
	"github.com/hakanduyar/goal-compass-daily/internal/storage"
)

type Tracker struct {
	cfg    program.Config
	local  *storage.Local
	syncer *offline.Syncer

	mu       sync.RWMutex
	days     []models.ProgramDay
	selected int
}

func New(cfg program.Config, local *storage.Local, syncer *offline.Syncer) *Tracker {
	return &Tracker{
		cfg:      cfg,
		local:    local,
		syncer:   syncer,
		selected: -1,
	}
}

// Load reads the stored program. When nothing usable is stored a fresh
// program is generated and saved as a create.
func (t *Tracker) Load(ctx context.Context) error {
	days := t.local.LoadProgramData()
	if len(days) > 0 {
		t.mu.Lock()
		t.days = days
		t.mu.Unlock()
		logger.Debug("Program loaded", "days", len(days))
		return nil
	}

	logger.Info("No stored program, generating", "start", t.cfg.Start.Format(constants.DateFormat))
	return t.replace(ctx, program.Generate(t.cfg))
}

func (t *Tracker) replace(ctx context.Context, days []models.ProgramDay) error {
	return t.Apply(ctx, models.ReplaceProgram{Days: days})
}

// Apply runs a mutation against a copy of the program. The copy only becomes
// current after it was persisted, even when queueing it for sync then fails.
func (t *Tracker) Apply(ctx context.Context, m models.Mutation) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	next, err := m.Apply(t.days)
	if err != nil {
		return err
	}
	if err := t.syncer.Save(ctx, next, m.Index(), m.Action()); err != nil {
		if errors.Is(err, offline.ErrNotQueued) {
			t.days = next
			logger.Error("Change saved but not queued for sync", "action", m.Action(), "error", err)
		}
		return fmt.Errorf("failed to save program: %w", err)
	}
	t.days = next
	return nil
}

// Reset drops every stored key and starts the program over.
func (t *Tracker) Reset(ctx context.Context) error {
	if err := t.local.ClearAll(); err != nil {
		return err
	}
	t.mu.Lock()
	t.days = nil
	t.selected = -1
	t.mu.Unlock()
	return t.replace(ctx, program.Generate(t.cfg))
}

func (t *Tracker) Days() []models.ProgramDay {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return models.CloneDays(t.days)
}

func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.days)
}

func (t *Tracker) Config() program.Config {
	return t.cfg
}

func (t *Tracker) Select(idx int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if idx < 0 || idx >= len(t.days) {
		return fmt.Errorf("%w: %d", models.ErrDayOutOfRange, idx+1)
	}
	t.selected = idx
	return nil
}

// Selected returns the selected index, or -1.
func (t *Tracker) Selected() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.selected
}

func (t *Tracker) SelectedNote() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return program.NoteFor(t.days, t.selected)
}

// Resolve turns a user day reference into an index.
func (t *Tracker) Resolve(ref string) (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return program.ResolveDay(t.cfg, t.days, ref)
}

func (t *Tracker) Stats() program.Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return program.CalculateStats(t.days)
}

func (t *Tracker) Streak() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return program.CalculateStreak(t.days)
}

func (t *Tracker) Motivation() program.MotivationTier {
	return program.Tier(t.Stats())
}

func (t *Tracker) Filter(f constants.DayFilter) []program.IndexedDay {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return program.FilterDays(t.days, f)
}

func (t *Tracker) Series() []program.SeriesPoint {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return program.TransferPlusSeries(t.days)
}

func (t *Tracker) Syncer() *offline.Syncer {
	return t.syncer
}
