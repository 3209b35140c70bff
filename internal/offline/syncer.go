package offline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hakanduyar/goal-compass-daily/internal/constants"
	"github.com/hakanduyar/goal-compass-daily/internal/logger"
	"github.com/hakanduyar/goal-compass-daily/internal/models"
	"github.com/hakanduyar/goal-compass-daily/internal/network"
	"github.com/hakanduyar/goal-compass-daily/internal/storage"
)

var (
	ErrSyncInProgress = errors.New("sync already in progress")
	// ErrNotQueued means the program was written locally but its sync item was lost.
	ErrNotQueued = errors.New("saved locally but not queued for sync")
)

// Syncer persists every change locally, pushes it when online and queues it
// when offline. Queued items are replayed in order once the network is back.
type Syncer struct {
	local   *storage.Local
	monitor network.Monitor
	pusher  Pusher

	successDelay  time.Duration
	errorDelay    time.Duration
	checkInterval time.Duration
	now           func() time.Time

	mu     sync.Mutex
	status Status
	gen    uint64 // bumped on every transition so stale reset timers are ignored

	subs statusSubs
}

type Option func(*Syncer)

// WithResetDelays overrides how long success and error stay visible.
func WithResetDelays(success, failure time.Duration) Option {
	return func(s *Syncer) {
		s.successDelay = success
		s.errorDelay = failure
	}
}

// WithCheckInterval sets how often Run re-checks the queue without a network event.
func WithCheckInterval(d time.Duration) Option {
	return func(s *Syncer) { s.checkInterval = d }
}

func WithClock(now func() time.Time) Option {
	return func(s *Syncer) { s.now = now }
}

func New(local *storage.Local, monitor network.Monitor, pusher Pusher, opts ...Option) *Syncer {
	s := &Syncer{
		local:         local,
		monitor:       monitor,
		pusher:        pusher,
		successDelay:  constants.SyncSuccessResetDelay,
		errorDelay:    constants.SyncErrorResetDelay,
		checkInterval: constants.ProbeInterval,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save persists days and then either pushes or queues the change. While older
// changes are still queued the new one is queued behind them.
// A failed push is queued instead. A failed enqueue wraps ErrNotQueued; the
// program is already on disk at that point.
func (s *Syncer) Save(ctx context.Context, days []models.ProgramDay, dayIndex *int, action models.SyncAction) error {
	item, err := models.NewPendingSyncItem(action, days, dayIndex, s.now())
	if err != nil {
		return err
	}

	if err := s.local.SaveProgramData(days); err != nil {
		return err
	}

	if s.monitor.IsOnline() {
		if backlog := s.PendingCount(); backlog > 0 {
			logger.Debug("Queueing change behind pending items", "id", item.ID, "pending", backlog)
		} else if err := s.pusher.Push(ctx, item); err != nil {
			logger.Warn("Immediate sync failed, queueing change", "id", item.ID, "error", err)
		} else {
			return nil
		}
	}

	if err := s.local.AddPendingSync(item); err != nil {
		return fmt.Errorf("%w: %w", ErrNotQueued, err)
	}
	return nil
}

// SyncPending replays the queue in FIFO order. The queue is only trimmed and
// the last sync time only updated after every item was pushed.
func (s *Syncer) SyncPending(ctx context.Context) error {
	s.mu.Lock()
	if s.status == StatusSyncing {
		s.mu.Unlock()
		return ErrSyncInProgress
	}
	queue := s.local.GetPendingSync()
	if len(queue) == 0 {
		s.mu.Unlock()
		return nil
	}
	s.transitionLocked(StatusSyncing)
	s.mu.Unlock()

	logger.Info("Syncing offline changes", "items", len(queue))

	ids := make([]string, 0, len(queue))
	for _, item := range queue {
		if err := s.pusher.Push(ctx, item); err != nil {
			s.finish(StatusError, s.errorDelay)
			logger.Error("Sync failed, keeping queue", "id", item.ID, "items", len(queue), "error", err)
			return fmt.Errorf("failed to sync item %s: %w", item.ID, err)
		}
		ids = append(ids, item.ID)
	}

	if err := s.local.RemovePendingSync(ids); err != nil {
		s.finish(StatusError, s.errorDelay)
		return err
	}
	if err := s.local.SetLastSync(s.now()); err != nil {
		s.finish(StatusError, s.errorDelay)
		return err
	}

	s.finish(StatusSuccess, s.successDelay)
	logger.Info("Sync complete", "items", len(ids))
	return nil
}

func (s *Syncer) transitionLocked(next Status) uint64 {
	s.status = next
	s.gen++
	logger.Debug("Sync status changed", "status", next.String())
	s.subs.publish(next)
	return s.gen
}

// finish moves to a terminal status and schedules the return to idle.
func (s *Syncer) finish(status Status, delay time.Duration) {
	s.mu.Lock()
	gen := s.transitionLocked(status)
	s.mu.Unlock()

	time.AfterFunc(delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen == gen {
			s.transitionLocked(StatusIdle)
		}
	})
}

// Run syncs whenever the network is online and the queue is non-empty, until ctx ends.
// A failed replay is not retried until the network state changes again.
func (s *Syncer) Run(ctx context.Context) {
	events, unsubscribe := s.monitor.Subscribe()
	defer unsubscribe()

	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	blocked := s.trySync(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			blocked = s.trySync(ctx)
		case <-ticker.C:
			if !blocked {
				blocked = s.trySync(ctx)
			}
		}
	}
}

// SyncIfNeeded replays the queue once if the network is online and something is queued.
func (s *Syncer) SyncIfNeeded(ctx context.Context) error {
	if !s.monitor.IsOnline() || s.PendingCount() == 0 {
		return nil
	}
	return s.SyncPending(ctx)
}

// trySync reports whether a replay was attempted and failed.
func (s *Syncer) trySync(ctx context.Context) bool {
	err := s.SyncIfNeeded(ctx)
	return err != nil && !errors.Is(err, ErrSyncInProgress)
}

func (s *Syncer) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Syncer) PendingCount() int {
	return len(s.local.GetPendingSync())
}

func (s *Syncer) LastSync() *time.Time {
	return s.local.GetLastSync()
}

// Subscribe streams status transitions; call the returned func to stop.
func (s *Syncer) Subscribe() (<-chan Status, func()) {
	return s.subs.subscribe()
}

func (s *Syncer) Online() bool {
	return s.monitor.IsOnline()
}

func (s *Syncer) NetworkState() network.State {
	return s.monitor.State()
}

// SubscribeNetwork streams connectivity changes of the underlying monitor.
func (s *Syncer) SubscribeNetwork() (<-chan network.State, func()) {
	return s.monitor.Subscribe()
}
