package days

import (
	"context"
	"errors"
	"fmt"

	"github.com/hakanduyar/goal-compass-daily/internal/cli"
	"github.com/hakanduyar/goal-compass-daily/internal/logger"
	"github.com/hakanduyar/goal-compass-daily/internal/models"
	"github.com/hakanduyar/goal-compass-daily/internal/offline"
)

type MarkCmd struct {
	Day      string `arg:"" help:"Day number (1-40), YYYY-MM-DD, label like '11 Haz', or 'today'."`
	Activity string `arg:"" help:"Which activity: bootcamp, sport or transfer." enum:"bootcamp,sport,transfer"`
	Undo     bool   `help:"Mark as not done."`
}

func (c *MarkCmd) Run(ctx *cli.Context) error {
	lock, err := ctx.AcquireSession()
	if err != nil {
		return err
	}
	defer lock.Release()

	bg := context.Background()
	tr, err := ctx.Tracker(bg)
	if err != nil {
		return err
	}
	idx, err := tr.Resolve(c.Day)
	if err != nil {
		return err
	}

	done := !c.Undo
	var m models.Mutation
	switch c.Activity {
	case "bootcamp":
		m = models.SetBootcampDone{Day: idx, Done: done}
	case "sport":
		m = models.SetSportDone{Day: idx, Done: done}
	case "transfer":
		m = models.SetTransferPlusDone{Day: idx, Done: done}
	default:
		return fmt.Errorf("unknown activity %q", c.Activity)
	}

	if err := tr.Apply(bg, m); err != nil {
		return err
	}

	state := "done"
	if c.Undo {
		state = "not done"
	}
	ctx.Printf("✓ %s %s marked %s\n", tr.Days()[idx].Date, c.Activity, state)
	syncAfterChange(bg, ctx, tr.Syncer())
	return nil
}

// syncAfterChange drains the queue once when online, otherwise it says the change waits.
func syncAfterChange(bg context.Context, ctx *cli.Context, s *offline.Syncer) {
	if !s.Online() {
		ctx.Println("  offline: change queued for sync")
		return
	}
	if err := s.SyncIfNeeded(bg); err != nil && !errors.Is(err, offline.ErrSyncInProgress) {
		logger.Warn("Sync after change failed", "error", err)
		ctx.Printf("  sync failed, %d change(s) still queued\n", s.PendingCount())
	}
}
