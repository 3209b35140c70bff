package system

import (
	"context"
	"errors"

	"github.com/hakanduyar/goal-compass-daily/internal/cli"
)

type ResetCmd struct {
	Yes bool `help:"Confirm dropping all progress and the sync queue."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		return errors.New("reset drops all progress and queued changes, re-run with --yes to confirm")
	}

	lock, err := ctx.AcquireSession()
	if err != nil {
		return err
	}
	defer lock.Release()

	ctx.PerformAutomaticBackup()

	bg := context.Background()
	tr, err := ctx.Tracker(bg)
	if err != nil {
		return err
	}
	if err := tr.Reset(bg); err != nil {
		return err
	}
	ctx.Printf("✓ Program reset: %d fresh days\n", tr.Len())
	return nil
}
