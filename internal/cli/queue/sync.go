package queue

import (
	"context"
	"errors"

	"github.com/dustin/go-humanize"

	"github.com/hakanduyar/goal-compass-daily/internal/cli"
	"github.com/hakanduyar/goal-compass-daily/internal/offline"
)

type SyncCmd struct {
	Status SyncStatusCmd `cmd:"" help:"Show network state, queued changes and last sync." default:"1"`
	Run    SyncRunCmd    `cmd:"" help:"Replay queued changes now."`
}

type SyncStatusCmd struct{}

func (c *SyncStatusCmd) Run(ctx *cli.Context) error {
	syncer, err := ctx.Syncer(context.Background())
	if err != nil {
		return err
	}

	ctx.Printf("Network:   %s\n", syncer.NetworkState())
	ctx.Printf("Pending:   %d\n", syncer.PendingCount())
	ctx.Printf("Last sync: %s\n", lastSync(syncer))
	return nil
}

type SyncRunCmd struct{}

func (c *SyncRunCmd) Run(ctx *cli.Context) error {
	bg := context.Background()
	syncer, err := ctx.Syncer(bg)
	if err != nil {
		return err
	}

	pending := syncer.PendingCount()
	if pending == 0 {
		ctx.Println("Nothing to sync")
		return nil
	}
	if !syncer.Online() {
		return errors.New("offline: queued changes will sync once the network is back")
	}

	if err := syncer.SyncPending(bg); err != nil {
		return err
	}
	ctx.Printf("✓ Synced %d change(s)\n", pending)
	return nil
}

func lastSync(s *offline.Syncer) string {
	t := s.LastSync()
	if t == nil {
		return "never"
	}
	return humanize.Time(*t)
}
