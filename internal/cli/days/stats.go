package days

import (
	"context"

	"github.com/hakanduyar/goal-compass-daily/internal/cli"
	"github.com/hakanduyar/goal-compass-daily/internal/program"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	tr, err := ctx.Tracker(context.Background())
	if err != nil {
		return err
	}

	s := tr.Stats()
	ctx.Println("Progress:")
	ctx.Printf("  Bootcamp:  %.1f / %.1f saat (%.0f%%)\n", s.Bootcamp.Completed, s.Bootcamp.Total, s.Bootcamp.Percentage)
	ctx.Printf("  Sport:     %d / %d gün (%.0f%%)\n", s.Sport.Completed, s.Sport.Total, s.Sport.Percentage)
	ctx.Printf("  Transfer+: %.1f saat\n", s.TransferPlus.Total)
	ctx.Printf("  Overall:   %.0f%%\n", program.OverallProgress(s))
	ctx.Printf("  Streak:    %d gün\n", tr.Streak())

	if settings.ShowMotivation {
		ctx.Println()
		ctx.Println(tr.Motivation().Message())
	}
	return nil
}
