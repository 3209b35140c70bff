package days

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hakanduyar/goal-compass-daily/internal/cli"
	"github.com/hakanduyar/goal-compass-daily/internal/models"
)

type LogCmd struct {
	Day   string `arg:"" help:"Day number (1-40), YYYY-MM-DD, label like '11 Haz', or 'today'."`
	Hours string `arg:"" optional:"" help:"Hours spent on TransferPlus, e.g. 1.5 or 1,5."`
	Clear bool   `help:"Clear the logged hours."`
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	hours, err := c.parseHours()
	if err != nil {
		return err
	}

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
	if err := tr.Apply(bg, models.SetTransferPlusValue{Day: idx, Hours: hours}); err != nil {
		return err
	}

	date := tr.Days()[idx].Date
	if hours == nil {
		ctx.Printf("✓ %s TransferPlus hours cleared\n", date)
	} else {
		ctx.Printf("✓ %s TransferPlus: %.1f saat\n", date, *hours)
	}
	syncAfterChange(bg, ctx, tr.Syncer())
	return nil
}

// parseHours returns nil for --clear.
func (c *LogCmd) parseHours() (*float64, error) {
	switch {
	case c.Clear && c.Hours != "":
		return nil, errors.New("use either hours or --clear, not both")
	case c.Clear:
		return nil, nil
	case c.Hours == "":
		return nil, errors.New("hours are required unless --clear is given")
	}

	v, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(c.Hours), ",", ".", 1), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid hours %q: %w", c.Hours, err)
	}
	return &v, nil
}
