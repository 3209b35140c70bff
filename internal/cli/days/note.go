package days

import (
	"context"

	"github.com/hakanduyar/goal-compass-daily/internal/cli"
)

type NoteCmd struct {
	Day string `arg:"" optional:"" help:"Day to show the note of. Without it the program's opening note is shown."`
}

func (c *NoteCmd) Run(ctx *cli.Context) error {
	tr, err := ctx.Tracker(context.Background())
	if err != nil {
		return err
	}
	if c.Day != "" {
		idx, err := tr.Resolve(c.Day)
		if err != nil {
			return err
		}
		if err := tr.Select(idx); err != nil {
			return err
		}
		ctx.Printf("%s: ", tr.Days()[idx].Date)
	}
	ctx.Println(tr.SelectedNote())
	return nil
}
