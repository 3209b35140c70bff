package days

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/hakanduyar/goal-compass-daily/internal/cli"
	"github.com/hakanduyar/goal-compass-daily/internal/models"
	"github.com/hakanduyar/goal-compass-daily/internal/program"
)

type ShowCmd struct {
	Filter string `help:"Which days to list: all, completed or pending." default:"all" enum:"all,completed,pending"`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	filter, err := program.ParseFilter(c.Filter)
	if err != nil {
		return err
	}
	tr, err := ctx.Tracker(context.Background())
	if err != nil {
		return err
	}

	rows := tr.Filter(filter)
	if len(rows) == 0 {
		ctx.Printf("No %s days\n", filter)
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Date", "Bootcamp", "Sport", "Transfer+")
	for _, r := range rows {
		t.Row(
			strconv.Itoa(r.Index+1),
			r.Day.Date,
			activityCell(r.Day.Bootcamp, r.Day.BootcampDone),
			activityCell(r.Day.Sport, r.Day.SportDone),
			transferCell(r.Day),
		)
	}
	ctx.Println(t.Render())
	return nil
}

func activityCell(a models.Activity, done bool) string {
	if !a.IsApplicable() {
		return a.String()
	}
	return checkbox(done) + " " + a.String()
}

func transferCell(d models.ProgramDay) string {
	if d.TransferPlus == models.TransferHoliday {
		return d.TransferPlus.String()
	}
	hours := "-"
	if d.TransferPlusValue != nil {
		hours = fmt.Sprintf("%.1f saat", *d.TransferPlusValue)
	}
	return checkbox(d.TransferPlusDone) + " " + hours
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
