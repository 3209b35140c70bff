package system

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hakanduyar/goal-compass-daily/internal/cli"
	"github.com/hakanduyar/goal-compass-daily/internal/network"
	"github.com/hakanduyar/goal-compass-daily/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	lock, err := ctx.AcquireSession()
	if err != nil {
		return err
	}
	defer lock.Release()

	ctx.PerformAutomaticBackup()

	bg, cancel := context.WithCancel(context.Background())
	defer cancel()

	tr, err := ctx.Tracker(bg)
	if err != nil {
		return err
	}
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	monitor, err := ctx.Monitor(bg)
	if err != nil {
		return err
	}
	if prober, ok := monitor.(*network.Prober); ok {
		go prober.Run(bg)
	}
	go tr.Syncer().Run(bg)

	model := tui.NewModel(tr, settings)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}
