package system

import (
	"context"
	"fmt"
	"os"

	"github.com/hakanduyar/goal-compass-daily/internal/cli"
	"github.com/hakanduyar/goal-compass-daily/internal/constants"
)

type InitCmd struct {
	Force bool `help:"Delete the existing SQLite database before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if !ctx.IsSQLite() {
			return fmt.Errorf("--force is only supported for SQLite databases")
		}
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			ctx.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized %s storage at: %s\n", constants.AppName, ctx.Store.GetConfigPath())

	tr, err := ctx.Tracker(context.Background())
	if err != nil {
		return err
	}
	ctx.Printf("Program: %d days starting %s\n", tr.Len(), tr.Config().Start.Format(constants.DateFormat))
	return nil
}
