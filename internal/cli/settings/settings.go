package settings

import (
	"fmt"

	"github.com/hakanduyar/goal-compass-daily/internal/cli"
	"github.com/hakanduyar/goal-compass-daily/internal/constants"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	StartDate       *string `help:"First program day (YYYY-MM-DD)."`
	Timezone        *string `help:"IANA timezone or Local."`
	ShowMotivation  *bool   `help:"Show the motivational message."`
	ProbeAddress    *string `help:"host:port dialed to decide whether the network is up."`
	SyncItemDelayMs *int    `help:"Simulated delay per replayed change, in milliseconds."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	if c.List {
		ctx.Println("Current Settings:")
		ctx.Printf("  Start Date:      %s\n", settings.StartDate)
		ctx.Printf("  Timezone:        %s\n", settings.Timezone)
		ctx.Printf("  Show Motivation: %v\n", settings.ShowMotivation)
		ctx.Printf("  Probe Address:   %s\n", settings.ProbeAddress)
		ctx.Printf("  Sync Item Delay: %d ms\n", settings.SyncItemDelayMs)
		return nil
	}

	updated := false
	startChanged := false
	if c.StartDate != nil {
		startChanged = *c.StartDate != settings.StartDate
		settings.StartDate = *c.StartDate
		updated = true
	}
	if c.Timezone != nil {
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.ShowMotivation != nil {
		settings.ShowMotivation = *c.ShowMotivation
		updated = true
	}
	if c.ProbeAddress != nil {
		settings.ProbeAddress = *c.ProbeAddress
		updated = true
	}
	if c.SyncItemDelayMs != nil {
		settings.SyncItemDelayMs = *c.SyncItemDelayMs
		updated = true
	}

	if !updated {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := ctx.Local().SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.Println("Settings updated successfully.")
	if startChanged {
		ctx.Printf("The stored program keeps its dates, run '%s reset --yes' to regenerate it.\n", constants.AppName)
	}
	return nil
}
