package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/hakanduyar/goal-compass-daily/internal/backup"
	"github.com/hakanduyar/goal-compass-daily/internal/cli"
	"github.com/hakanduyar/goal-compass-daily/internal/constants"
	"github.com/hakanduyar/goal-compass-daily/internal/utils"
)

// schemaReporter is implemented by the SQL backends.
type schemaReporter interface {
	SchemaStatus() (current, latest int, err error)
}

type DoctorCmd struct{}

type check struct {
	name    string
	run     func(*cli.Context) error
	warning bool
}

var checks = []check{
	{name: "Storage reachable", run: checkStorage},
	{name: "Schema version", run: checkSchema},
	{name: "Settings valid", run: checkSettings},
	{name: "Program data", run: checkProgram},
	{name: "Sync queue", run: checkQueue, warning: true},
	{name: "Backups present", run: checkBackups, warning: true},
	{name: "Clock/timezone", run: checkClock},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	failed := false
	reachable := true
	for _, c := range checks {
		if !reachable && c.name != "Clock/timezone" {
			ctx.Printf("⊘ %s: SKIPPED (storage not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warning:
			ctx.Printf("⚠ %s: WARNING\n   %v\n", c.name, err)
		default:
			ctx.Printf("❌ %s: FAIL\n   Error: %v\n", c.name, err)
			failed = true
			if c.name == "Storage reachable" {
				reachable = false
			}
		}
	}

	ctx.Println()
	if failed {
		ctx.Println("Diagnostics completed with errors.")
		return errors.New("one or more health checks failed")
	}
	ctx.Println("All diagnostics passed!")
	return nil
}

func checkStorage(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	return nil
}

func checkSchema(ctx *cli.Context) error {
	reporter, ok := ctx.Store.(schemaReporter)
	if !ok {
		return nil
	}
	current, latest, err := reporter.SchemaStatus()
	if err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	return settings.Validate()
}

func checkProgram(ctx *cli.Context) error {
	days := ctx.Local().LoadProgramData()
	if days == nil {
		return fmt.Errorf("no program stored, run '%s init'", constants.AppName)
	}
	if len(days) != constants.ProgramLength {
		return fmt.Errorf("program has %d days, expected %d", len(days), constants.ProgramLength)
	}
	return nil
}

func checkQueue(ctx *cli.Context) error {
	if n := len(ctx.Local().GetPendingSync()); n > 0 {
		return fmt.Errorf("%d change(s) waiting to sync, run '%s sync run' when online", n, constants.AppName)
	}
	return nil
}

func checkBackups(ctx *cli.Context) error {
	if !ctx.IsSQLite() {
		return nil
	}
	backups, err := backup.NewManager(ctx.Store.GetConfigPath()).List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found, consider creating one with '%s backup create'", constants.AppName)
	}
	return nil
}

func checkClock(ctx *cli.Context) error {
	timezone := constants.DefaultTimezone
	if settings, err := ctx.Settings(); err == nil {
		timezone = settings.Timezone
	}
	now, err := utils.NowInTimezone(timezone)
	if err != nil {
		return err
	}
	if now.Year() < 2020 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	return nil
}
