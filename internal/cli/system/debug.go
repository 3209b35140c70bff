package system

import (
	"encoding/json"
	"fmt"

	"github.com/hakanduyar/goal-compass-daily/internal/cli"
	"github.com/hakanduyar/goal-compass-daily/internal/program"
)

type DebugCmd struct {
	DBPath      DebugDBPathCmd      `cmd:"" name:"db-path" help:"Show storage location."`
	DumpProgram DebugDumpProgramCmd `cmd:"" help:"Dump the stored program as JSON."`
	DumpQueue   DebugDumpQueueCmd   `cmd:"" help:"Dump the pending sync queue as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	return printJSON(ctx, map[string]string{"path": ctx.Store.GetConfigPath()})
}

type DebugDumpProgramCmd struct {
	Day string `arg:"" optional:"" help:"Only dump this day (number, YYYY-MM-DD, label or 'today')."`
}

func (cmd *DebugDumpProgramCmd) Run(ctx *cli.Context) error {
	days := ctx.Local().LoadProgramData()
	if days == nil {
		return fmt.Errorf("no program stored")
	}
	if cmd.Day == "" {
		return printJSON(ctx, days)
	}

	cfg, err := ctx.ProgramConfig()
	if err != nil {
		return err
	}
	idx, err := program.ResolveDay(cfg, days, cmd.Day)
	if err != nil {
		return err
	}
	return printJSON(ctx, days[idx])
}

type DebugDumpQueueCmd struct{}

func (cmd *DebugDumpQueueCmd) Run(ctx *cli.Context) error {
	return printJSON(ctx, ctx.Local().GetPendingSync())
}

func printJSON(ctx *cli.Context, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.Println(string(data))
	return nil
}
