package system

import (
	"context"
	"strings"
	"testing"

	"github.com/hakanduyar/goal-compass-daily/internal/backup"
	"github.com/hakanduyar/goal-compass-daily/internal/constants"
	"github.com/hakanduyar/goal-compass-daily/internal/models"
)

func TestResetCmd_RequiresYes(t *testing.T) {
	ctx, _, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&ResetCmd{}).Run(ctx); err == nil {
		t.Error("reset without --yes should fail")
	}
}

func TestResetCmd_Success(t *testing.T) {
	ctx, out, cleanup := setupTestDB(t)
	defer cleanup()

	bg := context.Background()
	tr, err := ctx.Tracker(bg)
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.Apply(bg, models.SetSportDone{Day: 0, Done: true}); err != nil {
		t.Fatal(err)
	}

	if err := (&ResetCmd{Yes: true}).Run(ctx); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if !strings.Contains(out.String(), "Program reset: 40 fresh days") {
		t.Errorf("unexpected output: %q", out.String())
	}

	days := ctx.Local().LoadProgramData()
	if len(days) != constants.ProgramLength || days[0].SportDone {
		t.Error("expected a fresh program")
	}
	queue := ctx.Local().GetPendingSync()
	if len(queue) != 1 || queue[0].Action != models.SyncActionCreate {
		t.Errorf("queue = %+v, want a single create", queue)
	}

	backups, err := backup.NewManager(ctx.Store.GetConfigPath()).List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 1 {
		t.Errorf("backups = %d, want automatic backup before reset", len(backups))
	}
}
