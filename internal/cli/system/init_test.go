package system

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hakanduyar/goal-compass-daily/internal/cli"
	"github.com/hakanduyar/goal-compass-daily/internal/constants"
	"github.com/hakanduyar/goal-compass-daily/internal/models"
	"github.com/hakanduyar/goal-compass-daily/internal/storage"
	"github.com/hakanduyar/goal-compass-daily/internal/storage/sqlite"
)

func setupTestInitDB(t *testing.T) (*cli.Context, string, *bytes.Buffer, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := sqlite.NewStore(dbPath)

	out := &bytes.Buffer{}
	ctx := &cli.Context{
		Store:     store,
		ConfigDir: tempDir,
		Offline:   true,
		Out:       out,
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}

	return ctx, dbPath, out, cleanup
}

// setupTestDB returns a context over an initialized store.
func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer, func()) {
	ctx, _, out, cleanup := setupTestInitDB(t)
	if err := ctx.Store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return ctx, out, cleanup
}

func TestInitCmd_Success(t *testing.T) {
	ctx, dbPath, out, cleanup := setupTestInitDB(t)
	defer cleanup()

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("init command failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file was not created at %s", dbPath)
	}
	if !strings.Contains(out.String(), "Program: 40 days starting 2025-06-11") {
		t.Errorf("unexpected output: %q", out.String())
	}
	if got := len(ctx.Local().LoadProgramData()); got != constants.ProgramLength {
		t.Errorf("stored days = %d, want %d", got, constants.ProgramLength)
	}
}

func TestInitCmd_Idempotent(t *testing.T) {
	ctx, _, _, cleanup := setupTestInitDB(t)
	defer cleanup()

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("second init failed (should be idempotent): %v", err)
	}
	if got := len(ctx.Local().GetPendingSync()); got != 1 {
		t.Errorf("pending = %d, program should be generated once", got)
	}
}

func TestInitCmd_ForceDeletesExisting(t *testing.T) {
	ctx, dbPath, out, cleanup := setupTestInitDB(t)
	defer cleanup()

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("initial init failed: %v", err)
	}
	bg := context.Background()
	tr, err := ctx.Tracker(bg)
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.Apply(bg, models.SetBootcampDone{Day: 0, Done: true}); err != nil {
		t.Fatal(err)
	}

	// a fresh context so the program is loaded again
	ctx = &cli.Context{Store: ctx.Store, ConfigDir: ctx.ConfigDir, Offline: true, Out: out}
	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("force init failed: %v", err)
	}
	if !strings.Contains(out.String(), "Deleted existing database at: "+dbPath) {
		t.Errorf("expected delete message, got %q", out.String())
	}
	if ctx.Local().LoadProgramData()[0].BootcampDone {
		t.Error("progress should be gone after --force")
	}
}

func TestInitCmd_ForceRequiresSQLite(t *testing.T) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "compass.json"))
	ctx := &cli.Context{Store: store, Offline: true, Out: &bytes.Buffer{}}

	if err := (&InitCmd{Force: true}).Run(ctx); err == nil {
		t.Error("expected --force to be rejected for JSON storage")
	}
}
