package backups

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hakanduyar/goal-compass-daily/internal/backup"
	"github.com/hakanduyar/goal-compass-daily/internal/cli"
	"github.com/hakanduyar/goal-compass-daily/internal/models"
	"github.com/hakanduyar/goal-compass-daily/internal/storage"
	"github.com/hakanduyar/goal-compass-daily/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

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

	return ctx, out, cleanup
}

func saveDay(t *testing.T, ctx *cli.Context, date string) {
	t.Helper()
	days := []models.ProgramDay{{Date: date, Bootcamp: models.Scheduled("Ders 4 (6 saat)")}}
	if err := ctx.Local().SaveProgramData(days); err != nil {
		t.Fatalf("failed to save program: %v", err)
	}
}

func TestBackupCreateAndList(t *testing.T) {
	ctx, out, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup list failed: %v", err)
	}
	if !strings.Contains(out.String(), "No backups found.") {
		t.Errorf("unexpected output: %q", out.String())
	}

	out.Reset()
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup create failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Backup created: compass-") {
		t.Errorf("unexpected output: %q", out.String())
	}

	out.Reset()
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup list failed: %v", err)
	}
	if !strings.Contains(out.String(), "Available backups (1 total") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestBackupCmd_RequiresSQLite(t *testing.T) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "compass.json"))
	ctx := &cli.Context{Store: store, Out: &bytes.Buffer{}}

	if err := (&BackupCreateCmd{}).Run(ctx); !errors.Is(err, errNotSQLite) {
		t.Errorf("create err = %v, want %v", err, errNotSQLite)
	}
	if err := (&BackupListCmd{}).Run(ctx); !errors.Is(err, errNotSQLite) {
		t.Errorf("list err = %v, want %v", err, errNotSQLite)
	}
}

func TestBackupRestoreCmd(t *testing.T) {
	ctx, out, cleanup := setupTestDB(t)
	defer cleanup()

	saveDay(t, ctx, "11 Haz")
	info, err := backup.NewManager(ctx.Store.GetConfigPath()).Create()
	if err != nil {
		t.Fatal(err)
	}
	saveDay(t, ctx, "12 Haz")

	cmd := &BackupRestoreCmd{BackupFile: info.Name(), in: strings.NewReader("y\n")}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Database restored successfully!") {
		t.Errorf("unexpected output: %q", out.String())
	}

	if err := ctx.Store.Load(); err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	days := storage.NewLocal(ctx.Store).LoadProgramData()
	if len(days) != 1 || days[0].Date != "11 Haz" {
		t.Errorf("days = %+v, want the backed up program", days)
	}
}

func TestBackupRestoreCmd_Cancelled(t *testing.T) {
	ctx, out, cleanup := setupTestDB(t)
	defer cleanup()

	saveDay(t, ctx, "11 Haz")
	info, err := backup.NewManager(ctx.Store.GetConfigPath()).Create()
	if err != nil {
		t.Fatal(err)
	}
	saveDay(t, ctx, "12 Haz")

	cmd := &BackupRestoreCmd{BackupFile: info.Path, in: strings.NewReader("n\n")}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if !strings.Contains(out.String(), "Restore cancelled.") {
		t.Errorf("unexpected output: %q", out.String())
	}
	if days := ctx.Local().LoadProgramData(); days[0].Date != "12 Haz" {
		t.Errorf("program changed without confirmation: %+v", days)
	}
}

func TestBackupRestoreCmd_NotFound(t *testing.T) {
	ctx, _, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &BackupRestoreCmd{BackupFile: "compass-20000101-000000.db", Yes: true}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected an error for a missing backup")
	}
}

func TestConfirmed(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"yes", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := confirmed(strings.NewReader(tt.input)); got != tt.want {
			t.Errorf("confirmed(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
