package settings

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hakanduyar/goal-compass-daily/internal/cli"
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
		Store:   store,
		Offline: true,
		Out:     out,
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}

	return ctx, out, cleanup
}

func TestSettingsCmd_List(t *testing.T) {
	ctx, out, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&SettingsCmd{List: true}).Run(ctx); err != nil {
		t.Fatalf("settings list failed: %v", err)
	}
	for _, want := range []string{"Start Date:      2025-06-11", "Probe Address:   1.1.1.1:53", "Sync Item Delay: 100 ms"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestSettingsCmd_Update(t *testing.T) {
	ctx, out, cleanup := setupTestDB(t)
	defer cleanup()

	start := "2025-07-01"
	motivation := false
	delay := 0
	cmd := &SettingsCmd{StartDate: &start, ShowMotivation: &motivation, SyncItemDelayMs: &delay}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}
	if !strings.Contains(out.String(), "reset --yes") {
		t.Errorf("expected reset hint after start date change:\n%s", out.String())
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if settings.StartDate != start || settings.ShowMotivation || settings.SyncItemDelayMs != 0 {
		t.Errorf("settings not saved: %+v", settings)
	}
}

func TestSettingsCmd_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cmd  SettingsCmd
	}{
		{"bad start date", SettingsCmd{StartDate: ptr("11/06/2025")}},
		{"bad timezone", SettingsCmd{Timezone: ptr("Mars/Olympus")}},
		{"negative delay", SettingsCmd{SyncItemDelayMs: intPtr(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _, cleanup := setupTestDB(t)
			defer cleanup()

			if err := tt.cmd.Run(ctx); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestSettingsCmd_NoChanges(t *testing.T) {
	ctx, out, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&SettingsCmd{}).Run(ctx); err != nil {
		t.Fatalf("settings failed: %v", err)
	}
	if !strings.Contains(out.String(), "No changes specified") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func ptr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
