package backup

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hakanduyar/goal-compass-daily/internal/constants"
	"github.com/hakanduyar/goal-compass-daily/internal/models"
	"github.com/hakanduyar/goal-compass-daily/internal/storage"
	"github.com/hakanduyar/goal-compass-daily/internal/storage/sqlite"
)

// setupTestDB creates an initialized compass database holding one program day.
func setupTestDB(t *testing.T) string {
	dbPath := filepath.Join(t.TempDir(), "compass.db")
	writeProgram(t, dbPath, "Ders 1 (2 saat)")
	return dbPath
}

func writeProgram(t *testing.T, dbPath, bootcamp string) {
	t.Helper()
	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	defer store.Close()

	local := storage.NewLocal(store)
	days := []models.ProgramDay{{Date: "11 Haz", Bootcamp: models.Scheduled(bootcamp), Sport: models.NotApplicable()}}
	if err := local.SaveProgramData(days); err != nil {
		t.Fatalf("failed to save program: %v", err)
	}
}

func readBootcamp(t *testing.T, dbPath string) string {
	t.Helper()
	store := sqlite.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	defer store.Close()

	days := storage.NewLocal(store).LoadProgramData()
	if len(days) != 1 {
		t.Fatalf("expected one stored day, got %d", len(days))
	}
	return days[0].Bootcamp.Label
}

// setupTestClock makes every backup one second newer than the last.
func setupTestClock() func() {
	old := nowFunc
	base := time.Date(2025, time.June, 11, 9, 0, 0, 0, time.Local)
	calls := 0
	nowFunc = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	}
	return func() { nowFunc = old }
}

func TestCreate(t *testing.T) {
	defer setupTestClock()()
	dbPath := setupTestDB(t)

	mgr := NewManager(dbPath)
	info, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if filepath.Dir(info.Path) != filepath.Join(filepath.Dir(dbPath), constants.BackupDirName) {
		t.Errorf("backup written to %s", info.Path)
	}
	if info.Name() != "compass-20250611-090001.db" {
		t.Errorf("backup name = %s", info.Name())
	}
	if info.Size == 0 {
		t.Error("backup should not be empty")
	}
	if got := readBootcamp(t, info.Path); got != "Ders 1 (2 saat)" {
		t.Errorf("backup holds %q", got)
	}
}

func TestCreateMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.Create(); err == nil {
		t.Error("expected error for a missing database")
	}
}

func TestCreateUniqueNames(t *testing.T) {
	old := nowFunc
	defer func() { nowFunc = old }()
	fixed := time.Date(2025, time.June, 11, 9, 0, 0, 0, time.Local)
	nowFunc = func() time.Time { return fixed }

	mgr := NewManager(setupTestDB(t))
	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		info, err := mgr.Create()
		if err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
		if seen[info.Path] {
			t.Fatalf("duplicate backup path %s", info.Path)
		}
		seen[info.Path] = true
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 3 {
		t.Errorf("List returned %d backups, want 3", len(backups))
	}
}

func TestRotation(t *testing.T) {
	defer setupTestClock()()
	mgr := NewManager(setupTestDB(t))

	var first Info
	for i := 0; i < constants.MaxBackups+3; i++ {
		info, err := mgr.Create()
		if err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
		if i == 0 {
			first = info
		}
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("kept %d backups, want %d", len(backups), constants.MaxBackups)
	}
	if _, err := os.Stat(first.Path); !os.IsNotExist(err) {
		t.Error("oldest backup should have been rotated away")
	}
}

func TestList(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "compass.db"))

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List on missing dir failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}

	if err := os.MkdirAll(mgr.Dir(), 0700); err != nil {
		t.Fatal(err)
	}
	names := []string{
		"compass-20250611-090000.db",
		"compass-20250612-090000.db",
		"compass-20250612-090000-1.db",
		"compass-latest.db",
		"snapshot-20250612-090000.db",
		"notes.txt",
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(mgr.Dir(), name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err = mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"compass-20250612-090000-1.db",
		"compass-20250612-090000.db",
		"compass-20250611-090000.db",
	}
	if len(backups) != len(want) {
		t.Fatalf("List returned %d backups, want %d", len(backups), len(want))
	}
	for i, name := range want {
		if backups[i].Name() != name {
			t.Errorf("backups[%d] = %s, want %s", i, backups[i].Name(), name)
		}
	}
}

func TestRestore(t *testing.T) {
	defer setupTestClock()()
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	saved, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}
	writeProgram(t, dbPath, "Ders 2 (3 saat)")

	previous, err := mgr.Restore(saved.Path)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if got := readBootcamp(t, dbPath); got != "Ders 1 (2 saat)" {
		t.Errorf("restored database holds %q", got)
	}
	if previous.Path == "" {
		t.Fatal("Restore should snapshot the current database first")
	}
	if got := readBootcamp(t, previous.Path); got != "Ders 2 (3 saat)" {
		t.Errorf("pre-restore snapshot holds %q", got)
	}
}

func TestRestoreRejectsInvalidBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	bogus := filepath.Join(t.TempDir(), "bogus.db")
	if err := os.WriteFile(bogus, []byte("this is not a database file, just some text padding it out"), 0600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "missing.db")},
		{"not sqlite", bogus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := mgr.Restore(tt.path); err == nil {
				t.Error("expected Restore to fail")
			}
			if got := readBootcamp(t, dbPath); got != "Ders 1 (2 saat)" {
				t.Errorf("database changed after failed restore: %q", got)
			}
		})
	}
}

func TestVerifyFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.db")
	db, err := sql.Open("sqlite", good)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("CREATE TABLE t (id INTEGER)"); err != nil {
		t.Fatal(err)
	}
	db.Close()

	if err := verifyFile(good); err != nil {
		t.Errorf("verifyFile(good) = %v", err)
	}

	bad := filepath.Join(dir, "bad.db")
	if err := os.WriteFile(bad, []byte(fmt.Sprintf("%0128d", 0)), 0600); err != nil {
		t.Fatal(err)
	}
	if err := verifyFile(bad); err == nil {
		t.Error("verifyFile(bad) should fail")
	}
}
