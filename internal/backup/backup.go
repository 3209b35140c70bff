package backup

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hakanduyar/goal-compass-daily/internal/constants"
	"github.com/hakanduyar/goal-compass-daily/internal/logger"
)

const timestampLayout = "20060102-150405"

// compass-20250611-093000.db or compass-20250611-093000-2.db
var backupNamePattern = regexp.MustCompile(`^` + regexp.QuoteMeta(constants.BackupFilePrefix) +
	`(\d{8}-\d{6})(?:-(\d+))?` + regexp.QuoteMeta(constants.BackupFileSuffix) + `$`)

var nowFunc = time.Now

type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

func (i Info) Name() string {
	return filepath.Base(i.Path)
}

// Manager snapshots the SQLite database into a sibling backups directory.
type Manager struct {
	dbPath    string
	backupDir string
}

func NewManager(dbPath string) *Manager {
	return &Manager{
		dbPath:    dbPath,
		backupDir: filepath.Join(filepath.Dir(dbPath), constants.BackupDirName),
	}
}

func (m *Manager) Dir() string {
	return m.backupDir
}

// Create snapshots the database and trims old backups.
func (m *Manager) Create() (Info, error) {
	info, err := m.create()
	if err != nil {
		return Info{}, err
	}
	if err := m.rotate(); err != nil {
		logger.Warn("Failed to rotate old backups", "error", err)
	}
	return info, nil
}

func (m *Manager) create() (Info, error) {
	if _, err := os.Stat(m.dbPath); os.IsNotExist(err) {
		return Info{}, fmt.Errorf("database does not exist: %s", m.dbPath)
	}
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return Info{}, fmt.Errorf("failed to create backup directory: %w", err)
	}

	path, err := m.nextPath()
	if err != nil {
		return Info{}, err
	}
	if err := m.snapshot(path); err != nil {
		return Info{}, fmt.Errorf("failed to backup database: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to stat backup: %w", err)
	}
	logger.Info("Backup created", "path", path, "size", stat.Size())
	ts, _ := parseName(filepath.Base(path))
	return Info{Path: path, Timestamp: ts, Size: stat.Size()}, nil
}

func (m *Manager) nextPath() (string, error) {
	stamp := nowFunc().Format(timestampLayout)
	path := filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+constants.BackupFileSuffix)
	for n := 1; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		if n > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, stamp, n, constants.BackupFileSuffix))
	}
}

// snapshot writes a consistent copy with VACUUM INTO, falling back to a file
// copy on SQLite builds that lack it.
func (m *Manager) snapshot(dest string) error {
	db, err := sql.Open("sqlite", m.dbPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer db.Close()

	if err := verify(db); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}
	if _, err := db.Exec("VACUUM INTO ?", dest); err != nil {
		logger.Debug("VACUUM INTO failed, copying file", "error", err)
		db.Close()
		return copyFile(m.dbPath, dest)
	}
	return nil
}

// List returns backups newest first. Files that do not follow the naming
// scheme are ignored.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Info{}, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []Info{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ts, ok := parseName(entry.Name())
		if !ok {
			continue
		}
		stat, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Timestamp: ts,
			Size:      stat.Size(),
		})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Path > backups[j].Path
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

func parseName(name string) (time.Time, bool) {
	match := backupNamePattern.FindStringSubmatch(name)
	if match == nil {
		return time.Time{}, false
	}
	ts, err := time.ParseInLocation(timestampLayout, match[1], time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
		logger.Debug("Old backup removed", "path", backups[i].Path)
	}
	return nil
}

// Restore replaces the database with the given backup. The current database
// is snapshotted first; that snapshot is returned and never rotated away here.
// The caller must close any open handle to the database beforehand.
func (m *Manager) Restore(backupPath string) (Info, error) {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return Info{}, fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	if err := verifyFile(backupPath); err != nil {
		return Info{}, fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	var previous Info
	if _, err := os.Stat(m.dbPath); err == nil {
		previous, err = m.create()
		if err != nil {
			return Info{}, fmt.Errorf("failed to backup current database before restore: %w", err)
		}
	}

	tmp := m.dbPath + ".restore.tmp"
	if err := copyFile(backupPath, tmp); err != nil {
		return Info{}, fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tmp, m.dbPath); err != nil {
		if removeErr := os.Remove(tmp); removeErr != nil {
			logger.Warn("Failed to remove temporary restore file", "path", tmp, "error", removeErr)
		}
		return Info{}, fmt.Errorf("failed to restore database: %w", err)
	}

	logger.Info("Database restored", "from", backupPath, "previous", previous.Path)
	return previous, nil
}

func verify(db *sql.DB) error {
	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

func verifyFile(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()
	return verify(db)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(in); err != nil {
		return err
	}
	return out.Sync()
}
