package backups

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/hakanduyar/goal-compass-daily/internal/backup"
	"github.com/hakanduyar/goal-compass-daily/internal/cli"
	"github.com/hakanduyar/goal-compass-daily/internal/constants"
	"github.com/hakanduyar/goal-compass-daily/internal/logger"
)

var errNotSQLite = errors.New("backups are only supported for SQLite databases")

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
	List    BackupListCmd    `cmd:"" help:"List available backups."`
	Restore BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	if !ctx.IsSQLite() {
		return errNotSQLite
	}
	info, err := backup.NewManager(ctx.Store.GetConfigPath()).Create()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	ctx.Printf("✓ Backup created: %s (%s)\n", info.Name(), humanize.Bytes(uint64(info.Size)))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	if !ctx.IsSQLite() {
		return errNotSQLite
	}
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		ctx.Println("No backups found.")
		ctx.Printf("Backups are stored in: %s\n", mgr.Dir())
		return nil
	}

	ctx.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		ctx.Printf("  %s  %s  (%s, %s)\n",
			b.Timestamp.Format("2006-01-02 15:04:05"), b.Name(),
			humanize.Bytes(uint64(b.Size)), humanize.Time(b.Timestamp))
	}
	ctx.Printf("\nBackup directory: %s\n", mgr.Dir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `help:"Skip the confirmation prompt."`

	in io.Reader
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	if !ctx.IsSQLite() {
		return errNotSQLite
	}
	mgr := backup.NewManager(ctx.Store.GetConfigPath())

	backupPath, err := locate(c.BackupFile, mgr.Dir())
	if err != nil {
		return err
	}

	lock, err := ctx.AcquireSession()
	if err != nil {
		return err
	}
	defer lock.Release()

	if !c.Yes {
		ctx.Println("⚠️  This will replace your current database with the backup.")
		ctx.Println("A backup of your current database will be created before restoring.")
		ctx.Printf("\nRestore from: %s\n", backupPath)
		ctx.Printf("Continue? [y/N]: ")
		if !confirmed(c.input()) {
			ctx.Println("Restore cancelled.")
			return nil
		}
	}

	if err := ctx.Store.Close(); err != nil {
		logger.Warn("Failed to close database before restore", "error", err)
	}

	previous, err := mgr.Restore(backupPath)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}
	if previous.Path != "" {
		ctx.Printf("Previous database saved as: %s\n", previous.Name())
	}
	ctx.Println("✓ Database restored successfully!")
	return nil
}

func (c *BackupRestoreCmd) input() io.Reader {
	if c.in == nil {
		return os.Stdin
	}
	return c.in
}

// locate accepts an absolute path, a path relative to the working directory
// or a bare name inside the backup directory.
func locate(name, backupDir string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("backup file not found: %s", name)
		}
		return name, nil
	}
	if _, err := os.Stat(name); err == nil {
		abs, err := filepath.Abs(name)
		if err != nil {
			return "", fmt.Errorf("failed to resolve backup path: %w", err)
		}
		return abs, nil
	}
	candidate := filepath.Join(backupDir, name)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return "", fmt.Errorf("backup file not found: tried current directory and %s", backupDir)
}

func confirmed(r io.Reader) bool {
	response, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
