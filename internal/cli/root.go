package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hakanduyar/goal-compass-daily/internal/backup"
	"github.com/hakanduyar/goal-compass-daily/internal/constants"
	"github.com/hakanduyar/goal-compass-daily/internal/logger"
	"github.com/hakanduyar/goal-compass-daily/internal/models"
	"github.com/hakanduyar/goal-compass-daily/internal/network"
	"github.com/hakanduyar/goal-compass-daily/internal/offline"
	"github.com/hakanduyar/goal-compass-daily/internal/program"
	"github.com/hakanduyar/goal-compass-daily/internal/session"
	"github.com/hakanduyar/goal-compass-daily/internal/storage"
	"github.com/hakanduyar/goal-compass-daily/internal/tracker"
	"github.com/hakanduyar/goal-compass-daily/internal/utils"
)

// Context is handed to every command's Run method. The sync stack is built
// lazily so that commands like init and keyring never touch the network.
type Context struct {
	Store     storage.Backend
	ConfigDir string // holds logs and the session lock
	Offline   bool   // force the network signal to offline
	Probe     string // overrides the probe_address setting
	Out       io.Writer

	monitor network.Monitor
	local   *storage.Local
	syncer  *offline.Syncer
	tracker *tracker.Tracker
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.writer(), format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.writer(), args...)
}

func (c *Context) writer() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Local() *storage.Local {
	if c.local == nil {
		c.local = storage.NewLocal(c.Store)
	}
	return c.local
}

func (c *Context) Settings() (models.Settings, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// Monitor returns the network signal. Unless --offline is set the first call
// probes once so one-shot commands see a definite state.
func (c *Context) Monitor(ctx context.Context) (network.Monitor, error) {
	if c.monitor != nil {
		return c.monitor, nil
	}
	if c.Offline {
		c.monitor = network.NewStatic(false)
		return c.monitor, nil
	}

	address := c.Probe
	if address == "" {
		settings, err := c.Settings()
		if err != nil {
			return nil, err
		}
		address = settings.ProbeAddress
	}
	prober := network.NewProber(address)
	prober.Probe(ctx)
	c.monitor = prober
	return c.monitor, nil
}

func (c *Context) Syncer(ctx context.Context) (*offline.Syncer, error) {
	if c.syncer != nil {
		return c.syncer, nil
	}
	settings, err := c.Settings()
	if err != nil {
		return nil, err
	}
	monitor, err := c.Monitor(ctx)
	if err != nil {
		return nil, err
	}
	pusher := offline.SimulatedPusher{Delay: settings.SyncItemDelay()}
	c.syncer = offline.New(c.Local(), monitor, pusher)
	return c.syncer, nil
}

// ProgramConfig builds the schedule rules from the stored start date.
func (c *Context) ProgramConfig() (program.Config, error) {
	settings, err := c.Settings()
	if err != nil {
		return program.Config{}, err
	}
	start, err := utils.StartDateFromSettings(settings)
	if err != nil {
		return program.Config{}, err
	}
	return program.DefaultConfig(start), nil
}

// Tracker returns the loaded program, generating it on first use.
func (c *Context) Tracker(ctx context.Context) (*tracker.Tracker, error) {
	if c.tracker != nil {
		return c.tracker, nil
	}
	cfg, err := c.ProgramConfig()
	if err != nil {
		return nil, err
	}
	syncer, err := c.Syncer(ctx)
	if err != nil {
		return nil, err
	}
	t := tracker.New(cfg, c.Local(), syncer)
	if err := t.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load program: %w", err)
	}
	c.tracker = t
	return t, nil
}

// IsSQLite reports whether the store is a local SQLite file, the only kind
// that can be backed up.
func (c *Context) IsSQLite() bool {
	return strings.EqualFold(filepath.Ext(c.Store.GetConfigPath()), constants.BackupFileSuffix)
}

// PerformAutomaticBackup creates a backup and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	if !c.IsSQLite() {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// AcquireSession takes the single-session lock for commands that change the
// program. Without a config dir nothing is locked.
func (c *Context) AcquireSession() (*session.Lock, error) {
	if c.ConfigDir == "" {
		return nil, nil
	}
	return session.Acquire(c.ConfigDir)
}
