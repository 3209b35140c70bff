package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/hakanduyar/goal-compass-daily/internal/cli"
	"github.com/hakanduyar/goal-compass-daily/internal/cli/backups"
	"github.com/hakanduyar/goal-compass-daily/internal/cli/days"
	"github.com/hakanduyar/goal-compass-daily/internal/cli/queue"
	"github.com/hakanduyar/goal-compass-daily/internal/cli/settings"
	"github.com/hakanduyar/goal-compass-daily/internal/cli/system"
	"github.com/hakanduyar/goal-compass-daily/internal/constants"
	apperrors "github.com/hakanduyar/goal-compass-daily/internal/errors"
	"github.com/hakanduyar/goal-compass-daily/internal/keyring"
	"github.com/hakanduyar/goal-compass-daily/internal/logger"
	"github.com/hakanduyar/goal-compass-daily/internal/storage"
	"github.com/hakanduyar/goal-compass-daily/internal/storage/postgres"
	"github.com/hakanduyar/goal-compass-daily/internal/storage/sqlite"
)

// keyringConfigPrefix selects a named keyring profile, e.g. --config keyring:work.
const keyringConfigPrefix = "keyring:"

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path (.db or .json) or PostgreSQL connection string. Use 'postgresql' or 'keyring:<profile>' to read the connection from COMPASS_DB_CONNECTION or the OS keyring." type:"string" default:"${config}" env:"COMPASS_CONFIG"`
	Debug   bool   `help:"Log debug output to stderr and the log file." env:"COMPASS_DEBUG"`
	Offline bool   `help:"Force the network signal to offline; changes are queued."`
	Probe   string `help:"host:port used for the reachability probe (default from settings)."`

	Init     system.InitCmd       `cmd:"" help:"Initialize compass storage and generate the program."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Show     days.ShowCmd         `cmd:"" help:"List program days."`
	Mark     days.MarkCmd         `cmd:"" help:"Mark an activity done (or not done) for a day."`
	Log      days.LogCmd          `cmd:"" help:"Log Transfer+ hours for a day."`
	Note     days.NoteCmd         `cmd:"" help:"Show the note for a day."`
	Stats    days.StatsCmd        `cmd:"" help:"Show progress, streak and motivation."`
	Sync     queue.SyncCmd        `cmd:"" help:"Inspect or replay the offline sync queue."`
	Reset    system.ResetCmd      `cmd:"" help:"Clear all progress and regenerate the program."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Keyring  system.KeyringCmd    `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	Backup   backups.BackupCmd    `cmd:"" help:"Manage database backups."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	DebugCmd system.DebugCmd      `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
}

func main() {
	// A missing .env file is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily progress tracker for a 40-day bootcamp, sport and Transfer+ program"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version": constants.Version,
			"config":  constants.DefaultConfigPath,
		},
	)

	command := strings.Fields(ctx.Command())[0]

	store, configDir, err := openStore(CLI.Config)
	if err != nil {
		apperrors.Fatal(err)
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: configDir,
		Quiet:     command == "tui",
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}
	logger.Debug("Starting", "command", command, "config", store.GetConfigPath())

	appCtx := &cli.Context{
		Store:     store,
		ConfigDir: configDir,
		Offline:   CLI.Offline,
		Probe:     CLI.Probe,
	}

	// init creates the store itself and keyring never needs it
	if command != "init" && command != "keyring" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}
	defer store.Close()

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}

// openStore picks the backend from --config and returns it with the
// directory that holds logs and the session lock.
func openStore(config string) (storage.Backend, string, error) {
	defaultDir := filepath.Dir(expandHome(constants.DefaultConfigPath))

	if config == "postgresql" || config == "postgres" || strings.HasPrefix(config, keyringConfigPrefix) {
		connStr, err := connectionFromEnvOrKeyring(strings.TrimPrefix(config, keyringConfigPrefix))
		if err != nil {
			return nil, "", err
		}
		return postgres.New(connStr), defaultDir, nil
	}

	if postgres.IsConnString(config) || strings.Contains(config, "host=") {
		if err := postgres.ValidateConnString(config); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, "", fmt.Errorf("%w; store it with '%s keyring set' or export %s and use --config postgresql",
					err, constants.AppName, constants.EnvDBConnection)
			}
			return nil, "", err
		}
		return postgres.New(config), defaultDir, nil
	}

	path := expandHome(config)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return storage.NewJSONStore(path), filepath.Dir(path), nil
	}
	return sqlite.NewStore(path), filepath.Dir(path), nil
}

// connectionFromEnvOrKeyring prefers COMPASS_DB_CONNECTION over the keyring.
func connectionFromEnvOrKeyring(profile string) (string, error) {
	if profile == "postgresql" || profile == "postgres" {
		profile = ""
	}
	if connStr := strings.TrimSpace(os.Getenv(constants.EnvDBConnection)); connStr != "" && profile == "" {
		return connStr, nil
	}
	connStr, err := keyring.Get(profile)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("no PostgreSQL connection configured: set %s or run '%s keyring set'",
				constants.EnvDBConnection, constants.AppName)
		}
		return "", err
	}
	return connStr, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
