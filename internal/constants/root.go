package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

// DayFilter selects which days a listing shows
type DayFilter string

const (
	AppName            = "compass"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/compass/compass.db"
	Version            = "v0.3.0"

	// EnvConfig, EnvDBConnection and EnvDebug are read after the optional .env file is loaded
	EnvConfig       = "COMPASS_CONFIG"
	EnvDBConnection = "COMPASS_DB_CONNECTION"
	EnvDebug        = "COMPASS_DEBUG"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Local Store keys
	KeyProgramData = "program_data"
	KeyPendingSync = "pending_sync"
	KeyLastSync    = "last_sync"

	// Sentinel labels as they appear on the wire and in the views
	SentinelNone          = "-"
	SentinelNotApplicable = "Yok"
	SentinelHoliday       = "Tatil"

	// ProgramLength is the number of days produced by one schedule generation
	ProgramLength = 40

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "compass-"
	BackupFileSuffix = ".db"

	// Session lock
	SessionLockfileName = "compass.lock"

	// Sync timings
	SyncSuccessResetDelay = 2 * time.Second
	SyncErrorResetDelay   = 3 * time.Second
	DefaultSyncItemDelay  = 100 * time.Millisecond
	ProbeInterval         = 5 * time.Second
	ProbeTimeout          = 2 * time.Second

	// Notes shown when a day is selected
	NoNoteForDay  = "Bu gün için özel bir not bulunmamaktadır."
	NoDaySelected = "Programı takip etmek için bir gün seçin."

	// Day filters
	FilterAll       DayFilter = "all"
	FilterCompleted DayFilter = "completed"
	FilterPending   DayFilter = "pending"
)

// Session States
const (
	StateDashboard SessionState = iota
	StateTransferForm
	StateConfirmReset
)
