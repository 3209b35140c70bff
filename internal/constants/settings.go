package constants

const (
	SettingStartDate       = "start_date"
	SettingTimezone        = "timezone"
	SettingShowMotivation  = "show_motivation"
	SettingProbeAddress    = "probe_address"
	SettingSyncItemDelayMs = "sync_item_delay_ms"

	// Default Settings Values
	DefaultStartDate       = "2025-06-11"
	DefaultTimezone        = "Local" // Use system local timezone by default
	DefaultShowMotivation  = true
	DefaultProbeAddress    = "1.1.1.1:53"
	DefaultSyncItemDelayMs = 100
)
