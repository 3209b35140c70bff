package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hakanduyar/goal-compass-daily/internal/constants"
)

// Settings represents application-wide settings
type Settings struct {
	StartDate       string `json:"start_date"`         // first program day, YYYY-MM-DD
	Timezone        string `json:"timezone"`           // IANA name or "Local"
	ShowMotivation  bool   `json:"show_motivation"`    // show the motivational tier in views
	ProbeAddress    string `json:"probe_address"`      // host:port dialed to decide online/offline
	SyncItemDelayMs int    `json:"sync_item_delay_ms"` // simulated per-item replay delay
}

// DefaultSettings returns the settings a fresh store is initialized with.
func DefaultSettings() Settings {
	return Settings{
		StartDate:       constants.DefaultStartDate,
		Timezone:        constants.DefaultTimezone,
		ShowMotivation:  constants.DefaultShowMotivation,
		ProbeAddress:    constants.DefaultProbeAddress,
		SyncItemDelayMs: constants.DefaultSyncItemDelayMs,
	}
}

// Validate checks field formats.
func (s Settings) Validate() error {
	if _, err := time.Parse(constants.DateFormat, s.StartDate); err != nil {
		return fmt.Errorf("invalid start date %q (expected YYYY-MM-DD): %w", s.StartDate, err)
	}
	if s.Timezone != "" && s.Timezone != "Local" {
		if _, err := time.LoadLocation(s.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", s.Timezone, err)
		}
	}
	if s.SyncItemDelayMs < 0 {
		return fmt.Errorf("sync item delay cannot be negative")
	}
	return nil
}

// SyncItemDelay returns the replay delay as a duration.
func (s Settings) SyncItemDelay() time.Duration {
	return time.Duration(s.SyncItemDelayMs) * time.Millisecond
}

// MapToSettings converts stored key/value rows to Settings.
// Missing keys keep their defaults.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := DefaultSettings()

	for key, value := range data {
		switch key {
		case constants.SettingStartDate:
			settings.StartDate = value
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingShowMotivation:
			settings.ShowMotivation = value == "true"
		case constants.SettingProbeAddress:
			settings.ProbeAddress = value
		case constants.SettingSyncItemDelayMs:
			ms, err := strconv.Atoi(value)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing %s: %w", constants.SettingSyncItemDelayMs, err)
			}
			settings.SyncItemDelayMs = ms
		}
	}
	return settings, nil
}

// SettingsToMap converts Settings to key/value rows.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingStartDate:       settings.StartDate,
		constants.SettingTimezone:        settings.Timezone,
		constants.SettingShowMotivation:  strconv.FormatBool(settings.ShowMotivation),
		constants.SettingProbeAddress:    settings.ProbeAddress,
		constants.SettingSyncItemDelayMs: strconv.Itoa(settings.SyncItemDelayMs),
	}
}
