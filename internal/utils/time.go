package utils

import (
	"fmt"
	"time"

	"github.com/hakanduyar/goal-compass-daily/internal/constants"
	"github.com/hakanduyar/goal-compass-daily/internal/models"
)

var shortMonths = [...]string{"Oca", "Şub", "Mar", "Nis", "May", "Haz", "Tem", "Ağu", "Eyl", "Eki", "Kas", "Ara"}

var longMonths = [...]string{"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran", "Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık"}

// DayLabel formats a date the way program days are labeled, e.g. "11 Haz".
func DayLabel(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), shortMonths[t.Month()-1])
}

// LongDayLabel formats a date with the full month name, e.g. "15 Haziran".
func LongDayLabel(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), longMonths[t.Month()-1])
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// ParseDateInLocation parses a date string (YYYY-MM-DD) in the specified timezone.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// StartDateFromSettings returns the configured program start at midnight in the configured timezone.
func StartDateFromSettings(settings models.Settings) (time.Time, error) {
	loc, err := LoadLocation(settings.Timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", settings.Timezone, err)
	}
	start, err := ParseDateInLocation(settings.StartDate, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start date %q: %w", settings.StartDate, err)
	}
	return start, nil
}

// DaysBetween counts calendar days from a to b, ignoring the clock and DST.
func DaysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}
