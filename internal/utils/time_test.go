package utils

import (
	"testing"
	"time"

	"github.com/hakanduyar/goal-compass-daily/internal/models"
)

func TestDayLabel(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
		long string
	}{
		{time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), "11 Haz", "11 Haziran"},
		{time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC), "2 Tem", "2 Temmuz"},
		{time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC), "31 Ağu", "31 Ağustos"},
		{time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "1 Oca", "1 Ocak"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := DayLabel(tt.date); got != tt.want {
				t.Errorf("DayLabel() = %q, want %q", got, tt.want)
			}
			if got := LongDayLabel(tt.date); got != tt.long {
				t.Errorf("LongDayLabel() = %q, want %q", got, tt.long)
			}
		})
	}
}

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "empty string returns local", timezone: "", wantErr: false},
		{name: "Local returns local", timezone: "Local", wantErr: false},
		{name: "valid timezone UTC", timezone: "UTC", wantErr: false},
		{name: "valid timezone Europe/Istanbul", timezone: "Europe/Istanbul", wantErr: false},
		{name: "invalid timezone", timezone: "Invalid/Timezone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
			}
			if ValidateTimezone(tt.timezone) == tt.wantErr {
				t.Errorf("ValidateTimezone() disagrees with LoadLocation")
			}
		})
	}
}

func TestStartDateFromSettings(t *testing.T) {
	s := models.DefaultSettings()
	s.Timezone = "UTC"
	start, err := StartDateFromSettings(s)
	if err != nil {
		t.Fatalf("StartDateFromSettings failed: %v", err)
	}
	if start.Weekday() != time.Wednesday || start.Day() != 11 {
		t.Errorf("unexpected start %v", start)
	}

	s.StartDate = "nope"
	if _, err := StartDateFromSettings(s); err == nil {
		t.Error("expected error for bad start date")
	}
}

func TestDaysBetween(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// spans the spring DST switch
	a := time.Date(2025, 3, 29, 0, 0, 0, 0, loc)
	b := time.Date(2025, 4, 2, 23, 0, 0, 0, loc)
	if got := DaysBetween(a, b); got != 4 {
		t.Errorf("DaysBetween() = %d, want 4", got)
	}
	if got := DaysBetween(b, a); got != -4 {
		t.Errorf("DaysBetween() = %d, want -4", got)
	}
}
