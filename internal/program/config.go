package program

import (
	"time"

	"github.com/hakanduyar/goal-compass-daily/internal/constants"
)

const (
	SportCardio   = "Kardiyo-Mobilite"
	SportStrength = "Ağırlık Antrenmanı"
)

// DefaultLessons is the ordered bootcamp lesson table.
var DefaultLessons = []string{
	"Hafta3 Ödev", "Ders 4 (6 saat)", "Ders 4 (3 saat) + Ders 5 (3 saat)", "Ders 5 (6 saat)", "Ders 5 (1 saat) + Ders 6 (5 saat)",
	"Ders 6 (6 saat)", "Ders 7 (2 saat 40 dk) + Ders 8 (3 saat 20 dk)", "Ders 8 (2 saat 0 dk) + Ders 9 (1 saat 15 dk)",
	"Ders 10 (2 saat)", "Ders 11 (2 saat)", "Ders 12 (3 saat)", "Ders 13 (3 saat)", "Ders 14 (3 saat)",
	"Ders 15 (3 saat)", "Ders 16 (2 saat)", "Ders 17 (2 saat)", "Ders 18 (1 saat 44 dk)", "Ders 19 (1 saat 17 dk)",
	"Ders 20 (2 saat)", "Ders 21 (3 saat)",
}

// Config holds the schedule rules. Every special day is an offset from Start,
// so moving the start date moves all of them together.
type Config struct {
	Start  time.Time
	Length int

	Lessons []string

	// HolidayOffsets are full rest days: every slot is a holiday.
	HolidayOffsets []int

	// The first AssignmentDays days get AssignmentLabel instead of a lesson.
	AssignmentLabel string
	AssignmentDays  int

	// Lessons are handed out on non-Sunday days in [LessonStart, LessonEnd].
	LessonStart int
	LessonEnd   int

	// SportOverrides pins an activity to specific offsets before the microcycle starts.
	SportOverrides map[int]string

	// From CycleStart on, Monday/Wednesday/Friday get OddActivity and
	// Tuesday/Thursday/Saturday get EvenActivity.
	CycleStart   int
	OddActivity  string
	EvenActivity string
}

// DefaultConfig reproduces the standard 40-day program starting at start.
func DefaultConfig(start time.Time) Config {
	return Config{
		Start:           start,
		Length:          constants.ProgramLength,
		Lessons:         DefaultLessons,
		HolidayOffsets:  []int{4},
		AssignmentLabel: "Hafta3 Ödev",
		AssignmentDays:  2,
		LessonStart:     2,
		LessonEnd:       21,
		SportOverrides: map[int]string{
			0: SportCardio,
			1: SportStrength,
			2: SportCardio,
			3: SportStrength,
		},
		CycleStart:   5,
		OddActivity:  SportStrength,
		EvenActivity: SportCardio,
	}
}

func (c Config) length() int {
	if c.Length <= 0 {
		return constants.ProgramLength
	}
	return c.Length
}

func (c Config) isHoliday(offset int) bool {
	for _, h := range c.HolidayOffsets {
		if h == offset {
			return true
		}
	}
	return false
}

// DateAt returns the calendar date of a program offset.
func (c Config) DateAt(offset int) time.Time {
	return time.Date(c.Start.Year(), c.Start.Month(), c.Start.Day()+offset, 0, 0, 0, 0, c.Start.Location())
}
