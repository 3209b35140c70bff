package program

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/hakanduyar/goal-compass-daily/internal/constants"
	"github.com/hakanduyar/goal-compass-daily/internal/models"
	"github.com/hakanduyar/goal-compass-daily/internal/utils"
)

// nowFunc is swapped in tests.
var nowFunc = time.Now

// IndexedDay keeps a day's position in the full program.
type IndexedDay struct {
	Index int
	Day   models.ProgramDay
}

// SeriesPoint is one bar of the TransferPlus chart.
type SeriesPoint struct {
	Label string
	Hours float64
}

// ParseFilter accepts all, completed or pending. Empty means all.
func ParseFilter(s string) (constants.DayFilter, error) {
	switch f := constants.DayFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return constants.FilterAll, nil
	case constants.FilterAll, constants.FilterCompleted, constants.FilterPending:
		return f, nil
	default:
		return "", fmt.Errorf("invalid filter %q (expected all, completed or pending)", s)
	}
}

// FilterDays selects days by completion. Days with nothing applicable
// only show up under FilterAll.
func FilterDays(days []models.ProgramDay, filter constants.DayFilter) []IndexedDay {
	indexed := lo.Map(days, func(d models.ProgramDay, i int) IndexedDay {
		return IndexedDay{Index: i, Day: d}
	})

	switch filter {
	case constants.FilterCompleted:
		return lo.Filter(indexed, func(d IndexedDay, _ int) bool {
			return d.Day.AllApplicableDone()
		})
	case constants.FilterPending:
		return lo.Filter(indexed, func(d IndexedDay, _ int) bool {
			return d.Day.HasApplicable() && !d.Day.AllApplicableDone()
		})
	default:
		return indexed
	}
}

// TransferPlusSeries maps each day to its logged hours; unset counts as 0.
func TransferPlusSeries(days []models.ProgramDay) []SeriesPoint {
	return lo.Map(days, func(d models.ProgramDay, _ int) SeriesPoint {
		p := SeriesPoint{Label: d.Date}
		if d.TransferPlusValue != nil {
			p.Hours = *d.TransferPlusValue
		}
		return p
	})
}

// NoteFor returns the note shown for the selected day. A negative index
// means nothing is selected yet.
func NoteFor(days []models.ProgramDay, idx int) string {
	if idx < 0 {
		if len(days) > 0 && days[0].Note != "" {
			return days[0].Note
		}
		return constants.NoDaySelected
	}
	if idx >= len(days) {
		return constants.NoDaySelected
	}
	if days[idx].Note == "" {
		return constants.NoNoteForDay
	}
	return days[idx].Note
}

// ResolveDay turns a user reference into a zero-based index. Accepted forms:
// "today", a 1-based day number, a YYYY-MM-DD date or a label like "15 Haz".
func ResolveDay(cfg Config, days []models.ProgramDay, ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	idx := -1

	switch {
	case strings.EqualFold(ref, "today"):
		idx = utils.DaysBetween(cfg.Start, nowFunc().In(cfg.Start.Location()))
	case isDigits(ref):
		n, err := strconv.Atoi(ref)
		if err != nil {
			return -1, fmt.Errorf("invalid day number %q: %w", ref, err)
		}
		idx = n - 1
	default:
		if date, err := utils.ParseDateInLocation(ref, cfg.Start.Location()); err == nil {
			idx = utils.DaysBetween(cfg.Start, date)
			break
		}
		_, i, found := lo.FindIndexOf(days, func(d models.ProgramDay) bool {
			return strings.EqualFold(d.Date, ref)
		})
		if !found {
			return -1, fmt.Errorf("no program day matches %q", ref)
		}
		idx = i
	}

	if idx < 0 || idx >= len(days) {
		return -1, fmt.Errorf("%w: %q is outside the %d-day program", models.ErrDayOutOfRange, ref, len(days))
	}
	return idx, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
