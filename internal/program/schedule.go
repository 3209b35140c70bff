package program

import (
	"fmt"
	"time"

	"github.com/hakanduyar/goal-compass-daily/internal/models"
	"github.com/hakanduyar/goal-compass-daily/internal/utils"
)

const (
	noteWelcome     = "🚀 Programın ilk günü! Disiplinli ve motive bir başlangıç yapın."
	noteLastLesson  = "🎓 Bugün bootcamp derslerinin son günü! Tebrikler!"
	noteLessonsDone = "✨ Tüm bootcamp dersleri tamamlandı. Başarılar dileriz!"
	noteSunday      = "🏖️ Pazar günü, spor dışındaki diğer programlar devam ediyor."
	holidayNoteTmpl = "🎉 %s, programdaki özel tatil gününüz! Tamamen dinlenin ve rahatlayın."
)

// Generate builds the program: one entry per calendar day starting at cfg.Start.
func Generate(cfg Config) []models.ProgramDay {
	n := cfg.length()
	days := make([]models.ProgramDay, 0, n)
	assigned := 0

	for offset := 0; offset < n; offset++ {
		date := cfg.DateAt(offset)
		day := models.ProgramDay{
			Date:     utils.DayLabel(date),
			Bootcamp: models.NoActivity(),
			Sport:    models.NoActivity(),
		}

		if cfg.isHoliday(offset) {
			day.Bootcamp = models.Holiday()
			day.Sport = models.Holiday()
			day.TransferPlus = models.TransferHoliday
			day.Note = fmt.Sprintf(holidayNoteTmpl, utils.LongDayLabel(date))
			days = append(days, day)
			continue
		}

		sunday := date.Weekday() == time.Sunday

		switch {
		case offset < cfg.AssignmentDays:
			day.Bootcamp = models.Scheduled(cfg.AssignmentLabel)
		case !sunday && offset >= cfg.LessonStart && offset <= cfg.LessonEnd && assigned < len(cfg.Lessons):
			day.Bootcamp = models.Scheduled(cfg.Lessons[assigned])
			assigned++
		}

		day.Sport = sportFor(cfg, offset, date.Weekday())

		switch {
		case offset == 0:
			day.Note = noteWelcome
		case offset == cfg.LessonEnd && !day.Bootcamp.IsApplicable():
			day.Note = noteLastLesson
		case len(cfg.Lessons) > 0 && assigned == len(cfg.Lessons):
			day.Note = noteLessonsDone
		case sunday:
			day.Note = noteSunday
		}

		days = append(days, day)
	}

	return days
}

func sportFor(cfg Config, offset int, wd time.Weekday) models.Activity {
	if wd == time.Sunday {
		return models.NotApplicable()
	}
	if label, ok := cfg.SportOverrides[offset]; ok {
		return models.Scheduled(label)
	}
	if offset < cfg.CycleStart {
		return models.NoActivity()
	}
	switch wd {
	case time.Monday, time.Wednesday, time.Friday:
		return scheduledOrNone(cfg.OddActivity)
	default:
		return scheduledOrNone(cfg.EvenActivity)
	}
}

func scheduledOrNone(label string) models.Activity {
	if label == "" {
		return models.NoActivity()
	}
	return models.Scheduled(label)
}
