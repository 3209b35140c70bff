package program

import (
	"github.com/samber/lo"

	"github.com/hakanduyar/goal-compass-daily/internal/models"
)

// BootcampStats is measured in lesson hours.
type BootcampStats struct {
	Total      float64
	Completed  float64
	Percentage float64
}

// SportStats is measured in days.
type SportStats struct {
	Total      int
	Completed  int
	Percentage float64
}

// TransferPlusStats has no completed dimension.
type TransferPlusStats struct {
	Total float64
}

type Stats struct {
	Bootcamp     BootcampStats
	Sport        SportStats
	TransferPlus TransferPlusStats
}

// CalculateStats reduces the program into completion totals.
func CalculateStats(days []models.ProgramDay) Stats {
	s := lo.Reduce(days, func(acc Stats, d models.ProgramDay, _ int) Stats {
		if h := ActivityHours(d.Bootcamp); h > 0 {
			acc.Bootcamp.Total += h
			if d.BootcampDone {
				acc.Bootcamp.Completed += h
			}
		}
		if d.Sport.IsApplicable() {
			acc.Sport.Total++
			if d.SportDone {
				acc.Sport.Completed++
			}
		}
		if d.TransferPlusValue != nil && *d.TransferPlusValue > 0 {
			acc.TransferPlus.Total += *d.TransferPlusValue
		}
		return acc
	}, Stats{})

	s.Bootcamp.Percentage = percentage(s.Bootcamp.Completed, s.Bootcamp.Total)
	s.Sport.Percentage = percentage(float64(s.Sport.Completed), float64(s.Sport.Total))
	return s
}

func percentage(completed, total float64) float64 {
	if total == 0 {
		return 0
	}
	return completed / total * 100
}
