package program

import "github.com/hakanduyar/goal-compass-daily/internal/models"

// CalculateStreak counts completed days backward from the last entry.
// A day counts when any applicable activity is done. The scan stops at the first
// day that has applicable activities none of which is done. Days with nothing
// applicable are skipped.
func CalculateStreak(days []models.ProgramDay) int {
	streak := 0
	for i := len(days) - 1; i >= 0; i-- {
		d := days[i]
		switch {
		case d.CountsTowardStreak():
			streak++
		case d.HasApplicable():
			return streak
		}
	}
	return streak
}
