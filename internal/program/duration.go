package program

import (
	"regexp"
	"strconv"

	"github.com/hakanduyar/goal-compass-daily/internal/models"
)

var durationPattern = regexp.MustCompile(`(\d+)\s*saat(?:\s*(\d+)\s*dk)?`)

// ParseHours sums every "N saat" / "N saat M dk" token in a lesson label.
// Sentinels and text without tokens yield 0.
func ParseHours(text string) float64 {
	if !models.ParseActivity(text).IsApplicable() {
		return 0
	}

	total := 0.0
	for _, m := range durationPattern.FindAllStringSubmatch(text, -1) {
		hours, _ := strconv.Atoi(m[1])
		minutes := 0
		if m[2] != "" {
			minutes, _ = strconv.Atoi(m[2])
		}
		total += float64(hours) + float64(minutes)/60
	}
	return total
}

// ActivityHours is ParseHours for an already parsed slot.
func ActivityHours(a models.Activity) float64 {
	if !a.IsApplicable() {
		return 0
	}
	return ParseHours(a.Label)
}
