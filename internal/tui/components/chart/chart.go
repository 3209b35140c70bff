package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/hakanduyar/goal-compass-daily/internal/program"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(8)
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// Render draws one horizontal bar per day with logged hours. Bars are scaled
// so the longest fills width.
func Render(points []program.SeriesPoint, width int) string {
	logged := lo.Filter(points, func(p program.SeriesPoint, _ int) bool {
		return p.Hours > 0
	})
	if len(logged) == 0 {
		return "Henüz Transfer+ saati girilmedi."
	}

	max := lo.MaxBy(logged, func(a, b program.SeriesPoint) bool {
		return a.Hours > b.Hours
	}).Hours

	barWidth := width - 8 - 8
	if barWidth < 10 {
		barWidth = 10
	}

	lines := lo.Map(logged, func(p program.SeriesPoint, _ int) string {
		n := int(math.Round(p.Hours / max * float64(barWidth)))
		if n < 1 {
			n = 1
		}
		return labelStyle.Render(p.Label) +
			barStyle.Render(strings.Repeat("█", n)) + " " +
			valueStyle.Render(fmt.Sprintf("%.1f", p.Hours))
	})
	return strings.Join(lines, "\n")
}
