package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/hakanduyar/goal-compass-daily/internal/constants"
	"github.com/hakanduyar/goal-compass-daily/internal/network"
	"github.com/hakanduyar/goal-compass-daily/internal/offline"
	"github.com/hakanduyar/goal-compass-daily/internal/program"
	"github.com/hakanduyar/goal-compass-daily/internal/tui/components/chart"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateTransferForm:
		content = panelStyle.Render(m.form.View())
	case constants.StateConfirmReset:
		content = panelStyle.Render(dangerStyle.Render("⚠ Sıfırlama") + "\n\n" + m.form.View())
	default:
		content = m.viewDashboard()
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		content,
	)
	if m.err != "" {
		ui = lipgloss.JoinVertical(lipgloss.Left, ui, errorStyle.Render("✗ "+m.err))
	}
	return lipgloss.JoinVertical(lipgloss.Left, ui, m.help.View(m.keys))
}

func (m Model) viewHeader() string {
	title := titleStyle.Render(fmt.Sprintf("🧭 %s", strings.ToUpper(constants.AppName)))

	var net string
	switch m.network {
	case network.StateOnline:
		net = onlineStyle.Render("● çevrimiçi")
	case network.StateOffline:
		net = offlineStyle.Render("● çevrimdışı")
	default:
		net = mutedStyle.Render("● bilinmiyor")
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", net, "  ", m.viewSyncStatus()) + "\n"
}

func (m Model) viewSyncStatus() string {
	syncer := m.tracker.Syncer()
	pending := syncer.PendingCount()

	switch m.syncStatus {
	case offline.StatusSyncing:
		return mutedStyle.Render(fmt.Sprintf("⟳ senkronize ediliyor (%d)", pending))
	case offline.StatusSuccess:
		return onlineStyle.Render("✓ senkronize edildi")
	case offline.StatusError:
		return errorStyle.Render("✗ senkronizasyon hatası")
	}

	parts := []string{}
	if pending > 0 {
		parts = append(parts, fmt.Sprintf("%d bekleyen değişiklik", pending))
	}
	if last := syncer.LastSync(); last != nil {
		parts = append(parts, "son: "+humanize.Time(*last))
	}
	return mutedStyle.Render(strings.Join(parts, " · "))
}

func (m Model) viewDashboard() string {
	stats := m.tracker.Stats()

	top := lipgloss.JoinHorizontal(
		lipgloss.Top,
		panelStyle.Render(m.viewStats(stats)),
		panelStyle.Render(m.viewNote()),
	)

	filter := mutedStyle.Render(fmt.Sprintf("filtre: %s", m.filter))
	table := panelStyle.Render(filter + "\n" + m.days.View())

	width := m.width - 4
	if width < 40 {
		width = 40
	}
	series := panelStyle.Render(labelStyle.Render("Transfer+") + "\n" + chart.Render(m.tracker.Series(), width))

	return lipgloss.JoinVertical(lipgloss.Left, top, table, series)
}

func (m Model) viewStats(stats program.Stats) string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("Bootcamp"))
	b.WriteString(m.bootcampBar.ViewAs(stats.Bootcamp.Percentage / 100))
	fmt.Fprintf(&b, " %.1f/%.1f saat\n", stats.Bootcamp.Completed, stats.Bootcamp.Total)

	b.WriteString(labelStyle.Render("Spor"))
	b.WriteString(m.sportBar.ViewAs(stats.Sport.Percentage / 100))
	fmt.Fprintf(&b, " %d/%d gün\n", stats.Sport.Completed, stats.Sport.Total)

	b.WriteString(labelStyle.Render("Transfer+"))
	fmt.Fprintf(&b, "%.1f saat\n", stats.TransferPlus.Total)

	b.WriteString(labelStyle.Render("Seri"))
	fmt.Fprintf(&b, "%d gün", m.tracker.Streak())

	if m.settings.ShowMotivation {
		b.WriteString("\n\n")
		b.WriteString(motivationStyle.Render(program.Tier(stats).Message()))
	}
	return b.String()
}

func (m Model) viewNote() string {
	return labelStyle.Render("Not") + "\n" + noteStyle.Width(36).Render(m.tracker.SelectedNote())
}
