package days

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hakanduyar/goal-compass-daily/internal/models"
	"github.com/hakanduyar/goal-compass-daily/internal/program"
)

var columns = []table.Column{
	{Title: "#", Width: 3},
	{Title: "Tarih", Width: 7},
	{Title: "Bootcamp", Width: 30},
	{Title: "Spor", Width: 24},
	{Title: "Transfer+", Width: 12},
}

// Model lists program days. Rows keep their index in the full program so a
// filtered view still addresses the right day.
type Model struct {
	table table.Model
	rows  []program.IndexedDay
}

func New(height int) Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return Model{table: t}
}

func (m *Model) SetDays(rows []program.IndexedDay) {
	m.rows = rows
	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = table.Row{
			strconv.Itoa(r.Index + 1),
			r.Day.Date,
			cell(r.Day.Bootcamp, r.Day.BootcampDone),
			cell(r.Day.Sport, r.Day.SportDone),
			transfer(r.Day),
		}
	}
	m.table.SetRows(tableRows)
	if c := m.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// Selected returns the program index under the cursor.
func (m Model) Selected() (int, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.rows) {
		return -1, false
	}
	return m.rows[c].Index, true
}

// Focus moves the cursor to the row holding program index idx.
func (m *Model) Focus(idx int) {
	for i, r := range m.rows {
		if r.Index == idx {
			m.table.SetCursor(i)
			return
		}
	}
}

func (m *Model) SetHeight(h int) {
	m.table.SetHeight(h)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.rows) == 0 {
		return "\n  Bu filtrede gün yok."
	}
	return m.table.View()
}

func cell(a models.Activity, done bool) string {
	if !a.IsApplicable() {
		return a.String()
	}
	return mark(done) + " " + a.String()
}

func transfer(d models.ProgramDay) string {
	if d.TransferPlus == models.TransferHoliday {
		return d.TransferPlus.String()
	}
	if d.TransferPlusValue == nil {
		return mark(d.TransferPlusDone) + " -"
	}
	return fmt.Sprintf("%s %.1f", mark(d.TransferPlusDone), *d.TransferPlusValue)
}

func mark(done bool) string {
	if done {
		return "✓"
	}
	return "·"
}
