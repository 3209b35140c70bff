package tui

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/hakanduyar/goal-compass-daily/internal/constants"
	"github.com/hakanduyar/goal-compass-daily/internal/logger"
	"github.com/hakanduyar/goal-compass-daily/internal/models"
	"github.com/hakanduyar/goal-compass-daily/internal/network"
	"github.com/hakanduyar/goal-compass-daily/internal/offline"
)

type syncStatusMsg offline.Status

type networkMsg network.State

// appliedMsg reports the outcome of a mutation run off the UI loop.
type appliedMsg struct {
	err error
}

type resetMsg struct {
	err error
}

func waitForStatus(ch <-chan offline.Status) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return syncStatusMsg(s)
	}
}

func waitForNetwork(ch <-chan network.State) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return networkMsg(s)
	}
}

func (m Model) apply(mutation models.Mutation) tea.Cmd {
	tr := m.tracker
	return func() tea.Msg {
		return appliedMsg{err: tr.Apply(context.Background(), mutation)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if h := msg.Height - 20; h > 5 {
			m.days.SetHeight(h)
		}
		return m, nil

	case syncStatusMsg:
		m.syncStatus = offline.Status(msg)
		return m, waitForStatus(m.statusCh)

	case networkMsg:
		m.network = network.State(msg)
		return m, waitForNetwork(m.networkCh)

	case appliedMsg:
		m.setError(msg.err)
		m.refresh()
		return m, nil

	case resetMsg:
		m.setError(msg.err)
		m.refresh()
		return m, nil
	}

	switch m.state {
	case constants.StateTransferForm:
		return m.updateTransferForm(msg)
	case constants.StateConfirmReset:
		return m.updateConfirmReset(msg)
	}
	return m.updateDashboard(msg)
}

func (m *Model) setError(err error) {
	if err == nil {
		m.err = ""
		return
	}
	logger.Warn("Change rejected", "error", err)
	m.err = err.Error()
}

func (m Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(keyMsg, m.keys.Filter):
		m.filter = nextFilter(m.filter)
		m.refresh()
		return m, nil
	case key.Matches(keyMsg, m.keys.Reset):
		return m.openConfirmReset()
	}

	idx, selected := m.days.Selected()
	if selected {
		day := m.tracker.Days()[idx]
		switch {
		case key.Matches(keyMsg, m.keys.Bootcamp):
			return m, m.apply(models.SetBootcampDone{Day: idx, Done: !day.BootcampDone})
		case key.Matches(keyMsg, m.keys.Sport):
			return m, m.apply(models.SetSportDone{Day: idx, Done: !day.SportDone})
		case key.Matches(keyMsg, m.keys.Transfer):
			return m, m.apply(models.SetTransferPlusDone{Day: idx, Done: !day.TransferPlusDone})
		case key.Matches(keyMsg, m.keys.LogHours):
			return m.openTransferForm(idx, day)
		}
	}

	var cmd tea.Cmd
	m.days, cmd = m.days.Update(msg)
	if key.Matches(keyMsg, m.keys.Up, m.keys.Down) {
		m.syncSelection()
	}
	return m, cmd
}

func (m Model) openTransferForm(idx int, day models.ProgramDay) (tea.Model, tea.Cmd) {
	if day.TransferPlus == models.TransferHoliday {
		m.setError(models.ErrTransferPlusLocked)
		return m, nil
	}

	m.transferForm = &TransferFormModel{Day: idx}
	if day.TransferPlusValue != nil {
		m.transferForm.Hours = strconv.FormatFloat(*day.TransferPlusValue, 'f', -1, 64)
	}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Transfer+ saat (%s)", day.Date)).
				Description("Boş bırakırsanız kayıt silinir.").
				Value(&m.transferForm.Hours).
				Validate(func(s string) error {
					_, err := parseHours(s)
					return err
				}),
		),
	)
	m.state = constants.StateTransferForm
	return m, m.form.Init()
}

func (m Model) updateTransferForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.closeForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		hours, err := parseHours(m.transferForm.Hours)
		day := m.transferForm.Day
		m.closeForm()
		if err != nil {
			m.setError(err)
			return m, nil
		}
		return m, m.apply(models.SetTransferPlusValue{Day: day, Hours: hours})
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

func (m Model) openConfirmReset() (tea.Model, tea.Cmd) {
	m.confirmReset = new(bool)
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Programı sıfırla?").
				Description("Tüm ilerleme ve bekleyen senkronizasyon kayıtları silinir.").
				Affirmative("Evet").
				Negative("Hayır").
				Value(m.confirmReset),
		),
	)
	m.state = constants.StateConfirmReset
	return m, m.form.Init()
}

func (m Model) updateConfirmReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.closeForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		confirmed := m.confirmReset != nil && *m.confirmReset
		m.closeForm()
		if !confirmed {
			return m, nil
		}
		tr := m.tracker
		return m, func() tea.Msg {
			return resetMsg{err: tr.Reset(context.Background())}
		}
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

func (m *Model) closeForm() {
	m.form = nil
	m.transferForm = nil
	m.confirmReset = nil
	m.state = constants.StateDashboard
}

// parseHours accepts "1.5" or "1,5". Blank clears the value.
func parseHours(s string) (*float64, error) {
	s = strings.Replace(strings.TrimSpace(s), ",", ".", 1)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.New("sayı girin, örn. 1.5")
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, models.ErrNegativeHours
	}
	return &v, nil
}
