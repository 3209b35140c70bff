package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/hakanduyar/goal-compass-daily/internal/constants"
	"github.com/hakanduyar/goal-compass-daily/internal/models"
	"github.com/hakanduyar/goal-compass-daily/internal/network"
	"github.com/hakanduyar/goal-compass-daily/internal/offline"
	"github.com/hakanduyar/goal-compass-daily/internal/tracker"
	"github.com/hakanduyar/goal-compass-daily/internal/tui/components/days"
)

type TransferFormModel struct {
	Day   int
	Hours string
}

type Model struct {
	tracker  *tracker.Tracker
	settings models.Settings

	state  constants.SessionState
	filter constants.DayFilter
	keys   KeyMap
	help   help.Model

	days        days.Model
	bootcampBar progress.Model
	sportBar    progress.Model

	form         *huh.Form
	transferForm *TransferFormModel
	confirmReset *bool

	syncStatus offline.Status
	network    network.State
	statusCh   <-chan offline.Status
	networkCh  <-chan network.State
	unsubs     []func()

	err      string
	width    int
	height   int
	quitting bool
}

func NewModel(tr *tracker.Tracker, settings models.Settings) Model {
	syncer := tr.Syncer()
	statusCh, stopStatus := syncer.Subscribe()
	networkCh, stopNetwork := syncer.SubscribeNetwork()

	m := Model{
		tracker:     tr,
		settings:    settings,
		state:       constants.StateDashboard,
		filter:      constants.FilterAll,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		days:        days.New(15),
		bootcampBar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(30)),
		sportBar:    progress.New(progress.WithGradient("#5A56E0", "#42C77A"), progress.WithWidth(30)),
		syncStatus:  syncer.Status(),
		network:     syncer.NetworkState(),
		statusCh:    statusCh,
		networkCh:   networkCh,
		unsubs:      []func(){stopStatus, stopNetwork},
	}
	m.refresh()
	if idx := tr.Selected(); idx >= 0 {
		m.days.Focus(idx)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForStatus(m.statusCh), waitForNetwork(m.networkCh))
}

// Close stops the status subscriptions.
func (m Model) Close() {
	for _, stop := range m.unsubs {
		stop()
	}
}

// refresh reloads the table after the program or the filter changed.
func (m *Model) refresh() {
	m.days.SetDays(m.tracker.Filter(m.filter))
	if m.tracker.Selected() >= 0 {
		m.syncSelection()
	}
}

// syncSelection selects the day under the cursor.
func (m *Model) syncSelection() {
	if idx, ok := m.days.Selected(); ok {
		_ = m.tracker.Select(idx)
	}
}

func nextFilter(f constants.DayFilter) constants.DayFilter {
	switch f {
	case constants.FilterAll:
		return constants.FilterCompleted
	case constants.FilterCompleted:
		return constants.FilterPending
	default:
		return constants.FilterAll
	}
}
