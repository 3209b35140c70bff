package network

import (
	"sync"
)

// State is the connectivity signal consumed by the sync queue.
type State int

const (
	StateUnknown State = iota
	StateOnline
	StateOffline
)

func (s State) String() string {
	switch s {
	case StateOnline:
		return "online"
	case StateOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// Monitor reports connectivity and streams transitions.
// Only StateOnline counts as online.
type Monitor interface {
	State() State
	IsOnline() bool
	// Subscribe returns a channel that always holds the latest state change
	// and a func that unsubscribes and closes it.
	Subscribe() (<-chan State, func())
}

// hub tracks the current state and fans changes out to subscribers.
type hub struct {
	mu    sync.Mutex
	state State
	subs  map[chan State]struct{}
}

func newHub(initial State) *hub {
	return &hub{state: initial, subs: make(map[chan State]struct{})}
}

func (h *hub) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

func (h *hub) IsOnline() bool {
	return h.State() == StateOnline
}

func (h *hub) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 1)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
}

// set updates the state and notifies subscribers when it changed.
func (h *hub) set(s State) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state == s {
		return false
	}
	h.state = s
	for ch := range h.subs {
		// keep only the newest value
		select {
		case <-ch:
		default:
		}
		ch <- s
	}
	return true
}

// Static is a manually driven monitor, used for --offline and in tests.
type Static struct {
	*hub
}

func NewStatic(online bool) *Static {
	return &Static{hub: newHub(stateFor(online))}
}

// Set flips the connectivity signal.
func (s *Static) Set(online bool) {
	s.set(stateFor(online))
}

func stateFor(online bool) State {
	if online {
		return StateOnline
	}
	return StateOffline
}
