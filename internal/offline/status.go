package offline

import "sync"

// Status is the visible state of the sync lifecycle.
type Status int

const (
	StatusIdle Status = iota
	StatusSyncing
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSyncing:
		return "syncing"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

type statusSubs struct {
	mu   sync.Mutex
	subs map[chan Status]struct{}
}

func (h *statusSubs) subscribe() (<-chan Status, func()) {
	ch := make(chan Status, 1)
	h.mu.Lock()
	if h.subs == nil {
		h.subs = make(map[chan Status]struct{})
	}
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

func (h *statusSubs) publish(s Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case <-ch:
		default:
		}
		ch <- s
	}
}
