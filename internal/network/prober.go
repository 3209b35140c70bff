package network

import (
	"context"
	"net"
	"time"

	"github.com/hakanduyar/goal-compass-daily/internal/constants"
	"github.com/hakanduyar/goal-compass-daily/internal/logger"
)

// dialFunc is swapped in tests.
var dialFunc = func(ctx context.Context, address string) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", address)
	if err != nil {
		return err
	}
	return conn.Close()
}

// Prober decides connectivity by periodically opening a TCP connection.
// It reports StateUnknown until the first probe finishes.
type Prober struct {
	*hub
	address  string
	interval time.Duration
	timeout  time.Duration
}

func NewProber(address string) *Prober {
	return &Prober{
		hub:      newHub(StateUnknown),
		address:  address,
		interval: constants.ProbeInterval,
		timeout:  constants.ProbeTimeout,
	}
}

// Probe runs a single reachability check and updates the state.
func (p *Prober) Probe(ctx context.Context) State {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	next := StateOnline
	if err := dialFunc(ctx, p.address); err != nil {
		next = StateOffline
		logger.Debug("Reachability probe failed", "address", p.address, "error", err)
	}
	if p.set(next) {
		logger.Info("Network status changed", "status", next.String())
	}
	return next
}

// Run probes until ctx is cancelled.
func (p *Prober) Run(ctx context.Context) {
	p.Probe(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Probe(ctx)
		}
	}
}
