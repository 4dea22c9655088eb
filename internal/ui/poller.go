package ui

import (
	"context"
	"sync/atomic"
	"time"
)

// Poller fetches the playback state on a fixed interval. At most one fetch
// is in flight at a time: when the proxy or the provider is slow, ticks are
// dropped instead of stacking requests behind each other.
type Poller struct {
	interval time.Duration
	fetch    func(context.Context) Snapshot
	onResult func(Snapshot)

	inFlight atomic.Bool
	kick     chan struct{}
}

// NewPoller creates a poller. fetch runs on a background goroutine; onResult
// is called with every completed snapshot, also off the UI thread.
func NewPoller(interval time.Duration, fetch func(context.Context) Snapshot, onResult func(Snapshot)) *Poller {
	return &Poller{
		interval: interval,
		fetch:    fetch,
		onResult: onResult,
		kick:     make(chan struct{}, 1),
	}
}

// Run polls until the context is cancelled.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		case <-p.kick:
			p.poll(ctx)
		}
	}
}

// Kick requests an immediate poll, used right after a control action so the
// window reflects the result without waiting out the interval.
func (p *Poller) Kick() {
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

func (p *Poller) poll(ctx context.Context) {
	if !p.inFlight.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer p.inFlight.Store(false)
		p.onResult(p.fetch(ctx))
	}()
}
