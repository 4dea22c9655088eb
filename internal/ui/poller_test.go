package ui

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tapedeck/tapedeck/internal/model"
)

func TestPollerDropsOverlappingPolls(t *testing.T) {
	release := make(chan struct{})
	var started atomic.Int32

	fetch := func(ctx context.Context) Snapshot {
		started.Add(1)
		<-release
		return Snapshot{}
	}

	p := NewPoller(time.Hour, fetch, func(Snapshot) {})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	// Wait for the initial poll to be in flight.
	deadline := time.After(2 * time.Second)
	for started.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("Initial poll never started")
		case <-time.After(5 * time.Millisecond):
		}
	}

	// Kicks while a fetch is in flight must be dropped, not queued.
	for i := 0; i < 5; i++ {
		p.Kick()
	}
	time.Sleep(50 * time.Millisecond)
	if got := started.Load(); got != 1 {
		t.Errorf("Expected 1 in-flight poll, got %d", got)
	}

	close(release)
}

func TestPollerKickTriggersFetch(t *testing.T) {
	results := make(chan Snapshot, 10)
	fetch := func(ctx context.Context) Snapshot {
		return Snapshot{State: &model.PlaybackState{IsPlaying: true}}
	}

	p := NewPoller(time.Hour, fetch, func(s Snapshot) { results <- s })
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	// Initial poll.
	select {
	case <-results:
	case <-time.After(2 * time.Second):
		t.Fatal("Initial poll never completed")
	}

	p.Kick()
	select {
	case snap := <-results:
		if snap.State == nil || !snap.State.IsPlaying {
			t.Errorf("Unexpected snapshot: %+v", snap)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Kick never produced a result")
	}
}

func TestPollerStopsOnCancel(t *testing.T) {
	var polls atomic.Int32
	fetch := func(ctx context.Context) Snapshot {
		polls.Add(1)
		return Snapshot{}
	}

	p := NewPoller(10*time.Millisecond, fetch, func(Snapshot) {})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	time.Sleep(35 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	settled := polls.Load()
	time.Sleep(30 * time.Millisecond)
	if polls.Load() != settled {
		t.Error("Polling continued after cancel")
	}
}
