package websocket

import (
	"sync"
	"time"
)

// Coalescer collapses bursts of events: each Offer resets a timer, and
// only the most recent event within the window is published when the
// burst goes quiet. Search-as-you-type produces one re-render instead of
// one per keystroke. Latency only; every final state is still published.
type Coalescer struct {
	hub    *Hub
	window time.Duration

	mu      sync.Mutex
	pending *Event
	timer   *time.Timer
}

// NewCoalescer creates a Coalescer publishing to hub after window of quiet.
func NewCoalescer(hub *Hub, window time.Duration) *Coalescer {
	return &Coalescer{hub: hub, window: window}
}

// Offer records ev as the latest pending event and (re)starts the window.
func (c *Coalescer) Offer(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending = &ev
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.window, c.flush)
}

func (c *Coalescer) flush() {
	c.mu.Lock()
	ev := c.pending
	c.pending = nil
	c.timer = nil
	c.mu.Unlock()

	if ev != nil {
		c.hub.Publish(*ev)
	}
}

// Stop cancels any pending publish.
func (c *Coalescer) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.pending = nil
}
