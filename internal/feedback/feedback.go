package feedback

import (
	"sync"
	"time"

	"baskettracker/internal/models"
)

const DefaultWindow = 800 * time.Millisecond

// Feedback is the most recent action applied, kept only for display emphasis.
type Feedback struct {
	PlayerID  string            `json:"playerId"`
	Action    models.ActionKind `json:"actionKind"`
	Magnitude int               `json:"signedMagnitude"`
}

// Channel holds at most one Feedback and clears it once its window elapses.
// Each Set re-arms the timer; a timer that fires after being superseded is a
// no-op.
type Channel struct {
	mu      sync.Mutex
	window  time.Duration
	current *Feedback
	timer   *time.Timer
	seq     uint64
}

func NewChannel(window time.Duration) *Channel {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Channel{window: window}
}

func (c *Channel) Set(fb Feedback) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	id := c.seq
	c.current = &fb
	c.timer = time.AfterFunc(c.window, func() { c.expire(id) })
}

func (c *Channel) Current() (Feedback, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return Feedback{}, false
	}
	return *c.current, true
}

// Dismiss clears the slot ahead of its window.
func (c *Channel) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	c.current = nil
}

func (c *Channel) Window() time.Duration {
	return c.window
}

func (c *Channel) expire(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seq != id {
		return
	}
	c.current = nil
	c.timer = nil
}

func (c *Channel) stopLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.seq++
}
