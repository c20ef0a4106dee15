// Package slide owns the hero slider's navigation state: which slide is
// showing and whether a transition is still animating.
//
// A Controller accepts at most one transition per cooldown window. Requests
// arriving while a transition is in flight are dropped, not queued. The
// controller never starts timers itself; the host schedules a fire-once
// callback for every accepted Transition and reports its expiry via Release.
package slide

import (
	"errors"
	"time"
)

// DefaultCooldown matches the duration of the visual slide transition.
const DefaultCooldown = 1000 * time.Millisecond

// ErrEmptyCatalog is returned when a controller is created for zero slides.
var ErrEmptyCatalog = errors.New("slide: controller needs at least one slide")

// Direction selects the neighbouring slide.
type Direction int

const (
	Next Direction = iota
	Previous
)

func (d Direction) String() string {
	if d == Previous {
		return "previous"
	}
	return "next"
}

// State is the lock state of the controller.
type State int

const (
	Unlocked State = iota
	Locked
)

func (s State) String() string {
	if s == Locked {
		return "locked"
	}
	return "unlocked"
}

// Transition describes an accepted index change. Epoch identifies the
// cooldown that must be released before the next transition is accepted.
type Transition struct {
	From     int
	To       int
	Epoch    uint64
	Cooldown time.Duration
}

// Option customises a Controller.
type Option func(*Controller)

// WithCooldown overrides DefaultCooldown. Non-positive values are ignored.
func WithCooldown(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.cooldown = d
		}
	}
}

// Controller is the single owner of the current index and the animation lock.
// It is not safe for concurrent use; all calls are expected on the UI loop.
type Controller struct {
	length   int
	index    int
	locked   bool
	epoch    uint64
	cooldown time.Duration
}

// New creates a controller for length slides positioned on the first slide.
func New(length int, opts ...Option) (*Controller, error) {
	if length < 1 {
		return nil, ErrEmptyCatalog
	}
	c := &Controller{length: length, cooldown: DefaultCooldown}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Advance moves one slide in dir, wrapping at either end. It reports false
// and leaves the state untouched while a transition is in flight.
func (c *Controller) Advance(dir Direction) (Transition, bool) {
	if c.locked {
		return Transition{}, false
	}
	var to int
	switch dir {
	case Previous:
		to = (c.index - 1 + c.length) % c.length
	default:
		to = (c.index + 1) % c.length
	}
	return c.commit(to), true
}

// Select jumps straight to target. target must be a valid slide offset.
func (c *Controller) Select(target int) (Transition, bool) {
	if c.locked {
		return Transition{}, false
	}
	return c.commit(target), true
}

func (c *Controller) commit(to int) Transition {
	c.locked = true
	c.epoch++
	t := Transition{From: c.index, To: to, Epoch: c.epoch, Cooldown: c.cooldown}
	c.index = to
	return t
}

// Release ends the cooldown identified by epoch. It returns true only for
// the first release of the pending cooldown; stale or repeated firings have
// no effect.
func (c *Controller) Release(epoch uint64) bool {
	if !c.locked || epoch != c.epoch {
		return false
	}
	c.locked = false
	return true
}

// Current returns the index of the slide on screen.
func (c *Controller) Current() int {
	return c.index
}

// IsActive reports whether index i is the slide on screen.
func (c *Controller) IsActive(i int) bool {
	return i == c.index
}

// Locked reports whether a transition is still in its cooldown window.
func (c *Controller) Locked() bool {
	return c.locked
}

// State returns the lock state.
func (c *Controller) State() State {
	if c.locked {
		return Locked
	}
	return Unlocked
}

// Len returns the number of slides the controller cycles through.
func (c *Controller) Len() int {
	return c.length
}

// Cooldown returns the lock duration applied after every transition.
func (c *Controller) Cooldown() time.Duration {
	return c.cooldown
}
