// Package gesture turns raw scroll and drag input into slide directions.
package gesture

import (
	"math"

	"github.com/atomicstack/hero-slider/internal/slide"
)

const (
	// DefaultWheelThreshold is the smallest wheel delta treated as intent.
	DefaultWheelThreshold = 30.0
	// DefaultSwipeThreshold is the vertical distance a swipe must exceed.
	DefaultSwipeThreshold = 50.0
)

// WheelGate filters wheel noise. Deltas with a magnitude below Threshold are
// ignored; positive deltas scroll forward.
type WheelGate struct {
	Threshold float64
}

// NewWheelGate returns a gate, falling back to DefaultWheelThreshold when
// threshold is not positive.
func NewWheelGate(threshold float64) WheelGate {
	if threshold <= 0 {
		threshold = DefaultWheelThreshold
	}
	return WheelGate{Threshold: threshold}
}

// Direction maps a wheel delta onto a slide direction.
func (g WheelGate) Direction(delta float64) (slide.Direction, bool) {
	if math.Abs(delta) < g.Threshold {
		return slide.Next, false
	}
	if delta > 0 {
		return slide.Next, true
	}
	return slide.Previous, true
}

// SwipeTracker pairs a touch start with the following touch end. Only the
// two endpoints matter; intermediate positions are never reported to it.
type SwipeTracker struct {
	Threshold float64

	start   float64
	pending bool
}

// NewSwipeTracker returns a tracker, falling back to DefaultSwipeThreshold
// when threshold is not positive.
func NewSwipeTracker(threshold float64) *SwipeTracker {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &SwipeTracker{Threshold: threshold}
}

// Start records the vertical position where a gesture began, replacing any
// unfinished gesture.
func (s *SwipeTracker) Start(y float64) {
	s.start = y
	s.pending = true
}

// Pending reports whether a gesture has started but not yet ended.
func (s *SwipeTracker) Pending() bool {
	return s.pending
}

// Cancel discards an unfinished gesture.
func (s *SwipeTracker) Cancel() {
	s.pending = false
}

// End completes the gesture at y. Moving up (start above end on screen, i.e.
// start-end > 0) selects the next slide. The distance must strictly exceed
// Threshold. An End without a matching Start is ignored.
func (s *SwipeTracker) End(y float64) (slide.Direction, bool) {
	if !s.pending {
		return slide.Next, false
	}
	s.pending = false
	diff := s.start - y
	if math.Abs(diff) <= s.Threshold {
		return slide.Next, false
	}
	if diff > 0 {
		return slide.Next, true
	}
	return slide.Previous, true
}
