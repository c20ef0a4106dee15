package gesture

import (
	"testing"

	"github.com/atomicstack/hero-slider/internal/slide"
)

func TestWheelGateThreshold(t *testing.T) {
	gate := NewWheelGate(0)
	cases := []struct {
		delta float64
		ok    bool
		dir   slide.Direction
	}{
		{0, false, slide.Next},
		{29, false, slide.Next},
		{-29, false, slide.Next},
		{30, true, slide.Next},
		{31, true, slide.Next},
		{-31, true, slide.Previous},
		{120, true, slide.Next},
	}
	for _, tc := range cases {
		dir, ok := gate.Direction(tc.delta)
		if ok != tc.ok {
			t.Fatalf("delta %v: ok = %v, want %v", tc.delta, ok, tc.ok)
		}
		if ok && dir != tc.dir {
			t.Fatalf("delta %v: dir = %s, want %s", tc.delta, dir, tc.dir)
		}
	}
}

func TestWheelGateCustomThreshold(t *testing.T) {
	gate := NewWheelGate(50)
	if _, ok := gate.Direction(40); ok {
		t.Fatalf("delta 40 should be below a threshold of 50")
	}
	if _, ok := gate.Direction(50); !ok {
		t.Fatalf("delta 50 should pass a threshold of 50")
	}
}

func TestSwipeTrackerThresholdIsStrict(t *testing.T) {
	s := NewSwipeTracker(0)
	s.Start(200)
	if _, ok := s.End(150); ok {
		t.Fatalf("a distance of exactly 50 must not trigger")
	}
	s.Start(200)
	dir, ok := s.End(149)
	if !ok || dir != slide.Next {
		t.Fatalf("swipe up of 51: got dir=%s ok=%v", dir, ok)
	}
	s.Start(100)
	dir, ok = s.End(151)
	if !ok || dir != slide.Previous {
		t.Fatalf("swipe down of 51: got dir=%s ok=%v", dir, ok)
	}
}

func TestSwipeTrackerIgnoresEndWithoutStart(t *testing.T) {
	s := NewSwipeTracker(50)
	if _, ok := s.End(0); ok {
		t.Fatalf("End without Start must be ignored")
	}
	s.Start(300)
	if _, ok := s.End(100); !ok {
		t.Fatalf("expected swipe to trigger")
	}
	if s.Pending() {
		t.Fatalf("tracker should reset after End")
	}
	if _, ok := s.End(0); ok {
		t.Fatalf("second End must not reuse the consumed start")
	}
}

func TestSwipeTrackerStartAtZeroIsTracked(t *testing.T) {
	s := NewSwipeTracker(50)
	s.Start(0)
	dir, ok := s.End(60)
	if !ok || dir != slide.Previous {
		t.Fatalf("gesture starting at 0: got dir=%s ok=%v", dir, ok)
	}
}

func TestSwipeTrackerCancel(t *testing.T) {
	s := NewSwipeTracker(50)
	s.Start(300)
	s.Cancel()
	if _, ok := s.End(0); ok {
		t.Fatalf("cancelled gesture must not trigger")
	}
}
