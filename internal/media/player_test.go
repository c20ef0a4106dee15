package media

import (
	"testing"
	"time"

	"github.com/atomicstack/hero-slider/internal/catalog"
)

func TestStillImageDoesNotPlay(t *testing.T) {
	p := NewPlayer(time.Second)
	p.Load(catalog.Item{DisplayName: "still"})
	if p.Status() != StatusStill || p.Playing() {
		t.Fatalf("expected still status, got %s", p.Status())
	}
	if p.Tick(500 * time.Millisecond) {
		t.Fatalf("still image must not advance")
	}
}

func TestFreezeStopsOnFinalFrame(t *testing.T) {
	p := NewPlayer(time.Second)
	p.Load(catalog.Item{VideoRef: "clip.mp4", VideoEnd: catalog.VideoEndFreeze})
	p.Tick(600 * time.Millisecond)
	if got := p.Progress(); got < 0.59 || got > 0.61 {
		t.Fatalf("expected ~0.6 progress, got %v", got)
	}
	p.Tick(600 * time.Millisecond)
	if p.Status() != StatusFrozen || p.Progress() != 1 {
		t.Fatalf("expected frozen at end, got %s %v", p.Status(), p.Progress())
	}
	if p.Tick(time.Second) {
		t.Fatalf("frozen clip must not advance")
	}
}

func TestResetLoopsToStart(t *testing.T) {
	p := NewPlayer(time.Second)
	p.Load(catalog.Item{VideoRef: "clip.mp4", VideoEnd: catalog.VideoEndReset})
	p.Tick(1300 * time.Millisecond)
	if p.Status() != StatusPlaying {
		t.Fatalf("resetting clip should keep playing, got %s", p.Status())
	}
	if p.Loops() != 1 {
		t.Fatalf("expected one loop, got %d", p.Loops())
	}
	if got := p.Progress(); got < 0.29 || got > 0.31 {
		t.Fatalf("expected ~0.3 progress after wrap, got %v", got)
	}
}

func TestLoadRestartsPlayback(t *testing.T) {
	p := NewPlayer(time.Second)
	p.Load(catalog.Item{VideoRef: "a.mp4", VideoEnd: catalog.VideoEndFreeze})
	p.Tick(2 * time.Second)
	p.Load(catalog.Item{VideoRef: "b.mp4"})
	if p.Status() != StatusPlaying || p.Progress() != 0 {
		t.Fatalf("expected fresh playback, got %s %v", p.Status(), p.Progress())
	}
}
