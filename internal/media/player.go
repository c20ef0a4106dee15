package media

import (
	"time"

	"github.com/atomicstack/hero-slider/internal/catalog"
)

const (
	// DefaultClipLength is the nominal running time of a product clip.
	DefaultClipLength = 8 * time.Second
	// FrameInterval is how often the view advances playback.
	FrameInterval = 100 * time.Millisecond
)

// Status describes what the player is showing.
type Status int

const (
	StatusStill Status = iota
	StatusPlaying
	StatusFrozen
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusFrozen:
		return "frozen"
	default:
		return "still"
	}
}

// Player tracks playback of the active item's clip. It is independent of
// slide navigation; the view restarts it whenever the active item changes.
type Player struct {
	length   time.Duration
	position time.Duration
	end      catalog.VideoEnd
	status   Status
	loops    int
}

// NewPlayer returns a player for clips of the given length.
func NewPlayer(length time.Duration) *Player {
	if length <= 0 {
		length = DefaultClipLength
	}
	return &Player{length: length}
}

// Load switches the player to item and restarts playback.
func (p *Player) Load(item catalog.Item) {
	p.end = item.VideoEnd
	p.position = 0
	p.loops = 0
	if item.HasVideo() {
		p.status = StatusPlaying
	} else {
		p.status = StatusStill
	}
}

// Tick advances playback by dt and reports whether anything changed.
func (p *Player) Tick(dt time.Duration) bool {
	if p.status != StatusPlaying || dt <= 0 {
		return false
	}
	p.position += dt
	if p.position < p.length {
		return true
	}
	if p.end == catalog.VideoEndFreeze {
		p.position = p.length
		p.status = StatusFrozen
		return true
	}
	p.loops += int(p.position / p.length)
	p.position %= p.length
	return true
}

// Status returns the current playback status.
func (p *Player) Status() Status {
	return p.status
}

// Playing reports whether frames still need to be scheduled.
func (p *Player) Playing() bool {
	return p.status == StatusPlaying
}

// Progress returns the playback position as a fraction in [0, 1].
func (p *Player) Progress() float64 {
	if p.length <= 0 {
		return 0
	}
	return float64(p.position) / float64(p.length)
}

// Loops returns how many times a resetting clip has wrapped around.
func (p *Player) Loops() int {
	return p.loops
}
