package ui

import (
	"github.com/atomicstack/hero-slider/internal/logging/events"
	"github.com/atomicstack/hero-slider/internal/slide"
	tea "github.com/charmbracelet/bubbletea"
)

// Input sources recorded with each accepted transition.
const (
	sourceWheel  = "wheel"
	sourceSwipe  = "swipe"
	sourceKey    = "key"
	sourceDot    = "pagination"
	sourceSearch = "search"
)

// advance asks the controller for the neighbouring slide. Requests made while
// a transition is in flight are dropped without a trace.
func (m *Model) advance(source string, dir slide.Direction) tea.Cmd {
	tr, ok := m.nav.Advance(dir)
	if !ok {
		return nil
	}
	return m.beginTransition(source, tr)
}

// selectSlide jumps to index. Every caller derives index from the catalog, so
// the range check only guards keyboard shortcuts beyond the catalog length.
func (m *Model) selectSlide(source string, index int) tea.Cmd {
	if index < 0 || index >= m.nav.Len() {
		return nil
	}
	tr, ok := m.nav.Select(index)
	if !ok {
		return nil
	}
	return m.beginTransition(source, tr)
}

// beginTransition starts the cooldown timer at the moment of the index change
// and restarts media playback for the new slide.
func (m *Model) beginTransition(source string, tr slide.Transition) tea.Cmd {
	events.Slide.Transition(source, tr.From, tr.To, tr.Epoch)
	m.player.Load(m.catalog.At(tr.To))
	return tea.Batch(
		m.schedule(tr.Cooldown, cooldownElapsedMsg{epoch: tr.Epoch}),
		m.ensureFrames(),
	)
}

func (m *Model) handleCooldownElapsedMsg(msg tea.Msg) tea.Cmd {
	elapsed, ok := msg.(cooldownElapsedMsg)
	if !ok {
		return nil
	}
	if m.nav.Release(elapsed.epoch) {
		events.Slide.Release(elapsed.epoch, m.nav.Current())
	}
	return nil
}
