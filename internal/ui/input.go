package ui

import (
	"github.com/atomicstack/hero-slider/internal/slide"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.searching {
		return m.handleSearchKey(key)
	}
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return tea.Sequence(m.Unmount(), tea.Quit)
	case "j", "down", "pgdown", " ":
		return m.advance(sourceKey, slide.Next)
	case "k", "up", "pgup":
		return m.advance(sourceKey, slide.Previous)
	case "home":
		return m.selectSlide(sourceKey, 0)
	case "end":
		return m.selectSlide(sourceKey, m.catalog.Len()-1)
	case "/":
		return m.openSearch()
	}
	if key.Type == tea.KeyRunes && len(key.Runes) == 1 {
		if r := key.Runes[0]; r >= '1' && r <= '9' {
			return m.selectSlide(sourceKey, int(r-'1'))
		}
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch mouse.Button {
	case tea.MouseButtonWheelDown:
		return m.handleWheel(m.wheelStep)
	case tea.MouseButtonWheelUp:
		return m.handleWheel(-m.wheelStep)
	}
	switch mouse.Action {
	case tea.MouseActionPress:
		if mouse.Button != tea.MouseButtonLeft {
			return nil
		}
		m.handlePress(mouse.X, mouse.Y)
	case tea.MouseActionRelease:
		return m.handleRelease(mouse.X, mouse.Y)
	}
	return nil
}

// handleWheel forwards one wheel notch. The threshold removes noise; the
// controller lock is what keeps a long scroll from skipping several slides.
func (m *Model) handleWheel(delta float64) tea.Cmd {
	dir, ok := m.wheel.Direction(delta)
	if !ok {
		return nil
	}
	return m.advance(sourceWheel, dir)
}

// handlePress begins a drag, the terminal stand-in for a touch start.
func (m *Model) handlePress(x, y int) {
	m.press = &pointer{x: x, y: y, dot: m.dotAt(x, y)}
	m.swipe.Start(m.verticalUnits(y))
}

// handleRelease ends a drag. Pressing and releasing on the same pagination
// dot is a click; anything else is a swipe.
func (m *Model) handleRelease(x, y int) tea.Cmd {
	press := m.press
	m.press = nil
	if press == nil {
		return nil
	}
	if press.dot >= 0 && press.dot == m.dotAt(x, y) {
		m.swipe.Cancel()
		return m.selectSlide(sourceDot, press.dot)
	}
	dir, ok := m.swipe.End(m.verticalUnits(y))
	if !ok {
		return nil
	}
	return m.advance(sourceSwipe, dir)
}

func (m *Model) verticalUnits(row int) float64 {
	return float64(row) * m.dragScale
}
