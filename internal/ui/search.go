package ui

import (
	"sort"
	"strings"

	"github.com/atomicstack/hero-slider/internal/logging/events"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search products"
	ti.CharLimit = 64
	// A static cursor keeps the prompt from scheduling blink ticks.
	ti.Cursor.SetMode(cursor.CursorStatic)
	if styles.Search != nil {
		ti.TextStyle = *styles.Search
		ti.PromptStyle = *styles.Search
	}
	return ti
}

func (m *Model) openSearch() tea.Cmd {
	m.searching = true
	m.searchMiss = ""
	m.search.Reset()
	events.Search.Open()
	return m.search.Focus()
}

func (m *Model) closeSearch() {
	m.searching = false
	m.search.Blur()
	m.search.Reset()
}

func (m *Model) handleSearchKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.closeSearch()
		events.Search.Cancel()
		return nil
	case tea.KeyEnter:
		query := strings.TrimSpace(m.search.Value())
		m.closeSearch()
		if query == "" {
			return nil
		}
		idx, ok := m.matchProduct(query)
		if !ok {
			m.searchMiss = query
			events.Search.Miss(query)
			return nil
		}
		events.Search.Match(query, idx, m.catalog.At(idx).Label())
		// A match is just another pagination request: it goes through the
		// controller and is dropped while a transition is in flight.
		return m.selectSlide(sourceSearch, idx)
	}
	return m.updateSearchInput(key)
}

func (m *Model) updateSearchInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return cmd
}

// matchProduct returns the catalog index whose label best matches query.
func (m *Model) matchProduct(query string) (int, bool) {
	labels := make([]string, m.catalog.Len())
	for i := range labels {
		labels[i] = m.catalog.At(i).Label()
	}
	ranks := fuzzy.RankFindFold(query, labels)
	if len(ranks) == 0 {
		return -1, false
	}
	sort.Stable(ranks)
	return ranks[0].OriginalIndex, true
}
