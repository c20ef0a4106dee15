package ui

import (
	"fmt"
	"path"
	"strings"

	"github.com/atomicstack/hero-slider/internal/catalog"
	"github.com/atomicstack/hero-slider/internal/media"
	"github.com/atomicstack/hero-slider/internal/theme"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	brandName         = "RG_PERFUME"
	badgeText         = "Эксклюзивный Дроп"
	notesLabel        = "Ноты:"
	scrollHint        = "⌄"
	paginationWidth   = 6
	contentMaxWidth   = 48
	contentLeftMargin = 4
	mediaBarWidth     = 20
	dotActive         = "●"
	dotIdle           = "○"
)

var (
	navLinks    = []string{"КОЛЛЕКЦИИ", "О БРЕНДЕ"}
	footerLinks = []string{"ИНСТАГРАМ", "ТЕЛЕГРАМ", "КОНТАКТЫ"}
)

// bodyTop is the first screen row below the navigation bar.
const bodyTop = 1

func (m *Model) bodyHeight() int {
	return max(m.height-3, 1)
}

// dotRows returns the screen row of each pagination dot. Dots are spread two
// rows apart when they fit and packed otherwise; dots that do not fit at all
// get row -1 and cannot be clicked.
func (m *Model) dotRows() []int {
	n := m.catalog.Len()
	body := m.bodyHeight()
	spacing := 2
	if (n-1)*spacing+1 > body {
		spacing = 1
	}
	span := (n-1)*spacing + 1
	start := bodyTop + max((body-span)/2, 0)
	rows := make([]int, n)
	for i := range rows {
		row := start + i*spacing
		if row >= bodyTop+body {
			row = -1
		}
		rows[i] = row
	}
	return rows
}

// dotAt hit-tests the pagination column and returns the dot index or -1.
func (m *Model) dotAt(x, y int) int {
	if x < m.width-paginationWidth || x >= m.width {
		return -1
	}
	for i, row := range m.dotRows() {
		if row >= 0 && row == y {
			return i
		}
	}
	return -1
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.unmounted {
		return ""
	}
	item := m.catalog.At(m.nav.Current())
	st := theme.ForItem(item.Theme)

	rows := make([]string, 0, m.height)
	rows = append(rows, m.renderNav(st))

	body := m.renderSlide(item, st)
	dots := m.renderPagination(st)
	for i := 0; i < m.bodyHeight(); i++ {
		rows = append(rows, body[i]+dots[i])
	}
	rows = append(rows, m.renderHint(st), m.renderFooter(st))
	return strings.Join(rows, "\n")
}

func (m *Model) renderNav(st theme.Slide) string {
	left := styles.Brand.Inherit(st.Canvas).Render(brandName)
	links := styles.NavLink.Inherit(st.Canvas).Render(strings.Join(navLinks, "   "))
	right := styles.NavIcon.Inherit(st.Canvas).Render("[/] поиск")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(links) - lipgloss.Width(right)
	if gap < 2 {
		return fitLine(st.Canvas, left+st.Canvas.Render(" ")+right, m.width)
	}
	leftGap := gap / 2
	return fitLine(st.Canvas, left+st.Canvas.Render(strings.Repeat(" ", leftGap))+links+st.Canvas.Render(strings.Repeat(" ", gap-leftGap))+right, m.width)
}

// renderSlide returns exactly bodyHeight lines of slide content, each padded
// to the width left of the pagination column.
func (m *Model) renderSlide(item catalog.Item, st theme.Slide) []string {
	width := max(m.width-paginationWidth, 1)
	textWidth := max(min(contentMaxWidth, width-contentLeftMargin-1), 8)

	content := []string{
		st.Badge.Render(badgeText),
		"",
		st.Title.Render(item.DisplayName),
	}
	if item.BrandName != "" {
		content = append(content, st.Brand.Render(spaced(item.BrandName)))
	}
	content = append(content, "")
	for _, line := range strings.Split(wordwrap.String(item.Description, textWidth), "\n") {
		content = append(content, st.Description.Render(line))
	}
	content = append(content,
		"",
		st.NotesLabel.Render(notesLabel),
		st.Notes.Render(item.HighlightText),
		"",
		m.renderMedia(item, st, textWidth),
		"",
		st.Watermark.Render(watermark(item)),
	)

	var lines []string
	for _, c := range content {
		lines = append(lines, strings.Split(c, "\n")...)
	}
	height := m.bodyHeight()
	top := max((height-len(lines))/2, 0)
	margin := st.Canvas.Render(strings.Repeat(" ", contentLeftMargin))
	out := make([]string, height)
	for i := range out {
		src := i - top
		if src < 0 || src >= len(lines) {
			out[i] = fitLine(st.Canvas, "", width)
			continue
		}
		out[i] = fitLine(st.Canvas, margin+lines[src], width)
	}
	return out
}

func (m *Model) renderMedia(item catalog.Item, st theme.Slide, width int) string {
	if !item.HasVideo() {
		return st.Media.Render("▣ " + path.Base(item.ImageRef))
	}
	bar := progress.New(
		progress.WithSolidFill(st.Accent),
		progress.WithWidth(min(mediaBarWidth, width)),
		progress.WithoutPercentage(),
	)
	icon := "▶"
	if m.player.Status() == media.StatusFrozen {
		icon = "■"
	}
	label := fmt.Sprintf("%s %s ", icon, path.Base(item.VideoRef))
	return st.Media.Render(label) + bar.ViewAs(m.player.Progress())
}

// renderPagination returns bodyHeight cells for the pagination column. Dots
// are dimmed while the controller is locked to signal the slider is busy.
func (m *Model) renderPagination(st theme.Slide) []string {
	height := m.bodyHeight()
	out := make([]string, height)
	blank := st.Canvas.Render(strings.Repeat(" ", paginationWidth))
	for i := range out {
		out[i] = blank
	}
	pad := st.Canvas.Render(strings.Repeat(" ", paginationWidth/2))
	tail := st.Canvas.Render(strings.Repeat(" ", paginationWidth-paginationWidth/2-1))
	for i, row := range m.dotRows() {
		if row < 0 {
			continue
		}
		var dot string
		switch {
		case m.nav.IsActive(i):
			dot = st.DotActive.Render(dotActive)
		case m.nav.Locked():
			dot = st.DotBusy.Render(dotIdle)
		default:
			dot = st.DotIdle.Render(dotIdle)
		}
		out[row-bodyTop] = pad + dot + tail
	}
	return out
}

func (m *Model) renderHint(st theme.Slide) string {
	switch {
	case m.searching:
		return fitLine(st.Canvas, m.search.View(), m.width)
	case m.searchMiss != "":
		msg := styles.SearchMiss.Inherit(st.Canvas).Render(fmt.Sprintf("ничего не найдено: %q", m.searchMiss))
		return fitLine(st.Canvas, msg, m.width)
	}
	return st.Canvas.Width(m.width).Align(lipgloss.Center).Render(styles.Hint.Inherit(st.Canvas).Render(scrollHint))
}

func (m *Model) renderFooter(st theme.Slide) string {
	if !m.showFooter {
		return fitLine(st.Canvas, "", m.width)
	}
	links := styles.Footer.Inherit(st.Canvas).Render(strings.Join(footerLinks, "   "))
	return fitLine(st.Canvas, st.Canvas.Render(strings.Repeat(" ", contentLeftMargin))+links, m.width)
}

// fitLine truncates s to width cells and pads the rest with the canvas colour.
func fitLine(canvas lipgloss.Style, s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = truncate.String(s, uint(width))
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += canvas.Render(strings.Repeat(" ", pad))
	}
	return s
}

func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

func watermark(item catalog.Item) string {
	if fields := strings.Fields(item.DisplayName); len(fields) > 0 {
		return fields[0]
	}
	return item.DisplayName
}
