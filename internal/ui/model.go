package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/hero-slider/internal/catalog"
	"github.com/atomicstack/hero-slider/internal/gesture"
	"github.com/atomicstack/hero-slider/internal/logging/events"
	"github.com/atomicstack/hero-slider/internal/media"
	"github.com/atomicstack/hero-slider/internal/slide"
	"github.com/atomicstack/hero-slider/internal/theme"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth     = 80
	defaultHeight    = 24
	defaultWheelStep = 40.0
	defaultDragScale = 12.0
)

var styles = theme.Default()

// Options tunes input translation and layout.
type Options struct {
	Width          int
	Height         int
	Cooldown       time.Duration
	WheelThreshold float64
	WheelStep      float64
	SwipeThreshold float64
	DragScale      float64
	ShowFooter     bool
}

type msgHandler func(tea.Msg) tea.Cmd

// scheduler turns a delay into a command delivering msg once.
type scheduler func(d time.Duration, msg tea.Msg) tea.Cmd

func tickScheduler(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// cooldownElapsedMsg reports the end of the transition started with epoch.
type cooldownElapsedMsg struct {
	epoch uint64
}

type frameMsg struct{}

type pointer struct {
	x, y int
	dot  int
}

// Model implements the Bubble Tea model for the hero slider.
type Model struct {
	catalog *catalog.Catalog
	nav     *slide.Controller
	wheel   gesture.WheelGate
	swipe   *gesture.SwipeTracker
	player  *media.Player

	wheelStep float64
	dragScale float64
	press     *pointer

	framePending bool

	search     textinput.Model
	searching  bool
	searchMiss string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	mounted   bool
	unmounted bool

	schedule scheduler
	handlers map[reflect.Type]msgHandler
}

// NewModel creates a slider over c positioned on the first item.
func NewModel(c *catalog.Catalog, opts Options) (*Model, error) {
	nav, err := slide.New(c.Len(), slide.WithCooldown(opts.Cooldown))
	if err != nil {
		return nil, err
	}
	m := &Model{
		catalog:    c,
		nav:        nav,
		wheel:      gesture.NewWheelGate(opts.WheelThreshold),
		swipe:      gesture.NewSwipeTracker(opts.SwipeThreshold),
		player:     media.NewPlayer(media.DefaultClipLength),
		wheelStep:  opts.WheelStep,
		dragScale:  opts.DragScale,
		showFooter: opts.ShowFooter,
		width:      defaultWidth,
		height:     defaultHeight,
		schedule:   tickScheduler,
	}
	if m.wheelStep <= 0 {
		m.wheelStep = defaultWheelStep
	}
	if m.dragScale <= 0 {
		m.dragScale = defaultDragScale
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.search = newSearchInput()
	m.player.Load(c.At(nav.Current()))
	m.registerHandlers()
	return m, nil
}

// Init mounts the view: mouse reporting is acquired here and released by
// Unmount.
func (m *Model) Init() tea.Cmd {
	if m.unmounted {
		return nil
	}
	m.mounted = true
	events.View.Mount(m.catalog.Len())
	return tea.Batch(tea.EnableMouseCellMotion, m.ensureFrames())
}

// Unmount releases input subscriptions. It is safe to call more than once and
// whether or not a cooldown is pending; afterwards every message is ignored.
func (m *Model) Unmount() tea.Cmd {
	if !m.mounted {
		m.unmounted = true
		return nil
	}
	m.mounted = false
	m.unmounted = true
	m.press = nil
	m.swipe.Cancel()
	m.closeSearch()
	events.View.Unmount(m.nav.Current(), m.nav.Locked())
	return tea.DisableMouse
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.mounted {
		return m, nil
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	if m.searching {
		return m, m.updateSearchInput(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):       m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(cooldownElapsedMsg{}): m.handleCooldownElapsedMsg,
		reflect.TypeOf(frameMsg{}):           m.handleFrameMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth && size.Width > 0 {
		m.width = size.Width
	}
	if !m.fixedHeight && size.Height > 0 {
		m.height = size.Height
	}
	events.View.Resize(m.width, m.height)
	return nil
}

func (m *Model) handleFrameMsg(tea.Msg) tea.Cmd {
	m.framePending = false
	m.player.Tick(media.FrameInterval)
	return m.ensureFrames()
}

// ensureFrames keeps exactly one frame tick in flight while a clip plays.
func (m *Model) ensureFrames() tea.Cmd {
	if m.framePending || !m.player.Playing() {
		return nil
	}
	m.framePending = true
	return m.schedule(media.FrameInterval, frameMsg{})
}

// CurrentIndex returns the index of the slide on screen.
func (m *Model) CurrentIndex() int {
	return m.nav.Current()
}

// IsActive reports whether slide i is on screen.
func (m *Model) IsActive(i int) bool {
	return m.nav.IsActive(i)
}

// Locked reports whether a transition is still animating.
func (m *Model) Locked() bool {
	return m.nav.Locked()
}

// Cooldown returns the lock duration applied after each transition.
func (m *Model) Cooldown() time.Duration {
	return m.nav.Cooldown()
}

// Mounted reports whether the view currently holds its input subscriptions.
func (m *Model) Mounted() bool {
	return m.mounted
}
