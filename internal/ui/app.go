// Package ui provides a Bubble Tea-based TUI for the carousel.
package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/carousel/internal/carousel"
	"github.com/five82/carousel/internal/catalog"
	"github.com/five82/carousel/internal/config"
	"github.com/five82/carousel/internal/logging"
	"github.com/five82/carousel/internal/prefs"
	"github.com/five82/carousel/internal/scrollview"
	"github.com/five82/carousel/internal/state"
)

// carouselTop is the first screen row of the strip: header, then a blank line.
const carouselTop = 2

// snapDelay is the wheel silence that ends a native scroll.
const snapDelay = 150 * time.Millisecond

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Config    *config.Config
	Logger    logging.Logger
	PollTick  time.Duration
	ThemeName string
	PrefsPath string

	// Scheduler overrides the event-loop scheduler used for engine timers.
	Scheduler carousel.Scheduler
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	cfg       config.Config
	log       logging.Logger
	prefsPath string
	pollTick  time.Duration
	loop      *loopScheduler
	sched     carousel.Scheduler

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	snapshot state.Snapshot
	revision uint64
	items    []catalog.Item

	// Carousel state. engine and view are nil until the first window size
	// arrives with at least one item.
	engine    *carousel.Engine
	view      *scrollview.View
	cells     cells
	strip     stripLayout
	animating bool
	snapGen   uint64
	mountErr  error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = DefaultUIInterval
	}

	cfg := config.Defaults()
	if opts.Config != nil {
		cfg = *opts.Config
	}

	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}
	theme := GetTheme(themeName)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	loop := &loopScheduler{}
	var sched carousel.Scheduler = loop
	if opts.Scheduler != nil {
		sched = opts.Scheduler
	}

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		cfg:       cfg,
		log:       log,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		loop:      loop,
		sched:     sched,
		theme:     theme,
		keys:      DefaultKeyMap(),
		help:      newHelp(theme),
		cells:     cells{width: cfg.CellWidth, height: cfg.CellHeight},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		if m.engine == nil {
			m.mount(m.items)
		} else if m.view.Resize(m.engine.ViewportWidth(m.hostWidth())) {
			m.engine.OnScroll(m.view.Offset())
		}
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case timerFiredMsg:
		msg.timer.fire()
		return m, nil

	case frameMsg:
		return m.handleFrame()

	case snapMsg:
		if msg.gen != m.snapGen || m.view == nil || !m.view.Snap() {
			return m, nil
		}
		return m, m.startAnimation()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	}

	if m.engine == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		m.navigate(m.engine.NavigatePrevious)
	case key.Matches(msg, m.keys.Next):
		m.navigate(m.engine.NavigateNext)
	case key.Matches(msg, m.keys.ScrollLeft):
		m.view.ScrollTo(m.view.SnapStep(-1))
	case key.Matches(msg, m.keys.ScrollRight):
		m.view.ScrollTo(m.view.SnapStep(1))
	case key.Matches(msg, m.keys.Home):
		m.view.ScrollTo(0)
	case key.Matches(msg, m.keys.End):
		m.view.ScrollTo(m.view.MaxOffset())
	default:
		return m, nil
	}
	return m, m.startAnimation()
}

// handleMouse scrolls on the wheel and activates the controls on click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.engine == nil || m.showHelp {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		return m, m.wheel(-m.wheelStep())

	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		return m, m.wheel(m.wheelStep())

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch m.controlAt(msg.X, msg.Y) {
		case -1:
			m.navigate(m.engine.NavigatePrevious)
		case 1:
			m.navigate(m.engine.NavigateNext)
		default:
			return m, nil
		}
		return m, m.startAnimation()
	}
	return m, nil
}

// wheel moves the view at once and re-arms the snap that ends the burst.
func (m *Model) wheel(delta float64) tea.Cmd {
	if !m.view.ScrollBy(delta) {
		return nil
	}
	m.engine.OnScroll(m.view.Offset())
	m.snapGen++
	return snapCmd(m.snapGen)
}

// controlAt reports which control covers the cell: -1 previous, 1 next, 0
// neither. The whole control column is a hit target.
func (m Model) controlAt(x, y int) int {
	if y < carouselTop || y >= carouselTop+m.strip.rows {
		return 0
	}
	nextStart := ControlWidth + m.viewCols()
	switch {
	case x >= 0 && x < ControlWidth:
		return -1
	case x >= nextStart && x < nextStart+ControlWidth:
		return 1
	}
	return 0
}

// navigate runs a control action. Disabled controls still forward their
// activation so the engine can announce the boundary.
func (m *Model) navigate(action func() error) {
	if err := action(); err != nil {
		m.log.Warn("navigation failed", "error", err)
	}
}

// startAnimation starts the frame loop if the view began a smooth scroll.
func (m *Model) startAnimation() tea.Cmd {
	if m.animating || m.view == nil || !m.view.Animating() {
		return nil
	}
	m.animating = true
	return frameCmd()
}

// handleFrame advances the smooth scroll by one frame. Every moved frame is
// a native scroll event for the engine.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	if m.view == nil {
		m.animating = false
		return m, nil
	}
	if off, moved := m.view.Step(); moved && m.engine != nil {
		m.engine.OnScroll(off)
	}
	if !m.view.Animating() {
		m.animating = false
		return m, nil
	}
	return m, frameCmd()
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	cmds = append(cmds, tickCmd(m.pollTick))
	return m, tea.Batch(cmds...)
}

// applySnapshot picks up catalog changes. A change in item count rebuilds
// the carousel; same-length edits only relabel the cards.
func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	if snap.Revision == m.revision {
		return
	}
	m.revision = snap.Revision

	if len(snap.Items) == len(m.items) && m.engine != nil {
		m.items = snap.Items
		return
	}
	if !m.ready {
		m.items = snap.Items
		return
	}
	m.mount(snap.Items)
}

// mount builds a fresh engine and scroll view for items, replacing any
// existing carousel.
func (m *Model) mount(items []catalog.Item) {
	m.unmount()
	m.items = items
	m.mountErr = nil
	if len(items) == 0 {
		return
	}

	cfg := m.cfg.Carousel
	cfg.ItemLength = len(items)
	if err := cfg.Validate(); err != nil {
		m.mountErr = err
		m.log.Error("carousel mount failed", "error", err)
		return
	}
	geo := cfg.Geometry()

	view := scrollview.New(geo.TotalScrollExtent, geo.ViewportWidth(m.hostWidth()))
	view.SetSnapInterval(geo.PositionUnit)
	eng, err := carousel.New(cfg, view,
		carousel.WithScheduler(m.sched),
		carousel.WithLogger(m.log),
		carousel.WithNotices(carousel.NoticesFor(m.cfg.Locale)),
	)
	if err != nil {
		m.mountErr = err
		m.log.Error("carousel mount failed", "error", err)
		return
	}

	m.engine = eng
	m.view = view
	m.strip = newStripLayout(geo, len(items), m.cells)
}

// unmount closes the engine, cancelling its pending timers.
func (m *Model) unmount() {
	if m.engine != nil {
		_ = m.engine.Close()
	}
	m.engine = nil
	m.view = nil
	m.strip = stripLayout{}
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	applyHelpTheme(&m.help, m.theme)
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.log.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

// wheelStep is the distance of one wheel notch.
func (m Model) wheelStep() float64 {
	return m.engine.Geometry().PositionUnit / 4
}

// renderMain renders header, strip, live region and footer, padded to the
// window height.
func (m Model) renderMain() string {
	bg := NewBgStyle(m.theme.Background)

	lines := []string{m.renderHeader(), bg.FillLine("", m.width)}
	lines = append(lines, m.renderBody()...)
	lines = append(lines, bg.FillLine(m.renderLiveRegion(), m.width))

	for len(lines) < m.height-1 {
		lines = append(lines, bg.FillLine("", m.width))
	}
	lines = append(lines, m.renderFooter())
	return strings.Join(lines, "\n")
}

// renderBody renders the carousel, or a placeholder when nothing is mounted.
func (m Model) renderBody() []string {
	bg := NewBgStyle(m.theme.Background)
	styles := m.theme.Styles().WithBackground(m.theme.Background)

	if m.engine == nil {
		msg := bg.Render("No items to show", styles.MutedText)
		if m.mountErr != nil {
			msg = bg.Render("Cannot show items: "+m.mountErr.Error(), styles.DangerText)
		}
		return []string{bg.FillLine(bg.Spaces(ControlWidth)+msg, m.width)}
	}

	rows := strings.Split(m.renderCarousel(), "\n")
	for i, r := range rows {
		rows[i] = bg.FillLine(r, m.width)
	}
	return rows
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type frameMsg struct{}

// snapMsg ends a wheel burst. Only the latest generation snaps.
type snapMsg struct{ gen uint64 }

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func frameCmd() tea.Cmd {
	return tea.Tick(scrollview.FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func snapCmd(gen uint64) tea.Cmd {
	return tea.Tick(snapDelay, func(time.Time) tea.Msg {
		return snapMsg{gen: gen}
	})
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(m.ctx),
	)
	m.loop.SetSender(p.Send)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.unmount()
	}
	m.loop.SetSender(nil)
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
