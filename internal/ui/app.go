package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/chanderbhanswami/lantern/internal/deck"
	"github.com/chanderbhanswami/lantern/internal/engine"
	"github.com/chanderbhanswami/lantern/internal/gesture"
	"github.com/chanderbhanswami/lantern/internal/media"
	"github.com/chanderbhanswami/lantern/internal/prefs"
	"github.com/chanderbhanswami/lantern/internal/trace"
)

// clickSlop is the largest press-to-release travel, in cells, still read as
// a click rather than an abandoned drag.
const clickSlop = 2

// Options configures the UI.
type Options struct {
	Context      context.Context
	Engine       *engine.Engine
	Deck         *deck.Deck
	Suspensions  *engine.Suspensions
	Gestures     *gesture.Interpreter
	Journal      *trace.Journal
	Loader       *media.Loader
	Logger       *zap.Logger
	RemoteURL    string
	ThemeName    string
	HideRail     bool
	ReduceMotion bool
	PrefsPath    string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Wiring
	ctx         context.Context
	engine      *engine.Engine
	deck        *deck.Deck
	suspensions *engine.Suspensions
	gestures    *gesture.Interpreter
	journal     *trace.Journal
	loader      *media.Loader
	logger      *zap.Logger
	updates     <-chan engine.Update
	keys        keyMap
	prefsPath   string
	remoteURL   string

	// UI state
	theme        Theme
	progressBar  progress.Model
	width        int
	height       int
	ready        bool
	hideRail     bool
	reduceMotion bool

	// Engine snapshot
	snapshot engine.State

	// Active overlay, nil when the stage is bare
	modal Modal

	// Pointer state
	dragging   bool
	dragOffset int
	hovering   bool

	// Slide art by index, filled in as loads complete
	arts map[int]*media.Art
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	gestures := opts.Gestures
	if gestures == nil {
		gestures = gesture.NewInterpreter(gesture.Thresholds{}, opts.Suspensions)
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Load(opts.PrefsPath).Theme
	}
	theme := GetTheme(themeName)

	var snapshot engine.State
	if opts.Engine != nil {
		snapshot = opts.Engine.State()
	}

	return Model{
		ctx:          ctx,
		engine:       opts.Engine,
		deck:         opts.Deck,
		suspensions:  opts.Suspensions,
		gestures:     gestures,
		journal:      opts.Journal,
		loader:       opts.Loader,
		logger:       logger,
		keys:         DefaultKeyMap(),
		prefsPath:    opts.PrefsPath,
		remoteURL:    opts.RemoteURL,
		theme:        theme,
		progressBar:  newProgressBar(theme),
		hideRail:     opts.HideRail,
		reduceMotion: opts.ReduceMotion,
		snapshot:     snapshot,
		arts:         make(map[int]*media.Art),
	}
}

func newProgressBar(theme Theme) progress.Model {
	bar := progress.New(
		progress.WithGradient(theme.ProgressFrom, theme.ProgressTo),
		progress.WithoutPercentage(),
	)
	bar.Width = 18
	return bar
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.waitForUpdate(),
		m.loadArtCmd(m.snapshot.Index),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// ctrl+c quits even with an overlay open.
		if keyMsg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		// Otherwise overlays see key input first.
		if m.modal != nil {
			next, cmd, done := m.modal.Update(keyMsg, m.keys)
			if done {
				m.modal = nil
			} else {
				m.modal = next
			}
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.FocusMsg:
		if m.suspensions != nil {
			m.suspensions.Remove(engine.ReasonFocusLost)
		}
		return m, nil

	case tea.BlurMsg:
		if m.suspensions != nil {
			m.suspensions.Add(engine.ReasonFocusLost)
		}
		return m, nil

	case engineMsg:
		m.snapshot = msg.State
		return m, tea.Batch(m.waitForUpdate(), m.loadArtCmd(m.snapshot.Index))

	case artMsg:
		if msg.err != nil {
			m.logger.Warn("slide art load failed",
				zap.Int("slide", msg.index), zap.Error(msg.err))
			return m, nil
		}
		if msg.art != nil {
			m.arts[msg.index] = msg.art
		}
		return m, nil

	case gotoRequestMsg:
		m.engine.GoTo(msg.index, engine.CauseKeyboard)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input on the bare stage.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.modal = newHelpModal()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.setTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.engine.Next(engine.CauseKeyboard)
		return m, nil

	case key.Matches(msg, m.keys.Previous):
		m.engine.Previous(engine.CauseKeyboard)
		return m, nil

	case key.Matches(msg, m.keys.First):
		m.engine.GoTo(0, engine.CauseKeyboard)
		return m, nil

	case key.Matches(msg, m.keys.Last):
		m.engine.GoTo(m.snapshot.SlideCount-1, engine.CauseKeyboard)
		return m, nil

	case key.Matches(msg, m.keys.GoTo):
		m.modal = newGotoModal(m.snapshot.SlideCount)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.ToggleAutoplay):
		m.engine.ToggleAutoplay()
		return m, nil

	case key.Matches(msg, m.keys.ToggleFullscreen):
		m.engine.SetFullscreen(!m.snapshot.IsFullscreen)
		return m, nil

	case key.Matches(msg, m.keys.ToggleRail):
		m.hideRail = !m.hideRail
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleConsole):
		if m.journal != nil {
			m.modal = newConsoleModal(m.journal)
		}
		return m, nil

	case key.Matches(msg, m.keys.ShowRemote):
		m.modal = newRemoteModal(m.remoteURL)
		return m, nil

	case key.Matches(msg, m.keys.ShowLink):
		link := ""
		if m.deck != nil {
			link = m.deck.Slide(m.snapshot.Index).Link
		}
		m.modal = newLinkModal(link)
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.snapshot.IsFullscreen {
			m.engine.SetFullscreen(false)
		}
		return m, nil
	}

	// Digit quick-jump: 1 lands on the first slide.
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		m.engine.GoTo(int(s[0]-'1'), engine.CauseKeyboard)
	}

	return m, nil
}

// handleMouse processes pointer input: wheel and click navigation, rail
// jumps, hover holds, and drags.
func (m Model) handleMouse(ev tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.modal != nil {
		// No pointer navigation under an overlay. An in-flight drag still
		// ends so its autoplay hold lifts; the decision is discarded.
		if ev.Action == tea.MouseActionRelease && m.dragging {
			m.dragging = false
			m.dragOffset = 0
			m.gestures.End(ev.X, time.Now())
		}
		return m, nil
	}

	switch ev.Action {
	case tea.MouseActionPress:
		switch ev.Button {
		case tea.MouseButtonWheelUp:
			m.engine.Previous(engine.CauseClick)
			return m, nil
		case tea.MouseButtonWheelDown:
			m.engine.Next(engine.CauseClick)
			return m, nil
		case tea.MouseButtonLeft:
			if m.onRail(ev.Y) && m.railShowsDots() {
				if i := railHitTest(ev.X, m.snapshot.SlideCount); i >= 0 {
					m.engine.GoTo(i, engine.CauseClick)
				}
				return m, nil
			}
			if m.inStage(ev.Y) {
				m.dragging = true
				m.dragOffset = 0
				m.gestures.Begin(ev.X, time.Now())
			}
			return m, nil
		}

	case tea.MouseActionMotion:
		if m.dragging {
			m.dragOffset = m.gestures.Move(ev.X, time.Now())
			return m, nil
		}
		m.trackHover(ev.Y)
		return m, nil

	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		offset := m.dragOffset
		m.dragOffset = 0
		switch m.gestures.End(ev.X, time.Now()) {
		case gesture.Next:
			m.engine.Next(engine.CauseDrag)
		case gesture.Previous:
			m.engine.Previous(engine.CauseDrag)
		case gesture.None:
			if offset >= -clickSlop && offset <= clickSlop {
				m.clickNavigate(ev.X)
			}
		}
		return m, nil
	}

	return m, nil
}

// clickNavigate pages by screen half: left half back, right half forward.
func (m *Model) clickNavigate(x int) {
	if x < m.width/2 {
		m.engine.Previous(engine.CauseClick)
		return
	}
	m.engine.Next(engine.CauseClick)
}

// trackHover holds autoplay while the pointer rests over the stage.
func (m *Model) trackHover(y int) {
	if m.suspensions == nil {
		return
	}
	over := m.inStage(y)
	if over == m.hovering {
		return
	}
	m.hovering = over
	if over {
		m.suspensions.Add(engine.ReasonHover)
		return
	}
	m.suspensions.Remove(engine.ReasonHover)
}

// inStage reports whether row y falls inside the slide content area.
func (m Model) inStage(y int) bool {
	if m.snapshot.IsFullscreen {
		return true
	}
	top := HeaderRows
	bottom := m.height
	if !m.hideRail {
		bottom -= RailRows
	}
	return y >= top && y < bottom
}

// onRail reports whether row y is the slide rail.
func (m Model) onRail(y int) bool {
	if m.snapshot.IsFullscreen || m.hideRail {
		return false
	}
	return y == m.height-1
}

func (m *Model) setTheme(name string) {
	m.theme = GetTheme(name)
	m.progressBar = newProgressBar(m.theme)
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	err := prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:        m.theme.Name,
		ReduceMotion: m.reduceMotion,
		HideRail:     m.hideRail,
	})
	if err != nil {
		m.logger.Warn("save prefs failed", zap.Error(err))
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	if m.snapshot.IsFullscreen {
		return m.renderStage(m.height)
	}

	stageHeight := m.height - HeaderRows
	if !m.hideRail {
		stageHeight -= RailRows
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderStage(stageHeight))
	if !m.hideRail {
		b.WriteString("\n")
		b.WriteString(m.renderRail())
	}
	return b.String()
}

// Messages

// engineMsg carries a fresh engine snapshot across the bridge.
type engineMsg engine.Update

// artMsg delivers a finished slide art load.
type artMsg struct {
	index int
	art   *media.Art
	err   error
}

// Commands

// waitForUpdate blocks on the bridge channel for the next snapshot.
func (m Model) waitForUpdate() tea.Cmd {
	ch := m.updates
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return nil
		}
		return engineMsg(u)
	}
}

// loadArtCmd kicks off an art load for the slide at index, if it has an
// image that is not already in hand.
func (m Model) loadArtCmd(index int) tea.Cmd {
	if m.loader == nil || m.deck == nil {
		return nil
	}
	if _, ok := m.arts[index]; ok {
		return nil
	}
	path := m.deck.ImagePath(index)
	if path == "" {
		return nil
	}
	ctx := m.ctx
	loader := m.loader
	return func() tea.Msg {
		art, err := loader.Load(ctx, path)
		return artMsg{index: index, art: art, err: err}
	}
}

// engineUpdates bridges engine notifications into a latest-wins channel.
// The subscriber runs inside the engine's notify path, so it must never
// block: when the UI is behind, the stale snapshot is dropped and replaced.
func engineUpdates(e *engine.Engine) (<-chan engine.Update, func()) {
	ch := make(chan engine.Update, 1)
	unsub := e.Subscribe(func(u engine.Update) {
		for {
			select {
			case ch <- u:
				return
			default:
				select {
				case <-ch:
				default:
				}
			}
		}
	})
	return ch, unsub
}

// Run starts the Bubble Tea program and blocks until the presenter exits.
func Run(opts Options) error {
	m := New(opts)

	if opts.Engine != nil {
		updates, unsub := engineUpdates(opts.Engine)
		defer unsub()
		m.updates = updates
	}

	progOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}

	p := tea.NewProgram(m, progOpts...)
	_, err := p.Run()
	return err
}
