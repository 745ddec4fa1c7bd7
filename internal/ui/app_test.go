package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chanderbhanswami/lantern/internal/deck"
	"github.com/chanderbhanswami/lantern/internal/engine"
	"github.com/chanderbhanswami/lantern/internal/trace"
)

func testModel(t *testing.T, cfg engine.Config) (Model, *engine.Engine) {
	t.Helper()
	eng := engine.New(cfg)
	d := &deck.Deck{
		Title: "City Lights",
		Slides: []deck.Slide{
			{ID: "s1", Title: "Intro", Body: "Welcome to the show."},
			{ID: "s2", Title: "Middle", Body: "The long middle part."},
			{ID: "s3", Title: "More", Body: "Still going."},
			{ID: "s4", Title: "Nearly", Body: "Almost done."},
			{ID: "s5", Title: "Closing", Body: "Thanks for watching."},
		},
	}
	m := New(Options{
		Engine:      eng,
		Deck:        d,
		Suspensions: engine.NewSuspensions(eng),
		Journal:     trace.NewJournal(16),
		ThemeName:   "Nightfox",
	})
	return drive(m, tea.WindowSizeMsg{Width: 80, Height: 24}), eng
}

func drive(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeysDriveEngine(t *testing.T) {
	m, eng := testModel(t, engine.Config{SlideCount: 5})

	m = drive(m, tea.KeyMsg{Type: tea.KeyRight})
	if got := eng.State().Index; got != 1 {
		t.Fatalf("after right: index = %d, want 1", got)
	}

	m = drive(m, keyRunes("l"))
	if got := eng.State().Index; got != 2 {
		t.Fatalf("after l: index = %d, want 2", got)
	}

	m = drive(m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := eng.State().Index; got != 1 {
		t.Fatalf("after left: index = %d, want 1", got)
	}

	m = drive(m, keyRunes("G"))
	if got := eng.State().Index; got != 4 {
		t.Fatalf("after G: index = %d, want 4", got)
	}

	m = drive(m, keyRunes("g"))
	if got := eng.State().Index; got != 0 {
		t.Fatalf("after g: index = %d, want 0", got)
	}

	m = drive(m, keyRunes("3"))
	if got := eng.State().Index; got != 2 {
		t.Fatalf("after digit 3: index = %d, want 2", got)
	}

	m = drive(m, tea.KeyMsg{Type: tea.KeySpace})
	if !eng.State().IsPlaying {
		t.Fatalf("space should start autoplay")
	}

	m = drive(m, keyRunes("f"))
	if !eng.State().IsFullscreen {
		t.Fatalf("f should enter fullscreen")
	}
	_ = m
}

func TestDigitBeyondDeckIsIgnored(t *testing.T) {
	m, eng := testModel(t, engine.Config{SlideCount: 5})
	m = drive(m, keyRunes("9"))
	if got := eng.State().Index; got != 0 {
		t.Fatalf("digit past end moved index to %d, want 0", got)
	}
	_ = m
}

func TestGotoPromptJumps(t *testing.T) {
	m, eng := testModel(t, engine.Config{SlideCount: 5})

	m = drive(m, keyRunes(":"))
	if m.modal == nil {
		t.Fatalf(": should open the goto prompt")
	}

	m = drive(m, keyRunes("4"))
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.modal != nil {
		t.Fatalf("enter should close the prompt")
	}
	if cmd == nil {
		t.Fatalf("enter should produce a goto command")
	}

	m = drive(m, cmd())
	if got := eng.State().Index; got != 3 {
		t.Fatalf("goto 4 landed on index %d, want 3", got)
	}
}

func TestGotoPromptRejectsOutOfRange(t *testing.T) {
	m, _ := testModel(t, engine.Config{SlideCount: 5})

	m = drive(m, keyRunes(":"))
	m = drive(m, keyRunes("9"))
	m = drive(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.modal == nil {
		t.Fatalf("out-of-range entry should keep the prompt open")
	}

	view := m.modal.View(m.theme, 80, 24)
	if !strings.Contains(view, "between 1 and 5") {
		t.Fatalf("prompt should explain the valid range, got:\n%s", view)
	}

	m = drive(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.modal != nil {
		t.Fatalf("esc should close the prompt")
	}
}

func TestHelpModalClosesOnAnyKey(t *testing.T) {
	m, _ := testModel(t, engine.Config{SlideCount: 5})

	m = drive(m, keyRunes("?"))
	if m.modal == nil {
		t.Fatalf("? should open help")
	}
	m = drive(m, keyRunes("x"))
	if m.modal != nil {
		t.Fatalf("any key should close help")
	}
}

func TestModalSwallowsNavigationKeys(t *testing.T) {
	m, eng := testModel(t, engine.Config{SlideCount: 5})

	m = drive(m, keyRunes("?"))
	m = drive(m, tea.KeyMsg{Type: tea.KeyRight})
	if got := eng.State().Index; got != 0 {
		t.Fatalf("right while help open moved index to %d, want 0", got)
	}
	_ = m
}

func TestModalSwallowsPointerInput(t *testing.T) {
	m, eng := testModel(t, engine.Config{SlideCount: 5})

	m = drive(m, keyRunes("?"))
	m = drive(m, tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if got := eng.State().Index; got != 0 {
		t.Fatalf("wheel while help open moved index to %d, want 0", got)
	}

	m = drive(m, tea.MouseMsg{X: 60, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = drive(m, tea.MouseMsg{X: 60, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if got := eng.State().Index; got != 0 {
		t.Fatalf("click while help open moved index to %d, want 0", got)
	}
	if m.dragging {
		t.Fatalf("press under an overlay should not start a drag")
	}
}

func TestWheelNavigates(t *testing.T) {
	m, eng := testModel(t, engine.Config{SlideCount: 5})

	m = drive(m, tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if got := eng.State().Index; got != 1 {
		t.Fatalf("wheel down: index = %d, want 1", got)
	}

	m = drive(m, tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if got := eng.State().Index; got != 0 {
		t.Fatalf("wheel up: index = %d, want 0", got)
	}
	_ = m
}

func TestClickHalvesNavigate(t *testing.T) {
	m, eng := testModel(t, engine.Config{SlideCount: 5})

	// Right half click advances.
	m = drive(m, tea.MouseMsg{X: 60, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = drive(m, tea.MouseMsg{X: 60, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if got := eng.State().Index; got != 1 {
		t.Fatalf("right-half click: index = %d, want 1", got)
	}

	// Left half click goes back.
	m = drive(m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = drive(m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if got := eng.State().Index; got != 0 {
		t.Fatalf("left-half click: index = %d, want 0", got)
	}
	_ = m
}

func TestDragCommitsSlideChange(t *testing.T) {
	m, eng := testModel(t, engine.Config{SlideCount: 5})

	var causes []engine.Cause
	unsub := eng.Subscribe(func(u engine.Update) {
		if u.Change != nil {
			causes = append(causes, u.Change.Cause)
		}
	})
	defer unsub()

	m = drive(m, tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.dragging {
		t.Fatalf("press in stage should start a drag")
	}
	m = drive(m, tea.MouseMsg{X: 30, Y: 10, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if m.dragOffset != -10 {
		t.Fatalf("dragOffset = %d, want -10", m.dragOffset)
	}
	m = drive(m, tea.MouseMsg{X: 30, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if got := eng.State().Index; got != 1 {
		t.Fatalf("leftward drag: index = %d, want 1", got)
	}
	if len(causes) != 1 || causes[0] != engine.CauseDrag {
		t.Fatalf("causes = %v, want [drag]", causes)
	}
	if m.dragging {
		t.Fatalf("release should end the drag")
	}
}

func TestRailClickJumps(t *testing.T) {
	m, eng := testModel(t, engine.Config{SlideCount: 5})

	// Third dot sits at column railPad + 2*railDotStride.
	x := railPad + 2*railDotStride
	m = drive(m, tea.MouseMsg{X: x, Y: 23, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := eng.State().Index; got != 2 {
		t.Fatalf("rail click: index = %d, want 2", got)
	}
	_ = m
}

func TestHoverAndFocusHoldAutoplay(t *testing.T) {
	m, eng := testModel(t, engine.Config{SlideCount: 5, Autoplay: true})

	m = drive(m, tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionMotion})
	if !eng.State().IsSuspended {
		t.Fatalf("hover over stage should suspend autoplay")
	}
	m = drive(m, tea.MouseMsg{X: 40, Y: 0, Action: tea.MouseActionMotion})
	if eng.State().IsSuspended {
		t.Fatalf("leaving the stage should lift the hover hold")
	}

	m = drive(m, tea.BlurMsg{})
	if !eng.State().IsSuspended {
		t.Fatalf("terminal blur should suspend autoplay")
	}
	m = drive(m, tea.FocusMsg{})
	if eng.State().IsSuspended {
		t.Fatalf("focus return should lift the hold")
	}
	_ = m
}

func TestEscapeLeavesFullscreen(t *testing.T) {
	m, eng := testModel(t, engine.Config{SlideCount: 5})

	m = drive(m, keyRunes("f"))
	m.snapshot = eng.State()
	if !m.snapshot.IsFullscreen {
		t.Fatalf("f should enter fullscreen")
	}

	m = drive(m, tea.KeyMsg{Type: tea.KeyEsc})
	if eng.State().IsFullscreen {
		t.Fatalf("esc should leave fullscreen")
	}

	// Esc with no overlay and no fullscreen changes nothing.
	m = drive(m, tea.KeyMsg{Type: tea.KeyEsc})
	if got := eng.State().Index; got != 0 {
		t.Fatalf("bare esc moved index to %d, want 0", got)
	}
}

func TestLinkOverlayShowsSlideLink(t *testing.T) {
	m, _ := testModel(t, engine.Config{SlideCount: 5})
	m.deck.Slides[0].Link = "https://example.com/talk"

	m = drive(m, keyRunes("L"))
	if m.modal == nil {
		t.Fatalf("L should open the link overlay")
	}
	view := m.modal.View(m.theme, 100, 40)
	if !strings.Contains(view, "https://example.com/talk") {
		t.Fatalf("link overlay missing URL:\n%s", view)
	}

	m = drive(m, keyRunes("x"))
	if m.modal != nil {
		t.Fatalf("any key should close the link overlay")
	}
}

func TestLinkOverlayWithoutLink(t *testing.T) {
	m, _ := testModel(t, engine.Config{SlideCount: 5})

	m = drive(m, keyRunes("L"))
	view := m.modal.View(m.theme, 100, 40)
	if !strings.Contains(view, "This slide has no link.") {
		t.Fatalf("link overlay should say the slide has no link:\n%s", view)
	}
}

func TestEngineMsgRefreshesSnapshot(t *testing.T) {
	m, _ := testModel(t, engine.Config{SlideCount: 5})

	st := engine.State{Index: 3, SlideCount: 5}
	m = drive(m, engineMsg(engine.Update{State: st}))
	if m.snapshot.Index != 3 {
		t.Fatalf("snapshot index = %d, want 3", m.snapshot.Index)
	}
}

func TestViewShowsDeckAndPosition(t *testing.T) {
	m, _ := testModel(t, engine.Config{SlideCount: 5})
	m.snapshot = m.engine.State()

	view := m.View()
	if !strings.Contains(view, "City Lights") {
		t.Fatalf("view missing deck title:\n%s", view)
	}
	if !strings.Contains(view, "1/5") {
		t.Fatalf("view missing position:\n%s", view)
	}
	if !strings.Contains(view, "Intro") {
		t.Fatalf("view missing slide title:\n%s", view)
	}
}

func TestThemeCycleKeepsWorkingSet(t *testing.T) {
	m, _ := testModel(t, engine.Config{SlideCount: 5})

	before := m.theme.Name
	m = drive(m, keyRunes("T"))
	if m.theme.Name == before {
		t.Fatalf("T should cycle the theme")
	}
	if m.View() == "" {
		t.Fatalf("view should render under the new theme")
	}
}

func TestRailToggleHidesRail(t *testing.T) {
	m, eng := testModel(t, engine.Config{SlideCount: 5})

	if m.hideRail {
		t.Fatalf("rail should start visible")
	}
	m = drive(m, keyRunes("r"))
	if !m.hideRail {
		t.Fatalf("r should hide the rail")
	}

	// Rail clicks are dead while hidden; the row belongs to the stage.
	m = drive(m, tea.MouseMsg{X: railPad, Y: 23, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := eng.State().Index; got != 0 {
		t.Fatalf("click on hidden rail moved index to %d, want 0", got)
	}
	if !m.dragging {
		t.Fatalf("with the rail hidden the bottom row should act as stage")
	}
}
