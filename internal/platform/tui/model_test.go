package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crazy-hatman/internal/config"
	"github.com/vovakirdan/crazy-hatman/internal/core"
	"github.com/vovakirdan/crazy-hatman/internal/games/hatman"
	"github.com/vovakirdan/crazy-hatman/internal/storage"
)

func newTestModel(t *testing.T, hold int) Model {
	t.Helper()
	cfg := config.DefaultAppConfig()
	cfg.Controls.HoldTicks = hold
	return NewModel(Options{Config: cfg, Seed: 7, Player: "tester", Width: 82, Height: 27})
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return send(t, m, TickMsg{})
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelNewGameShortcut(t *testing.T) {
	m := newTestModel(t, 8)

	m, _ = send(t, m, runes("n"))
	m, cmd := tick(t, m)

	if m.game.State() != hatman.StatePlaying {
		t.Fatalf("state = %v, expected playing", m.game.State())
	}
	if cmd == nil || isQuit(cmd) {
		t.Error("tick loop should keep running")
	}
}

func TestModelMenuCursor(t *testing.T) {
	m := newTestModel(t, 8)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != core.MenuContinue {
		t.Fatalf("cursor = %v, expected Continue", m.cursor)
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != core.MenuNewGame {
		t.Fatalf("cursor = %v, expected wrap to New Game", m.cursor)
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != core.MenuQuit {
		t.Fatalf("cursor = %v, expected wrap to Quit", m.cursor)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := tick(t, m)
	if !isQuit(cmd) {
		t.Error("selecting Quit should end the program")
	}
	if m.View() != "" {
		t.Error("view should be empty once quitting")
	}
}

func TestModelHeldMovement(t *testing.T) {
	m := newTestModel(t, 3)
	m, _ = send(t, m, runes("n"))
	m, _ = tick(t, m)
	start := m.game.PlayerPos()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for i := 0; i < 5; i++ {
		m, _ = tick(t, m)
	}

	moved := m.game.PlayerPos().X - start.X
	if moved != 3*hatman.PlayerSpeed {
		t.Errorf("player moved %v, expected %v for a 3-tick hold", moved, 3*hatman.PlayerSpeed)
	}
}

func TestModelMouseAimAndFire(t *testing.T) {
	m := newTestModel(t, 8)
	m, _ = send(t, m, runes("n"))
	m, _ = tick(t, m)

	m, _ = send(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if !m.input.Has(core.ActionFire) {
		t.Error("left click should fire")
	}
	if want := m.renderer.CellToWorld(10, 5); m.input.Aim != want {
		t.Errorf("Aim = %v, expected %v", m.input.Aim, want)
	}

	m, _ = tick(t, m)
	if m.input.Has(core.ActionFire) {
		t.Error("fire should be consumed by the tick")
	}
	if !m.aimed {
		t.Error("pointer aim should persist after the click")
	}
}

func TestModelMouseMenu(t *testing.T) {
	m := newTestModel(t, 8)

	row := -1
	for y := 0; y < m.runtime.ScreenH; y++ {
		if m.renderer.MenuItemAt(y) == core.MenuQuit {
			row = y
		}
	}
	if row < 0 {
		t.Fatal("no menu row for Quit")
	}

	m, _ = send(t, m, tea.MouseMsg{X: 40, Y: row, Action: tea.MouseActionMotion})
	if m.cursor != core.MenuQuit {
		t.Errorf("hover should move the cursor, got %v", m.cursor)
	}

	m, _ = send(t, m, tea.MouseMsg{X: 40, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	_, cmd := tick(t, m)
	if !isQuit(cmd) {
		t.Error("clicking Quit should end the program")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := newTestModel(t, 8)
	m, _ = send(t, m, runes("n"))
	m, _ = tick(t, m)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.game.State() != hatman.StatePlaying {
		t.Error("resizing should not reset the run")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelViewShowsHUD(t *testing.T) {
	m := newTestModel(t, 8)
	m, _ = send(t, m, runes("n"))
	m, _ = tick(t, m)

	if view := m.View(); !strings.Contains(view, "Score: 0") {
		t.Errorf("view missing the HUD:\n%s", view)
	}
}

func TestModelSavesFinishedRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	cfg := config.DefaultAppConfig()
	m := NewModel(Options{Config: cfg, Seed: 11, Player: "ann", Store: store})

	m.handleEvent(hatman.Event{Kind: hatman.EventEnemyDefeated, Score: 10})
	m.handleEvent(hatman.Event{Kind: hatman.EventGameOver, Score: 130, Level: 2})
	m.handleEvent(hatman.Event{Kind: hatman.EventCampaignCleared, Score: 600, Level: 3})

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("recorded %d runs, expected 2", len(runs))
	}
	if runs[0].Outcome != storage.OutcomeCleared || runs[0].Score != 600 {
		t.Errorf("best run = %+v, expected the cleared run", runs[0])
	}
	if runs[1].Player != "ann" || runs[1].Outcome != storage.OutcomeDefeated || runs[1].Level != 2 || runs[1].Seed != 11 {
		t.Errorf("defeated run = %+v", runs[1])
	}
}

func TestModelForceQuit(t *testing.T) {
	m := newTestModel(t, 8)
	m, _ = send(t, m, runes("n"))

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c should quit from any state")
	}
}

func TestModelHelpPausesGame(t *testing.T) {
	m := newTestModel(t, 8)
	m, _ = send(t, m, runes("n"))
	m, _ = tick(t, m)
	before := m.game.Ticks()

	m, _ = send(t, m, runes("?"))
	m, _ = send(t, m, runes(" "))
	for i := 0; i < 10; i++ {
		var cmd tea.Cmd
		m, cmd = tick(t, m)
		if cmd == nil {
			t.Fatal("tick loop should keep running while paused")
		}
	}
	if got := m.game.Ticks(); got != before {
		t.Errorf("engine stepped %d ticks under full help, expected none", got-before)
	}
	if m.input.Has(core.ActionFire) {
		t.Error("keys pressed under full help should be ignored")
	}
	if view := m.View(); !strings.Contains(view, "Paused") {
		t.Errorf("help view should say the game is paused:\n%s", view)
	}

	m, _ = send(t, m, runes("?"))
	m, _ = tick(t, m)
	if got := m.game.Ticks(); got != before+1 {
		t.Errorf("Ticks() = %d after closing help, expected %d", got, before+1)
	}
}

func TestModelMenuShowsHighScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	if _, err := store.SaveRun(storage.RunRecord{Player: "bo", Score: 300, Level: 2, Outcome: storage.OutcomeDefeated}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := NewModel(Options{Config: config.DefaultAppConfig(), Seed: 3, Player: "ann", Store: store, Width: 82, Height: 27})
	if view := m.View(); !strings.Contains(view, "High score: 300") {
		t.Errorf("menu missing the stored high score:\n%s", view)
	}

	m.handleEvent(hatman.Event{Kind: hatman.EventCampaignCleared, Score: 640, Level: 3})
	if view := m.View(); !strings.Contains(view, "High score: 640") {
		t.Errorf("high score not updated after a better run:\n%s", view)
	}
}
