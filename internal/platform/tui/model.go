package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crazy-hatman/internal/config"
	"github.com/vovakirdan/crazy-hatman/internal/core"
	"github.com/vovakirdan/crazy-hatman/internal/games/hatman"
	"github.com/vovakirdan/crazy-hatman/internal/render"
	"github.com/vovakirdan/crazy-hatman/internal/storage"
)

// Options configures a game Model.
type Options struct {
	Config config.AppConfig
	Seed   int64  // 0 picks a time-based seed
	Player string // Recorded with finished runs
	Store  *storage.Store
	Logger *log.Logger
	Width  int // Initial terminal size; a WindowSizeMsg replaces it
	Height int
}

// Model is the Bubble Tea model hosting one hatman engine.
type Model struct {
	game     *hatman.Game
	runtime  core.RuntimeConfig
	player   string
	renderer *render.Renderer
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	cfg      config.AppConfig

	keys   KeyMap
	help   help.Model
	input  core.InputFrame
	hold   moveHold
	aimed  bool // A pointer position has been reported
	cursor core.MenuItem
	best   int // Highest recorded score, shown in the menu

	quitting bool
}

// NewModel creates a game model in the main menu.
func NewModel(opts Options) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		def := core.DefaultConfig()
		opts.Width, opts.Height = def.ScreenW, def.ScreenH
	}

	runtime := core.RuntimeConfig{
		ScreenW:  opts.Width,
		ScreenH:  opts.Height,
		TickRate: opts.Config.Display.TickRate,
		Seed:     opts.Seed,
	}

	m := Model{
		game:    hatman.New(runtime),
		runtime: runtime,
		player:  opts.Player,
		store:   opts.Store,
		logger:  opts.Logger,
		cfg:     opts.Config,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		input:   core.NewInputFrame(),
		hold:    newMoveHold(opts.Config.Controls.HoldTicks),
		cursor:  core.MenuNewGame,
	}
	if m.store != nil {
		best, err := m.store.HighScore()
		if err != nil {
			m.logger.Warn("could not read high score", "error", err)
		}
		m.best = best
	}
	m.resize(opts.Width, opts.Height)
	return m
}

// resize rebuilds the renderer. The last row is kept for the help line.
func (m *Model) resize(w, h int) {
	m.runtime.ScreenW, m.runtime.ScreenH = w, h
	m.renderer = render.New(render.Options{
		Cols:    w,
		Rows:    max(h-1, 0),
		MinCols: m.cfg.Display.MinCols,
		MinRows: m.cfg.Display.MinRows,
	})
	m.renderer.SetHighScore(m.best)
	if m.screen == nil {
		m.screen = m.renderer.NewScreen()
	} else {
		m.screen.Resize(w, max(h-1, 0))
	}
	m.help.Width = w
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("engine ready", "seed", m.runtime.Seed, "player", m.player)
	return tickCmd(m.runtime.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records keyboard input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// Full help hides the field, so the game is paused and input ignored.
	if m.help.ShowAll {
		return m, nil
	}

	if m.game.State() == hatman.StateMenu {
		m.handleMenuKey(msg)
		return m, nil
	}

	if d, ok := m.keys.directionFor(msg); ok {
		m.hold.press(d)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Fire):
		m.input.Set(core.ActionFire)
	case key.Matches(msg, m.keys.Confirm):
		m.input.Set(core.ActionConfirm)
	case key.Matches(msg, m.keys.Cancel):
		m.input.Set(core.ActionCancel)
	}
	return m, nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Fire):
		m.input.Select(m.cursor)
	case key.Matches(msg, m.keys.NewGame):
		m.input.Select(core.MenuNewGame)
	case key.Matches(msg, m.keys.Continue):
		m.input.Select(core.MenuContinue)
	case key.Matches(msg, m.keys.Quit):
		m.input.Select(core.MenuQuit)
	case key.Matches(msg, m.keys.Cancel):
		m.input.Set(core.ActionCancel)
	}
}

func (m *Model) moveCursor(delta int) {
	items := []core.MenuItem{core.MenuNewGame, core.MenuContinue, core.MenuQuit}
	idx := 0
	for i, it := range items {
		if it == m.cursor {
			idx = i
		}
	}
	idx = (idx + delta + len(items)) % len(items)
	m.cursor = items[idx]
}

// handleMouse aims at the pointer and fires or picks menu entries on click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.renderer.TooSmall() || m.help.ShowAll {
		return m, nil
	}
	click := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	if m.game.State() == hatman.StateMenu {
		if item := m.renderer.MenuItemAt(msg.Y); item != core.MenuNone {
			m.cursor = item
			if click {
				m.input.Select(item)
			}
		}
		return m, nil
	}

	if msg.Action == tea.MouseActionMotion || click {
		m.input.Aim = m.renderer.CellToWorld(msg.X, msg.Y)
		m.aimed = true
	}
	if click {
		m.input.Set(core.ActionFire)
	}
	return m, nil
}

// handleTick advances the engine one tick with the input gathered since the last one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.help.ShowAll {
		return m, tickCmd(m.runtime.TickInterval())
	}

	m.input.Move = m.hold.intent()
	if !m.aimed {
		m.input.Aim = defaultAim(m.game)
	}

	result := m.game.Step(m.input)

	m.hold.tick()
	m.input.Clear()
	if result.State != hatman.StatePlaying {
		m.hold.release()
	}

	for _, e := range result.Events {
		m.handleEvent(e)
	}

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.runtime.TickInterval())
}

// defaultAim points straight up from the player until the pointer moves.
func defaultAim(g *hatman.Game) core.Vec {
	return core.V(g.PlayerPos().X, 0)
}

func (m *Model) handleEvent(e hatman.Event) {
	switch e.Kind {
	case hatman.EventGameOver:
		m.logger.Info("run finished", "player", m.player, "outcome", storage.OutcomeDefeated, "score", e.Score, "level", e.Level)
		m.saveRun(e, storage.OutcomeDefeated)
	case hatman.EventCampaignCleared:
		m.logger.Info("run finished", "player", m.player, "outcome", storage.OutcomeCleared, "score", e.Score, "level", e.Level)
		m.saveRun(e, storage.OutcomeCleared)
	case hatman.EventLevelComplete:
		m.logger.Info("level complete", "player", m.player, "level", e.Level, "score", e.Score)
	case hatman.EventQuit:
		m.logger.Info("quit requested", "player", m.player)
	default:
		m.logger.Debug("event", "kind", e.Kind, "score", e.Score, "damage", e.Damage)
	}
}

// saveRun records a finished run. Run-ending events fire once per run.
func (m *Model) saveRun(e hatman.Event, outcome storage.Outcome) {
	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.RunRecord{
		Player:  m.player,
		Score:   e.Score,
		Level:   e.Level,
		Outcome: outcome,
		Seed:    uint64(m.runtime.Seed), //#nosec G115
		Ticks:   m.game.Ticks(),
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	if e.Score > m.best {
		m.best = e.Score
		m.renderer.SetHighScore(m.best)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.renderer.Draw(m.screen, m.game.Snapshot(), m.cursor)

	base := config.Dir()
	if base == "" {
		return
	}
	dir := filepath.Join(base, "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("hatman_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.help.ShowAll {
		return m.help.View(m.keys) + "\n\nPaused. Press ? to resume."
	}
	m.renderer.Draw(m.screen, m.game.Snapshot(), m.cursor)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Pointer aim needs motion without a held button
	)

	_, err := p.Run()
	return err
}
