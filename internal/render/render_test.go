package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/crazy-hatman/internal/core"
	"github.com/vovakirdan/crazy-hatman/internal/games/hatman"
)

func playingSnapshot() hatman.Snapshot {
	g := hatman.NewWithRNG(hatman.NewSimpleRNG(1))
	g.StartNewGame()
	return g.Snapshot()
}

func screenContains(s *core.Screen, text string) bool {
	for y := 0; y < s.Height(); y++ {
		if strings.Contains(s.Row(y), text) {
			return true
		}
	}
	return false
}

func TestFieldLayout(t *testing.T) {
	r := New(Options{Cols: 82, Rows: 26})
	f := r.Field()

	if f != core.NewRect(1, 3, 80, 22) {
		t.Errorf("Field() = %+v, expected 80x22 at (1, 3)", f)
	}
}

func TestWorldCellRoundTrip(t *testing.T) {
	r := New(Options{Cols: 82, Rows: 26})

	tests := []struct {
		col, row int
	}{
		{1, 3},
		{40, 14},
		{80, 24},
	}
	for _, tc := range tests {
		w := r.CellToWorld(tc.col, tc.row)
		col, row := r.WorldToCell(w)
		if col != tc.col || row != tc.row {
			t.Errorf("cell (%d, %d) -> %v -> (%d, %d)", tc.col, tc.row, w, col, row)
		}
	}
}

func TestCellToWorldClamps(t *testing.T) {
	r := New(Options{Cols: 82, Rows: 26})

	w := r.CellToWorld(-5, 0)
	if w.X <= 0 || w.X >= hatman.WorldW || w.Y <= 0 || w.Y >= hatman.WorldH {
		t.Errorf("CellToWorld outside the field = %v, expected a point inside the world", w)
	}
}

func TestDrawTooSmall(t *testing.T) {
	r := New(Options{Cols: 20, Rows: 8})
	s := r.NewScreen()

	r.Draw(s, playingSnapshot(), core.MenuNewGame)

	if !r.TooSmall() {
		t.Fatal("20x8 should be too small")
	}
	if !screenContains(s, "too small") {
		t.Errorf("expected a resize hint, got:\n%s", s.String())
	}
}

func TestDrawMenu(t *testing.T) {
	r := New(Options{Cols: 80, Rows: 24})
	s := r.NewScreen()
	g := hatman.NewWithRNG(hatman.NewSimpleRNG(1))

	r.Draw(s, g.Snapshot(), core.MenuNewGame)

	for _, want := range []string{"H A T M A N", "> New Game <", "Continue", "Quit"} {
		if !screenContains(s, want) {
			t.Errorf("menu missing %q", want)
		}
	}
	if screenContains(s, "Best score") {
		t.Error("best score should be hidden without a score")
	}
}

func TestDrawMenuHighScore(t *testing.T) {
	r := New(Options{Cols: 80, Rows: 24})
	s := r.NewScreen()
	g := hatman.NewWithRNG(hatman.NewSimpleRNG(1))

	r.Draw(s, g.Snapshot(), core.MenuNewGame)
	if screenContains(s, "High score") {
		t.Error("high score should be hidden until one is recorded")
	}

	r.SetHighScore(250)
	r.Draw(s, g.Snapshot(), core.MenuNewGame)
	if !screenContains(s, "High score: 250") {
		t.Errorf("menu missing the high score:\n%s", s.String())
	}
}

func TestMenuItemAt(t *testing.T) {
	r := New(Options{Cols: 80, Rows: 24})
	s := r.NewScreen()
	g := hatman.NewWithRNG(hatman.NewSimpleRNG(1))
	r.Draw(s, g.Snapshot(), core.MenuNone)

	for row := 0; row < s.Height(); row++ {
		item := r.MenuItemAt(row)
		if item == core.MenuNone {
			continue
		}
		if !strings.Contains(s.Row(row), item.String()) {
			t.Errorf("row %d maps to %v but shows %q", row, item, s.Row(row))
		}
	}
	if r.MenuItemAt(0) != core.MenuNone {
		t.Error("title row should not be a menu entry")
	}
}

func TestDrawPlayingHUD(t *testing.T) {
	r := New(Options{Cols: 100, Rows: 30})
	s := r.NewScreen()
	snap := playingSnapshot()
	snap.Player.BladesReady = true
	snap.Player.Health = 2
	snap.Player.LowHealth = true

	r.Draw(s, snap, core.MenuNone)

	for _, want := range []string{"Score: 0", "Level: 1/3", "Enemies: 0/10", "BLADES READY", "WARNING! Health: 2/10"} {
		if !screenContains(s, want) {
			t.Errorf("HUD missing %q:\n%s", want, s.String())
		}
	}
}

func TestDrawBoostSeconds(t *testing.T) {
	r := New(Options{Cols: 100, Rows: 30})
	s := r.NewScreen()
	snap := playingSnapshot()
	snap.Player.DamageMult = 2
	snap.Player.BoostTicks = 599

	r.Draw(s, snap, core.MenuNone)

	if !screenContains(s, "DAMAGE x2 (9s)") {
		t.Errorf("expected boost countdown in whole seconds:\n%s", s.Row(1))
	}
}

func TestDrawPlayerInsideField(t *testing.T) {
	r := New(Options{Cols: 82, Rows: 26})
	s := r.NewScreen()
	snap := playingSnapshot()

	r.Draw(s, snap, core.MenuNone)

	col, row := r.WorldToCell(snap.Player.Pos)
	if got := s.Get(col, row); got != '@' {
		t.Errorf("player glyph at (%d, %d) = %q, expected '@'", col, row, got)
	}
	if s.GetCell(col, row).Color != core.ColorBrightBlue {
		t.Error("player should be drawn blue")
	}
}

func TestInvinciblePlayerBlinks(t *testing.T) {
	r := New(Options{Cols: 82, Rows: 26})
	s := r.NewScreen()
	snap := playingSnapshot()
	snap.Player.Invincible = true
	col, row := r.WorldToCell(snap.Player.Pos)

	snap.Tick = 0
	r.Draw(s, snap, core.MenuNone)
	if c := s.GetCell(col, row).Color; c != core.ColorBrightRed {
		t.Errorf("bright phase colour = %d, expected bright red", c)
	}

	snap.Tick = blinkPeriod
	r.Draw(s, snap, core.MenuNone)
	if c := s.GetCell(col, row).Color; c != core.ColorRed {
		t.Errorf("dim phase colour = %d, expected red", c)
	}
}

func TestSpritesClippedToField(t *testing.T) {
	r := New(Options{Cols: 82, Rows: 26})
	s := r.NewScreen()
	snap := playingSnapshot()
	// Freshly spawned enemies sit above the top edge.
	snap.Enemies = append(snap.Enemies, hatman.EnemyView{Pos: core.V(400, -15), Radius: 15, Tier: hatman.TierScout})

	r.Draw(s, snap, core.MenuNone)

	for x := 0; x < s.Width(); x++ {
		if c := s.GetCell(x, HUDRows); c.Rune != '─' && c.Rune != '┌' && c.Rune != '┐' {
			t.Fatalf("border row overwritten at x=%d by %q", x, c.Rune)
		}
	}
}

func TestDrawGameOverOverlay(t *testing.T) {
	r := New(Options{Cols: 80, Rows: 24})
	s := r.NewScreen()
	snap := playingSnapshot()
	snap.State = hatman.StateGameOver
	snap.Score = 140
	snap.Level = 2

	r.Draw(s, snap, core.MenuNone)

	for _, want := range []string{"GAME OVER", "Your score: 140", "Level reached: 2", "ESC"} {
		if !screenContains(s, want) {
			t.Errorf("game-over overlay missing %q", want)
		}
	}
}

func TestDrawLevelCompletePrompt(t *testing.T) {
	r := New(Options{Cols: 80, Rows: 24})
	s := r.NewScreen()
	snap := playingSnapshot()
	snap.State = hatman.StateLevelComplete

	snap.LevelCompleteTicks = 10
	r.Draw(s, snap, core.MenuNone)
	if !screenContains(s, "LEVEL 1 COMPLETE!") {
		t.Error("expected the level-complete title")
	}
	if screenContains(s, "ENTER") {
		t.Error("prompt should wait until Confirm is accepted")
	}

	snap.LevelCompleteTicks = 61
	r.Draw(s, snap, core.MenuNone)
	if !screenContains(s, "Press ENTER for the next level") {
		t.Error("expected the next-level prompt")
	}

	snap.Finished = true
	r.Draw(s, snap, core.MenuNone)
	if !screenContains(s, "YOU BEAT THE GAME!") {
		t.Error("expected the campaign-cleared title")
	}
}
