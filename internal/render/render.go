// Package render turns hatman snapshots into terminal cells.
//
// A Renderer is built once per terminal size and never reads simulation
// state other than the Snapshot it is handed.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/crazy-hatman/internal/core"
	"github.com/vovakirdan/crazy-hatman/internal/games/hatman"
)

// HUDRows is the number of rows above the play area.
const HUDRows = 2

// Minimum terminal size the game renders at.
const (
	DefaultMinCols = 40
	DefaultMinRows = 16
)

// Options configures a Renderer.
type Options struct {
	Cols, Rows       int // Size of the target screen
	MinCols, MinRows int // Below this a resize hint is drawn; 0 uses the defaults
}

// Renderer draws snapshots onto a core.Screen.
type Renderer struct {
	opts  Options
	field core.Rect // Play area inside the border, in cells
	small bool
	high  int
}

var menuItems = []core.MenuItem{core.MenuNewGame, core.MenuContinue, core.MenuQuit}

// New creates a renderer for a screen of the given size.
func New(opts Options) *Renderer {
	if opts.MinCols <= 0 {
		opts.MinCols = DefaultMinCols
	}
	if opts.MinRows <= 0 {
		opts.MinRows = DefaultMinRows
	}
	r := &Renderer{
		opts:  opts,
		small: opts.Cols < opts.MinCols || opts.Rows < opts.MinRows,
	}
	// Border box occupies the rows below the HUD; the field is its interior.
	r.field = core.NewRect(1, HUDRows+1, max(opts.Cols-2, 0), max(opts.Rows-HUDRows-2, 0))
	return r
}

// NewScreen allocates a screen matching the renderer size.
func (r *Renderer) NewScreen() *core.Screen {
	return core.NewScreen(r.opts.Cols, r.opts.Rows)
}

// Field returns the play area in cells.
func (r *Renderer) Field() core.Rect {
	return r.field
}

// TooSmall reports whether the terminal is below the minimum size.
func (r *Renderer) TooSmall() bool {
	return r.small
}

// SetHighScore sets the all-time high score shown in the menu; 0 hides it.
func (r *Renderer) SetHighScore(score int) {
	r.high = score
}

// WorldToCell maps a world position to a screen cell.
func (r *Renderer) WorldToCell(p core.Vec) (int, int) {
	col := r.field.X + int(math.Floor(p.X*float64(r.field.W)/hatman.WorldW))
	row := r.field.Y + int(math.Floor(p.Y*float64(r.field.H)/hatman.WorldH))
	return col, row
}

// CellToWorld maps a screen cell to the world position of its centre,
// clamped to the play area.
func (r *Renderer) CellToWorld(col, row int) core.Vec {
	if r.field.W == 0 || r.field.H == 0 {
		return core.V(hatman.WorldW/2, 0)
	}
	col = core.Clamp(col, r.field.X, r.field.Right()-1)
	row = core.Clamp(row, r.field.Y, r.field.Bottom()-1)
	return r.cellCentre(col, row)
}

// Draw renders one frame. cursor is the highlighted menu entry.
func (r *Renderer) Draw(dst *core.Screen, snap hatman.Snapshot, cursor core.MenuItem) {
	dst.Clear()

	if r.small {
		r.drawTooSmall(dst)
		return
	}

	switch snap.State {
	case hatman.StateMenu:
		r.drawMenu(dst, snap, cursor)
	case hatman.StatePlaying:
		r.drawPlaying(dst, snap)
	case hatman.StateLevelComplete:
		r.drawPlaying(dst, snap)
		r.drawLevelComplete(dst, snap)
	case hatman.StateGameOver:
		r.drawPlaying(dst, snap)
		r.drawGameOver(dst, snap)
	}
}

func (r *Renderer) drawTooSmall(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Terminal too small", core.ColorBrightRed)
	dst.DrawTextCentered(mid, fmt.Sprintf("Need at least %dx%d", r.opts.MinCols, r.opts.MinRows), core.ColorGray)
}

func (r *Renderer) menuTop() int {
	return max(r.opts.Rows/2-6, 0)
}

// MenuItemAt returns the menu entry drawn on row, or MenuNone.
func (r *Renderer) MenuItemAt(row int) core.MenuItem {
	first := r.menuTop() + 5
	if idx := row - first; idx >= 0 && idx < len(menuItems) {
		return menuItems[idx]
	}
	return core.MenuNone
}

func (r *Renderer) drawMenu(dst *core.Screen, snap hatman.Snapshot, cursor core.MenuItem) {
	top := r.menuTop()
	dst.DrawTextCentered(top, "C R A Z Y   H A T M A N", core.ColorBrightCyan)
	dst.DrawTextCentered(top+2, "One life, ten health - survive at any cost!", core.ColorWhite)
	dst.DrawTextCentered(top+3, "Collect hats for special powers!", core.ColorYellow)

	for i, item := range menuItems {
		color := core.ColorWhite
		if item == core.MenuContinue && !snap.CanContinue {
			color = core.ColorGray
		}
		label := "  " + item.String() + "  "
		if item == cursor {
			label = "> " + item.String() + " <"
			if color != core.ColorGray {
				color = core.ColorBrightYellow
			}
		}
		dst.DrawTextCentered(top+5+i, label, color)
	}

	if snap.Score > 0 {
		dst.DrawTextCentered(top+9, fmt.Sprintf("Best score: %d", snap.Score), core.ColorWhite)
	}
	if r.high > 0 {
		dst.DrawTextCentered(top+10, fmt.Sprintf("High score: %d", r.high), core.ColorGray)
	}
}

func (r *Renderer) drawPlaying(dst *core.Screen, snap hatman.Snapshot) {
	r.drawHUD(dst, snap)
	dst.DrawBox(core.NewRect(0, HUDRows, r.opts.Cols, r.opts.Rows-HUDRows), core.ColorGray)

	for _, d := range snap.Drawables() {
		s := d.Sprite()
		if _, ok := d.(hatman.PlayerView); ok && blinkDim(snap) {
			s.Color = s.Color.Dim()
		}
		r.drawSprite(dst, s)
	}

	if snap.Player.Invincible {
		dst.DrawTextCentered(r.field.Bottom()-1, "INVINCIBLE!", core.ColorYellow)
	}
}

func (r *Renderer) drawHUD(dst *core.Screen, snap hatman.Snapshot) {
	p := snap.Player
	left := fmt.Sprintf("Score: %d  Level: %d/%d  Enemies: %d/%d",
		snap.Score, snap.Level, snap.MaxLevel, snap.Defeated, snap.Quota)
	dst.DrawText(1, 0, left)

	hearts := strings.Repeat("♥", p.Health) + strings.Repeat("♡", max(p.MaxHealth-p.Health, 0))
	livesColor := core.ColorBrightGreen
	if p.Lives == 0 {
		livesColor = core.ColorBrightRed
	}
	right := fmt.Sprintf("Life: %d/1 %s", p.Lives, hearts)
	dst.DrawTextColor(r.opts.Cols-len([]rune(right))-1, 0, right, livesColor)

	var notices []notice
	add := func(text string, c core.Color) {
		notices = append(notices, notice{text, c})
	}
	if p.DamageMult > 1 {
		add(fmt.Sprintf("DAMAGE x%d (%ds)", p.DamageMult, p.BoostSeconds()), core.ColorYellow)
	}
	if p.BladesReady {
		add("BLADES READY! Fire to throw", core.ColorBrightRed)
	}
	if p.LowHealth && p.Health > 0 {
		add(fmt.Sprintf("WARNING! Health: %d/%d", p.Health, p.MaxHealth), core.ColorBrightRed)
	}

	x := 1
	for _, n := range notices {
		dst.DrawTextColor(x, 1, n.text, n.color)
		x += len([]rune(n.text)) + 3
	}
}

// blinkPeriod is the number of ticks per half-cycle of the invincibility blink.
const blinkPeriod = 8

func blinkDim(snap hatman.Snapshot) bool {
	return snap.Player.Invincible && (snap.Tick/blinkPeriod)%2 == 1
}

type notice struct {
	text  string
	color core.Color
}

func (r *Renderer) drawSprite(dst *core.Screen, s hatman.Sprite) {
	fill := s.Fill
	if fill == 0 {
		fill = s.Glyph
	}

	switch s.Shape {
	case hatman.ShapeCircle:
		c0, r0 := r.WorldToCell(s.Pos.Sub(core.V(s.Radius, s.Radius)))
		c1, r1 := r.WorldToCell(s.Pos.Add(core.V(s.Radius, s.Radius)))
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				if core.Distance(r.cellCentre(col, row), s.Pos) <= s.Radius {
					r.plot(dst, col, row, fill, s.Color)
				}
			}
		}
	case hatman.ShapeBox:
		half := s.Size.Scale(0.5)
		c0, r0 := r.WorldToCell(s.Pos.Sub(half))
		c1, r1 := r.WorldToCell(s.Pos.Add(half))
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				r.plot(dst, col, row, fill, s.Color)
			}
		}
	}

	col, row := r.WorldToCell(s.Pos)
	r.plot(dst, col, row, s.Glyph, s.Color)
}

func (r *Renderer) cellCentre(col, row int) core.Vec {
	return core.V(
		(float64(col-r.field.X)+0.5)*hatman.WorldW/float64(r.field.W),
		(float64(row-r.field.Y)+0.5)*hatman.WorldH/float64(r.field.H),
	)
}

// plot draws only inside the play area so entities never overwrite the border or HUD.
func (r *Renderer) plot(dst *core.Screen, col, row int, ch rune, c core.Color) {
	if !r.field.Contains(col, row) {
		return
	}
	dst.SetColor(col, row, ch, c)
}

func (r *Renderer) overlay(dst *core.Screen, lines []string, colors []core.Color) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	box := core.NewRect((r.opts.Cols-w-4)/2, r.opts.Rows/2-len(lines)/2-1, w+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, colors[0])
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l, colors[i])
	}
}

func (r *Renderer) drawLevelComplete(dst *core.Screen, snap hatman.Snapshot) {
	title := fmt.Sprintf("LEVEL %d COMPLETE!", snap.Level)
	prompt := "Press ENTER for the next level"
	if snap.Finished {
		title = "YOU BEAT THE GAME!"
		prompt = "Press ENTER to return to the menu"
	}
	if snap.LevelCompleteTicks <= hatman.LevelUpDelay {
		prompt = ""
	}

	healthColor := core.ColorBrightGreen
	if snap.Player.LowHealth {
		healthColor = core.ColorBrightRed
	}
	r.overlay(dst,
		[]string{
			title,
			"",
			fmt.Sprintf("Health left: %d/%d", snap.Player.Health, snap.Player.MaxHealth),
			fmt.Sprintf("Total score: %d", snap.Score),
			"",
			prompt,
		},
		[]core.Color{core.ColorBrightYellow, core.ColorDefault, healthColor, core.ColorWhite, core.ColorDefault, core.ColorWhite},
	)
}

func (r *Renderer) drawGameOver(dst *core.Screen, snap hatman.Snapshot) {
	r.overlay(dst,
		[]string{
			"GAME OVER",
			"",
			fmt.Sprintf("Your score: %d", snap.Score),
			fmt.Sprintf("Level reached: %d", snap.Level),
			"",
			"Press ESC to return to the menu",
		},
		[]core.Color{core.ColorBrightRed, core.ColorDefault, core.ColorWhite, core.ColorWhite, core.ColorDefault, core.ColorWhite},
	)
}
