package hatman

import (
	"math"

	"github.com/vovakirdan/crazy-hatman/internal/core"
)

// Shape tells the presentation layer how to lay a sprite out.
type Shape int

const (
	ShapeCircle Shape = iota // Radius around Pos
	ShapeBox                 // Size centred on Pos
)

// Sprite is the draw description of one entity.
type Sprite struct {
	Shape  Shape
	Pos    core.Vec
	Radius float64
	Size   core.Vec
	Glyph  rune
	Fill   rune // Body rune for cells around the centre; 0 means Glyph
	Color  core.Color
}

// Drawable is implemented by every entity view in a Snapshot.
type Drawable interface {
	Sprite() Sprite
}

// PlayerView is the read-only player state for one frame.
type PlayerView struct {
	Pos             core.Vec
	Radius          float64
	Health          int
	MaxHealth       int
	Lives           int
	Invincible      bool
	InvincibleTicks int
	DamageMult      int
	BoostTicks      int
	BladesReady     bool
	LowHealth       bool
}

// BoostSeconds is the remaining damage boost in whole seconds.
func (p PlayerView) BoostSeconds() int {
	return p.BoostTicks / TickRate
}

// Sprite draws the body blue, red while invincible. The hat glyph marks the active effect.
func (p PlayerView) Sprite() Sprite {
	color := core.ColorBrightBlue
	if p.Invincible {
		color = core.ColorBrightRed
	}
	glyph := '@'
	switch {
	case p.BladesReady:
		glyph = '♠'
	case p.DamageMult > 1:
		glyph = '♛'
	}
	return Sprite{Shape: ShapeCircle, Pos: p.Pos, Radius: p.Radius, Glyph: glyph, Fill: '●', Color: color}
}

// EnemyView is the read-only state of one enemy.
type EnemyView struct {
	Pos    core.Vec
	Radius float64
	Tier   Tier
	Elite  bool
	Health int
}

// Sprite colours enemies by tier, elites gold.
func (e EnemyView) Sprite() Sprite {
	s := Sprite{Shape: ShapeCircle, Pos: e.Pos, Radius: e.Radius, Fill: '▒'}
	switch {
	case e.Elite:
		s.Glyph, s.Color = '♔', core.ColorBrightYellow
	case e.Tier == TierScout:
		s.Glyph, s.Color = 'o', core.ColorRed
	case e.Tier == TierSoldier:
		s.Glyph, s.Color = 'O', core.ColorOrange
	default:
		s.Glyph, s.Color = '0', core.ColorMagenta
	}
	return s
}

// BulletView is the read-only state of one bullet.
type BulletView struct {
	Pos    core.Vec
	Radius float64
	Level  int
	Damage int
}

// Sprite colours bullets by the level they were fired at.
func (b BulletView) Sprite() Sprite {
	color := core.ColorBrightMagenta
	switch b.Level {
	case 1:
		color = core.ColorBrightGreen
	case 2:
		color = core.ColorBrightYellow
	}
	return Sprite{Shape: ShapeCircle, Pos: b.Pos, Radius: b.Radius, Glyph: '•', Color: color}
}

// BladeView is the read-only state of one blade.
type BladeView struct {
	Pos    core.Vec
	Radius float64
	Angle  float64
}

var bladeArrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Sprite points the blade glyph along its heading.
func (b BladeView) Sprite() Sprite {
	octant := int(math.Round(b.Angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return Sprite{Shape: ShapeCircle, Pos: b.Pos, Radius: b.Radius, Glyph: bladeArrows[octant], Color: core.ColorBrightWhite}
}

// PowerUpView is the read-only state of one falling hat.
type PowerUpView struct {
	Pos      core.Vec
	Size     core.Vec
	Kind     PowerUpKind
	Lifetime int
}

// Sprite draws damage hats gold and blade hats red.
func (p PowerUpView) Sprite() Sprite {
	color := core.ColorYellow
	if p.Kind == PowerUpBladeBurst {
		color = core.ColorBrightRed
	}
	return Sprite{Shape: ShapeBox, Pos: p.Pos, Size: p.Size, Glyph: p.Kind.Glyph(), Fill: '▀', Color: color}
}

// Snapshot is an immutable copy of everything the presentation layer needs for
// one frame. Entity lists keep simulation order.
type Snapshot struct {
	Tick               uint64
	State              State
	Level              int
	MaxLevel           int
	Score              int
	Defeated           int
	Quota              int
	LevelCompleteTicks int
	CanContinue        bool
	Finished           bool // Final level cleared

	Player   PlayerView
	Enemies  []EnemyView
	Bullets  []BulletView
	Blades   []BladeView
	PowerUps []PowerUpView
}

// Snapshot returns the current frame state.
func (g *Game) Snapshot() Snapshot {
	p := g.player
	snap := Snapshot{
		Tick:               g.tick,
		State:              g.state,
		Level:              g.level,
		MaxLevel:           MaxLevel,
		Score:              g.score,
		Defeated:           g.defeated,
		Quota:              DefeatQuota,
		LevelCompleteTicks: g.levelCompleteTicks,
		CanContinue:        g.CanContinue(),
		Finished:           g.finished,
		Player: PlayerView{
			Pos:             p.Pos,
			Radius:          p.Radius,
			Health:          p.Health,
			MaxHealth:       PlayerMaxHealth,
			Lives:           p.Lives,
			Invincible:      p.Invincible(),
			InvincibleTicks: p.InvincibleTicks,
			DamageMult:      p.DamageMult,
			BoostTicks:      p.BoostTicks,
			BladesReady:     p.BladesReady,
			LowHealth:       p.Health <= LowHealthMark,
		},
		Enemies:  make([]EnemyView, 0, len(g.enemies)),
		Bullets:  make([]BulletView, 0, len(g.bullets)),
		Blades:   make([]BladeView, 0, len(g.blades)),
		PowerUps: make([]PowerUpView, 0, len(g.powerUps)),
	}

	for _, e := range g.enemies {
		snap.Enemies = append(snap.Enemies, EnemyView{Pos: e.Pos, Radius: e.Radius, Tier: e.Tier, Elite: e.Elite, Health: e.Health})
	}
	for _, b := range g.bullets {
		snap.Bullets = append(snap.Bullets, BulletView{Pos: b.Pos, Radius: b.Radius, Level: b.Level, Damage: b.Damage})
	}
	for _, b := range g.blades {
		snap.Blades = append(snap.Blades, BladeView{Pos: b.Pos, Radius: b.Radius, Angle: b.Angle})
	}
	for _, h := range g.powerUps {
		snap.PowerUps = append(snap.PowerUps, PowerUpView{Pos: h.Pos, Size: core.V(PowerUpWidth, PowerUpHeight), Kind: h.Kind, Lifetime: h.Lifetime})
	}
	return snap
}

// Drawables returns every entity in paint order: hats, enemies, bullets,
// blades, then the player on top.
func (snap *Snapshot) Drawables() []Drawable {
	out := make([]Drawable, 0, len(snap.PowerUps)+len(snap.Enemies)+len(snap.Bullets)+len(snap.Blades)+1)
	for _, v := range snap.PowerUps {
		out = append(out, v)
	}
	for _, v := range snap.Enemies {
		out = append(out, v)
	}
	for _, v := range snap.Bullets {
		out = append(out, v)
	}
	for _, v := range snap.Blades {
		out = append(out, v)
	}
	return append(out, snap.Player)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Defeated) //#nosec G115 -- hash computation
	h = h*31 + hashVec(snap.Player.Pos)
	h = h*31 + uint64(snap.Player.Health)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Player.InvincibleTicks) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Player.BoostTicks)      //#nosec G115 -- hash computation

	for _, e := range snap.Enemies {
		h = h*31 + hashVec(e.Pos)
		h = h*31 + uint64(e.Health) //#nosec G115 -- hash computation
	}
	for _, b := range snap.Bullets {
		h = h*31 + hashVec(b.Pos)
	}
	for _, b := range snap.Blades {
		h = h*31 + hashVec(b.Pos)
	}
	for _, p := range snap.PowerUps {
		h = h*31 + hashVec(p.Pos)
		h = h*31 + uint64(p.Kind) //#nosec G115 -- hash computation
	}
	return h
}

func hashVec(v core.Vec) uint64 {
	return math.Float64bits(v.X)*31 + math.Float64bits(v.Y)
}
