package hatman

import "github.com/vovakirdan/crazy-hatman/internal/core"

// PowerUpKind represents the hat types that can be collected.
type PowerUpKind int

const (
	PowerUpDamageBoost PowerUpKind = iota // Double bullet damage for a while
	PowerUpBladeBurst                     // Next shot or kill throws a blade volley
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpDamageBoost:
		return "damage-boost"
	case PowerUpBladeBurst:
		return "blade-burst"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpDamageBoost:
		return '♛'
	case PowerUpBladeBurst:
		return '♠'
	default:
		return '?'
	}
}

// PowerUp is a falling hat.
type PowerUp struct {
	Kind     PowerUpKind
	Pos      core.Vec // Centre of the brim
	Lifetime int      // Ticks left before it vanishes

	removed bool
}

// NewPowerUp creates a hat of the given kind at pos.
func NewPowerUp(kind PowerUpKind, pos core.Vec) *PowerUp {
	return &PowerUp{
		Kind:     kind,
		Pos:      pos,
		Lifetime: PowerUpLifetimeTicks,
	}
}

// Update makes the hat fall and age. Returns true once it has expired or
// dropped below the play area.
func (p *PowerUp) Update() bool {
	p.Pos.Y += PowerUpFallSpeed
	p.Lifetime--
	return p.Lifetime <= 0 || p.Pos.Y > WorldH
}

// Bounds is the pickup box of the hat.
func (p *PowerUp) Bounds() core.RectF {
	return core.RectF{
		X: p.Pos.X - PowerUpWidth/2,
		Y: p.Pos.Y - PowerUpTopOffset,
		W: PowerUpWidth,
		H: PowerUpHeight,
	}
}

// CollidesWithPlayer reports whether the player box touches the hat.
func (p *PowerUp) CollidesWithPlayer(pl *Player) bool {
	return pl.Bounds().Intersects(p.Bounds())
}

// rollPowerUpKind picks a kind 50/50.
func rollPowerUpKind(rng RNG) PowerUpKind {
	if rng.Float64() < 0.5 {
		return PowerUpDamageBoost
	}
	return PowerUpBladeBurst
}
