package hatman

import "github.com/vovakirdan/crazy-hatman/internal/core"

// Player is the hatman avatar.
type Player struct {
	Pos    core.Vec
	Radius float64
	Speed  float64

	Health int // 0..PlayerMaxHealth
	Lives  int // 0 or 1

	InvincibleTicks int
	DamageMult      int // 1, or BoostMultiplier while boosted
	BoostTicks      int
	BladesReady     bool
}

// NewPlayer returns a player at the start position with full health.
func NewPlayer() *Player {
	return &Player{
		Pos:        core.V(PlayerStartX, PlayerStartY),
		Radius:     PlayerRadius,
		Speed:      PlayerSpeed,
		Health:     PlayerMaxHealth,
		Lives:      PlayerLives,
		DamageMult: 1,
	}
}

// Invincible reports whether damage is currently ignored.
func (p *Player) Invincible() bool {
	return p.InvincibleTicks > 0
}

// IsAlive is true while the player has lives and health left.
func (p *Player) IsAlive() bool {
	return p.Lives > 0 && p.Health > 0
}

// Move translates the player by one tick of the held directions, keeping the
// whole circle inside the play area.
func (p *Player) Move(intent core.MoveIntent) {
	if !intent.Any() {
		return
	}
	if intent.Left {
		p.Pos.X -= p.Speed
	}
	if intent.Right {
		p.Pos.X += p.Speed
	}
	if intent.Up {
		p.Pos.Y -= p.Speed
	}
	if intent.Down {
		p.Pos.Y += p.Speed
	}
	p.Pos.X = core.ClampF(p.Pos.X, p.Radius, WorldW-p.Radius)
	p.Pos.Y = core.ClampF(p.Pos.Y, p.Radius, WorldH-p.Radius)
}

// TakeDamage applies contact damage and reports whether the player died.
// It is a no-op while invincible or already dead.
func (p *Player) TakeDamage(amount int) bool {
	if p.Invincible() || !p.IsAlive() {
		return false
	}

	p.Health -= amount
	p.InvincibleTicks = HitInvincibleTicks

	if p.Health <= 0 {
		p.Lives = max(p.Lives-1, 0)
		p.Health = 0
		p.clearEffects()
		return true
	}
	return false
}

// Tick decays the invincibility and damage-boost timers.
func (p *Player) Tick() {
	if p.InvincibleTicks > 0 {
		p.InvincibleTicks--
	}
	if p.BoostTicks > 0 {
		p.BoostTicks--
		if p.BoostTicks == 0 {
			p.DamageMult = 1
		}
	}
}

// ApplyDamageBoost doubles bullet damage for BoostTicks and drops a pending volley.
func (p *Player) ApplyDamageBoost() {
	p.DamageMult = BoostMultiplier
	p.BoostTicks = BoostTicks
	p.BladesReady = false
}

// ApplyBladeBurst arms a blade volley and ends any damage boost.
func (p *Player) ApplyBladeBurst() {
	p.BladesReady = true
	p.DamageMult = 1
	p.BoostTicks = 0
}

// Apply dispatches a collected power-up to its effect.
func (p *Player) Apply(kind PowerUpKind) {
	switch kind {
	case PowerUpDamageBoost:
		p.ApplyDamageBoost()
	case PowerUpBladeBurst:
		p.ApplyBladeBurst()
	}
}

// SpawnBladeVolley returns BladeCount blades spread evenly around origin,
// starting at 0 degrees.
func (p *Player) SpawnBladeVolley(origin core.Vec) []*Blade {
	blades := make([]*Blade, 0, BladeCount)
	for i := 0; i < BladeCount; i++ {
		blades = append(blades, NewBlade(origin, core.Deg2Rad(float64(i)*BladeSpread)))
	}
	return blades
}

// Bounds is the pickup box around the player circle.
func (p *Player) Bounds() core.RectF {
	return core.RectF{
		X: p.Pos.X - p.Radius,
		Y: p.Pos.Y - p.Radius,
		W: p.Radius * 2,
		H: p.Radius * 2,
	}
}

func (p *Player) clearEffects() {
	p.DamageMult = 1
	p.BoostTicks = 0
	p.BladesReady = false
}
