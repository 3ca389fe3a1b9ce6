package hatman

import "github.com/vovakirdan/crazy-hatman/internal/core"

// Bullet is a shot fired towards the aim point.
type Bullet struct {
	Pos    core.Vec
	Vel    core.Vec
	Radius float64
	Damage int
	Level  int // Level it was fired at; selects the colour

	removed bool
}

// NewBullet aims a bullet from origin at target. Speed grows with level and
// damage is level times the player's multiplier.
func NewBullet(origin, target core.Vec, level, mult int) *Bullet {
	speed := BulletBaseSpeed + float64(level)
	dir := target.Sub(origin)
	dist := max(dir.Len(), MinAimDistance)

	return &Bullet{
		Pos:    origin,
		Vel:    dir.Scale(speed / dist),
		Radius: BulletRadius,
		Damage: level * mult,
		Level:  level,
	}
}

// Update advances the bullet by its velocity.
func (b *Bullet) Update() {
	b.Pos = b.Pos.Add(b.Vel)
}

// OffScreen reports whether the bullet has fully left the play area.
func (b *Bullet) OffScreen() bool {
	return b.Pos.X < -b.Radius || b.Pos.X > WorldW+b.Radius ||
		b.Pos.Y < -b.Radius || b.Pos.Y > WorldH+b.Radius
}

// Blade is a thrown knife from a volley.
type Blade struct {
	Pos      core.Vec
	Angle    float64 // Radians
	Speed    float64
	Radius   float64
	Traveled float64

	removed bool
}

// NewBlade creates a blade at origin heading along angle (radians).
func NewBlade(origin core.Vec, angle float64) *Blade {
	return &Blade{
		Pos:    origin,
		Angle:  angle,
		Speed:  BladeSpeed,
		Radius: BladeRadius,
	}
}

// Update advances the blade and spends its range budget.
func (b *Blade) Update() {
	b.Pos = b.Pos.Add(core.FromAngle(b.Angle).Scale(b.Speed))
	b.Traveled += b.Speed
}

// Spent reports whether the blade left the play area or ran out of range.
func (b *Blade) Spent() bool {
	return b.Pos.X < -BladeOffscreen || b.Pos.X > WorldW+BladeOffscreen ||
		b.Pos.Y < -BladeOffscreen || b.Pos.Y > WorldH+BladeOffscreen ||
		b.Traveled >= BladeRange
}

// Hits reports whether the blade overlaps the enemy.
func (b *Blade) Hits(e *Enemy) bool {
	return core.CirclesOverlap(b.Pos, b.Radius, e.Pos, e.Radius)
}
