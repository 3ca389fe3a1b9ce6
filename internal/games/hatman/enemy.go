package hatman

import "github.com/vovakirdan/crazy-hatman/internal/core"

// Tier is the base strength class of an enemy.
type Tier int

const (
	TierScout   Tier = iota + 1 // Small and slow
	TierSoldier                 // Medium
	TierBrute                   // Large, hits hard
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierScout:
		return "scout"
	case TierSoldier:
		return "soldier"
	case TierBrute:
		return "brute"
	default:
		return "?"
	}
}

type enemyStats struct {
	radius float64
	speed  float64
	health int
	damage int
	score  int
}

var tierStats = map[Tier]enemyStats{
	TierScout:   {radius: 15, speed: 2, health: 3, damage: 1, score: 10},
	TierSoldier: {radius: 20, speed: 2.5, health: 4, damage: 1, score: 20},
	TierBrute:   {radius: 25, speed: 3, health: 5, damage: 2, score: 30},
}

var eliteStats = enemyStats{radius: 30, speed: 1.5, health: 5, damage: 2, score: 50}

// Enemy is a descending attacker.
type Enemy struct {
	Pos      core.Vec
	Vel      core.Vec
	Radius   float64
	Health   int
	Damage   int // Contact damage
	Score    int
	Tier     Tier
	Elite    bool
	Cooldown int // Ticks until contact can hurt again

	removed bool
}

// NewEnemy spawns an enemy just above the play area with a random downward heading.
// Elites always use the top tier.
func NewEnemy(tier Tier, elite bool, rng RNG) *Enemy {
	stats, ok := tierStats[tier]
	if elite {
		stats = eliteStats
		tier = TierBrute
	} else if !ok {
		tier = TierScout
		stats = tierStats[TierScout]
	}

	r := int(stats.radius)
	x := float64(randInt(rng, r, int(WorldW)-r))
	dx := uniform(rng, -1, 1)
	dy := uniform(rng, 0.5, 1.5)

	return &Enemy{
		Pos:    core.V(x, -stats.radius),
		Vel:    core.V(dx, dy).Normalize().Scale(stats.speed),
		Radius: stats.radius,
		Health: stats.health,
		Damage: stats.damage,
		Score:  stats.score,
		Tier:   tier,
		Elite:  elite,
	}
}

// Update moves the enemy and cools down its contact attack.
func (e *Enemy) Update() {
	e.Pos = e.Pos.Add(e.Vel)
	if e.Cooldown > 0 {
		e.Cooldown--
	}
}

// OffScreen reports whether the enemy fell out of the bottom.
func (e *Enemy) OffScreen() bool {
	return e.Pos.Y > WorldH+e.Radius
}

// TakeDamage subtracts health and reports whether the enemy is defeated.
func (e *Enemy) TakeDamage(amount int) bool {
	e.Health -= amount
	return e.Health <= 0
}

// CollidesWithPlayer reports a contact hit. A hit arms the cooldown, so
// sustained overlap hurts at most once per ContactCooldownTicks. Invincible
// players are ignored without arming it.
func (e *Enemy) CollidesWithPlayer(p *Player) bool {
	if p.Invincible() || e.Cooldown > 0 {
		return false
	}
	if !core.CirclesOverlap(e.Pos, e.Radius, p.Pos, p.Radius) {
		return false
	}
	e.Cooldown = ContactCooldownTicks
	return true
}

// HitBy reports whether a bullet overlaps the enemy.
func (e *Enemy) HitBy(b *Bullet) bool {
	return core.CirclesOverlap(e.Pos, e.Radius, b.Pos, b.Radius)
}
