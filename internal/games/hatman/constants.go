// Package hatman implements the Crazy Hatman arcade shooter simulation.
//
// The package is pure: it owns every entity, advances them one tick per Step
// and exposes an immutable Snapshot for presentation. It never draws, reads
// devices or touches the clock; randomness comes from an injected RNG.
package hatman

// Play area in world units.
const (
	WorldW = 800.0
	WorldH = 600.0
)

// Campaign rules.
const (
	TickRate      = 60
	DefeatQuota   = 10 // Enemies to defeat per level
	MaxLevel      = 3
	LevelUpDelay  = 60 // Level-complete ticks before Confirm is accepted
	LowHealthMark = 3  // Health at or below which the HUD warns
)

// Player tuning.
const (
	PlayerStartX         = WorldW / 2
	PlayerStartY         = WorldH - 50
	PlayerRadius         = 20.0
	PlayerSpeed          = 5.0
	PlayerMaxHealth      = 10
	PlayerLives          = 1
	HitInvincibleTicks   = 90
	LevelInvincibleTicks = 120
	BoostMultiplier      = 2
	BoostTicks           = 600 // 10 seconds
)

// Projectile tuning.
const (
	BulletRadius    = 8.0
	BulletBaseSpeed = 7.0 // Plus the level number
	MinAimDistance  = 0.1

	BladeCount     = 5
	BladeSpread    = 72.0 // Degrees between blades of a volley
	BladeSpeed     = 8.0
	BladeRadius    = 5.0
	BladeRange     = 200.0
	BladeDamage    = 2
	BladeOffscreen = 20.0
)

// Enemy and spawner tuning.
const (
	ContactCooldownTicks = 30
	EliteChance          = 0.03

	PowerUpWidth         = 30.0
	PowerUpHeight        = 25.0
	PowerUpTopOffset     = 15.0 // Pickup box starts this far above the centre line
	PowerUpFallSpeed     = 2.0
	PowerUpLifetimeTicks = 300
	AmbientPowerUpTicks  = 450
	AmbientPowerUpChance = 0.15
	AmbientPowerUpMargin = 50
	BulletDropChance     = 0.10
	BladeDropChance      = 0.15
)
