package hatman

import "github.com/vovakirdan/crazy-hatman/internal/core"

// Spawner decides when enemies and ambient hats appear.
type Spawner struct {
	enemyTimer   int
	powerUpTimer int
}

// Reset zeroes both timers.
func (s *Spawner) Reset() {
	s.enemyTimer = 0
	s.powerUpTimer = 0
}

// Tick advances the timers for one playing tick and returns whatever spawned.
// Either result may be nil.
func (s *Spawner) Tick(level int, rng RNG) (*Enemy, *PowerUp) {
	var enemy *Enemy
	s.enemyTimer++
	if s.enemyTimer >= SpawnInterval(level) {
		enemy = SpawnEnemy(level, rng)
		s.enemyTimer = 0
	}

	var hat *PowerUp
	s.powerUpTimer++
	if s.powerUpTimer >= AmbientPowerUpTicks {
		if rng.Float64() < AmbientPowerUpChance {
			x := randInt(rng, AmbientPowerUpMargin, int(WorldW)-AmbientPowerUpMargin)
			hat = NewPowerUp(rollPowerUpKind(rng), core.V(float64(x), -AmbientPowerUpMargin))
		}
		s.powerUpTimer = 0
	}

	return enemy, hat
}

// SpawnEnemy rolls an elite first; otherwise the tier comes from the level's
// distribution. Single-tier levels skip the tier roll.
func SpawnEnemy(level int, rng RNG) *Enemy {
	if rng.Float64() < EliteChance {
		return NewEnemy(TierBrute, true, rng)
	}

	rules := LevelRules(level)
	tier := TierScout
	if len(rules.Tiers) > 1 {
		tier = rules.PickTier(rng.Float64())
	} else if len(rules.Tiers) == 1 {
		tier = rules.Tiers[0].Tier
	}
	return NewEnemy(tier, false, rng)
}

// RollDrop returns a hat at pos with the given probability, or nil.
func RollDrop(pos core.Vec, chance float64, rng RNG) *PowerUp {
	if rng.Float64() >= chance {
		return nil
	}
	return NewPowerUp(rollPowerUpKind(rng), pos)
}
