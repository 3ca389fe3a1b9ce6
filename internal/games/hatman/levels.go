package hatman

// TierChance is one step of a cumulative tier distribution: a roll below
// Upto (and above the previous step) selects Tier.
type TierChance struct {
	Tier Tier
	Upto float64
}

// Level describes the spawning rules of one campaign level.
type Level struct {
	Number        int
	SpawnInterval int // Ticks between enemy spawns
	Tiers         []TierChance
}

var levelTiers = map[int][]TierChance{
	1: {{TierScout, 1}},
	2: {{TierScout, 0.7}, {TierSoldier, 1}},
	3: {{TierScout, 0.5}, {TierSoldier, 0.8}, {TierBrute, 1}},
}

// SpawnInterval returns the enemy spawn cadence for a level, floored at 30 ticks.
func SpawnInterval(level int) int {
	return max(70-level*10, 30)
}

// LevelRules returns the rules for level n, clamped to the campaign range.
func LevelRules(n int) Level {
	if n < 1 {
		n = 1
	}
	if n > MaxLevel {
		n = MaxLevel
	}
	return Level{
		Number:        n,
		SpawnInterval: SpawnInterval(n),
		Tiers:         levelTiers[n],
	}
}

// Levels returns every level of the campaign in order.
func Levels() []Level {
	levels := make([]Level, 0, MaxLevel)
	for n := 1; n <= MaxLevel; n++ {
		levels = append(levels, LevelRules(n))
	}
	return levels
}

// PickTier selects the tier for a roll in [0, 1).
func (l Level) PickTier(roll float64) Tier {
	for _, tc := range l.Tiers {
		if roll < tc.Upto {
			return tc.Tier
		}
	}
	if len(l.Tiers) == 0 {
		return TierScout
	}
	return l.Tiers[len(l.Tiers)-1].Tier
}

// Chance returns the probability of tier at this level (elites excluded).
func (l Level) Chance(t Tier) float64 {
	prev := 0.0
	for _, tc := range l.Tiers {
		if tc.Tier == t {
			return tc.Upto - prev
		}
		prev = tc.Upto
	}
	return 0
}
