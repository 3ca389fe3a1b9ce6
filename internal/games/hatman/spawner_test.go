package hatman

import (
	"math"
	"testing"

	"github.com/vovakirdan/crazy-hatman/internal/core"
)

func TestSpawnInterval(t *testing.T) {
	tests := []struct {
		level, want int
	}{
		{1, 60},
		{2, 50},
		{3, 40},
		{4, 30},
		{9, 30}, // floored
	}
	for _, tc := range tests {
		if got := SpawnInterval(tc.level); got != tc.want {
			t.Errorf("SpawnInterval(%d) = %d, expected %d", tc.level, got, tc.want)
		}
	}
}

func TestSpawnerEnemyCadence(t *testing.T) {
	var s Spawner
	rng := quietRNG()

	for tick := 1; tick < 40; tick++ {
		if e, _ := s.Tick(3, rng); e != nil {
			t.Fatalf("enemy spawned early at tick %d", tick)
		}
	}
	if e, _ := s.Tick(3, rng); e == nil {
		t.Fatal("level 3 should spawn an enemy on tick 40")
	}

	for tick := 1; tick < 40; tick++ {
		if e, _ := s.Tick(3, rng); e != nil {
			t.Fatalf("timer did not reset: enemy at tick %d of the second cycle", tick)
		}
	}
	if e, _ := s.Tick(3, rng); e == nil {
		t.Error("second enemy expected 40 ticks after the first")
	}
}

func TestSpawnerAmbientRollFailsStillResets(t *testing.T) {
	s := Spawner{powerUpTimer: AmbientPowerUpTicks - 1}

	_, hat := s.Tick(1, quietRNG())
	if hat != nil {
		t.Fatal("failed roll should not spawn a hat")
	}
	if s.powerUpTimer != 0 {
		t.Errorf("powerUpTimer = %d, expected reset after a failed roll", s.powerUpTimer)
	}
}

func TestSpawnerAmbientHat(t *testing.T) {
	s := Spawner{powerUpTimer: AmbientPowerUpTicks - 1}
	rng := &scriptedRNG{floats: []float64{0.1, 0.7}, ints: []int{0}, def: 0.99}

	_, hat := s.Tick(1, rng)
	if hat == nil {
		t.Fatal("roll below 15% should spawn a hat")
	}
	if hat.Pos != core.V(50, -50) {
		t.Errorf("hat Pos = %v, expected (50, -50)", hat.Pos)
	}
	if hat.Kind != PowerUpBladeBurst {
		t.Errorf("hat Kind = %v, expected blade-burst", hat.Kind)
	}
	if s.powerUpTimer != 0 {
		t.Errorf("powerUpTimer = %d, expected 0", s.powerUpTimer)
	}
}

func TestSpawnEnemyTierDistribution(t *testing.T) {
	tests := []struct {
		name  string
		level int
		roll  float64
		want  Tier
	}{
		{"level 1 always scout", 1, 0.99, TierScout},
		{"level 2 low roll", 2, 0.69, TierScout},
		{"level 2 high roll", 2, 0.70, TierSoldier},
		{"level 3 low roll", 3, 0.49, TierScout},
		{"level 3 mid roll", 3, 0.79, TierSoldier},
		{"level 3 high roll", 3, 0.80, TierBrute},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// First float is the elite roll
			rng := &scriptedRNG{floats: []float64{0.5, tc.roll}, def: 0.5}
			e := SpawnEnemy(tc.level, rng)
			if e.Elite {
				t.Fatal("unexpected elite")
			}
			if e.Tier != tc.want {
				t.Errorf("Tier = %v, expected %v", e.Tier, tc.want)
			}
		})
	}
}

func TestSpawnEnemyEliteShortCircuits(t *testing.T) {
	for level := 1; level <= MaxLevel; level++ {
		rng := &scriptedRNG{floats: []float64{0.02}, def: 0.5}
		e := SpawnEnemy(level, rng)
		if !e.Elite {
			t.Fatalf("level %d: roll below 3%% should spawn an elite", level)
		}
		if e.Score != 50 || e.Radius != 30 {
			t.Errorf("level %d: elite stats score=%d radius=%v", level, e.Score, e.Radius)
		}
	}
}

func TestRollDrop(t *testing.T) {
	pos := core.V(120, 240)

	if hat := RollDrop(pos, BulletDropChance, &scriptedRNG{floats: []float64{0.10}}); hat != nil {
		t.Error("roll equal to the chance should not drop")
	}

	hat := RollDrop(pos, BulletDropChance, &scriptedRNG{floats: []float64{0.05, 0.2}})
	if hat == nil {
		t.Fatal("roll below the chance should drop")
	}
	if hat.Pos != pos || hat.Kind != PowerUpDamageBoost {
		t.Errorf("drop = %v at %v, expected damage-boost at %v", hat.Kind, hat.Pos, pos)
	}
}

func TestLevelsTable(t *testing.T) {
	levels := Levels()
	if len(levels) != MaxLevel {
		t.Fatalf("len(Levels()) = %d, expected %d", len(levels), MaxLevel)
	}

	for _, l := range levels {
		total := 0.0
		for _, tier := range []Tier{TierScout, TierSoldier, TierBrute} {
			total += l.Chance(tier)
		}
		if math.Abs(total-1) > 1e-9 {
			t.Errorf("level %d tier chances sum to %f", l.Number, total)
		}
	}

	if c := levels[2].Chance(TierBrute); math.Abs(c-0.2) > 1e-9 {
		t.Errorf("level 3 brute chance = %f, expected 0.2", c)
	}
	if c := levels[0].Chance(TierSoldier); c != 0 {
		t.Errorf("level 1 soldier chance = %f, expected 0", c)
	}
}

func TestLevelRulesClamps(t *testing.T) {
	if LevelRules(0).Number != 1 {
		t.Error("LevelRules(0) should clamp to level 1")
	}
	if LevelRules(7).Number != MaxLevel {
		t.Error("LevelRules(7) should clamp to the last level")
	}
}
