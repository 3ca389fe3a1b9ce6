package hatman

import (
	"math"
	"testing"

	"github.com/vovakirdan/crazy-hatman/internal/core"
)

func TestNewEnemyStats(t *testing.T) {
	tests := []struct {
		name   string
		tier   Tier
		elite  bool
		radius float64
		speed  float64
		health int
		damage int
		score  int
	}{
		{"scout", TierScout, false, 15, 2, 3, 1, 10},
		{"soldier", TierSoldier, false, 20, 2.5, 4, 1, 20},
		{"brute", TierBrute, false, 25, 3, 5, 2, 30},
		{"elite", TierScout, true, 30, 1.5, 5, 2, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEnemy(tc.tier, tc.elite, &scriptedRNG{def: 0.5})
			if e.Radius != tc.radius || e.Health != tc.health || e.Damage != tc.damage || e.Score != tc.score {
				t.Errorf("stats = r%v hp%d dmg%d score%d", e.Radius, e.Health, e.Damage, e.Score)
			}
			if math.Abs(e.Vel.Len()-tc.speed) > 1e-9 {
				t.Errorf("speed = %f, expected %f", e.Vel.Len(), tc.speed)
			}
			if e.Elite != tc.elite {
				t.Errorf("Elite = %v, expected %v", e.Elite, tc.elite)
			}
		})
	}
}

func TestNewEnemySpawnPosition(t *testing.T) {
	// ints: x at the low end of the range; floats: dx=0, dy=1
	e := NewEnemy(TierScout, false, &scriptedRNG{ints: []int{0}, floats: []float64{0.5, 0.5}})

	if e.Pos != core.V(15, -15) {
		t.Errorf("Pos = %v, expected (15, -15)", e.Pos)
	}
	if e.Vel != core.V(0, 2) {
		t.Errorf("Vel = %v, expected straight down at speed 2", e.Vel)
	}
}

func TestEnemyHeadsDownward(t *testing.T) {
	rng := NewSimpleRNG(99)
	for i := 0; i < 200; i++ {
		e := NewEnemy(TierSoldier, false, rng)
		if e.Vel.Y <= 0 {
			t.Fatalf("enemy %d heads upward: %v", i, e.Vel)
		}
		if e.Pos.X < e.Radius || e.Pos.X > WorldW-e.Radius {
			t.Fatalf("enemy %d spawned outside the margin: x=%f", i, e.Pos.X)
		}
	}
}

func TestEnemyContactCooldown(t *testing.T) {
	p := NewPlayer()
	e := &Enemy{Pos: p.Pos, Radius: 15, Health: 3, Damage: 1}

	if !e.CollidesWithPlayer(p) {
		t.Fatal("first overlapping contact should hit")
	}
	for i := 1; i < ContactCooldownTicks; i++ {
		e.Update()
		if e.CollidesWithPlayer(p) {
			t.Fatalf("contact %d ticks after a hit should be throttled", i)
		}
	}
	e.Update()
	if !e.CollidesWithPlayer(p) {
		t.Error("contact should hit again once the cooldown expires")
	}
}

func TestEnemyIgnoresInvinciblePlayer(t *testing.T) {
	p := NewPlayer()
	p.InvincibleTicks = 10
	e := &Enemy{Pos: p.Pos, Radius: 15}

	if e.CollidesWithPlayer(p) {
		t.Error("invincible player should not be hit")
	}
	if e.Cooldown != 0 {
		t.Errorf("cooldown armed against an invincible player: %d", e.Cooldown)
	}
}

func TestEnemyNoContactWhenApart(t *testing.T) {
	p := NewPlayer()
	e := &Enemy{Pos: p.Pos.Add(core.V(35, 0)), Radius: 15}

	if e.CollidesWithPlayer(p) {
		t.Error("touching circles should not count as contact")
	}
}

func TestEnemyTakeDamageAndOffScreen(t *testing.T) {
	e := &Enemy{Pos: core.V(100, 600), Radius: 20, Health: 4, Vel: core.V(0, 10)}

	if e.TakeDamage(3) {
		t.Error("4 hp enemy should survive 3 damage")
	}
	if !e.TakeDamage(1) {
		t.Error("enemy should be defeated at 0 hp")
	}

	if e.OffScreen() {
		t.Error("enemy at the bottom edge is still visible")
	}
	e.Update()
	e.Update()
	e.Update()
	if !e.OffScreen() {
		t.Errorf("enemy at y=%f should be off screen", e.Pos.Y)
	}
}

func TestNewBullet(t *testing.T) {
	b := NewBullet(core.V(400, 550), core.V(400, 0), 3, 1)

	if math.Abs(b.Vel.X) > 1e-9 || math.Abs(b.Vel.Y+10) > 1e-9 {
		t.Errorf("Vel = %v, expected (0, -10) at level 3", b.Vel)
	}
	if b.Damage != 3 {
		t.Errorf("Damage = %d, expected 3", b.Damage)
	}
}

func TestNewBulletAimAtSelf(t *testing.T) {
	b := NewBullet(core.V(100, 100), core.V(100, 100), 1, 1)

	if math.IsNaN(b.Vel.X) || math.IsNaN(b.Vel.Y) {
		t.Fatalf("zero-length aim produced NaN velocity: %v", b.Vel)
	}
	if b.Vel != (core.Vec{}) {
		t.Errorf("Vel = %v, expected zero", b.Vel)
	}
}

func TestBulletOffScreen(t *testing.T) {
	tests := []struct {
		pos  core.Vec
		want bool
	}{
		{core.V(400, 300), false},
		{core.V(-7, 300), false},
		{core.V(-9, 300), true},
		{core.V(400, 609), true},
		{core.V(809, 300), true},
	}
	for _, tc := range tests {
		b := &Bullet{Pos: tc.pos, Radius: BulletRadius}
		if got := b.OffScreen(); got != tc.want {
			t.Errorf("OffScreen at %v = %v, expected %v", tc.pos, got, tc.want)
		}
	}
}

func TestBladeRangeBudget(t *testing.T) {
	b := NewBlade(core.V(400, 300), 0)

	for i := 0; i < 24; i++ {
		b.Update()
		if b.Spent() {
			t.Fatalf("blade spent after %d ticks, expected 25", i+1)
		}
	}
	b.Update()
	if !b.Spent() {
		t.Errorf("blade should be spent after traveling %f", b.Traveled)
	}
}

func TestBladeLeavesPlayArea(t *testing.T) {
	b := NewBlade(core.V(815, 300), 0)
	b.Update()
	if !b.Spent() {
		t.Error("blade past the right margin should be spent")
	}
}

func TestPowerUpFallAndExpire(t *testing.T) {
	p := NewPowerUp(PowerUpDamageBoost, core.V(100, 0))

	for i := 0; i < PowerUpLifetimeTicks-1; i++ {
		if p.Update() {
			t.Fatalf("hat expired early at tick %d", i+1)
		}
	}
	if !p.Update() {
		t.Error("hat should expire after its lifetime")
	}
	if p.Pos.Y != 600 {
		t.Errorf("Y = %f, expected 600 after 300 ticks at speed 2", p.Pos.Y)
	}
}

func TestPowerUpFallsOffBottom(t *testing.T) {
	p := NewPowerUp(PowerUpBladeBurst, core.V(100, 599))
	if !p.Update() {
		t.Error("hat below the play area should be removed")
	}
}

func TestPowerUpPickupBox(t *testing.T) {
	pl := NewPlayer() // box (380, 530)-(420, 570)

	tests := []struct {
		name string
		pos  core.Vec
		want bool
	}{
		{"on the player", core.V(400, 550), true},
		{"brim just above the head", core.V(400, 521), true},
		{"entirely above", core.V(400, 505), false},
		{"touching the left side", core.V(365, 550), false},
		{"overlapping the left side", core.V(366, 550), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hat := NewPowerUp(PowerUpDamageBoost, tc.pos)
			if got := hat.CollidesWithPlayer(pl); got != tc.want {
				t.Errorf("CollidesWithPlayer = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestPowerUpKindString(t *testing.T) {
	if PowerUpDamageBoost.String() != "damage-boost" || PowerUpBladeBurst.String() != "blade-burst" {
		t.Error("unexpected power-up names")
	}
	if PowerUpKind(9).Glyph() != '?' {
		t.Error("unknown kind should render as '?'")
	}
}
