package hatman

import (
	"slices"

	"github.com/vovakirdan/crazy-hatman/internal/core"
)

// Game owns every live entity and drives the state machine.
// It is not safe for concurrent use; the host calls Step once per frame.
type Game struct {
	rng     RNG
	spawner Spawner

	state    State
	level    int
	score    int
	defeated int // Enemies defeated on the current level
	tick     uint64

	levelCompleteTicks int
	finished           bool // Final level cleared
	quit               bool

	player   *Player
	enemies  []*Enemy
	bullets  []*Bullet
	blades   []*Blade
	powerUps []*PowerUp

	events []Event
}

// New creates a game in the menu, seeded from the runtime config.
func New(runtime core.RuntimeConfig) *Game {
	return NewWithRNG(NewSimpleRNG(runtime.Seed))
}

// NewWithRNG creates a game in the menu using the given randomness source.
func NewWithRNG(rng RNG) *Game {
	g := &Game{rng: rng}
	g.Reset()
	return g
}

// Reset returns to a fresh menu with no score. The RNG keeps its state.
func (g *Game) Reset() {
	g.state = StateMenu
	g.level = 1
	g.score = 0
	g.defeated = 0
	g.tick = 0
	g.levelCompleteTicks = 0
	g.finished = false
	g.quit = false
	g.player = NewPlayer()
	g.clearField()
}

// StartNewGame begins a run at level 1 from any state.
func (g *Game) StartNewGame() {
	g.state = StatePlaying
	g.level = 1
	g.score = 0
	g.defeated = 0
	g.levelCompleteTicks = 0
	g.finished = false
	g.tick = 0
	g.player = NewPlayer()
	g.clearField()
}

// CanContinue reports whether Continue from the menu would resume a run.
func (g *Game) CanContinue() bool {
	return g.score > 0 && g.player.IsAlive() && !g.finished
}

// State returns the current state machine phase.
func (g *Game) State() State {
	return g.state
}

// Score returns the cumulative score of the current or last run.
func (g *Game) Score() int {
	return g.score
}

// Level returns the current level (1..MaxLevel).
func (g *Game) Level() int {
	return g.level
}

// PlayerPos returns the player's centre.
func (g *Game) PlayerPos() core.Vec {
	return g.player.Pos
}

// Ticks returns the number of ticks stepped since the current run started.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// Step handles this tick's input and then advances the simulation one tick.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.events = g.events[:0]
	g.tick++

	if !g.quit {
		g.handleInput(in)
	}

	switch g.state {
	case StatePlaying:
		g.update(in)
	case StateLevelComplete:
		g.levelCompleteTicks++
	}

	return g.result()
}

func (g *Game) result() StepResult {
	var events []Event
	if len(g.events) > 0 {
		events = make([]Event, len(g.events))
		copy(events, g.events)
	}
	return StepResult{
		State:  g.state,
		Score:  g.score,
		Level:  g.level,
		Quit:   g.quit,
		Events: events,
	}
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// handleInput applies the edge-triggered commands valid in the current state.
// Commands not valid in a state are ignored.
func (g *Game) handleInput(in core.InputFrame) {
	switch g.state {
	case StateMenu:
		if in.Has(core.ActionSelect) {
			g.selectMenu(in.MenuItem)
		} else if in.Has(core.ActionCancel) {
			g.requestQuit()
		}

	case StatePlaying:
		if in.Has(core.ActionCancel) {
			g.state = StateMenu
			return
		}
		if in.Has(core.ActionFire) {
			g.fire(in.Aim)
		}

	case StateLevelComplete:
		if in.Has(core.ActionConfirm) && g.levelCompleteTicks > LevelUpDelay {
			g.startNextLevel()
		}

	case StateGameOver:
		if in.Has(core.ActionCancel) {
			g.state = StateMenu
		}
	}
}

func (g *Game) selectMenu(item core.MenuItem) {
	switch item {
	case core.MenuNewGame:
		g.StartNewGame()
	case core.MenuContinue:
		if g.CanContinue() {
			g.state = StatePlaying
		}
	case core.MenuQuit:
		g.requestQuit()
	}
}

func (g *Game) requestQuit() {
	g.quit = true
	g.emit(Event{Kind: EventQuit, Score: g.score, Level: g.level})
}

// fire throws a pending blade volley from the player, or shoots a bullet at aim.
func (g *Game) fire(aim core.Vec) {
	if g.player.BladesReady {
		g.player.BladesReady = false
		g.blades = append(g.blades, g.player.SpawnBladeVolley(g.player.Pos)...)
		return
	}
	g.bullets = append(g.bullets, NewBullet(g.player.Pos, aim, g.level, g.player.DamageMult))
}

func (g *Game) startNextLevel() {
	if g.level >= MaxLevel {
		g.state = StateMenu
		return
	}
	g.level++
	g.defeated = 0
	g.clearField()
	g.player.InvincibleTicks = LevelInvincibleTicks
	g.state = StatePlaying
}

func (g *Game) clearField() {
	g.enemies = nil
	g.bullets = nil
	g.blades = nil
	g.powerUps = nil
	g.spawner.Reset()
}

// update runs one playing tick in a fixed order: player, spawns, bullets,
// blades, enemies, hats, quota.
func (g *Game) update(in core.InputFrame) {
	g.player.Move(in.Move)
	g.player.Tick()
	if !g.player.IsAlive() {
		g.state = StateGameOver
		g.emit(Event{Kind: EventGameOver, Score: g.score, Level: g.level})
		return
	}

	enemy, hat := g.spawner.Tick(g.level, g.rng)
	if enemy != nil {
		g.enemies = append(g.enemies, enemy)
	}
	if hat != nil {
		g.powerUps = append(g.powerUps, hat)
	}

	g.updateBullets()
	g.updateBlades()
	g.updateEnemies()
	g.updatePowerUps()

	// A player killed this tick is handled as game over at the start of the next one.
	if g.defeated >= DefeatQuota && g.player.IsAlive() {
		g.state = StateLevelComplete
		g.levelCompleteTicks = 0
		g.emit(Event{Kind: EventLevelComplete, Score: g.score, Level: g.level})
		if g.level >= MaxLevel {
			g.finished = true
			g.emit(Event{Kind: EventCampaignCleared, Score: g.score, Level: g.level})
		}
	}
}

func (g *Game) updateBullets() {
	for _, b := range g.bullets {
		b.Update()
		if b.OffScreen() {
			b.removed = true
		}
	}
	g.bullets = slices.DeleteFunc(g.bullets, func(b *Bullet) bool { return b.removed })
}

func (g *Game) updateBlades() {
	for _, b := range g.blades {
		b.Update()
		if b.Spent() {
			b.removed = true
			continue
		}

		for _, e := range g.enemies {
			if e.removed || !b.Hits(e) {
				continue
			}
			b.removed = true
			if e.TakeDamage(BladeDamage) {
				g.defeat(e)
				g.dropPowerUp(e.Pos, BladeDropChance)
			}
			break
		}
	}
	g.blades = slices.DeleteFunc(g.blades, func(b *Blade) bool { return b.removed })
	g.enemies = slices.DeleteFunc(g.enemies, func(e *Enemy) bool { return e.removed })
}

func (g *Game) updateEnemies() {
	for _, e := range g.enemies {
		e.Update()
		if e.OffScreen() {
			e.removed = true
			continue
		}

		if e.CollidesWithPlayer(g.player) {
			g.player.TakeDamage(e.Damage)
			g.emit(Event{Kind: EventPlayerHit, Pos: g.player.Pos, Damage: e.Damage})
		}

		for _, b := range g.bullets {
			if b.removed || !e.HitBy(b) {
				continue
			}
			b.removed = true
			if e.TakeDamage(b.Damage) {
				g.defeat(e)
				if g.player.BladesReady {
					g.player.BladesReady = false
					g.blades = append(g.blades, g.player.SpawnBladeVolley(e.Pos)...)
				} else {
					g.dropPowerUp(e.Pos, BulletDropChance)
				}
			}
			break
		}
	}
	g.bullets = slices.DeleteFunc(g.bullets, func(b *Bullet) bool { return b.removed })
	g.enemies = slices.DeleteFunc(g.enemies, func(e *Enemy) bool { return e.removed })
}

func (g *Game) updatePowerUps() {
	for _, p := range g.powerUps {
		if p.Update() {
			p.removed = true
			continue
		}
		if g.player.IsAlive() && p.CollidesWithPlayer(g.player) {
			g.player.Apply(p.Kind)
			p.removed = true
			g.emit(Event{Kind: EventPowerUpCollected, Pos: p.Pos, PowerUp: p.Kind})
		}
	}
	g.powerUps = slices.DeleteFunc(g.powerUps, func(p *PowerUp) bool { return p.removed })
}

func (g *Game) defeat(e *Enemy) {
	e.removed = true
	g.score += e.Score
	g.defeated++
	g.emit(Event{Kind: EventEnemyDefeated, Pos: e.Pos, Score: e.Score, Level: g.level})
}

func (g *Game) dropPowerUp(pos core.Vec, chance float64) {
	if hat := RollDrop(pos, chance, g.rng); hat != nil {
		g.powerUps = append(g.powerUps, hat)
	}
}
