package hatman

import "github.com/vovakirdan/crazy-hatman/internal/core"

// State is the phase of the game state machine.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateLevelComplete
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateLevelComplete:
		return "level-complete"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventEnemyDefeated EventKind = iota
	EventPowerUpCollected
	EventPlayerHit
	EventLevelComplete
	EventGameOver
	EventCampaignCleared
	EventQuit
)

func (k EventKind) String() string {
	switch k {
	case EventEnemyDefeated:
		return "enemy-defeated"
	case EventPowerUpCollected:
		return "power-up-collected"
	case EventPlayerHit:
		return "player-hit"
	case EventLevelComplete:
		return "level-complete"
	case EventGameOver:
		return "game-over"
	case EventCampaignCleared:
		return "campaign-cleared"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is a domain event raised by Step. Fields irrelevant to the kind are zero.
type Event struct {
	Kind    EventKind
	Pos     core.Vec
	Score   int // Points for a defeat; total score for run-ending events
	Level   int
	Damage  int // Player-hit damage
	PowerUp PowerUpKind
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State  State
	Score  int
	Level  int
	Quit   bool // The player asked to leave the game
	Events []Event
}
