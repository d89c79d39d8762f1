package maze

import "github.com/vovakirdan/tile-arcade/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Level       int
	Score       int
	Kills       int
	Player      core.Point
	Exit        core.Point
	Bullets     []Bullet
	Enemies     []Enemy
	OpenCells   int
	RemainingMs int64
	State       GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Tick:        g.clock.Ticks(),
		Level:       g.level,
		Score:       g.score,
		Kills:       g.kills,
		Player:      g.player,
		Exit:        g.exit,
		Bullets:     append([]Bullet(nil), g.bullets...),
		Enemies:     append([]Enemy(nil), g.enemies...),
		RemainingMs: g.remainingMs(),
		State:       state,
	}
	if g.maze != nil {
		s.OpenCells = len(g.maze.OpenCells())
	}
	return s
}
