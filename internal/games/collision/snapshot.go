package collision

// GameStateType represents the current game state.
type GameStateType string

const (
	StateStart       GameStateType = "start"
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Score       int
	Health      int
	CatchesLeft int
	PlayerX     float64
	PlayerY     float64
	SnitchX     float64
	SnitchY     float64
	RemainingMs int64
	State       GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case !g.started:
		state = StateStart
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:        g.clock.Ticks(),
		Score:       g.score,
		Health:      g.health,
		CatchesLeft: g.catchesLeft,
		PlayerX:     g.player.X,
		PlayerY:     g.player.Y,
		SnitchX:     g.snitch.X,
		SnitchY:     g.snitch.Y,
		RemainingMs: int64(g.remaining() * 1000),
		State:       state,
	}
}
