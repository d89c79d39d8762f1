package bomber

import (
	"sort"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateDead        GameStateType = "dead"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Level      int // 1-indexed
	Score      int
	Kills      int
	PlayerX    int // Pixels
	PlayerY    int // Pixels
	Moving     bool
	BombActive bool
	BombTile   core.Point
	Enemies    []core.Point // Sorted by row, then column
	SoftBlocks int
	Mode       string
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateDead
	case g.paused:
		state = StatePaused
	}

	enemies := make([]core.Point, len(g.enemies))
	for i, e := range g.enemies {
		enemies[i] = e.Tile
	}
	sort.Slice(enemies, func(i, j int) bool {
		if enemies[i].Y != enemies[j].Y {
			return enemies[i].Y < enemies[j].Y
		}
		return enemies[i].X < enemies[j].X
	})

	snap := Snapshot{
		Tick:       g.clock.Ticks(),
		Level:      g.levelIndex + 1,
		Score:      g.score,
		Kills:      g.kills,
		PlayerX:    g.player.X,
		PlayerY:    g.player.Y,
		Moving:     g.moving,
		Enemies:    enemies,
		SoftBlocks: len(g.layout.Soft),
		Mode:       g.mode.String(),
		State:      state,
	}
	if g.bomb != nil {
		snap.BombActive = true
		snap.BombTile = g.bomb.Tile
	}
	return snap
}
