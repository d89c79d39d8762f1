package config

import (
	_ "embed"
)

//go:embed defaults/bomber.yaml
var defaultBomberYAML []byte

//go:embed defaults/collision.yaml
var defaultCollisionYAML []byte

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultBomberConfig returns the default Bomberman configuration.
func DefaultBomberConfig() BomberConfig {
	return BomberConfig{
		Grid: BomberGrid{
			TileSize: 50,
			Width:    20,
			Height:   12,
			Border:   2,
		},
		Player: BomberPlayer{
			StartX:         2,
			StartY:         2,
			MoveDurationMs: 450,
		},
		Bomb: BomberBomb{
			FuseMs:      2500,
			Radius:      2,
			ExplosionMs: 500,
		},
		Enemies: BomberEnemies{
			SpawnMinMs:     5000,
			SpawnMaxMs:     10000,
			FirstMoveMinMs: 700,
			FirstMoveMaxMs: 1200,
			ChaseMinMs:     1200,
			ChaseMaxMs:     1400,
			SafeRadius:     3,
			SpawnAttempts:  1000,
		},
		Levels: []BomberLevel{
			{
				Name:         "Red Room",
				Layout:       "level1",
				Theme:        "red",
				EnemyColor:   "green",
				MaxEnemies:   1,
				RandomMoveMs: 3000,
				KillPoints:   100,
				WinKills:     1,
			},
			{
				Name:         "Yellow Columns",
				Layout:       "level2",
				Theme:        "yellow",
				EnemyColor:   "red",
				MaxEnemies:   3,
				RandomMoveMs: 2800,
				KillPoints:   100,
			},
			{
				Name:         "Green Lattice",
				Layout:       "level3",
				Theme:        "green",
				EnemyColor:   "red",
				MaxEnemies:   5,
				RandomMoveMs: 2500,
				KillPoints:   150,
				RandomPhase:  30000,
				ChasePhase:   10000,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.0,
				IntervalReduction: 0.3,
			},
		},
	}
}

// DefaultCollisionConfig returns the default Collision configuration.
func DefaultCollisionConfig() CollisionConfig {
	return CollisionConfig{
		Arena: CollisionArena{
			Width:  800,
			Height: 600,
		},
		Player: CollisionPlayer{
			Size:      35,
			Speed:     8,
			HoldTicks: 8,
		},
		Timer: CollisionTimer{
			StartSeconds: 10,
			BonusSeconds: 5,
		},
		Targets: CollisionTargets{
			Radius:            25,
			BluePoints:        1,
			GreenPoints:       2,
			SnitchRadius:      20,
			SnitchPoints:      150,
			SnitchCatches:     3,
			SnitchActiveAbove: 15,
			SnitchChaseAbove:  22,
			SnitchSpeedFactor: 0.6,
			BoastScore:        500,
			TauntScore:        20,
		},
		Hazards: CollisionHazards{
			Size:   50,
			Health: 25,
			Damage: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				IntervalReduction: 0.0,
			},
		},
	}
}

// DefaultMazeConfig returns the default Maze configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Grid: MazeGrid{
			Width:  39,
			Height: 29,
		},
		Timer: MazeTimer{
			LevelSeconds: 30,
		},
		Bullets: MazeBullets{
			Speed:     50,
			HitRadius: 2,
		},
		Enemies: MazeEnemies{
			Count:      5,
			TeleportMs: 10000,
		},
		Scoring: MazeScoring{
			LevelPoints: 100,
			KillPoints:  25,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.0,
				IntervalReduction: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "bomber":
		return defaultBomberYAML
	case "collision":
		return defaultCollisionYAML
	case "maze":
		return defaultMazeYAML
	default:
		return nil
	}
}
