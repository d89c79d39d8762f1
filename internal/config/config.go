// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// BomberConfig contains all configuration for the Bomberman game.
type BomberConfig struct {
	Grid       BomberGrid       `yaml:"grid"`
	Player     BomberPlayer     `yaml:"player"`
	Bomb       BomberBomb       `yaml:"bomb"`
	Enemies    BomberEnemies    `yaml:"enemies"`
	Levels     []BomberLevel    `yaml:"levels"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BomberGrid defines the playfield. Positions are simulated in pixels,
// TileSize pixels per tile.
type BomberGrid struct {
	TileSize int `yaml:"tile_size"`
	Width    int `yaml:"width"`  // Tiles, including the border
	Height   int `yaml:"height"` // Tiles, including the border
	Border   int `yaml:"border"` // Thickness of the rigid border in tiles
}

// BomberPlayer defines player parameters.
type BomberPlayer struct {
	StartX         int   `yaml:"start_x"`
	StartY         int   `yaml:"start_y"`
	MoveDurationMs int64 `yaml:"move_duration_ms"`
}

// BomberBomb defines bomb and blast parameters.
type BomberBomb struct {
	FuseMs      int64 `yaml:"fuse_ms"`
	Radius      int   `yaml:"radius"`
	ExplosionMs int64 `yaml:"explosion_ms"`
}

// BomberEnemies defines enemy spawning and movement timing.
type BomberEnemies struct {
	SpawnMinMs     int64 `yaml:"spawn_min_ms"`
	SpawnMaxMs     int64 `yaml:"spawn_max_ms"`
	FirstMoveMinMs int64 `yaml:"first_move_min_ms"`
	FirstMoveMaxMs int64 `yaml:"first_move_max_ms"`
	ChaseMinMs     int64 `yaml:"chase_min_ms"`
	ChaseMaxMs     int64 `yaml:"chase_max_ms"`
	SafeRadius     int   `yaml:"safe_radius"`    // Spawn keeps this Chebyshev distance from the player
	SpawnAttempts  int   `yaml:"spawn_attempts"` // Random tile attempts before giving up
}

// BomberLevel defines per-level rules. Layouts are built in or loaded from
// level files; Layout names which one to use.
type BomberLevel struct {
	Name         string `yaml:"name"`
	Layout       string `yaml:"layout"`
	Theme        string `yaml:"theme"`       // Background color name
	EnemyColor   string `yaml:"enemy_color"` // Enemy color name
	MaxEnemies   int    `yaml:"max_enemies"`
	RandomMoveMs int64  `yaml:"random_move_ms"`
	KillPoints   int    `yaml:"kill_points"`
	WinKills     int    `yaml:"win_kills"` // Kills needed to win, 0 = survive forever
	RandomPhase  int64  `yaml:"random_phase_ms"`
	ChasePhase   int64  `yaml:"chase_phase_ms"` // 0 disables chase mode
}

// CollisionConfig contains all configuration for the Collision game.
type CollisionConfig struct {
	Arena      CollisionArena   `yaml:"arena"`
	Player     CollisionPlayer  `yaml:"player"`
	Timer      CollisionTimer   `yaml:"timer"`
	Targets    CollisionTargets `yaml:"targets"`
	Hazards    CollisionHazards `yaml:"hazards"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CollisionArena defines the simulated arena in pixels.
type CollisionArena struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CollisionPlayer defines the player square.
type CollisionPlayer struct {
	Size      int     `yaml:"size"`
	Speed     float64 `yaml:"speed"`      // Pixels per tick
	HoldTicks int     `yaml:"hold_ticks"` // Ticks a key press keeps moving
}

// CollisionTimer defines the countdown.
type CollisionTimer struct {
	StartSeconds float64 `yaml:"start_seconds"`
	BonusSeconds float64 `yaml:"bonus_seconds"`
}

// CollisionTargets defines the reward circles and the snitch.
type CollisionTargets struct {
	Radius            int     `yaml:"radius"`
	BluePoints        int     `yaml:"blue_points"`
	GreenPoints       int     `yaml:"green_points"`
	SnitchRadius      int     `yaml:"snitch_radius"`
	SnitchPoints      int     `yaml:"snitch_points"`
	SnitchCatches     int     `yaml:"snitch_catches"`
	SnitchActiveAbove float64 `yaml:"snitch_active_above"` // Seconds remaining
	SnitchChaseAbove  float64 `yaml:"snitch_chase_above"`  // Seconds remaining
	SnitchSpeedFactor float64 `yaml:"snitch_speed_factor"`
	BoastScore        int     `yaml:"boast_score"`
	TauntScore        int     `yaml:"taunt_score"`
}

// CollisionHazards defines the triangles.
type CollisionHazards struct {
	Size   int `yaml:"size"`
	Health int `yaml:"health"`
	Damage int `yaml:"damage"`
}

// MazeConfig contains all configuration for the Maze game.
type MazeConfig struct {
	Grid       MazeGrid         `yaml:"grid"`
	Timer      MazeTimer        `yaml:"timer"`
	Bullets    MazeBullets      `yaml:"bullets"`
	Enemies    MazeEnemies      `yaml:"enemies"`
	Scoring    MazeScoring      `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MazeGrid defines the maximum maze size in cells. The game shrinks it to
// fit the terminal.
type MazeGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// MazeTimer defines the per-level countdown.
type MazeTimer struct {
	LevelSeconds int `yaml:"level_seconds"`
}

// MazeBullets defines bullet movement and hits.
type MazeBullets struct {
	Speed     float64 `yaml:"speed"`      // Cells per second
	HitRadius float64 `yaml:"hit_radius"` // Combined bullet + enemy radius in cells
}

// MazeEnemies defines enemy count and teleport cadence.
type MazeEnemies struct {
	Count      int   `yaml:"count"`
	TeleportMs int64 `yaml:"teleport_ms"`
}

// MazeScoring defines points.
type MazeScoring struct {
	LevelPoints int `yaml:"level_points"`
	KillPoints  int `yaml:"kill_points"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction cut from intervals at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset converts a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}
