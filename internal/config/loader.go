package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a game config.
// Search order: customPath -> ~/.arcade/configs/<name>.yaml -> ./configs/<name>.yaml -> embedded default.
// Values absent from a file keep their defaults.
func load[T any](name, customPath string, embedded []byte, defaults T) (T, error) {
	filename := name + ".yaml"

	// Try custom path first
	if customPath != "" {
		cfg := defaults
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadBomber loads Bomberman configuration and validates it.
func LoadBomber(customPath string) (BomberConfig, error) {
	cfg, err := load("bomber", customPath, defaultBomberYAML, DefaultBomberConfig())
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid bomber config: %w", err)
	}
	return cfg, nil
}

// LoadCollision loads Collision configuration and validates it.
func LoadCollision(customPath string) (CollisionConfig, error) {
	cfg, err := load("collision", customPath, defaultCollisionYAML, DefaultCollisionConfig())
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid collision config: %w", err)
	}
	return cfg, nil
}

// LoadMaze loads Maze configuration and validates it.
func LoadMaze(customPath string) (MazeConfig, error) {
	cfg, err := load("maze", customPath, defaultMazeYAML, DefaultMazeConfig())
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid maze config: %w", err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate checks the Bomberman config for unplayable values.
func (c BomberConfig) Validate() error {
	var errs []error
	if c.Grid.TileSize <= 0 {
		errs = append(errs, errors.New("grid.tile_size must be positive"))
	}
	if c.Grid.Border < 0 || c.Grid.Width <= 2*c.Grid.Border || c.Grid.Height <= 2*c.Grid.Border {
		errs = append(errs, errors.New("grid must be larger than its border"))
	}
	if c.Player.MoveDurationMs <= 0 {
		errs = append(errs, errors.New("player.move_duration_ms must be positive"))
	}
	if c.Bomb.FuseMs <= 0 || c.Bomb.Radius < 0 {
		errs = append(errs, errors.New("bomb.fuse_ms must be positive and bomb.radius non-negative"))
	}
	if c.Enemies.SpawnMaxMs < c.Enemies.SpawnMinMs ||
		c.Enemies.FirstMoveMaxMs < c.Enemies.FirstMoveMinMs ||
		c.Enemies.ChaseMaxMs < c.Enemies.ChaseMinMs {
		errs = append(errs, errors.New("enemies: max timings must not be below min timings"))
	}
	if len(c.Levels) == 0 {
		errs = append(errs, errors.New("at least one level is required"))
	}
	for i, lvl := range c.Levels {
		if lvl.RandomMoveMs <= 0 {
			errs = append(errs, fmt.Errorf("levels[%d].random_move_ms must be positive", i))
		}
		if lvl.MaxEnemies < 0 {
			errs = append(errs, fmt.Errorf("levels[%d].max_enemies must not be negative", i))
		}
	}
	return errors.Join(errs...)
}

// Validate checks the Collision config for unplayable values.
func (c CollisionConfig) Validate() error {
	var errs []error
	if c.Arena.Width <= c.Player.Size || c.Arena.Height <= c.Player.Size {
		errs = append(errs, errors.New("arena must be larger than the player"))
	}
	if c.Targets.Radius <= 0 || c.Targets.SnitchRadius <= 0 || c.Hazards.Size <= 0 {
		errs = append(errs, errors.New("targets.radius, targets.snitch_radius and hazards.size must be positive"))
	}
	// Every target and hazard is placed fully inside the arena
	if shape := max(2*c.Targets.Radius, 2*c.Targets.SnitchRadius, c.Hazards.Size); c.Arena.Width < shape || c.Arena.Height < shape {
		errs = append(errs, fmt.Errorf("arena must fit the largest target or hazard (%d px)", shape))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, errors.New("player.speed must be positive"))
	}
	if c.Timer.StartSeconds <= 0 {
		errs = append(errs, errors.New("timer.start_seconds must be positive"))
	}
	if c.Hazards.Health <= 0 {
		errs = append(errs, errors.New("hazards.health must be positive"))
	}
	return errors.Join(errs...)
}

// Validate checks the Maze config for unplayable values.
func (c MazeConfig) Validate() error {
	var errs []error
	if c.Grid.Width < 5 || c.Grid.Height < 5 {
		errs = append(errs, errors.New("grid must be at least 5x5"))
	}
	if c.Timer.LevelSeconds <= 0 {
		errs = append(errs, errors.New("timer.level_seconds must be positive"))
	}
	if c.Bullets.Speed <= 0 {
		errs = append(errs, errors.New("bullets.speed must be positive"))
	}
	if c.Enemies.Count < 0 {
		errs = append(errs, errors.New("enemies.count must not be negative"))
	}
	return errors.Join(errs...)
}

// ApplyCollisionPreset modifies the config based on a difficulty preset.
func ApplyCollisionPreset(cfg *CollisionConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Difficulty, preset)

	// Adjust the clock based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Timer.StartSeconds = 15
	case DifficultyHard:
		cfg.Timer.StartSeconds = 8
		cfg.Hazards.Health = 15
	}
}

// ApplyMazePreset modifies the config based on a difficulty preset.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Timer.LevelSeconds = 45
		cfg.Enemies.Count = 3
	case DifficultyHard:
		cfg.Timer.LevelSeconds = 20
		cfg.Enemies.Count = 8
	}
}

// ApplyBomberPreset modifies the config based on a difficulty preset.
func ApplyBomberPreset(cfg *BomberConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Difficulty, preset)

	if preset == DifficultyHard {
		for i := range cfg.Levels {
			cfg.Levels[i].MaxEnemies++
		}
		cfg.Bomb.FuseMs = 2000
	}
}
