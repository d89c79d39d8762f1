package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/games/bomber"
	"github.com/vovakirdan/tile-arcade/internal/games/collision"
	"github.com/vovakirdan/tile-arcade/internal/games/maze"
	"github.com/vovakirdan/tile-arcade/internal/registry"
)

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// validateFlags checks the game flags shared by play, menu and serve.
func validateFlags() error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagConfig != "" {
		if _, err := os.Stat(flagConfig); err != nil {
			return fmt.Errorf("config file: %w", err)
		}
	}
	if flagLevelsDir != "" {
		if info, err := os.Stat(flagLevelsDir); err != nil || !info.IsDir() {
			return fmt.Errorf("--levels-dir %q is not a directory", flagLevelsDir)
		}
	}
	return nil
}

// configureGame applies the config and difficulty flags to a game before
// it is created. A --config file that fails to load or validate for the
// game is an error rather than a silent fallback to defaults.
func configureGame(gameID string) error {
	if err := checkGameConfig(gameID, flagConfig); err != nil {
		return err
	}

	switch gameID {
	case "bomber":
		bomber.SetConfigPath(flagConfig)
		bomber.SetDifficultyPreset(flagDifficulty)
		bomber.SetLevelsDir(flagLevelsDir)
	case "collision":
		collision.SetConfigPath(flagConfig)
		collision.SetDifficultyPreset(flagDifficulty)
	case "maze":
		maze.SetConfigPath(flagConfig)
		maze.SetDifficultyPreset(flagDifficulty)
	}
	return nil
}

// checkGameConfig loads a custom config file the way the game will.
func checkGameConfig(gameID, path string) error {
	if path == "" {
		return nil
	}

	var err error
	switch gameID {
	case "bomber":
		_, err = config.LoadBomber(path)
	case "collision":
		_, err = config.LoadCollision(path)
	case "maze":
		_, err = config.LoadMaze(path)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", gameID, err)
	}
	return nil
}

// selectLevel starts a game with a choosable start level on level.
// Zero keeps the game's own default.
func selectLevel(game registry.Game, level int) {
	if s, ok := game.(interface{ SelectLevel(int) }); ok && level > 0 {
		s.SelectLevel(level)
	}
}
