// Package maze implements a maze shooter: reach the exit of a generated
// maze before the timer runs out while shooting the enemies that teleport
// around it.
package maze

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/registry"
)

// Each maze cell is drawn two terminal columns wide.
const cellCols = 2

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Bullet travels in a straight line, in cell units.
type Bullet struct {
	X, Y float64
	Dir  core.Dir
}

// cell returns the maze cell the bullet is in.
func (b Bullet) cell() core.Point {
	return core.Point{X: int(math.Round(b.X)), Y: int(math.Round(b.Y))}
}

// Enemy sits on an open cell until it teleports or is shot.
type Enemy struct {
	Pos          core.Point
	Alive        bool
	NextTeleport int64 // Clock ms of the next teleport
}

// Game implements the Maze game.
type Game struct {
	rng        *rand.Rand
	runtime    core.RuntimeConfig
	cfg        config.MazeConfig
	difficulty *config.DifficultyManager
	clock      core.Clock

	maze       *Maze
	width      int
	height     int
	player     core.Point
	exit       core.Point
	bullets    []Bullet
	enemies    []Enemy
	levelStart int64

	level    int
	score    int
	kills    int
	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a new Maze game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("maze", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "maze"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	return "Find the exit and shoot your way through"
}

// Reset initializes the game at level 1.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.clock = core.NewClock(runtime.EffectiveTickRate())

	cfg, err := config.LoadMaze(configPath)
	if err != nil {
		log.Warn("maze: using default config", "path", configPath, "error", err)
		cfg = config.DefaultMazeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyMazePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.width = core.Min(cfg.Grid.Width, runtime.ScreenW/cellCols)
	g.height = core.Min(cfg.Grid.Height, runtime.ScreenH-1)
	g.tooSmall = g.width < 5 || g.height < 5

	g.level = 1
	g.score = 0
	g.kills = 0
	g.gameOver = false
	g.paused = false

	if !g.tooSmall {
		g.buildLevel()
	}
}

// buildLevel carves a new maze and repopulates it.
func (g *Game) buildLevel() {
	g.maze = Generate(g.width, g.height, g.rng)
	g.player = core.Point{X: 1, Y: 1}
	g.exit = g.maze.Exit()
	g.bullets = nil
	g.levelStart = g.clock.Now()
	g.spawnEnemies()
}

// spawnEnemies places enemies on open cells away from the start and exit.
func (g *Game) spawnEnemies() {
	g.enemies = g.enemies[:0]
	start := core.Point{X: 1, Y: 1}
	candidates := g.freeCells(func(p core.Point) bool { return p == start || p == g.exit })

	now := g.clock.Now()
	next := now + g.teleportInterval()
	for i := 0; i < g.cfg.Enemies.Count && len(candidates) > 0; i++ {
		j := g.rng.Intn(len(candidates))
		g.enemies = append(g.enemies, Enemy{Pos: candidates[j], Alive: true, NextTeleport: next})
		candidates = append(candidates[:j], candidates[j+1:]...)
	}
}

// freeCells lists open cells not rejected by exclude.
func (g *Game) freeCells(exclude func(core.Point) bool) []core.Point {
	var cells []core.Point
	for _, p := range g.maze.OpenCells() {
		if !exclude(p) {
			cells = append(cells, p)
		}
	}
	return cells
}

func (g *Game) teleportInterval() int64 {
	return g.difficulty.Interval(g.cfg.Enemies.TeleportMs, g.score, int(g.clock.Ticks()))
}

// remainingMs returns the time left on the level timer.
func (g *Game) remainingMs() int64 {
	left := int64(g.cfg.Timer.LevelSeconds)*1000 - (g.clock.Now() - g.levelStart)
	if left < 0 {
		return 0
	}
	return left
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) && g.gameOver {
		rt := g.runtime
		rt.Seed = g.rng.Int63()
		g.Reset(rt)
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.clock.Advance()

	if d := input.MoveDir(); !d.IsZero() {
		if next := g.player.Add(d); g.maze.Open(next) {
			g.player = next
		}
	}

	if d := input.AimDir(); !d.IsZero() {
		g.bullets = append(g.bullets, Bullet{X: float64(g.player.X), Y: float64(g.player.Y), Dir: d})
	}

	g.updateBullets()
	g.updateEnemies()

	for _, e := range g.enemies {
		if e.Alive && e.Pos == g.player {
			g.gameOver = true
			return core.StepResult{State: g.State()}
		}
	}

	if g.remainingMs() == 0 {
		g.gameOver = true
		return core.StepResult{State: g.State()}
	}

	if g.player == g.exit {
		g.level++
		g.score += g.cfg.Scoring.LevelPoints
		g.buildLevel()
	}

	return core.StepResult{State: g.State()}
}

// updateBullets moves bullets and resolves walls and hits.
func (g *Game) updateBullets() {
	step := g.cfg.Bullets.Speed / float64(g.clock.TickRate())
	reach := g.cfg.Bullets.HitRadius * g.cfg.Bullets.HitRadius

	kept := g.bullets[:0]
	for _, b := range g.bullets {
		b.X += float64(b.Dir.DX) * step
		b.Y += float64(b.Dir.DY) * step

		if b.X < 0 || b.X >= float64(g.maze.W) || b.Y < 0 || b.Y >= float64(g.maze.H) {
			continue
		}
		if g.maze.Wall(b.cell()) {
			continue
		}

		hit := false
		for i := range g.enemies {
			e := &g.enemies[i]
			if !e.Alive {
				continue
			}
			dx, dy := b.X-float64(e.Pos.X), b.Y-float64(e.Pos.Y)
			if dx*dx+dy*dy <= reach {
				e.Alive = false
				g.kills++
				g.score += g.cfg.Scoring.KillPoints
				hit = true
				break
			}
		}
		if !hit {
			kept = append(kept, b)
		}
	}
	g.bullets = kept
}

// updateEnemies teleports live enemies whose timer is due.
func (g *Game) updateEnemies() {
	now := g.clock.Now()
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Alive || now < e.NextTeleport {
			continue
		}
		cells := g.freeCells(func(p core.Point) bool { return p == g.player || p == g.exit })
		if len(cells) > 0 {
			e.Pos = cells[g.rng.Intn(len(cells))]
		}
		e.NextTeleport = now + g.teleportInterval()
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawOverlay("Window too small", "Resize to continue")
		return
	}

	ox := (dst.Width() - g.maze.W*cellCols) / 2
	oy := 1
	draw := func(p core.Point, s string, c core.Color) {
		dst.DrawTextColor(ox+p.X*cellCols, oy+p.Y, s, c)
	}

	for y := range g.maze.H {
		for x := range g.maze.W {
			if p := (core.Point{X: x, Y: y}); g.maze.Wall(p) {
				draw(p, "██", core.ColorWhite)
			}
		}
	}

	draw(g.exit, "██", core.ColorRed)
	for _, e := range g.enemies {
		if e.Alive {
			draw(e.Pos, "()", core.ColorBrightRed)
		} else {
			draw(e.Pos, "░░", core.ColorGray)
		}
	}
	for _, b := range g.bullets {
		draw(b.cell(), "••", core.ColorBrightGreen)
	}
	draw(g.player, "██", core.ColorGreen)

	dst.DrawText(1, 0, fmt.Sprintf("Time: %d", g.remainingMs()/1000))
	dst.DrawTextCentered(0, fmt.Sprintf("Level: %d", g.level))
	score := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(dst.Width()-len(score)-1, 0, score)

	if g.gameOver {
		dst.DrawOverlay("Game Over!", fmt.Sprintf("Score: %d", g.score), "R: Restart  B: Back to Menu")
	} else if g.paused {
		dst.DrawOverlay("Paused", "P: Resume  B: Back to Menu")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
