// Package collision implements a reflex game: steer a square into reward
// circles before the clock runs out while avoiding the triangles.
package collision

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/registry"
)

// Ticks per second the pixel speeds in the config are tuned for.
const baseTickRate = 60

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

// Game implements the Collision game.
type Game struct {
	rng        *rand.Rand
	runtime    core.RuntimeConfig
	cfg        config.CollisionConfig
	difficulty *config.DifficultyManager
	clock      core.Clock
	stepScale  float64 // Converts per-tick speeds to the actual tick rate

	player      box
	hold        [4]int // Remaining hold ticks for up, down, left, right
	blue        box
	green       box
	red         box
	snitch      box
	black       box
	lightBlue   box
	duration    float64 // Seconds on the clock, grows with red bonuses
	health      int
	catchesLeft int

	score    int
	started  bool
	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

// New creates a new Collision game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("collision", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "collision"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Collision"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	return "Hit the circles, dodge the triangles, beat the clock"
}

// Reset initializes the game and shows the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.restart(runtime)
	g.started = false
}

// restart begins a fresh round without the start screen.
func (g *Game) restart(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.clock = core.NewClock(runtime.EffectiveTickRate())
	g.stepScale = float64(baseTickRate) / float64(g.clock.TickRate())

	cfg, err := config.LoadCollision(configPath)
	if err != nil {
		log.Warn("collision: using default config", "path", configPath, "error", err)
		cfg = config.DefaultCollisionConfig()
	}
	if difficultyPreset != "" {
		config.ApplyCollisionPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.tooSmall = runtime.ScreenW < 40 || runtime.ScreenH < 15

	size := float64(cfg.Player.Size)
	g.player = box{
		X: float64(cfg.Arena.Width/2 - cfg.Player.Size/2),
		Y: float64(cfg.Arena.Height/2 - cfg.Player.Size/2),
		W: size,
		H: size,
	}
	g.hold = [4]int{}

	g.blue = g.randomBox(2 * cfg.Targets.Radius)
	g.green = g.randomBox(2 * cfg.Targets.Radius)
	g.snitch = g.randomBox(2 * cfg.Targets.SnitchRadius)
	g.red = g.randomBox(2 * cfg.Targets.Radius)
	g.black = g.randomBox(cfg.Hazards.Size)
	g.lightBlue = g.randomBox(cfg.Hazards.Size)

	g.duration = cfg.Timer.StartSeconds
	g.health = cfg.Hazards.Health
	g.catchesLeft = cfg.Targets.SnitchCatches
	g.score = 0
	g.started = true
	g.gameOver = false
	g.won = false
	g.paused = false
}

// randomBox places a square of the given size anywhere in the arena.
func (g *Game) randomBox(size int) box {
	return box{
		X: float64(g.rng.Intn(g.cfg.Arena.Width - size + 1)),
		Y: float64(g.rng.Intn(g.cfg.Arena.Height - size + 1)),
		W: float64(size),
		H: float64(size),
	}
}

// remaining returns the seconds left on the clock.
func (g *Game) remaining() float64 {
	return math.Max(0, g.duration-float64(g.clock.Now())/1000)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if !g.started {
		if input.Has(core.ActionFire) || input.Has(core.ActionConfirm) {
			g.started = true
		}
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionRestart) && g.gameOver {
		rt := g.runtime
		rt.Seed = g.rng.Int63()
		g.restart(rt)
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.clock.Advance()
	remaining := g.remaining()

	g.movePlayer(input)
	g.checkCollisions(remaining)
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	remaining = g.remaining()
	if remaining > g.cfg.Targets.SnitchChaseAbove {
		g.moveSnitch()
	}
	if remaining == 0 {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// movePlayer applies held directions. A key press holds its direction for
// a few ticks so terminal key repeat reads as a held key.
func (g *Game) movePlayer(input core.InputFrame) {
	for i, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if input.Has(a) {
			g.hold[i] = g.cfg.Player.HoldTicks
		}
	}

	speed := g.cfg.Player.Speed * g.stepScale
	if g.hold[0] > 0 {
		g.player.Y -= speed
	}
	if g.hold[1] > 0 {
		g.player.Y += speed
	}
	if g.hold[2] > 0 {
		g.player.X -= speed
	}
	if g.hold[3] > 0 {
		g.player.X += speed
	}
	for i := range g.hold {
		if g.hold[i] > 0 {
			g.hold[i]--
		}
	}

	g.player.X = core.ClampF(g.player.X, 0, float64(g.cfg.Arena.Width)-g.player.W)
	g.player.Y = core.ClampF(g.player.Y, 0, float64(g.cfg.Arena.Height)-g.player.H)
}

// checkCollisions resolves every target and hazard touched this tick.
func (g *Game) checkCollisions(remaining float64) {
	t := g.cfg.Targets

	if g.player.intersects(g.blue) {
		g.score += t.BluePoints
		g.blue = g.randomBox(2 * t.Radius)
	}
	if g.player.intersects(g.green) {
		g.score += t.GreenPoints
		g.green = g.randomBox(2 * t.Radius)
	}
	if remaining > t.SnitchActiveAbove && g.player.intersects(g.snitch) {
		g.score += t.SnitchPoints
		g.snitch = g.randomBox(2 * t.SnitchRadius)
		g.catchesLeft--
		if g.catchesLeft <= 0 {
			g.gameOver = true
			g.won = true
			return
		}
	}
	if g.player.intersects(g.red) {
		g.duration += g.cfg.Timer.BonusSeconds
		g.red = g.randomBox(2 * t.Radius)
	}

	if g.player.intersects(g.black) {
		g.gameOver = true
		return
	}
	if g.player.intersects(g.lightBlue) {
		g.health -= g.cfg.Hazards.Damage
		if g.health <= 0 {
			g.gameOver = true
			return
		}
		g.lightBlue = g.randomBox(g.cfg.Hazards.Size)
	}
}

// moveSnitch homes the snitch toward the player's center.
func (g *Game) moveSnitch() {
	sx, sy := g.snitch.center()
	px, py := g.player.center()
	dx, dy := px-sx, py-sy
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	base := g.cfg.Player.Speed * g.cfg.Targets.SnitchSpeedFactor
	speed := g.difficulty.Speed(base, g.score, int(g.clock.Ticks())) * g.stepScale
	g.snitch.X += dx / dist * speed
	g.snitch.Y += dy / dist * speed
}

// endMessage returns the headline for the game-over screen.
func (g *Game) endMessage() string {
	t := g.cfg.Targets
	switch {
	case g.won && g.score > t.BoastScore:
		return "Almost as good as me"
	case g.won:
		return "This gets a boom"
	case g.score <= t.TauntScore:
		return "Game Over, you suck"
	default:
		return "Game Over, you still suck"
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawOverlay("Window too small", "Resize to continue")
		return
	}

	if !g.started {
		h := dst.Height()
		dst.DrawTextCenteredColor(h/4, "Collision Game!", core.ColorBrightWhite)
		dst.DrawTextCenteredColor(h/3, "Hit the circles for rewards! (watch out for triangles)", core.ColorRed)
		dst.DrawTextCenteredColor(h/2, "[ Start Game ]", core.ColorBlue)
		dst.DrawTextCentered(h/2+2, "Press Space or Enter")
		return
	}

	if g.gameOver {
		dst.DrawOverlay(g.endMessage(), fmt.Sprintf("Final Score: %d", g.score), "R: Restart  B: Back to Menu")
		return
	}

	v := viewport{
		offsetY: 1,
		cols:    dst.Width(),
		rows:    dst.Height() - 1,
		arenaW:  float64(g.cfg.Arena.Width),
		arenaH:  float64(g.cfg.Arena.Height),
	}

	v.fillCircle(dst, g.blue, '●', core.ColorBlue)
	v.fillCircle(dst, g.green, '●', core.ColorGreen)
	if g.remaining() > g.cfg.Targets.SnitchActiveAbove {
		v.fillCircle(dst, g.snitch, '●', core.ColorYellow)
	}
	v.fillCircle(dst, g.red, '●', core.ColorRed)
	v.fillTriangle(dst, g.black, '▲', core.ColorDarkGray)
	v.fillTriangle(dst, g.lightBlue, '▲', core.ColorLightBlue)
	v.fillBox(dst, g.player, '█', core.ColorBrightRed)

	g.renderHUD(dst)

	if g.paused {
		dst.DrawOverlay("Paused", "P: Resume  B: Back to Menu")
	}
}

// renderHUD draws score, time and health on the top line.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ')
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Time Left: %d", int(g.remaining())))
	health := fmt.Sprintf("Health: %d", g.health)
	dst.DrawText(dst.Width()-len(health)-1, 0, health)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}
