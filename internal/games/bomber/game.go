// Package bomber implements a Bomberman-style tile game: walk the grid,
// drop a bomb, blast soft blocks and monsters, and stay out of the fire.
package bomber

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/games/bomber/levels"
	"github.com/vovakirdan/tile-arcade/internal/registry"
)

// Rendering constants
const (
	TileWidth = 3 // Terminal columns per tile
	hudHeight = 2
)

// Package-level settings applied on the next Reset (set via CLI)
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	levelsDir        string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLevelsDir sets a directory of custom level files.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// loadConfig resolves the config file and applies the preset.
func loadConfig() config.BomberConfig {
	cfg, err := config.LoadBomber(configPath)
	if err != nil {
		log.Warn("bomber: using default config", "path", configPath, "error", err)
		cfg = config.DefaultBomberConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBomberPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// levelList returns the configured levels followed by any custom level
// files that no configured level refers to. Custom levels reuse the rules
// of the last configured level.
func levelList(cfg config.BomberConfig) []config.BomberLevel {
	list := append([]config.BomberLevel(nil), cfg.Levels...)
	if levelsDir == "" || len(list) == 0 {
		return list
	}

	files, err := levels.NewLoader(levelsDir).LoadAll()
	if err != nil {
		return list
	}
	used := make(map[string]bool, len(list))
	for _, l := range list {
		used[l.Layout] = true
	}
	for _, f := range files {
		if used[f.ID] {
			continue
		}
		lvl := list[len(cfg.Levels)-1]
		lvl.Name = f.Name
		lvl.Layout = f.ID
		list = append(list, lvl)
	}
	return list
}

// LevelNames returns the names of all playable levels.
func LevelNames() []string {
	list := levelList(loadConfig())
	names := make([]string, len(list))
	for i, l := range list {
		names[i] = l.Name
	}
	return names
}

// LevelCount returns the number of playable levels.
func LevelCount() int {
	return len(levelList(loadConfig()))
}

// Game implements the Bomberman game.
type Game struct {
	rng        *rand.Rand
	runtime    core.RuntimeConfig
	cfg        config.BomberConfig
	difficulty *config.DifficultyManager
	clock      core.Clock

	// Level state
	levels       []config.BomberLevel
	levelIndex   int
	pendingLevel int
	level        config.BomberLevel
	layout       Layout
	inner        bounds
	theme        core.Color
	enemyColor   core.Color

	// Player position in pixels, interpolated while moving
	player    core.Point
	moving    bool
	moveFrom  core.Point
	moveTo    core.Point
	moveStart int64

	bomb       *Bomb
	explosions []Explosion

	enemies    []*Enemy
	lastSpawn  int64
	spawnDelay int64
	mode       EnemyMode
	modeStart  int64

	score int
	kills int

	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

// New creates a new Bomberman game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("bomber", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "bomber"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Bomberman"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	return "Blast soft blocks and monsters on a tile grid"
}

// SelectLevel picks the level (1-indexed) for this instance's next Reset.
// Restarts stay on the level being played.
func (g *Game) SelectLevel(level int) {
	g.pendingLevel = level
}

// Reset initializes/restarts the game on the selected level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.clock = core.NewClock(runtime.EffectiveTickRate())

	g.cfg = loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.levels = levelList(g.cfg)

	if start := g.pendingLevel; start > 0 && start <= len(g.levels) {
		g.levelIndex = start - 1
	}
	g.pendingLevel = 0
	if g.levelIndex >= len(g.levels) {
		g.levelIndex = 0
	}

	g.score = 0
	g.kills = 0
	g.gameOver = false
	g.won = false
	g.paused = false

	g.loadLevel()
}

// loadLevel builds the layout and spawns the player and the first enemy.
func (g *Game) loadLevel() {
	grid := g.cfg.Grid
	g.level = g.levels[g.levelIndex]
	g.inner = bounds{
		MinX: grid.Border,
		MinY: grid.Border,
		MaxX: grid.Width - 1 - grid.Border,
		MaxY: grid.Height - 1 - grid.Border,
	}
	g.layout = g.resolveLayout()

	g.theme = colorOr(g.level.Theme, core.ColorRed)
	g.enemyColor = colorOr(g.level.EnemyColor, core.ColorRed)

	g.tooSmall = g.runtime.ScreenW < grid.Width*TileWidth || g.runtime.ScreenH < grid.Height+hudHeight

	g.player = core.Point{X: g.cfg.Player.StartX * grid.TileSize, Y: g.cfg.Player.StartY * grid.TileSize}
	g.moving = false
	g.bomb = nil
	g.explosions = nil
	g.enemies = nil
	g.mode = ModeRandom
	g.modeStart = 0

	if g.level.MaxEnemies > 0 {
		if e := g.spawnEnemy(0); e != nil {
			g.enemies = append(g.enemies, e)
		}
	}
	g.lastSpawn = 0
	g.spawnDelay = g.randRange(g.cfg.Enemies.SpawnMinMs, g.cfg.Enemies.SpawnMaxMs)
}

// resolveLayout finds the named layout among the built-ins, then the
// custom level files. An unknown name yields an empty arena.
func (g *Game) resolveLayout() Layout {
	if l, ok := builtinLayout(g.level.Layout, g.inner); ok {
		return l
	}
	if levelsDir != "" {
		if lvl, err := levels.NewLoader(levelsDir).LoadByID(g.level.Layout); err == nil {
			return fileLayout(lvl, g.inner)
		}
	}
	return newLayout(nil, nil, g.inner)
}

func colorOr(name string, fallback core.Color) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return fallback
}

// randRange returns a random value in [lo, hi].
func (g *Game) randRange(lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Int63n(hi-lo+1)
}

// isBorder reports whether p is on the border ring or outside the grid.
func (g *Game) isBorder(p core.Point) bool {
	return !g.inner.contains(p)
}

// isRigid reports whether p stops a blast.
func (g *Game) isRigid(p core.Point) bool {
	return g.isBorder(p) || g.layout.Rigid[p]
}

// isSoft reports whether p holds a destructible block.
func (g *Game) isSoft(p core.Point) bool {
	return g.layout.Soft[p]
}

// blocked reports whether p cannot be entered.
func (g *Game) blocked(p core.Point) bool {
	return g.isRigid(p) || g.isSoft(p)
}

// playerTile returns the tile under the player's top-left corner.
func (g *Game) playerTile() core.Point {
	ts := g.cfg.Grid.TileSize
	return core.Point{X: g.player.X / ts, Y: g.player.Y / ts}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		rt := g.runtime
		rt.Seed = g.rng.Int63()
		g.Reset(rt)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.clock.Advance()
	now := g.clock.Now()

	g.updateMode(now)
	g.updateSpawning(now)

	if input.Has(core.ActionFire) && g.bomb == nil {
		g.bomb = &Bomb{Tile: g.playerTile(), PlacedAt: now}
	}
	if !g.moving {
		if d := input.MoveDir(); !d.IsZero() {
			g.tryMove(d, now)
		}
	}
	g.updatePlayer(now)

	if g.bomb != nil && now-g.bomb.PlacedAt >= g.cfg.Bomb.FuseMs {
		g.explode(now)
		if g.gameOver {
			return core.StepResult{State: g.State()}
		}
	}
	g.pruneExplosions(now)

	g.updateEnemies(now)

	return core.StepResult{State: g.State()}
}

// tryMove starts a move to the neighboring tile unless it is blocked.
func (g *Game) tryMove(d core.Dir, now int64) {
	if g.moving {
		return
	}
	ts := g.cfg.Grid.TileSize
	target := core.Point{X: g.player.X + d.DX*ts, Y: g.player.Y + d.DY*ts}
	if g.blocked(core.Point{X: target.X / ts, Y: target.Y / ts}) {
		return
	}
	g.moveFrom = g.player
	g.moveTo = target
	g.moveStart = now
	g.moving = true
}

// updatePlayer interpolates the player linearly toward the move target.
func (g *Game) updatePlayer(now int64) {
	if !g.moving {
		return
	}
	progress := float64(now-g.moveStart) / float64(g.cfg.Player.MoveDurationMs)
	if progress >= 1 {
		g.player = g.moveTo
		g.moving = false
		return
	}
	g.player = core.Point{
		X: int(float64(g.moveFrom.X) + float64(g.moveTo.X-g.moveFrom.X)*progress),
		Y: int(float64(g.moveFrom.Y) + float64(g.moveTo.Y-g.moveFrom.Y)*progress),
	}
}

// explode detonates the active bomb.
func (g *Game) explode(now int64) {
	tiles := blastTiles(g.bomb.Tile, g.cfg.Bomb.Radius, g.isRigid, g.isSoft)
	g.explosions = append(g.explosions, Explosion{Tiles: tiles, StartedAt: now})
	g.bomb = nil

	hit := make(map[core.Point]bool, len(tiles))
	for _, t := range tiles {
		delete(g.layout.Soft, t)
		hit[t] = true
	}

	kept := make([]*Enemy, 0, len(g.enemies))
	killed := 0
	for _, e := range g.enemies {
		if hit[e.Tile] {
			killed++
			continue
		}
		kept = append(kept, e)
	}
	g.enemies = kept
	g.kills += killed
	g.score += killed * g.level.KillPoints

	if killed > 0 && g.level.WinKills > 0 && g.kills >= g.level.WinKills {
		g.gameOver = true
		g.won = true
		return
	}
	if hit[g.playerTile()] {
		g.gameOver = true
	}
}

func (g *Game) pruneExplosions(now int64) {
	active := g.explosions[:0]
	for _, ex := range g.explosions {
		if ex.active(now, g.cfg.Bomb.ExplosionMs) {
			active = append(active, ex)
		}
	}
	g.explosions = active
}

// updateMode alternates random and chase phases on levels that have them.
func (g *Game) updateMode(now int64) {
	if g.level.ChasePhase <= 0 {
		g.mode = ModeRandom
		return
	}
	elapsed := now - g.modeStart
	switch g.mode {
	case ModeRandom:
		if elapsed >= g.level.RandomPhase {
			g.mode = ModeChase
			g.modeStart = now
		}
	case ModeChase:
		if elapsed >= g.level.ChasePhase {
			g.mode = ModeRandom
			g.modeStart = now
		}
	}
}

// modeSecondsLeft returns whole seconds until the next phase change.
func (g *Game) modeSecondsLeft() int64 {
	phase := g.level.RandomPhase
	if g.mode == ModeChase {
		phase = g.level.ChasePhase
	}
	return max(0, (phase-(g.clock.Now()-g.modeStart))/1000)
}

// updateSpawning adds enemies over time on levels with more than one.
func (g *Game) updateSpawning(now int64) {
	maxEnemies := g.level.MaxEnemies
	if maxEnemies <= 1 || len(g.enemies) >= maxEnemies {
		return
	}
	if now-g.lastSpawn < g.spawnDelay {
		return
	}
	if e := g.spawnEnemy(now); e != nil {
		g.enemies = append(g.enemies, e)
		g.lastSpawn = now
		g.spawnDelay = g.randRange(g.cfg.Enemies.SpawnMinMs, g.cfg.Enemies.SpawnMaxMs)
	}
}

// spawnEnemy picks a random free tile away from the player.
// Returns nil when no tile was found within the attempt budget.
func (g *Game) spawnEnemy(now int64) *Enemy {
	occupied := g.occupied()
	pt := g.playerTile()
	grid := g.cfg.Grid

	for range g.cfg.Enemies.SpawnAttempts {
		p := core.Point{X: g.rng.Intn(grid.Width), Y: g.rng.Intn(grid.Height)}
		if g.blocked(p) || occupied[p] {
			continue
		}
		if p.Chebyshev(pt) <= g.cfg.Enemies.SafeRadius {
			continue
		}
		return &Enemy{
			Tile:     p,
			NextMove: now + g.randRange(g.cfg.Enemies.FirstMoveMinMs, g.cfg.Enemies.FirstMoveMaxMs),
		}
	}
	return nil
}

func (g *Game) occupied() map[core.Point]bool {
	occ := make(map[core.Point]bool, len(g.enemies))
	for _, e := range g.enemies {
		occ[e.Tile] = true
	}
	return occ
}

// updateEnemies moves every enemy whose timer is due and checks contact.
func (g *Game) updateEnemies(now int64) {
	f := field{blocked: g.blocked, occupied: g.occupied(), rng: g.rng}
	for _, e := range g.enemies {
		if now >= e.NextMove {
			switch g.mode {
			case ModeChase:
				e.NextMove = now + g.randRange(g.cfg.Enemies.ChaseMinMs, g.cfg.Enemies.ChaseMaxMs)
				f.chaseStep(e, g.playerTile())
			default:
				f.randomStep(e)
				e.NextMove = now + g.difficulty.Interval(g.level.RandomMoveMs, g.score, int(g.clock.Ticks()))
			}
		}
		if g.playerTile() == e.Tile {
			g.gameOver = true
			return
		}
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		dst.DrawOverlay("Window too small",
			fmt.Sprintf("Need %dx%d", g.cfg.Grid.Width*TileWidth, g.cfg.Grid.Height+hudHeight))
		return
	}

	if g.paused {
		dst.DrawOverlay("Paused - Press P/Esc to Resume", "B: Back to Menu")
		return
	}

	ox, oy := g.offset(dst)
	g.renderGrid(dst, ox, oy)

	if g.bomb != nil {
		dst.DrawTextColor(ox+g.bomb.Tile.X*TileWidth, oy+g.bomb.Tile.Y, "<o>", core.ColorMagenta)
	}
	for _, ex := range g.explosions {
		for _, t := range ex.Tiles {
			dst.DrawTextColor(ox+t.X*TileWidth, oy+t.Y, "***", core.ColorOrange)
		}
	}

	ts := g.cfg.Grid.TileSize
	px := ox + g.player.X*TileWidth/ts
	py := oy + (g.player.Y+ts/2)/ts
	dst.DrawTextColor(px, py, "███", core.ColorBlue)

	for _, e := range g.enemies {
		dst.DrawTextColor(ox+e.Tile.X*TileWidth, oy+e.Tile.Y, "(●)", g.enemyColor)
	}

	switch {
	case g.won:
		dst.DrawOverlay(fmt.Sprintf("You Win - Score: %d", g.score), "R: Restart  B: Back to Menu")
	case g.gameOver:
		dst.DrawOverlay("You Died", fmt.Sprintf("Score: %d", g.score), "R: Restart  B: Back to Menu")
	}
}

// offset centers the grid below the HUD.
func (g *Game) offset(dst *core.Screen) (int, int) {
	return (dst.Width() - g.cfg.Grid.Width*TileWidth) / 2, hudHeight
}

// renderHUD draws the score line and, on phased levels, the mode timer.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Bomberman  Level %d: %s  Score: %d", g.levelIndex+1, g.level.Name, g.score)
	dst.DrawText(0, 0, hud)

	if g.level.ChasePhase > 0 {
		label := "Random for"
		if g.mode == ModeChase {
			label = "Chasing for"
		}
		text := fmt.Sprintf("%s: %d ", label, g.modeSecondsLeft())
		dst.DrawTextColor(dst.Width()-len(text), 0, text, core.ColorBrightWhite)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderGrid draws border, blocks and the themed floor.
func (g *Game) renderGrid(dst *core.Screen, ox, oy int) {
	grid := g.cfg.Grid
	for y := range grid.Height {
		for x := range grid.Width {
			p := core.Point{X: x, Y: y}
			glyph, color := "░░░", g.theme
			switch {
			case g.isRigid(p):
				glyph, color = "███", core.ColorWhite
			case g.isSoft(p):
				glyph, color = "▒▒▒", core.ColorGray
			}
			dst.DrawTextColor(ox+x*TileWidth, oy+y, glyph, color)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.levelIndex + 1,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}
