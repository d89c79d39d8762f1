package bomber

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

func newTestGame(t *testing.T, level int, seed int64) *Game {
	t.Helper()
	g := New()
	g.SelectLevel(level)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

// quiet removes enemies and stops spawning so tests control the board.
func quiet(g *Game) {
	g.enemies = nil
	g.level.MaxEnemies = 0
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func stepN(g *Game, n int) {
	for range n {
		g.Step(core.NewInputFrame())
	}
}

func tileToPixels(g *Game, x, y int) core.Point {
	ts := g.cfg.Grid.TileSize
	return core.Point{X: x * ts, Y: y * ts}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, 3, 12345)
		for i := range 900 {
			var in core.InputFrame
			switch {
			case i == 10:
				in = press(core.ActionRight)
			case i == 40:
				in = press(core.ActionFire)
			case i == 60:
				in = press(core.ActionDown)
			default:
				in = core.NewInputFrame()
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("snapshots differ (-run1 +run2):\n%s", diff)
	}
}

func TestInitialState(t *testing.T) {
	g := newTestGame(t, 1, 1)

	if got := g.playerTile(); got != (core.Point{X: 2, Y: 2}) {
		t.Errorf("player tile = %v, want (2,2)", got)
	}
	if len(g.enemies) != 1 {
		t.Errorf("enemies = %d, want 1", len(g.enemies))
	}
	st := g.State()
	if st.Level != 1 || st.GameOver || st.Score != 0 {
		t.Errorf("unexpected initial state %+v", st)
	}
}

func TestMovementInterpolation(t *testing.T) {
	g := newTestGame(t, 1, 1)
	quiet(g)

	g.Step(press(core.ActionRight)) // now = 16ms, move starts
	if !g.moving {
		t.Fatal("expected player to be moving")
	}

	stepN(g, 3)
	g.Step(press(core.ActionDown)) // Ignored while moving
	stepN(g, 8)                    // Tick 13

	if g.player.X <= 100 || g.player.X >= 150 {
		t.Errorf("mid-move X = %d, want strictly between 100 and 150", g.player.X)
	}

	stepN(g, 15) // Tick 28, now = 466ms
	if g.moving {
		t.Error("move should be finished after 450ms")
	}
	if g.player != (core.Point{X: 150, Y: 100}) {
		t.Errorf("player = %v, want snapped to (150,100)", g.player)
	}
}

func TestMovementBlocked(t *testing.T) {
	g := newTestGame(t, 1, 1)
	quiet(g)

	// Start tile (2,2) touches the border above and to the left
	g.Step(press(core.ActionLeft))
	g.Step(press(core.ActionUp))
	if g.moving || g.playerTile() != (core.Point{X: 2, Y: 2}) {
		t.Errorf("player moved into the border: tile %v moving %v", g.playerTile(), g.moving)
	}

	// Soft blocks also stop the player
	g.player = tileToPixels(g, 5, 3)
	g.Step(press(core.ActionRight)) // (6,3) is soft on level 1
	if g.moving {
		t.Error("player should not walk into a soft block")
	}
}

func TestBombKillsEnemyAndWins(t *testing.T) {
	g := newTestGame(t, 1, 7)
	quiet(g)
	g.enemies = []*Enemy{{Tile: core.Point{X: 4, Y: 2}, NextMove: 1 << 40}}

	g.Step(press(core.ActionFire))
	if g.bomb == nil || g.bomb.Tile != (core.Point{X: 2, Y: 2}) {
		t.Fatalf("bomb = %+v, want at (2,2)", g.bomb)
	}

	// Only one bomb at a time
	g.Step(press(core.ActionFire))
	g.player = tileToPixels(g, 5, 3) // Out of the blast

	for range 200 {
		if g.Step(core.NewInputFrame()).State.GameOver {
			break
		}
	}

	st := g.State()
	if !st.GameOver || !st.Won {
		t.Fatalf("state = %+v, want won", st)
	}
	if st.Score != 100 {
		t.Errorf("score = %d, want 100", st.Score)
	}
	if len(g.enemies) != 0 {
		t.Errorf("enemies = %d, want 0", len(g.enemies))
	}
}

func TestBombDestroysSoftBlocks(t *testing.T) {
	g := newTestGame(t, 1, 3)
	quiet(g)
	g.player = tileToPixels(g, 6, 5)

	g.Step(press(core.ActionFire))
	g.player = tileToPixels(g, 2, 2)

	// Fuse is 2500ms: the bomb is still armed at tick 150 and gone at 151
	stepN(g, 149)
	if g.bomb == nil {
		t.Fatal("bomb exploded early")
	}
	g.Step(core.NewInputFrame())
	if g.bomb != nil {
		t.Fatal("bomb should have exploded")
	}

	if g.layout.Soft[core.Point{X: 6, Y: 3}] || g.layout.Soft[core.Point{X: 6, Y: 7}] {
		t.Error("soft blocks in the blast should be destroyed")
	}
	if !g.layout.Soft[core.Point{X: 8, Y: 6}] {
		t.Error("soft block outside the blast should remain")
	}
	if len(g.explosions) != 1 {
		t.Errorf("explosions = %d, want 1", len(g.explosions))
	}
	if g.State().GameOver {
		t.Error("player out of the blast should survive")
	}

	// The blast disappears after 500ms
	stepN(g, 31)
	if len(g.explosions) != 0 {
		t.Errorf("explosions = %d after 500ms, want 0", len(g.explosions))
	}
}

func TestBlastKillsPlayer(t *testing.T) {
	g := newTestGame(t, 2, 5)
	quiet(g)

	g.Step(press(core.ActionFire))
	for range 200 {
		if g.Step(core.NewInputFrame()).State.GameOver {
			break
		}
	}

	st := g.State()
	if !st.GameOver || st.Won {
		t.Errorf("state = %+v, want dead", st)
	}
	if g.Snapshot().State != StateDead {
		t.Errorf("snapshot state = %s, want %s", g.Snapshot().State, StateDead)
	}
}

func TestEnemyContactKills(t *testing.T) {
	g := newTestGame(t, 3, 9)
	quiet(g)
	g.player = tileToPixels(g, 3, 2)
	g.mode = ModeChase
	g.enemies = []*Enemy{{Tile: core.Point{X: 3, Y: 3}}}

	g.Step(core.NewInputFrame())

	if g.enemies[0].Tile != (core.Point{X: 3, Y: 2}) {
		t.Errorf("enemy tile = %v, want (3,2)", g.enemies[0].Tile)
	}
	if !g.State().GameOver {
		t.Error("touching an enemy should end the game")
	}
}

func TestEnemySpawnSafety(t *testing.T) {
	g := newTestGame(t, 3, 1)

	for seed := int64(0); seed < 200; seed++ {
		g.rng = rand.New(rand.NewSource(seed))
		e := g.spawnEnemy(0)
		if e == nil {
			t.Fatalf("seed %d: no spawn found", seed)
		}
		if g.blocked(e.Tile) {
			t.Errorf("seed %d: spawned on blocked tile %v", seed, e.Tile)
		}
		if e.Tile.Chebyshev(g.playerTile()) <= 3 {
			t.Errorf("seed %d: spawned too close to the player at %v", seed, e.Tile)
		}
		for _, other := range g.enemies {
			if other.Tile == e.Tile {
				t.Errorf("seed %d: spawned on another enemy at %v", seed, e.Tile)
			}
		}
		if e.NextMove < 700 || e.NextMove > 1200 {
			t.Errorf("seed %d: first move at %dms, want 700-1200", seed, e.NextMove)
		}
	}
}

func TestEnemySpawningOverTime(t *testing.T) {
	g := newTestGame(t, 2, 11)
	g.enemies = nil
	stepN(g, 60*25)

	if n := len(g.enemies); n < 1 || n > 3 {
		t.Errorf("enemies after 25s = %d, want between 1 and 3", n)
	}
}

func TestChaseStep(t *testing.T) {
	tests := []struct {
		name    string
		blocked []core.Point
		target  core.Point
		want    core.Point
	}{
		{"larger horizontal delta", nil, core.Point{X: 8, Y: 6}, core.Point{X: 6, Y: 5}},
		{"tie prefers vertical", nil, core.Point{X: 7, Y: 7}, core.Point{X: 5, Y: 6}},
		{"blocked falls back to perpendicular", []core.Point{{X: 6, Y: 5}}, core.Point{X: 8, Y: 6}, core.Point{X: 5, Y: 6}},
		{"aligned axis falls back upward", []core.Point{{X: 6, Y: 5}}, core.Point{X: 8, Y: 5}, core.Point{X: 5, Y: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocked := make(map[core.Point]bool)
			for _, p := range tt.blocked {
				blocked[p] = true
			}
			e := &Enemy{Tile: core.Point{X: 5, Y: 5}}
			f := field{
				blocked:  func(p core.Point) bool { return blocked[p] },
				occupied: map[core.Point]bool{e.Tile: true},
				rng:      rand.New(rand.NewSource(1)),
			}

			f.chaseStep(e, tt.target)

			if e.Tile != tt.want {
				t.Errorf("enemy moved to %v, want %v", e.Tile, tt.want)
			}
			if !f.occupied[tt.want] || f.occupied[core.Point{X: 5, Y: 5}] {
				t.Errorf("occupancy not updated: %v", f.occupied)
			}
		})
	}
}

func TestRandomStepAvoidsOthers(t *testing.T) {
	start := core.Point{X: 5, Y: 5}
	open := core.Point{X: 6, Y: 5}
	e := &Enemy{Tile: start}
	f := field{
		blocked: func(p core.Point) bool {
			return p != start && p != open
		},
		occupied: map[core.Point]bool{start: true, open: true},
		rng:      rand.New(rand.NewSource(1)),
	}

	if f.randomStep(e) {
		t.Fatalf("enemy moved onto an occupied tile %v", e.Tile)
	}

	delete(f.occupied, open)
	if !f.randomStep(e) || e.Tile != open {
		t.Errorf("enemy at %v, want %v", e.Tile, open)
	}
}

func TestLevel3ModeCycle(t *testing.T) {
	g := newTestGame(t, 3, 2)
	quiet(g)

	stepN(g, 1799) // 29983ms
	if g.mode != ModeRandom {
		t.Fatalf("mode = %s before 30s, want random", g.mode)
	}
	stepN(g, 1)
	if g.mode != ModeChase {
		t.Fatalf("mode = %s at 30s, want chase", g.mode)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if row := screen.Row(0); !strings.Contains(row, "Chasing for: 10") {
		t.Errorf("HUD %q does not show the chase timer", row)
	}

	stepN(g, 600)
	if g.mode != ModeRandom {
		t.Errorf("mode = %s after 10s of chase, want random", g.mode)
	}
}

func TestOtherLevelsNeverChase(t *testing.T) {
	g := newTestGame(t, 2, 2)
	quiet(g)
	stepN(g, 60*35)
	if g.mode != ModeRandom {
		t.Errorf("mode = %s on level 2, want random", g.mode)
	}
}

func TestPauseFreezes(t *testing.T) {
	g := newTestGame(t, 1, 4)
	stepN(g, 5)

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	before := g.Snapshot()
	stepN(g, 120)
	if diff := cmp.Diff(before, g.Snapshot()); diff != "" {
		t.Errorf("state changed while paused (-before +after):\n%s", diff)
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("expected unpaused")
	}
}

func TestRestartKeepsLevel(t *testing.T) {
	g := newTestGame(t, 2, 6)
	g.score = 300
	g.gameOver = true

	g.Step(press(core.ActionRestart))

	st := g.State()
	if st.GameOver || st.Score != 0 {
		t.Errorf("state after restart = %+v", st)
	}
	if st.Level != 2 {
		t.Errorf("level after restart = %d, want 2", st.Level)
	}
}

func TestRenderGrid(t *testing.T) {
	g := newTestGame(t, 1, 1)
	quiet(g)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Grid is 60 columns wide, centered: offset 10, below a 2-line HUD
	if c := screen.GetCell(10, 2); c.Rune != '█' || c.Color != core.ColorWhite {
		t.Errorf("border cell = %+v, want white block", c)
	}
	if c := screen.GetCell(16, 4); c.Color != core.ColorBlue {
		t.Errorf("player cell = %+v, want blue", c)
	}
	if c := screen.GetCell(19, 4); c.Color != core.ColorRed {
		t.Errorf("floor cell = %+v, want red theme", c)
	}
	if !strings.Contains(screen.Row(0), "Red Room") {
		t.Errorf("HUD %q missing level name", screen.Row(0))
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})

	g.Step(press(core.ActionRight))
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("state = %s, want %s", g.Snapshot().State, StatePausedSmall)
	}
	if g.moving {
		t.Error("game should not simulate on a small screen")
	}
}

func TestCustomLevelsDir(t *testing.T) {
	dir := t.TempDir()
	rows := make([]string, 12)
	for y := range rows {
		rows[y] = strings.Repeat(".", 20)
	}
	rows[5] = "....." + "#" + strings.Repeat(".", 14)
	rows[6] = "......" + "+" + strings.Repeat(".", 13)
	data := "id: arena\nname: Arena\nrows:\n"
	for _, r := range rows {
		data += "  - \"" + r + "\"\n"
	}
	if err := os.WriteFile(filepath.Join(dir, "arena.yaml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	SetLevelsDir(dir)
	t.Cleanup(func() { SetLevelsDir("") })

	names := LevelNames()
	if len(names) != 4 || names[3] != "Arena" {
		t.Fatalf("LevelNames() = %v, want 3 built-ins plus Arena", names)
	}

	g := newTestGame(t, 4, 1)
	if !g.layout.Rigid[core.Point{X: 5, Y: 5}] || !g.layout.Soft[core.Point{X: 6, Y: 6}] {
		t.Errorf("custom layout not loaded: rigid=%v soft=%v", g.layout.Rigid, g.layout.Soft)
	}
	if g.level.Name != "Arena" {
		t.Errorf("level name = %q, want Arena", g.level.Name)
	}
}

func TestSelectLevelPerInstance(t *testing.T) {
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}

	picked := New()
	picked.SelectLevel(3)
	picked.Reset(rt)
	other := New()
	other.Reset(rt)

	if got := picked.State().Level; got != 3 {
		t.Errorf("selected game level = %d, want 3", got)
	}
	if got := other.State().Level; got != 1 {
		t.Errorf("other game level = %d, want 1", got)
	}

	// A later Reset without a new selection stays on the level
	picked.Reset(rt)
	if got := picked.State().Level; got != 3 {
		t.Errorf("level after second reset = %d, want 3", got)
	}
	picked.SelectLevel(99)
	picked.Reset(rt)
	if got := picked.State().Level; got != 3 {
		t.Errorf("out of range selection moved level to %d", got)
	}
}

func TestConcurrentResets(t *testing.T) {
	done := make(chan int, 32)
	for i := range 32 {
		go func(level int) {
			g := New()
			g.SelectLevel(level)
			g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: int64(level)})
			g.gameOver = true
			g.Step(press(core.ActionRestart))
			done <- g.State().Level - level
		}(i%3 + 1)
	}
	for range 32 {
		if diff := <-done; diff != 0 {
			t.Errorf("game started %d levels away from its selection", diff)
		}
	}
}

func TestRandomMoveCadence(t *testing.T) {
	tests := []struct {
		level int
		want  int64
	}{
		{1, 3000},
		{2, 2800},
		{3, 2500},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("level %d", tt.level), func(t *testing.T) {
			g := newTestGame(t, tt.level, 11)
			quiet(g)
			// Scoring must not speed enemies up without a difficulty preset
			g.score = 1000
			e := &Enemy{Tile: core.Point{X: 17, Y: 9}}
			g.enemies = []*Enemy{e}

			g.Step(core.NewInputFrame())

			if g.mode != ModeRandom {
				t.Fatalf("mode = %s, want random", g.mode)
			}
			if got := e.NextMove - g.clock.Now(); got != tt.want {
				t.Errorf("next random move in %dms, want %dms", got, tt.want)
			}
		})
	}
}

func TestChaseMoveCadence(t *testing.T) {
	for level := 1; level <= 3; level++ {
		t.Run(fmt.Sprintf("level %d", level), func(t *testing.T) {
			g := newTestGame(t, level, int64(level))
			quiet(g)
			g.mode = ModeChase
			e := &Enemy{}
			g.enemies = []*Enemy{e}

			const now = 1000
			for range 50 {
				e.Tile = core.Point{X: 17, Y: 9}
				e.NextMove = 0
				g.updateEnemies(now)
				if got := e.NextMove - now; got < 1200 || got > 1400 {
					t.Fatalf("next chase move in %dms, want 1200-1400ms", got)
				}
			}
		})
	}
}

func TestLevel3KillScore(t *testing.T) {
	g := newTestGame(t, 3, 8)
	quiet(g)
	g.enemies = []*Enemy{{Tile: core.Point{X: 3, Y: 2}, NextMove: 1 << 40}}

	g.Step(press(core.ActionFire))
	g.player = tileToPixels(g, 3, 3) // Off both blast rays
	stepN(g, 160)

	if len(g.enemies) != 0 {
		t.Fatalf("enemies = %d, want the blasted enemy gone", len(g.enemies))
	}
	st := g.State()
	if st.Score != 150 {
		t.Errorf("score = %d, want 150", st.Score)
	}
	if st.GameOver {
		t.Error("level 3 is survival: a kill must not end the game")
	}
}
