package collision

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

var offscreen = box{X: -1000, Y: -1000, W: 1, H: 1}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	g.Step(press(core.ActionConfirm))
	return g
}

// clearArena moves every target and hazard out of reach.
func clearArena(g *Game) {
	g.blue, g.green, g.red, g.snitch = offscreen, offscreen, offscreen, offscreen
	g.black, g.lightBlue = offscreen, offscreen
}

// onPlayer returns a box overlapping the player.
func onPlayer(g *Game) box {
	return box{X: g.player.X + 5, Y: g.player.Y + 5, W: 10, H: 10}
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

func TestStartScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	stepN(g, 30)
	if s := g.Snapshot(); s.State != StateStart || s.Tick != 0 {
		t.Fatalf("snapshot = %+v, want start screen with clock stopped", s)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Hit the circles for rewards!") {
		t.Error("start screen missing instructions")
	}

	g.Step(press(core.ActionFire))
	if g.Snapshot().State != StatePlaying {
		t.Errorf("state = %s after Fire, want playing", g.Snapshot().State)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, 99)
		for i := range 400 {
			in := core.NewInputFrame()
			switch (i / 20) % 4 {
			case 0:
				in.Set(core.ActionRight)
			case 1:
				in.Set(core.ActionDown)
			case 2:
				in.Set(core.ActionLeft)
			case 3:
				in.Set(core.ActionUp)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("snapshots differ (-run1 +run2):\n%s", diff)
	}
}

func TestHeldMovement(t *testing.T) {
	g := newTestGame(t, 1)
	clearArena(g)
	startX := g.player.X

	g.Step(press(core.ActionRight))
	stepN(g, 20)

	moved := g.player.X - startX
	want := g.cfg.Player.Speed * float64(g.cfg.Player.HoldTicks)
	if moved != want {
		t.Errorf("moved %v px, want %v (speed x hold ticks)", moved, want)
	}
}

func TestMovementClamped(t *testing.T) {
	g := newTestGame(t, 1)
	clearArena(g)
	g.player.X = 0
	g.player.Y = float64(g.cfg.Arena.Height) - g.player.H

	g.Step(press(core.ActionLeft, core.ActionDown))
	stepN(g, 10)

	if g.player.X != 0 {
		t.Errorf("X = %v, want clamped to 0", g.player.X)
	}
	if want := float64(g.cfg.Arena.Height) - g.player.H; g.player.Y != want {
		t.Errorf("Y = %v, want clamped to %v", g.player.Y, want)
	}
}

func TestRewards(t *testing.T) {
	g := newTestGame(t, 3)
	clearArena(g)

	g.blue = onPlayer(g)
	g.Step(core.NewInputFrame())
	if g.score != 1 {
		t.Errorf("score after blue = %d, want 1", g.score)
	}
	if g.blue.W != float64(2*g.cfg.Targets.Radius) {
		t.Error("blue circle should respawn at full size")
	}

	g.blue = offscreen
	g.green = onPlayer(g)
	g.Step(core.NewInputFrame())
	if g.score != 3 {
		t.Errorf("score after green = %d, want 3", g.score)
	}

	g.green = offscreen
	before := g.duration
	g.red = onPlayer(g)
	g.Step(core.NewInputFrame())
	if g.duration != before+g.cfg.Timer.BonusSeconds {
		t.Errorf("duration = %v, want %v", g.duration, before+g.cfg.Timer.BonusSeconds)
	}
}

func TestSnitchOnlyWithTimeToSpare(t *testing.T) {
	g := newTestGame(t, 4)
	clearArena(g)

	// 10s on the clock: the snitch is not catchable
	g.snitch = onPlayer(g)
	g.Step(core.NewInputFrame())
	if g.score != 0 || g.catchesLeft != 3 {
		t.Fatalf("snitch caught with little time left: score %d, catches %d", g.score, g.catchesLeft)
	}

	g.duration = 20
	g.Step(core.NewInputFrame())
	if g.score != 150 || g.catchesLeft != 2 {
		t.Errorf("score %d catches %d, want 150 and 2", g.score, g.catchesLeft)
	}
}

func TestSnitchCatchesWin(t *testing.T) {
	g := newTestGame(t, 5)
	clearArena(g)
	g.duration = 20
	g.catchesLeft = 1
	g.snitch = onPlayer(g)

	g.Step(core.NewInputFrame())

	st := g.State()
	if !st.GameOver || !st.Won {
		t.Fatalf("state = %+v, want won", st)
	}
	if msg := g.endMessage(); msg != "This gets a boom" {
		t.Errorf("endMessage = %q", msg)
	}
}

func TestSnitchHoming(t *testing.T) {
	g := newTestGame(t, 6)
	clearArena(g)
	g.duration = 40
	g.snitch = box{X: 0, Y: 0, W: 40, H: 40}

	dist := func() float64 {
		sx, sy := g.snitch.center()
		px, py := g.player.center()
		return (px-sx)*(px-sx) + (py-sy)*(py-sy)
	}
	before := dist()
	stepN(g, 10)
	if dist() >= before {
		t.Error("snitch should move toward the player while time is plentiful")
	}

	g.duration = 10
	g.snitch = box{X: 0, Y: 0, W: 40, H: 40}
	stepN(g, 10)
	if g.snitch.X != 0 || g.snitch.Y != 0 {
		t.Errorf("snitch moved to (%v,%v) with little time left", g.snitch.X, g.snitch.Y)
	}
}

func TestHazards(t *testing.T) {
	g := newTestGame(t, 7)
	clearArena(g)

	g.lightBlue = onPlayer(g)
	g.Step(core.NewInputFrame())
	if g.health != 20 {
		t.Errorf("health = %d, want 20", g.health)
	}
	if g.player.intersects(g.lightBlue) && g.lightBlue == onPlayer(g) {
		t.Error("light blue triangle should relocate after a hit")
	}

	g.lightBlue = offscreen
	g.black = onPlayer(g)
	g.Step(core.NewInputFrame())
	if !g.State().GameOver || g.State().Won {
		t.Errorf("state = %+v, want game over", g.State())
	}
	if msg := g.endMessage(); msg != "Game Over, you suck" {
		t.Errorf("endMessage = %q", msg)
	}
}

func TestHealthDepleted(t *testing.T) {
	g := newTestGame(t, 8)
	clearArena(g)
	g.health = 5
	g.lightBlue = onPlayer(g)

	g.Step(core.NewInputFrame())

	if !g.State().GameOver {
		t.Error("health 0 should end the game")
	}
}

func TestTimerRunsOut(t *testing.T) {
	g := newTestGame(t, 9)
	clearArena(g)

	stepN(g, 599)
	if g.State().GameOver {
		t.Fatal("game ended before 10s")
	}
	stepN(g, 1)
	if !g.State().GameOver {
		t.Error("game should end when the clock hits 0")
	}
}

func TestEndMessages(t *testing.T) {
	tests := []struct {
		score int
		won   bool
		want  string
	}{
		{600, true, "Almost as good as me"},
		{450, true, "This gets a boom"},
		{20, false, "Game Over, you suck"},
		{21, false, "Game Over, you still suck"},
	}
	g := newTestGame(t, 1)
	for _, tt := range tests {
		g.score, g.won = tt.score, tt.won
		if got := g.endMessage(); got != tt.want {
			t.Errorf("endMessage(score=%d, won=%v) = %q, want %q", tt.score, tt.won, got, tt.want)
		}
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t, 10)
	g.score = 42
	g.gameOver = true

	g.Step(press(core.ActionRestart))

	s := g.Snapshot()
	if s.State != StatePlaying || s.Score != 0 || s.Tick != 0 {
		t.Errorf("snapshot after restart = %+v", s)
	}
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t, 11)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	row := screen.Row(0)
	for _, want := range []string{"Score: 0", "Time Left: 10", "Health: 25"} {
		if !strings.Contains(row, want) {
			t.Errorf("HUD %q missing %q", row, want)
		}
	}
}
