package bomber

import (
	"math/rand"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

// EnemyMode selects how enemies pick their next tile.
type EnemyMode int

const (
	ModeRandom EnemyMode = iota // Wander to a random free neighbor
	ModeChase                   // Step toward the player
)

func (m EnemyMode) String() string {
	if m == ModeChase {
		return "chase"
	}
	return "random"
}

// Enemy is a monster that moves one tile at a time.
type Enemy struct {
	Tile     core.Point
	NextMove int64 // ms
}

// field is the part of the world an enemy needs to decide a step.
type field struct {
	blocked  func(core.Point) bool
	occupied map[core.Point]bool
	rng      *rand.Rand
}

// free reports whether e may step onto p.
func (f field) free(e *Enemy, p core.Point) bool {
	if f.blocked(p) {
		return false
	}
	return !f.occupied[p] || p == e.Tile
}

// moveTo relocates e and keeps the occupancy set current.
func (f field) moveTo(e *Enemy, p core.Point) {
	delete(f.occupied, e.Tile)
	e.Tile = p
	f.occupied[p] = true
}

// randomStep tries the four directions in random order and takes the
// first free tile. Returns false if the enemy is boxed in.
func (f field) randomStep(e *Enemy) bool {
	dirs := core.Cardinals()
	f.rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
	for _, d := range dirs {
		next := e.Tile.Add(d)
		if f.free(e, next) {
			f.moveTo(e, next)
			return true
		}
	}
	return false
}

// chaseStep moves along the axis with the larger distance to target,
// preferring vertical on ties. A blocked step falls back to the
// perpendicular axis toward the target, then to a random step.
func (f field) chaseStep(e *Enemy, target core.Point) {
	dx := target.X - e.Tile.X
	dy := target.Y - e.Tile.Y

	var step core.Dir
	if core.Abs(dx) > core.Abs(dy) {
		step.DX = sign(dx)
	} else {
		step.DY = sign(dy)
	}

	candidates := []core.Point{e.Tile.Add(step)}
	switch {
	case step.DX != 0:
		candidates = append(candidates, e.Tile.Add(core.Dir{DY: toward(dy)}))
	case step.DY != 0:
		candidates = append(candidates, e.Tile.Add(core.Dir{DX: toward(dx)}))
	}

	for _, c := range candidates {
		if f.free(e, c) {
			f.moveTo(e, c)
			return
		}
	}
	f.randomStep(e)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// toward is sign without a zero: an aligned axis picks the negative side.
func toward(v int) int {
	if v > 0 {
		return 1
	}
	return -1
}
