package maze

import (
	"math/rand"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

// Maze is a grid of walls and open cells. Width and height are odd so that
// open "rooms" sit on odd coordinates and walls on the even lines between.
type Maze struct {
	W, H  int
	walls []bool
}

// Wall reports whether p is a wall. Cells outside the maze are walls.
func (m *Maze) Wall(p core.Point) bool {
	if p.X < 0 || p.X >= m.W || p.Y < 0 || p.Y >= m.H {
		return true
	}
	return m.walls[p.Y*m.W+p.X]
}

// Open reports whether p can be walked on.
func (m *Maze) Open(p core.Point) bool {
	return !m.Wall(p)
}

func (m *Maze) carve(p core.Point) {
	m.walls[p.Y*m.W+p.X] = false
}

// OpenCells returns every open cell in row-major order.
func (m *Maze) OpenCells() []core.Point {
	var cells []core.Point
	for y := range m.H {
		for x := range m.W {
			if p := (core.Point{X: x, Y: y}); m.Open(p) {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// Generate carves a perfect maze with a randomized depth-first search
// starting at (1,1). Even dimensions are shrunk by one.
func Generate(w, h int, rng *rand.Rand) *Maze {
	if w%2 == 0 {
		w--
	}
	if h%2 == 0 {
		h--
	}
	m := &Maze{W: w, H: h, walls: make([]bool, w*h)}
	for i := range m.walls {
		m.walls[i] = true
	}

	start := core.Point{X: 1, Y: 1}
	m.carve(start)
	stack := []core.Point{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var next []core.Dir
		for _, d := range core.Cardinals() {
			n := core.Point{X: cur.X + 2*d.DX, Y: cur.Y + 2*d.DY}
			if n.X > 0 && n.X < w-1 && n.Y > 0 && n.Y < h-1 && m.Wall(n) {
				next = append(next, d)
			}
		}
		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := next[rng.Intn(len(next))]
		m.carve(cur.Add(d))
		n := core.Point{X: cur.X + 2*d.DX, Y: cur.Y + 2*d.DY}
		m.carve(n)
		stack = append(stack, n)
	}

	return m
}

// Exit returns the bottom-right room, always reachable from the start.
func (m *Maze) Exit() core.Point {
	return core.Point{X: m.W - 2, Y: m.H - 2}
}
