package maze

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

func TestGeneratePerfectMaze(t *testing.T) {
	sizes := []struct{ w, h int }{{5, 5}, {21, 15}, {39, 29}, {40, 30}}

	for _, sz := range sizes {
		for seed := int64(0); seed < 20; seed++ {
			m := Generate(sz.w, sz.h, rand.New(rand.NewSource(seed)))

			if m.W%2 == 0 || m.H%2 == 0 {
				t.Fatalf("maze size %dx%d is not odd", m.W, m.H)
			}

			// Outer ring is solid
			for x := range m.W {
				if m.Open(core.Point{X: x, Y: 0}) || m.Open(core.Point{X: x, Y: m.H - 1}) {
					t.Fatalf("open border at column %d", x)
				}
			}
			for y := range m.H {
				if m.Open(core.Point{X: 0, Y: y}) || m.Open(core.Point{X: m.W - 1, Y: y}) {
					t.Fatalf("open border at row %d", y)
				}
			}

			// A spanning tree over the rooms: rooms + (rooms - 1) corridors
			rooms := ((m.W - 1) / 2) * ((m.H - 1) / 2)
			open := m.OpenCells()
			if len(open) != 2*rooms-1 {
				t.Errorf("%dx%d seed %d: %d open cells, want %d", m.W, m.H, seed, len(open), 2*rooms-1)
			}

			if reached := reachable(m, core.Point{X: 1, Y: 1}); reached != len(open) {
				t.Errorf("%dx%d seed %d: reached %d of %d open cells", m.W, m.H, seed, reached, len(open))
			}
			if m.Wall(m.Exit()) {
				t.Errorf("exit %v is a wall", m.Exit())
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(21, 15, rand.New(rand.NewSource(7)))
	b := Generate(21, 15, rand.New(rand.NewSource(7)))
	for i := range a.walls {
		if a.walls[i] != b.walls[i] {
			t.Fatalf("mazes differ at index %d", i)
		}
	}
}

func reachable(m *Maze, from core.Point) int {
	seen := map[core.Point]bool{from: true}
	queue := []core.Point{from}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range core.Cardinals() {
			n := p.Add(d)
			if m.Open(n) && !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(seen)
}
