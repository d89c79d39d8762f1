package bomber

import (
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/games/bomber/levels"
)

// Layout holds the destructible and indestructible blocks of a level.
// The border is not part of a layout; it is derived from the grid size.
type Layout struct {
	Rigid map[core.Point]bool
	Soft  map[core.Point]bool
}

// bounds is the inclusive playable interior of the grid.
type bounds struct {
	MinX, MinY, MaxX, MaxY int
}

func (b bounds) contains(p core.Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// newLayout keeps only interior blocks. Soft blocks never overlap rigid ones.
func newLayout(rigid, soft []core.Point, in bounds) Layout {
	l := Layout{
		Rigid: make(map[core.Point]bool),
		Soft:  make(map[core.Point]bool),
	}
	for _, p := range rigid {
		if in.contains(p) {
			l.Rigid[p] = true
		}
	}
	for _, p := range soft {
		if in.contains(p) && !l.Rigid[p] {
			l.Soft[p] = true
		}
	}
	return l
}

// builtinLayouts maps layout names to generators.
var builtinLayouts = map[string]func(bounds) Layout{
	"level1": level1Layout,
	"level2": level2Layout,
	"level3": level3Layout,
}

// BuiltinLayout returns a named built-in layout for the default 20x12 grid.
func BuiltinLayout(name string) (Layout, bool) {
	return builtinLayout(name, bounds{MinX: 2, MinY: 2, MaxX: 17, MaxY: 9})
}

func builtinLayout(name string, in bounds) (Layout, bool) {
	gen, ok := builtinLayouts[name]
	if !ok {
		return Layout{}, false
	}
	return gen(in), true
}

// fileLayout converts a custom level file into a layout.
func fileLayout(lvl levels.Level, in bounds) Layout {
	return newLayout(lvl.Rigid, lvl.Soft, in)
}

// level1Layout is a mostly open room with a few obstacles.
func level1Layout(in bounds) Layout {
	rigid := []core.Point{{X: 9, Y: 6}, {X: 12, Y: 5}}
	soft := []core.Point{
		{X: 6, Y: 3}, {X: 11, Y: 3}, {X: 6, Y: 7},
		{X: 11, Y: 7}, {X: 8, Y: 6}, {X: 10, Y: 6},
	}
	return newLayout(rigid, soft, in)
}

// level2Layout has three rigid columns; the middle one has two gaps.
func level2Layout(in bounds) Layout {
	var rigid []core.Point
	for _, col := range []int{4, 10, 15} {
		for y := 3; y < 9; y++ {
			if col == 10 && (y == 5 || y == 7) {
				continue
			}
			rigid = append(rigid, core.Point{X: col, Y: y})
		}
	}
	soft := []core.Point{
		{X: 5, Y: 3}, {X: 6, Y: 3}, {X: 7, Y: 3}, {X: 6, Y: 5}, {X: 7, Y: 5}, {X: 8, Y: 5}, {X: 5, Y: 6},
		{X: 6, Y: 6}, {X: 7, Y: 6}, {X: 8, Y: 4}, {X: 9, Y: 4}, {X: 11, Y: 4}, {X: 10, Y: 5}, {X: 12, Y: 5},
		{X: 13, Y: 5}, {X: 11, Y: 7}, {X: 12, Y: 7}, {X: 13, Y: 7}, {X: 9, Y: 8}, {X: 11, Y: 8}, {X: 16, Y: 8},
	}
	return newLayout(rigid, soft, in)
}

// level3Layout is the classic lattice: rigid blocks on even tiles and a
// checkerboard of soft blocks, with the start corner and the center cross
// left open.
func level3Layout(in bounds) Layout {
	var rigid []core.Point
	isRigid := func(x, y int) bool { return x%2 == 0 && y%2 == 0 }
	for x := in.MinX; x <= in.MaxX; x++ {
		for y := in.MinY; y <= in.MaxY; y++ {
			if isRigid(x, y) {
				rigid = append(rigid, core.Point{X: x, Y: y})
			}
		}
	}

	centerX := (in.MinX + in.MaxX) / 2
	centerY := (in.MinY + in.MaxY) / 2

	var soft []core.Point
	for x := in.MinX; x <= in.MaxX; x++ {
		for y := in.MinY; y <= in.MaxY; y++ {
			switch {
			case isRigid(x, y):
			case x <= in.MinX+2 && y <= in.MinY+2:
			case (x+2*y)%2 != 0:
			case x == centerX || y == centerY:
			case x <= in.MinX+3 && y <= in.MinY+3:
			default:
				soft = append(soft, core.Point{X: x, Y: y})
			}
		}
	}
	return newLayout(rigid, soft, in)
}
