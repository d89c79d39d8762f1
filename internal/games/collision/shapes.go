package collision

import (
	"math"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

// box is an axis-aligned rectangle in arena pixels.
type box struct {
	X, Y, W, H float64
}

// intersects reports whether two boxes overlap with positive area.
func (b box) intersects(o box) bool {
	return b.X < o.X+o.W && b.X+b.W > o.X && b.Y < o.Y+o.H && b.Y+b.H > o.Y
}

func (b box) center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// viewport maps arena pixels onto a screen region.
type viewport struct {
	offsetY int
	cols    int
	rows    int
	arenaW  float64
	arenaH  float64
}

// cell converts an arena point to a screen cell.
func (v viewport) cell(x, y float64) (int, int) {
	cx := int(math.Floor(x * float64(v.cols) / v.arenaW))
	cy := v.offsetY + int(math.Floor(y*float64(v.rows)/v.arenaH))
	return cx, cy
}

// cellRect returns the screen cells covered by b, at least one cell.
func (v viewport) cellRect(b box) core.Rect {
	x0, y0 := v.cell(b.X, b.Y)
	x1, y1 := v.cell(b.X+b.W, b.Y+b.H)
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// fillBox draws a solid rectangle.
func (v viewport) fillBox(dst *core.Screen, b box, r rune, c core.Color) {
	dst.DrawRectColor(v.cellRect(b), r, c)
}

// fillCircle draws the ellipse inscribed in b's cells.
func (v viewport) fillCircle(dst *core.Screen, b box, r rune, c core.Color) {
	rect := v.cellRect(b)
	cx := float64(rect.X) + float64(rect.W)/2
	cy := float64(rect.Y) + float64(rect.H)/2
	rx := float64(rect.W) / 2
	ry := float64(rect.H) / 2
	drawn := false
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				dst.SetColor(x, y, r, c)
				drawn = true
			}
		}
	}
	if !drawn {
		dst.SetColor(rect.X, rect.Y, r, c)
	}
}

// fillTriangle draws an upward triangle with its apex at the top center of b.
func (v viewport) fillTriangle(dst *core.Screen, b box, r rune, c core.Color) {
	rect := v.cellRect(b)
	mid := float64(rect.X) + float64(rect.W)/2
	for i := range rect.H {
		half := float64(rect.W) / 2 * float64(i+1) / float64(rect.H)
		x0 := int(math.Floor(mid - half))
		x1 := int(math.Ceil(mid + half))
		for x := x0; x < x1; x++ {
			dst.SetColor(x, rect.Y+i, r, c)
		}
	}
}
