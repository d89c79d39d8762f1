package bomber

import "github.com/vovakirdan/tile-arcade/internal/core"

// Bomb is a placed bomb waiting for its fuse.
type Bomb struct {
	Tile     core.Point
	PlacedAt int64 // ms
}

// Explosion is a drawn blast that fades after its duration.
type Explosion struct {
	Tiles     []core.Point
	StartedAt int64 // ms
}

// active reports whether the explosion is still visible at now.
func (e Explosion) active(now, durationMs int64) bool {
	return now-e.StartedAt < durationMs
}

// blastTiles computes the tiles hit by a bomb at center.
// Each ray stops before a rigid tile and stops on (including) a soft tile.
func blastTiles(center core.Point, radius int, isRigid, isSoft func(core.Point) bool) []core.Point {
	tiles := []core.Point{center}
	for _, d := range core.Cardinals() {
		p := center
		for range radius {
			p = p.Add(d)
			if isRigid(p) {
				break
			}
			tiles = append(tiles, p)
			if isSoft(p) {
				break
			}
		}
	}
	return tiles
}
