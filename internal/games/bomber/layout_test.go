package bomber

import (
	"testing"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

func TestBuiltinLayouts(t *testing.T) {
	tests := []struct {
		name      string
		wantRigid int
		wantSoft  int
	}{
		{"level1", 2, 6},
		{"level2", 16, 21},
		{"level3", 32, 22},
	}

	in := bounds{MinX: 2, MinY: 2, MaxX: 17, MaxY: 9}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, ok := BuiltinLayout(tt.name)
			if !ok {
				t.Fatalf("layout %s not found", tt.name)
			}
			if len(l.Rigid) != tt.wantRigid {
				t.Errorf("rigid = %d, want %d", len(l.Rigid), tt.wantRigid)
			}
			if len(l.Soft) != tt.wantSoft {
				t.Errorf("soft = %d, want %d", len(l.Soft), tt.wantSoft)
			}
			for p := range l.Soft {
				if l.Rigid[p] {
					t.Errorf("soft block overlaps rigid at %v", p)
				}
				if !in.contains(p) {
					t.Errorf("soft block outside interior at %v", p)
				}
			}
			for p := range l.Rigid {
				if !in.contains(p) {
					t.Errorf("rigid block outside interior at %v", p)
				}
			}
		})
	}
}

func TestLevel1Exact(t *testing.T) {
	l, _ := BuiltinLayout("level1")
	for _, p := range []core.Point{{X: 9, Y: 6}, {X: 12, Y: 5}} {
		if !l.Rigid[p] {
			t.Errorf("expected rigid at %v", p)
		}
	}
	for _, p := range []core.Point{{X: 6, Y: 3}, {X: 11, Y: 3}, {X: 6, Y: 7}, {X: 11, Y: 7}, {X: 8, Y: 6}, {X: 10, Y: 6}} {
		if !l.Soft[p] {
			t.Errorf("expected soft at %v", p)
		}
	}
}

func TestLevel2ColumnGaps(t *testing.T) {
	l, _ := BuiltinLayout("level2")
	for y := 3; y < 9; y++ {
		gap := y == 5 || y == 7
		if got := l.Rigid[core.Point{X: 10, Y: y}]; got == gap {
			t.Errorf("column 10 at y=%d rigid=%v, want %v", y, got, !gap)
		}
		if !l.Rigid[core.Point{X: 4, Y: y}] || !l.Rigid[core.Point{X: 15, Y: y}] {
			t.Errorf("columns 4 and 15 should be rigid at y=%d", y)
		}
	}
}

func TestLevel3ClearPaths(t *testing.T) {
	l, _ := BuiltinLayout("level3")
	for p := range l.Soft {
		if p.X == 9 || p.Y == 5 {
			t.Errorf("soft block on the center cross at %v", p)
		}
		if p.X <= 5 && p.Y <= 5 {
			t.Errorf("soft block in the start area at %v", p)
		}
	}
	for p := range l.Rigid {
		if p.X%2 != 0 || p.Y%2 != 0 {
			t.Errorf("rigid block on odd tile %v", p)
		}
	}
}

func TestUnknownLayout(t *testing.T) {
	if _, ok := BuiltinLayout("level9"); ok {
		t.Error("expected level9 to be unknown")
	}
}

func TestBlastTiles(t *testing.T) {
	rigid := map[core.Point]bool{{X: 6, Y: 5}: true, {X: 5, Y: 3}: true}
	soft := map[core.Point]bool{{X: 4, Y: 5}: true, {X: 3, Y: 5}: true}

	got := blastTiles(core.Point{X: 5, Y: 5}, 2,
		func(p core.Point) bool { return rigid[p] },
		func(p core.Point) bool { return soft[p] })

	// Right is rigid at once, left stops on the first soft block,
	// down runs the full radius, up stops before rigid.
	want := []core.Point{
		{X: 5, Y: 5},
		{X: 4, Y: 5},
		{X: 5, Y: 6}, {X: 5, Y: 7},
		{X: 5, Y: 4},
	}
	if len(got) != len(want) {
		t.Fatalf("blastTiles = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tile %d = %v, want %v", i, got[i], want[i])
		}
	}
}
