package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

const sampleLevel = `id: tiny
name: Tiny
rows:
  - "#+."
  - ". #"
`

func TestParse(t *testing.T) {
	lvl, err := Parse([]byte(sampleLevel))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if lvl.Width != 3 || lvl.Height != 2 {
		t.Errorf("size = %dx%d, want 3x2", lvl.Width, lvl.Height)
	}
	wantRigid := []core.Point{{X: 0, Y: 0}, {X: 2, Y: 1}}
	if diff := cmp.Diff(wantRigid, lvl.Rigid); diff != "" {
		t.Errorf("rigid mismatch (-want +got):\n%s", diff)
	}
	wantSoft := []core.Point{{X: 1, Y: 0}}
	if diff := cmp.Diff(wantSoft, lvl.Soft); diff != "" {
		t.Errorf("soft mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing id", "rows:\n  - \"#\"\n"},
		{"no rows", "id: empty\n"},
		{"bad glyph", "id: bad\nrows:\n  - \"#x\"\n"},
		{"bad yaml", "id: [oops"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.yaml":   "id: beta\nrows:\n  - \"+\"\n",
		"a.yml":    "id: alpha\nrows:\n  - \"#\"\n",
		"bad.yaml": "id: [broken",
		"note.txt": "ignored",
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	l := NewLoader(dir)
	all, err := l.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(all) != 2 || all[0].ID != "alpha" || all[1].ID != "beta" {
		t.Fatalf("LoadAll = %+v, want alpha and beta", all)
	}

	lvl, err := l.LoadByID("beta")
	if err != nil {
		t.Fatalf("LoadByID: %v", err)
	}
	if lvl.Name != "beta" {
		t.Errorf("Name = %q, want id fallback %q", lvl.Name, "beta")
	}
	if _, err := l.LoadByID("gamma"); err == nil {
		t.Error("expected error for unknown level")
	}
}
