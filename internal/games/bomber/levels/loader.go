// Package levels loads custom Bomberman layouts from YAML files.
//
// A level file draws the grid as ASCII rows, one character per tile:
//
//	id: arena
//	name: Arena
//	rows:
//	  - "...#...+"
//
// '#' is a rigid block, '+' a soft block, '.' or ' ' an empty tile.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

// Tile glyphs accepted in level rows.
const (
	GlyphRigid = '#'
	GlyphSoft  = '+'
	GlyphEmpty = '.'
)

// Level is a parsed custom layout. Coordinates are in tiles.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Rigid    []core.Point
	Soft     []core.Point
	FilePath string
}

type fileLevel struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// Parse decodes a level file.
func Parse(data []byte) (Level, error) {
	var fl fileLevel
	if err := yaml.Unmarshal(data, &fl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if fl.ID == "" {
		return Level{}, fmt.Errorf("level id is required")
	}
	if len(fl.Rows) == 0 {
		return Level{}, fmt.Errorf("level %s has no rows", fl.ID)
	}

	lvl := Level{ID: fl.ID, Name: fl.Name, Height: len(fl.Rows)}
	if lvl.Name == "" {
		lvl.Name = fl.ID
	}

	for y, row := range fl.Rows {
		x := 0
		for _, ch := range row {
			p := core.Point{X: x, Y: y}
			switch ch {
			case GlyphRigid:
				lvl.Rigid = append(lvl.Rigid, p)
			case GlyphSoft:
				lvl.Soft = append(lvl.Soft, p)
			case GlyphEmpty, ' ':
			default:
				return Level{}, fmt.Errorf("level %s: unknown tile %q at (%d, %d)", fl.ID, ch, x, y)
			}
			x++
		}
		lvl.Width = max(lvl.Width, x)
	}

	return lvl, nil
}

// Loader reads level files from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{Root: dir}
}

// LoadAll loads every .yaml/.yml file under Root, sorted by ID.
// Files that fail to parse are skipped.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		lvl, err := l.LoadFile(path)
		if err != nil {
			return nil
		}
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	lvl.FilePath = path
	return lvl, nil
}

// LoadByID finds a level by its ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}
