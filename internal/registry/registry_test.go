package registry

import (
	"testing"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                        { return g.id }
func (g *stubGame) Title() string                     { return "Stub " + g.id }
func (g *stubGame) Description() string               { return "a stub" }
func (g *stubGame) Reset(core.RuntimeConfig)          {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)               {}
func (g *stubGame) State() core.GameState             { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a"} })
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b"} })

	if !Exists("zz_stub_a") {
		t.Fatal("registered game should exist")
	}
	if Exists("zz_missing") {
		t.Error("unregistered game should not exist")
	}

	g, err := Create("zz_stub_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub_b" {
		t.Errorf("Create() returned game %q", g.ID())
	}

	if _, err := Create("zz_missing"); err == nil {
		t.Error("Create() of unknown game should fail")
	}

	var idxA, idxB = -1, -1
	for i, info := range List() {
		switch info.ID {
		case "zz_stub_a":
			idxA = i
			if info.Title != "Stub zz_stub_a" || info.Description != "a stub" {
				t.Errorf("unexpected info %+v", info)
			}
		case "zz_stub_b":
			idxB = i
		}
	}
	if idxA < 0 || idxB < 0 || idxA > idxB {
		t.Errorf("List() should contain both stubs sorted by ID, got positions %d, %d", idxA, idxB)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_stub_dup", func() Game { return &stubGame{id: "zz_stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_stub_dup", func() Game { return &stubGame{id: "zz_stub_dup"} })
}
