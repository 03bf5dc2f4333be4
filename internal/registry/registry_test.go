package registry

import (
	"context"
	"testing"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/game"
)

type stubFrontend struct {
	name string
}

func (s stubFrontend) Name() string                             { return s.name }
func (s stubFrontend) Description() string                      { return "stub " + s.name }
func (s stubFrontend) Run(ctx context.Context, _ Options) error { return ctx.Err() }

func TestRegisterCreateList(t *testing.T) {
	Register("test-b", func() Frontend { return stubFrontend{name: "test-b"} })
	Register("test-a", func() Frontend { return stubFrontend{name: "test-a"} })

	if !Exists("test-a") || !Exists("test-b") {
		t.Fatal("registered frontends should exist")
	}
	if Exists("test-missing") {
		t.Error("Exists() should be false for unknown names")
	}

	f, err := Create("test-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if f.Name() != "test-a" {
		t.Errorf("Name() = %q, expected test-a", f.Name())
	}

	if _, err := Create("test-missing"); err == nil {
		t.Error("Create() should fail for unknown names")
	}

	list := List()
	var names []string
	for _, info := range list {
		if info.Name == "test-a" || info.Name == "test-b" {
			names = append(names, info.Name)
		}
	}
	if len(names) != 2 || names[0] != "test-a" || names[1] != "test-b" {
		t.Errorf("List() order = %v, expected [test-a test-b]", names)
	}
	for _, info := range list {
		if info.Name == "test-b" && info.Description != "stub test-b" {
			t.Errorf("Description = %q, expected 'stub test-b'", info.Description)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Frontend { return stubFrontend{name: "test-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on duplicate name")
		}
	}()
	Register("test-dup", func() Frontend { return stubFrontend{name: "test-dup"} })
}

func TestOptionsNewState(t *testing.T) {
	opts := Options{Seed: 42, Display: config.Default().Display}

	s1 := opts.NewState()
	s2 := opts.NewState()
	if s1.SpawnFood() != s2.SpawnFood() {
		t.Error("same seed should give the same food sequence")
	}
	if s1.Head() != (game.Point{X: 10, Y: 10}) {
		t.Errorf("Head() = %v, expected (10,10)", s1.Head())
	}
	if len(opts.LoopOptions()) != 1 {
		t.Errorf("LoopOptions() without logger = %d options, expected 1", len(opts.LoopOptions()))
	}
}
