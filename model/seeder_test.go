package model

import (
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
)

func fixedSeeder(seed uint64) *Seeder {
	return NewSeeder(rand.New(rand.NewPCG(seed, 0)))
}

func TestRandomFillStaysInInterior(t *testing.T) {
	g := mustGrid(t, 10, 8)
	if err := fixedSeeder(7).RandomFill(g, 40); err != nil {
		t.Fatalf("RandomFill: %v", err)
	}
	live := liveCells(g)
	if len(live) == 0 || len(live) > 40 {
		t.Fatalf("expected between 1 and 40 live cells, got %d", len(live))
	}
	for c := range live {
		if c[0] < 1 || c[0] >= 9 || c[1] < 1 || c[1] >= 7 {
			t.Fatalf("cell (%d,%d) lies on the outer ring", c[0], c[1])
		}
	}
}

func TestRandomFillDeterministic(t *testing.T) {
	a := mustGrid(t, 20, 20)
	b := mustGrid(t, 20, 20)
	if err := fixedSeeder(99).RandomFill(a, 60); err != nil {
		t.Fatalf("RandomFill: %v", err)
	}
	if err := fixedSeeder(99).RandomFill(b, 60); err != nil {
		t.Fatalf("RandomFill: %v", err)
	}
	if a.Hash() != b.Hash() {
		t.Fatal("same seed produced different fills")
	}

	c := mustGrid(t, 20, 20)
	if err := fixedSeeder(100).RandomFill(c, 60); err != nil {
		t.Fatalf("RandomFill: %v", err)
	}
	if a.Hash() == c.Hash() {
		t.Fatal("different seeds should produce different fills")
	}
}

func TestRandomFillSmallestInterior(t *testing.T) {
	g := mustGrid(t, 3, 3)
	if err := fixedSeeder(1).RandomFill(g, 5); err != nil {
		t.Fatalf("RandomFill: %v", err)
	}
	assertLive(t, g, [2]int{1, 1})
}

func TestRandomFillInvalidArgument(t *testing.T) {
	s := fixedSeeder(1)
	for _, dims := range [][2]int{{2, 10}, {10, 2}, {1, 1}} {
		g := mustGrid(t, dims[0], dims[1])
		if err := s.RandomFill(g, 1); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("%dx%d: error = %v, want ErrInvalidArgument", dims[0], dims[1], err)
		}
		if err := s.RandomFill(g, 0); err != nil {
			t.Fatalf("%dx%d: zero count should succeed, got %v", dims[0], dims[1], err)
		}
	}
	g := mustGrid(t, 5, 5)
	if err := s.RandomFill(g, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("negative count error = %v", err)
	}
}

func TestSeederClear(t *testing.T) {
	g := mustGrid(t, 6, 6)
	s := fixedSeeder(3)
	if err := s.RandomFill(g, 10); err != nil {
		t.Fatalf("RandomFill: %v", err)
	}
	s.Clear(g)
	if g.CountLivingCells() != 0 {
		t.Fatal("Clear left live cells")
	}
}
