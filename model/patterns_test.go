package model

import (
	"testing"

	"github.com/pkg/errors"
)

func TestLookupPattern(t *testing.T) {
	for _, name := range []string{"block", "Blinker", "GLIDER"} {
		if _, err := LookupPattern(name); err != nil {
			t.Fatalf("LookupPattern(%q): %v", name, err)
		}
	}
	if _, err := LookupPattern("gosper"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("unknown pattern error = %v", err)
	}
}

func TestStampOutOfBoundsWritesNothing(t *testing.T) {
	g := mustGrid(t, 4, 4)
	if err := Glider.Stamp(g, 2, 2); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Stamp error = %v, want ErrOutOfBounds", err)
	}
	if g.CountLivingCells() != 0 {
		t.Fatal("partial stamp left live cells")
	}
	if err := Block.Stamp(g, 2, 2); err != nil {
		t.Fatalf("Stamp: %v", err)
	}
	assertLive(t, g, [2]int{2, 2}, [2]int{3, 2}, [2]int{2, 3}, [2]int{3, 3})
}

func TestHistoryDetectsCycles(t *testing.T) {
	h := NewHistory(5)
	h.Update("a")
	h.Update("b")
	if h.IsStagnant("a") {
		t.Fatal("needs three recorded states before reporting stagnation")
	}
	h.Update("c")
	if !h.IsStagnant("b") {
		t.Fatal("period-2 repeat not detected")
	}
	if h.IsStagnant("z") {
		t.Fatal("new state reported as stagnant")
	}
	for _, s := range []string{"d", "e", "f"} {
		h.Update(s)
	}
	if h.IsStagnant("a") {
		t.Fatal("states older than three generations should not count")
	}
	h.Reset()
	if h.IsStagnant("f") {
		t.Fatal("Reset should forget history")
	}
}

func TestRunState(t *testing.T) {
	if Running.Toggle() != Paused || Paused.Toggle() != Running {
		t.Fatal("Toggle must flip the state")
	}
	var s RunState
	if err := s.UnmarshalText([]byte("paused")); err != nil || s != Paused {
		t.Fatalf("UnmarshalText(paused) = %v, %v", s, err)
	}
	if err := s.Set("stopped"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("unknown state error = %v", err)
	}
	if s != Paused {
		t.Fatal("failed parse must not change the value")
	}
	text, _ := Running.MarshalText()
	if string(text) != "running" {
		t.Fatalf("MarshalText = %q", text)
	}
}
