package stages

import (
	"context"
	"testing"

	"github.com/kjsanger/terraforge/pkg/world"
)

// TestDefineHillsHolesIslands_DefaultFrequenciesProduceExactCounts checks
// that default frequencies at seed=42 produce exactly 12 hills, 10 holes,
// 8 islands.
func TestDefineHillsHolesIslands_DefaultFrequenciesProduceExactCounts(t *testing.T) {
	w := newTestWorld(t, 4200, 1200)

	if err := DefineHillsHolesIslands(context.Background(), w); err != nil {
		t.Fatalf("DefineHillsHolesIslands() error = %v", err)
	}

	counts := map[world.StructureTag]int{}
	for _, s := range w.Structures() {
		counts[s.Tag]++
	}
	if counts[world.Hill] != 12 {
		t.Errorf("hill count = %d, want 12", counts[world.Hill])
	}
	if counts[world.Hole] != 10 {
		t.Errorf("hole count = %d, want 10", counts[world.Hole])
	}
	if counts[world.FloatingIsland] != 8 {
		t.Errorf("island count = %d, want 8", counts[world.FloatingIsland])
	}
}

// TestDefineHillsHolesIslands_NarrowWorldReturnsInfeasible checks that a
// world too narrow for the default placement density returns
// ErrInfeasible and produces no structures.
func TestDefineHillsHolesIslands_NarrowWorldReturnsInfeasible(t *testing.T) {
	w := newTestWorld(t, 400, 1200)

	err := DefineHillsHolesIslands(context.Background(), w)
	if err == nil {
		t.Fatal("DefineHillsHolesIslands() = nil, want ErrInfeasible")
	}
	if len(w.Structures()) != 0 {
		t.Errorf("got %d structures after infeasible placement, want 0", len(w.Structures()))
	}
}

func TestDefineHillsHolesIslands_Deterministic(t *testing.T) {
	w1 := newTestWorld(t, 4200, 1200)
	w2 := newTestWorld(t, 4200, 1200)

	if err := DefineHillsHolesIslands(context.Background(), w1); err != nil {
		t.Fatalf("run 1: %v", err)
	}
	if err := DefineHillsHolesIslands(context.Background(), w2); err != nil {
		t.Fatalf("run 2: %v", err)
	}

	s1, s2 := w1.Structures(), w2.Structures()
	if len(s1) != len(s2) {
		t.Fatalf("structure counts differ: %d != %d", len(s1), len(s2))
	}
	for i := range s1 {
		if s1[i].Tag != s2[i].Tag || s1[i].Pixels.Len() != s2[i].Pixels.Len() {
			t.Fatalf("structure %d differs between runs", i)
		}
	}
}
