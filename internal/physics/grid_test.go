package physics

import (
	"math/rand"
	"testing"
)

func TestCandidatePairsSameCell(t *testing.T) {
	g := NewGrid(100, 100, 10)
	g.Insert(5, 5, 0)
	g.Insert(6, 6, 1)
	g.Insert(7, 7, 2)

	pairs := g.CandidatePairs(nil)
	want := map[Pair]bool{{0, 1}: true, {0, 2}: true, {1, 2}: true}
	if len(pairs) != len(want) {
		t.Fatalf("got %d pairs %v, want %d", len(pairs), pairs, len(want))
	}
	for _, p := range pairs {
		if !want[p] {
			t.Errorf("unexpected pair %v", p)
		}
	}
}

func TestCandidatePairsAdjacentCells(t *testing.T) {
	g := NewGrid(100, 100, 10)
	g.Insert(9, 5, 0)  // cell (0,0)
	g.Insert(11, 5, 1) // cell (1,0), east neighbor

	pairs := g.CandidatePairs(nil)
	if len(pairs) != 1 || pairs[0] != (Pair{0, 1}) {
		t.Fatalf("got %v, want [{0 1}]", pairs)
	}
}

func TestCandidatePairsDistantCells(t *testing.T) {
	g := NewGrid(100, 100, 10)
	g.Insert(5, 5, 0)
	g.Insert(55, 55, 1)

	if pairs := g.CandidatePairs(nil); len(pairs) != 0 {
		t.Fatalf("distant items produced pairs: %v", pairs)
	}
}

func TestCandidatePairsClampsOutOfBounds(t *testing.T) {
	g := NewGrid(100, 100, 10)
	g.Insert(-5, -5, 0)
	g.Insert(1, 1, 1)
	g.Insert(105, 105, 2)
	g.Insert(99, 99, 3)

	pairs := g.CandidatePairs(nil)
	seen := make(map[Pair]bool, len(pairs))
	for _, p := range pairs {
		seen[p] = true
	}
	if !seen[(Pair{0, 1})] {
		t.Error("clamped item 0 not paired with 1")
	}
	if !seen[(Pair{2, 3})] {
		t.Error("clamped item 2 not paired with 3")
	}
}

// TestCandidatePairsComplete checks the no-false-negative guarantee against a
// brute force scan: any two items closer than the cell size must appear in the
// candidate set, and no pair may appear twice.
func TestCandidatePairsComplete(t *testing.T) {
	const (
		worldW   = 160.0
		worldH   = 96.0
		cellSize = 6.0
		n        = 200
	)
	rng := rand.New(rand.NewSource(42))

	g := NewGrid(worldW, worldH, cellSize)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = rng.Float64() * worldW
		ys[i] = rng.Float64() * worldH
		g.Insert(xs[i], ys[i], i)
	}

	pairs := g.CandidatePairs(nil)
	seen := make(map[Pair]bool, len(pairs))
	for _, p := range pairs {
		if p.I >= p.J {
			t.Fatalf("pair %v not ordered", p)
		}
		if seen[p] {
			t.Fatalf("pair %v emitted twice", p)
		}
		seen[p] = true
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if DistanceSquared(xs[i], ys[i], xs[j], ys[j]) < cellSize*cellSize {
				if !seen[(Pair{i, j})] {
					t.Errorf("close pair {%d %d} missing from candidates", i, j)
				}
			}
		}
	}
}

func TestGridClearReuse(t *testing.T) {
	g := NewGrid(100, 100, 10)
	g.Insert(5, 5, 0)
	g.Insert(6, 6, 1)
	g.Clear()

	if pairs := g.CandidatePairs(nil); len(pairs) != 0 {
		t.Fatalf("pairs after Clear: %v", pairs)
	}

	g.Insert(5, 5, 7)
	g.Insert(6, 6, 9)
	pairs := g.CandidatePairs(nil)
	if len(pairs) != 1 || pairs[0] != (Pair{7, 9}) {
		t.Fatalf("got %v after reuse, want [{7 9}]", pairs)
	}
}
