package sim

import (
	"math"
	"testing"
)

// zeroGravity keeps particles where the test puts them so reaction geometry
// stays exact across the Advance call.
func zeroGravity() Env {
	env := testEnv()
	env.Gravity = 0
	return env
}

func TestPairReaction(t *testing.T) {
	w := newTestWorld(t, zeroGravity(), 10)
	mustSpawn(t, w, 50, 50, "H")
	mustSpawn(t, w, 51, 50, "H")

	w.Advance(0.01)

	if w.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 product", w.Len())
	}
	p := w.Particles()[0]
	if p.Symbol != "H₂" {
		t.Errorf("product = %s, want H₂", p.Symbol)
	}
	if p.Mass != 2 {
		t.Errorf("product mass = %v, want 2", p.Mass)
	}
	if math.Abs(p.X-50.5) > 1e-9 || math.Abs(p.Y-50) > 1e-9 {
		t.Errorf("product at (%v, %v), want centroid (50.5, 50)", p.X, p.Y)
	}
	if p.VX != 0 || p.VY != 0 {
		t.Errorf("product v = (%v, %v), want rest", p.VX, p.VY)
	}
}

func TestPairReactionConservesMomentum(t *testing.T) {
	w := newTestWorld(t, zeroGravity(), 10)
	a := mustSpawn(t, w, 50, 50, "H")
	mustSpawn(t, w, 51, 50, "H")
	a.VX = 10

	w.Advance(0.001)

	if w.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", w.Len())
	}
	p := w.Particles()[0]
	// Momentum 1*10 spread over mass 2.
	if math.Abs(p.VX-5) > 1e-9 || math.Abs(p.VY) > 1e-9 {
		t.Errorf("product v = (%v, %v), want (5, 0)", p.VX, p.VY)
	}
}

func TestTripleReaction(t *testing.T) {
	w := newTestWorld(t, zeroGravity(), 10)
	mustSpawn(t, w, 50, 50, "H₂")
	mustSpawn(t, w, 52, 50, "H₂")
	mustSpawn(t, w, 51, 51.5, "O₂")

	w.Advance(0.001)

	if w.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 water molecules", w.Len())
	}
	var mass float64
	for _, p := range w.Particles() {
		if p.Symbol != "H₂O" {
			t.Errorf("product = %s, want H₂O", p.Symbol)
		}
		mass += p.Mass
	}
	if mass != 36 {
		t.Errorf("total product mass = %v, want 36", mass)
	}
}

func TestTripleRequiresMutualOverlap(t *testing.T) {
	w := newTestWorld(t, zeroGravity(), 10)
	// A chain: each H₂ touches the O₂ but not the other H₂.
	mustSpawn(t, w, 40, 50, "H₂")
	mustSpawn(t, w, 43.5, 50, "O₂")
	mustSpawn(t, w, 47, 50, "H₂")

	w.Advance(0.001)

	if w.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (no reaction)", w.Len())
	}
	counts := map[string]int{}
	for _, p := range w.Particles() {
		counts[p.Symbol]++
	}
	if counts["H₂"] != 2 || counts["O₂"] != 1 {
		t.Errorf("species after step: %v", counts)
	}
}

func TestQuadrupleReaction(t *testing.T) {
	w := newTestWorld(t, zeroGravity(), 10)
	mustSpawn(t, w, 50, 50, "N₂")
	mustSpawn(t, w, 52, 50, "H₂")
	mustSpawn(t, w, 50, 52, "H₂")
	mustSpawn(t, w, 52, 52, "H₂")

	w.Advance(0.001)

	if w.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 ammonia molecules", w.Len())
	}
	var mass float64
	for _, p := range w.Particles() {
		if p.Symbol != "NH₃" {
			t.Errorf("product = %s, want NH₃", p.Symbol)
		}
		mass += p.Mass
	}
	if mass != 34 {
		t.Errorf("total product mass = %v, want 34", mass)
	}
}

// TestArityPriority pits the triple rule N₂+N₂+O₂ against the pairwise rule
// N₂+O₂ on the same particles. The larger group must win.
func TestArityPriority(t *testing.T) {
	w := newTestWorld(t, zeroGravity(), 10)
	mustSpawn(t, w, 50, 50, "N₂")
	mustSpawn(t, w, 52, 50, "N₂")
	mustSpawn(t, w, 51, 51.5, "O₂")

	w.Advance(0.001)

	if w.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", w.Len())
	}
	for _, p := range w.Particles() {
		if p.Symbol != "N₂O" {
			t.Errorf("product = %s, want N₂O (triple rule must outrank pairwise)", p.Symbol)
		}
	}
}

func TestNoRulePairSurvives(t *testing.T) {
	w := newTestWorld(t, zeroGravity(), 10)
	mustSpawn(t, w, 50, 50, "H")
	mustSpawn(t, w, 51, 50, "O")

	w.Advance(0.001)

	if w.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (H+O has no rule)", w.Len())
	}
}

func TestTwoProductSpawnOffset(t *testing.T) {
	w := newTestWorld(t, zeroGravity(), 10)
	mustSpawn(t, w, 80, 50, "N₂")
	mustSpawn(t, w, 82, 50, "O₂")

	w.Advance(0.001)

	if w.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 NO", w.Len())
	}
	a, b := w.Particles()[0], w.Particles()[1]
	if a.Symbol != "NO" || b.Symbol != "NO" {
		t.Fatalf("products = %s, %s, want NO, NO", a.Symbol, b.Symbol)
	}
	if a.X == b.X {
		t.Error("twin products spawned co-located")
	}
	if a.Y != b.Y {
		t.Errorf("twin products split vertically: %v vs %v", a.Y, b.Y)
	}
}
