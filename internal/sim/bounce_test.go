package sim

import (
	"math"
	"testing"
)

func TestBounceHeadOnEqualMass(t *testing.T) {
	w := newTestWorld(t, zeroGravity(), 10)
	a := mustSpawn(t, w, 50, 50, "H")
	b := mustSpawn(t, w, 52, 50, "H")
	a.VX = 5
	b.VX = -5

	w.resolveBounce()

	// Equal masses swap normal velocities.
	if math.Abs(a.VX+5) > 1e-9 || math.Abs(b.VX-5) > 1e-9 {
		t.Errorf("after bounce: a.VX=%v b.VX=%v, want -5 and 5", a.VX, b.VX)
	}
	if a.VY != 0 || b.VY != 0 {
		t.Errorf("head-on bounce moved VY: %v, %v", a.VY, b.VY)
	}
	// And the pair ends up tangent.
	if gap := (b.X - a.X) - (a.Radius + b.Radius); math.Abs(gap) > 1e-9 {
		t.Errorf("separation gap = %v, want 0", gap)
	}
}

func TestBounceConservesMomentumAndEnergy(t *testing.T) {
	w := newTestWorld(t, zeroGravity(), 10)
	a := mustSpawn(t, w, 50, 50, "C")
	b := mustSpawn(t, w, 51.5, 50.5, "O")
	a.VX, a.VY = 3, 1
	b.VX, b.VY = -2, -0.5

	px := a.Mass*a.VX + b.Mass*b.VX
	py := a.Mass*a.VY + b.Mass*b.VY
	ke := 0.5*a.Mass*(a.VX*a.VX+a.VY*a.VY) + 0.5*b.Mass*(b.VX*b.VX+b.VY*b.VY)

	w.resolveBounce()

	px2 := a.Mass*a.VX + b.Mass*b.VX
	py2 := a.Mass*a.VY + b.Mass*b.VY
	ke2 := 0.5*a.Mass*(a.VX*a.VX+a.VY*a.VY) + 0.5*b.Mass*(b.VX*b.VX+b.VY*b.VY)

	if math.Abs(px-px2) > 1e-9 || math.Abs(py-py2) > 1e-9 {
		t.Errorf("momentum changed: (%v, %v) -> (%v, %v)", px, py, px2, py2)
	}
	if math.Abs(ke-ke2) > 1e-9 {
		t.Errorf("kinetic energy changed: %v -> %v", ke, ke2)
	}
	if a.VX == 3 && a.VY == 1 {
		t.Error("approaching pair did not exchange any impulse")
	}
}

func TestBounceSkipsSeparatingPair(t *testing.T) {
	w := newTestWorld(t, zeroGravity(), 10)
	a := mustSpawn(t, w, 50, 50, "H")
	b := mustSpawn(t, w, 52, 50, "H")
	a.VX = -5
	b.VX = 5

	w.resolveBounce()

	if a.VX != -5 || b.VX != 5 {
		t.Errorf("separating pair bounced: a.VX=%v b.VX=%v", a.VX, b.VX)
	}
	// Positional separation still happens so they stop overlapping.
	if (b.X - a.X) < a.Radius+b.Radius-1e-9 {
		t.Errorf("pair still overlapping: a.X=%v b.X=%v", a.X, b.X)
	}
}

func TestBounceCoincidentCenters(t *testing.T) {
	w := newTestWorld(t, zeroGravity(), 10)
	a := mustSpawn(t, w, 50, 50, "H")
	b := mustSpawn(t, w, 50, 50, "H")

	w.resolveBounce()

	for _, p := range []*Particle{a, b} {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.VX) || math.IsNaN(p.VY) {
			t.Fatalf("NaN after coincident bounce: %+v", p)
		}
	}
	// Coincident pairs split along x.
	if b.X <= a.X {
		t.Errorf("no deterministic split: a.X=%v b.X=%v", a.X, b.X)
	}
	if a.Y != 50 || b.Y != 50 {
		t.Errorf("coincident split moved Y: %v, %v", a.Y, b.Y)
	}
}

func TestBounceUnequalMassTransfer(t *testing.T) {
	w := newTestWorld(t, zeroGravity(), 10)
	heavy := mustSpawn(t, w, 50, 50, "O") // mass 16
	light := mustSpawn(t, w, 52, 50, "H") // mass 1
	heavy.VX = 5

	w.resolveBounce()

	// The heavy mover keeps going, the light target shoots off ahead of it.
	if heavy.VX <= 0 {
		t.Errorf("heavy.VX = %v, want still positive", heavy.VX)
	}
	if light.VX <= heavy.VX {
		t.Errorf("light.VX = %v, want faster than heavy %v", light.VX, heavy.VX)
	}
}
