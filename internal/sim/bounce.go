package sim

import "math"

// minSeparation substitutes for the center distance when two particles spawn
// exactly coincident, so the collision normal stays finite. The direction is
// arbitrary but deterministic (+x).
const minSeparation = 1e-9

// resolveBounce applies positional separation and an elastic impulse to
// every pair still overlapping after the reaction passes. The colliding set
// is recomputed fresh because the reaction passes changed both positions and
// indices.
func (w *World) resolveBounce() {
	for _, pr := range w.collidingPairs() {
		a, b := w.particles[pr.I], w.particles[pr.J]

		dx := b.X - a.X
		dy := b.Y - a.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist < minSeparation {
			dist = minSeparation
			dx, dy = dist, 0
		}
		nx := dx / dist
		ny := dy / dist

		// Separate so the pair ends up exactly tangent, half the overlap
		// each.
		overlap := (a.Radius + b.Radius) - dist
		if overlap > 0 {
			a.X -= nx * overlap * 0.5
			a.Y -= ny * overlap * 0.5
			b.X += nx * overlap * 0.5
			b.Y += ny * overlap * 0.5
		}

		// Relative velocity along the collision normal. Non-positive means
		// the pair is already separating; bouncing it again would pull them
		// back together.
		dvn := (a.VX-b.VX)*nx + (a.VY-b.VY)*ny
		if dvn <= 0 {
			continue
		}

		// Frictionless elastic exchange along the normal: conserves both
		// momentum and kinetic energy, tangential components untouched.
		totalMass := a.Mass + b.Mass
		impulse := 2 * dvn / totalMass
		a.VX -= impulse * b.Mass * nx
		a.VY -= impulse * b.Mass * ny
		b.VX += impulse * a.Mass * nx
		b.VY += impulse * a.Mass * ny
	}
}
