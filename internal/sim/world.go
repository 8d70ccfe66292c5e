package sim

import (
	"errors"
	"fmt"

	"github.com/dasbooter/physics/internal/chem"
	"github.com/dasbooter/physics/internal/physics"
)

// cellSize is the broadphase grid cell edge. It must exceed the largest
// radius sum any two registry species can produce (currently 5.2) so the
// 3x3 neighborhood catches every possible overlap.
const cellSize = 6.0

// ErrTooManyParticles is returned by Spawn when the world is at capacity.
var ErrTooManyParticles = errors.New("sim: particle limit reached")

// Params configures a World.
type Params struct {
	Env          Env
	Substeps     int // Physics sub-steps per Advance call
	MaxParticles int // Spawn ceiling; keeps the broadphase cost bounded
}

// World owns the particle collection and runs the per-step pipeline:
// forces, positions, reactions, elastic bounce. It is single-threaded by
// design; the particle slice must only be read between Advance calls.
type World struct {
	params Params
	bounds Bounds
	reg    *chem.Registry
	rules  *chem.RuleSet

	particles []*Particle
	grid      *physics.Grid

	// Scratch buffers reused across substeps to avoid per-frame allocations.
	pairs     []physics.Pair
	colliding []physics.Pair
	adjacency [][]int
	consumed  []bool
	removals  []int
	products  []*Particle
}

// NewWorld creates an empty world over the given bounds.
func NewWorld(params Params, bounds Bounds, reg *chem.Registry, rules *chem.RuleSet) *World {
	if params.Substeps < 1 {
		params.Substeps = 1
	}
	return &World{
		params: params,
		bounds: bounds,
		reg:    reg,
		rules:  rules,
		grid:   physics.NewGrid(bounds.Width, bounds.Height, cellSize),
	}
}

// Bounds returns the simulation area.
func (w *World) Bounds() Bounds { return w.bounds }

// Len returns the current particle count.
func (w *World) Len() int { return len(w.particles) }

// Particles exposes the live particle slice for rendering. The slice is in a
// consistent, fully reacted and fully bounced state between Advance calls and
// must not be mutated by callers.
func (w *World) Particles() []*Particle { return w.particles }

// Clear removes all particles.
func (w *World) Clear() { w.particles = w.particles[:0] }

// Spawn creates a particle of the named species at rest at (x, y).
// Unknown species are rejected, as are spawns beyond the particle ceiling.
func (w *World) Spawn(x, y float64, symbol string) (*Particle, error) {
	if len(w.particles) >= w.params.MaxParticles {
		return nil, fmt.Errorf("%w (%d)", ErrTooManyParticles, w.params.MaxParticles)
	}
	sp, err := w.reg.Get(symbol)
	if err != nil {
		return nil, err
	}
	p := newParticle(x, y, sp)
	w.particles = append(w.particles, p)
	return p, nil
}

// Advance runs one simulation step, internally split into the configured
// number of substeps. Within a substep the full pipeline runs to completion:
// force integration, position integration with wall response, the reaction
// resolver, and the elastic bounce pass.
func (w *World) Advance(dt float64) {
	sub := dt / float64(w.params.Substeps)
	for s := 0; s < w.params.Substeps; s++ {
		for _, p := range w.particles {
			p.ApplyForces(sub, w.params.Env)
		}
		for _, p := range w.particles {
			p.UpdatePosition(sub, w.bounds, w.params.Env)
		}
		w.resolveReactions()
		w.resolveBounce()
	}
}

// NearestAt returns the particle whose disc contains (x, y), preferring the
// one whose center is closest. Returns nil when no particle is hit.
func (w *World) NearestAt(x, y float64) *Particle {
	var best *Particle
	bestDistSq := -1.0
	for _, p := range w.particles {
		if !physics.PointInCircle(x, y, p.X, p.Y, p.Radius) {
			continue
		}
		d := physics.DistanceSquared(x, y, p.X, p.Y)
		if best == nil || d < bestDistSq {
			best = p
			bestDistSq = d
		}
	}
	return best
}

// collidingPairs rebuilds the broadphase grid from the current particle
// positions and returns the exactly-overlapping index pairs. The result is
// only valid until the particle slice is next mutated.
func (w *World) collidingPairs() []physics.Pair {
	w.grid.Clear()
	for i, p := range w.particles {
		w.grid.Insert(p.X, p.Y, i)
	}

	w.pairs = w.grid.CandidatePairs(w.pairs[:0])
	w.colliding = w.colliding[:0]
	for _, pr := range w.pairs {
		a, b := w.particles[pr.I], w.particles[pr.J]
		if physics.CirclesOverlap(a.X, a.Y, a.Radius, b.X, b.Y, b.Radius) {
			w.colliding = append(w.colliding, pr)
		}
	}
	return w.colliding
}
