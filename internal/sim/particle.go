// Package sim implements the particle simulation: force and position
// integration, the multi-body reaction resolver, and the elastic bounce pass.
package sim

import (
	"math"

	"github.com/dasbooter/physics/internal/chem"
	"github.com/dasbooter/physics/internal/draw"
)

// Env holds the physical environment particles integrate against.
type Env struct {
	Gravity   float64 // Downward acceleration, world units/s²
	MaxSpeed  float64 // Hard cap on speed magnitude after force integration
	Damping   float64 // Velocity retention factor on wall bounce, < 1
	RestSpeed float64 // Floor bounces below this speed snap to zero
	// Optional quadratic air drag; disabled when either factor is zero.
	AirDensity float64
	DragCoeff  float64
}

// Bounds is the axis-aligned simulation area, anchored at the origin.
type Bounds struct {
	Width  float64
	Height float64
}

// Particle is a point-mass body of one species. The species (and with it
// mass, radius and color) is fixed at creation; reactions never rename a
// particle in place, they destroy it and spawn products.
type Particle struct {
	X, Y   float64
	VX, VY float64

	Mass   float64
	Radius float64
	Symbol string
	Color  draw.Color
}

// newParticle creates a particle of the given species, at rest.
func newParticle(x, y float64, sp chem.Species) *Particle {
	return &Particle{
		X:      x,
		Y:      y,
		Mass:   sp.Mass,
		Radius: sp.Radius,
		Symbol: sp.Symbol,
		Color:  sp.Color,
	}
}

// Speed returns the velocity magnitude.
func (p *Particle) Speed() float64 {
	return math.Sqrt(p.VX*p.VX + p.VY*p.VY)
}

// ApplyForces integrates gravity and optional air drag into the velocity,
// then clamps the speed to env.MaxSpeed. The clamp is what keeps extreme
// reaction cascades from blowing up numerically.
func (p *Particle) ApplyForces(dt float64, env Env) {
	p.VY += env.Gravity * dt

	if env.DragCoeff > 0 && env.AirDensity > 0 {
		speed := p.Speed()
		if speed > 0 {
			// Cross-section of a disc in 2D is its diameter.
			force := 0.5 * env.AirDensity * env.DragCoeff * (2 * p.Radius) * speed * speed
			decel := force / p.Mass * dt
			if decel > speed {
				decel = speed
			}
			p.VX -= decel * p.VX / speed
			p.VY -= decel * p.VY / speed
		}
	}

	spSq := p.VX*p.VX + p.VY*p.VY
	if spSq > env.MaxSpeed*env.MaxSpeed {
		scale := env.MaxSpeed / math.Sqrt(spSq)
		p.VX *= scale
		p.VY *= scale
	}
}

// UpdatePosition advances the particle by velocity·dt and resolves wall
// contact: position is clamped to the boundary and the offending velocity
// component reflected scaled by env.Damping. Floor bounces below
// env.RestSpeed snap to zero so settled particles stop micro-bouncing.
func (p *Particle) UpdatePosition(dt float64, bounds Bounds, env Env) {
	p.X += p.VX * dt
	p.Y += p.VY * dt

	// Floor.
	if p.Y+p.Radius >= bounds.Height {
		p.Y -= (p.Y + p.Radius) - bounds.Height
		if p.VY > 0 {
			p.VY = -env.Damping * p.VY
			if math.Abs(p.VY) < env.RestSpeed {
				p.VY = 0
			}
		}
	}

	// Ceiling.
	if p.Y-p.Radius < 0 {
		p.Y += p.Radius - p.Y
		if p.VY < 0 {
			p.VY = -env.Damping * p.VY
		}
	}

	// Left wall.
	if p.X-p.Radius < 0 {
		p.X += p.Radius - p.X
		if p.VX < 0 {
			p.VX = -env.Damping * p.VX
		}
	}

	// Right wall.
	if p.X+p.Radius > bounds.Width {
		p.X -= (p.X + p.Radius) - bounds.Width
		if p.VX > 0 {
			p.VX = -env.Damping * p.VX
		}
	}
}
