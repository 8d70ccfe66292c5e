package loop

import (
	"time"

	"github.com/dasbooter/physics/internal/chem"
	"github.com/dasbooter/physics/internal/config"
	"github.com/dasbooter/physics/internal/input"
	"github.com/dasbooter/physics/internal/sim"
)

// Phase represents the current screen.
type Phase int

const (
	PhaseTitle   Phase = iota // Title screen
	PhaseRunning              // Active sandbox
)

// State holds all session state for one sandbox loop.
type State struct {
	World    *sim.World
	Registry *chem.Registry

	Phase   Phase
	Paused  bool
	Running bool
	Delta   time.Duration

	CursorX, CursorY float64
	SelectedZ        int           // Atomic number of the element to spawn
	Inspected        *sim.Particle // Particle shown in the info panel, or nil

	Input       input.Input
	prevInput   input.Input
	InputStream *input.Stream

	status      string // Transient HUD message (e.g. spawn rejected)
	statusUntil time.Time
}

// NewState builds a fresh session: registry, rule set, an empty world sized
// to the logical sim area, and the cursor centered.
func NewState(cfg *config.Sim) *State {
	reg := chem.NewRegistry()
	rules := chem.NewRuleSet()

	params := sim.Params{
		Env: sim.Env{
			Gravity:    cfg.Gravity,
			MaxSpeed:   cfg.MaxSpeed,
			Damping:    cfg.Damping,
			RestSpeed:  cfg.RestSpeed,
			AirDensity: cfg.AirDensity,
			DragCoeff:  cfg.DragCoeff,
		},
		Substeps:     cfg.Substeps,
		MaxParticles: cfg.MaxParticles,
	}
	bounds := sim.Bounds{Width: simWidth, Height: simHeight}

	return &State{
		World:     sim.NewWorld(params, bounds, reg, rules),
		Registry:  reg,
		Phase:     PhaseTitle,
		Running:   true,
		CursorX:   simWidth / 2,
		CursorY:   simHeight / 4,
		SelectedZ: 1, // Hydrogen
	}
}

// SetStatus shows a transient message in the HUD.
func (s *State) SetStatus(msg string) {
	s.status = msg
	s.statusUntil = time.Now().Add(statusDuration)
}

// Status returns the current transient message, or "" once expired.
func (s *State) Status() string {
	if time.Now().After(s.statusUntil) {
		return ""
	}
	return s.status
}

// pressed reports a rising edge: the key is down this frame but was not down
// on the previous one. Used for one-shot actions like spawning and cycling.
func pressed(now, before bool) bool {
	return now && !before
}
