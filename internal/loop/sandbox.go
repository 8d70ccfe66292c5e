package loop

import (
	"github.com/dasbooter/physics/internal/chem"
	"github.com/dasbooter/physics/internal/input"
	"github.com/dasbooter/physics/internal/sim"
)

// updateTitle waits on the title screen for the player to start.
func updateTitle(state *State) {
	if state.Input.Spawn || state.Input.Enter {
		input.ResetKeyInput(state.InputStream)
		state.Phase = PhaseRunning
	}
}

// updateRunning handles one frame of the sandbox: cursor movement, element
// selection, spawning, inspection, and finally the physics step.
func updateRunning(state *State) {
	dt := state.Delta.Seconds()
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	in, prev := state.Input, state.prevInput

	if pressed(in.Pause, prev.Pause) {
		state.Paused = !state.Paused
	}

	moveCursor(state, dt)
	selectElement(state)

	if pressed(in.Spawn, prev.Spawn) {
		sp, err := state.Registry.Atom(state.SelectedZ)
		if err == nil {
			_, err = state.World.Spawn(state.CursorX, state.CursorY, sp.Symbol)
		}
		if err != nil {
			state.SetStatus(err.Error())
		}
	}

	if pressed(in.Inspect, prev.Inspect) {
		state.Inspected = state.World.NearestAt(state.CursorX, state.CursorY)
	}
	if pressed(in.Escape, prev.Escape) {
		state.Inspected = nil
	}

	if pressed(in.Clear, prev.Clear) {
		state.World.Clear()
		state.Inspected = nil
		state.SetStatus("cleared")
	}

	if !state.Paused {
		state.World.Advance(dt)
	}

	// A reaction may have consumed the inspected particle; drop the stale
	// pointer rather than display a dead body.
	if state.Inspected != nil && !contains(state.World, state.Inspected) {
		state.Inspected = nil
	}
}

// moveCursor applies held movement keys, clamped to the sim area.
func moveCursor(state *State, dt float64) {
	if state.Input.Left {
		state.CursorX -= cursorSpeed * dt
	}
	if state.Input.Right {
		state.CursorX += cursorSpeed * dt
	}
	if state.Input.Up {
		state.CursorY -= cursorSpeed * dt
	}
	if state.Input.Down {
		state.CursorY += cursorSpeed * dt
	}

	if state.CursorX < 1 {
		state.CursorX = 1
	}
	if state.CursorX > simWidth-1 {
		state.CursorX = simWidth - 1
	}
	if state.CursorY < 1 {
		state.CursorY = 1
	}
	if state.CursorY > simHeight-1 {
		state.CursorY = simHeight - 1
	}
}

// selectElement cycles the picker with ]/[ and jumps to period-1 elements
// with the digit keys.
func selectElement(state *State) {
	in, prev := state.Input, state.prevInput

	if pressed(in.Next, prev.Next) {
		state.SelectedZ++
		if state.SelectedZ > chem.MaxAtomicNumber {
			state.SelectedZ = 1
		}
	}
	if pressed(in.Prev, prev.Prev) {
		state.SelectedZ--
		if state.SelectedZ < 1 {
			state.SelectedZ = chem.MaxAtomicNumber
		}
	}
	if in.Number >= 1 && in.Number != prev.Number {
		state.SelectedZ = in.Number
	}
}

func contains(w *sim.World, p *sim.Particle) bool {
	for _, q := range w.Particles() {
		if q == p {
			return true
		}
	}
	return false
}
