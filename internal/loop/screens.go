package loop

import (
	"fmt"

	"github.com/dasbooter/physics/internal/chem"
	"github.com/dasbooter/physics/internal/draw"
)

var (
	cursorColor   = draw.Color{R: 255, G: 255, B: 255}
	dimTextColor  = draw.Color{R: 140, G: 140, B: 140}
	selectedBg    = draw.Color{R: 200, G: 200, B: 0}
	selectedFg    = draw.Color{R: 0, G: 0, B: 0}
	statusColor   = draw.Color{R: 255, G: 180, B: 80}
	infoTextColor = draw.Color{R: 220, G: 220, B: 220}
)

// drawTitleScreen draws the start screen.
func drawTitleScreen(cw *draw.ChunkWriter, canvas *draw.Canvas) {
	centerX := canvas.TerminalWidth() / 2
	centerY := canvas.TerminalHeight() / 2

	title := "C H E M I S T R Y   S A N D B O X"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	subtitle := "Press SPACE to start"
	cw.WriteAt(centerX-len(subtitle)/2, centerY+1, subtitle)

	controls := "Drop atoms, watch them fall, collide and react into compounds"
	cw.WriteAt(centerX-len(controls)/2, centerY+4, controls)
}

// drawHUD draws the top UI line: particle count, selection, pause state and
// any transient status message.
func drawHUD(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	row := canvas.TerminalHeight() + 1

	sp, _ := state.Registry.Atom(state.SelectedZ)
	line := fmt.Sprintf("Particles: %d  |  Element: %s (Z=%d)", state.World.Len(), sp.Symbol, state.SelectedZ)
	if state.Paused {
		line += "  |  PAUSED"
	}
	cw.WriteAt(2, row, line)

	if msg := state.Status(); msg != "" {
		cw.SetForeground(statusColor)
		cw.WriteAt(2+len(line)+4, row, msg)
		cw.Reset()
	}
}

// drawPeriodicTable draws the element picker grid below the HUD. Each cell
// shows the element symbol in its species color; the selection is inverted.
func drawPeriodicTable(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	top := canvas.TerminalHeight() + 2

	for z := 1; z <= chem.MaxAtomicNumber; z++ {
		sp, err := state.Registry.Atom(z)
		if err != nil {
			continue
		}
		row, col := chem.TableCell(z)

		sym := sp.Symbol
		if len(sym) > 2 {
			sym = sym[:2] // Placeholder elements all render as "El"
		}

		if z == state.SelectedZ {
			cw.SetBackground(selectedBg)
			cw.SetForeground(selectedFg)
		} else {
			cw.SetForeground(sp.Color)
		}
		cw.WriteAt(2+col*tableCellWidth, top+row, fmt.Sprintf("%-2s", sym))
		cw.Reset()
	}
}

// drawInfoPanel shows either the inspected particle's details or the
// selected element, plus the controls reference.
func drawInfoPanel(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	row := canvas.TerminalHeight() + 2 + chem.TableRows
	cw.SetForeground(infoTextColor)

	if p := state.Inspected; p != nil {
		name := ""
		if sp, err := state.Registry.Get(p.Symbol); err == nil && sp.Name != "" {
			name = " (" + sp.Name + ")"
		}
		cw.WriteAt(2, row, fmt.Sprintf("%s%s  mass %.2f  r %.1f  v (%.2f, %.2f)  speed %.2f  pos (%.1f, %.1f)",
			p.Symbol, name, p.Mass, p.Radius, p.VX, p.VY, p.Speed(), p.X, p.Y))
	} else {
		sp, _ := state.Registry.Atom(state.SelectedZ)
		cw.WriteAt(2, row, fmt.Sprintf("%s  mass %.0f  r %.1f", sp.Symbol, sp.Mass, sp.Radius))
	}
	cw.Reset()

	cw.SetForeground(dimTextColor)
	cw.WriteAt(2, row+1, "arrows/wasd move · space drop · [/] element · x inspect · c clear · p pause · q quit")
	cw.Reset()
}

// drawCursor draws the spawn crosshair over the canvas.
func drawCursor(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	col, row := canvas.LogicalToTerminal(state.CursorX, state.CursorY)
	cw.SetForeground(cursorColor)
	cw.WriteAt(col, row, "+")
	cw.Reset()
}
