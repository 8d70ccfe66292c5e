// Package loop provides the main sandbox loop and session state.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/dasbooter/physics/internal/config"
	"github.com/dasbooter/physics/internal/draw"
	"github.com/dasbooter/physics/internal/input"
)

// Options configures a sandbox session.
type Options struct {
	Config   *config.Sim       // nil means config.Default()
	TermSize draw.TermSizeFunc // nil means stdout size
}

// Run starts the sandbox loop with the standard input -> update -> draw
// cycle. Blocks until the player quits or the reader closes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	termSize := opts.TermSize
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}

	state := NewState(cfg)
	state.InputStream = input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	defer draw.ResetStyle(w)
	draw.ClearScreen(w)

	termWidth, termHeight, err := termSize()
	if err != nil {
		return err
	}
	canvas := draw.NewCanvas(termWidth, canvasRows(termHeight), simWidth, simHeight)
	cw := draw.NewChunkWriter(w, 0, 0)

	lastTime := time.Now()

	for state.Running {
		frameStart := time.Now()
		state.Delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		state.prevInput = state.Input
		state.Input = input.ReadInput(state.InputStream)
		if state.Input.Quit {
			state.Running = false
		}

		// ===== UPDATE PHASE =====
		if termWidth, termHeight, err = termSize(); err != nil {
			return err
		}
		canvas.Resize(termWidth, canvasRows(termHeight))

		switch state.Phase {
		case PhaseTitle:
			updateTitle(state)
		case PhaseRunning:
			updateRunning(state)
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(state, w, canvas, cw); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// canvasRows returns the terminal rows available to the canvas after
// reserving the UI area.
func canvasRows(termHeight int) int {
	rows := termHeight - uiRows
	if rows < minCanvasRows {
		rows = minCanvasRows
	}
	return rows
}

// drawFrame clears the screen, renders the world to the canvas, and lays the
// text UI over it.
func drawFrame(state *State, w io.Writer, canvas *draw.Canvas, cw *draw.ChunkWriter) error {
	draw.ClearScreen(w)
	canvas.Clear()

	switch state.Phase {
	case PhaseTitle:
		drawTitleScreen(cw, canvas)
	case PhaseRunning:
		drawWorld(state, canvas)
		canvas.Render(w)
		drawHUD(state, cw, canvas)
		drawPeriodicTable(state, cw, canvas)
		drawInfoPanel(state, cw, canvas)
		drawCursor(state, cw, canvas)
	}

	return cw.Flush()
}

// drawWorld paints the border and every particle disc.
func drawWorld(state *State, canvas *draw.Canvas) {
	border := draw.Color{R: 90, G: 90, B: 90}
	canvas.DrawLine(draw.Point{X: 0, Y: 0}, draw.Point{X: simWidth - 1, Y: 0}, border)
	canvas.DrawLine(draw.Point{X: 0, Y: simHeight - 1}, draw.Point{X: simWidth - 1, Y: simHeight - 1}, border)
	canvas.DrawLine(draw.Point{X: 0, Y: 0}, draw.Point{X: 0, Y: simHeight - 1}, border)
	canvas.DrawLine(draw.Point{X: simWidth - 1, Y: 0}, draw.Point{X: simWidth - 1, Y: simHeight - 1}, border)

	for _, p := range state.World.Particles() {
		canvas.FillCircle(p.X, p.Y, p.Radius, p.Color)
	}
}
