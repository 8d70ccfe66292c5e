package loop

import "time"

// Frame timing.
const (
	targetFPS       = 60
	targetFrameTime = time.Second / targetFPS
	maxFrameDelta   = 0.05 // Seconds; clamps dt after suspends/resizes
)

// Logical simulation area, in canvas sub-pixel units (2 per terminal row).
const (
	simWidth  = 160.0
	simHeight = 96.0
)

// Terminal layout: rows below the canvas reserved for the HUD, the periodic
// table picker and the info panel.
const (
	uiRows         = 12
	minCanvasRows  = 10
	tableCellWidth = 3
)

// Cursor.
const cursorSpeed = 60.0 // World units per second

// How long transient status messages stay visible.
const statusDuration = 2 * time.Second
