package draw

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Canvas is a color drawing buffer with 2x vertical resolution: each terminal
// row holds two sub-pixel rows rendered with half-block characters, the top
// sub-pixel as foreground and the bottom as background color.
// Game code draws in logical coordinates which are scaled to terminal pixels.
type Canvas struct {
	termWidth      int // Actual terminal columns
	termHeight     int // Actual terminal rows
	subPixelHeight int // termHeight * 2

	// Flat sub-pixel buffer: [y*termWidth + x]. Zero means unset; set pixels
	// carry 0xFF000000 | RGB so black is distinguishable from empty.
	pixels []uint32

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // subPixelHeight / logicalHeight

	// Offset for centering when the terminal is larger than the render area.
	offsetCol int
	offsetRow int

	renderBuf strings.Builder // Reused between frames
	numBuf    [20]byte        // Scratch for allocation-free integer formatting
}

const pixelSet = 0xFF000000

// NewCanvas creates a canvas mapping the logical coordinate space onto the
// given terminal dimensions. Logical height is in sub-pixels (2 per row).
func NewCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	subPixelHeight := termHeight * 2
	return &Canvas{
		termWidth:      termWidth,
		termHeight:     termHeight,
		subPixelHeight: subPixelHeight,
		pixels:         make([]uint32, subPixelHeight*termWidth),
		logicalWidth:   logicalWidth,
		logicalHeight:  logicalHeight,
		scaleX:         float64(termWidth) / logicalWidth,
		scaleY:         float64(subPixelHeight) / logicalHeight,
	}
}

// Resize updates the canvas for new terminal dimensions, keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	subPixelHeight := termHeight * 2
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]uint32, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at
// (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int { return c.offsetCol }

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

func pack(col Color) uint32 {
	return pixelSet | uint32(col.R)<<16 | uint32(col.G)<<8 | uint32(col.B)
}

// setPixel sets a sub-pixel at terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, v uint32) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = v
	}
}

// SetFloat sets a sub-pixel at logical coordinates.
func (c *Canvas) SetFloat(x, y float64, col Color) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	c.setPixel(px, py, pack(col))
}

// FillCircle rasterizes a filled disc centered at logical (cx, cy) with
// logical radius r. The radius scales with the horizontal axis; the vertical
// extent follows the canvas scale so discs stay round on screen.
func (c *Canvas) FillCircle(cx, cy, r float64, col Color) {
	if r <= 0 {
		c.SetFloat(cx, cy, col)
		return
	}

	v := pack(col)
	pcx := cx * c.scaleX
	pcy := cy * c.scaleY
	prx := r * c.scaleX
	pry := r * c.scaleY

	yStart := int(math.Floor(pcy - pry))
	yEnd := int(math.Ceil(pcy + pry))
	for y := yStart; y <= yEnd; y++ {
		// Half-width of the disc at this scanline, in pixel units.
		dy := (float64(y) - pcy) / pry
		if dy < -1 || dy > 1 {
			continue
		}
		half := prx * math.Sqrt(1-dy*dy)
		xStart := int(math.Ceil(pcx - half))
		xEnd := int(math.Floor(pcx + half))
		for x := xStart; x <= xEnd; x++ {
			c.setPixel(x, y, v)
		}
	}
}

// DrawLine draws a line between two logical points using Bresenham's
// algorithm. Used for the simulation area border.
func (c *Canvas) DrawLine(p1, p2 Point, col Color) {
	v := pack(col)
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1, v)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// maxChunkSize is the maximum bytes written at once, sized near a typical
// MTU for smooth transmission over SSH.
const maxChunkSize = 1400

// Render outputs the canvas using truecolor half-block characters: the top
// sub-pixel of each row maps to the foreground, the bottom to the background.
// Empty cells are skipped entirely.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 16)

	for row := 0; row < c.termHeight; row++ {
		topOffset := (row * 2) * c.termWidth
		bottomOffset := (row*2 + 1) * c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			var bottom uint32
			if row*2+1 < c.subPixelHeight {
				bottom = c.pixels[bottomOffset+col]
			}
			if top == 0 && bottom == 0 {
				continue
			}

			c.moveTo(col+1+c.offsetCol, row+1+c.offsetRow)
			switch {
			case top != 0 && bottom != 0:
				c.sgr(38, top)
				c.sgr(48, bottom)
				c.renderBuf.WriteRune(BlockUpperHalf)
				c.renderBuf.WriteString("\033[0m")
			case top != 0:
				c.sgr(38, top)
				c.renderBuf.WriteRune(BlockUpperHalf)
				c.renderBuf.WriteString("\033[0m")
			default:
				c.sgr(38, bottom)
				c.renderBuf.WriteRune(BlockLowerHalf)
				c.renderBuf.WriteString("\033[0m")
			}
		}
	}

	// Write output in chunks for optimal network flow.
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// moveTo appends an ANSI cursor position sequence without allocation.
func (c *Canvas) moveTo(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// sgr appends a truecolor SGR sequence; plane is 38 (fg) or 48 (bg).
func (c *Canvas) sgr(plane int, v uint32) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(plane), 10))
	c.renderBuf.WriteString(";2;")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(v>>16&0xFF), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(v>>8&0xFF), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(v&0xFF), 10))
	c.renderBuf.WriteByte('m')
}

// LogicalWidth returns the logical width of the drawing space.
func (c *Canvas) LogicalWidth() float64 { return c.logicalWidth }

// LogicalHeight returns the logical height (in sub-pixels).
func (c *Canvas) LogicalHeight() float64 { return c.logicalHeight }

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// LogicalToTerminal converts logical coordinates to a 1-based terminal
// position (col, row), for placing text overlays next to drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
