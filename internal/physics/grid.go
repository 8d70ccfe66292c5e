package physics

import "math"

// Pair is an unordered index pair with I < J.
type Pair struct {
	I, J int
}

// Grid is a uniform spatial grid for broad-phase collision detection in a
// bounded (non-wrapping) world. Particles are inserted by position and index;
// CandidatePairs then emits every index pair that shares a cell or sits in
// adjacent cells.
//
// Cell size must be >= the maximum interaction distance (largest radius sum)
// so that every potentially overlapping pair lands within the 3x3
// neighborhood: the candidate set has no false negatives.
type Grid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       [][]int
}

// NewGrid creates a spatial grid covering the given world dimensions.
func NewGrid(worldW, worldH, cellSize float64) *Grid {
	cols := int(math.Ceil(worldW / cellSize))
	rows := int(math.Ceil(worldH / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &Grid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([][]int, cols*rows),
	}
}

// Clear removes all items without deallocating cell memory, so the grid can
// be rebuilt every step cheaply.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an item (identified by index) at the given world position.
// Positions outside the world are clamped into the edge cells.
func (g *Grid) Insert(x, y float64, index int) {
	col, row := g.posToCell(x, y)
	idx := row*g.cols + col
	g.cells[idx] = append(g.cells[idx], index)
}

// forwardNeighbors is the half Moore neighborhood scanned by CandidatePairs:
// east, southwest, south, southeast. Visiting only the forward half means
// each adjacent cell pair is considered exactly once, so pairs come out
// deduplicated without any secondary set.
var forwardNeighbors = [4][2]int{{1, 0}, {-1, 1}, {0, 1}, {1, 1}}

// CandidatePairs appends every unordered candidate pair (I < J) to dst and
// returns it. A pair is a candidate when the two items share a cell or occupy
// adjacent cells; each pair is emitted exactly once.
func (g *Grid) CandidatePairs(dst []Pair) []Pair {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			items := g.cells[row*g.cols+col]
			if len(items) == 0 {
				continue
			}

			// Pairs within the cell.
			for a := 0; a < len(items); a++ {
				for b := a + 1; b < len(items); b++ {
					dst = append(dst, orderPair(items[a], items[b]))
				}
			}

			// Pairs with the forward neighbor cells.
			for _, d := range forwardNeighbors {
				nc, nr := col+d[0], row+d[1]
				if nc < 0 || nc >= g.cols || nr >= g.rows {
					continue
				}
				for _, a := range items {
					for _, b := range g.cells[nr*g.cols+nc] {
						dst = append(dst, orderPair(a, b))
					}
				}
			}
		}
	}
	return dst
}

func orderPair(a, b int) Pair {
	if a < b {
		return Pair{I: a, J: b}
	}
	return Pair{I: b, J: a}
}

// posToCell converts world coordinates to grid cell coordinates, clamped to
// the valid range to absorb floating point edge cases.
func (g *Grid) posToCell(x, y float64) (col, row int) {
	col = int(x * g.invCellSize)
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int(y * g.invCellSize)
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
