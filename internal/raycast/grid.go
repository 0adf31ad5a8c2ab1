package raycast

import (
	"errors"
	"fmt"
	"math"
)

// Cell is the occupancy state of a single grid square.
type Cell uint8

const (
	Empty Cell = iota
	Wall
)

var (
	ErrEmptyGrid    = errors.New("grid has no rows")
	ErrNotSquare    = errors.New("grid is not square")
	ErrUnknownCell  = errors.New("unknown cell rune")
	ErrOpenBorder   = errors.New("grid border is not solid")
	ErrGridTooSmall = errors.New("grid must be at least 3x3")
)

// Point is a position in grid units, where 1.0 is one cell width.
type Point struct {
	X, Y float64
}

// Sub returns the difference vector p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Len returns the Euclidean length of p treated as a vector.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Grid is a square occupancy map indexed [row][col]. It is never mutated
// after construction, so it can be shared freely between readers.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid allocates an all-empty size x size grid.
func NewGrid(size int) *Grid {
	if size < 0 {
		size = 0
	}
	return &Grid{size: size, cells: make([]Cell, size*size)}
}

// NewBorderedGrid allocates a size x size grid whose outer ring is solid.
func NewBorderedGrid(size int) *Grid {
	g := NewGrid(size)
	for i := 0; i < size; i++ {
		g.set(i, 0, Wall)
		g.set(i, size-1, Wall)
		g.set(0, i, Wall)
		g.set(size-1, i, Wall)
	}
	return g
}

// GridFromRows parses a square text map. '#' and '1' are walls; '.', '0' and
// ' ' are empty. The outer ring must be solid so every ray terminates.
func GridFromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	size := len(rows)
	if size < 3 {
		return nil, ErrGridTooSmall
	}
	g := NewGrid(size)
	for row, line := range rows {
		runes := []rune(line)
		if len(runes) != size {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", row, len(runes), size, ErrNotSquare)
		}
		for col, r := range runes {
			switch r {
			case '#', '1':
				g.set(col, row, Wall)
			case '.', '0', ' ':
			default:
				return nil, fmt.Errorf("row %d col %d %q: %w", row, col, r, ErrUnknownCell)
			}
		}
	}
	for i := 0; i < size; i++ {
		if g.At(i, 0) != Wall || g.At(i, size-1) != Wall || g.At(0, i) != Wall || g.At(size-1, i) != Wall {
			return nil, ErrOpenBorder
		}
	}
	return g, nil
}

// WithWalls returns a copy of g with the given (col, row) cells set solid.
// Out-of-range cells are ignored.
func (g *Grid) WithWalls(cells ...[2]int) *Grid {
	out := &Grid{size: g.size, cells: append([]Cell(nil), g.cells...)}
	for _, c := range cells {
		if out.InBounds(c[0], c[1]) {
			out.set(c[0], c[1], Wall)
		}
	}
	return out
}

func (g *Grid) set(col, row int, c Cell) {
	g.cells[row*g.size+col] = c
}

// Size reports the side length of the grid.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether (col, row) indexes a cell.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.size && row >= 0 && row < g.size
}

// At returns the cell at (col, row); anything outside the grid is Empty.
func (g *Grid) At(col, row int) Cell {
	if !g.InBounds(col, row) {
		return Empty
	}
	return g.cells[row*g.size+col]
}

// Occupied reports whether p lies inside a wall cell. Points outside the open
// interval (0, N) on either axis are never occupied.
func (g *Grid) Occupied(p Point) bool {
	n := float64(g.size)
	if !(p.X > 0 && p.X < n && p.Y > 0 && p.Y < n) {
		return false
	}
	return g.At(int(math.Floor(p.X)), int(math.Floor(p.Y))) == Wall
}

// WallCount returns the number of solid cells.
func (g *Grid) WallCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Wall {
			n++
		}
	}
	return n
}
