/*
Package maze models rectangular wall mazes.

It defines the `Maze` structure, composed of `Cell` objects whose four sides
carry independent wall flags, along with the `Point` and `Direction`
vocabulary used to address cells and describe moves.

Movement legality is judged from the departure cell alone: a move is allowed
exactly when the cell being left has no wall on the crossed side. The flag on
the destination cell is never consulted, so mazes with one-way edges are
representable. The package never generates layouts; callers decode them or
open walls by hand.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDimensions is returned when a maze is created with a
	// nonpositive width or height.
	ErrInvalidDimensions = errors.New("invalid maze dimensions")

	// ErrOutOfBounds is returned when a cell position lies outside the grid.
	ErrOutOfBounds = errors.New("cell position out of bounds")
)

// Maze represents a rectangular maze consisting of cells with per-side walls.
// The grid is addressed Grid[y][x], row first. A maze is never mutated by
// path searches and is safe for concurrent read-only use.
type Maze struct {
	Width  int      // Width of the maze (number of columns)
	Height int      // Height of the maze (number of rows)
	Grid   [][]Cell // 2D grid of cells forming the maze
}

// New initializes a maze of the given dimensions with every wall present.
// Callers shape the layout afterwards by opening walls.
func New(width, height int) (*Maze, error) {
	if min(width, height) <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	grid := make([][]Cell, height)
	for i := range grid {
		grid[i] = make([]Cell, width)
		for j := range grid[i] {
			grid[i][j] = Cell{
				TopWall:    true,
				BottomWall: true,
				LeftWall:   true,
				RightWall:  true,
			}
		}
	}

	return &Maze{
		Width:  width,
		Height: height,
		Grid:   grid,
	}, nil
}

// InBound reports whether the point addresses a cell inside the grid.
func (m *Maze) InBound(p Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// CanMove reports whether a step from the given cell in the given direction
// is allowed. The departure cell must be in bounds and have no wall on the
// crossed side; the destination cell's own flags are never consulted.
func (m *Maze) CanMove(p Point, d Direction) bool {
	if !m.InBound(p) || !d.IsValid() {
		return false
	}
	return !m.Grid[p.Y][p.X].HasWall(d)
}

// Neighbors returns the directions in which the cell at p can be left, in
// canonical Up, Down, Left, Right order. Steps that would leave the grid are
// excluded even when the matching wall is open.
func (m *Maze) Neighbors(p Point) []Direction {
	var result []Direction
	for _, d := range AllDirections() {
		if m.CanMove(p, d) && m.InBound(p.Step(d)) {
			result = append(result, d)
		}
	}
	return result
}

// OpenWall removes the wall between the cell at p and its neighbor in the
// given direction, clearing the flag on both sides. Both cells must be in
// bounds.
func (m *Maze) OpenWall(p Point, d Direction) error {
	next := p.Step(d)
	if !m.InBound(p) || !m.InBound(next) {
		return fmt.Errorf("%w: %v -> %v", ErrOutOfBounds, p, next)
	}

	m.Grid[p.Y][p.X].SetWall(d, false)
	m.Grid[next.Y][next.X].SetWall(d.Opposite(), false)
	return nil
}

// String provides a textual representation of the maze. Horizontal walls are
// drawn from each cell's top and bottom flags, vertical walls from its left
// and right flags, so asymmetric layouts render exactly as stored.
func (m *Maze) String() string {
	var output strings.Builder

	// Top boundary from the first row's top flags
	output.WriteString("+")
	for x := 0; x < m.Width; x++ {
		if m.Grid[0][x].TopWall {
			output.WriteString("---+")
		} else {
			output.WriteString("   +")
		}
	}
	output.WriteString("\n")

	for y := 0; y < m.Height; y++ {
		// Cell rows
		if m.Grid[y][0].LeftWall {
			output.WriteString("|")
		} else {
			output.WriteString(" ")
		}
		for x := 0; x < m.Width; x++ {
			output.WriteString("   ")
			if m.Grid[y][x].RightWall {
				output.WriteString("|")
			} else {
				output.WriteString(" ")
			}
		}
		output.WriteString("\n")

		// Wall rows
		output.WriteString("+")
		for x := 0; x < m.Width; x++ {
			if m.Grid[y][x].BottomWall {
				output.WriteString("---+")
			} else {
				output.WriteString("   +")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}
