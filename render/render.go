/*
Package render draws mazes as ASCII box diagrams for human inspection.

The default drawing marks the start and goal cells. Options overlay a walked
move sequence, add coordinate labels, or colorize the cell marks with ANSI
styles. Output is plain text unless color is requested, so rendered mazes
are stable across terminals and in tests.
*/
package render

import (
	"fmt"
	"strings"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/gookit/color"
)

const emptyMark = "   "

// Renderer draws mazes according to its configured options. The zero
// configuration draws plain diagrams with start and goal marks only.
type Renderer struct {
	path    []maze.Direction
	coords  bool
	colored bool

	styleStart color.Style
	styleGoal  color.Style
	stylePath  color.Style
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPath overlays the trajectory of the move sequence on the drawing.
// Cells the walk passes through are marked with '*'.
func WithPath(seq []maze.Direction) Option {
	return func(r *Renderer) {
		r.path = seq
	}
}

// WithCoords adds row and column index labels around the drawing.
func WithCoords() Option {
	return func(r *Renderer) {
		r.coords = true
	}
}

// WithColor styles the start, goal and path marks with ANSI colors.
func WithColor() Option {
	return func(r *Renderer) {
		r.colored = true
	}
}

// New creates a Renderer with the given options applied.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		styleStart: color.Style{color.FgGreen, color.OpBold},
		styleGoal:  color.Style{color.FgRed, color.OpBold},
		stylePath:  color.Style{color.FgYellow},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Draw renders the maze as a box diagram. Walls are drawn from each cell's
// own flags, so asymmetric layouts show exactly as stored. Start and goal
// cells are marked 'S' and 'G'; a configured path marks the cells it walks
// through with '*'.
func (r *Renderer) Draw(m *maze.Maze, start, goal maze.Point) string {
	marks := r.cellMarks(m, start, goal)
	var result []string

	if r.coords {
		header := "    "
		for x := 0; x < m.Width; x++ {
			header += fmt.Sprintf(" %d  ", x)
		}
		result = append(result, header)
	}

	// Top border from the first row's top flags
	topLine := r.borderPrefix()
	for x := 0; x < m.Width; x++ {
		topLine += "+"
		if m.Grid[0][x].TopWall {
			topLine += "---"
		} else {
			topLine += "   "
		}
	}
	result = append(result, topLine+"+")

	for y := 0; y < m.Height; y++ {
		contentLine := ""
		if r.coords {
			contentLine = fmt.Sprintf(" %d ", y)
		}
		for x := 0; x < m.Width; x++ {
			if m.Grid[y][x].LeftWall {
				contentLine += "|"
			} else {
				contentLine += " "
			}
			contentLine += marks[y][x]
		}
		if m.Grid[y][m.Width-1].RightWall {
			contentLine += "|"
		} else {
			contentLine += " "
		}
		result = append(result, contentLine)

		bottomLine := r.borderPrefix()
		for x := 0; x < m.Width; x++ {
			bottomLine += "+"
			if m.Grid[y][x].BottomWall {
				bottomLine += "---"
			} else {
				bottomLine += "   "
			}
		}
		result = append(result, bottomLine+"+")
	}

	return strings.Join(result, "\n")
}

// Walls renders the compact wall block view: a (2*width+1) x (2*height+1)
// character grid with '+' corners, '-' and '|' wall segments and 'S'/'G'
// cell marks.
func (r *Renderer) Walls(m *maze.Maze, start, goal maze.Point) string {
	w := 2*m.Width + 1
	h := 2*m.Height + 1
	visual := make([][]byte, h)
	for i := range visual {
		visual[i] = []byte(strings.Repeat(" ", w))
	}

	for y := 0; y <= m.Height; y++ {
		for x := 0; x <= m.Width; x++ {
			visual[y*2][x*2] = '+'
		}
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			cell := m.Grid[y][x]
			if cell.TopWall {
				visual[y*2][x*2+1] = '-'
			}
			if cell.BottomWall {
				visual[(y+1)*2][x*2+1] = '-'
			}
			if cell.LeftWall {
				visual[y*2+1][x*2] = '|'
			}
			if cell.RightWall {
				visual[y*2+1][(x+1)*2] = '|'
			}
		}
	}

	if m.InBound(start) {
		visual[start.Y*2+1][start.X*2+1] = 'S'
	}
	if m.InBound(goal) {
		visual[goal.Y*2+1][goal.X*2+1] = 'G'
	}

	lines := make([]string, h)
	for i, row := range visual {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

// cellMarks builds the per-cell 3 character marks: start, goal, walked path
// cells and blanks.
func (r *Renderer) cellMarks(m *maze.Maze, start, goal maze.Point) [][]string {
	marks := make([][]string, m.Height)
	for y := range marks {
		marks[y] = make([]string, m.Width)
		for x := range marks[y] {
			marks[y][x] = emptyMark
		}
	}

	set := func(p maze.Point, mark string, style color.Style) {
		if !m.InBound(p) {
			return
		}
		if r.colored {
			mark = style.Sprint(mark)
		}
		marks[p.Y][p.X] = mark
	}

	set(goal, " G ", r.styleGoal)
	set(start, " S ", r.styleStart)

	current := start
	for _, d := range r.path {
		current = current.Step(d)
		if !m.InBound(current) {
			break
		}
		if marks[current.Y][current.X] == emptyMark {
			set(current, " * ", r.stylePath)
		}
	}

	return marks
}

// borderPrefix pads horizontal border lines when coordinate labels shift
// the drawing right.
func (r *Renderer) borderPrefix() string {
	if r.coords {
		return "   "
	}
	return ""
}
