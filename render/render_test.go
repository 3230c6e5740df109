package render

import (
	"testing"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoByTwo builds the 2x2 maze with the L passage from (0,0) through (1,0)
// to (1,1).
func twoByTwo(t *testing.T) *maze.Maze {
	t.Helper()

	m, err := maze.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.OpenWall(maze.Point{X: 0, Y: 0}, maze.Right))
	require.NoError(t, m.OpenWall(maze.Point{X: 1, Y: 0}, maze.Down))
	return m
}

func TestDraw(t *testing.T) {
	start := maze.Point{X: 0, Y: 0}
	goal := maze.Point{X: 1, Y: 1}

	t.Run("marks start and goal", func(t *testing.T) {
		m := twoByTwo(t)

		expected := "+---+---+\n" +
			"| S     |\n" +
			"+---+   +\n" +
			"|   | G |\n" +
			"+---+---+"
		assert.Equal(t, expected, New().Draw(m, start, goal))
	})

	t.Run("overlays the walked path", func(t *testing.T) {
		m := twoByTwo(t)
		r := New(WithPath([]maze.Direction{maze.Right, maze.Down}))

		expected := "+---+---+\n" +
			"| S   * |\n" +
			"+---+   +\n" +
			"|   | G |\n" +
			"+---+---+"
		assert.Equal(t, expected, r.Draw(m, start, goal))
	})

	t.Run("adds coordinate labels", func(t *testing.T) {
		m := twoByTwo(t)
		r := New(WithCoords())

		expected := "     0   1  \n" +
			"   +---+---+\n" +
			" 0 | S     |\n" +
			"   +---+   +\n" +
			" 1 |   | G |\n" +
			"   +---+---+"
		assert.Equal(t, expected, r.Draw(m, start, goal))
	})

	t.Run("color changes styling only", func(t *testing.T) {
		m := twoByTwo(t)
		colored := New(WithColor(), WithPath([]maze.Direction{maze.Right, maze.Down}))
		plain := New(WithPath([]maze.Direction{maze.Right, maze.Down}))

		assert.Equal(t, plain.Draw(m, start, goal), color.ClearCode(colored.Draw(m, start, goal)))
	})

	t.Run("start wins the mark when start equals goal", func(t *testing.T) {
		m := twoByTwo(t)

		out := New().Draw(m, start, start)
		assert.Contains(t, out, " S ")
		assert.NotContains(t, out, " G ")
	})

	t.Run("out of bounds marks are ignored", func(t *testing.T) {
		m := twoByTwo(t)

		out := New().Draw(m, maze.Point{X: 9, Y: 9}, maze.Point{X: -1, Y: 0})
		assert.NotContains(t, out, "S")
		assert.NotContains(t, out, "G")
	})
}

func TestWalls(t *testing.T) {
	t.Run("renders the compact wall block view", func(t *testing.T) {
		m, err := maze.New(2, 1)
		require.NoError(t, err)
		require.NoError(t, m.OpenWall(maze.Point{X: 0, Y: 0}, maze.Right))

		expected := "+-+-+\n" +
			"|S G|\n" +
			"+-+-+"
		assert.Equal(t, expected, New().Walls(m, maze.Point{X: 0, Y: 0}, maze.Point{X: 1, Y: 0}))
	})

	t.Run("keeps asymmetric walls visible", func(t *testing.T) {
		m, err := maze.New(2, 1)
		require.NoError(t, err)
		m.Grid[0][0].RightWall = false // destination side stays walled

		expected := "+-+-+\n" +
			"|S|G|\n" +
			"+-+-+"
		assert.Equal(t, expected, New().Walls(m, maze.Point{X: 0, Y: 0}, maze.Point{X: 1, Y: 0}))
	})
}
