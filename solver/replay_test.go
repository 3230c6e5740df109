package solver

import (
	"testing"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/stretchr/testify/assert"
)

func TestReplay(t *testing.T) {
	t.Run("lands on the claimed end point", func(t *testing.T) {
		m := lShape(t)

		landed, applied, err := Replay(m, maze.Point{X: 0, Y: 0}, []maze.Direction{maze.Right, maze.Down})
		assert.NoError(t, err)
		assert.Equal(t, maze.Point{X: 1, Y: 1}, landed)
		assert.Equal(t, 2, applied)
	})

	t.Run("empty sequence stays at start", func(t *testing.T) {
		m := lShape(t)
		start := maze.Point{X: 1, Y: 0}

		landed, _, err := Replay(m, start, nil)
		assert.NoError(t, err)
		assert.Equal(t, start, landed)
	})

	t.Run("rejects a wall crossing with its step index", func(t *testing.T) {
		m := lShape(t)

		landed, applied, err := Replay(m, maze.Point{X: 0, Y: 0}, []maze.Direction{maze.Right, maze.Down, maze.Left})
		assert.ErrorIs(t, err, ErrBlockedMove)
		assert.ErrorContains(t, err, "step 2")
		assert.Equal(t, maze.Point{X: 1, Y: 1}, landed)
		assert.Equal(t, 2, applied)
	})

	t.Run("rejects stepping off the grid", func(t *testing.T) {
		m, err := maze.New(2, 1)
		assert.NoError(t, err)
		m.Grid[0][0].RightWall = false
		m.Grid[0][1].LeftWall = false
		m.Grid[0][1].RightWall = false // border wall opened by hand

		_, applied, err := Replay(m, maze.Point{X: 0, Y: 0}, []maze.Direction{maze.Right, maze.Right})
		assert.ErrorIs(t, err, ErrBlockedMove)
		assert.ErrorContains(t, err, "step 1")
		assert.ErrorContains(t, err, "leaves the grid")
		assert.Equal(t, 1, applied)
	})

	t.Run("rejects a start outside the grid", func(t *testing.T) {
		m := lShape(t)

		_, _, err := Replay(m, maze.Point{X: -1, Y: 0}, nil)
		assert.ErrorIs(t, err, ErrBlockedMove)
	})
}

func TestSolves(t *testing.T) {
	m := lShape(t)
	start := maze.Point{X: 0, Y: 0}
	goal := maze.Point{X: 1, Y: 1}

	t.Run("true for a legal goal reaching sequence", func(t *testing.T) {
		assert.True(t, Solves(m, start, []maze.Direction{maze.Right, maze.Down}, goal))
	})

	t.Run("false when the sequence stops short", func(t *testing.T) {
		assert.False(t, Solves(m, start, []maze.Direction{maze.Right}, goal))
	})

	t.Run("false when the sequence breaks the rules", func(t *testing.T) {
		assert.False(t, Solves(m, start, []maze.Direction{maze.Down, maze.Right}, goal))
	})
}
