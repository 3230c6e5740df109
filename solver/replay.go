package solver

import (
	"fmt"

	"github.com/beka-birhanu/maze-solver-api/maze"
)

// Replay walks a move sequence from start and returns the point it lands
// on together with the number of moves it applied. A move that crosses a
// wall or steps off the grid aborts the walk with an error wrapping
// ErrBlockedMove that names the failing step; the returned point and count
// then describe where the walk stopped.
//
// Replay is how callers judge a route: a sequence is a solution exactly
// when replaying it lands on the goal.
func Replay(m *maze.Maze, start maze.Point, seq []maze.Direction) (maze.Point, int, error) {
	current := start
	if !m.InBound(current) {
		return current, 0, fmt.Errorf("start (%d,%d) outside grid: %w", current.X, current.Y, ErrBlockedMove)
	}

	for i, d := range seq {
		if !m.CanMove(current, d) {
			return current, i, fmt.Errorf("step %d: %s from (%d,%d): %w", i, d, current.X, current.Y, ErrBlockedMove)
		}
		next := current.Step(d)
		if !m.InBound(next) {
			return current, i, fmt.Errorf("step %d: %s from (%d,%d) leaves the grid: %w", i, d, current.X, current.Y, ErrBlockedMove)
		}
		current = next
	}

	return current, len(seq), nil
}

// Solves reports whether replaying seq from start is legal and lands on
// goal.
func Solves(m *maze.Maze, start maze.Point, seq []maze.Direction, goal maze.Point) bool {
	end, _, err := Replay(m, start, seq)
	return err == nil && end == goal
}
