/*
Package solver computes move sequences through wall mazes.

ShortestPath runs a breadth-first search between two cells and returns a
minimum-length move sequence. Route chains pairwise searches through an
ordered waypoint list, silently skipping waypoints that cannot be reached
and always taking one last run at the goal. RouteAll is the strict variant
that fails on the first unreachable segment. Replay walks a move sequence
against the maze to verify it and report where it lands.

Searches never mutate the maze, so one maze may serve any number of
concurrent solves.
*/
package solver

import (
	"errors"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/zyedidia/generic/mapset"
)

var (
	// ErrNoPath signals that no wall-permitted route connects two points.
	// It is a normal result value, not a fault; the waypoint router reacts
	// to it with its skip policy.
	ErrNoPath = errors.New("solver: no path between points")

	// ErrBlockedMove signals that a replayed move crosses a wall or leaves
	// the grid.
	ErrBlockedMove = errors.New("solver: move blocked")
)

// frontierNode is one pending search state: a cell and the moves taken to
// reach it from the search start.
type frontierNode struct {
	pos   maze.Point
	moves []maze.Direction
}

// ShortestPath returns a minimum-length move sequence from start to end, or
// ErrNoPath when no wall-permitted route connects them.
//
// The search is breadth-first with neighbors expanded in the fixed order
// Up, Down, Left, Right, which makes the returned sequence deterministic:
// identical inputs yield identical sequences, the expansion order acting as
// the tie-break between equally short paths. If start equals end the result
// is an empty sequence. Points outside the grid are unreachable by
// definition, so searches from or to them report ErrNoPath.
func ShortestPath(m *maze.Maze, start, end maze.Point) ([]maze.Direction, error) {
	if start == end {
		return nil, nil
	}

	visited := mapset.New[maze.Point]()
	visited.Put(start)
	queue := []frontierNode{{pos: start}}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if node.pos == end {
			return node.moves, nil
		}

		for _, d := range maze.AllDirections() {
			if !m.CanMove(node.pos, d) {
				continue
			}
			next := node.pos.Step(d)
			if !m.InBound(next) || visited.Has(next) {
				continue
			}

			visited.Put(next)
			queue = append(queue, frontierNode{
				pos:   next,
				moves: append(append([]maze.Direction{}, node.moves...), d),
			})
		}
	}

	return nil, ErrNoPath
}
