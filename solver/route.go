package solver

import (
	"fmt"

	"github.com/beka-birhanu/maze-solver-api/maze"
)

// Route produces one continuous move sequence from start through the ordered
// waypoints to the goal.
//
// Each target is attempted from wherever the route currently stands. A
// reachable target appends its segment and becomes the new standing point;
// an unreachable one is skipped without moving or recording an error. After
// the last waypoint the goal is chased directly if the route is not already
// on it. The result may therefore stop short of the goal when the goal
// itself is unreachable; callers detect that by replaying the sequence, not
// through an error. An empty waypoint list degenerates to a single direct
// start to goal search.
func Route(m *maze.Maze, start maze.Point, waypoints []maze.Point, goal maze.Point) []maze.Direction {
	current := start
	var route []maze.Direction

	targets := make([]maze.Point, 0, len(waypoints)+1)
	targets = append(targets, waypoints...)
	targets = append(targets, goal)

	for _, target := range targets {
		segment, err := ShortestPath(m, current, target)
		if err != nil {
			// Skip unreachable targets and keep going from where the
			// route stands.
			continue
		}
		route = append(route, segment...)
		current = target
	}

	if current != goal {
		if segment, err := ShortestPath(m, current, goal); err == nil {
			route = append(route, segment...)
		}
	}

	return route
}

// RouteAll is the strict variant of Route: every waypoint and the goal must
// be reached in order. The first unreachable segment aborts the route with
// an error wrapping ErrNoPath that names the failed leg.
func RouteAll(m *maze.Maze, start maze.Point, waypoints []maze.Point, goal maze.Point) ([]maze.Direction, error) {
	current := start
	var route []maze.Direction

	targets := make([]maze.Point, 0, len(waypoints)+1)
	targets = append(targets, waypoints...)
	targets = append(targets, goal)

	for _, target := range targets {
		segment, err := ShortestPath(m, current, target)
		if err != nil {
			return nil, fmt.Errorf("segment (%d,%d) to (%d,%d): %w", current.X, current.Y, target.X, target.Y, err)
		}
		route = append(route, segment...)
		current = target
	}

	return route, nil
}
