package i

import (
	"io"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/puzzle"
	"github.com/google/uuid"
)

// MazeSolver runs maze solves and records their outcomes.
type MazeSolver interface {
	// Import decodes a maze file and persists every record in it,
	// returning the records in file order.
	Import(r io.Reader) ([]*puzzle.Record, error)

	// Maze retrieves one maze record.
	Maze(id uuid.UUID) (*puzzle.Record, error)

	// ByDifficulty retrieves every maze record of one tier, for batch runs.
	ByDifficulty(difficulty string) ([]*puzzle.Record, error)

	// Solve computes a route for the maze through the optional waypoints,
	// stores it as the maze's solution and returns it. With strict set,
	// every waypoint must be reachable or the solve fails.
	Solve(id uuid.UUID, waypoints []maze.Point, strict bool) (*puzzle.Solution, error)

	// SolveBatch solves a drained batch of mazes with no waypoints, storing
	// each outcome. It is shaped to serve as a dispatcher solve handler.
	SolveBatch(difficulty string, ids []uuid.UUID)

	// Solution retrieves the stored solution of a maze.
	Solution(id uuid.UUID) (*puzzle.Solution, error)

	// Replay checks a submitted move sequence against a maze and returns
	// the verdict. Goal-reaching submissions are credited to the agent.
	Replay(mazeID, agentID uuid.UUID, moves []maze.Direction) (*puzzle.Verdict, error)
}
