package puzzle

import (
	"time"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/google/uuid"
)

// Solution is the stored outcome of solving one maze. A maze keeps at most
// one solution; solving again replaces it.
type Solution struct {
	MazeID    uuid.UUID        // MazeID is the maze the moves were computed for.
	Moves     []maze.Direction // Moves is the computed move sequence. Empty means no route was found.
	Complete  bool             // Complete records whether replaying the moves lands on the goal.
	CreatedAt time.Time        // CreatedAt is when the solution was computed.
}

// Verdict is the outcome of replaying a submitted move sequence against a
// maze.
type Verdict struct {
	MazeID  uuid.UUID  // MazeID is the maze the sequence was replayed on.
	End     maze.Point // End is the cell the replay stopped on.
	Reached bool       // Reached reports whether the replay landed on the goal.
	Steps   int        // Steps is the number of moves applied before stopping.
	Fault   string     // Fault describes the illegal move that aborted the replay, if any.
}
