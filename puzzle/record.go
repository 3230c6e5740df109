/*
Package puzzle holds the records a maze evaluation set is made of: the mazes
themselves with their start and goal cells, and the solutions computed or
submitted for them.

Records arrive from decoded maze files or the import API and are persisted
as-is. The package validates identity and difficulty only; maze layouts are
taken on faith, since a malformed layout simply makes cells unreachable.
*/
package puzzle

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/google/uuid"
)

// ErrNilMaze is returned when a record is created without a maze grid.
var ErrNilMaze = errors.New("record has no maze")

// Record is a single maze of an evaluation set.
type Record struct {
	ID         uuid.UUID  // ID identifies the maze across files, storage and the API.
	Difficulty string     // Difficulty is the tier the maze belongs to.
	Maze       *maze.Maze // Maze is the wall grid.
	Start      maze.Point // Start is the cell runs begin at.
	Goal       maze.Point // Goal is the cell a solving run must land on.
	Note       string     // Note carries the upstream special instructions text. Never interpreted.
}

// RecordConfig holds parameters for creating a Record.
type RecordConfig struct {
	ID         uuid.UUID
	Difficulty string
	Maze       *maze.Maze
	Start      maze.Point
	Goal       maze.Point
	Note       string
}

// NewRecord creates a Record from the provided configuration. The maze must
// be present and the difficulty must be a known tier; start and goal are
// accepted as given, even outside the grid, because out-of-range points are
// simply unreachable.
func NewRecord(config RecordConfig) (*Record, error) {
	if config.Maze == nil {
		return nil, ErrNilMaze
	}
	if err := ValidateDifficulty(config.Difficulty); err != nil {
		return nil, err
	}

	id := config.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Record{
		ID:         id,
		Difficulty: config.Difficulty,
		Maze:       config.Maze,
		Start:      config.Start,
		Goal:       config.Goal,
		Note:       config.Note,
	}, nil
}

// String identifies the record in logs.
func (r *Record) String() string {
	return fmt.Sprintf("%s [%s] %dx%d start=(%d,%d) goal=(%d,%d)",
		r.ID, r.Difficulty, r.Maze.Width, r.Maze.Height, r.Start.X, r.Start.Y, r.Goal.X, r.Goal.Y)
}
