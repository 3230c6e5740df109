package i

import (
	"github.com/beka-birhanu/maze-solver-api/identity"
	"github.com/beka-birhanu/maze-solver-api/puzzle"
	"github.com/google/uuid"
)

// AgentRepo defines the interface for agent persistence operations.
type AgentRepo interface {
	// Save inserts or updates an agent in the repository.
	// If the agent already exists, it updates the record. Otherwise, it creates a new one.
	Save(agent *identity.Agent) error

	// ByID retrieves an agent by their unique ID.
	// Returns an error if the agent is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*identity.Agent, error)

	// ByUsername retrieves an agent by their username.
	// Returns an error if the agent is not found or in case of an unexpected error.
	ByUsername(username string) (*identity.Agent, error)
}

// MazeRepo defines the interface for maze record persistence operations.
type MazeRepo interface {
	// Save inserts or updates a maze record keyed by its ID.
	Save(record *puzzle.Record) error

	// ByID retrieves a maze record by its unique ID.
	ByID(id uuid.UUID) (*puzzle.Record, error)

	// ByDifficulty retrieves every maze record of one difficulty tier.
	ByDifficulty(difficulty string) ([]*puzzle.Record, error)
}

// SolutionRepo defines the interface for solution persistence operations.
// A maze keeps at most one solution; saving replaces the previous one.
type SolutionRepo interface {
	// Save inserts or replaces the solution of a maze.
	Save(solution *puzzle.Solution) error

	// ByMazeID retrieves the stored solution of a maze.
	ByMazeID(id uuid.UUID) (*puzzle.Solution, error)
}
