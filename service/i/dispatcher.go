package i

import (
	"context"

	"github.com/google/uuid"
)

// Dispatcher queues maze solves and drains them asynchronously in batches.
type Dispatcher interface {
	// Enqueue adds maze IDs to the solve queue of one difficulty tier and
	// kicks off a drain.
	Enqueue(ctx context.Context, difficulty string, ids ...uuid.UUID) error

	// SetSolveHandler sets the function invoked with each drained batch.
	SetSolveHandler(func(difficulty string, ids []uuid.UUID))
}
