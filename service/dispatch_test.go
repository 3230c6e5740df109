package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/beka-birhanu/maze-solver-api/puzzle"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type scoredMember struct {
	score  float64
	member string
}

type memQueue struct {
	mu     sync.Mutex
	queues map[string][]scoredMember
}

func newMemQueue() *memQueue {
	return &memQueue{queues: make(map[string][]scoredMember)}
}

func (q *memQueue) Enqueue(_ context.Context, queueKey string, score float64, member string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.queues[queueKey] = append(q.queues[queueKey], scoredMember{score: score, member: member})
	return nil
}

func (q *memQueue) DequeTops(_ context.Context, queueKey string, amount int64) ([]string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	members := q.queues[queueKey]
	sort.SliceStable(members, func(i, j int) bool { return members[i].score < members[j].score })

	if int64(len(members)) < amount {
		amount = int64(len(members))
	}

	var popped []string
	for _, m := range members[:amount] {
		popped = append(popped, m.member)
	}
	q.queues[queueKey] = members[amount:]
	return popped, nil
}

func (q *memQueue) Count(_ context.Context, queueKey string) int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.queues[queueKey]))
}

func TestDispatcher(t *testing.T) {
	t.Run("Drains queued mazes to the handler in batches", func(t *testing.T) {
		queue := newMemQueue()
		dispatcher, err := NewDispatcher(queue, nopLogger{}, &Options{BatchSize: 2})
		assert.NoError(t, err)

		batches := make(chan []uuid.UUID, 4)
		dispatcher.SetSolveHandler(func(difficulty string, ids []uuid.UUID) {
			assert.Equal(t, puzzle.DifficultyEasy, difficulty)
			batches <- ids
		})

		ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
		assert.NoError(t, dispatcher.Enqueue(context.Background(), puzzle.DifficultyEasy, ids...))

		var drained []uuid.UUID
		for len(drained) < len(ids) {
			select {
			case batch := <-batches:
				assert.LessOrEqual(t, len(batch), 2)
				drained = append(drained, batch...)
			case <-time.After(2 * time.Second):
				t.Fatal("timed out waiting for the queue to drain")
			}
		}
		assert.ElementsMatch(t, ids, drained)
	})

	t.Run("Rejects an unknown difficulty tier", func(t *testing.T) {
		dispatcher, err := NewDispatcher(newMemQueue(), nopLogger{}, nil)
		assert.NoError(t, err)

		err = dispatcher.Enqueue(context.Background(), "nightmare", uuid.New())
		assert.ErrorIs(t, err, puzzle.ErrUnknownDifficulty)
	})

	t.Run("Skips queue entries that are not maze ids", func(t *testing.T) {
		queue := newMemQueue()
		dispatcher, err := NewDispatcher(queue, nopLogger{}, nil)
		assert.NoError(t, err)

		batches := make(chan []uuid.UUID, 1)
		dispatcher.SetSolveHandler(func(_ string, ids []uuid.UUID) {
			batches <- ids
		})

		queueKey := "solver:queue:difficulty_" + puzzle.DifficultyHard
		assert.NoError(t, queue.Enqueue(context.Background(), queueKey, 1, "garbage"))

		id := uuid.New()
		assert.NoError(t, dispatcher.Enqueue(context.Background(), puzzle.DifficultyHard, id))

		select {
		case batch := <-batches:
			assert.Equal(t, []uuid.UUID{id}, batch)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for the queue to drain")
		}
	})
}
