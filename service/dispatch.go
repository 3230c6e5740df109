package service

import (
	"context"
	"fmt"
	"time"

	"github.com/beka-birhanu/maze-solver-api/puzzle"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/google/uuid"
)

const (
	defaultPrefix         = "solver"
	defaultBatchSize      = 4
	queueDifficultyKeyFmt = "%s:queue:difficulty_%s"
)

type solveHandlerFunc func(difficulty string, ids []uuid.UUID)

type Options struct {
	Prefix    string
	Handler   solveHandlerFunc
	BatchSize int64
}

type Dispatcher struct {
	sortedQueue i.SortedQueue
	logger      i.Logger
	opts        *Options
}

func NewDispatcher(sortedQueue i.SortedQueue, logger i.Logger, opts *Options) (i.Dispatcher, error) {
	if opts == nil {
		opts = &Options{
			BatchSize: defaultBatchSize,
			Prefix:    defaultPrefix,
		}
	}

	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}

	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}

	return &Dispatcher{
		opts:        opts,
		sortedQueue: sortedQueue,
		logger:      logger,
	}, nil
}

func (d *Dispatcher) Enqueue(ctx context.Context, difficulty string, ids ...uuid.UUID) error {
	if err := puzzle.ValidateDifficulty(difficulty); err != nil {
		return err
	}

	d.logger.Info(fmt.Sprintf("Queueing %d mazes for solving: difficulty=%s", len(ids), difficulty))
	queueKey := d.queueKey(difficulty)
	for _, id := range ids {
		score := float64(time.Now().UnixNano())
		if err := d.sortedQueue.Enqueue(ctx, queueKey, score, id.String()); err != nil {
			d.logger.Error(fmt.Sprintf("Failed to enqueue maze: %s", err))
			return err
		}
	}

	go d.drain(ctx, difficulty)
	return nil
}

func (d *Dispatcher) drain(ctx context.Context, difficulty string) {
	queueKey := d.queueKey(difficulty)
	for d.sortedQueue.Count(ctx, queueKey) > 0 {
		rawIDs, err := d.sortedQueue.DequeTops(ctx, queueKey, d.opts.BatchSize)
		if err != nil {
			d.logger.Error(fmt.Sprintf("obtaining drain lock: %s", err))
			return
		}

		if len(rawIDs) == 0 {
			return
		}

		var mazeIDs []uuid.UUID
		for _, raw := range rawIDs {
			if id, err := uuid.Parse(raw); err == nil {
				mazeIDs = append(mazeIDs, id)
			} else {
				d.logger.Warning(fmt.Sprintf("Non-UUID value in queue: %s", raw))
			}
		}

		if d.opts.Handler != nil && len(mazeIDs) > 0 {
			d.logger.Info(fmt.Sprintf("Dispatching %s batch: %v", difficulty, mazeIDs))
			go d.opts.Handler(difficulty, mazeIDs)
		}
	}
}

func (d *Dispatcher) SetSolveHandler(f func(difficulty string, ids []uuid.UUID)) {
	d.opts.Handler = f
}

func (d *Dispatcher) queueKey(difficulty string) string {
	return fmt.Sprintf(queueDifficultyKeyFmt, d.opts.Prefix, difficulty)
}
