package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates workers. Nil entries are skipped.
func NewWorkers(workers ...Worker) *Workers {
	ws := &Workers{}
	for _, w := range workers {
		if w != nil {
			ws.workers = append(ws.workers, w)
		}
	}
	return ws
}

// Len reports how many workers will be run.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and waits for all of them.
// The first error cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}
