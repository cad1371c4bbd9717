package wordscan

import (
	"context"
	"sync/atomic"
)

// completionPool runs one task per submitted file and hands their results
// back in completion order rather than submission order, so the consumer
// can stop as soon as it has enough without waiting for stragglers.
type completionPool[T any] struct {
	s       *scope
	results chan T

	submitted atomic.Int64
	taken     atomic.Int64
}

// poolStats is a point-in-time snapshot of pool activity.
type poolStats struct {
	Submitted int64 // tasks handed to the pool
	Started   int64 // tasks that began scanning their file
	Skipped   int64 // tasks dropped because the pool had stopped
	Taken     int64 // results consumed by take
}

// newCompletionPool creates a pool for at most size submissions. Results
// are buffered to size so a finished task never blocks.
func newCompletionPool[T any](ctx context.Context, cfg *config, query string, size int) *completionPool[T] {
	return &completionPool[T]{
		s:       newScope(ctx, cfg, query, cfg.ioLimit),
		results: make(chan T, size),
	}
}

// submit schedules fn for path.
func (p *completionPool[T]) submit(path string, fn func(ctx context.Context, path string) (T, error)) {
	p.submitted.Add(1)
	p.s.goFile(path, func(ctx context.Context, path string) error {
		v, err := fn(ctx, path)
		if err != nil {
			return err
		}
		p.results <- v
		return nil
	})
}

// take blocks until the next task finishes and returns its result. Once a
// task has failed, or the parent context is cancelled, take returns that
// error instead.
func (p *completionPool[T]) take() (T, error) {
	select {
	case v := <-p.results:
		p.taken.Add(1)
		return v, nil
	case <-p.s.ctx.Done():
		var zero T
		return zero, context.Cause(p.s.ctx)
	}
}

// shutdown stops the pool, skipping every task that has not started,
// and waits for running tasks to return. It reports a task failure that
// happened before the stop.
func (p *completionPool[T]) shutdown() error {
	p.s.halt()
	return p.s.wait()
}

func (p *completionPool[T]) stats() poolStats {
	return poolStats{
		Submitted: p.submitted.Load(),
		Started:   p.s.started.Load(),
		Skipped:   p.s.skipped.Load(),
		Taken:     p.taken.Load(),
	}
}
