package wordscan

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// scope runs one task per file and joins them in wait.
//
// A scope settles at most once, either by a task failure or by a halt
// (the answer is known). Whichever comes first wins: a failure after a
// halt is dropped, and a halt after a failure does not hide it. Settling
// cancels the scope context, so tasks waiting for a slot or not yet
// scheduled skip their file, and running tasks stop at their next line
// or word.
type scope struct {
	parent context.Context
	ctx    context.Context
	cancel context.CancelCauseFunc
	cfg    *config
	query  string

	wg  sync.WaitGroup
	sem chan struct{}

	settleOnce sync.Once
	err        error

	started atomic.Int64
	skipped atomic.Int64
}

type fileTask func(ctx context.Context, path string) error

// newScope creates a scope that runs at most limit tasks at once. A limit
// of zero means one goroutine per file with no bound.
func newScope(parent context.Context, cfg *config, query string, limit int) *scope {
	ctx, cancel := context.WithCancelCause(parent)
	s := &scope{
		parent: parent,
		ctx:    ctx,
		cancel: cancel,
		cfg:    cfg,
		query:  query,
	}
	if limit > 0 {
		s.sem = make(chan struct{}, limit)
	}
	return s
}

// goFile starts fn for path in its own goroutine.
func (s *scope) goFile(path string, fn fileTask) {
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		if s.sem != nil {
			select {
			case s.sem <- struct{}{}:
				defer func() { <-s.sem }()
			case <-s.ctx.Done():
				s.skipped.Add(1)
				return
			}
		}

		// select picks at random when a slot frees up after the scope
		// settled, so check again before touching the file.
		if s.ctx.Err() != nil {
			s.skipped.Add(1)
			return
		}
		s.started.Add(1)

		info := FileInfo{Query: s.query, Path: path}
		start := time.Now()
		err := s.exec(info, fn)
		if s.cfg.onDone != nil {
			s.cfg.onDone(info, err, time.Since(start))
		}
		if err != nil {
			s.fail(err)
		}
	}()
}

// exec runs fn, turning a panic into a *PanicError.
func (s *scope) exec(info FileInfo, fn fileTask) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newPanicError(info.Path, r)
		}
	}()
	if s.cfg.onStart != nil {
		s.cfg.onStart(info)
	}
	return fn(s.ctx, info.Path)
}

// fail settles the scope with err.
func (s *scope) fail(err error) bool {
	return s.settle(err, err)
}

// halt settles the scope without an error. It reports whether this call
// won the settlement.
func (s *scope) halt() bool {
	return s.settle(nil, errHalted)
}

func (s *scope) settle(err, cause error) (won bool) {
	s.settleOnce.Do(func() {
		s.err = err
		s.cancel(cause)
		won = true
	})
	return won
}

func (s *scope) halted() bool {
	return errors.Is(context.Cause(s.ctx), errHalted)
}

// wait blocks until every task has returned and reports the failure the
// scope settled with. If nothing failed but the parent context was
// cancelled before the scope halted, the parent's error is returned.
func (s *scope) wait() error {
	s.wg.Wait()
	defer s.cancel(nil)

	if s.err != nil {
		return s.err
	}
	if !s.halted() && s.parent.Err() != nil {
		return context.Cause(s.parent)
	}
	return nil
}
