package wordscan

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// WordsWithSubstring returns up to limit words from the eligible files
// under root that contain substr (case-sensitive).
//
// Every file is scanned by its own task and results are gathered in the
// order tasks finish. All tasks share a match counter, checked before
// each line and each word, and stop once it reaches limit. The engine
// stops the remaining tasks as soon as it holds limit words. A limit of
// zero returns an empty list without touching the file system.
func (e *Engine) WordsWithSubstring(ctx context.Context, root, substr string, limit int) ([]LocatedWord, error) {
	const query = "substring"
	if limit < 0 {
		return nil, invalidArg("negative limit %d", limit)
	}
	if limit == 0 {
		return []LocatedWord{}, nil
	}
	start := time.Now()

	files, err := e.listFiles(ctx, query, root)
	if err != nil {
		return nil, err
	}

	var matched atomic.Int64
	pool := newCompletionPool[[]LocatedWord](ctx, &e.cfg, query, len(files))
	for _, path := range files {
		pool.submit(path, func(ctx context.Context, path string) ([]LocatedWord, error) {
			return e.substringsInFile(ctx, path, substr, int64(limit), &matched)
		})
	}

	out, err := collectUpTo(pool, len(files), limit)
	if serr := pool.shutdown(); err == nil {
		err = serr
	}
	stats := pool.stats()
	if err != nil {
		e.logDone(query, start, err)
		return nil, err
	}

	if len(out) > limit {
		out = out[:limit]
	}
	e.logDone(query, start, nil,
		zap.Int("limit", limit),
		zap.Int("matches", len(out)),
		zap.Int64("started", stats.Started),
		zap.Int64("skipped", stats.Skipped))
	return out, nil
}

// collectUpTo takes finished tasks from pool until it holds at least
// limit words or all n tasks have been consumed.
func collectUpTo(pool *completionPool[[]LocatedWord], n, limit int) ([]LocatedWord, error) {
	out := make([]LocatedWord, 0, min(limit, 64))
	for i := 0; i < n && len(out) < limit; i++ {
		words, err := pool.take()
		if err != nil {
			return nil, err
		}
		out = append(out, words...)
	}
	return out, nil
}

func (e *Engine) substringsInFile(
	ctx context.Context,
	path, substr string,
	limit int64,
	matched *atomic.Int64,
) ([]LocatedWord, error) {
	if matched.Load() >= limit {
		return nil, nil
	}
	var found []LocatedWord
	err := e.scanLines(ctx, path, func(line int, text string) bool {
		if matched.Load() >= limit {
			return false
		}
		for _, w := range e.cfg.tokenizer.Tokenize(text) {
			if matched.Load() >= limit || ctx.Err() != nil {
				return false
			}
			if !strings.Contains(w, substr) {
				continue
			}
			found = append(found, LocatedWord{Word: w, Line: line, Path: path})
			if matched.Add(1) >= limit {
				return false
			}
		}
		return true
	})
	return found, err
}
