package wordscan

import (
	"context"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Engine answers word and line queries over the text files of a
// directory tree. An Engine holds no per-query state and is safe for
// concurrent use; every query joins all of its goroutines before it
// returns.
type Engine struct {
	cfg config
}

// New creates an Engine with the given options.
func New(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{cfg: cfg}
}

func (e *Engine) listFiles(ctx context.Context, query, root string) ([]string, error) {
	files, err := e.cfg.lister.ListTextFiles(ctx, root)
	if err != nil {
		e.cfg.logger.Warn("listing failed",
			zap.String("query", query),
			zap.String("root", root),
			zap.Error(err))
		return nil, &FileError{Op: OpList, Path: root, Err: err}
	}
	abs := make([]string, len(files))
	for i, f := range files {
		if abs[i], err = filepath.Abs(f); err != nil {
			return nil, &FileError{Op: OpList, Path: f, Err: err}
		}
	}
	files = abs
	e.cfg.logger.Debug("query started",
		zap.String("query", query),
		zap.String("root", root),
		zap.Int("files", len(files)))
	return files, nil
}

// scanLines calls fn with each line of path and its 1-based number, in
// order. It returns nil when fn returns false or the file ends, ctx's
// error when ctx is done before a line starts, and a *FileError when the
// file cannot be read.
func (e *Engine) scanLines(ctx context.Context, path string, fn func(n int, line string) bool) error {
	n := 0
	for line, err := range e.cfg.reader.ReadLines(path) {
		if err != nil {
			return &FileError{Op: OpRead, Path: path, Err: err}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		n++
		if !fn(n, line) {
			return nil
		}
	}
	return nil
}

func (e *Engine) logDone(query string, start time.Time, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("query", query),
		zap.Duration("elapsed", time.Since(start)))
	if err != nil {
		e.cfg.logger.Warn("query failed", append(fields, zap.Error(err))...)
		return
	}
	e.cfg.logger.Debug("query finished", fields...)
}
