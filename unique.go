package wordscan

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UniqueWords returns the words that are unique to a file: for every
// eligible file under root, each word whose lowercase form occurs exactly
// once in that file, on exactly one line and only once on it. Words are
// returned lowercased. A word unique to two files is reported once per
// file.
//
// Files are analysed in parallel on up to [WithWorkers] goroutines. The
// result lists files in listing order and, within a file, words by line
// and then alphabetically. Any read failure aborts the query.
func (e *Engine) UniqueWords(ctx context.Context, root string) ([]LocatedWord, error) {
	const query = "uniqueWords"
	start := time.Now()

	files, err := e.listFiles(ctx, query, root)
	if err != nil {
		return nil, err
	}

	perFile, err := mapFiles(ctx, &e.cfg, query, files, e.cfg.workers, e.uniqueInFile)
	if err != nil {
		e.logDone(query, start, err)
		return nil, err
	}

	out := make([]LocatedWord, 0)
	for _, words := range perFile {
		out = append(out, words...)
	}
	e.logDone(query, start, nil, zap.Int("files", len(files)), zap.Int("words", len(out)))
	return out, nil
}

func (e *Engine) uniqueInFile(ctx context.Context, path string) ([]LocatedWord, error) {
	idx := newOccurrenceIndex()

	var err error
	if e.cfg.lineJobs > 1 {
		err = e.indexParallel(ctx, path, idx)
	} else {
		lower := cases.Lower(language.Und)
		err = e.scanLines(ctx, path, func(n int, line string) bool {
			e.indexLine(idx, lower, path, n, line)
			return true
		})
	}
	if err != nil {
		return nil, err
	}
	return idx.unique(), nil
}

// indexLine adds every word of line to idx. A Caser keeps state, so each
// goroutine must pass its own.
func (e *Engine) indexLine(idx *occurrenceIndex, lower cases.Caser, path string, n int, line string) {
	for _, w := range e.cfg.tokenizer.Tokenize(line) {
		idx.add(LocatedWord{Word: lower.String(w), Line: n, Path: path})
	}
}

type lineBatch struct {
	first int // line number of lines[0]
	lines []string
}

// indexParallel reads path in order, numbering lines as they arrive, and
// indexes batches of lines on up to lineJobs goroutines.
func (e *Engine) indexParallel(ctx context.Context, path string, idx *occurrenceIndex) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.lineJobs)

	batch := lineBatch{first: 1}
	flush := func() {
		b := batch
		g.Go(func() error {
			lower := cases.Lower(language.Und)
			for i, line := range b.lines {
				if err := gctx.Err(); err != nil {
					return err
				}
				e.indexLine(idx, lower, path, b.first+i, line)
			}
			return nil
		})
	}

	err := e.scanLines(gctx, path, func(n int, line string) bool {
		batch.lines = append(batch.lines, line)
		if len(batch.lines) == e.cfg.batchSize {
			flush()
			batch = lineBatch{first: n + 1}
		}
		return true
	})
	if err == nil && len(batch.lines) > 0 {
		flush()
	}

	// Join the batches even when reading failed.
	if werr := g.Wait(); err == nil {
		err = werr
	}
	return err
}
