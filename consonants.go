package wordscan

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// WordWithConsonants returns a word with exactly n consonants found in
// the eligible files under root, or false if there is none.
//
// Files are searched concurrently and the search stops as soon as any
// file produces a match: files not yet started are skipped and running
// scans stop at their next line or word. Which matching word is returned
// when several exist is not specified. Within a file, lines and words are
// tried in order, so the word is the first match of whichever file won.
func (e *Engine) WordWithConsonants(ctx context.Context, root string, n int) (LocatedWord, bool, error) {
	const query = "consonants"
	if n < 0 {
		return LocatedWord{}, false, invalidArg("negative consonant count %d", n)
	}
	start := time.Now()

	files, err := e.listFiles(ctx, query, root)
	if err != nil {
		return LocatedWord{}, false, err
	}

	w, ok, err := firstMatch(ctx, &e.cfg, query, files,
		func(ctx context.Context, path string) (LocatedWord, bool, error) {
			return e.consonantWordInFile(ctx, path, n)
		})
	if err != nil {
		e.logDone(query, start, err)
		return LocatedWord{}, false, err
	}

	e.logDone(query, start, nil, zap.Int("consonants", n), zap.Bool("found", ok))
	return w, ok, nil
}

func (e *Engine) consonantWordInFile(ctx context.Context, path string, n int) (LocatedWord, bool, error) {
	var (
		hit   LocatedWord
		found bool
	)
	err := e.scanLines(ctx, path, func(line int, text string) bool {
		for _, w := range e.cfg.tokenizer.Tokenize(text) {
			if ctx.Err() != nil {
				return false
			}
			if countConsonants(w) == n {
				hit, found = LocatedWord{Word: w, Line: line, Path: path}, true
				return false
			}
		}
		return true
	})
	return hit, found, err
}
