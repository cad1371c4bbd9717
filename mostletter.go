package wordscan

import (
	"context"
	"time"
	"unicode"

	"go.uber.org/zap"
)

// LineWithMostA returns the line with the most occurrences of the letter
// 'a', counting 'A' too. See [Engine.LineWithMost].
func (e *Engine) LineWithMostA(ctx context.Context, root string) (Location, error) {
	return e.LineWithMost(ctx, root, 'a')
}

// LineWithMost returns the location of the line with the highest number
// of occurrences of letter, ignoring case, among all lines of all
// eligible files under root.
//
// Ties within a file go to the earlier line; ties across files go to the
// file whose absolute path is lexicographically smallest. The answer does
// not depend on the order in which files are listed or finish. If there
// is no line at all, LineWithMost returns [NoLocation].
func (e *Engine) LineWithMost(ctx context.Context, root string, letter rune) (Location, error) {
	const query = "lineWithMost"
	if !unicode.IsLetter(letter) {
		return NoLocation, invalidArg("%q is not a letter", letter)
	}
	start := time.Now()

	files, err := e.listFiles(ctx, query, root)
	if err != nil {
		return NoLocation, err
	}

	perFile, err := mapFiles(ctx, &e.cfg, query, files, e.cfg.workers,
		func(ctx context.Context, path string) (countedLocation, error) {
			return e.bestLineInFile(ctx, path, letter)
		})
	if err != nil {
		e.logDone(query, start, err)
		return NoLocation, err
	}

	best := countedLocation{Location: NoLocation, Count: -1}
	for _, c := range perFile {
		if c.Line < 1 {
			continue // file has no lines
		}
		if best.IsZero() || c.beats(best) {
			best = c
		}
	}

	e.logDone(query, start, nil,
		zap.String("letter", string(letter)),
		zap.Stringer("location", best.Location),
		zap.Int("count", best.Count))
	return best.Location, nil
}

// bestLineInFile returns the first line of path with the highest count of
// letter. A file without lines yields line -1.
func (e *Engine) bestLineInFile(ctx context.Context, path string, letter rune) (countedLocation, error) {
	best := countedLocation{Location: Location{Path: path, Line: -1}, Count: -1}
	err := e.scanLines(ctx, path, func(n int, line string) bool {
		// Strictly greater keeps the earliest of equal lines.
		if c := countLetter(line, letter); c > best.Count {
			best = countedLocation{Location: Location{Path: path, Line: n}, Count: c}
		}
		return true
	})
	return best, err
}
