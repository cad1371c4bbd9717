package wordscan

import (
	"context"
	"iter"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/baxromumarov/wordscan/source"
	"github.com/baxromumarov/wordscan/token"
)

// FileLister enumerates the eligible files under a root directory.
// The engine makes relative paths absolute but otherwise compares paths
// as strings, so a lister must return each file under one spelling.
type FileLister interface {
	ListTextFiles(ctx context.Context, root string) ([]string, error)
}

// LineReader yields the lines of a file lazily and in order.
type LineReader interface {
	ReadLines(path string) iter.Seq2[string, error]
}

// Tokenizer splits a line into words.
type Tokenizer interface {
	Tokenize(line string) []string
}

// FileInfo describes the file a task is scanning. It is passed to hooks
// registered via [WithOnFileStart] and [WithOnFileDone].
type FileInfo struct {
	Query string
	Path  string
}

type config struct {
	lister    FileLister
	reader    LineReader
	tokenizer Tokenizer
	logger    *zap.Logger

	workers   int
	ioLimit   int
	lineJobs  int
	batchSize int

	onStart func(FileInfo)
	onDone  func(FileInfo, error, time.Duration)
}

// Option configures an [Engine].
type Option func(*config)

func defaultConfig() config {
	return config{
		lister:    source.Lister{},
		reader:    source.Reader{},
		tokenizer: token.Segmenter{},
		logger:    zap.NewNop(),
		workers:   runtime.NumCPU(),
		lineJobs:  1,
		batchSize: 256,
	}
}

// WithLister replaces the default recursive ".txt" lister.
func WithLister(l FileLister) Option {
	if l == nil {
		panic("wordscan: WithLister requires a non-nil lister")
	}
	return func(c *config) {
		c.lister = l
	}
}

// WithLineReader replaces the default buffered file reader.
func WithLineReader(r LineReader) Option {
	if r == nil {
		panic("wordscan: WithLineReader requires a non-nil reader")
	}
	return func(c *config) {
		c.reader = r
	}
}

// WithTokenizer replaces the default UAX #29 word segmenter.
func WithTokenizer(t Tokenizer) Option {
	if t == nil {
		panic("wordscan: WithTokenizer requires a non-nil tokenizer")
	}
	return func(c *config) {
		c.tokenizer = t
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("wordscan: WithLogger requires a non-nil logger")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithWorkers bounds the number of files scanned at once by the full-scan
// queries ([Engine.UniqueWords] and [Engine.LineWithMost]). Zero means one
// worker per CPU. WithWorkers panics if n is negative.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("wordscan: workers must be non-negative")
	}
	return func(c *config) {
		if n == 0 {
			n = runtime.NumCPU()
		}
		c.workers = n
	}
}

// WithIOLimit bounds the number of files scanned at once by the
// short-circuit queries ([Engine.WordWithConsonants] and
// [Engine.WordsWithSubstring]). Zero, the default, starts one task per file.
// WithIOLimit panics if n is negative.
func WithIOLimit(n int) Option {
	if n < 0 {
		panic("wordscan: io limit must be non-negative")
	}
	return func(c *config) {
		c.ioLimit = n
	}
}

// WithLineParallelism lets [Engine.UniqueWords] analyse up to n batches
// of lines of the same file concurrently. Values below 2 keep per-file
// analysis sequential.
func WithLineParallelism(n int) Option {
	return func(c *config) {
		c.lineJobs = max(n, 1)
	}
}

// WithOnFileStart registers a hook invoked in the task goroutine just
// before a file is scanned. Files skipped because the query already
// stopped never reach the hook.
func WithOnFileStart(fn func(FileInfo)) Option {
	return func(c *config) {
		c.onStart = fn
	}
}

// WithOnFileDone registers a hook invoked when a file task finishes, with
// its error (nil on success) and wall-clock duration.
func WithOnFileDone(fn func(FileInfo, error, time.Duration)) Option {
	return func(c *config) {
		c.onDone = fn
	}
}
