package wordscan

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/baxromumarov/wordscan/source"
)

// writeTree creates files under a fresh temp dir and returns its
// canonical path.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	canon, err := source.Canonical(root)
	require.NoError(t, err)
	return canon
}

// memFS is an in-memory lister and reader. Listing returns order as is;
// reading records every file opened and every line yielded.
type memFS struct {
	order    []string
	files    map[string][]string
	readErr  map[string]error
	listErr  error
	listCall atomic.Int32
	yielded  atomic.Int64

	mu     sync.Mutex
	opened []string
}

func newMemFS() *memFS {
	return &memFS{
		files:   make(map[string][]string),
		readErr: make(map[string]error),
	}
}

func (m *memFS) add(path string, lines ...string) *memFS {
	m.order = append(m.order, path)
	m.files[path] = lines
	return m
}

func (m *memFS) ListTextFiles(ctx context.Context, root string) ([]string, error) {
	m.listCall.Add(1)
	if m.listErr != nil {
		return nil, m.listErr
	}
	return slices.Clone(m.order), nil
}

func (m *memFS) ReadLines(path string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		m.mu.Lock()
		m.opened = append(m.opened, path)
		m.mu.Unlock()

		if err := m.readErr[path]; err != nil {
			yield("", err)
			return
		}
		lines, ok := m.files[path]
		if !ok {
			yield("", fs.ErrNotExist)
			return
		}
		for _, l := range lines {
			m.yielded.Add(1)
			if !yield(l, nil) {
				return
			}
		}
	}
}

func (m *memFS) openedFiles() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.opened)
}

func memEngine(m *memFS, opts ...Option) *Engine {
	return New(append([]Option{WithLister(m), WithLineReader(m)}, opts...)...)
}

// countStarts returns an option counting files that began scanning.
func countStarts(n *atomic.Int32) Option {
	return WithOnFileStart(func(FileInfo) { n.Add(1) })
}

func withBatchSize(n int) Option {
	return func(c *config) { c.batchSize = n }
}

var sortWords = cmpopts.SortSlices(func(a, b LocatedWord) bool {
	if a.Path != b.Path {
		return a.Path < b.Path
	}
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Word < b.Word
})

func requireSameWords(t *testing.T, want, got []LocatedWord) {
	t.Helper()
	if diff := cmp.Diff(want, got, sortWords, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("words mismatch (-want +got):\n%s", diff)
	}
}

type panicTokenizer struct{}

func (panicTokenizer) Tokenize(string) []string { panic("tokenizer exploded") }
