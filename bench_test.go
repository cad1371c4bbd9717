package wordscan_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/baxromumarov/wordscan"
)

// benchCorpus writes files text files of lines lines each.
func benchCorpus(b *testing.B, files, lines int) string {
	b.Helper()
	root := b.TempDir()
	var sb strings.Builder
	for i := range files {
		sb.Reset()
		for j := range lines {
			fmt.Fprintf(&sb, "alpha beta w%d_%d gamma delta catalog %d\n", i, j, j%17)
		}
		path := filepath.Join(root, fmt.Sprintf("d%d", i%4), fmt.Sprintf("f%d.txt", i))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			b.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
			b.Fatal(err)
		}
	}
	return root
}

func BenchmarkUniqueWords(b *testing.B) {
	root := benchCorpus(b, 16, 2000)
	for _, jobs := range []int{1, 4} {
		b.Run(fmt.Sprintf("lineJobs=%d", jobs), func(b *testing.B) {
			e := wordscan.New(wordscan.WithLineParallelism(jobs))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := e.UniqueWords(context.Background(), root); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkLineWithMostA(b *testing.B) {
	root := benchCorpus(b, 16, 2000)
	e := wordscan.New()
	b.ReportAllocs()
	for b.Loop() {
		if _, err := e.LineWithMostA(context.Background(), root); err != nil {
			b.Fatal(err)
		}
	}
}

// The short-circuit queries should cost far less than a full scan when
// the answer appears early.
func BenchmarkWordWithConsonants(b *testing.B) {
	root := benchCorpus(b, 16, 2000)
	for _, limit := range []int{0, 2} {
		b.Run(fmt.Sprintf("ioLimit=%d", limit), func(b *testing.B) {
			e := wordscan.New(wordscan.WithIOLimit(limit))
			for b.Loop() {
				if _, _, err := e.WordWithConsonants(context.Background(), root, 4); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkWordsWithSubstring(b *testing.B) {
	root := benchCorpus(b, 16, 2000)
	for _, limit := range []int{10, 10000} {
		b.Run(fmt.Sprintf("limit=%d", limit), func(b *testing.B) {
			e := wordscan.New()
			for b.Loop() {
				if _, err := e.WordsWithSubstring(context.Background(), root, "cat", limit); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
