package wordscan

import (
	"cmp"
	"hash/maphash"
	"slices"
	"sync"
)

const indexShards = 32

// occurrenceIndex maps a lowercased word to its occurrences within one
// file. Keys are spread over lock-striped shards so lines of the same
// file can be indexed concurrently; add is atomic per key.
type occurrenceIndex struct {
	seed   maphash.Seed
	shards [indexShards]indexShard
}

type indexShard struct {
	mu sync.Mutex
	m  map[string]*occurrences
}

// occurrences keeps the earliest occurrence of a word and how many
// there are. Only words seen once are ever reported, so the rest need
// not be stored.
type occurrences struct {
	first LocatedWord
	count int
}

func newOccurrenceIndex() *occurrenceIndex {
	x := &occurrenceIndex{seed: maphash.MakeSeed()}
	for i := range x.shards {
		x.shards[i].m = make(map[string]*occurrences)
	}
	return x
}

func (x *occurrenceIndex) add(w LocatedWord) {
	sh := &x.shards[maphash.String(x.seed, w.Word)%indexShards]
	sh.mu.Lock()
	defer sh.mu.Unlock()

	o, ok := sh.m[w.Word]
	if !ok {
		sh.m[w.Word] = &occurrences{first: w, count: 1}
		return
	}
	o.count++
	if w.Line < o.first.Line {
		o.first = w
	}
}

// unique returns the words that occurred exactly once, ordered by line
// and then by word.
func (x *occurrenceIndex) unique() []LocatedWord {
	var out []LocatedWord
	for i := range x.shards {
		sh := &x.shards[i]
		sh.mu.Lock()
		for _, o := range sh.m {
			if o.count == 1 {
				out = append(out, o.first)
			}
		}
		sh.mu.Unlock()
	}
	slices.SortFunc(out, func(a, b LocatedWord) int {
		if c := cmp.Compare(a.Line, b.Line); c != 0 {
			return c
		}
		return cmp.Compare(a.Word, b.Word)
	})
	return out
}
