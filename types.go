package wordscan

import "fmt"

// LocatedWord identifies one occurrence of a word on one line of one file.
type LocatedWord struct {
	Word string // the word, lowercased where the query says so
	Line int    // 1-based line number
	Path string // absolute path of the file
}

func (w LocatedWord) String() string {
	return fmt.Sprintf("%s:%s:%d", w.Word, w.Path, w.Line)
}

// Location identifies a line of a file without naming a word.
type Location struct {
	Path string // absolute path of the file, empty for NoLocation
	Line int    // 1-based line number, -1 for NoLocation
}

// NoLocation is returned by line queries when there is no line at all.
var NoLocation = Location{Line: -1}

// IsZero reports whether l is [NoLocation].
func (l Location) IsZero() bool {
	return l == NoLocation
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.Path, l.Line)
}

// countedLocation is the per-file best line of a letter-count query.
type countedLocation struct {
	Location
	Count int
}

// beats reports whether c ranks ahead of other: a higher count wins, and
// equal counts go to the lexicographically smaller path. Line is not
// compared, so every entry must come from a different file; the earliest
// line of a file is chosen before its entry is ranked here.
func (c countedLocation) beats(other countedLocation) bool {
	if c.Count != other.Count {
		return c.Count > other.Count
	}
	return c.Path < other.Path
}
