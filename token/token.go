// Package token splits lines of text into words.
//
// Word boundaries follow Unicode Text Segmentation (UAX #29), the same
// rules a locale-aware word break iterator applies. Segments whose first
// rune is not a letter or digit (spaces, punctuation, symbols) are dropped.
package token

import (
	"iter"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Segmenter is the default tokenizer. The zero value is ready to use and
// safe for concurrent use.
type Segmenter struct{}

// Tokenize returns the words of line in order.
func (Segmenter) Tokenize(line string) []string {
	return Tokenize(line)
}

// Tokenize returns the words of line in order.
func Tokenize(line string) []string {
	var out []string
	for w := range Words(line) {
		out = append(out, w)
	}
	return out
}

// Words lazily yields the words of line in order. Breaking out of the
// range loop stops segmentation.
func Words(line string) iter.Seq[string] {
	return func(yield func(string) bool) {
		state := -1
		rest := line
		var seg string
		for len(rest) > 0 {
			seg, rest, state = uniseg.FirstWordInString(rest, state)
			if !isWord(seg) {
				continue
			}
			if !yield(seg) {
				return
			}
		}
	}
}

func isWord(seg string) bool {
	r, _ := utf8.DecodeRuneInString(seg)
	if r == utf8.RuneError {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
