package wordscan

import (
	"strings"
	"unicode"
)

const consonants = "bcdfghjklmnpqrstvwxyzBCDFGHJKLMNPQRSTVWXYZ"

// countLetter counts the runes of s equal to letter, ignoring case.
func countLetter(s string, letter rune) int {
	target := unicode.ToLower(letter)
	n := 0
	for _, r := range s {
		if unicode.ToLower(r) == target {
			n++
		}
	}
	return n
}

// countConsonants counts the English consonants of word, ignoring case.
func countConsonants(word string) int {
	n := 0
	for _, r := range word {
		if strings.ContainsRune(consonants, r) {
			n++
		}
	}
	return n
}
