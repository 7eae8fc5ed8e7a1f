package scrabble

import (
	"strings"
	"unicode/utf8"
)

// LetterValues maps an uppercase letter to its point value.
type LetterValues map[rune]int

// standardPoints is the English tile distribution grouped by value.
var standardPoints = map[int][]string{
	1:  {"A", "E", "I", "O", "U", "L", "N", "S", "T", "R"},
	2:  {"D", "G"},
	3:  {"B", "C", "M", "P"},
	4:  {"F", "H", "V", "W", "Y"},
	5:  {"K"},
	8:  {"J", "X"},
	10: {"Q", "Z"},
}

// StandardLetterValues returns the English Scrabble letter values.
func StandardLetterValues() LetterValues {
	return Transform(standardPoints)
}

// Transform converts a points-to-letters table into per-letter values.
// Letters are uppercased; entries that are not a single character are
// ignored.
func Transform(in map[int][]string) LetterValues {
	out := make(LetterValues)
	for points, letters := range in {
		for _, l := range letters {
			l = strings.ToUpper(strings.TrimSpace(l))
			if utf8.RuneCountInString(l) != 1 {
				continue
			}
			r, _ := utf8.DecodeRuneInString(l)
			out[r] = points
		}
	}
	return out
}
