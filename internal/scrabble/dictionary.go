// Package scrabble scores words with Scrabble letter values against a fixed
// dictionary and lists dictionary words by prefix.
package scrabble

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
)

// Dictionary is an ordered, read-only set of uppercase words.
type Dictionary struct {
	words []string
	set   map[string]struct{}
}

// WordList is the JSON layout of a dictionary file.
type WordList struct {
	Words []string `json:"words"`
}

// NewDictionary uppercases and trims words, dropping blanks and repeats
// while keeping first-seen order.
func NewDictionary(words []string) *Dictionary {
	cleaned := lo.Uniq(lo.FilterMap(words, func(w string, _ int) (string, bool) {
		w = strings.ToUpper(strings.TrimSpace(w))
		return w, w != ""
	}))
	set := make(map[string]struct{}, len(cleaned))
	lo.ForEach(cleaned, func(w string, _ int) {
		set[w] = struct{}{}
	})
	return &Dictionary{words: cleaned, set: set}
}

// LoadDictionary decodes a WordList from r.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	var wl WordList
	if err := json.NewDecoder(r).Decode(&wl); err != nil {
		return nil, fmt.Errorf("decode dictionary: %w", err)
	}
	return NewDictionary(wl.Words), nil
}

// LoadDictionaryFile opens path and loads the dictionary in it.
func LoadDictionaryFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadDictionary(f)
}

// Contains reports whether word is in the dictionary, ignoring case.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.set[strings.ToUpper(word)]
	return ok
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns a copy of the dictionary in order.
func (d *Dictionary) Words() []string {
	return append([]string{}, d.words...)
}

// FilterByPrefix returns the words starting with prefix, case-insensitive,
// in dictionary order. An empty prefix returns every word.
func (d *Dictionary) FilterByPrefix(prefix string) []string {
	prefix = strings.ToUpper(prefix)
	if prefix == "" {
		return d.Words()
	}
	return lo.Filter(d.words, func(w string, _ int) bool {
		return strings.HasPrefix(w, prefix)
	})
}
