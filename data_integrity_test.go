package main

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"wordletrack/internal/scrabble"
	"wordletrack/internal/tracker"
)

func loadDictionaryWords(t *testing.T) []string {
	t.Helper()
	f, err := os.Open("data/dictionary.json")
	if err != nil {
		t.Fatalf("failed to open dictionary.json: %v", err)
	}
	defer f.Close()
	dict, err := scrabble.LoadDictionary(f)
	if err != nil {
		t.Fatalf("failed to decode dictionary.json: %v", err)
	}
	return dict.Words()
}

func TestDictionaryNoDuplicates(t *testing.T) {
	f, err := os.Open("data/dictionary.json")
	if err != nil {
		t.Fatalf("failed to open dictionary.json: %v", err)
	}
	defer f.Close()
	var list scrabble.WordList
	if err := json.NewDecoder(f).Decode(&list); err != nil {
		t.Fatalf("failed to decode dictionary.json: %v", err)
	}
	seen := make(map[string]struct{})
	for _, entry := range list.Words {
		w := strings.ToUpper(strings.TrimSpace(entry))
		if _, ok := seen[w]; ok {
			t.Errorf("duplicate word in dictionary.json: %s", w)
		}
		seen[w] = struct{}{}
	}
}

func TestDictionaryWordsAreLetters(t *testing.T) {
	for _, w := range loadDictionaryWords(t) {
		for _, r := range w {
			if r < 'A' || r > 'Z' {
				t.Errorf("dictionary word %q contains %q", w, r)
				break
			}
		}
	}
}

func TestWordleLogLoads(t *testing.T) {
	entries, err := tracker.LoadFile("data/wordle_log.json")
	if err != nil {
		t.Fatalf("failed to load wordle_log.json: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("wordle_log.json is empty")
	}
	for i, e := range entries {
		if e.WordNumber != i {
			t.Errorf("entry %d (%s) has word number %d", i, e.GameDate.Key(), e.WordNumber)
		}
	}
}

func TestLogWordsInDictionary(t *testing.T) {
	entries, err := tracker.LoadFile("data/wordle_log.json")
	if err != nil {
		t.Fatalf("failed to load wordle_log.json: %v", err)
	}
	dict := scrabble.NewDictionary(loadDictionaryWords(t))
	for _, e := range entries {
		if !dict.Contains(e.Word) {
			t.Errorf("logged word %s is not in dictionary.json", e.Word)
		}
	}
}
