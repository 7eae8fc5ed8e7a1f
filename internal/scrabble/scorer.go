package scrabble

import (
	"errors"
	"strings"
)

// ErrInvalidWord is returned when a word is not in the dictionary.
var ErrInvalidWord = errors.New("not a valid word")

// Tile is one scored letter.
type Tile struct {
	Letter string `json:"letter"`
	Value  int    `json:"value"`
}

// Result is the outcome of scoring a word.
type Result struct {
	Word    string `json:"word"`
	Total   int    `json:"total"`
	Message string `json:"message"`
	Tiles   []Tile `json:"tiles"`
}

// Scorer scores dictionary words.
type Scorer struct {
	dict   *Dictionary
	values LetterValues
}

func NewScorer(dict *Dictionary, values LetterValues) *Scorer {
	return &Scorer{dict: dict, values: values}
}

// Dictionary returns the dictionary the scorer validates against.
func (s *Scorer) Dictionary() *Dictionary {
	return s.dict
}

// ScoreWord uppercases word and sums its letter values. Characters without
// a value are skipped.
func (s *Scorer) ScoreWord(word string) (Result, error) {
	word = strings.ToUpper(word)
	if !s.dict.Contains(word) {
		return Result{}, ErrInvalidWord
	}

	res := Result{Word: word, Tiles: []Tile{}}
	for _, r := range word {
		value, ok := s.values[r]
		if !ok {
			continue
		}
		res.Total += value
		res.Tiles = append(res.Tiles, Tile{Letter: string(r), Value: value})
	}
	res.Message = Message(res.Total)
	return res, nil
}

type band struct {
	max     int
	message string
}

var bands = []band{
	{5, "That's a terrible score."},
	{9, "Better than that 5-point crap, but you are not good at this."},
	{11, "Very weak, but you're trying. That's worth something they say."},
	{13, "Now you're playing some scrabble. Not."},
	{15, "Ok, real points. Much better."},
	{17, "Pretty good. You are not wasting your time."},
	{19, "Very nice. You must play a lot"},
	{21, "Okay! Now you're talking! That's really nice!"},
	{23, "Now you're pushing it, pally. Are you stashing tiles?"},
	{25, "You've got big old balls coming around here with that shit. Don't think dropping Q's and Z's and J's goes unnoticed..."},
	{27, "Maybe someone needs to teach you a little lesson, essay! We don't deal too well with cheaters around here. We are the BEST!! You were warned and now it's too late!"},
	{29, "You're dead to me, fuckface. You're ruined around here."},
	{30, "You will be reported if you don't fuck off right this moment!"},
}

const topMessage = "Get fucked. This is you being ghosted. You are totally unloved."

// Message returns the verdict for a total; the first band whose inclusive
// upper bound covers total wins.
func Message(total int) string {
	for _, b := range bands {
		if total <= b.max {
			return b.message
		}
	}
	return topMessage
}
