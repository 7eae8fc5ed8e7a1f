// Package tracker derives running Wordle statistics from the daily log and
// answers range and comparison queries over them.
package tracker

import (
	"math"
	"slices"

	"github.com/samber/lo"

	"wordletrack/internal/types"
)

// averagePrecision is the number of decimals kept on running averages.
const averagePrecision = 7

// Stats maps a canonical date key to the enriched entry for that day.
type Stats map[string]types.EnrichedEntry

// DeriveStats enriches every raw entry with the running average and played
// count over the entries at or before it in list order. Entries sharing a
// date key overwrite each other, last one wins.
func DeriveStats(raw []types.RawEntry) Stats {
	stats := make(Stats, len(raw))
	sum, played := 0, 0
	for _, entry := range raw {
		if entry.MyScore > 0 {
			sum += entry.MyScore
			played++
		}
		average := 0.0
		if played > 0 {
			average = round(float64(sum) / float64(played))
		}
		stats[entry.GameDate.Key()] = types.EnrichedEntry{
			Word:         entry.Word,
			Score:        entry.MyScore,
			WordNumber:   entry.WordNumber,
			GameDate:     entry.GameDate,
			AverageScore: average,
			TotalGames:   played,
		}
	}
	return stats
}

// SortedKeys returns the date keys in ascending order.
func (s Stats) SortedKeys() []string {
	keys := lo.Keys(s)
	slices.Sort(keys)
	return keys
}

// Entries returns all entries in date order.
func (s Stats) Entries() []types.EnrichedEntry {
	return lo.Map(s.SortedKeys(), func(key string, _ int) types.EnrichedEntry {
		return s[key]
	})
}

// Lookup returns the entry recorded for d.
func (s Stats) Lookup(d types.Date) (types.EnrichedEntry, bool) {
	entry, ok := s[d.Key()]
	return entry, ok
}

// Has reports whether key has data.
func (s Stats) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// First returns the earliest date in the set.
func (s Stats) First() (types.Date, bool) {
	if len(s) == 0 {
		return types.Date{}, false
	}
	return s[s.SortedKeys()[0]].GameDate, true
}

func round(v float64) float64 {
	scale := math.Pow10(averagePrecision)
	return math.Round(v*scale) / scale
}
