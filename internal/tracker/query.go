package tracker

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"wordletrack/internal/types"
)

// QueryLowest returns up to n entries between start and end inclusive with
// the lowest running average. Days before the first played game are
// skipped. Ties keep date order.
func QueryLowest(stats Stats, start, end types.Date, n int) []types.EnrichedEntry {
	if n <= 0 {
		return []types.EnrichedEntry{}
	}

	matches := lo.FilterMap(stats.SortedKeys(), func(key string, _ int) (types.EnrichedEntry, bool) {
		entry := stats[key]
		return entry, entry.AverageScore > 0 && entry.GameDate.Within(start, end)
	})

	slices.SortStableFunc(matches, func(a, b types.EnrichedEntry) int {
		return cmp.Compare(a.AverageScore, b.AverageScore)
	})

	if len(matches) > n {
		matches = matches[:n]
	}
	return matches
}
