package tracker

import (
	"errors"
	"fmt"
	"strings"

	"wordletrack/internal/types"
)

// ErrNotFound is returned when a requested date has no data.
var ErrNotFound = errors.New("no data for date")

// Compare reports how the running average and played count moved from start
// to end. Both dates must have data.
func Compare(stats Stats, start, end types.Date) (types.ComparisonResult, error) {
	from, okFrom := stats.Lookup(start)
	to, okTo := stats.Lookup(end)

	var missing []string
	if !okFrom {
		missing = append(missing, start.Key())
	}
	if !okTo && end.Key() != start.Key() {
		missing = append(missing, end.Key())
	}
	if len(missing) > 0 {
		return types.ComparisonResult{}, fmt.Errorf("%w: %s", ErrNotFound, strings.Join(missing, ", "))
	}

	return types.ComparisonResult{
		StartDate:       start,
		EndDate:         end,
		StartScore:      from.AverageScore,
		EndScore:        to.AverageScore,
		ScoreDelta:      round(to.AverageScore - from.AverageScore),
		GamesDelta:      to.TotalGames - from.TotalGames,
		StartDailyScore: from.Score,
		EndDailyScore:   to.Score,
		StartWord:       from.Word,
		EndWord:         to.Word,
	}, nil
}
