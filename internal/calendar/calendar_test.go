package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordletrack/internal/types"
)

func TestMonthGridJune2021(t *testing.T) {
	hasData := func(key string) bool { return key >= "2021-06-19" }
	g := MonthGrid(2021, time.June, "2021-06-20", hasData)

	assert.Equal(t, "June 2021", g.Title)
	assert.Equal(t, Weekdays, g.Headers)
	require.Len(t, g.Cells, GridCells)

	// June 1, 2021 was a Tuesday.
	assert.False(t, g.Cells[0].InMonth())
	assert.False(t, g.Cells[1].InMonth())
	assert.Equal(t, 1, g.Cells[2].Day)
	assert.Equal(t, "2021-06-01", g.Cells[2].Key)

	last := g.Cells[2+29]
	assert.Equal(t, 30, last.Day)
	assert.False(t, g.Cells[2+30].InMonth())

	day19 := g.Cells[2+18]
	assert.Equal(t, "2021-06-19", day19.Key)
	assert.True(t, day19.HasData)
	assert.False(t, day19.Selected)

	day20 := g.Cells[2+19]
	assert.True(t, day20.Selected)
	assert.False(t, g.Cells[2+17].HasData)
}

func TestMonthGridAlwaysSixWeeks(t *testing.T) {
	for year := 2021; year <= 2024; year++ {
		for m := time.January; m <= time.December; m++ {
			g := MonthGrid(year, m, "", nil)
			require.Len(t, g.Cells, GridCells, "%d-%d", year, m)
			assert.Len(t, g.Weeks(), 6)

			days := 0
			for _, c := range g.Cells {
				if c.InMonth() {
					days++
					assert.False(t, c.HasData)
				}
			}
			assert.Equal(t, types.NewDate(year, m+1, 0).Day(), days)
		}
	}
}

func TestMonthGridNormalisesMonth(t *testing.T) {
	g := MonthGrid(2021, 13, "", nil)
	assert.Equal(t, 2022, g.Year)
	assert.Equal(t, time.January, g.Month)
}

func TestShiftMonth(t *testing.T) {
	y, m := ShiftMonth(2021, time.December, 1)
	assert.Equal(t, 2022, y)
	assert.Equal(t, time.January, m)

	y, m = ShiftMonth(2022, time.January, -1)
	assert.Equal(t, 2021, y)
	assert.Equal(t, time.December, m)

	y, m = ShiftMonth(2021, time.June, 0)
	assert.Equal(t, 2021, y)
	assert.Equal(t, time.June, m)
}

func TestYears(t *testing.T) {
	got := Years([]string{"2022-01-01", "2021-06-19", "2021-12-31", "bogus", "2023-03-03"})
	assert.Equal(t, []int{2021, 2022, 2023}, got)
	assert.Empty(t, Years(nil))
}

func TestFormatDisplay(t *testing.T) {
	assert.Equal(t, "June 19, 2021", FormatDisplay(types.NewDate(2021, time.June, 19)))
	assert.Equal(t, "", FormatDisplay(types.Date{}))
}
