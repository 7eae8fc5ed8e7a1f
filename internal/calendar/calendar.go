// Package calendar lays out month grids and display labels for the
// tracker page.
package calendar

import (
	"slices"
	"time"

	"github.com/samber/lo"

	"wordletrack/internal/types"
)

// GridCells is the fixed cell count of a month grid, six weeks of seven days.
const GridCells = 42

// Weekdays are the column headers, Sunday first.
var Weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Cell is one square of the grid. Day is 0 for padding cells.
type Cell struct {
	Day      int
	Key      string
	HasData  bool
	Selected bool
}

// InMonth reports whether the cell is a real day of the displayed month.
func (c Cell) InMonth() bool {
	return c.Day > 0
}

// Grid is a rendered month.
type Grid struct {
	Year    int
	Month   time.Month
	Title   string
	Headers []string
	Cells   []Cell
}

// Weeks splits the cells into rows of seven.
func (g Grid) Weeks() [][]Cell {
	return lo.Chunk(g.Cells, len(Weekdays))
}

// MonthGrid builds the grid for year/month. hasData decides which days are
// clickable; selectedKey marks the selected day.
func MonthGrid(year int, month time.Month, selectedKey string, hasData func(key string) bool) Grid {
	first := types.NewDate(year, month, 1)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]Cell, 0, GridCells)
	for range int(first.Weekday()) {
		cells = append(cells, Cell{})
	}
	for d := 1; d <= daysInMonth; d++ {
		key := types.NewDate(year, month, d).Key()
		cells = append(cells, Cell{
			Day:      d,
			Key:      key,
			HasData:  hasData != nil && hasData(key),
			Selected: selectedKey != "" && key == selectedKey,
		})
	}
	for len(cells) < GridCells {
		cells = append(cells, Cell{})
	}

	return Grid{
		Year:    first.Year(),
		Month:   first.Month(),
		Title:   first.Format("January 2006"),
		Headers: Weekdays,
		Cells:   cells,
	}
}

// ShiftMonth moves year/month by delta months.
func ShiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := types.NewDate(year, month, 1).AddDate(0, delta, 0)
	return t.Year(), t.Month()
}

// Years returns the distinct years of the given date keys, ascending.
// Keys that do not parse are ignored.
func Years(keys []string) []int {
	years := lo.Uniq(lo.FilterMap(keys, func(key string, _ int) (int, bool) {
		d, err := types.ParseDate(key)
		if err != nil {
			return 0, false
		}
		return d.Year(), true
	}))
	slices.Sort(years)
	return years
}

// FormatDisplay renders d as "June 19, 2021".
func FormatDisplay(d types.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Format("January 2, 2006")
}
