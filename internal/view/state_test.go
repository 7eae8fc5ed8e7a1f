package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordletrack/internal/tracker"
	"wordletrack/internal/types"
)

func d(month time.Month, day int) types.Date {
	return types.NewDate(2021, month, day)
}

func fixture() tracker.Stats {
	return tracker.DeriveStats([]types.RawEntry{
		{GameDate: d(time.June, 29), Word: "PRIDE", WordNumber: 10, MyScore: 4},
		{GameDate: d(time.June, 30), Word: "FLOSS", WordNumber: 11, MyScore: 0},
		{GameDate: d(time.July, 1), Word: "HELIX", WordNumber: 12, MyScore: 2},
		{GameDate: d(time.July, 2), Word: "CROAK", WordNumber: 13, MyScore: 6},
	})
}

func TestInitial(t *testing.T) {
	stats := fixture()
	s := Initial(stats, d(time.August, 1), 3)

	assert.Equal(t, 2021, s.Year)
	assert.Equal(t, time.June, s.Month)
	assert.Equal(t, "2021-06-29", s.RangeStart.Key())
	assert.Equal(t, "2021-08-01", s.RangeEnd.Key())
	assert.Equal(t, 3, s.Count)
	require.Len(t, s.Lowest, 3)
	assert.Equal(t, "HELIX", s.Lowest[0].Word)
	assert.Empty(t, s.SelectedKey)
	assert.Nil(t, s.Comparison)
}

func TestInitialEmpty(t *testing.T) {
	today := types.NewDate(2024, time.March, 9)
	s := Initial(tracker.Stats{}, today, 5)

	assert.Equal(t, 2024, s.Year)
	assert.Equal(t, time.March, s.Month)
	assert.Empty(t, s.Lowest)
}

func TestApplyMonthNavigation(t *testing.T) {
	stats := fixture()
	s := Initial(stats, d(time.August, 1), 3)

	s = Apply(s, Command{Action: ActionPrevMonth}, stats)
	assert.Equal(t, time.May, s.Month)

	s.Month = time.December
	s = Apply(s, Command{Action: ActionNextMonth}, stats)
	assert.Equal(t, 2022, s.Year)
	assert.Equal(t, time.January, s.Month)

	s = Apply(s, Command{Action: ActionSelectYear, Year: 2021}, stats)
	assert.Equal(t, 2021, s.Year)
	assert.Equal(t, time.January, s.Month)

	s = Apply(s, Command{Action: ActionSelectYear, Year: 0}, stats)
	assert.Equal(t, 2021, s.Year)
}

func TestApplySelectDate(t *testing.T) {
	stats := fixture()
	s := Initial(stats, d(time.August, 1), 3)

	s = Apply(s, Command{Action: ActionSelectDate, Date: d(time.July, 1)}, stats)
	assert.Equal(t, "2021-07-01", s.SelectedKey)
	assert.Equal(t, time.July, s.Month)
	assert.Empty(t, s.Notice)

	entry, ok := s.Selected(stats)
	require.True(t, ok)
	assert.Equal(t, "HELIX", entry.Word)

	s = Apply(s, Command{Action: ActionSelectDate, Date: d(time.July, 20)}, stats)
	assert.Equal(t, NoticeNoDayData, s.Notice)
	assert.Equal(t, "2021-07-01", s.SelectedKey)

	s = Apply(s, Command{Action: ActionNextMonth}, stats)
	assert.Empty(t, s.Notice)
}

func TestApplyLowest(t *testing.T) {
	stats := fixture()
	s := Initial(stats, d(time.August, 1), 3)

	s = Apply(s, Command{Action: ActionLowest, Start: d(time.July, 1), End: d(time.July, 2), Count: 1}, stats)
	require.Len(t, s.Lowest, 1)
	assert.Equal(t, "HELIX", s.Lowest[0].Word)
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, "2021-07-01", s.RangeStart.Key())

	s = Apply(s, Command{Action: ActionLowest, Start: d(time.May, 1), End: d(time.May, 2), Count: 4}, stats)
	assert.Empty(t, s.Lowest)
	assert.Equal(t, NoticeNoLowest, s.Notice)
}

func TestApplyCompare(t *testing.T) {
	stats := fixture()
	s := Initial(stats, d(time.August, 1), 3)

	s = Apply(s, Command{Action: ActionCompare, Start: d(time.June, 29), End: d(time.July, 2)}, stats)
	require.NotNil(t, s.Comparison)
	assert.Equal(t, 0.0, s.Comparison.ScoreDelta)
	assert.Equal(t, 2, s.Comparison.GamesDelta)
	assert.Equal(t, "CROAK", s.Comparison.EndWord)

	s = Apply(s, Command{Action: ActionCompare, Start: d(time.June, 1), End: d(time.July, 2)}, stats)
	assert.Nil(t, s.Comparison)
	assert.Equal(t, NoticeNoCompareData, s.Notice)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	stats := fixture()
	before := Initial(stats, d(time.August, 1), 3)
	snapshot := before

	_ = Apply(before, Command{Action: ActionNextMonth}, stats)
	_ = Apply(before, Command{Action: ActionSelectDate, Date: d(time.July, 1)}, stats)
	_ = Apply(before, Command{Action: ActionCompare, Start: d(time.June, 29), End: d(time.July, 1)}, stats)
	_ = Apply(before, Command{Action: ActionLowest, Start: d(time.July, 1), End: d(time.July, 2), Count: 1}, stats)

	assert.Equal(t, snapshot, before)
}

func TestGrid(t *testing.T) {
	stats := fixture()
	s := Apply(Initial(stats, d(time.August, 1), 3), Command{Action: ActionSelectDate, Date: d(time.June, 29)}, stats)

	g := s.Grid(stats)
	assert.Equal(t, "June 2021", g.Title)

	var withData, selected int
	for _, c := range g.Cells {
		if c.HasData {
			withData++
		}
		if c.Selected {
			selected++
			assert.Equal(t, "2021-06-29", c.Key)
		}
	}
	assert.Equal(t, 2, withData)
	assert.Equal(t, 1, selected)
}
