// Package view holds the per-session display state of the tracker page and
// the commands that move it.
package view

import (
	"errors"
	"time"

	"wordletrack/internal/calendar"
	"wordletrack/internal/tracker"
	"wordletrack/internal/types"
)

// User-facing notices.
const (
	NoticeNoDayData     = "No data available for this date."
	NoticeNoCompareData = "No data available for one or both selected dates."
	NoticeNoLowest      = "No scores found in the selected date range."
)

// Action names a user command.
type Action string

const (
	ActionPrevMonth  Action = "prev-month"
	ActionNextMonth  Action = "next-month"
	ActionSelectYear Action = "select-year"
	ActionSelectDate Action = "select-date"
	ActionLowest     Action = "lowest"
	ActionCompare    Action = "compare"
)

// Command is one user action and its arguments. Only the fields the action
// needs are read.
type Command struct {
	Action Action
	Year   int
	Date   types.Date
	Start  types.Date
	End    types.Date
	Count  int
}

// State is everything the tracker page shows for one session.
type State struct {
	Year        int
	Month       time.Month
	SelectedKey string

	RangeStart types.Date
	RangeEnd   types.Date
	Count      int
	Lowest     []types.EnrichedEntry

	Comparison *types.ComparisonResult
	Notice     string
}

// Initial opens on the month of the first logged day, or today's month when
// nothing is logged, with the lowest-score range running to today.
func Initial(stats tracker.Stats, today types.Date, count int) State {
	start, ok := stats.First()
	if !ok {
		start = today
	}
	s := State{
		Year:       start.Year(),
		Month:      start.Month(),
		RangeStart: start,
		RangeEnd:   today,
		Count:      count,
	}
	s.Lowest = tracker.QueryLowest(stats, s.RangeStart, s.RangeEnd, s.Count)
	return s
}

// Apply returns the state after cmd. The input state is not modified.
func Apply(s State, cmd Command, stats tracker.Stats) State {
	next := s
	next.Notice = ""

	switch cmd.Action {
	case ActionPrevMonth:
		next.Year, next.Month = calendar.ShiftMonth(s.Year, s.Month, -1)
	case ActionNextMonth:
		next.Year, next.Month = calendar.ShiftMonth(s.Year, s.Month, 1)
	case ActionSelectYear:
		if cmd.Year > 0 {
			next.Year = cmd.Year
		}
	case ActionSelectDate:
		if !stats.Has(cmd.Date.Key()) {
			next.Notice = NoticeNoDayData
			break
		}
		next.SelectedKey = cmd.Date.Key()
		next.Year, next.Month = cmd.Date.Year(), cmd.Date.Month()
	case ActionLowest:
		next.RangeStart, next.RangeEnd, next.Count = cmd.Start, cmd.End, cmd.Count
		next.Lowest = tracker.QueryLowest(stats, cmd.Start, cmd.End, cmd.Count)
		if len(next.Lowest) == 0 {
			next.Notice = NoticeNoLowest
		}
	case ActionCompare:
		res, err := tracker.Compare(stats, cmd.Start, cmd.End)
		if errors.Is(err, tracker.ErrNotFound) {
			next.Comparison = nil
			next.Notice = NoticeNoCompareData
			break
		}
		next.Comparison = &res
	}
	return next
}

// Grid renders the displayed month.
func (s State) Grid(stats tracker.Stats) calendar.Grid {
	return calendar.MonthGrid(s.Year, s.Month, s.SelectedKey, stats.Has)
}

// Selected returns the selected day's entry, if any.
func (s State) Selected(stats tracker.Stats) (types.EnrichedEntry, bool) {
	if s.SelectedKey == "" {
		return types.EnrichedEntry{}, false
	}
	entry, ok := stats[s.SelectedKey]
	return entry, ok
}
