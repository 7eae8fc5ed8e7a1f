package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical date key format.
const DateLayout = "2006-01-02"

// Date is a calendar day at local midnight.
type Date struct {
	time.Time
}

// NewDate builds a Date from local calendar fields. Out-of-range fields
// normalise the same way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// ParseDate reads a YYYY-MM-DD string as local year/month/day.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

// DateOf truncates t to its local calendar day.
func DateOf(t time.Time) Date {
	t = t.In(time.Local)
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Key returns the canonical YYYY-MM-DD key.
func (d Date) Key() string {
	return d.Format(DateLayout)
}

// AddDays moves d by n calendar days.
func (d Date) AddDays(n int) Date {
	return Date{d.AddDate(0, 0, n)}
}

// Within reports whether d falls in [start, end], both inclusive.
func (d Date) Within(start, end Date) bool {
	return !d.Before(start.Time) && !d.After(end.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Key())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

type RawEntry struct {
	GameDate   Date   `json:"gameDate"`
	Word       string `json:"word"`
	WordNumber int    `json:"wordNumber"`
	MyScore    int    `json:"myScore"`
}

type EnrichedEntry struct {
	Word         string  `json:"word"`
	Score        int     `json:"score"`
	WordNumber   int     `json:"wordNumber"`
	GameDate     Date    `json:"gameDate"`
	AverageScore float64 `json:"averageScore"`
	TotalGames   int     `json:"totalGames"`
}

// Played reports whether a score was recorded for the day.
func (e EnrichedEntry) Played() bool {
	return e.Score > 0
}

type ComparisonResult struct {
	StartDate       Date    `json:"startDate"`
	EndDate         Date    `json:"endDate"`
	StartScore      float64 `json:"startScore"`
	EndScore        float64 `json:"endScore"`
	ScoreDelta      float64 `json:"scoreDelta"`
	GamesDelta      int     `json:"gamesDelta"`
	StartDailyScore int     `json:"startDailyScore"`
	EndDailyScore   int     `json:"endDailyScore"`
	StartWord       string  `json:"startWord"`
	EndWord         string  `json:"endWord"`
}

// Worsened reports whether the running average went up; lower is better.
func (r ComparisonResult) Worsened() bool {
	return r.ScoreDelta > 0
}
