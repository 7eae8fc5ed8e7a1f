package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateUsesLocalCalendar(t *testing.T) {
	d, err := ParseDate("2021-06-19")
	require.NoError(t, err)

	assert.Equal(t, 2021, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 19, d.Day())
	assert.Equal(t, time.Local, d.Location())
	assert.Equal(t, "2021-06-19", d.Key())
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	for _, in := range []string{"", "2021-6-19", "06/19/2021", "2021-06-19T00:00:00Z", "2021-02-30"} {
		_, err := ParseDate(in)
		assert.Error(t, err, "ParseDate(%q)", in)
	}
}

func TestDateKeyZeroPads(t *testing.T) {
	assert.Equal(t, "2022-01-05", NewDate(2022, time.January, 5).Key())
}

func TestDateOfTruncates(t *testing.T) {
	late := time.Date(2021, time.July, 4, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "2021-07-04", DateOf(late).Key())
	assert.True(t, DateOf(late).Equal(NewDate(2021, time.July, 4).Time))
}

func TestDateWithin(t *testing.T) {
	start := NewDate(2021, time.June, 20)
	end := NewDate(2021, time.June, 22)

	assert.True(t, start.Within(start, end))
	assert.True(t, end.Within(start, end))
	assert.True(t, NewDate(2021, time.June, 21).Within(start, end))
	assert.False(t, NewDate(2021, time.June, 19).Within(start, end))
	assert.False(t, NewDate(2021, time.June, 23).Within(start, end))
	assert.False(t, NewDate(2021, time.June, 21).Within(end, start))
}

func TestRawEntryJSON(t *testing.T) {
	var e RawEntry
	err := json.Unmarshal([]byte(`{"gameDate":"2021-06-19","word":"CIGAR","wordNumber":0,"myScore":4}`), &e)
	require.NoError(t, err)
	assert.Equal(t, "2021-06-19", e.GameDate.Key())
	assert.Equal(t, 4, e.MyScore)

	out, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"gameDate":"2021-06-19"`)

	err = json.Unmarshal([]byte(`{"gameDate":"June 19"}`), &e)
	assert.Error(t, err)
}

func TestComparisonWorsened(t *testing.T) {
	assert.True(t, ComparisonResult{ScoreDelta: 0.25}.Worsened())
	assert.False(t, ComparisonResult{ScoreDelta: 0}.Worsened())
	assert.False(t, ComparisonResult{ScoreDelta: -0.1}.Worsened())
}
