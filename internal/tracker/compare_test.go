package tracker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordletrack/internal/types"
)

func TestCompare(t *testing.T) {
	stats := queryFixture()

	got, err := Compare(stats, day(1), day(3))
	require.NoError(t, err)

	assert.Equal(t, day(1).Key(), got.StartDate.Key())
	assert.Equal(t, day(3).Key(), got.EndDate.Key())
	assert.Equal(t, 4.0, got.StartScore)
	assert.Equal(t, 3.0, got.EndScore)
	assert.Equal(t, -1.0, got.ScoreDelta)
	assert.Equal(t, 2, got.GamesDelta)
	assert.Equal(t, 4, got.StartDailyScore)
	assert.Equal(t, 2, got.EndDailyScore)
	assert.Equal(t, "REBUT", got.StartWord)
	assert.Equal(t, "HUMPH", got.EndWord)
	assert.False(t, got.Worsened())
}

func TestCompareReversedOrder(t *testing.T) {
	got, err := Compare(queryFixture(), day(3), day(1))
	require.NoError(t, err)

	assert.Equal(t, 1.0, got.ScoreDelta)
	assert.Equal(t, -2, got.GamesDelta)
	assert.True(t, got.Worsened())
}

func TestCompareSameDate(t *testing.T) {
	for i := 0; i < 7; i++ {
		got, err := Compare(queryFixture(), day(i), day(i))
		require.NoError(t, err)
		assert.Equal(t, 0.0, got.ScoreDelta)
		assert.Equal(t, 0, got.GamesDelta)
	}
}

func TestCompareRoundsDelta(t *testing.T) {
	stats := DeriveStats([]types.RawEntry{entry(0, "A", 3), entry(1, "B", 3), entry(2, "C", 4)})
	got, err := Compare(stats, day(0), day(2))
	require.NoError(t, err)
	assert.Equal(t, 0.3333333, got.ScoreDelta)
}

func TestCompareNotFound(t *testing.T) {
	stats := queryFixture()

	_, err := Compare(stats, day(1), day(20))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), day(20).Key())

	_, err = Compare(stats, day(-1), day(1))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Compare(stats, day(-1), day(20))
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), day(-1).Key())
	assert.Contains(t, err.Error(), day(20).Key())

	_, err = Compare(Stats{}, day(0), day(0))
	assert.ErrorIs(t, err, ErrNotFound)
}
