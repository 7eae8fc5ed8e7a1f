package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"wordletrack/internal/types"
)

var (
	// ErrUnsorted is returned when the log is not in ascending date order.
	ErrUnsorted = errors.New("entries not sorted by date")
	// ErrInvalidScore is returned for negative scores.
	ErrInvalidScore = errors.New("invalid score")
)

// LoadEntries decodes a JSON array of raw entries and checks that they are
// in ascending date order, which the running averages rely on.
func LoadEntries(r io.Reader) ([]types.RawEntry, error) {
	var entries []types.RawEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	if err := Validate(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// LoadFile opens path and loads the entries in it.
func LoadFile(path string) ([]types.RawEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadEntries(f)
}

// Validate checks ordering and score bounds.
func Validate(entries []types.RawEntry) error {
	for i, entry := range entries {
		if entry.MyScore < 0 {
			return fmt.Errorf("%w: %d on %s", ErrInvalidScore, entry.MyScore, entry.GameDate.Key())
		}
		if i > 0 && entry.GameDate.Before(entries[i-1].GameDate.Time) {
			return fmt.Errorf("%w: %s follows %s", ErrUnsorted, entry.GameDate.Key(), entries[i-1].GameDate.Key())
		}
	}
	return nil
}
