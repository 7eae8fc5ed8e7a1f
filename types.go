package main

import (
	"sync"
	"time"

	"wordletrack/internal/charts"
	"wordletrack/internal/scrabble"
	"wordletrack/internal/tracker"
	"wordletrack/internal/types"
	"wordletrack/internal/view"
)

type contextKey string

// App holds the loaded data and the per-session view states.
type App struct {
	Entries []types.RawEntry
	Stats   tracker.Stats
	Scorer  *scrabble.Scorer

	Sessions     map[string]*ViewSession
	SessionMutex sync.RWMutex

	LimiterMap   map[string]*clientLimiter
	LimiterMutex sync.Mutex

	IsProduction   bool
	StartTime      time.Time
	CookieMaxAge   time.Duration
	SessionTimeout time.Duration
	StaticCacheAge time.Duration
	RateLimitRPS   int
	RateLimitBurst int
	LowestCount    int
	TrustedProxies []string
	Chart          charts.ChartConfig

	// Now is swapped in tests.
	Now func() time.Time
}

// ViewSession is the tracker page state of one browser session.
type ViewSession struct {
	State          view.State
	LastAccessTime time.Time
}

// today returns the current local calendar day.
func (app *App) today() types.Date {
	now := time.Now
	if app.Now != nil {
		now = app.Now
	}
	return types.DateOf(now())
}
