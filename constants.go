package main

import "time"

// Session configuration constants
const (
	SessionCookieName = "session_id"
)

// Route constants
const (
	RouteHome           = "/"
	RouteCalendarPrev   = "/calendar/prev"
	RouteCalendarNext   = "/calendar/next"
	RouteCalendarYear   = "/calendar/year"
	RouteCalendarSelect = "/calendar/select"
	RouteLowest         = "/lowest"
	RouteCompare        = "/compare"
	RouteScrabble       = "/scrabble"
	RouteScrabbleScore  = "/scrabble/score"
	RouteScrabbleFilter = "/scrabble/filter"
	RouteChart          = "/chart"
	RouteHealthz        = "/healthz"
	RouteAPIDay         = "/api/days/:date"
	RouteAPILowest      = "/api/lowest"
	RouteAPICompare     = "/api/compare"
	RouteAPIScore       = "/api/score"
	RouteAPIWords       = "/api/words"
)

// Error message constants
const (
	ErrorInvalidWord  = "That's not a valid word!"
	ErrorInvalidDate  = "Please choose a valid date."
	ErrorInvalidYear  = "Please choose a valid year."
	ErrorInvalidCount = "Count must be a whole number of zero or more."
	ErrorChartFailed  = "Could not render chart."
)

// Page titles
const (
	TitleTracker  = "Wordle Score Tracker"
	TitleScrabble = "Scrabble Score Checker"
)

// LimiterIdleTimeout is how long a client limiter may go unused before it
// is pruned.
const LimiterIdleTimeout = 10 * time.Minute

// RevealDelay staggers letter tiles on the Scrabble page.
const RevealDelay = 200 * time.Millisecond

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)
