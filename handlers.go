package main

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wordletrack/internal/calendar"
	"wordletrack/internal/charts"
	"wordletrack/internal/tracker"
	"wordletrack/internal/types"
	"wordletrack/internal/view"
)

// homeHandler renders the tracker page for the current session.
func (app *App) homeHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	state := app.getViewState(sessionID)
	// Notices belong to the command that raised them.
	state.Notice = ""
	c.HTML(http.StatusOK, "index.html", app.trackerData(state))
}

func (app *App) prevMonthHandler(c *gin.Context) {
	app.dispatch(c, func(*gin.Context) (view.Command, error) {
		return view.Command{Action: view.ActionPrevMonth}, nil
	})
}

func (app *App) nextMonthHandler(c *gin.Context) {
	app.dispatch(c, func(*gin.Context) (view.Command, error) {
		return view.Command{Action: view.ActionNextMonth}, nil
	})
}

func (app *App) selectYearHandler(c *gin.Context) {
	app.dispatch(c, func(c *gin.Context) (view.Command, error) {
		year, err := strconv.Atoi(strings.TrimSpace(c.PostForm("year")))
		if err != nil || year <= 0 {
			return view.Command{}, errors.New(ErrorInvalidYear)
		}
		return view.Command{Action: view.ActionSelectYear, Year: year}, nil
	})
}

func (app *App) selectDateHandler(c *gin.Context) {
	app.dispatch(c, func(c *gin.Context) (view.Command, error) {
		d, err := types.ParseDate(c.PostForm("date"))
		if err != nil {
			return view.Command{}, errors.New(ErrorInvalidDate)
		}
		return view.Command{Action: view.ActionSelectDate, Date: d}, nil
	})
}

func (app *App) lowestHandler(c *gin.Context) {
	app.dispatch(c, func(c *gin.Context) (view.Command, error) {
		start, end, count, err := app.rangeParams(c.PostForm("start"), c.PostForm("end"), c.PostForm("count"))
		if err != nil {
			return view.Command{}, err
		}
		return view.Command{Action: view.ActionLowest, Start: start, End: end, Count: count}, nil
	})
}

func (app *App) compareHandler(c *gin.Context) {
	app.dispatch(c, func(c *gin.Context) (view.Command, error) {
		start, errStart := types.ParseDate(c.PostForm("start"))
		end, errEnd := types.ParseDate(c.PostForm("end"))
		if errStart != nil || errEnd != nil {
			return view.Command{}, errors.New(ErrorInvalidDate)
		}
		return view.Command{Action: view.ActionCompare, Start: start, End: end}, nil
	})
}

// dispatch turns the request into a view command, applies it to the
// session's state and renders the result. Bad input is shown as a notice
// and leaves the stored state untouched.
func (app *App) dispatch(c *gin.Context, build func(*gin.Context) (view.Command, error)) {
	tag := requestTag(c.Request.Context())
	sessionID := app.getOrCreateSession(c)

	var state view.State
	cmd, err := build(c)
	if err != nil {
		logWarn("%sSession %s sent invalid %s: %v", tag, sessionID, c.Request.URL.Path, err)
		state = app.getViewState(sessionID)
		state.Notice = err.Error()
	} else {
		state = app.applyCommand(sessionID, cmd)
		logInfo("%sSession %s applied %s", tag, sessionID, cmd.Action)
	}

	if isHTMX(c) {
		c.HTML(http.StatusOK, "tracker-content", app.trackerData(state))
		return
	}
	c.HTML(http.StatusOK, "index.html", app.trackerData(state))
}

// trackerData is the template payload for the tracker page.
func (app *App) trackerData(state view.State) gin.H {
	selected, hasSelected := state.Selected(app.Stats)
	return gin.H{
		"title":       TitleTracker,
		"state":       state,
		"grid":        state.Grid(app.Stats),
		"years":       calendar.Years(app.Stats.SortedKeys()),
		"selected":    selected,
		"hasSelected": hasSelected,
		"today":       app.today(),
	}
}

// rangeParams parses a lowest-score query. A blank start means the first
// logged day, a blank end means today and a blank count the default.
func (app *App) rangeParams(startRaw, endRaw, countRaw string) (types.Date, types.Date, int, error) {
	start, ok := app.Stats.First()
	if !ok {
		start = app.today()
	}
	end := app.today()
	count := app.LowestCount

	var err error
	if strings.TrimSpace(startRaw) != "" {
		if start, err = types.ParseDate(startRaw); err != nil {
			return types.Date{}, types.Date{}, 0, errors.New(ErrorInvalidDate)
		}
	}
	if strings.TrimSpace(endRaw) != "" {
		if end, err = types.ParseDate(endRaw); err != nil {
			return types.Date{}, types.Date{}, 0, errors.New(ErrorInvalidDate)
		}
	}
	if strings.TrimSpace(countRaw) != "" {
		count, err = strconv.Atoi(strings.TrimSpace(countRaw))
		if err != nil || count < 0 {
			return types.Date{}, types.Date{}, 0, errors.New(ErrorInvalidCount)
		}
	}
	return start, end, count, nil
}

// apiDayHandler returns the enriched entry for one day.
func (app *App) apiDayHandler(c *gin.Context) {
	d, err := types.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidDate})
		return
	}
	entry, ok := app.Stats.Lookup(d)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": view.NoticeNoDayData})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// apiLowestHandler returns the lowest running averages in a range.
func (app *App) apiLowestHandler(c *gin.Context) {
	start, end, count, err := app.rangeParams(c.Query("start"), c.Query("end"), c.Query("count"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"start":   start,
		"end":     end,
		"count":   count,
		"results": tracker.QueryLowest(app.Stats, start, end, count),
	})
}

// apiCompareHandler compares the running stats of two days.
func (app *App) apiCompareHandler(c *gin.Context) {
	start, errStart := types.ParseDate(c.Query("start"))
	end, errEnd := types.ParseDate(c.Query("end"))
	if errStart != nil || errEnd != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidDate})
		return
	}
	res, err := tracker.Compare(app.Stats, start, end)
	if err != nil {
		logInfo("%sCompare %s..%s: %v", requestTag(c.Request.Context()), start.Key(), end.Key(), err)
		c.JSON(http.StatusNotFound, gin.H{"error": view.NoticeNoCompareData})
		return
	}
	c.JSON(http.StatusOK, res)
}

// chartHandler renders the running-average chart page.
func (app *App) chartHandler(c *gin.Context) {
	var buf bytes.Buffer
	if err := charts.RenderRunningAverage(&buf, app.Stats.Entries(), app.Chart); err != nil {
		logWarn("%sChart render failed: %v", requestTag(c.Request.Context()), err)
		c.String(http.StatusInternalServerError, ErrorChartFailed)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":           "ok",
		"env":              envName(app.IsProduction),
		"entries_loaded":   len(app.Entries),
		"days_tracked":     len(app.Stats),
		"dictionary_words": app.Scorer.Dictionary().Len(),
		"uptime":           formatUptime(uptime),
		"timestamp":        time.Now().UTC().Format(time.RFC3339),
	})
}
