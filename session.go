package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wordletrack/internal/view"
)

// getOrCreateSession retrieves the session ID from the cookie or creates a new one.
func (app *App) getOrCreateSession(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || uuid.Validate(sessionID) != nil {
		sessionID = uuid.NewString()
		c.SetSameSite(http.SameSiteStrictMode)
		secure := app.IsProduction
		c.SetCookie(SessionCookieName, sessionID, int(app.CookieMaxAge.Seconds()), "/", "", secure, true)
		logInfo("%sCreated new session: %s", requestTag(c.Request.Context()), sessionID)
	}
	return sessionID
}

// getViewState returns a copy of the session's view state, starting a fresh
// one when the session has none.
func (app *App) getViewState(sessionID string) view.State {
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()
	return app.sessionLocked(sessionID).State
}

// applyCommand applies cmd to the session's view state and stores the
// result under a single lock.
func (app *App) applyCommand(sessionID string, cmd view.Command) view.State {
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()

	sess := app.sessionLocked(sessionID)
	sess.State = view.Apply(sess.State, cmd, app.Stats)
	return sess.State
}

// sessionLocked returns the session's entry, creating it if needed, and
// marks it accessed. SessionMutex must be held.
func (app *App) sessionLocked(sessionID string) *ViewSession {
	sess, ok := app.Sessions[sessionID]
	if !ok {
		sess = &ViewSession{State: view.Initial(app.Stats, app.today(), app.LowestCount)}
		app.Sessions[sessionID] = sess
		logInfo("Started view state for session: %s", sessionID)
	}
	sess.LastAccessTime = time.Now()
	return sess
}

// cleanupExpiredSessions drops view states idle for longer than the session
// timeout and returns how many were removed.
func (app *App) cleanupExpiredSessions(now time.Time) int {
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()

	removed := 0
	for sessionID, sess := range app.Sessions {
		if sess.LastAccessTime.IsZero() || now.Sub(sess.LastAccessTime) > app.SessionTimeout {
			delete(app.Sessions, sessionID)
			removed++
		}
	}
	return removed
}

// runSessionCleanup prunes expired sessions and idle rate limiters every
// interval until ctx ends.
func (app *App) runSessionCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := app.cleanupExpiredSessions(now); n > 0 {
				logInfo("Session cleanup removed %d expired view states", n)
			}
			if n := app.pruneIdleLimiters(now); n > 0 {
				logInfo("Session cleanup removed %d idle rate limiters", n)
			}
		}
	}
}
