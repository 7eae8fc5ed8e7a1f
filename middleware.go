package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// clientLimiter is one client's token bucket and when it was last used.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// getLimiter returns the rate limiter for key (the client IP) and marks it
// as seen at now.
func (app *App) getLimiter(key string, now time.Time) *rate.Limiter {
	app.LimiterMutex.Lock()
	defer app.LimiterMutex.Unlock()
	if cl, ok := app.LimiterMap[key]; ok {
		cl.lastSeen = now
		return cl.limiter
	}

	rps := max(app.RateLimitRPS, 1)
	cl := &clientLimiter{
		limiter:  rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), app.RateLimitBurst),
		lastSeen: now,
	}
	app.LimiterMap[key] = cl
	return cl.limiter
}

// pruneIdleLimiters drops limiters unused for longer than LimiterIdleTimeout
// and returns how many were removed. A dropped client starts with a full
// bucket on its next request.
func (app *App) pruneIdleLimiters(now time.Time) int {
	app.LimiterMutex.Lock()
	defer app.LimiterMutex.Unlock()

	removed := 0
	for key, cl := range app.LimiterMap {
		if now.Sub(cl.lastSeen) > LimiterIdleTimeout {
			delete(app.LimiterMap, key)
			removed++
		}
	}
	return removed
}

// rateLimitMiddleware returns a Gin middleware that enforces per-client rate limiting.
func (app *App) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !app.getLimiter(key, time.Now()).Allow() {
			logWarn("%sRate limit exceeded for %s on %s", requestTag(c.Request.Context()), key, c.Request.URL.Path)
			if isHTMX(c) {
				c.Header("HX-Trigger", "rate-limit-exceeded")
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please slow down."})
			return
		}
		c.Next()
	}
}

// requestIDMiddleware injects a request ID into the context for each request.
// A client-supplied X-Request-Id is reused only when it is a valid UUID.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.Request.Header.Get("X-Request-Id")
		if uuid.Validate(reqID) != nil {
			reqID = uuid.NewString()
		}
		ctx := context.WithValue(c.Request.Context(), requestIDKey, reqID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-Id", reqID)
		c.Next()
	}
}

// isHTMX reports whether the request came from htmx and wants a fragment.
func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}
