package main

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	ginGzip "github.com/gin-contrib/gzip"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"

	"wordletrack/internal/calendar"
	"wordletrack/internal/charts"
	"wordletrack/internal/scrabble"
	"wordletrack/internal/tracker"
	"wordletrack/internal/types"
)

func main() {
	_ = godotenv.Load()

	cfg, err := LoadConfig(getEnvString("CONFIG_FILE", "config.toml"))
	if err != nil {
		logFatal("Failed to load config: %v", err)
	}

	app, err := newApp(cfg)
	if err != nil {
		logFatal("Failed to load data: %v", err)
	}
	logInfo("Starting Wordle score tracker in %s mode", envName(app.IsProduction))

	templateGlob, staticDir := "templates/*.html", "./static"
	if app.IsProduction && dirExists("dist") {
		logInfo("Serving assets from dist/ directory")
		templateGlob, staticDir = "dist/templates/*.html", "./dist/static"
	} else {
		logInfo("Serving development assets from source directories")
	}
	router := app.setupRouter(templateGlob, staticDir)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go app.runSessionCleanup(ctx, max(app.SessionTimeout/4, time.Minute))

	startServer(router, getEnvString("PORT", cfg.Server.Port))
}

// newApp loads the data files named by cfg and applies environment overrides.
func newApp(cfg *Config) (*App, error) {
	logPath := getEnvString("DATA_LOG_PATH", cfg.Data.LogPath)
	logInfo("Loading daily results from %s", logPath)
	entries, err := tracker.LoadFile(logPath)
	if err != nil {
		return nil, fmt.Errorf("load daily results: %w", err)
	}
	logInfo("Loaded %d daily results", len(entries))

	dictPath := getEnvString("DATA_DICTIONARY_PATH", cfg.Data.DictionaryPath)
	logInfo("Loading dictionary from %s", dictPath)
	dict, err := scrabble.LoadDictionaryFile(dictPath)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	logInfo("Loaded %d dictionary words", dict.Len())

	app := newAppWithData(entries, dict)
	app.IsProduction = os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production"
	app.CookieMaxAge = getEnvDuration("COOKIE_MAX_AGE", parseDurationOr(cfg.Session.CookieMaxAge, 2*time.Hour))
	app.SessionTimeout = getEnvDuration("SESSION_TIMEOUT", parseDurationOr(cfg.Session.Timeout, 2*time.Hour))
	app.StaticCacheAge = getEnvDuration("STATIC_CACHE_AGE", parseDurationOr(cfg.Server.StaticCacheAge, 5*time.Minute))
	app.RateLimitRPS = getEnvInt("RATE_LIMIT_RPS", cfg.Limits.RPS)
	app.RateLimitBurst = getEnvInt("RATE_LIMIT_BURST", cfg.Limits.Burst)
	app.LowestCount = getEnvInt("LOWEST_COUNT", cfg.Tracker.LowestCount)
	app.TrustedProxies = cfg.Server.TrustedProxies
	if cfg.Tracker.ChartTitle != "" {
		app.Chart.Title = cfg.Tracker.ChartTitle
	}
	return app, nil
}

// newAppWithData builds an App over already loaded data with default settings.
func newAppWithData(entries []types.RawEntry, dict *scrabble.Dictionary) *App {
	defaults := DefaultConfig()
	return &App{
		Entries:        entries,
		Stats:          tracker.DeriveStats(entries),
		Scorer:         scrabble.NewScorer(dict, scrabble.StandardLetterValues()),
		Sessions:       make(map[string]*ViewSession),
		LimiterMap:     make(map[string]*clientLimiter),
		StartTime:      time.Now(),
		CookieMaxAge:   2 * time.Hour,
		SessionTimeout: 2 * time.Hour,
		StaticCacheAge: 5 * time.Minute,
		RateLimitRPS:   defaults.Limits.RPS,
		RateLimitBurst: defaults.Limits.Burst,
		LowestCount:    defaults.Tracker.LowestCount,
		TrustedProxies: defaults.Server.TrustedProxies,
		Chart:          charts.DefaultChartConfig(),
	}
}

// setupRouter registers middleware, templates and routes.
func (app *App) setupRouter(templateGlob, staticDir string) *gin.Engine {
	router := gin.Default()
	router.Use(requestIDMiddleware())

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression,
		ginGzip.WithExcludedExtensions([]string{".svg", ".ico", ".png", ".jpg", ".jpeg", ".gif"}),
		ginGzip.WithExcludedPaths([]string{"/static/fonts"})))

	if err := router.SetTrustedProxies(app.TrustedProxies); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.Use(func(c *gin.Context) {
		applyCacheHeaders(c, app.IsProduction, app.StaticCacheAge)
	})

	router.SetFuncMap(templateFuncs())
	router.LoadHTMLGlob(templateGlob)
	router.Static("/static", staticDir)

	limited := app.rateLimitMiddleware()

	router.GET(RouteHome, app.homeHandler)
	router.POST(RouteCalendarPrev, limited, app.prevMonthHandler)
	router.POST(RouteCalendarNext, limited, app.nextMonthHandler)
	router.POST(RouteCalendarYear, limited, app.selectYearHandler)
	router.POST(RouteCalendarSelect, limited, app.selectDateHandler)
	router.POST(RouteLowest, limited, app.lowestHandler)
	router.POST(RouteCompare, limited, app.compareHandler)

	router.GET(RouteScrabble, app.scrabbleHandler)
	router.POST(RouteScrabbleScore, limited, app.scoreHandler)
	router.POST(RouteScrabbleFilter, limited, app.filterHandler)

	router.GET(RouteAPIDay, app.apiDayHandler)
	router.GET(RouteAPILowest, app.apiLowestHandler)
	router.GET(RouteAPICompare, app.apiCompareHandler)
	router.GET(RouteAPIScore, app.apiScoreHandler)
	router.GET(RouteAPIWords, app.apiWordsHandler)

	router.GET(RouteChart, app.chartHandler)
	router.GET(RouteHealthz, app.healthzHandler)

	return router
}

// templateFuncs are the helpers available to the HTML templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"fixed7": func(f float64) string {
			return strconv.FormatFloat(f, 'f', 7, 64)
		},
		"signed7": func(f float64) string {
			return fmt.Sprintf("%+.7f", f)
		},
		"signedInt": func(n int) string {
			return fmt.Sprintf("%+d", n)
		},
		"displayDate": calendar.FormatDisplay,
		"dailyScore": func(score int) string {
			if score <= 0 {
				return "Not played"
			}
			return strconv.Itoa(score)
		},
		"inc": func(i int) int {
			return i + 1
		},
		"revealDelay": func(i int) int {
			return i * int(RevealDelay/time.Millisecond)
		},
		"join": strings.Join,
	}
}

func startServer(router *gin.Engine, port string) {
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}

// applyCacheHeaders lets static assets be cached in production and disables
// caching for everything else.
func applyCacheHeaders(c *gin.Context, production bool, staticAge time.Duration) {
	if production && strings.HasPrefix(c.Request.URL.Path, "/static/") {
		cachecontrol.New(cachecontrol.Config{
			Public: true,
			MaxAge: cachecontrol.Duration(staticAge),
		})(c)
		c.Header("Vary", "Accept-Encoding")
		return
	}
	cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	})(c)
}

func envName(production bool) string {
	if production {
		return "production"
	}
	return "development"
}
