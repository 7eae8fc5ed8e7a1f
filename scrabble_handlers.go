package main

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wordletrack/internal/scrabble"
)

// scrabbleHandler renders the Scrabble score checker.
func (app *App) scrabbleHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "scrabble.html", gin.H{
		"title":  TitleScrabble,
		"word":   "",
		"prefix": "",
		"words":  app.Scorer.Dictionary().Words(),
	})
}

// scoreHandler scores the submitted word. Unknown words show an error
// instead of a score.
func (app *App) scoreHandler(c *gin.Context) {
	word := normalizeWord(c.PostForm("word"))
	data := gin.H{"title": TitleScrabble, "word": word, "prefix": "", "words": app.Scorer.Dictionary().Words()}

	res, err := app.Scorer.ScoreWord(word)
	switch {
	case errors.Is(err, scrabble.ErrInvalidWord):
		logInfo("%sRejected word: %q", requestTag(c.Request.Context()), word)
		data["error"] = ErrorInvalidWord
	case err != nil:
		data["error"] = err.Error()
	default:
		data["result"] = res
	}

	if isHTMX(c) {
		c.HTML(http.StatusOK, "score-result", data)
		return
	}
	c.HTML(http.StatusOK, "scrabble.html", data)
}

// filterHandler lists the dictionary words starting with the prefix.
func (app *App) filterHandler(c *gin.Context) {
	prefix := normalizeWord(c.PostForm("prefix"))
	words := app.Scorer.Dictionary().FilterByPrefix(prefix)
	data := gin.H{"title": TitleScrabble, "word": "", "prefix": prefix, "words": words}

	if isHTMX(c) {
		c.HTML(http.StatusOK, "word-list", data)
		return
	}
	c.HTML(http.StatusOK, "scrabble.html", data)
}

// apiScoreHandler scores ?word= as JSON.
func (app *App) apiScoreHandler(c *gin.Context) {
	word := normalizeWord(c.Query("word"))
	res, err := app.Scorer.ScoreWord(word)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": ErrorInvalidWord, "word": word})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"word":          res.Word,
		"total":         res.Total,
		"message":       res.Message,
		"tiles":         res.Tiles,
		"revealDelayMs": int(RevealDelay / time.Millisecond),
	})
}

// apiWordsHandler lists dictionary words for ?prefix= as JSON.
func (app *App) apiWordsHandler(c *gin.Context) {
	prefix := normalizeWord(c.Query("prefix"))
	words := app.Scorer.Dictionary().FilterByPrefix(prefix)
	c.JSON(http.StatusOK, gin.H{
		"prefix": prefix,
		"count":  len(words),
		"words":  words,
	})
}

func normalizeWord(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
