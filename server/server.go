// Package server exposes the board, quotes and task descriptions to the
// presentation layer as a JSON API.
package server

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/etnz/bubbleboard"
	"github.com/etnz/bubbleboard/quote"
	"github.com/etnz/bubbleboard/renderer"
)

// Describer generates the on-demand description for a task.
type Describer interface {
	Describe(ctx context.Context, r bubbleboard.Record) (string, error)
}

// Server wires the board pipeline and the quote cache behind HTTP handlers.
// Every error is recovered at this boundary and surfaced as a JSON message.
type Server struct {
	board     *bubbleboard.Board
	cache     *quote.Cache
	describer Describer
	engine    *gin.Engine
}

// New builds the server and its routes. describer may be nil when no
// description model is configured.
func New(board *bubbleboard.Board, cache *quote.Cache, describer Describer) *Server {
	s := &Server{
		board:     board,
		cache:     cache,
		describer: describer,
		engine:    gin.Default(),
	}

	s.engine.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := s.engine.Group("/api")
	api.GET("/records", s.listRecords)
	api.GET("/records/:id", s.getRecord)
	api.POST("/records/:id/select", s.selectRecord)
	api.GET("/records/:id/describe", s.describeRecord)
	api.GET("/facets", s.facets)
	api.GET("/quotes", s.quotes)
	api.GET("/sparklines", s.sparklines)

	return s
}

// Handler returns the underlying handler, mostly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run refreshes the board once and serves until the listener fails. An
// initial load failure is not fatal: every /api/records hit retries, so the
// page self-heals once the spreadsheet is fixed.
func (s *Server) Run(addr string) error {
	if err := s.board.Refresh(); err != nil {
		log.Printf("initial load failed (will retry per request): %v", err)
	}
	return s.engine.Run(addr)
}

// listRecords returns the current view: refreshed, sorted, filtered by the
// q / category / status / priority query parameters.
func (s *Server) listRecords(c *gin.Context) {
	if err := s.board.Refresh(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	criteria := bubbleboard.Criteria{
		Search:     c.Query("q"),
		Categories: c.QueryArray("category"),
		Statuses:   c.QueryArray("status"),
	}
	for _, p := range c.QueryArray("priority") {
		if n, err := strconv.Atoi(p); err == nil {
			criteria.Priorities = append(criteria.Priorities, n)
		}
	}

	records := s.board.View(criteria)
	c.JSON(http.StatusOK, gin.H{"count": len(records), "records": records})
}

func (s *Server) getRecord(c *gin.Context) {
	r, ok := s.recordParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, r)
}

// selectRecord stores the presentation layer's selection in the board.
func (s *Server) selectRecord(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || !s.board.Select(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such record"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"selected": id})
}

// describeRecord generates the description for one task on demand.
func (s *Server) describeRecord(c *gin.Context) {
	r, ok := s.recordParam(c)
	if !ok {
		return
	}
	if s.describer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no description model configured"})
		return
	}
	text, err := s.describer.Describe(c.Request.Context(), r)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": r.ID, "description": text})
}

func (s *Server) facets(c *gin.Context) {
	c.JSON(http.StatusOK, s.board.FacetOptions())
}

func (s *Server) quotes(c *gin.Context) {
	tickers := s.board.Settings().Tickers
	quotes := s.cache.Quotes(c.Request.Context(), tickers)

	// Display-formatted at the boundary; raw values stay in the cache.
	out := make(map[string]gin.H, len(quotes))
	for t, q := range quotes {
		out[t] = gin.H{
			"price":     q.PriceString(),
			"changeAbs": q.ChangeAbsString(),
			"changePct": q.ChangePctString(),
			"asOf":      q.AsOfString(),
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) sparklines(c *gin.Context) {
	tickers := s.board.Settings().Tickers
	series := s.cache.Sparklines(c.Request.Context(), tickers)

	out := make(map[string]string, len(series))
	for t, samples := range series {
		out[t] = renderer.Sparkline(samples)
	}
	c.JSON(http.StatusOK, out)
}

// recordParam resolves the :id path parameter to a record, answering 404
// itself when it cannot.
func (s *Server) recordParam(c *gin.Context) (bubbleboard.Record, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such record"})
		return bubbleboard.Record{}, false
	}
	r, ok := s.board.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such record"})
		return bubbleboard.Record{}, false
	}
	return r, true
}
