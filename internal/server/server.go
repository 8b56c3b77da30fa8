// Package server exposes the ingestion pipeline and the per-session reports
// over HTTP. Routing and middleware follow gin conventions; errors render as
// a {"kind", "message"} pair with the status mapped from the error type.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mbeck/finance-analyzer/internal/logging"
	"mbeck/finance-analyzer/internal/models"
	"mbeck/finance-analyzer/internal/parsererror"
	"mbeck/finance-analyzer/internal/pipeline"
	"mbeck/finance-analyzer/internal/store"
)

// defaultSession is used when the client sends no X-Session-ID header. It
// mirrors single-user local use where session separation does not matter.
const defaultSession = "default"

// topOutflowCount is how many outliers feed the advisory prompt.
const topOutflowCount = 10

// Analyzer produces advisory text from the aggregated spending data.
// advisor.Advisor implements it; tests substitute a stub.
type Analyzer interface {
	Analyze(ctx context.Context, summaries []pipeline.CategorySummary, topOutflows []models.Transaction, userPrompt string) (string, error)
}

// Server holds the HTTP dependencies. The analyzer is optional; without one
// the analyze endpoint answers 503.
type Server struct {
	pipeline *pipeline.Pipeline
	sessions *store.SessionStore
	analyzer Analyzer
	logger   logging.Logger
}

// New creates a Server. A nil analyzer disables the advisory endpoint.
func New(p *pipeline.Pipeline, sessions *store.SessionStore, analyzer Analyzer, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if sessions == nil {
		sessions = store.NewSessionStore()
	}
	if p == nil {
		p = pipeline.New(nil, nil, logger)
	}
	return &Server{pipeline: p, sessions: sessions, analyzer: analyzer, logger: logger}
}

// Router builds the gin engine with CORS and all routes registered.
func (s *Server) Router(corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if len(corsOrigins) == 0 {
		corsOrigins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:  corsOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Session-ID"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/health", s.healthCheck)
	r.POST("/upload", s.upload)
	r.GET("/api/report", s.report)
	r.POST("/api/analyze", s.analyze)
	r.POST("/api/clear", s.clear)

	return r
}

// sessionID resolves the session key of a request.
func sessionID(c *gin.Context) string {
	if id := c.GetHeader("X-Session-ID"); id != "" {
		return id
	}
	return defaultSession
}

// renderError maps a pipeline error onto the HTTP taxonomy.
func (s *Server) renderError(c *gin.Context, err error) {
	var (
		formatErr    *parsererror.UnrecognizedFormatError
		decodeErr    *parsererror.UndecodableInputError
		noSessionErr *parsererror.NoSessionDataError
	)
	switch {
	case errors.As(err, &formatErr):
		c.JSON(http.StatusBadRequest, gin.H{"kind": "UnrecognizedFormat", "message": err.Error()})
	case errors.As(err, &decodeErr):
		c.JSON(http.StatusBadRequest, gin.H{"kind": "UndecodableInput", "message": err.Error()})
	case errors.As(err, &noSessionErr):
		c.JSON(http.StatusNotFound, gin.H{"kind": "NoSessionData", "message": err.Error()})
	default:
		s.logger.WithError(err).Error("Unhandled request error")
		c.JSON(http.StatusInternalServerError, gin.H{"kind": "Internal", "message": err.Error()})
	}
}
