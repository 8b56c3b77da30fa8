package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"mbeck/finance-analyzer/internal/logging"
	"mbeck/finance-analyzer/internal/parsererror"
	"mbeck/finance-analyzer/internal/pipeline"
)

// healthCheck handles the health check endpoint
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "finance-analyzer",
	})
}

// upload receives a bank CSV as multipart form field "file", runs the
// pipeline and stores the result under the request's session.
func (s *Server) upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"kind": "BadRequest", "message": "multipart field 'file' is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		s.renderError(c, err)
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		s.renderError(c, err)
		return
	}

	result, err := s.pipeline.Process(raw)
	if err != nil {
		s.renderError(c, err)
		return
	}

	session := sessionID(c)
	s.sessions.Save(session, result.Transactions, result.Metadata)

	s.logger.WithFields(
		logging.Field{Key: "session", Value: session},
		logging.Field{Key: "filename", Value: file.Filename},
		logging.Field{Key: "count", Value: result.Count},
	).Info("Upload stored")

	c.JSON(http.StatusOK, result)
}

// report serves the stored session's budget, balance and category breakdown.
func (s *Server) report(c *gin.Context) {
	session := sessionID(c)
	transactions := s.sessions.Get(session)
	if len(transactions) == 0 {
		s.renderError(c, &parsererror.NoSessionDataError{SessionID: session})
		return
	}

	c.JSON(http.StatusOK, pipeline.BuildReport(transactions, s.sessions.Metadata(session)))
}

// analyzeRequest is the optional JSON body of the analyze endpoint.
type analyzeRequest struct {
	Prompt string `json:"prompt"`
}

// analyze generates the advisory text for the stored session.
func (s *Server) analyze(c *gin.Context) {
	if s.analyzer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"kind": "AdvisoryUnavailable", "message": "AI advisory is not configured"})
		return
	}

	session := sessionID(c)
	transactions := s.sessions.Get(session)
	if len(transactions) == 0 {
		s.renderError(c, &parsererror.NoSessionDataError{SessionID: session})
		return
	}

	var req analyzeRequest
	// Body is optional; ignore binding errors on an empty body.
	_ = c.ShouldBindJSON(&req)

	summaries := pipeline.SummarizeCategories(transactions)
	top := pipeline.TopOutflows(transactions, topOutflowCount)

	text, err := s.analyzer.Analyze(c.Request.Context(), summaries, top, req.Prompt)
	if err != nil {
		s.logger.WithError(err).Error("Advisory generation failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"kind": "AdvisoryFailed", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": text})
}

// clear drops the stored session data.
func (s *Server) clear(c *gin.Context) {
	session := sessionID(c)
	s.sessions.Clear(session)
	c.JSON(http.StatusOK, gin.H{"status": "cleared", "session_id": session})
}
