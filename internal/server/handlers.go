package server

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/evan-william/humanifyai/internal/types"
)

// analyzeRequest is the body of POST /api/v1/analyze.
type analyzeRequest struct {
	Text string `json:"text" validate:"required"`
}

// transformRequest is the body of POST /api/v1/transform. Options are
// optional; a missing block means all passes enabled.
type transformRequest struct {
	Text    string                  `json:"text" validate:"required"`
	Options *types.TransformOptions `json:"options"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// handleAnalyze scores a text sample without modifying it. The text is
// processed in memory and never stored or logged.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	text, ok := s.checkText(w, req.Text)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, s.analyzer.Analyze(text))
}

// handleTransform rewrites the text through the pipeline and returns the
// result alongside before/after scores.
func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	var req transformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	text, ok := s.checkText(w, req.Text)
	if !ok {
		return
	}

	opts := types.DefaultTransformOptions()
	if req.Options != nil {
		opts = *req.Options
	}

	before := s.analyzer.Analyze(text)
	transformed := s.pipeline.Transform(text, opts)
	after := s.analyzer.Analyze(transformed)

	s.jsonResponse(w, http.StatusOK, types.TransformResult{
		OriginalText:    text,
		TransformedText: transformed,
		BeforeScore:     before,
		AfterScore:      after,
		Improvement:     math.Round((after.Score-before.Score)*10) / 10,
	})
}

// handleHealth returns service status for load balancers and monitoring.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, healthResponse{Status: "ok", Version: Version})
}

// checkText validates the input at the boundary, before any pass runs. It
// returns the trimmed text and whether processing may continue.
func (s *Server) checkText(w http.ResponseWriter, text string) (string, bool) {
	text = strings.TrimSpace(text)
	bounds := fmt.Sprintf("min=%d,max=%d", s.settings.MinTextLength, s.settings.MaxTextLength)
	if err := s.validate.Var(text, "required,"+bounds); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf(
			"text must be between %d and %d characters",
			s.settings.MinTextLength, s.settings.MaxTextLength))
		return "", false
	}
	return text, true
}
