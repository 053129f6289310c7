package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evan-william/humanifyai/internal/config"
	"github.com/evan-william/humanifyai/internal/types"
)

func testSettings() *config.Settings {
	return &config.Settings{
		Port:              8080,
		MaxTextLength:     config.DefaultMaxTextLength,
		MinTextLength:     config.DefaultMinTextLength,
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
		LogLevel:          "error",
		AllowedOrigins:    []string{"http://localhost:3000"},
		Environment:       "test",
	}
}

func testServer(t *testing.T, settings *config.Settings) *Server {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	s, err := New(settings, log)
	require.NoError(t, err)
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

func postJSON(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeEndpoint_Success(t *testing.T) {
	s := testServer(t, testSettings())
	rec := postJSON(t, s, "/api/v1/analyze", map[string]string{
		"text": "I'm pretty sure this works. We'll see what the numbers say tomorrow.",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var res types.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Greater(t, res.Score, 0.0)
	assert.NotEmpty(t, res.Grade)
	assert.Len(t, res.Features, len(types.FeatureKeys))
	assert.Greater(t, res.WordCount, 0)
}

func TestAnalyzeEndpoint_TextTooShort(t *testing.T) {
	s := testServer(t, testSettings())
	rec := postJSON(t, s, "/api/v1/analyze", map[string]string{"text": "short"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "between 10 and 10000 characters")
}

func TestAnalyzeEndpoint_WhitespacePaddingDoesNotCount(t *testing.T) {
	s := testServer(t, testSettings())
	rec := postJSON(t, s, "/api/v1/analyze", map[string]string{"text": "   hi    \n\n   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeEndpoint_TextTooLong(t *testing.T) {
	settings := testSettings()
	settings.MaxTextLength = 50
	s := testServer(t, settings)
	rec := postJSON(t, s, "/api/v1/analyze", map[string]string{
		"text": strings.Repeat("way too many words here. ", 10),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeEndpoint_InvalidJSON(t *testing.T) {
	s := testServer(t, testSettings())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader("{ nope"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid JSON body", body["error"])
}

func TestAnalyzeEndpoint_MethodNotAllowed(t *testing.T) {
	s := testServer(t, testSettings())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyze", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestTransformEndpoint_Success(t *testing.T) {
	s := testServer(t, testSettings())
	rec := postJSON(t, s, "/api/v1/transform", map[string]any{
		"text": "In conclusion, the utilization of advanced methodologies is recommended.",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var res types.TransformResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "To wrap up, the use of advanced methodologies is recommended.", res.TransformedText)
	assert.Greater(t, res.AfterScore.Score, res.BeforeScore.Score)
	assert.InDelta(t, res.AfterScore.Score-res.BeforeScore.Score, res.Improvement, 0.05)
}

func TestTransformEndpoint_OptionsRespected(t *testing.T) {
	s := testServer(t, testSettings())
	rec := postJSON(t, s, "/api/v1/transform", map[string]any{
		"text": "They are not ready for the launch.",
		"options": map[string]bool{
			"use_contractions": false,
			"simplify_formal":  true,
			"vary_sentences":   true,
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var res types.TransformResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "They are not ready for the launch.", res.TransformedText)
}

func TestTransformEndpoint_MissingOptionsMeansAllPasses(t *testing.T) {
	s := testServer(t, testSettings())
	rec := postJSON(t, s, "/api/v1/transform", map[string]any{
		"text": "They are not ready for the launch.",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var res types.TransformResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "They aren't ready for the launch.", res.TransformedText)
}

func TestHealthEndpoint(t *testing.T) {
	s := testServer(t, testSettings())
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, Version, body["version"])
}

func TestDashboard_Served(t *testing.T) {
	s := testServer(t, testSettings())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestRateLimit_Returns429(t *testing.T) {
	settings := testSettings()
	settings.RateLimitRequests = 2
	s := testServer(t, settings)

	body := map[string]string{"text": "I'm pretty sure this request is long enough."}
	postJSON(t, s, "/api/v1/analyze", body)
	postJSON(t, s, "/api/v1/analyze", body)
	rec := postJSON(t, s, "/api/v1/analyze", body)

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimit_HealthExempt(t *testing.T) {
	settings := testSettings()
	settings.RateLimitRequests = 1
	s := testServer(t, settings)

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	s := testServer(t, testSettings())
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
}

func TestRequestID_Assigned(t *testing.T) {
	s := testServer(t, testSettings())
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCORS_AllowedOrigin(t *testing.T) {
	s := testServer(t, testSettings())
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_UnknownOriginGetsNoHeader(t *testing.T) {
	s := testServer(t, testSettings())
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
