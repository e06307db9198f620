package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeBiancalana/quickdate/internal/clock"
	"github.com/MikeBiancalana/quickdate/internal/config"
	"github.com/MikeBiancalana/quickdate/internal/engine"
	"github.com/MikeBiancalana/quickdate/internal/suggest"
)

var fixedNow = time.Date(2026, 10, 16, 10, 30, 0, 0, time.UTC)

type testResp struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T, rateLimit int) *Server {
	t.Helper()
	eng, err := engine.New(engine.Options{Clock: clock.NewFixed(fixedNow)})
	require.NoError(t, err)

	srv, err := New(eng, Options{
		Server: config.ServerConfig{
			Addr:            "127.0.0.1:0",
			Mode:            gin.TestMode,
			RateLimitPerMin: rateLimit,
		},
		TimeEnabled:   true,
		DisplayLayout: "Mon, Jan 2, 2006",
	})
	require.NoError(t, err)
	return srv
}

func get(t *testing.T, srv *Server, path string, params url.Values) (*httptest.ResponseRecorder, testResp) {
	t.Helper()
	target := path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = "192.0.2.1:4321"
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	var resp testResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w, resp
}

func TestNew_RequiresEngine(t *testing.T) {
	_, err := New(nil, Options{})
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, 0)
	w, resp := get(t, srv, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, resp.ErrorCode)
	assert.Equal(t, MessageSuccess, resp.Message)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestID_Echo(t *testing.T) {
	srv := newTestServer(t, 0)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc123")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, "abc123", w.Header().Get(RequestIDHeader))
}

func TestParse(t *testing.T) {
	srv := newTestServer(t, 0)
	w, resp := get(t, srv, "/api/v1/parse", url.Values{"q": {"next friday 2pm"}})
	require.Equal(t, http.StatusOK, w.Code)

	var data ParseResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))

	assert.True(t, data.Found)
	require.NotNil(t, data.Result)
	assert.True(t, time.Date(2026, 10, 23, 14, 0, 0, 0, time.UTC).Equal(data.Result.Date))
	assert.Equal(t, 1.0, data.Result.Confidence)
	assert.Equal(t, "2pm", data.Result.Components.Time)
	assert.Equal(t, "2026-10-23 14:00", data.Editable)
	assert.Equal(t, "Fri, Oct 23, 2026", data.Display)
	assert.Equal(t, "in 1 week", data.Relative)
	assert.Equal(t, "100%", data.ConfidenceText)
	assert.Equal(t, "high", string(data.Tier))
}

func TestParse_NowOverride(t *testing.T) {
	srv := newTestServer(t, 0)
	_, resp := get(t, srv, "/api/v1/parse", url.Values{"q": {"tomorrow"}, "now": {"2027-01-31"}})

	var data ParseResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.True(t, data.Found)
	assert.Equal(t, "2027-02-01", data.Editable)
}

func TestParse_NotFound(t *testing.T) {
	srv := newTestServer(t, 0)
	w, resp := get(t, srv, "/api/v1/parse", url.Values{"q": {"   "}})
	require.Equal(t, http.StatusOK, w.Code)

	var data ParseResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.False(t, data.Found)
	assert.Nil(t, data.Result)
}

func TestParse_BadNow(t *testing.T) {
	srv := newTestServer(t, 0)
	w, resp := get(t, srv, "/api/v1/parse", url.Values{"q": {"tomorrow"}, "now": {"someday"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrorCodeBadRequest, resp.ErrorCode)
	assert.Contains(t, resp.Message, "someday")
}

func TestSuggestions(t *testing.T) {
	srv := newTestServer(t, 0)
	w, resp := get(t, srv, "/api/v1/suggestions", url.Values{"q": {""}})
	require.Equal(t, http.StatusOK, w.Code)

	var data SuggestionsResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.True(t, data.TimeEnabled)
	require.Len(t, data.Suggestions, 4)
	assert.Equal(t, "tomorrow", data.Suggestions[0].Value)
	assert.Equal(t, suggest.CategoryTime, data.Suggestions[3].Category)
	require.NotNil(t, data.Suggestions[0].ParsedDate)

	_, resp = get(t, srv, "/api/v1/suggestions", url.Values{"q": {""}, "time": {"false"}})
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.False(t, data.TimeEnabled)
	assert.Len(t, data.Suggestions, 3)
}

func TestSuggestions_BadFlag(t *testing.T) {
	srv := newTestServer(t, 0)
	w, _ := get(t, srv, "/api/v1/suggestions", url.Values{"q": {"fri"}, "time": {"maybe"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDue(t *testing.T) {
	srv := newTestServer(t, 0)

	tests := []struct {
		q      string
		status string
		date   bool
	}{
		{"yesterday", "overdue", true},
		{"eod", "due-today", true},
		{"tomorrow", "due-soon", true},
		{"next week", "not-due", true},
		{"", "no-due-date", false},
	}

	for _, tt := range tests {
		t.Run(tt.q, func(t *testing.T) {
			_, resp := get(t, srv, "/api/v1/due", url.Values{"q": {tt.q}})

			var data map[string]any
			require.NoError(t, json.Unmarshal(resp.Data, &data))
			due := data["due"].(map[string]any)
			assert.Equal(t, tt.status, due["status"])
			_, hasDate := data["date"]
			assert.Equal(t, tt.date, hasDate)
		})
	}
}

func TestRateLimit(t *testing.T) {
	srv := newTestServer(t, 10)

	w, _ := get(t, srv, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp := get(t, srv, "/health", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, ErrorCodeRateLimited, resp.ErrorCode)
}

func TestRateLimiter_PerClient(t *testing.T) {
	rl := newRateLimiter(10)
	require.NoError(t, rl.Allow("a"))
	assert.Error(t, rl.Allow("a"))
	assert.NoError(t, rl.Allow("b"))
}

func TestRun_Shutdown(t *testing.T) {
	srv := newTestServer(t, 0)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
