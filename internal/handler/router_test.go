package handler

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/github-profile-card/internal/config"
	"github.com/naka-gawa/github-profile-card/internal/counter"
	"github.com/naka-gawa/github-profile-card/internal/render"
	"github.com/naka-gawa/github-profile-card/internal/usecase"
)

type stubComposer struct {
	mu      sync.Mutex
	handles []string
}

func (s *stubComposer) Compose(ctx context.Context, handle string) usecase.Result {
	s.mu.Lock()
	s.handles = append(s.handles, handle)
	s.mu.Unlock()
	if handle == "" {
		return usecase.Result{SVG: render.ErrorDocument(usecase.MsgMissingHandle), Err: usecase.ErrMissingHandle}
	}
	return usecase.Result{SVG: []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`)}
}

func setupRouter(t *testing.T, statsPath string, cfg *config.Config) (*gin.Engine, *stubComposer) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := log.New(io.Discard, "", 0)
	if statsPath == "" {
		statsPath = filepath.Join(t.TempDir(), "stats.json")
	}
	if cfg == nil {
		cfg = &config.Config{}
	}
	composer := &stubComposer{}
	return NewRouter(cfg, composer, counter.NewStore(statsPath, logger), logger), composer
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Origin", "https://example.com")
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := setupRouter(t, "", nil)

	w := get(r, "/healthz")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"ok"}`, w.Body.String())
}

func TestCardHandler_Generate(t *testing.T) {
	testCases := []struct {
		name       string
		target     string
		wantHandle string
		wantBody   string
	}{
		{
			name:       "renders the requested user",
			target:     "/api/generate?username=octocat",
			wantHandle: "octocat",
			wantBody:   "<svg",
		},
		{
			name:       "missing username still answers with a document",
			target:     "/api/generate",
			wantHandle: "",
			wantBody:   usecase.MsgMissingHandle,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, composer := setupRouter(t, "", nil)

			w := get(r, tc.target)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
			assert.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, w.Body.String(), tc.wantBody)
			assert.Equal(t, []string{tc.wantHandle}, composer.handles)
		})
	}
}

func TestCardHandler_RateLimited(t *testing.T) {
	r, composer := setupRouter(t, "", &config.Config{CardRateLimit: 0.001, CardRateBurst: 2})

	assert.Equal(t, http.StatusOK, get(r, "/api/generate?username=a").Code)
	assert.Equal(t, http.StatusOK, get(r, "/api/generate?username=b").Code)
	w := get(r, "/api/generate?username=c")

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Len(t, composer.handles, 2)
}

func TestStatsHandler_Actions(t *testing.T) {
	r, _ := setupRouter(t, "", nil)

	w := get(r, "/api/stats")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, "no-store, no-cache, must-revalidate, max-age=0", w.Header().Get("Cache-Control"))
	assert.Equal(t, "no-cache", w.Header().Get("Pragma"))
	assert.JSONEq(t, `{"totalGenerations":0,"totalVisitors":0,"dailyGenerations":0,"monthlyGenerations":0,
		"lastGeneration":null,"lastVisit":null,"firstGeneration":null}`, w.Body.String())

	w = get(r, "/api/stats?action=increment_visitors")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"totalVisitors":1}`, w.Body.String())

	w = get(r, "/api/stats?action=increment_generations")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"totalGenerations":1,"dailyGenerations":1,"monthlyGenerations":1}`, w.Body.String())

	w = get(r, "/api/stats?action=bogus")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(1), body["totalGenerations"])
	assert.Equal(t, float64(1), body["totalVisitors"])
	assert.NotNil(t, body["lastGeneration"])
	assert.NotContains(t, body, "debug")
}

func TestStatsHandler_Debug(t *testing.T) {
	r, _ := setupRouter(t, "", nil)

	w := get(r, "/api/stats?action=increment_visitors&debug")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(1), body["totalVisitors"])
	require.Contains(t, body, "debug")
	debug := body["debug"].(map[string]any)
	assert.Equal(t, "0644", debug["permissions"])
	assert.True(t, filepath.IsAbs(debug["path"].(string)))
	contents := debug["contents"].(map[string]any)
	assert.Equal(t, float64(1), contents["totalVisitors"])
}

func TestStatsHandler_StorageFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	r, _ := setupRouter(t, filepath.Join(blocker, "stats.json"), nil)

	for _, action := range []string{ActionIncrementGenerations, ActionIncrementVisitors} {
		w := get(r, "/api/stats?action="+action)
		assert.Equal(t, http.StatusInternalServerError, w.Code, action)
		assert.JSONEq(t, `{"error":"unable to write stats file"}`, w.Body.String())
	}

	// Reading never fails.
	w := get(r, "/api/stats?action=get_stats")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode(t, w)["totalGenerations"])
}
