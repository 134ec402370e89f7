package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/recipes/backend/config"
	"github.com/pageza/recipes/backend/internal/testhelpers"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		ServerHost: "127.0.0.1",
		ServerPort: "0",
	}
	return New(cfg, testhelpers.SetupTestDatabase(t), zap.NewNop())
}

func TestNew(t *testing.T) {
	server := newTestServer(t)
	require.NotNil(t, server)
	assert.Equal(t, "127.0.0.1:0", server.http.Addr)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	server.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRecipeRoutesMounted(t *testing.T) {
	server := newTestServer(t)

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recipes/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	server := newTestServer(t)

	server.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/recipes/", nil))

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "recipes_http_requests_total"))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}

func TestStartAndShutdown(t *testing.T) {
	server := newTestServer(t)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	// Give ListenAndServe a moment to bind before shutting down.
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, server.Shutdown(ctx))

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
