package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/pageza/recipes/backend/internal/database"
	"github.com/pageza/recipes/backend/internal/testhelpers"
)

func TestHealth(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	router := gin.New()
	NewHealthHandler(func(ctx context.Context) error {
		return database.HealthCheck(ctx, db)
	}, zap.NewNop()).RegisterRoutes(router)

	w := PerformRequest(router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthUnavailable(t *testing.T) {
	router := gin.New()
	NewHealthHandler(func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return errors.New("connection refused")
	}, zap.NewNop()).RegisterRoutes(router)

	w := PerformRequest(router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"detail":"database unavailable"}`, w.Body.String())
}
