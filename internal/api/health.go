package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler reports whether the service can reach its database.
type HealthHandler struct {
	check  func(ctx context.Context) error
	logger *zap.Logger
}

func NewHealthHandler(check func(ctx context.Context) error, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{check: check, logger: logger}
}

func (h *HealthHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/health", h.Health)
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.check(ctx); err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		abortWithDetail(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
