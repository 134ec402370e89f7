package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pageza/recipes/backend/internal/api"
	"github.com/pageza/recipes/backend/internal/metrics"
	"github.com/pageza/recipes/backend/internal/middleware"
)

// Options carries what the router needs beyond the handlers.
type Options struct {
	Logger             *zap.Logger
	Metrics            *metrics.Metrics
	Gatherer           prometheus.Gatherer
	CORSAllowedOrigins []string
}

// SetupRouter configures the application routes
func SetupRouter(
	recipeHandler *api.RecipeHandler,
	healthHandler *api.HealthHandler,
	opts Options,
) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.Logger(opts.Logger),
		middleware.Recovery(opts.Logger),
		middleware.Metrics(opts.Metrics),
		middleware.CORS(opts.CORSAllowedOrigins),
	)

	// Operational routes
	healthHandler.RegisterRoutes(router)
	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	// Recipe routes
	recipeHandler.RegisterRoutes(router)

	return router
}
