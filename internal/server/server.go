package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipes/backend/config"
	"github.com/pageza/recipes/backend/internal/api"
	"github.com/pageza/recipes/backend/internal/database"
	"github.com/pageza/recipes/backend/internal/metrics"
	"github.com/pageza/recipes/backend/internal/router"
	"github.com/pageza/recipes/backend/internal/service"
)

const readHeaderTimeout = 10 * time.Second

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// New wires the recipe service and handlers around db. The database handle
// is owned by the caller, which closes it after Shutdown.
func New(cfg *config.Config, db *gorm.DB, logger *zap.Logger) *Server {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	recipeService := service.NewRecipeService(db, logger, m)
	recipeHandler := api.NewRecipeHandler(recipeService, logger)
	healthHandler := api.NewHealthHandler(func(ctx context.Context) error {
		return database.HealthCheck(ctx, db)
	}, logger)

	engine := router.SetupRouter(recipeHandler, healthHandler, router.Options{
		Logger:             logger,
		Metrics:            m,
		Gatherer:           registry,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	return &Server{
		router: engine,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           engine,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

// Handler exposes the routes, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens and serves until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("Starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
