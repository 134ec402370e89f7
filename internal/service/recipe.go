package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipes/backend/internal/metrics"
	"github.com/pageza/recipes/backend/internal/model"
)

// ErrRecipeNotFound is returned when no recipe has the requested id.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeService handles recipe operations
type RecipeService struct {
	db      *gorm.DB
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB, logger *zap.Logger, m *metrics.Metrics) *RecipeService {
	return &RecipeService{
		db:      db,
		logger:  logger.Named("recipes"),
		metrics: m,
	}
}

// ListRecipes returns every recipe, most viewed first and quickest first
// among equal view counts.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]*model.Recipe, error) {
	var recipes []model.Recipe
	err := s.db.WithContext(ctx).
		Order("views DESC").
		Order("cooking_time ASC").
		Order("id ASC").
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	// Convert to []*model.Recipe
	result := make([]*model.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

// GetRecipe retrieves a recipe by ID and counts the view.
//
// The increment is a read-modify-write without locking, so concurrent
// fetches of the same recipe can lose updates. If the new count cannot be
// committed the error is logged and counted, and the incremented recipe is
// still returned.
func (s *RecipeService) GetRecipe(ctx context.Context, id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe %d: %w", id, err)
	}

	recipe.Views++

	if err := s.saveViews(ctx, &recipe); err != nil {
		kind := persistErrorKind(err)
		s.metrics.ViewPersistFailures.WithLabelValues(kind).Inc()
		s.logger.Error("failed to persist recipe view",
			zap.Uint("recipe_id", recipe.ID),
			zap.Int("views", recipe.Views),
			zap.String("error_kind", kind),
			zap.Error(err),
		)
	}

	return &recipe, nil
}

// saveViews writes the in-memory view count and reloads the row in one
// transaction. The transaction is rolled back on any error.
func (s *RecipeService) saveViews(ctx context.Context, recipe *model.Recipe) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(recipe).Update("views", recipe.Views).Error; err != nil {
			return err
		}
		return tx.First(recipe, recipe.ID).Error
	})
}

func persistErrorKind(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "refresh_missing"
	case errors.Is(err, sql.ErrTxDone), errors.Is(err, sql.ErrConnDone):
		return "connection"
	default:
		return "database"
	}
}

// CreateRecipe inserts a new recipe. The caller's ID and Views are ignored:
// ids are assigned by storage and new recipes always start at zero views.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	recipe.ID = 0
	recipe.Views = 0

	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	s.metrics.RecipesCreated.Inc()
	s.logger.Info("recipe created", zap.Uint("recipe_id", recipe.ID), zap.String("name", recipe.Name))
	return recipe, nil
}
