package service

import (
	"context"

	"github.com/pageza/recipes/backend/internal/model"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	ListRecipes(ctx context.Context) ([]*model.Recipe, error)
	GetRecipe(ctx context.Context, id uint) (*model.Recipe, error)
	CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error)
}

var _ IRecipeService = (*RecipeService)(nil)
