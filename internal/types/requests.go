package types

import (
	"github.com/pageza/recipes/backend/internal/model"
)

// CreateRecipeRequest represents the request body for creating a recipe.
// Fields are pointers so that an absent or null field fails the required
// rule while an empty string is accepted.
type CreateRecipeRequest struct {
	Name              *string          `json:"name" binding:"required"`
	CookingTime       *model.TimeOfDay `json:"cooking_time" binding:"required"`
	ListOfIngredients *string          `json:"list_of_ingredients" binding:"required"`
	Description       *string          `json:"description" binding:"required"`
}

// ToModel converts a bound request into a new recipe. It must only be called
// after binding succeeded.
func (r *CreateRecipeRequest) ToModel() *model.Recipe {
	return &model.Recipe{
		Name:              *r.Name,
		CookingTime:       *r.CookingTime,
		ListOfIngredients: *r.ListOfIngredients,
		Description:       *r.Description,
	}
}
