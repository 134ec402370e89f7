package types

import (
	"github.com/pageza/recipes/backend/internal/model"
)

// Recipe represents a recipe in API responses
type Recipe struct {
	ID                uint            `json:"id"`
	Name              string          `json:"name"`
	CookingTime       model.TimeOfDay `json:"cooking_time"`
	ListOfIngredients string          `json:"list_of_ingredients"`
	Description       string          `json:"description"`
	Views             int             `json:"views"`
}

// NewRecipe builds the response representation of a stored recipe.
func NewRecipe(r *model.Recipe) Recipe {
	return Recipe{
		ID:                r.ID,
		Name:              r.Name,
		CookingTime:       r.CookingTime,
		ListOfIngredients: r.ListOfIngredients,
		Description:       r.Description,
		Views:             r.Views,
	}
}

// NewRecipeList converts recipes in order. The result is never nil so an
// empty list encodes as [].
func NewRecipeList(recipes []*model.Recipe) []Recipe {
	out := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, NewRecipe(r))
	}
	return out
}
