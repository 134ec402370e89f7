package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipes/backend/internal/database"
	"github.com/pageza/recipes/backend/internal/model"
	"github.com/pageza/recipes/backend/internal/testhelpers"
)

func TestPostgresRecipes(t *testing.T) {
	db := testhelpers.SetupPostgresDatabase(t)

	require.NoError(t, database.EnsureSchema(db))
	testhelpers.SeedRecipes(t, db,
		model.Recipe{Name: "Slow", CookingTime: model.NewTimeOfDay(2, 0, 0), ListOfIngredients: "x", Description: "x", Views: 5},
		model.Recipe{Name: "Fast", CookingTime: model.NewTimeOfDay(0, 5, 0), ListOfIngredients: "x", Description: "x", Views: 5},
		model.Recipe{Name: "Midnight", CookingTime: model.NewTimeOfDay(0, 0, 0), ListOfIngredients: "x", Description: "x", Views: 9},
	)

	var recipes []model.Recipe
	require.NoError(t, db.Order("views DESC").Order("cooking_time ASC").Find(&recipes).Error)
	require.Len(t, recipes, 3)

	assert.Equal(t, "Midnight", recipes[0].Name)
	assert.Equal(t, model.NewTimeOfDay(0, 0, 0), recipes[0].CookingTime)
	assert.Equal(t, "Fast", recipes[1].Name)
	assert.Equal(t, model.NewTimeOfDay(0, 5, 0), recipes[1].CookingTime)
	assert.Equal(t, "Slow", recipes[2].Name)
}
