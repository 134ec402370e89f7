package testhelpers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipes/backend/config"
	"github.com/pageza/recipes/backend/internal/database"
	"github.com/pageza/recipes/backend/internal/model"
)

// SetupTestDatabase opens a SQLite database in a per-test temporary directory
// with the recipes schema in place. The pool is closed on cleanup.
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		DBDriver:       "sqlite",
		DBPath:         filepath.Join(t.TempDir(), "recipes.db"),
		DBMaxOpenConns: 4,
		DBMaxIdleConns: 4,
	}

	db, err := database.New(cfg, zap.NewNop())
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, database.EnsureSchema(db), "failed to create schema")

	t.Cleanup(func() {
		if err := database.Close(db); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	return db
}

// SeedRecipes inserts recipes directly, bypassing the HTTP API, so callers
// can preset view counts. The returned slice carries the assigned ids.
func SeedRecipes(t *testing.T, db *gorm.DB, recipes ...model.Recipe) []model.Recipe {
	t.Helper()

	for i := range recipes {
		require.NoError(t, db.Create(&recipes[i]).Error, "failed to seed recipe %q", recipes[i].Name)
	}
	return recipes
}

// SampleRecipes mirrors a small cookbook with distinct view counts:
// Borscht (200), Carbonara (100) and Omelette (50).
func SampleRecipes() []model.Recipe {
	return []model.Recipe{
		{
			Name:              "Pasta Carbonara",
			CookingTime:       model.NewTimeOfDay(0, 30, 0),
			ListOfIngredients: "pasta, eggs, bacon, parmesan, pepper",
			Description:       "Classic Italian recipe",
			Views:             100,
		},
		{
			Name:              "Borscht",
			CookingTime:       model.NewTimeOfDay(1, 30, 0),
			ListOfIngredients: "beetroot, cabbage, potatoes, meat, carrots",
			Description:       "Traditional soup",
			Views:             200,
		},
		{
			Name:              "Omelette",
			CookingTime:       model.NewTimeOfDay(0, 10, 0),
			ListOfIngredients: "eggs, milk, salt, butter",
			Description:       "Quick breakfast",
			Views:             50,
		},
	}
}

// RecipeViews reads the stored view count of a recipe.
func RecipeViews(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()

	var recipe model.Recipe
	require.NoError(t, db.First(&recipe, id).Error)
	return recipe.Views
}
