// Package seed loads recipe fixtures from YAML and writes them to storage.
// Unlike the HTTP API it accepts a preset view count per recipe.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/pageza/recipes/backend/internal/model"
)

// Entry is one recipe as written in a seed file.
type Entry struct {
	Name              *string `yaml:"name" validate:"required"`
	CookingTime       string  `yaml:"cooking_time" validate:"required"`
	ListOfIngredients *string `yaml:"list_of_ingredients" validate:"required"`
	Description       *string `yaml:"description" validate:"required"`
	Views             int     `yaml:"views" validate:"gte=0"`
}

// File is the top level document of a seed file.
type File struct {
	Recipes []Entry `yaml:"recipes" validate:"required,min=1,dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadFile reads and validates the seed file at path.
func LoadFile(path string) ([]model.Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	recipes, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recipes, nil
}

// Load decodes a seed document. Unknown keys are rejected so typos in
// field names surface instead of silently producing empty values.
func Load(r io.Reader) ([]model.Recipe, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc File
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("seed file is empty")
		}
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}

	recipes := make([]model.Recipe, 0, len(doc.Recipes))
	for i, e := range doc.Recipes {
		cookingTime, err := model.ParseTimeOfDay(e.CookingTime)
		if err != nil {
			return nil, fmt.Errorf("recipe %d (%s): %w", i, *e.Name, err)
		}
		recipes = append(recipes, model.Recipe{
			Name:              *e.Name,
			Views:             e.Views,
			CookingTime:       cookingTime,
			ListOfIngredients: *e.ListOfIngredients,
			Description:       *e.Description,
		})
	}
	return recipes, nil
}

// Insert writes recipes in a single transaction; either all rows land or
// none do. Ids are assigned by the database and written back into recipes.
func Insert(ctx context.Context, db *gorm.DB, logger *zap.Logger, recipes []model.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range recipes {
			recipes[i].ID = 0
			if err := tx.Create(&recipes[i]).Error; err != nil {
				return fmt.Errorf("failed to insert recipe %q: %w", recipes[i].Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, r := range recipes {
		logger.Debug("seeded recipe",
			zap.Uint("recipe_id", r.ID),
			zap.String("name", r.Name),
			zap.Int("views", r.Views),
		)
	}
	logger.Info("seeded recipes", zap.Int("count", len(recipes)))
	return nil
}
