package model

// Recipe is a row of the recipes table.
//
// Views defaults to 0. It is only raised by fetching the recipe by id; code
// outside the HTTP API (seeding, tests) may set it directly.
type Recipe struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string    `gorm:"type:text;not null;index" json:"name"`
	Views             int       `gorm:"not null;default:0" json:"views"`
	CookingTime       TimeOfDay `gorm:"type:time;not null;index" json:"cooking_time"`
	ListOfIngredients string    `gorm:"type:text;not null;index" json:"list_of_ingredients"`
	Description       string    `gorm:"type:text;not null;index" json:"description"`
}

// TableName overrides the table name used by Recipe to `recipes`
func (Recipe) TableName() string {
	return "recipes"
}
