package domain

import (
	"errors"
	"time"
)

var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeQuantity links one ingredient to a recipe with an amount in a
// given measurement unit.
type RecipeQuantity struct {
	IngredientID  string  `json:"ingredient_id"`
	MeasurementID string  `json:"measurement_id"`
	Quantity      float64 `json:"quantity"`
}

// RecipeStep is a single numbered preparation step.
type RecipeStep struct {
	Number      int    `json:"number"`
	Description string `json:"description"`
}

// Recipe is the aggregate root for a dish: its metadata, the ingredient
// quantities, and the ordered preparation steps. AuthorID is empty for
// recipes submitted anonymously.
type Recipe struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	AuthorID    string           `json:"author_id,omitempty"`
	Description string           `json:"description,omitempty"`
	PrepTime    string           `json:"prep_time,omitempty"`
	CookTime    string           `json:"cook_time,omitempty"`
	ImageURL    string           `json:"image_url,omitempty"`
	CourseID    string           `json:"course_id,omitempty"`
	CategoryID  string           `json:"category_id,omitempty"`
	Quantities  []RecipeQuantity `json:"quantities,omitempty"`
	Steps       []RecipeStep     `json:"steps,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// UsesIngredient reports whether any quantity references ingredientID.
func (r *Recipe) UsesIngredient(ingredientID string) bool {
	for _, q := range r.Quantities {
		if q.IngredientID == ingredientID {
			return true
		}
	}
	return false
}
