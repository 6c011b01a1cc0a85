package domain

import (
	"errors"
	"time"
)

var ErrIngredientNotFound = errors.New("ingredient not found")
var ErrCategoryNotFound = errors.New("category not found")
var ErrCourseNotFound = errors.New("course not found")
var ErrMeasurementNotFound = errors.New("measurement not found")

// Ingredient is a cooking ingredient, optionally linked to the crop it
// is grown from.
type Ingredient struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	CaloriesPerQuantity int       `json:"calories_per_quantity,omitempty"`
	CropID              string    `json:"crop_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Category groups recipes (e.g. vegetarian, pasta).
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Course is the place of a recipe in a meal (starter, main, dessert).
type Course struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Measurement is a unit used by recipe quantities (gram, cup, piece).
type Measurement struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
