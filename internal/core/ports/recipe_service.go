package ports

import (
	"context"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
)

// RecipeQuantityInput is one ingredient line of a recipe.
type RecipeQuantityInput struct {
	IngredientID  string
	MeasurementID string
	Quantity      float64
}

// RecipeStepInput is one preparation step; steps are renumbered in the
// order given.
type RecipeStepInput struct {
	Description string
}

// RecipeInput carries all writable recipe fields.
type RecipeInput struct {
	Name        string
	AuthorID    string
	Description string
	PrepTime    string
	CookTime    string
	ImageURL    string
	CourseID    string
	CategoryID  string
	Quantities  []RecipeQuantityInput
	Steps       []RecipeStepInput
}

// RecipeService exposes catalog operations over recipes.
type RecipeService interface {
	Get(ctx context.Context, id string) (*domain.Recipe, error)
	List(ctx context.Context, filter RecipeFilter, page PageRequest) ([]domain.Recipe, PageInfo, error)
	Create(ctx context.Context, in RecipeInput) (*domain.Recipe, error)
	Update(ctx context.Context, id string, in RecipeInput) (*domain.Recipe, error)
	Delete(ctx context.Context, id string) error
}
