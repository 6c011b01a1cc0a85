package ports

import (
	"context"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
)

// RecipeFilter narrows recipe listings to one relation. Zero value means
// no filtering.
type RecipeFilter struct {
	CategoryID   string
	CourseID     string
	IngredientID string
}

// RecipeRepository persists recipes and their embedded quantities/steps.
type RecipeRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Recipe, error)
	List(ctx context.Context, filter RecipeFilter, page PageRequest) ([]domain.Recipe, int64, error)
	Save(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error)
	Delete(ctx context.Context, id string) error
}
