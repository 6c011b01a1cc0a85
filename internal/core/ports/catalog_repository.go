package ports

import (
	"context"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
)

// IngredientRepository persists ingredients.
type IngredientRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Ingredient, error)
	List(ctx context.Context, page PageRequest) ([]domain.Ingredient, int64, error)
	Save(ctx context.Context, ingredient *domain.Ingredient) (*domain.Ingredient, error)
	Delete(ctx context.Context, id string) error
}

// CategoryRepository persists recipe categories.
type CategoryRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context, page PageRequest) ([]domain.Category, int64, error)
	Save(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// CourseRepository persists meal courses.
type CourseRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	List(ctx context.Context, page PageRequest) ([]domain.Course, int64, error)
	Save(ctx context.Context, course *domain.Course) (*domain.Course, error)
	Delete(ctx context.Context, id string) error
}

// MeasurementRepository persists measurement units.
type MeasurementRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Measurement, error)
	List(ctx context.Context, page PageRequest) ([]domain.Measurement, int64, error)
	Save(ctx context.Context, measurement *domain.Measurement) (*domain.Measurement, error)
	Delete(ctx context.Context, id string) error
}
