package ports

import (
	"context"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
)

// IngredientInput carries all writable ingredient fields.
type IngredientInput struct {
	Name                string
	CaloriesPerQuantity int
	CropID              string
}

// IngredientService exposes CRUD over ingredients.
type IngredientService interface {
	Get(ctx context.Context, id string) (*domain.Ingredient, error)
	List(ctx context.Context, page PageRequest) ([]domain.Ingredient, PageInfo, error)
	Create(ctx context.Context, in IngredientInput) (*domain.Ingredient, error)
	Update(ctx context.Context, id string, in IngredientInput) (*domain.Ingredient, error)
	Delete(ctx context.Context, id string) error
}

// CategoryService exposes the flat category lookup table.
type CategoryService interface {
	Get(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context, page PageRequest) ([]domain.Category, PageInfo, error)
	Create(ctx context.Context, name string) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// CourseService exposes the flat course lookup table.
type CourseService interface {
	Get(ctx context.Context, id string) (*domain.Course, error)
	List(ctx context.Context, page PageRequest) ([]domain.Course, PageInfo, error)
	Create(ctx context.Context, name string) (*domain.Course, error)
	Delete(ctx context.Context, id string) error
}

// MeasurementService exposes the flat measurement lookup table.
type MeasurementService interface {
	Get(ctx context.Context, id string) (*domain.Measurement, error)
	List(ctx context.Context, page PageRequest) ([]domain.Measurement, PageInfo, error)
	Create(ctx context.Context, name string) (*domain.Measurement, error)
	Delete(ctx context.Context, id string) error
}
