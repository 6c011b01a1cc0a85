package ports

import (
	"context"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
)

// CropRepository persists crops.
type CropRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Crop, error)
	List(ctx context.Context, page PageRequest) ([]domain.Crop, int64, error)
	// SearchByName matches crop names containing the term, case-insensitive.
	SearchByName(ctx context.Context, name string, page PageRequest) ([]domain.Crop, int64, error)
	Save(ctx context.Context, crop *domain.Crop) (*domain.Crop, error)
	Delete(ctx context.Context, id string) error
}
