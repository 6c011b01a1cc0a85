package ports

import (
	"context"
	"time"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
)

// CropInput carries all writable crop fields. Month values use 1–12;
// zero clears the field.
type CropInput struct {
	Name          string
	SowingStart   time.Month
	SowingEnd     time.Month
	PlantingStart time.Month
	PlantingEnd   time.Month
	HarvestStart  time.Month
	HarvestEnd    time.Month
	InHouse       bool
	InPots        bool
	InGarden      bool
	InGreenhouse  bool
	Description   string
	Tips          string
	Image         string
}

// CropService exposes catalog operations over crops.
type CropService interface {
	Get(ctx context.Context, id string) (*domain.Crop, error)
	List(ctx context.Context, page PageRequest) ([]domain.Crop, PageInfo, error)
	Search(ctx context.Context, name string, page PageRequest) ([]domain.Crop, PageInfo, error)
	Create(ctx context.Context, in CropInput) (*domain.Crop, error)
	Update(ctx context.Context, id string, in CropInput) (*domain.Crop, error)
	Delete(ctx context.Context, id string) error
}
