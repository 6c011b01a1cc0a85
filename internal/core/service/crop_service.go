package service

import (
	"context"
	"fmt"
	"time"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/ports"
)

// CropService implements catalog operations over crops.
type CropService struct {
	repo ports.CropRepository
}

func NewCropService(repo ports.CropRepository) *CropService {
	return &CropService{repo: repo}
}

func (s *CropService) Get(ctx context.Context, id string) (*domain.Crop, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CropService) List(ctx context.Context, page ports.PageRequest) ([]domain.Crop, ports.PageInfo, error) {
	page = page.Normalize()
	crops, total, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, ports.PageInfo{}, fmt.Errorf("list crops: %w", err)
	}
	return crops, ports.NewPageInfo(page, total), nil
}

func (s *CropService) Search(ctx context.Context, name string, page ports.PageRequest) ([]domain.Crop, ports.PageInfo, error) {
	page = page.Normalize()
	crops, total, err := s.repo.SearchByName(ctx, name, page)
	if err != nil {
		return nil, ports.PageInfo{}, fmt.Errorf("search crops: %w", err)
	}
	return crops, ports.NewPageInfo(page, total), nil
}

func (s *CropService) Create(ctx context.Context, in ports.CropInput) (*domain.Crop, error) {
	now := time.Now().UTC()
	crop := &domain.Crop{CreatedAt: now}
	applyCropInput(crop, in, now)
	return s.repo.Save(ctx, crop)
}

func (s *CropService) Update(ctx context.Context, id string, in ports.CropInput) (*domain.Crop, error) {
	crop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyCropInput(crop, in, time.Now().UTC())
	return s.repo.Save(ctx, crop)
}

func (s *CropService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func applyCropInput(crop *domain.Crop, in ports.CropInput, now time.Time) {
	crop.Name = in.Name
	crop.SowingStart = in.SowingStart
	crop.SowingEnd = in.SowingEnd
	crop.PlantingStart = in.PlantingStart
	crop.PlantingEnd = in.PlantingEnd
	crop.HarvestStart = in.HarvestStart
	crop.HarvestEnd = in.HarvestEnd
	crop.InHouse = in.InHouse
	crop.InPots = in.InPots
	crop.InGarden = in.InGarden
	crop.InGreenhouse = in.InGreenhouse
	crop.Description = in.Description
	crop.Tips = in.Tips
	crop.Image = in.Image
	crop.UpdatedAt = now
}
