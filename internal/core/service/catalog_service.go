package service

import (
	"context"
	"fmt"
	"time"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/ports"
)

// IngredientService implements CRUD over ingredients. When an ingredient
// links to a crop, the crop must exist.
type IngredientService struct {
	repo  ports.IngredientRepository
	crops ports.CropRepository
}

func NewIngredientService(repo ports.IngredientRepository, crops ports.CropRepository) *IngredientService {
	return &IngredientService{repo: repo, crops: crops}
}

func (s *IngredientService) Get(ctx context.Context, id string) (*domain.Ingredient, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *IngredientService) List(ctx context.Context, page ports.PageRequest) ([]domain.Ingredient, ports.PageInfo, error) {
	page = page.Normalize()
	items, total, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, ports.PageInfo{}, fmt.Errorf("list ingredients: %w", err)
	}
	return items, ports.NewPageInfo(page, total), nil
}

func (s *IngredientService) Create(ctx context.Context, in ports.IngredientInput) (*domain.Ingredient, error) {
	if in.CropID != "" {
		if _, err := s.crops.FindByID(ctx, in.CropID); err != nil {
			return nil, err
		}
	}
	now := time.Now().UTC()
	return s.repo.Save(ctx, &domain.Ingredient{
		Name:                in.Name,
		CaloriesPerQuantity: in.CaloriesPerQuantity,
		CropID:              in.CropID,
		CreatedAt:           now,
		UpdatedAt:           now,
	})
}

func (s *IngredientService) Update(ctx context.Context, id string, in ports.IngredientInput) (*domain.Ingredient, error) {
	ingredient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.CropID != "" && in.CropID != ingredient.CropID {
		if _, err := s.crops.FindByID(ctx, in.CropID); err != nil {
			return nil, err
		}
	}
	ingredient.Name = in.Name
	ingredient.CaloriesPerQuantity = in.CaloriesPerQuantity
	ingredient.CropID = in.CropID
	ingredient.UpdatedAt = time.Now().UTC()
	return s.repo.Save(ctx, ingredient)
}

func (s *IngredientService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// CategoryService implements the category lookup table.
type CategoryService struct {
	repo ports.CategoryRepository
}

func NewCategoryService(repo ports.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) List(ctx context.Context, page ports.PageRequest) ([]domain.Category, ports.PageInfo, error) {
	page = page.Normalize()
	items, total, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, ports.PageInfo{}, fmt.Errorf("list categories: %w", err)
	}
	return items, ports.NewPageInfo(page, total), nil
}

func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	return s.repo.Save(ctx, &domain.Category{Name: name})
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// CourseService implements the course lookup table.
type CourseService struct {
	repo ports.CourseRepository
}

func NewCourseService(repo ports.CourseRepository) *CourseService {
	return &CourseService{repo: repo}
}

func (s *CourseService) Get(ctx context.Context, id string) (*domain.Course, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CourseService) List(ctx context.Context, page ports.PageRequest) ([]domain.Course, ports.PageInfo, error) {
	page = page.Normalize()
	items, total, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, ports.PageInfo{}, fmt.Errorf("list courses: %w", err)
	}
	return items, ports.NewPageInfo(page, total), nil
}

func (s *CourseService) Create(ctx context.Context, name string) (*domain.Course, error) {
	return s.repo.Save(ctx, &domain.Course{Name: name})
}

func (s *CourseService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// MeasurementService implements the measurement lookup table.
type MeasurementService struct {
	repo ports.MeasurementRepository
}

func NewMeasurementService(repo ports.MeasurementRepository) *MeasurementService {
	return &MeasurementService{repo: repo}
}

func (s *MeasurementService) Get(ctx context.Context, id string) (*domain.Measurement, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MeasurementService) List(ctx context.Context, page ports.PageRequest) ([]domain.Measurement, ports.PageInfo, error) {
	page = page.Normalize()
	items, total, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, ports.PageInfo{}, fmt.Errorf("list measurements: %w", err)
	}
	return items, ports.NewPageInfo(page, total), nil
}

func (s *MeasurementService) Create(ctx context.Context, name string) (*domain.Measurement, error) {
	return s.repo.Save(ctx, &domain.Measurement{Name: name})
}

func (s *MeasurementService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
