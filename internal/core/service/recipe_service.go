package service

import (
	"context"
	"fmt"
	"time"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/ports"
)

// RecipeService implements catalog operations over recipes.
type RecipeService struct {
	repo ports.RecipeRepository
}

func NewRecipeService(repo ports.RecipeRepository) *RecipeService {
	return &RecipeService{repo: repo}
}

func (s *RecipeService) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RecipeService) List(ctx context.Context, filter ports.RecipeFilter, page ports.PageRequest) ([]domain.Recipe, ports.PageInfo, error) {
	page = page.Normalize()
	recipes, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, ports.PageInfo{}, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, ports.NewPageInfo(page, total), nil
}

func (s *RecipeService) Create(ctx context.Context, in ports.RecipeInput) (*domain.Recipe, error) {
	now := time.Now().UTC()
	recipe := &domain.Recipe{CreatedAt: now}
	applyRecipeInput(recipe, in, now)
	return s.repo.Save(ctx, recipe)
}

func (s *RecipeService) Update(ctx context.Context, id string, in ports.RecipeInput) (*domain.Recipe, error) {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyRecipeInput(recipe, in, time.Now().UTC())
	return s.repo.Save(ctx, recipe)
}

func (s *RecipeService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func applyRecipeInput(recipe *domain.Recipe, in ports.RecipeInput, now time.Time) {
	recipe.Name = in.Name
	recipe.AuthorID = in.AuthorID
	recipe.Description = in.Description
	recipe.PrepTime = in.PrepTime
	recipe.CookTime = in.CookTime
	recipe.ImageURL = in.ImageURL
	recipe.CourseID = in.CourseID
	recipe.CategoryID = in.CategoryID

	recipe.Quantities = make([]domain.RecipeQuantity, 0, len(in.Quantities))
	for _, q := range in.Quantities {
		recipe.Quantities = append(recipe.Quantities, domain.RecipeQuantity{
			IngredientID:  q.IngredientID,
			MeasurementID: q.MeasurementID,
			Quantity:      q.Quantity,
		})
	}

	// Steps are renumbered from 1 in the order supplied.
	recipe.Steps = make([]domain.RecipeStep, 0, len(in.Steps))
	for i, st := range in.Steps {
		recipe.Steps = append(recipe.Steps, domain.RecipeStep{
			Number:      i + 1,
			Description: st.Description,
		})
	}

	recipe.UpdatedAt = now
}
