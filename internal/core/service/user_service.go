package service

import (
	"context"
	"fmt"
	"time"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/ports"
)

// UserService implements account CRUD and the favorites relations.
type UserService struct {
	users   ports.UserRepository
	crops   ports.CropRepository
	recipes ports.RecipeRepository
}

func NewUserService(users ports.UserRepository, crops ports.CropRepository, recipes ports.RecipeRepository) *UserService {
	return &UserService{users: users, crops: crops, recipes: recipes}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, page ports.PageRequest) ([]domain.User, ports.PageInfo, error) {
	page = page.Normalize()
	users, total, err := s.users.List(ctx, page)
	if err != nil {
		return nil, ports.PageInfo{}, fmt.Errorf("list users: %w", err)
	}
	return users, ports.NewPageInfo(page, total), nil
}

func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = NormalizeEmail(in.Email)
	}
	user.UpdatedAt = time.Now().UTC()
	return s.users.Save(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

func (s *UserService) ListFavoriteCrops(ctx context.Context, userID string) ([]domain.Crop, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	crops := make([]domain.Crop, 0, len(user.FavoriteCropIDs))
	for _, id := range user.FavoriteCropIDs {
		crop, err := s.crops.FindByID(ctx, id)
		if err != nil {
			// A favorite pointing at a deleted crop is skipped, not an error.
			continue
		}
		crops = append(crops, *crop)
	}
	return crops, nil
}

func (s *UserService) AddFavoriteCrop(ctx context.Context, userID, cropID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if _, err := s.crops.FindByID(ctx, cropID); err != nil {
		return err
	}
	if user.HasFavoriteCrop(cropID) {
		return nil
	}
	user.FavoriteCropIDs = append(user.FavoriteCropIDs, cropID)
	user.UpdatedAt = time.Now().UTC()
	_, err = s.users.Save(ctx, user)
	return err
}

func (s *UserService) RemoveFavoriteCrop(ctx context.Context, userID, cropID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	user.FavoriteCropIDs = remove(user.FavoriteCropIDs, cropID)
	user.UpdatedAt = time.Now().UTC()
	_, err = s.users.Save(ctx, user)
	return err
}

func (s *UserService) ListFavoriteRecipes(ctx context.Context, userID string) ([]domain.Recipe, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	recipes := make([]domain.Recipe, 0, len(user.FavoriteRecipeIDs))
	for _, id := range user.FavoriteRecipeIDs {
		recipe, err := s.recipes.FindByID(ctx, id)
		if err != nil {
			continue
		}
		recipes = append(recipes, *recipe)
	}
	return recipes, nil
}

func (s *UserService) AddFavoriteRecipe(ctx context.Context, userID, recipeID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if _, err := s.recipes.FindByID(ctx, recipeID); err != nil {
		return err
	}
	if user.HasFavoriteRecipe(recipeID) {
		return nil
	}
	user.FavoriteRecipeIDs = append(user.FavoriteRecipeIDs, recipeID)
	user.UpdatedAt = time.Now().UTC()
	_, err = s.users.Save(ctx, user)
	return err
}

func (s *UserService) RemoveFavoriteRecipe(ctx context.Context, userID, recipeID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	user.FavoriteRecipeIDs = remove(user.FavoriteRecipeIDs, recipeID)
	user.UpdatedAt = time.Now().UTC()
	_, err = s.users.Save(ctx, user)
	return err
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
