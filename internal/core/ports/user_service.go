package ports

import (
	"context"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
)

// UpdateUserInput carries the account fields a user may change. Empty
// fields are left untouched.
type UpdateUserInput struct {
	Name  string
	Email string
}

// UserService exposes account CRUD and the favorites relations.
type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, page PageRequest) ([]domain.User, PageInfo, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error

	ListFavoriteCrops(ctx context.Context, userID string) ([]domain.Crop, error)
	AddFavoriteCrop(ctx context.Context, userID, cropID string) error
	RemoveFavoriteCrop(ctx context.Context, userID, cropID string) error

	ListFavoriteRecipes(ctx context.Context, userID string) ([]domain.Recipe, error)
	AddFavoriteRecipe(ctx context.Context, userID, recipeID string) error
	RemoveFavoriteRecipe(ctx context.Context, userID, recipeID string) error
}
