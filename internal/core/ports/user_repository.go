package ports

import (
	"context"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
)

// UserRepository is the credential store contract consumed by the auth
// core and the user CRUD surface.
type UserRepository interface {
	// FindByEmail looks up a user by normalized email. Returns
	// domain.ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID returns domain.ErrUserNotFound when absent.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Save inserts the user (assigning an ID) or updates it when the ID
	// is already set. Inserting a duplicate email returns domain.ErrEmailTaken.
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context, page PageRequest) ([]domain.User, int64, error)
	Delete(ctx context.Context, id string) error
}
