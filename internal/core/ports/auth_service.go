package ports

import (
	"context"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
)

// AuthService verifies credentials and orchestrates registration.
type AuthService interface {
	// Register creates an account with role user and returns a token for
	// immediate authentication. Duplicate email → domain.ErrEmailTaken.
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	// Login returns the same domain.ErrInvalidCredentials whether the
	// email is unknown or the password is wrong.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
