package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/ports"
)

// AuthService implements registration and login on top of the credential
// store, the password hasher and the token service.
type AuthService struct {
	repo   ports.UserRepository
	hasher *PasswordHasher
	tokens ports.TokenService

	// decoyHash keeps the unknown-email login path doing the same bcrypt
	// work as the wrong-password path.
	decoyHash string
}

func NewAuthService(repo ports.UserRepository, hasher *PasswordHasher, tokens ports.TokenService) *AuthService {
	decoy, _ := hasher.Hash("decoy-password")
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, decoyHash: decoy}
}

// NormalizeEmail trims surrounding whitespace and lowercases the
// address. Uniqueness checks and lookups always run on the normalized
// form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account with role user and issues a token for
// it. The single store write happens only after the duplicate check
// passes.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, *domain.User, error) {
	email = NormalizeEmail(email)

	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return "", nil, domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Save(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return "", nil, domain.ErrEmailTaken
		}
		return "", nil, fmt.Errorf("save user: %w", err)
	}

	token, err := s.tokens.Issue(created.Email, created.Role)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

// Login verifies credentials and issues a token carrying the identity's
// current role. Unknown email and wrong password are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = NormalizeEmail(email)

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.hasher.Verify(password, s.decoyHash)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("lookup email: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
