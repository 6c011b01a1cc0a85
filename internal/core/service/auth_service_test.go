package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by email
	nextID int
	saves  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	r.saves++
	copy := cloneUser(user)
	if copy.ID == "" {
		if _, exists := r.users[copy.Email]; exists {
			return nil, domain.ErrEmailTaken
		}
		r.nextID++
		copy.ID = string(rune('a' + r.nextID))
	}
	r.users[copy.Email] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) List(_ context.Context, _ ports.PageRequest) ([]domain.User, int64, error) {
	var out []domain.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	for email, u := range r.users {
		if u.ID == id {
			delete(r.users, email)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func newTestAuthService(repo ports.UserRepository) *AuthService {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	tokens := NewTokenService("test-secret", time.Hour)
	return NewAuthService(repo, hasher, tokens)
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	token, user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pass1234")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty string")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.PasswordHash == "pass1234" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass1234")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_NormalizesEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, user, err := svc.Register(context.Background(), "Bob", "  Bob@Example.COM ", "pass1234")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Email != "bob@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}

	// the variant spelling now collides
	if _, _, err := svc.Register(context.Background(), "Bob", "BOB@example.com", "pass1234"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Register_DuplicateWritesNothing(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "Carol", "carol@example.com", "pass1234"); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}
	savesBefore := repo.saves

	if _, _, err := svc.Register(context.Background(), "Carol2", "carol@example.com", "other5678"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if repo.saves != savesBefore {
		t.Fatalf("duplicate registration reached the store")
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "Dave", "dave@example.com", "pass1234"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "dave@example.com", "pass1234")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty string")
	}
	if user.Email != "dave@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_TokenCarriesCurrentRole(t *testing.T) {
	repo := newStubUserRepo()
	hasher := NewPasswordHasher(bcrypt.MinCost)
	tokens := NewTokenService("test-secret", time.Hour)
	svc := NewAuthService(repo, hasher, tokens)

	if _, _, err := svc.Register(context.Background(), "Erin", "erin@example.com", "pass1234"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	// promote the account between registration and login
	repo.users["erin@example.com"].Role = domain.RoleAdmin

	token, _, err := svc.Login(context.Background(), "erin@example.com", "pass1234")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	claims, err := tokens.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role in token, got %q", claims.Role)
	}
}

func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "Frank", "frank@example.com", "pass1234"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	_, _, unknownErr := svc.Login(context.Background(), "nobody@example.com", "pass1234")
	_, _, wrongErr := svc.Login(context.Background(), "frank@example.com", "wrong-pass")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("failure modes are distinguishable: %q vs %q", unknownErr, wrongErr)
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  MiXeD@Example.Com\t"); got != "mixed@example.com" {
		t.Fatalf("unexpected normalization: %q", got)
	}
}
