package domain

import (
	"errors"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrTokenInvalid covers every token rejection cause (malformed, bad
// signature, expired). Callers must not branch on the cause; the
// distinction exists only for diagnostics.
var ErrTokenInvalid = errors.New("invalid token")

var ErrUnauthenticated = errors.New("authentication required")
var ErrForbidden = errors.New("access forbidden")

// User models an account in the system. Email is unique and stored
// normalized (trimmed, lowercased).
type User struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	Role              string    `json:"role"`
	FavoriteCropIDs   []string  `json:"favorite_crop_ids,omitempty"`
	FavoriteRecipeIDs []string  `json:"favorite_recipe_ids,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// HasFavoriteCrop reports whether cropID is in the user's favorites.
func (u *User) HasFavoriteCrop(cropID string) bool {
	for _, id := range u.FavoriteCropIDs {
		if id == cropID {
			return true
		}
	}
	return false
}

// HasFavoriteRecipe reports whether recipeID is in the user's favorites.
func (u *User) HasFavoriteRecipe(recipeID string) bool {
	for _, id := range u.FavoriteRecipeIDs {
		if id == recipeID {
			return true
		}
	}
	return false
}
