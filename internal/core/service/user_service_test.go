package service

import (
	"context"
	"errors"
	"testing"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/ports"
)

type stubCropRepo struct {
	crops map[string]*domain.Crop
}

func newStubCropRepo() *stubCropRepo {
	return &stubCropRepo{crops: make(map[string]*domain.Crop)}
}

func (r *stubCropRepo) FindByID(_ context.Context, id string) (*domain.Crop, error) {
	if c, ok := r.crops[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrCropNotFound
}

func (r *stubCropRepo) List(_ context.Context, _ ports.PageRequest) ([]domain.Crop, int64, error) {
	var out []domain.Crop
	for _, c := range r.crops {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubCropRepo) SearchByName(_ context.Context, _ string, _ ports.PageRequest) ([]domain.Crop, int64, error) {
	return nil, 0, nil
}

func (r *stubCropRepo) Save(_ context.Context, crop *domain.Crop) (*domain.Crop, error) {
	clone := *crop
	r.crops[clone.ID] = &clone
	return &clone, nil
}

func (r *stubCropRepo) Delete(_ context.Context, id string) error {
	delete(r.crops, id)
	return nil
}

type stubRecipeRepo struct {
	recipes map[string]*domain.Recipe
}

func newStubRecipeRepo() *stubRecipeRepo {
	return &stubRecipeRepo{recipes: make(map[string]*domain.Recipe)}
}

func (r *stubRecipeRepo) FindByID(_ context.Context, id string) (*domain.Recipe, error) {
	if rec, ok := r.recipes[id]; ok {
		clone := *rec
		return &clone, nil
	}
	return nil, domain.ErrRecipeNotFound
}

func (r *stubRecipeRepo) List(_ context.Context, _ ports.RecipeFilter, _ ports.PageRequest) ([]domain.Recipe, int64, error) {
	var out []domain.Recipe
	for _, rec := range r.recipes {
		out = append(out, *rec)
	}
	return out, int64(len(out)), nil
}

func (r *stubRecipeRepo) Save(_ context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	clone := *recipe
	r.recipes[clone.ID] = &clone
	return &clone, nil
}

func (r *stubRecipeRepo) Delete(_ context.Context, id string) error {
	delete(r.recipes, id)
	return nil
}

func newFavoritesFixture(t *testing.T) (*UserService, *stubUserRepo, *stubCropRepo, *stubRecipeRepo, string) {
	t.Helper()
	users := newStubUserRepo()
	crops := newStubCropRepo()
	recipes := newStubRecipeRepo()
	svc := NewUserService(users, crops, recipes)

	saved, err := users.Save(context.Background(), &domain.User{
		Name:  "Grace",
		Email: "grace@example.com",
		Role:  domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return svc, users, crops, recipes, saved.ID
}

func TestUserService_AddFavoriteCrop(t *testing.T) {
	svc, _, crops, _, userID := newFavoritesFixture(t)
	crops.crops["c1"] = &domain.Crop{ID: "c1", Name: "Tomato"}

	if err := svc.AddFavoriteCrop(context.Background(), userID, "c1"); err != nil {
		t.Fatalf("AddFavoriteCrop returned error: %v", err)
	}

	list, err := svc.ListFavoriteCrops(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListFavoriteCrops returned error: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Tomato" {
		t.Fatalf("unexpected favorites: %+v", list)
	}
}

func TestUserService_AddFavoriteCrop_Idempotent(t *testing.T) {
	svc, _, crops, _, userID := newFavoritesFixture(t)
	crops.crops["c1"] = &domain.Crop{ID: "c1", Name: "Tomato"}

	for i := 0; i < 3; i++ {
		if err := svc.AddFavoriteCrop(context.Background(), userID, "c1"); err != nil {
			t.Fatalf("AddFavoriteCrop returned error: %v", err)
		}
	}

	list, err := svc.ListFavoriteCrops(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListFavoriteCrops returned error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one favorite, got %d", len(list))
	}
}

func TestUserService_AddFavoriteCrop_UnknownCrop(t *testing.T) {
	svc, _, _, _, userID := newFavoritesFixture(t)

	err := svc.AddFavoriteCrop(context.Background(), userID, "missing")
	if !errors.Is(err, domain.ErrCropNotFound) {
		t.Fatalf("expected ErrCropNotFound, got %v", err)
	}
}

func TestUserService_RemoveFavoriteCrop(t *testing.T) {
	svc, _, crops, _, userID := newFavoritesFixture(t)
	crops.crops["c1"] = &domain.Crop{ID: "c1", Name: "Tomato"}
	crops.crops["c2"] = &domain.Crop{ID: "c2", Name: "Carrot"}

	if err := svc.AddFavoriteCrop(context.Background(), userID, "c1"); err != nil {
		t.Fatalf("AddFavoriteCrop returned error: %v", err)
	}
	if err := svc.AddFavoriteCrop(context.Background(), userID, "c2"); err != nil {
		t.Fatalf("AddFavoriteCrop returned error: %v", err)
	}
	if err := svc.RemoveFavoriteCrop(context.Background(), userID, "c1"); err != nil {
		t.Fatalf("RemoveFavoriteCrop returned error: %v", err)
	}

	list, err := svc.ListFavoriteCrops(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListFavoriteCrops returned error: %v", err)
	}
	if len(list) != 1 || list[0].ID != "c2" {
		t.Fatalf("unexpected favorites after remove: %+v", list)
	}
}

func TestUserService_ListFavoriteCrops_SkipsDeleted(t *testing.T) {
	svc, _, crops, _, userID := newFavoritesFixture(t)
	crops.crops["c1"] = &domain.Crop{ID: "c1", Name: "Tomato"}
	crops.crops["c2"] = &domain.Crop{ID: "c2", Name: "Carrot"}

	_ = svc.AddFavoriteCrop(context.Background(), userID, "c1")
	_ = svc.AddFavoriteCrop(context.Background(), userID, "c2")
	delete(crops.crops, "c1")

	list, err := svc.ListFavoriteCrops(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListFavoriteCrops returned error: %v", err)
	}
	if len(list) != 1 || list[0].ID != "c2" {
		t.Fatalf("expected dangling favorite to be skipped, got %+v", list)
	}
}

func TestUserService_FavoriteRecipes(t *testing.T) {
	svc, _, _, recipes, userID := newFavoritesFixture(t)
	recipes.recipes["r1"] = &domain.Recipe{ID: "r1", Name: "Soup"}

	if err := svc.AddFavoriteRecipe(context.Background(), userID, "r1"); err != nil {
		t.Fatalf("AddFavoriteRecipe returned error: %v", err)
	}
	list, err := svc.ListFavoriteRecipes(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListFavoriteRecipes returned error: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Soup" {
		t.Fatalf("unexpected favorites: %+v", list)
	}

	if err := svc.RemoveFavoriteRecipe(context.Background(), userID, "r1"); err != nil {
		t.Fatalf("RemoveFavoriteRecipe returned error: %v", err)
	}
	list, err = svc.ListFavoriteRecipes(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListFavoriteRecipes returned error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty favorites, got %+v", list)
	}
}

func TestUserService_Update(t *testing.T) {
	svc, _, _, _, userID := newFavoritesFixture(t)

	updated, err := svc.Update(context.Background(), userID, ports.UpdateUserInput{
		Name:  "Grace H.",
		Email: "  Grace.H@Example.com ",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "Grace H." {
		t.Fatalf("unexpected name: %s", updated.Name)
	}
	if updated.Email != "grace.h@example.com" {
		t.Fatalf("expected normalized email, got %s", updated.Email)
	}
}

func TestUserService_Update_UnknownUser(t *testing.T) {
	svc, _, _, _, _ := newFavoritesFixture(t)

	_, err := svc.Update(context.Background(), "missing", ports.UpdateUserInput{Name: "X"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
