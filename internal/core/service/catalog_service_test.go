package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/ports"
)

type stubIngredientRepo struct {
	ingredients map[string]*domain.Ingredient
	nextID      int
}

func newStubIngredientRepo() *stubIngredientRepo {
	return &stubIngredientRepo{ingredients: make(map[string]*domain.Ingredient)}
}

func (r *stubIngredientRepo) FindByID(_ context.Context, id string) (*domain.Ingredient, error) {
	if in, ok := r.ingredients[id]; ok {
		clone := *in
		return &clone, nil
	}
	return nil, domain.ErrIngredientNotFound
}

func (r *stubIngredientRepo) List(_ context.Context, _ ports.PageRequest) ([]domain.Ingredient, int64, error) {
	var out []domain.Ingredient
	for _, in := range r.ingredients {
		out = append(out, *in)
	}
	return out, int64(len(out)), nil
}

func (r *stubIngredientRepo) Save(_ context.Context, ingredient *domain.Ingredient) (*domain.Ingredient, error) {
	clone := *ingredient
	if clone.ID == "" {
		r.nextID++
		clone.ID = "i" + strconv.Itoa(r.nextID)
	}
	r.ingredients[clone.ID] = &clone
	return &clone, nil
}

func (r *stubIngredientRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.ingredients[id]; !ok {
		return domain.ErrIngredientNotFound
	}
	delete(r.ingredients, id)
	return nil
}

func TestIngredientService_Create_LinkedCropMustExist(t *testing.T) {
	crops := newStubCropRepo()
	svc := NewIngredientService(newStubIngredientRepo(), crops)

	_, err := svc.Create(context.Background(), ports.IngredientInput{
		Name:   "Tomato",
		CropID: "missing",
	})
	if !errors.Is(err, domain.ErrCropNotFound) {
		t.Fatalf("expected ErrCropNotFound, got %v", err)
	}

	crops.crops["c1"] = &domain.Crop{ID: "c1", Name: "Tomato plant"}
	created, err := svc.Create(context.Background(), ports.IngredientInput{
		Name:   "Tomato",
		CropID: "c1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned ID")
	}
	if created.CropID != "c1" {
		t.Fatalf("unexpected crop link: %s", created.CropID)
	}
}

func TestIngredientService_Create_CropLinkOptional(t *testing.T) {
	svc := NewIngredientService(newStubIngredientRepo(), newStubCropRepo())

	created, err := svc.Create(context.Background(), ports.IngredientInput{Name: "Salt"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.CropID != "" {
		t.Fatalf("expected no crop link, got %s", created.CropID)
	}
}

func TestIngredientService_Update_ChangedCropIsChecked(t *testing.T) {
	repo := newStubIngredientRepo()
	crops := newStubCropRepo()
	crops.crops["c1"] = &domain.Crop{ID: "c1"}
	svc := NewIngredientService(repo, crops)

	created, err := svc.Create(context.Background(), ports.IngredientInput{Name: "Tomato", CropID: "c1"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	_, err = svc.Update(context.Background(), created.ID, ports.IngredientInput{Name: "Tomato", CropID: "c2"})
	if !errors.Is(err, domain.ErrCropNotFound) {
		t.Fatalf("expected ErrCropNotFound for relinked crop, got %v", err)
	}
}

func TestCategoryService_CreateAndDelete(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo)

	created, err := svc.Create(context.Background(), "vegetarian")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" || created.Name != "vegetarian" {
		t.Fatalf("unexpected category: %+v", created)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound after delete, got %v", err)
	}
}

func TestCategoryService_ListNormalizesPage(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo)
	if _, err := svc.Create(context.Background(), "pasta"); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	_, info, err := svc.List(context.Background(), ports.PageRequest{Page: -3, Limit: 0})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if info.Page != 1 || info.Limit != 20 {
		t.Fatalf("expected normalized page 1/20, got %d/%d", info.Page, info.Limit)
	}
	if info.Total != 1 || info.TotalPages != 1 {
		t.Fatalf("unexpected envelope: %+v", info)
	}
}

type stubCategoryRepo struct {
	categories map[string]*domain.Category
	nextID     int
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[string]*domain.Category)}
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	if c, ok := r.categories[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) List(_ context.Context, _ ports.PageRequest) ([]domain.Category, int64, error) {
	var out []domain.Category
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubCategoryRepo) Save(_ context.Context, category *domain.Category) (*domain.Category, error) {
	clone := *category
	if clone.ID == "" {
		r.nextID++
		clone.ID = "cat" + strconv.Itoa(r.nextID)
	}
	r.categories[clone.ID] = &clone
	return &clone, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}
