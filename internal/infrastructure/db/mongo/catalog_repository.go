package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/ports"
)

const (
	collectionIngredients  = "ingredients"
	collectionCategories   = "categories"
	collectionCourses      = "courses"
	collectionMeasurements = "measurements"
)

type IngredientRepository struct {
	col *mongo.Collection
}

func NewIngredientRepository(db *mongo.Database) *IngredientRepository {
	return &IngredientRepository{col: db.Collection(collectionIngredients)}
}

type mongoIngredient struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	Name                string             `bson:"name"`
	CaloriesPerQuantity int                `bson:"calories_per_quantity,omitempty"`
	CropID              string             `bson:"crop_id,omitempty"`
	CreatedAt           time.Time          `bson:"created_at"`
	UpdatedAt           time.Time          `bson:"updated_at"`
}

func (mi *mongoIngredient) toDomain() *domain.Ingredient {
	return &domain.Ingredient{
		ID:                  mi.ID.Hex(),
		Name:                mi.Name,
		CaloriesPerQuantity: mi.CaloriesPerQuantity,
		CropID:              mi.CropID,
		CreatedAt:           mi.CreatedAt,
		UpdatedAt:           mi.UpdatedAt,
	}
}

func (r *IngredientRepository) FindByID(ctx context.Context, id string) (*domain.Ingredient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrIngredientNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mi mongoIngredient
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mi); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, fmt.Errorf("find ingredient: %w", err)
	}
	return mi.toDomain(), nil
}

func (r *IngredientRepository) List(ctx context.Context, page ports.PageRequest) ([]domain.Ingredient, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count ingredients: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list ingredients: %w", err)
	}
	defer cur.Close(ctx)

	var ingredients []domain.Ingredient
	for cur.Next(ctx) {
		var mi mongoIngredient
		if err := cur.Decode(&mi); err != nil {
			return nil, 0, fmt.Errorf("decode ingredient: %w", err)
		}
		ingredients = append(ingredients, *mi.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list ingredients: %w", err)
	}
	return ingredients, total, nil
}

func (r *IngredientRepository) Save(ctx context.Context, ingredient *domain.Ingredient) (*domain.Ingredient, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := mongoIngredient{
		Name:                ingredient.Name,
		CaloriesPerQuantity: ingredient.CaloriesPerQuantity,
		CropID:              ingredient.CropID,
		CreatedAt:           ingredient.CreatedAt,
		UpdatedAt:           now,
	}

	if ingredient.ID == "" {
		doc.CreatedAt = now
		res, err := r.col.InsertOne(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("insert ingredient: %w", err)
		}
		doc.ID = res.InsertedID.(primitive.ObjectID)
		return doc.toDomain(), nil
	}

	oid, err := primitive.ObjectIDFromHex(ingredient.ID)
	if err != nil {
		return nil, domain.ErrIngredientNotFound
	}
	doc.ID = oid

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update ingredient: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrIngredientNotFound
	}
	return doc.toDomain(), nil
}

func (r *IngredientRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrIngredientNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete ingredient: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrIngredientNotFound
	}
	return nil
}

// The category, course, and measurement collections all store plain
// {_id, name} documents. lookupStore carries the shared access code;
// the typed repositories below translate to their domain type.

type mongoLookup struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

type lookupStore struct {
	col      *mongo.Collection
	notFound error
}

func (s *lookupStore) findByID(ctx context.Context, id string) (*mongoLookup, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, s.notFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ml mongoLookup
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&ml); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, s.notFound
		}
		return nil, fmt.Errorf("find %s: %w", s.col.Name(), err)
	}
	return &ml, nil
}

func (s *lookupStore) list(ctx context.Context, page ports.PageRequest) ([]mongoLookup, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", s.col.Name(), err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Limit))

	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", s.col.Name(), err)
	}
	defer cur.Close(ctx)

	var items []mongoLookup
	for cur.Next(ctx) {
		var ml mongoLookup
		if err := cur.Decode(&ml); err != nil {
			return nil, 0, fmt.Errorf("decode %s: %w", s.col.Name(), err)
		}
		items = append(items, ml)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", s.col.Name(), err)
	}
	return items, total, nil
}

func (s *lookupStore) save(ctx context.Context, id, name string) (*mongoLookup, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoLookup{Name: name}
	if id == "" {
		res, err := s.col.InsertOne(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("insert %s: %w", s.col.Name(), err)
		}
		doc.ID = res.InsertedID.(primitive.ObjectID)
		return &doc, nil
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, s.notFound
	}
	doc.ID = oid

	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", s.col.Name(), err)
	}
	if res.MatchedCount == 0 {
		return nil, s.notFound
	}
	return &doc, nil
}

func (s *lookupStore) delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return s.notFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s: %w", s.col.Name(), err)
	}
	if res.DeletedCount == 0 {
		return s.notFound
	}
	return nil
}

type CategoryRepository struct {
	store lookupStore
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{store: lookupStore{
		col:      db.Collection(collectionCategories),
		notFound: domain.ErrCategoryNotFound,
	}}
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	ml, err := r.store.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.Category{ID: ml.ID.Hex(), Name: ml.Name}, nil
}

func (r *CategoryRepository) List(ctx context.Context, page ports.PageRequest) ([]domain.Category, int64, error) {
	items, total, err := r.store.list(ctx, page)
	if err != nil {
		return nil, 0, err
	}
	categories := make([]domain.Category, 0, len(items))
	for _, ml := range items {
		categories = append(categories, domain.Category{ID: ml.ID.Hex(), Name: ml.Name})
	}
	return categories, total, nil
}

func (r *CategoryRepository) Save(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	ml, err := r.store.save(ctx, category.ID, category.Name)
	if err != nil {
		return nil, err
	}
	return &domain.Category{ID: ml.ID.Hex(), Name: ml.Name}, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	return r.store.delete(ctx, id)
}

type CourseRepository struct {
	store lookupStore
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{store: lookupStore{
		col:      db.Collection(collectionCourses),
		notFound: domain.ErrCourseNotFound,
	}}
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	ml, err := r.store.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.Course{ID: ml.ID.Hex(), Name: ml.Name}, nil
}

func (r *CourseRepository) List(ctx context.Context, page ports.PageRequest) ([]domain.Course, int64, error) {
	items, total, err := r.store.list(ctx, page)
	if err != nil {
		return nil, 0, err
	}
	courses := make([]domain.Course, 0, len(items))
	for _, ml := range items {
		courses = append(courses, domain.Course{ID: ml.ID.Hex(), Name: ml.Name})
	}
	return courses, total, nil
}

func (r *CourseRepository) Save(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	ml, err := r.store.save(ctx, course.ID, course.Name)
	if err != nil {
		return nil, err
	}
	return &domain.Course{ID: ml.ID.Hex(), Name: ml.Name}, nil
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	return r.store.delete(ctx, id)
}

type MeasurementRepository struct {
	store lookupStore
}

func NewMeasurementRepository(db *mongo.Database) *MeasurementRepository {
	return &MeasurementRepository{store: lookupStore{
		col:      db.Collection(collectionMeasurements),
		notFound: domain.ErrMeasurementNotFound,
	}}
}

func (r *MeasurementRepository) FindByID(ctx context.Context, id string) (*domain.Measurement, error) {
	ml, err := r.store.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.Measurement{ID: ml.ID.Hex(), Name: ml.Name}, nil
}

func (r *MeasurementRepository) List(ctx context.Context, page ports.PageRequest) ([]domain.Measurement, int64, error) {
	items, total, err := r.store.list(ctx, page)
	if err != nil {
		return nil, 0, err
	}
	measurements := make([]domain.Measurement, 0, len(items))
	for _, ml := range items {
		measurements = append(measurements, domain.Measurement{ID: ml.ID.Hex(), Name: ml.Name})
	}
	return measurements, total, nil
}

func (r *MeasurementRepository) Save(ctx context.Context, measurement *domain.Measurement) (*domain.Measurement, error) {
	ml, err := r.store.save(ctx, measurement.ID, measurement.Name)
	if err != nil {
		return nil, err
	}
	return &domain.Measurement{ID: ml.ID.Hex(), Name: ml.Name}, nil
}

func (r *MeasurementRepository) Delete(ctx context.Context, id string) error {
	return r.store.delete(ctx, id)
}
