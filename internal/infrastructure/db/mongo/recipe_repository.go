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

const collectionRecipes = "recipes"

type RecipeRepository struct {
	col *mongo.Collection
}

func NewRecipeRepository(db *mongo.Database) *RecipeRepository {
	return &RecipeRepository{col: db.Collection(collectionRecipes)}
}

type mongoRecipeQuantity struct {
	IngredientID  string  `bson:"ingredient_id"`
	MeasurementID string  `bson:"measurement_id"`
	Quantity      float64 `bson:"quantity"`
}

type mongoRecipeStep struct {
	Number      int    `bson:"number"`
	Description string `bson:"description"`
}

type mongoRecipe struct {
	ID          primitive.ObjectID    `bson:"_id,omitempty"`
	Name        string                `bson:"name"`
	AuthorID    string                `bson:"author_id,omitempty"`
	Description string                `bson:"description,omitempty"`
	PrepTime    string                `bson:"prep_time,omitempty"`
	CookTime    string                `bson:"cook_time,omitempty"`
	ImageURL    string                `bson:"image_url,omitempty"`
	CourseID    string                `bson:"course_id,omitempty"`
	CategoryID  string                `bson:"category_id,omitempty"`
	Quantities  []mongoRecipeQuantity `bson:"quantities,omitempty"`
	Steps       []mongoRecipeStep     `bson:"steps,omitempty"`
	CreatedAt   time.Time             `bson:"created_at"`
	UpdatedAt   time.Time             `bson:"updated_at"`
}

func newMongoRecipe(recipe *domain.Recipe) mongoRecipe {
	doc := mongoRecipe{
		Name:        recipe.Name,
		AuthorID:    recipe.AuthorID,
		Description: recipe.Description,
		PrepTime:    recipe.PrepTime,
		CookTime:    recipe.CookTime,
		ImageURL:    recipe.ImageURL,
		CourseID:    recipe.CourseID,
		CategoryID:  recipe.CategoryID,
		CreatedAt:   recipe.CreatedAt,
		UpdatedAt:   recipe.UpdatedAt,
	}
	for _, q := range recipe.Quantities {
		doc.Quantities = append(doc.Quantities, mongoRecipeQuantity(q))
	}
	for _, s := range recipe.Steps {
		doc.Steps = append(doc.Steps, mongoRecipeStep(s))
	}
	return doc
}

func (mr *mongoRecipe) toDomain() *domain.Recipe {
	recipe := &domain.Recipe{
		ID:          mr.ID.Hex(),
		Name:        mr.Name,
		AuthorID:    mr.AuthorID,
		Description: mr.Description,
		PrepTime:    mr.PrepTime,
		CookTime:    mr.CookTime,
		ImageURL:    mr.ImageURL,
		CourseID:    mr.CourseID,
		CategoryID:  mr.CategoryID,
		CreatedAt:   mr.CreatedAt,
		UpdatedAt:   mr.UpdatedAt,
	}
	for _, q := range mr.Quantities {
		recipe.Quantities = append(recipe.Quantities, domain.RecipeQuantity(q))
	}
	for _, s := range mr.Steps {
		recipe.Steps = append(recipe.Steps, domain.RecipeStep(s))
	}
	return recipe
}

func (r *RecipeRepository) FindByID(ctx context.Context, id string) (*domain.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRecipeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mr mongoRecipe
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("find recipe: %w", err)
	}
	return mr.toDomain(), nil
}

func (r *RecipeRepository) List(ctx context.Context, filter ports.RecipeFilter, page ports.PageRequest) ([]domain.Recipe, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.CategoryID != "" {
		query["category_id"] = filter.CategoryID
	}
	if filter.CourseID != "" {
		query["course_id"] = filter.CourseID
	}
	if filter.IngredientID != "" {
		query["quantities.ingredient_id"] = filter.IngredientID
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count recipes: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list recipes: %w", err)
	}
	defer cur.Close(ctx)

	var recipes []domain.Recipe
	for cur.Next(ctx) {
		var mr mongoRecipe
		if err := cur.Decode(&mr); err != nil {
			return nil, 0, fmt.Errorf("decode recipe: %w", err)
		}
		recipes = append(recipes, *mr.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, total, nil
}

func (r *RecipeRepository) Save(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := newMongoRecipe(recipe)
	doc.UpdatedAt = now

	if recipe.ID == "" {
		doc.CreatedAt = now
		res, err := r.col.InsertOne(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("insert recipe: %w", err)
		}
		doc.ID = res.InsertedID.(primitive.ObjectID)
		return doc.toDomain(), nil
	}

	oid, err := primitive.ObjectIDFromHex(recipe.ID)
	if err != nil {
		return nil, domain.ErrRecipeNotFound
	}
	doc.ID = oid

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrRecipeNotFound
	}
	return doc.toDomain(), nil
}

func (r *RecipeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRecipeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

// EnsureIndexes creates the relation-filter indexes used by List.
func (r *RecipeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category_id", Value: 1}}},
		{Keys: bson.D{{Key: "course_id", Value: 1}}},
		{Keys: bson.D{{Key: "quantities.ingredient_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
