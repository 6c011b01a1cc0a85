package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/ports"
)

const collectionCrops = "crops"

type CropRepository struct {
	col *mongo.Collection
}

func NewCropRepository(db *mongo.Database) *CropRepository {
	return &CropRepository{col: db.Collection(collectionCrops)}
}

type mongoCrop struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	SowingStart   int                `bson:"sowing_start,omitempty"`
	SowingEnd     int                `bson:"sowing_end,omitempty"`
	PlantingStart int                `bson:"planting_start,omitempty"`
	PlantingEnd   int                `bson:"planting_end,omitempty"`
	HarvestStart  int                `bson:"harvest_start,omitempty"`
	HarvestEnd    int                `bson:"harvest_end,omitempty"`
	InHouse       bool               `bson:"in_house"`
	InPots        bool               `bson:"in_pots"`
	InGarden      bool               `bson:"in_garden"`
	InGreenhouse  bool               `bson:"in_greenhouse"`
	Description   string             `bson:"description,omitempty"`
	Tips          string             `bson:"tips,omitempty"`
	Image         string             `bson:"image,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func newMongoCrop(crop *domain.Crop) mongoCrop {
	return mongoCrop{
		Name:          crop.Name,
		SowingStart:   int(crop.SowingStart),
		SowingEnd:     int(crop.SowingEnd),
		PlantingStart: int(crop.PlantingStart),
		PlantingEnd:   int(crop.PlantingEnd),
		HarvestStart:  int(crop.HarvestStart),
		HarvestEnd:    int(crop.HarvestEnd),
		InHouse:       crop.InHouse,
		InPots:        crop.InPots,
		InGarden:      crop.InGarden,
		InGreenhouse:  crop.InGreenhouse,
		Description:   crop.Description,
		Tips:          crop.Tips,
		Image:         crop.Image,
		CreatedAt:     crop.CreatedAt,
		UpdatedAt:     crop.UpdatedAt,
	}
}

func (mc *mongoCrop) toDomain() *domain.Crop {
	return &domain.Crop{
		ID:            mc.ID.Hex(),
		Name:          mc.Name,
		SowingStart:   time.Month(mc.SowingStart),
		SowingEnd:     time.Month(mc.SowingEnd),
		PlantingStart: time.Month(mc.PlantingStart),
		PlantingEnd:   time.Month(mc.PlantingEnd),
		HarvestStart:  time.Month(mc.HarvestStart),
		HarvestEnd:    time.Month(mc.HarvestEnd),
		InHouse:       mc.InHouse,
		InPots:        mc.InPots,
		InGarden:      mc.InGarden,
		InGreenhouse:  mc.InGreenhouse,
		Description:   mc.Description,
		Tips:          mc.Tips,
		Image:         mc.Image,
		CreatedAt:     mc.CreatedAt,
		UpdatedAt:     mc.UpdatedAt,
	}
}

func (r *CropRepository) FindByID(ctx context.Context, id string) (*domain.Crop, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCropNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoCrop
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCropNotFound
		}
		return nil, fmt.Errorf("find crop: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *CropRepository) List(ctx context.Context, page ports.PageRequest) ([]domain.Crop, int64, error) {
	return r.find(ctx, bson.M{}, page)
}

// SearchByName matches crop names containing the term, case-insensitive.
func (r *CropRepository) SearchByName(ctx context.Context, name string, page ports.PageRequest) ([]domain.Crop, int64, error) {
	filter := bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"}}
	return r.find(ctx, filter, page)
}

func (r *CropRepository) find(ctx context.Context, filter bson.M, page ports.PageRequest) ([]domain.Crop, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count crops: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list crops: %w", err)
	}
	defer cur.Close(ctx)

	var crops []domain.Crop
	for cur.Next(ctx) {
		var mc mongoCrop
		if err := cur.Decode(&mc); err != nil {
			return nil, 0, fmt.Errorf("decode crop: %w", err)
		}
		crops = append(crops, *mc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list crops: %w", err)
	}
	return crops, total, nil
}

func (r *CropRepository) Save(ctx context.Context, crop *domain.Crop) (*domain.Crop, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := newMongoCrop(crop)
	doc.UpdatedAt = now

	if crop.ID == "" {
		doc.CreatedAt = now
		res, err := r.col.InsertOne(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("insert crop: %w", err)
		}
		doc.ID = res.InsertedID.(primitive.ObjectID)
		return doc.toDomain(), nil
	}

	oid, err := primitive.ObjectIDFromHex(crop.ID)
	if err != nil {
		return nil, domain.ErrCropNotFound
	}
	doc.ID = oid

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update crop: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCropNotFound
	}
	return doc.toDomain(), nil
}

func (r *CropRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCropNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete crop: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCropNotFound
	}
	return nil
}
