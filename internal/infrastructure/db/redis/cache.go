package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/ports"
)

const cacheTTL = 10 * time.Minute

// CropCache is a read-through cache in front of a CropRepository.
// FindByID serves from Redis when possible; writes and deletes
// invalidate the cached entry. Key format: crop:<id>
type CropCache struct {
	inner  ports.CropRepository
	client *redis.Client
	log    zerolog.Logger
}

func NewCropCache(inner ports.CropRepository, client *redis.Client, log zerolog.Logger) *CropCache {
	return &CropCache{inner: inner, client: client, log: log}
}

func (c *CropCache) key(id string) string {
	return fmt.Sprintf("crop:%s", id)
}

func (c *CropCache) FindByID(ctx context.Context, id string) (*domain.Crop, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err == nil {
		var crop domain.Crop
		if err := json.Unmarshal(raw, &crop); err == nil {
			return &crop, nil
		}
		// corrupt entry, fall through to the repository
	} else if !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Str("crop_id", id).Msg("crop cache read failed")
	}

	crop, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, crop)
	return crop, nil
}

func (c *CropCache) store(ctx context.Context, crop *domain.Crop) {
	raw, err := json.Marshal(crop)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(crop.ID), raw, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("crop_id", crop.ID).Msg("crop cache write failed")
	}
}

func (c *CropCache) invalidate(ctx context.Context, id string) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		c.log.Warn().Err(err).Str("crop_id", id).Msg("crop cache invalidation failed")
	}
}

func (c *CropCache) List(ctx context.Context, page ports.PageRequest) ([]domain.Crop, int64, error) {
	return c.inner.List(ctx, page)
}

func (c *CropCache) SearchByName(ctx context.Context, name string, page ports.PageRequest) ([]domain.Crop, int64, error) {
	return c.inner.SearchByName(ctx, name, page)
}

func (c *CropCache) Save(ctx context.Context, crop *domain.Crop) (*domain.Crop, error) {
	saved, err := c.inner.Save(ctx, crop)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, saved.ID)
	return saved, nil
}

func (c *CropCache) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

// RecipeCache is the same read-through decorator for recipes.
// Key format: recipe:<id>
type RecipeCache struct {
	inner  ports.RecipeRepository
	client *redis.Client
	log    zerolog.Logger
}

func NewRecipeCache(inner ports.RecipeRepository, client *redis.Client, log zerolog.Logger) *RecipeCache {
	return &RecipeCache{inner: inner, client: client, log: log}
}

func (c *RecipeCache) key(id string) string {
	return fmt.Sprintf("recipe:%s", id)
}

func (c *RecipeCache) FindByID(ctx context.Context, id string) (*domain.Recipe, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err == nil {
		var recipe domain.Recipe
		if err := json.Unmarshal(raw, &recipe); err == nil {
			return &recipe, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Str("recipe_id", id).Msg("recipe cache read failed")
	}

	recipe, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, recipe)
	return recipe, nil
}

func (c *RecipeCache) store(ctx context.Context, recipe *domain.Recipe) {
	raw, err := json.Marshal(recipe)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(recipe.ID), raw, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("recipe_id", recipe.ID).Msg("recipe cache write failed")
	}
}

func (c *RecipeCache) invalidate(ctx context.Context, id string) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		c.log.Warn().Err(err).Str("recipe_id", id).Msg("recipe cache invalidation failed")
	}
}

func (c *RecipeCache) List(ctx context.Context, filter ports.RecipeFilter, page ports.PageRequest) ([]domain.Recipe, int64, error) {
	return c.inner.List(ctx, filter, page)
}

func (c *RecipeCache) Save(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	saved, err := c.inner.Save(ctx, recipe)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, saved.ID)
	return saved, nil
}

func (c *RecipeCache) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}
