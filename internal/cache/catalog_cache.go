package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gymtrackpage/hybridx/internal/models"
	"github.com/gymtrackpage/hybridx/internal/repository"
	"github.com/redis/go-redis/v9"
)

// CatalogCache — read-through кэш списка тренировок программы поверх
// WorkoutRepository. Ошибки Redis не фатальны: читаем из базы.
type CatalogCache struct {
	inner  repository.WorkoutRepository
	client *redis.Client
	ttl    time.Duration
}

var _ repository.WorkoutRepository = (*CatalogCache)(nil)

func NewCatalogCache(inner repository.WorkoutRepository, client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{inner: inner, client: client, ttl: ttl}
}

func catalogKey(programID uint) string {
	return fmt.Sprintf("catalog:workouts:%d", programID)
}

func (c *CatalogCache) ListByProgram(programID uint) ([]*models.Workout, error) {
	ctx := context.Background()

	if raw, err := c.client.Get(ctx, catalogKey(programID)).Bytes(); err == nil {
		var workouts []*models.Workout
		if err := json.Unmarshal(raw, &workouts); err == nil {
			return workouts, nil
		}
	}

	workouts, err := c.inner.ListByProgram(programID)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(workouts); err == nil {
		c.client.Set(ctx, catalogKey(programID), raw, c.ttl)
	}
	return workouts, nil
}

func (c *CatalogCache) Create(workout *models.Workout) (*models.Workout, error) {
	created, err := c.inner.Create(workout)
	if err == nil {
		c.client.Del(context.Background(), catalogKey(created.ProgramID))
	}
	return created, err
}

func (c *CatalogCache) FindByID(id uint) (*models.Workout, error) {
	return c.inner.FindByID(id)
}

func (c *CatalogCache) Delete(id uint) error {
	workout, err := c.inner.FindByID(id)
	if err != nil {
		return err
	}
	if err := c.inner.Delete(id); err != nil {
		return err
	}
	c.client.Del(context.Background(), catalogKey(workout.ProgramID))
	return nil
}
