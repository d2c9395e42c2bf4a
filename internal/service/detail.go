package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/kimjuyoung1127/fridgechef-backend/internal/model"
)

// detailCacheTTL is how long a recipe detail stays cached in Redis.
const detailCacheTTL = 24 * time.Hour

// DetailService serves recipe details by menu name with a Redis cache in
// front of the database. The Redis client is optional; without it every
// lookup goes to the database.
type DetailService struct {
	db     *gorm.DB
	redis  *redis.Client
	logger zerolog.Logger
}

// NewDetailService creates a new DetailService instance
func NewDetailService(db *gorm.DB, redisClient *redis.Client, logger zerolog.Logger) *DetailService {
	return &DetailService{
		db:     db,
		redis:  redisClient,
		logger: logger.With().Str("component", "recipe_detail").Logger(),
	}
}

// GetRecipeDetail returns the stored recipe for menuName. Returns
// gorm.ErrRecordNotFound when no such recipe exists.
func (s *DetailService) GetRecipeDetail(ctx context.Context, menuName string) (*model.Recipe, error) {
	key := detailCacheKey(menuName)

	if s.redis != nil {
		data, err := s.redis.Get(ctx, key).Bytes()
		if err == nil {
			var recipe model.Recipe
			if err := json.Unmarshal(data, &recipe); err == nil {
				s.logger.Debug().Str("menu_name", menuName).Msg("recipe detail cache hit")
				return &recipe, nil
			}
			// Corrupt entry, drop it and fall through to the database.
			_ = s.redis.Del(ctx, key).Err()
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("recipe detail cache unavailable")
		}
	}

	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "menu_name = ?", menuName).Error; err != nil {
		return nil, err
	}

	if s.redis != nil {
		data, err := json.Marshal(recipe)
		if err == nil {
			if err := s.redis.Set(ctx, key, data, detailCacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to cache recipe detail")
			}
		}
	}
	return &recipe, nil
}

// InvalidateDetail drops the cached detail for menuName, for when a stored
// recipe is updated.
func (s *DetailService) InvalidateDetail(ctx context.Context, menuName string) error {
	if s.redis == nil {
		return nil
	}
	return s.redis.Del(ctx, detailCacheKey(menuName)).Err()
}

func detailCacheKey(menuName string) string {
	return fmt.Sprintf("recipe:detail:%s", menuName)
}
