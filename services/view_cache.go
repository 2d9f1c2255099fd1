package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quizboard/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const viewCacheTTL = 2 * time.Hour

// ViewCache caches composed game views in Redis. It is a cache-aside layer:
// reads fall through to the database on miss, every mutation touching a game
// invalidates its key.
type ViewCache struct {
	redis  *redis.Client
	logger *zap.Logger
}

func NewViewCache(redis *redis.Client, logger *zap.Logger) *ViewCache {
	return &ViewCache{
		redis:  redis,
		logger: logger,
	}
}

func gameViewKey(gameID uint) string {
	return fmt.Sprintf("game:view:%d", gameID)
}

// GetGame returns the cached composed view of the given game or nil on miss.
func (c *ViewCache) GetGame(gameID uint) *models.Game {
	data, err := c.redis.Get(context.Background(), gameViewKey(gameID)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("redis error getting game view",
				zap.Uint("game_id", gameID), zap.Error(err))
		}
		return nil
	}

	var game models.Game
	if err := json.Unmarshal([]byte(data), &game); err != nil {
		c.logger.Warn("failed to unmarshal cached game view",
			zap.Uint("game_id", gameID), zap.Error(err))
		return nil
	}
	return &game
}

// StoreGame caches the composed view of the given game. Failures are logged
// and swallowed, the cache is best-effort.
func (c *ViewCache) StoreGame(game *models.Game) {
	data, err := json.Marshal(game)
	if err != nil {
		c.logger.Warn("failed to marshal game view",
			zap.Uint("game_id", game.ID), zap.Error(err))
		return
	}

	if err := c.redis.Set(context.Background(), gameViewKey(game.ID), data, viewCacheTTL).Err(); err != nil {
		c.logger.Warn("failed to store game view in redis",
			zap.Uint("game_id", game.ID), zap.Error(err))
	}
}

// Invalidate drops the cached view of the given game.
func (c *ViewCache) Invalidate(gameID uint) {
	if err := c.redis.Del(context.Background(), gameViewKey(gameID)).Err(); err != nil {
		c.logger.Warn("failed to invalidate game view",
			zap.Uint("game_id", gameID), zap.Error(err))
	}
}
