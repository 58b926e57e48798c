package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/portfolio-site/internal/apperror"
	"github.com/rocketscienceinc/portfolio-site/internal/entity"
)

const gameKeyPrefix = "game:"

// GameRepository keeps one game per session. Entries expire after the session ttl.
type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game entity.Game) error
	GetByID(ctx context.Context, id string) (entity.Game, error)
}

type gameRedis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &gameRedis{
		client: client,
		ttl:    ttl,
	}
}

func (that *gameRedis) CreateOrUpdate(ctx context.Context, game entity.Game) error {
	if game.ID == "" {
		return apperror.ErrSessionRequired
	}

	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	err = that.client.Set(ctx, gameKeyPrefix+game.ID, gameJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *gameRedis) GetByID(ctx context.Context, id string) (entity.Game, error) {
	response, err := that.client.Get(ctx, gameKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return entity.Game{}, apperror.ErrSessionNotFound
	}

	if err != nil {
		return entity.Game{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return entity.Game{}, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return existingGame, nil
}
