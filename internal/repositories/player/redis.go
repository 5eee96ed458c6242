package player

import (
	"context"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/statmaxer/statmaxer/internal/entities"
	"github.com/statmaxer/statmaxer/internal/errors"
	redisclient "github.com/statmaxer/statmaxer/internal/redis"
)

const (
	nameKey    = "player:name"
	penaltyKey = "player:snooze_penalty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis player repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) GetName(ctx context.Context, _ GetNameInput) (*GetNameOutput, error) {
	name, err := r.client.Get(ctx, nameKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetNameOutput{Name: entities.DefaultPlayerName}, nil
		}
		return nil, errors.Wrapf(err, "failed to read player name")
	}
	if name == "" {
		return &GetNameOutput{Name: entities.DefaultPlayerName}, nil
	}
	return &GetNameOutput{Name: name}, nil
}

func (r *redisRepository) SetName(ctx context.Context, input SetNameInput) (*SetNameOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.InvalidArgument("player name cannot be empty")
	}

	if err := r.client.Set(ctx, nameKey, name, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store player name")
	}
	return &SetNameOutput{}, nil
}

func (r *redisRepository) GetPenalty(ctx context.Context, _ GetPenaltyInput) (*GetPenaltyOutput, error) {
	penalty, err := r.client.Get(ctx, penaltyKey).Int()
	if err != nil {
		if err == redis.Nil {
			return &GetPenaltyOutput{Penalty: 0}, nil
		}
		return nil, errors.Wrapf(err, "failed to read snooze penalty")
	}
	if penalty < 0 {
		penalty = 0
	}
	return &GetPenaltyOutput{Penalty: penalty}, nil
}

func (r *redisRepository) AddPenalty(ctx context.Context, input AddPenaltyInput) (*AddPenaltyOutput, error) {
	if input.Amount <= 0 {
		return nil, errors.InvalidArgumentf("penalty amount must be positive, got %d", input.Amount)
	}

	total, err := r.client.IncrBy(ctx, penaltyKey, int64(input.Amount)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to increment snooze penalty")
	}
	return &AddPenaltyOutput{Penalty: int(total)}, nil
}

func (r *redisRepository) Reset(ctx context.Context, _ ResetInput) (*ResetOutput, error) {
	if err := r.client.Del(ctx, nameKey, penaltyKey).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to reset player state")
	}
	return &ResetOutput{}, nil
}
