package habit

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/statmaxer/statmaxer/internal/entities"
	"github.com/statmaxer/statmaxer/internal/errors"
	"github.com/statmaxer/statmaxer/internal/pkg/clock"
	redisclient "github.com/statmaxer/statmaxer/internal/redis"
)

const (
	habitKeyPrefix = "habit:"
	habitIndexKey  = "habits:index"

	errHabitNil     = "habit cannot be nil"
	errHabitIDEmpty = "habit ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis habit repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
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

// NewRedis creates a new Redis-backed habit repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func habitKey(id string) string {
	return habitKeyPrefix + id
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Habit == nil {
		return nil, errors.InvalidArgument(errHabitNil)
	}
	if input.Habit.ID == "" {
		return nil, errors.InvalidArgument(errHabitIDEmpty)
	}

	key := habitKey(input.Habit.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("habit with ID %s already exists", input.Habit.ID)
	}

	now := r.clock.Now().Unix()
	input.Habit.CreatedAt = now
	input.Habit.UpdatedAt = now

	data, err := json.Marshal(input.Habit)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal habit")
	}

	// Snapshot write and index append commit together
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.RPush(ctx, habitIndexKey, input.Habit.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create habit %s", input.Habit.ID)
	}

	return &CreateOutput{Habit: input.Habit}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errHabitIDEmpty)
	}

	data, err := r.client.Get(ctx, habitKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("habit %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get habit %s", input.ID)
	}

	var h entities.Habit
	if err := json.Unmarshal([]byte(data), &h); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal habit %s", input.ID)
	}

	return &GetOutput{Habit: &h}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Habit == nil {
		return nil, errors.InvalidArgument(errHabitNil)
	}
	if input.Habit.ID == "" {
		return nil, errors.InvalidArgument(errHabitIDEmpty)
	}

	key := habitKey(input.Habit.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("habit %s not found", input.Habit.ID)
	}

	input.Habit.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(input.Habit)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal habit")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update habit %s", input.Habit.ID)
	}

	return &UpdateOutput{Habit: input.Habit}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errHabitIDEmpty)
	}

	key := habitKey(input.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("habit %s not found", input.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.LRem(ctx, habitIndexKey, 0, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete habit %s", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.LRange(ctx, habitIndexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read habit index")
	}
	if len(ids) == 0 {
		return &ListOutput{Habits: []*entities.Habit{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = habitKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load habits")
	}

	habits := make([]*entities.Habit, 0, len(values))
	for i, v := range values {
		if v == nil {
			// Index entry without a snapshot; skip rather than fail the read
			slog.Warn("habit index entry missing snapshot", "habit_id", ids[i])
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		var h entities.Habit
		if err := json.Unmarshal([]byte(s), &h); err != nil {
			slog.Warn("skipping undecodable habit snapshot", "habit_id", ids[i], "error", err)
			continue
		}
		habits = append(habits, &h)
	}

	return &ListOutput{Habits: habits}, nil
}

func (r *redisRepository) DeleteAll(ctx context.Context, _ DeleteAllInput) (*DeleteAllOutput, error) {
	ids, err := r.client.LRange(ctx, habitIndexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read habit index")
	}

	pipe := r.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, habitKey(id))
	}
	pipe.Del(ctx, habitIndexKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to clear habits")
	}

	return &DeleteAllOutput{Deleted: len(ids)}, nil
}
