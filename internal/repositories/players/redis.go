package players

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"

	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-sim/internal/redis"
)

const (
	playerKeyPrefix = "player:"
	playerIndexKey  = "players"
)

// RedisConfig contains configuration for the Redis player repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a Redis-backed player repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func playerKey(playerID int) string {
	return playerKeyPrefix + strconv.Itoa(playerID)
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	key := playerKey(input.PlayerID)
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.NotFoundf("player %d not found", input.PlayerID).WithMeta("key", key)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeIO, "failed to get player %d", input.PlayerID)
	}

	var player entities.Player
	if err := json.Unmarshal([]byte(result), &player); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeMalformed, "failed to unmarshal player %d", input.PlayerID)
	}
	player.Normalize()

	return &GetOutput{Player: &player}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Player)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player %d", input.Player.PlayerID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, playerKey(input.Player.PlayerID), data, 0)
	pipe.SAdd(ctx, playerIndexKey, input.Player.PlayerID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeIO, "failed to save player %d", input.Player.PlayerID)
	}

	return &SaveOutput{Player: input.Player}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	members, err := r.client.SMembers(ctx, playerIndexKey).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeIO, "failed to list players")
	}

	ids := make([]int, 0, len(members))
	for _, m := range members {
		id, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return &ListOutput{PlayerIDs: ids}, nil
}
