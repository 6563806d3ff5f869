package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pokecalc-service/internal/domain/pokemon"
)

const defaultKeyPrefix = "pokecalc"

type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// RedisConfig describes the shared cache connection.
type RedisConfig struct {
	Address  string
	Password string
	Prefix   string
	TTL      time.Duration
}

// RedisStore keeps JSON-encoded records in Redis so several instances share one cache.
type RedisStore struct {
	client redisClient
	prefix string
	ttl    time.Duration
}

// NewRedisStore connects and pings the server.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis store: address is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis store: connect %s: %w", cfg.Address, err)
	}
	return newRedisStore(client, cfg), nil
}

func newRedisStore(client redisClient, cfg RedisConfig) *RedisStore {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &RedisStore{client: client, prefix: prefix, ttl: cfg.TTL}
}

func (s *RedisStore) GetSpecies(ctx context.Context, key string) (pokemon.Species, bool, error) {
	var sp pokemon.Species
	ok, err := s.get(ctx, s.key("species", key), &sp)
	return sp, ok, err
}

func (s *RedisStore) SetSpecies(ctx context.Context, key string, species pokemon.Species) error {
	return s.set(ctx, s.key("species", key), species)
}

func (s *RedisStore) GetMove(ctx context.Context, key string) (pokemon.Move, bool, error) {
	var mv pokemon.Move
	ok, err := s.get(ctx, s.key("move", key), &mv)
	return mv, ok, err
}

func (s *RedisStore) SetMove(ctx context.Context, key string, move pokemon.Move) error {
	return s.set(ctx, s.key("move", key), move)
}

// Close releases the connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) key(kind, name string) string {
	return fmt.Sprintf("%s:%s:%s", s.prefix, kind, name)
}

func (s *RedisStore) get(ctx context.Context, key string, out any) (bool, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("redis decode %s: %w", key, err)
	}
	return true, nil
}

func (s *RedisStore) set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis encode %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
