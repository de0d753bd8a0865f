package layer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/genart-dev/plugin-shapes/pkg/property"
)

// RedisStore keeps the layer stack in Redis: layer records live in a hash
// keyed by id, stack order in a list. Suitable for multi-instance
// deployments where several plugin processes share one document.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// RedisConfig configures the Redis connection.
type RedisConfig struct {
	Addr     string // host:port
	Password string // optional
	DB       int    // database number
	Prefix   string // key prefix, defaults to "shapes"
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	if cfg.Prefix == "" {
		cfg.Prefix = "shapes"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisStore{client: client, prefix: cfg.Prefix}, nil
}

func (s *RedisStore) hashKey() string  { return s.prefix + ":layers" }
func (s *RedisStore) orderKey() string { return s.prefix + ":stack" }

// Get retrieves a layer by id.
func (s *RedisStore) Get(ctx context.Context, id string) (*Layer, error) {
	data, err := s.client.HGet(ctx, s.hashKey(), id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var l Layer
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// Add appends a layer to the top of the stack.
func (s *RedisStore) Add(ctx context.Context, l *Layer) error {
	data, err := json.Marshal(l)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, s.hashKey(), l.ID, data)
	pipe.RPush(ctx, s.orderKey(), l.ID)
	_, err = pipe.Exec(ctx)
	return err
}

// UpdateProperties merges patch into the layer's property bag.
func (s *RedisStore) UpdateProperties(ctx context.Context, id string, patch property.Bag) error {
	l, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if l.Properties == nil {
		l.Properties = property.Bag{}
	}
	l.Properties.Merge(patch)
	l.UpdatedAt = time.Now()

	data, err := json.Marshal(l)
	if err != nil {
		return err
	}
	return s.client.HSet(ctx, s.hashKey(), id, data).Err()
}

// List returns the layers bottom-first, following the order list. Ids
// present in the order list but missing from the hash are skipped.
func (s *RedisStore) List(ctx context.Context) ([]*Layer, error) {
	ids, err := s.client.LRange(ctx, s.orderKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	layers := make([]*Layer, 0, len(ids))
	for _, id := range ids {
		l, err := s.Get(ctx, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		layers = append(layers, l)
	}
	return layers, nil
}

// Remove deletes a layer from the stack.
func (s *RedisStore) Remove(ctx context.Context, id string) error {
	n, err := s.client.HDel(ctx, s.hashKey(), id).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return s.client.LRem(ctx, s.orderKey(), 1, id).Err()
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
