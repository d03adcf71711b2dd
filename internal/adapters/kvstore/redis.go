package kvstore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions configures ConnectRedis.
type RedisOptions struct {
	Addr       string
	Password   string
	DB         int
	MaxRetries int
	RetryDelay time.Duration
}

// RedisStore keeps values as plain redis strings without expiry.
type RedisStore struct {
	client *redis.Client
	logger *log.Logger
}

// ConnectRedis dials redis and pings it, retrying MaxRetries times before
// giving up.
func ConnectRedis(ctx context.Context, opts RedisOptions, logger *log.Logger) (*RedisStore, error) {
	attempts := opts.MaxRetries
	if attempts < 1 {
		attempts = 1
	}
	client := redis.NewClient(&redis.Options{
		Network:  "tcp",
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	var err error
	for i := 0; i < attempts; i++ {
		if err = client.Ping(ctx).Err(); err == nil {
			logger.Printf("Connected to redis at %s", opts.Addr)
			return NewRedisStore(client, logger), nil
		}
		logger.Printf("Failed to connect to redis (attempt %d/%d): %v", i+1, attempts, err)
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			_ = client.Close()
			return nil, ctx.Err()
		case <-time.After(opts.RetryDelay):
		}
	}
	_ = client.Close()
	return nil, fmt.Errorf("connect to redis at %s: %w", opts.Addr, err)
}

func NewRedisStore(client *redis.Client, logger *log.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
