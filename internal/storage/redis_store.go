package storage

import (
	"context"
	"fmt"
	"time"

	"medibook-portals/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisStore keeps the credential pair in Redis, for portals running in
// containers or shared between automation hosts where a local file is not
// durable.
type RedisStore struct {
	client *redis.Client
}

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logrus.Info("Successfully connected to Redis")

	return client, nil
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Access() string {
	return s.get(KeyToken)
}

func (s *RedisStore) Refresh() string {
	return s.get(KeyRefresh)
}

func (s *RedisStore) Save(access, refresh string) error {
	ctx, cancel := s.ctx()
	defer cancel()
	return s.client.MSet(ctx, KeyToken, access, KeyRefresh, refresh).Err()
}

func (s *RedisStore) Clear() error {
	ctx, cancel := s.ctx()
	defer cancel()
	return s.client.Del(ctx, KeyToken, KeyRefresh).Err()
}

func (s *RedisStore) get(key string) string {
	ctx, cancel := s.ctx()
	defer cancel()
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		return ""
	}
	return val
}

func (s *RedisStore) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}
