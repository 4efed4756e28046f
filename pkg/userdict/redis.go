package userdict

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists user words in a Redis set.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore wraps a Redis client. An empty key selects "sanakko:userdict".
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = "sanakko:userdict"
	}
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Add(word string) error {
	return s.client.SAdd(context.Background(), s.key, word).Err()
}

func (s *RedisStore) Remove(word string) error {
	return s.client.SRem(context.Background(), s.key, word).Err()
}

func (s *RedisStore) All() ([]string, error) {
	return s.client.SMembers(context.Background(), s.key).Result()
}
