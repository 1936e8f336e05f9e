package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Namespace prefixes every key this process writes into the shared
// key-value mount, e.g. "chat-workspace/last-chat:42".
const Namespace = "chat-workspace"

// Store is the auxiliary ephemeral key-value mount. Configured once at
// startup; consistency is the backend's concern, so concurrent use is safe.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

func key(topic string, userId uint) string {
	return fmt.Sprintf("%s/%s:%d", Namespace, topic, userId)
}

// Get returns the stored value for a user-scoped topic, empty when unset.
func (s *Store) Get(ctx context.Context, topic string, userId uint) (string, error) {
	val, err := s.client.Get(ctx, key(topic, userId)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *Store) Set(ctx context.Context, topic string, userId uint, value string) error {
	return s.client.Set(ctx, key(topic, userId), value, s.ttl).Err()
}

func (s *Store) Delete(ctx context.Context, topic string, userId uint) error {
	err := s.client.Del(ctx, key(topic, userId)).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}
