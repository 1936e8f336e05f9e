package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Session is the server-side session record. LoggedInAt slides forward on
// every authenticated fetch, so the session renews instead of expiring at a
// fixed instant.
type Session struct {
	UserId     uint      `json:"user_id"`
	LoggedInAt time.Time `json:"loggedInAt"`
}

// Store keeps sessions in Redis with TTL.
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

func (s *Store) Put(ctx context.Context, sessionId string, userId uint) error {
	sess := Session{
		UserId:     userId,
		LoggedInAt: time.Now(),
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+sessionId, payload, s.ttl).Err()
}

func (s *Store) Get(ctx context.Context, sessionId string) (*Session, error) {
	val, err := s.client.Get(ctx, keyPrefix+sessionId).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Touch replaces loggedInAt while preserving the carried identity. A missing
// session is not an error; there is simply nothing to refresh.
func (s *Store) Touch(ctx context.Context, sessionId string) error {
	sess, err := s.Get(ctx, sessionId)
	if err != nil {
		return err
	}
	if sess == nil {
		return nil
	}
	sess.LoggedInAt = time.Now()
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+sessionId, payload, s.ttl).Err()
}

// Clear removes the session and reports whether anything was there to
// remove. Clearing an already-empty session is not an error.
func (s *Store) Clear(ctx context.Context, sessionId string) (bool, error) {
	removed, err := s.client.Del(ctx, keyPrefix+sessionId).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, err
	}
	return removed > 0, nil
}
