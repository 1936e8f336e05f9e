package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(client, time.Hour)
}

func TestClearIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Clearing a session that was never created reports false, no error.
	cleared, err := store.Clear(ctx, "nope")
	assert.NoError(t, err)
	assert.False(t, cleared)

	assert.NoError(t, store.Put(ctx, "sid-1", 42))

	cleared, err = store.Clear(ctx, "sid-1")
	assert.NoError(t, err)
	assert.True(t, cleared)

	// Second clear of the same session is a clean false.
	cleared, err = store.Clear(ctx, "sid-1")
	assert.NoError(t, err)
	assert.False(t, cleared)

	sess, err := store.Get(ctx, "sid-1")
	assert.NoError(t, err)
	assert.Nil(t, sess)
}

func TestTouchSlidesLoggedInAtAndKeepsIdentity(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Put(ctx, "sid-2", 7))

	before, err := store.Get(ctx, "sid-2")
	assert.NoError(t, err)
	assert.NotNil(t, before)
	assert.Equal(t, uint(7), before.UserId)

	time.Sleep(5 * time.Millisecond)
	assert.NoError(t, store.Touch(ctx, "sid-2"))

	after, err := store.Get(ctx, "sid-2")
	assert.NoError(t, err)
	assert.NotNil(t, after)
	assert.Equal(t, uint(7), after.UserId)
	assert.True(t, after.LoggedInAt.After(before.LoggedInAt))
}

func TestTouchMissingSessionIsNoop(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Touch(context.Background(), "ghost"))
}
