package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return New(rdb), mr
}

func TestPendingBookingRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	token := store.NewToken()
	require.NotEmpty(t, token)

	require.NoError(t, store.SetPendingBooking(ctx, token, 42))

	id, ok, err := store.PendingBooking(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)
}

func TestPendingBookingMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, ok, err := store.PendingBooking(context.Background(), "no-such-token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClearPendingBooking(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	token := store.NewToken()
	require.NoError(t, store.SetPendingBooking(ctx, token, 7))
	require.NoError(t, store.ClearPendingBooking(ctx, token))

	_, ok, err := store.PendingBooking(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPendingBookingExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	store := NewWithTTL(rdb, time.Minute)
	ctx := context.Background()

	token := store.NewToken()
	require.NoError(t, store.SetPendingBooking(ctx, token, 7))

	mr.FastForward(2 * time.Minute)

	_, ok, err := store.PendingBooking(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTokenRevocation(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	revoked, err := store.IsTokenRevoked(ctx, "some-jwt")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.RevokeToken(ctx, "some-jwt", time.Hour))

	revoked, err = store.IsTokenRevoked(ctx, "some-jwt")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestDistinctTokens(t *testing.T) {
	store, _ := newTestStore(t)

	assert.NotEqual(t, store.NewToken(), store.NewToken())
}
