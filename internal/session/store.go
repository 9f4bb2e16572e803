package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Store keeps per-caller state in Redis: the pending-booking reference held
// between booking creation and payment, and revoked admin tokens. The service
// itself stays stateless across requests.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client) *Store {
	return &Store{
		rdb: rdb,
		ttl: 30 * time.Minute,
	}
}

func NewWithTTL(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// NewToken issues an opaque session token for a caller.
func (s *Store) NewToken() string {
	return uuid.NewString()
}

// --------------------------------------------------
// Pending booking reference
// --------------------------------------------------

func pendingKey(token string) string {
	return fmt.Sprintf("session:pending:%s", token)
}

func (s *Store) SetPendingBooking(ctx context.Context, token string, bookingID uint) error {
	return s.rdb.Set(ctx, pendingKey(token), strconv.FormatUint(uint64(bookingID), 10), s.ttl).Err()
}

// PendingBooking resolves the booking id held by a session token.
// The second return value reports whether a reference exists.
func (s *Store) PendingBooking(ctx context.Context, token string) (uint, bool, error) {
	val, err := s.rdb.Get(ctx, pendingKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return uint(id), true, nil
}

func (s *Store) ClearPendingBooking(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, pendingKey(token)).Err()
}

// --------------------------------------------------
// Revoked admin tokens (logout)
// --------------------------------------------------

func revokedKey(token string) string {
	return fmt.Sprintf("session:revoked:%s", token)
}

// RevokeToken blacklists an admin token until it would have expired anyway.
func (s *Store) RevokeToken(ctx context.Context, token string, until time.Duration) error {
	if until <= 0 {
		until = time.Minute
	}
	return s.rdb.Set(ctx, revokedKey(token), "1", until).Err()
}

func (s *Store) IsTokenRevoked(ctx context.Context, token string) (bool, error) {
	_, err := s.rdb.Get(ctx, revokedKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
