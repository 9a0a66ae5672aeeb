package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store keeps short-lived password reset codes in Redis keyed by the
// requesting account's kind and email.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore creates a code store with the given time-to-live per code.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// GenerateCode returns a random numeric code of n digits.
func GenerateCode(n int) (string, error) {
	digits := make([]byte, n)
	for i := range digits {
		v, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("otp: failed generating code: %w", err)
		}
		digits[i] = byte('0' + v.Int64())
	}
	return string(digits), nil
}

// Save stores a code for the account, replacing any outstanding one.
func (s *Store) Save(ctx context.Context, kind, email, code string) error {
	if err := s.rdb.Set(ctx, key(kind, email), code, s.ttl).Err(); err != nil {
		return fmt.Errorf("otp: failed saving code: %w", err)
	}
	return nil
}

// VerifyAndConsume checks a submitted code and deletes it on match, so a
// code redeems at most once.
func (s *Store) VerifyAndConsume(ctx context.Context, kind, email, code string) (bool, error) {
	stored, err := s.rdb.GetDel(ctx, key(kind, email)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("otp: failed reading code: %w", err)
	}
	return stored == code, nil
}

func key(kind, email string) string {
	return "reset:" + kind + ":" + email
}
