package redisinfra

import (
	"context"
	"errors"
	"time"

	"github.com/quoteshelf/api/internal/config"
	"github.com/redis/go-redis/v9"
)

const verifiedPrefix = "verified:"

// VerificationStore keeps pending verification codes and verified markers
// in Redis. Expiry is TTL-driven; both records are single-use and deleted
// on consumption. Codes are keyed by bare email, markers by a derived
// "verified:" key, so a pending code and a marker can coexist.
type VerificationStore struct {
	client      *redis.Client
	codeTTL     time.Duration
	verifiedTTL time.Duration
}

func NewVerificationStore(client *redis.Client, cfg *config.Config) *VerificationStore {
	return &VerificationStore{
		client:      client,
		codeTTL:     cfg.CodeTTL,
		verifiedTTL: cfg.VerifiedTTL,
	}
}

// SetCode stores a pending code, overwriting any prior one for the email.
// Concurrent senders race last-write-wins; the store does not serialize.
func (s *VerificationStore) SetCode(ctx context.Context, email, code string) error {
	return s.client.Set(ctx, email, code, s.codeTTL).Err()
}

// GetCode returns the pending code for the email. The second return is
// false when no code is stored (missing or expired).
func (s *VerificationStore) GetCode(ctx context.Context, email string) (string, bool, error) {
	code, err := s.client.Get(ctx, email).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return code, true, nil
}

// DeleteCode removes the pending code after a successful match.
func (s *VerificationStore) DeleteCode(ctx context.Context, email string) error {
	return s.client.Del(ctx, email).Err()
}

// MarkVerified records that the email passed verification.
func (s *VerificationStore) MarkVerified(ctx context.Context, email string) error {
	return s.client.Set(ctx, verifiedPrefix+email, "1", s.verifiedTTL).Err()
}

// IsVerified reports whether a verified marker exists for the email.
func (s *VerificationStore) IsVerified(ctx context.Context, email string) (bool, error) {
	n, err := s.client.Exists(ctx, verifiedPrefix+email).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ConsumeVerified deletes the marker. Called only after the user insert has
// committed, so a failed registration leaves the marker intact.
func (s *VerificationStore) ConsumeVerified(ctx context.Context, email string) error {
	return s.client.Del(ctx, verifiedPrefix+email).Err()
}
