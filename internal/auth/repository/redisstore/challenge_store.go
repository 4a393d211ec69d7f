package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/AnthoniusHendriyanto/account-service/internal/auth/domain"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "unlock:"

// ChallengeStore keeps unlock challenges in Redis. TTL handles the validity
// window, so expired codes are never observable.
type ChallengeStore struct {
	client *redis.Client
}

func NewChallengeStore(client *redis.Client) *ChallengeStore {
	return &ChallengeStore{client: client}
}

type challengeRecord struct {
	Code     string    `json:"code"`
	IssuedAt time.Time `json:"issued_at"`
	Resent   bool      `json:"resent"`
}

func (s *ChallengeStore) Put(ctx context.Context, challenge *domain.UnlockChallenge, ttl time.Duration) error {
	payload, err := json.Marshal(challengeRecord{
		Code:     challenge.Code,
		IssuedAt: challenge.IssuedAt,
		Resent:   challenge.Resent,
	})
	if err != nil {
		return fmt.Errorf("marshal challenge: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+challenge.Email, payload, ttl).Err(); err != nil {
		return fmt.Errorf("store challenge: %w", err)
	}

	return nil
}

// Get returns nil when no live challenge exists for the email.
func (s *ChallengeStore) Get(ctx context.Context, email string) (*domain.UnlockChallenge, error) {
	payload, err := s.client.Get(ctx, keyPrefix+email).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load challenge: %w", err)
	}

	var record challengeRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("unmarshal challenge: %w", err)
	}

	return &domain.UnlockChallenge{
		Email:    email,
		Code:     record.Code,
		IssuedAt: record.IssuedAt,
		Resent:   record.Resent,
	}, nil
}

// MarkResent flips the single-resend flag without touching the TTL.
func (s *ChallengeStore) MarkResent(ctx context.Context, email string) error {
	key := keyPrefix + email

	payload, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		return fmt.Errorf("load challenge: %w", err)
	}

	var record challengeRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return fmt.Errorf("unmarshal challenge: %w", err)
	}
	record.Resent = true

	updated, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal challenge: %w", err)
	}

	// KeepTTL preserves the original validity window.
	if err := s.client.Set(ctx, key, updated, redis.KeepTTL).Err(); err != nil {
		return fmt.Errorf("update challenge: %w", err)
	}

	return nil
}

func (s *ChallengeStore) Delete(ctx context.Context, email string) error {
	return s.client.Del(ctx, keyPrefix+email).Err()
}
