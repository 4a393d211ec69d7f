package domain

import (
	"context"
	"time"
)

type AccountRepository interface {
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	Create(ctx context.Context, account *Account) error

	// RecordLoginFailure atomically increments the account's consecutive
	// failure counter and flips the locked bit when the counter reaches
	// threshold. It returns the post-increment counter and lock state.
	RecordLoginFailure(ctx context.Context, userID string, threshold int) (int, bool, error)
	ResetLoginFailures(ctx context.Context, userID string) error
	Unlock(ctx context.Context, userID string, newPasswordHash string) error

	StoreRefreshSession(ctx context.Context, session *RefreshSession) error
	GetRefreshSession(ctx context.Context, id string) (*RefreshSession, error)
	// RevokeRefreshSession revokes the session only if it is still live and
	// reports whether this call performed the revocation.
	RevokeRefreshSession(ctx context.Context, id string) (bool, error)
	RevokeAllRefreshSessions(ctx context.Context, userID string) error
	PurgeExpiredSessions(ctx context.Context, olderThan time.Time) (int64, error)

	InsertLoginFailure(ctx context.Context, failure *LoginFailure) error
	InsertTokenEvent(ctx context.Context, event *TokenEvent) error
}

// ChallengeStore keeps unlock challenges with a TTL matching the code's
// validity window.
type ChallengeStore interface {
	Put(ctx context.Context, challenge *UnlockChallenge, ttl time.Duration) error
	Get(ctx context.Context, email string) (*UnlockChallenge, error)
	MarkResent(ctx context.Context, email string) error
	Delete(ctx context.Context, email string) error
}

type Mailer interface {
	SendUnlockCode(ctx context.Context, to, code string) error
	SendTemporaryPassword(ctx context.Context, to, password string) error
}
