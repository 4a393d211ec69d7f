package domain

import "time"

type Account struct {
	ID               string
	Email            string
	Username         string
	PasswordHash     string
	FailedLoginCount int
	Locked           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RefreshSession is the persistent record of one issued refresh token.
// ID doubles as the token's jti claim. Rows are revoked, never deleted,
// so reuse of a rotated-out token stays detectable.
type RefreshSession struct {
	ID        string
	UserID    string
	Revoked   bool
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LoginFailure is an append-only record of one failed password check.
type LoginFailure struct {
	ID        string
	UserID    string
	IPAddress string
	CreatedAt time.Time
}

// TokenEvent is an append-only record of a rotation anomaly. UserID may be
// empty when the claimed subject could not be resolved.
type TokenEvent struct {
	ID          string
	UserID      string
	IPAddress   string
	EventType   string
	Description string
	CreatedAt   time.Time
}

// UnlockChallenge is the short-lived one-time code proving email ownership.
type UnlockChallenge struct {
	Email    string
	Code     string
	IssuedAt time.Time
	Resent   bool
}
