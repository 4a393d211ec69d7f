package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AnthoniusHendriyanto/account-service/internal/auth/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the slice of pgxpool.Pool the repository needs. pgxmock
// satisfies it in tests.
type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
		SELECT id, email, username, password_hash, failed_login_count, locked, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1;
	`
	return r.scanAccount(r.db.QueryRow(ctx, query, email))
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := `
		SELECT id, email, username, password_hash, failed_login_count, locked, created_at, updated_at
		FROM users
		WHERE username = $1
		LIMIT 1;
	`
	return r.scanAccount(r.db.QueryRow(ctx, query, username))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `
		SELECT id, email, username, password_hash, failed_login_count, locked, created_at, updated_at
		FROM users
		WHERE id = $1
		LIMIT 1;
	`
	return r.scanAccount(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(&account.ID, &account.Email, &account.Username, &account.PasswordHash,
		&account.FailedLoginCount, &account.Locked, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &account, nil
}

func (r *PostgresRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, email, username, password_hash, failed_login_count, locked, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, account.ID, account.Email, account.Username, account.PasswordHash,
		account.FailedLoginCount, account.Locked, account.CreatedAt, account.UpdatedAt)

	return err
}

// RecordLoginFailure bumps the consecutive-failure counter and locks the
// account once the counter reaches threshold, all in one statement so two
// racing failed logins cannot under-count or double-transition.
func (r *PostgresRepository) RecordLoginFailure(ctx context.Context, userID string, threshold int) (int, bool, error) {
	query := `
		UPDATE users
		SET failed_login_count = failed_login_count + 1,
		    locked = locked OR failed_login_count + 1 >= $2,
		    updated_at = now()
		WHERE id = $1
		RETURNING failed_login_count, locked;
	`
	var count int
	var locked bool
	if err := r.db.QueryRow(ctx, query, userID, threshold).Scan(&count, &locked); err != nil {
		return 0, false, fmt.Errorf("failed to record login failure: %w", err)
	}

	return count, locked, nil
}

func (r *PostgresRepository) ResetLoginFailures(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET failed_login_count = 0, updated_at = now() WHERE id = $1
	`, userID)

	return err
}

// Unlock clears the lock state, zeroes the counter and installs the freshly
// issued temporary password hash.
func (r *PostgresRepository) Unlock(ctx context.Context, userID string, newPasswordHash string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET locked = FALSE, failed_login_count = 0, password_hash = $2, updated_at = now()
		WHERE id = $1
	`, userID, newPasswordHash)

	return err
}

func (r *PostgresRepository) StoreRefreshSession(ctx context.Context, session *domain.RefreshSession) error {
	query := `INSERT INTO refresh_sessions (id, user_id, revoked, expires_at, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		session.ID, session.UserID, session.Revoked, session.ExpiresAt, session.CreatedAt, session.UpdatedAt)

	return err
}

func (r *PostgresRepository) GetRefreshSession(ctx context.Context, id string) (*domain.RefreshSession, error) {
	query := `
		SELECT id, user_id, revoked, expires_at, created_at, updated_at
		FROM refresh_sessions
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var session domain.RefreshSession
	err := row.Scan(&session.ID, &session.UserID, &session.Revoked,
		&session.ExpiresAt, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh session: %w", err)
	}

	return &session, nil
}

// RevokeRefreshSession performs the conditional single-use revocation. A
// false return with no error means another request already revoked the row.
func (r *PostgresRepository) RevokeRefreshSession(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE refresh_sessions SET revoked = TRUE, updated_at = now()
		WHERE id = $1 AND revoked = FALSE
	`, id)
	if err != nil {
		return false, fmt.Errorf("failed to revoke refresh session: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *PostgresRepository) RevokeAllRefreshSessions(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_sessions SET revoked = TRUE, updated_at = now()
		WHERE user_id = $1 AND revoked = FALSE
	`, userID)

	return err
}

// PurgeExpiredSessions deletes revoked rows whose expiry is older than the
// cutoff. They can no longer participate in reuse detection.
func (r *PostgresRepository) PurgeExpiredSessions(ctx context.Context, olderThan time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM refresh_sessions WHERE revoked = TRUE AND expires_at < $1
	`, olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired sessions: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *PostgresRepository) InsertLoginFailure(ctx context.Context, failure *domain.LoginFailure) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO login_failures (id, user_id, ip_address, created_at)
		VALUES ($1, $2, $3, $4)
	`, failure.ID, failure.UserID, failure.IPAddress, failure.CreatedAt)

	return err
}

func (r *PostgresRepository) InsertTokenEvent(ctx context.Context, event *domain.TokenEvent) error {
	var userID any
	if event.UserID != "" {
		userID = event.UserID
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO token_events (id, user_id, ip_address, event_type, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, event.ID, userID, event.IPAddress, event.EventType, event.Description, event.CreatedAt)

	return err
}
