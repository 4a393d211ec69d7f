package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/AnthoniusHendriyanto/account-service/config"
	"github.com/AnthoniusHendriyanto/account-service/internal/auth/audit"
	"github.com/AnthoniusHendriyanto/account-service/internal/auth/domain"
	"github.com/AnthoniusHendriyanto/account-service/internal/auth/dto"
	"github.com/AnthoniusHendriyanto/account-service/internal/auth/service"
	autherror "github.com/AnthoniusHendriyanto/account-service/internal/errors"
	"github.com/AnthoniusHendriyanto/account-service/internal/metrics"
	"github.com/AnthoniusHendriyanto/account-service/internal/mocks"
	"github.com/AnthoniusHendriyanto/account-service/pkg/constant"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// captureSink collects audit events for assertions.
type captureSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *captureSink) Emit(_ context.Context, event audit.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *captureSink) all() []audit.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]audit.Event(nil), s.events...)
}

type userServiceFixture struct {
	repo    *mocks.MockAccountRepository
	tokens  *mocks.MockTokenGenerator
	sink    *captureSink
	auditor *audit.Dispatcher
	metrics *metrics.Metrics
	svc     *service.UserService
}

func newUserServiceFixture(t *testing.T, ctrl *gomock.Controller) *userServiceFixture {
	t.Helper()

	f := &userServiceFixture{
		repo:    mocks.NewMockAccountRepository(ctrl),
		tokens:  mocks.NewMockTokenGenerator(ctrl),
		sink:    &captureSink{},
		metrics: metrics.NewNop(),
	}
	f.auditor = audit.NewDispatcher(16, f.sink)
	t.Cleanup(f.auditor.Close)

	cfg := &config.Config{LoginMaxAttempts: 5}
	f.svc = service.NewUserService(f.repo, f.tokens, cfg, f.auditor, f.metrics, nil)

	return f
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func TestUserService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserServiceFixture(t, ctrl)

	input := dto.RegisterInput{
		Username: "tester",
		Email:    "test@example.com",
		Password: "password123",
	}

	f.repo.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)
	f.repo.EXPECT().GetByUsername(gomock.Any(), input.Username).Return(nil, nil)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.tokens.EXPECT().Generate(gomock.Any(), input.Email).
		Return("access", "refresh", "jti-1", time.Now().Add(time.Hour), nil)
	f.repo.EXPECT().StoreRefreshSession(gomock.Any(), gomock.Any()).Return(nil)

	account, tokens, err := f.svc.Register(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, input.Email, account.Email)
	assert.Equal(t, input.Username, account.Username)
	assert.NotEmpty(t, account.ID)
	assert.NotEmpty(t, account.PasswordHash)
	assert.False(t, account.Locked)
	require.NotNil(t, tokens)
	assert.Equal(t, "access", tokens.AccessToken)
	assert.Equal(t, "refresh", tokens.RefreshToken)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserServiceFixture(t, ctrl)

	input := dto.RegisterInput{Username: "tester", Email: "test@example.com", Password: "pw"}

	f.repo.EXPECT().GetByEmail(gomock.Any(), input.Email).
		Return(&domain.Account{ID: "existing"}, nil)

	_, _, err := f.svc.Register(context.Background(), input)
	assert.ErrorIs(t, err, autherror.ErrEmailAlreadyInUse)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserServiceFixture(t, ctrl)

	input := dto.RegisterInput{Username: "tester", Email: "test@example.com", Password: "pw"}

	f.repo.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)
	f.repo.EXPECT().GetByUsername(gomock.Any(), input.Username).
		Return(&domain.Account{ID: "existing"}, nil)

	_, _, err := f.svc.Register(context.Background(), input)
	assert.ErrorIs(t, err, autherror.ErrUsernameAlreadyInUse)
}

func TestUserService_Register_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserServiceFixture(t, ctrl)

	_, _, err := f.svc.Register(context.Background(), dto.RegisterInput{Email: "a@b.c"})
	assert.ErrorIs(t, err, autherror.ErrValidationFailed)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserServiceFixture(t, ctrl)

	f.repo.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)

	_, err := f.svc.Login(context.Background(), dto.LoginInput{
		Email: "ghost@example.com", Password: "whatever", IPAddress: "1.2.3.4",
	})

	assert.ErrorIs(t, err, autherror.ErrAuthenticationFailed)

	// Unknown emails are never recorded per-account; the dispatcher stays
	// silent to avoid an enumeration side-channel.
	f.auditor.Close()
	assert.Empty(t, f.sink.all())
	assert.Equal(t, float64(1),
		testutil.ToFloat64(f.metrics.LoginFailures.WithLabelValues("unknown_email")))
}

func TestUserService_Login_Locked_ShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{
		ID:           "user-1",
		Email:        "test@example.com",
		PasswordHash: hashPassword(t, "correct-password"),
		Locked:       true,
	}

	// No further repository expectations: a locked account must fail before
	// the password comparison and before any counter churn.
	f.repo.EXPECT().GetByEmail(gomock.Any(), account.Email).Return(account, nil)

	_, err := f.svc.Login(context.Background(), dto.LoginInput{
		Email: account.Email, Password: "correct-password", IPAddress: "1.2.3.4",
	})

	assert.ErrorIs(t, err, autherror.ErrAccountLocked)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{
		ID:           "user-1",
		Email:        "test@example.com",
		PasswordHash: hashPassword(t, "correct-password"),
	}

	f.repo.EXPECT().GetByEmail(gomock.Any(), account.Email).Return(account, nil)
	f.repo.EXPECT().RecordLoginFailure(gomock.Any(), account.ID, 5).Return(1, false, nil)

	_, err := f.svc.Login(context.Background(), dto.LoginInput{
		Email: account.Email, Password: "wrong", IPAddress: "1.2.3.4",
	})

	assert.ErrorIs(t, err, autherror.ErrAuthenticationFailed)

	f.auditor.Close()
	events := f.sink.all()
	require.Len(t, events, 1)
	assert.Equal(t, constant.EventLoginFailed, events[0].EventType)
	assert.Equal(t, account.ID, events[0].UserID)
	assert.Equal(t, "1.2.3.4", events[0].IP)
}

func TestUserService_Login_FifthFailureLocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{
		ID:           "user-1",
		Email:        "test@example.com",
		PasswordHash: hashPassword(t, "correct-password"),
	}

	f.repo.EXPECT().GetByEmail(gomock.Any(), account.Email).Return(account, nil)
	f.repo.EXPECT().RecordLoginFailure(gomock.Any(), account.ID, 5).Return(5, true, nil)

	_, err := f.svc.Login(context.Background(), dto.LoginInput{
		Email: account.Email, Password: "wrong", IPAddress: "1.2.3.4",
	})

	assert.ErrorIs(t, err, autherror.ErrAuthenticationFailed)
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.Lockouts))
}

func TestUserService_Login_Success_ResetsCounter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{
		ID:               "user-1",
		Email:            "test@example.com",
		PasswordHash:     hashPassword(t, "correct-password"),
		FailedLoginCount: 4,
	}

	f.repo.EXPECT().GetByEmail(gomock.Any(), account.Email).Return(account, nil)
	f.repo.EXPECT().ResetLoginFailures(gomock.Any(), account.ID).Return(nil)
	f.tokens.EXPECT().Generate(account.ID, account.Email).
		Return("access", "refresh", "jti-1", time.Now().Add(time.Hour), nil)
	f.repo.EXPECT().StoreRefreshSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, session *domain.RefreshSession) error {
			assert.Equal(t, "jti-1", session.ID)
			assert.Equal(t, account.ID, session.UserID)
			assert.False(t, session.Revoked)
			return nil
		})

	tokens, err := f.svc.Login(context.Background(), dto.LoginInput{
		Email: account.Email, Password: "correct-password", IPAddress: "1.2.3.4",
	})

	require.NoError(t, err)
	assert.Equal(t, "access", tokens.AccessToken)
	assert.Equal(t, "refresh", tokens.RefreshToken)
}

func refreshClaims(userID, jti string) *service.JWTCustomClaims {
	return &service.JWTCustomClaims{
		UserID:    userID,
		Email:     "test@example.com",
		TokenType: constant.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestUserService_Rotate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserServiceFixture(t, ctrl)

	session := &domain.RefreshSession{
		ID:        "jti-1",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	account := &domain.Account{ID: "user-1", Email: "test@example.com"}

	f.tokens.EXPECT().VerifyRefreshToken("old-refresh").Return(refreshClaims("user-1", "jti-1"), nil)
	f.repo.EXPECT().GetRefreshSession(gomock.Any(), "jti-1").Return(session, nil)
	f.repo.EXPECT().RevokeRefreshSession(gomock.Any(), "jti-1").Return(true, nil)
	f.repo.EXPECT().GetByID(gomock.Any(), "user-1").Return(account, nil)
	f.tokens.EXPECT().Generate("user-1", "test@example.com").
		Return("new-access", "new-refresh", "jti-2", time.Now().Add(time.Hour), nil)
	f.repo.EXPECT().StoreRefreshSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *domain.RefreshSession) error {
			assert.Equal(t, "jti-2", s.ID)
			return nil
		})

	tokens, err := f.svc.Rotate(context.Background(), dto.RefreshInput{
		RefreshToken: "old-refresh", IPAddress: "1.2.3.4",
	})

	require.NoError(t, err)
	assert.Equal(t, "new-access", tokens.AccessToken)
	assert.Equal(t, "new-refresh", tokens.RefreshToken)
}

func TestUserService_Rotate_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserServiceFixture(t, ctrl)

	f.tokens.EXPECT().VerifyRefreshToken("garbage").Return(nil, autherror.ErrInvalidToken)

	_, err := f.svc.Rotate(context.Background(), dto.RefreshInput{RefreshToken: "garbage"})
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}

func TestUserService_Rotate_UnknownSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserServiceFixture(t, ctrl)

	f.tokens.EXPECT().VerifyRefreshToken("forged").Return(refreshClaims("user-1", "jti-x"), nil)
	f.repo.EXPECT().GetRefreshSession(gomock.Any(), "jti-x").Return(nil, nil)

	_, err := f.svc.Rotate(context.Background(), dto.RefreshInput{
		RefreshToken: "forged", IPAddress: "9.9.9.9",
	})

	assert.ErrorIs(t, err, autherror.ErrInvalidToken)

	f.auditor.Close()
	events := f.sink.all()
	require.Len(t, events, 1)
	assert.Equal(t, constant.TokenEventRotationNoToken, events[0].EventType)
	assert.Equal(t, "user-1", events[0].UserID)
	assert.Equal(t, "9.9.9.9", events[0].IP)
}

func TestUserService_Rotate_ReuseRevokesEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserServiceFixture(t, ctrl)

	revokedSession := &domain.RefreshSession{
		ID:        "jti-1",
		UserID:    "user-1",
		Revoked:   true,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	f.tokens.EXPECT().VerifyRefreshToken("replayed").Return(refreshClaims("user-1", "jti-1"), nil)
	f.repo.EXPECT().GetRefreshSession(gomock.Any(), "jti-1").Return(revokedSession, nil)
	f.repo.EXPECT().RevokeAllRefreshSessions(gomock.Any(), "user-1").Return(nil)

	_, err := f.svc.Rotate(context.Background(), dto.RefreshInput{
		RefreshToken: "replayed", IPAddress: "9.9.9.9",
	})

	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.ReuseDetections))

	f.auditor.Close()
	events := f.sink.all()
	require.Len(t, events, 1)
	assert.Equal(t, constant.TokenEventRotationRevokedToken, events[0].EventType)
}

func TestUserService_Rotate_LostRaceTreatedAsReuse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserServiceFixture(t, ctrl)

	session := &domain.RefreshSession{
		ID:        "jti-1",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	f.tokens.EXPECT().VerifyRefreshToken("racing").Return(refreshClaims("user-1", "jti-1"), nil)
	f.repo.EXPECT().GetRefreshSession(gomock.Any(), "jti-1").Return(session, nil)
	// Conditional revoke affected zero rows: a concurrent rotation spent it.
	f.repo.EXPECT().RevokeRefreshSession(gomock.Any(), "jti-1").Return(false, nil)
	f.repo.EXPECT().RevokeAllRefreshSessions(gomock.Any(), "user-1").Return(nil)

	_, err := f.svc.Rotate(context.Background(), dto.RefreshInput{RefreshToken: "racing"})
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}

func TestUserService_Rotate_ExpiredSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserServiceFixture(t, ctrl)

	session := &domain.RefreshSession{
		ID:        "jti-1",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	f.tokens.EXPECT().VerifyRefreshToken("stale").Return(refreshClaims("user-1", "jti-1"), nil)
	f.repo.EXPECT().GetRefreshSession(gomock.Any(), "jti-1").Return(session, nil)

	_, err := f.svc.Rotate(context.Background(), dto.RefreshInput{RefreshToken: "stale"})
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}

func TestUserService_Rotate_RevokeAllFailureStillRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserServiceFixture(t, ctrl)

	revokedSession := &domain.RefreshSession{
		ID:        "jti-1",
		UserID:    "user-1",
		Revoked:   true,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	f.tokens.EXPECT().VerifyRefreshToken("replayed").Return(refreshClaims("user-1", "jti-1"), nil)
	f.repo.EXPECT().GetRefreshSession(gomock.Any(), "jti-1").Return(revokedSession, nil)
	f.repo.EXPECT().RevokeAllRefreshSessions(gomock.Any(), "user-1").
		Return(errors.New("db down"))

	_, err := f.svc.Rotate(context.Background(), dto.RefreshInput{RefreshToken: "replayed"})
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}

func TestUserService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserServiceFixture(t, ctrl)

	t.Run("success", func(t *testing.T) {
		f.tokens.EXPECT().VerifyRefreshToken("valid").Return(refreshClaims("user-1", "jti-1"), nil)
		f.repo.EXPECT().RevokeRefreshSession(gomock.Any(), "jti-1").Return(true, nil)

		err := f.svc.Logout(context.Background(), dto.LogoutInput{RefreshToken: "valid"})
		assert.NoError(t, err)
	})

	t.Run("already revoked", func(t *testing.T) {
		f.tokens.EXPECT().VerifyRefreshToken("spent").Return(refreshClaims("user-1", "jti-2"), nil)
		f.repo.EXPECT().RevokeRefreshSession(gomock.Any(), "jti-2").Return(false, nil)

		err := f.svc.Logout(context.Background(), dto.LogoutInput{RefreshToken: "spent"})
		assert.ErrorIs(t, err, autherror.ErrInvalidToken)
	})
}

func TestUserService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserServiceFixture(t, ctrl)

	account := &domain.Account{ID: "user-1", Email: "test@example.com", Username: "tester"}
	f.repo.EXPECT().GetByID(gomock.Any(), "user-1").Return(account, nil)

	profile, err := f.svc.GetProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "tester", profile.Username)
}
