package service

//go:generate mockgen -destination=../../mocks/mock_account_repository.go -package=mocks github.com/AnthoniusHendriyanto/account-service/internal/auth/domain AccountRepository,ChallengeStore,Mailer

import (
	"context"
	"time"

	"github.com/AnthoniusHendriyanto/account-service/config"
	"github.com/AnthoniusHendriyanto/account-service/internal/auth/audit"
	"github.com/AnthoniusHendriyanto/account-service/internal/auth/domain"
	"github.com/AnthoniusHendriyanto/account-service/internal/auth/dto"
	autherror "github.com/AnthoniusHendriyanto/account-service/internal/errors"
	"github.com/AnthoniusHendriyanto/account-service/internal/metrics"
	"github.com/AnthoniusHendriyanto/account-service/pkg/constant"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo         domain.AccountRepository
	tokenService TokenGenerator
	cfg          *config.Config
	auditor      *audit.Dispatcher
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

func NewUserService(repo domain.AccountRepository, tokenService TokenGenerator, cfg *config.Config,
	auditor *audit.Dispatcher, m *metrics.Metrics, logger *zap.Logger) *UserService {
	if m == nil {
		m = metrics.NewNop()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &UserService{
		repo:         repo,
		tokenService: tokenService,
		cfg:          cfg,
		auditor:      auditor,
		metrics:      m,
		logger:       logger,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.Account, *dto.TokenResponse, error) {
	if input.Email == "" || input.Username == "" || input.Password == "" {
		return nil, nil, autherror.ErrValidationFailed
	}

	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, autherror.ErrEmailAlreadyInUse
	}

	existing, err = s.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, autherror.ErrUsernameAlreadyInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()

	account := &domain.Account{
		ID:           uuid.NewString(),
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: string(hashedPassword),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, nil, err
	}

	// Registration responds like a fresh login.
	tokens, err := s.issueTokens(ctx, account)
	if err != nil {
		return nil, nil, err
	}

	return account, tokens, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	account, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if account == nil {
		// Unknown emails fail generically and are not recorded per-account,
		// so audit volume leaks no enumeration signal.
		s.metrics.LoginFailures.WithLabelValues("unknown_email").Inc()
		return nil, autherror.ErrAuthenticationFailed
	}

	// A locked account short-circuits before the password comparison.
	if account.Locked {
		return nil, autherror.ErrAccountLocked
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)) != nil {
		count, locked, err := s.repo.RecordLoginFailure(ctx, account.ID, s.cfg.LoginMaxAttempts)
		if err != nil {
			s.logger.Warn("failed to record login failure",
				zap.String("user_id", account.ID), zap.Error(err))
		}

		s.auditor.Emit(audit.Event{
			EventType: constant.EventLoginFailed,
			UserID:    account.ID,
			IP:        input.IPAddress,
		})

		s.metrics.LoginFailures.WithLabelValues("bad_password").Inc()
		if locked && count == s.cfg.LoginMaxAttempts {
			s.metrics.Lockouts.Inc()
		}

		return nil, autherror.ErrAuthenticationFailed
	}

	if err := s.repo.ResetLoginFailures(ctx, account.ID); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, account)
}

// Rotate exchanges a refresh token for a new pair. A refresh token is single
// use: presenting one whose session is already revoked is treated as theft
// and revokes every live session of the account.
func (s *UserService) Rotate(ctx context.Context, input dto.RefreshInput) (*dto.TokenResponse, error) {
	claims, err := s.tokenService.VerifyRefreshToken(input.RefreshToken)
	if err != nil {
		s.metrics.Rotations.WithLabelValues("invalid").Inc()
		return nil, err
	}

	session, err := s.repo.GetRefreshSession(ctx, claims.ID)
	if err != nil {
		return nil, err
	}

	if session == nil {
		s.auditor.Emit(audit.Event{
			EventType:   constant.TokenEventRotationNoToken,
			UserID:      claims.UserID,
			IP:          input.IPAddress,
			Description: "refresh token presented with no matching session",
		})
		s.metrics.Rotations.WithLabelValues("no_token").Inc()

		return nil, autherror.ErrInvalidToken
	}

	if session.Revoked {
		return nil, s.handleReuse(ctx, session, input.IPAddress)
	}

	if time.Now().After(session.ExpiresAt) {
		s.metrics.Rotations.WithLabelValues("expired").Inc()
		return nil, autherror.ErrInvalidToken
	}

	revoked, err := s.repo.RevokeRefreshSession(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	if !revoked {
		// A concurrent rotation won the conditional update; this request is
		// replaying a token that was just spent.
		return nil, s.handleReuse(ctx, session, input.IPAddress)
	}

	account, err := s.repo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, autherror.ErrInvalidToken
	}

	tokens, err := s.issueTokens(ctx, account)
	if err != nil {
		return nil, err
	}

	s.metrics.Rotations.WithLabelValues("ok").Inc()

	return tokens, nil
}

func (s *UserService) handleReuse(ctx context.Context, session *domain.RefreshSession, ip string) error {
	s.auditor.Emit(audit.Event{
		EventType:   constant.TokenEventRotationRevokedToken,
		UserID:      session.UserID,
		IP:          ip,
		Description: "revoked refresh token reused; all sessions revoked",
	})
	s.metrics.ReuseDetections.Inc()
	s.metrics.Rotations.WithLabelValues("reuse").Inc()

	if err := s.repo.RevokeAllRefreshSessions(ctx, session.UserID); err != nil {
		// The caller still gets a 401; losing the mass revoke is worth a log.
		s.logger.Error("failed to revoke sessions after reuse detection",
			zap.String("user_id", session.UserID), zap.Error(err))
	}

	return autherror.ErrInvalidToken
}

// Logout revokes the single session named by the presented refresh token.
func (s *UserService) Logout(ctx context.Context, input dto.LogoutInput) error {
	claims, err := s.tokenService.VerifyRefreshToken(input.RefreshToken)
	if err != nil {
		return err
	}

	revoked, err := s.repo.RevokeRefreshSession(ctx, claims.ID)
	if err != nil {
		return err
	}
	if !revoked {
		return autherror.ErrInvalidToken
	}

	return nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*dto.AccountOutput, error) {
	account, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, autherror.ErrInvalidToken
	}

	return &dto.AccountOutput{
		ID:        account.ID,
		Email:     account.Email,
		Username:  account.Username,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}, nil
}

func (s *UserService) issueTokens(ctx context.Context, account *domain.Account) (*dto.TokenResponse, error) {
	accessToken, refreshToken, jti, refreshExpiry, err := s.tokenService.Generate(account.ID, account.Email)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &domain.RefreshSession{
		ID:        jti,
		UserID:    account.ID,
		Revoked:   false,
		ExpiresAt: refreshExpiry,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.StoreRefreshSession(ctx, session); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
