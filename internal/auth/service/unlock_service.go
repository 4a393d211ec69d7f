package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"

	"github.com/AnthoniusHendriyanto/account-service/config"
	"github.com/AnthoniusHendriyanto/account-service/internal/auth/audit"
	"github.com/AnthoniusHendriyanto/account-service/internal/auth/domain"
	"github.com/AnthoniusHendriyanto/account-service/internal/auth/dto"
	autherror "github.com/AnthoniusHendriyanto/account-service/internal/errors"
	"github.com/AnthoniusHendriyanto/account-service/internal/metrics"
	"github.com/AnthoniusHendriyanto/account-service/pkg/constant"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	mailTimeout       = 15 * time.Second
	tempPasswordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// UnlockService runs the email-code flow that is the only way out of the
// LOCKED state.
type UnlockService struct {
	repo    domain.AccountRepository
	store   domain.ChallengeStore
	mailer  domain.Mailer
	cfg     *config.Config
	auditor *audit.Dispatcher
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewUnlockService(repo domain.AccountRepository, store domain.ChallengeStore, mailer domain.Mailer,
	cfg *config.Config, auditor *audit.Dispatcher, m *metrics.Metrics, logger *zap.Logger) *UnlockService {
	if m == nil {
		m = metrics.NewNop()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &UnlockService{
		repo:    repo,
		store:   store,
		mailer:  mailer,
		cfg:     cfg,
		auditor: auditor,
		metrics: m,
		logger:  logger,
	}
}

// RequestUnlock issues (or re-sends once) a 6-digit verification code. It
// reports success for unknown emails so callers cannot probe for accounts.
func (s *UnlockService) RequestUnlock(ctx context.Context, input dto.UnlockRequestInput) error {
	account, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if account == nil {
		return nil
	}

	challenge, err := s.store.Get(ctx, input.Email)
	if err != nil {
		return err
	}

	if challenge != nil {
		// A live challenge allows exactly one resend of the same code.
		if challenge.Resent {
			return autherror.ErrResendExhausted
		}
		if err := s.store.MarkResent(ctx, input.Email); err != nil {
			return err
		}
		s.sendUnlockCode(input.Email, challenge.Code)

		return nil
	}

	code, err := generateNumericCode(constant.UnlockCodeLength)
	if err != nil {
		return err
	}

	challenge = &domain.UnlockChallenge{
		Email:    input.Email,
		Code:     code,
		IssuedAt: time.Now(),
	}

	ttl := time.Duration(s.cfg.UnlockCodeTTLMin) * time.Minute
	if err := s.store.Put(ctx, challenge, ttl); err != nil {
		return err
	}

	s.sendUnlockCode(input.Email, code)

	return nil
}

// VerifyUnlock consumes the challenge, clears the lockout and issues a
// temporary password by email.
func (s *UnlockService) VerifyUnlock(ctx context.Context, input dto.UnlockVerifyInput) error {
	if !isNumericCode(input.Code, constant.UnlockCodeLength) {
		return autherror.ErrValidationFailed
	}

	challenge, err := s.store.Get(ctx, input.Email)
	if err != nil {
		return err
	}
	if challenge == nil {
		return autherror.ErrInvalidToken
	}

	if subtle.ConstantTimeCompare([]byte(challenge.Code), []byte(input.Code)) != 1 {
		// A wrong code does not consume the challenge.
		return autherror.ErrInvalidToken
	}

	account, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if account == nil {
		return autherror.ErrInvalidToken
	}

	tempPassword, err := generatePassword(constant.TempPasswordLength)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.Unlock(ctx, account.ID, string(hash)); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, input.Email); err != nil {
		s.logger.Warn("failed to delete consumed unlock challenge",
			zap.String("email", input.Email), zap.Error(err))
	}

	s.sendTemporaryPassword(input.Email, tempPassword)

	return nil
}

// sendUnlockCode dispatches the code without blocking the caller; the
// outcome is recorded as an audit event.
func (s *UnlockService) sendUnlockCode(email, code string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
		defer cancel()

		if err := s.mailer.SendUnlockCode(ctx, email, code); err != nil {
			s.logger.Warn("unlock code email failed", zap.Error(err))
			s.metrics.EmailOutcomes.WithLabelValues("unlock_code", "failed").Inc()
			s.auditor.Emit(audit.Event{EventType: constant.EventUnlockEmailFailed, Description: err.Error()})

			return
		}

		s.metrics.EmailOutcomes.WithLabelValues("unlock_code", "sent").Inc()
		s.auditor.Emit(audit.Event{EventType: constant.EventUnlockEmailSent})
	}()
}

func (s *UnlockService) sendTemporaryPassword(email, password string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
		defer cancel()

		if err := s.mailer.SendTemporaryPassword(ctx, email, password); err != nil {
			s.logger.Warn("temporary password email failed", zap.Error(err))
			s.metrics.EmailOutcomes.WithLabelValues("temp_password", "failed").Inc()
			s.auditor.Emit(audit.Event{EventType: constant.EventPasswordEmailFailed, Description: err.Error()})

			return
		}

		s.metrics.EmailOutcomes.WithLabelValues("temp_password", "sent").Inc()
		s.auditor.Emit(audit.Event{EventType: constant.EventPasswordEmailSent})
	}()
}

func generateNumericCode(length int) (string, error) {
	max := big.NewInt(10)
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate code: %w", err)
		}
		code[i] = byte('0' + n.Int64())
	}

	return string(code), nil
}

func generatePassword(length int) (string, error) {
	alphabet := big.NewInt(int64(len(tempPasswordChars)))
	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, alphabet)
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		password[i] = tempPasswordChars[n.Int64()]
	}

	return string(password), nil
}

func isNumericCode(code string, length int) bool {
	if len(code) != length {
		return false
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}
