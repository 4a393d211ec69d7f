package audit

import (
	"context"
	"time"

	"github.com/AnthoniusHendriyanto/account-service/internal/auth/domain"
	"github.com/AnthoniusHendriyanto/account-service/pkg/constant"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event is one security-relevant occurrence flowing through the dispatcher.
type Event struct {
	Timestamp   time.Time
	EventType   string
	UserID      string
	IP          string
	Description string
}

// Sink receives dispatched audit events.
type Sink interface {
	Emit(ctx context.Context, event Event)
}

// NoOpSink drops audit events.
type NoOpSink struct{}

func (NoOpSink) Emit(context.Context, Event) {}

// Recorder is the subset of the account repository the persistent sink
// writes through.
type Recorder interface {
	InsertLoginFailure(ctx context.Context, failure *domain.LoginFailure) error
	InsertTokenEvent(ctx context.Context, event *domain.TokenEvent) error
}

// RepositorySink persists audit events as login_failures and token_events
// rows. Write errors are logged and swallowed so the write path never
// propagates back to the request that emitted the event.
type RepositorySink struct {
	recorder Recorder
	logger   *zap.Logger
}

func NewRepositorySink(recorder Recorder, logger *zap.Logger) *RepositorySink {
	return &RepositorySink{recorder: recorder, logger: logger}
}

func (s *RepositorySink) Emit(ctx context.Context, event Event) {
	switch event.EventType {
	case constant.EventLoginFailed:
		err := s.recorder.InsertLoginFailure(ctx, &domain.LoginFailure{
			ID:        uuid.NewString(),
			UserID:    event.UserID,
			IPAddress: event.IP,
			CreatedAt: event.Timestamp,
		})
		if err != nil {
			s.logger.Warn("audit write failed",
				zap.String("event_type", event.EventType), zap.Error(err))
		}
	case constant.TokenEventRotationNoToken, constant.TokenEventRotationRevokedToken:
		err := s.recorder.InsertTokenEvent(ctx, &domain.TokenEvent{
			ID:          uuid.NewString(),
			UserID:      event.UserID,
			IPAddress:   event.IP,
			EventType:   event.EventType,
			Description: event.Description,
			CreatedAt:   event.Timestamp,
		})
		if err != nil {
			s.logger.Warn("audit write failed",
				zap.String("event_type", event.EventType), zap.Error(err))
		}
	default:
		// Notification outcomes and anything without a table land in the log.
		s.logger.Info("audit event",
			zap.String("event_type", event.EventType),
			zap.String("user_id", event.UserID),
			zap.String("description", event.Description))
	}
}
