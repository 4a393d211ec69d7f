package audit_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/AnthoniusHendriyanto/account-service/internal/auth/audit"
	"github.com/AnthoniusHendriyanto/account-service/internal/auth/domain"
	"github.com/AnthoniusHendriyanto/account-service/pkg/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *recordingSink) Emit(_ context.Context, event audit.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *recordingSink) all() []audit.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]audit.Event(nil), s.events...)
}

func TestDispatcher_DeliversAndDrains(t *testing.T) {
	sink := &recordingSink{}
	d := audit.NewDispatcher(8, sink)

	for i := 0; i < 5; i++ {
		d.Emit(audit.Event{EventType: constant.EventLoginFailed, UserID: "user-1"})
	}

	// Close drains whatever is still buffered.
	d.Close()

	events := sink.all()
	assert.Len(t, events, 5)
	for _, event := range events {
		assert.False(t, event.Timestamp.IsZero())
	}
}

func TestDispatcher_NeverBlocksWhenFull(t *testing.T) {
	// A sink that parks forever would deadlock a blocking dispatcher.
	blocked := make(chan struct{})
	d := audit.NewDispatcher(1, sinkFunc(func(context.Context, audit.Event) { <-blocked }))

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			d.Emit(audit.Event{EventType: constant.EventLoginFailed})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Emit blocked the caller")
	}

	assert.Greater(t, d.Dropped(), uint64(0))
	close(blocked)
	d.Close()
}

func TestDispatcher_NilAndClosedAreSafe(t *testing.T) {
	var nilDispatcher *audit.Dispatcher
	nilDispatcher.Emit(audit.Event{EventType: "x"})
	nilDispatcher.Close()
	assert.Zero(t, nilDispatcher.Dropped())

	d := audit.NewDispatcher(1, audit.NoOpSink{})
	d.Close()
	d.Emit(audit.Event{EventType: "x"}) // no panic after close
	d.Close()                           // idempotent
}

type sinkFunc func(ctx context.Context, event audit.Event)

func (f sinkFunc) Emit(ctx context.Context, event audit.Event) { f(ctx, event) }

// fakeRecorder collects audit rows, optionally failing.
type fakeRecorder struct {
	mu       sync.Mutex
	failures []*domain.LoginFailure
	events   []*domain.TokenEvent
	err      error
}

func (r *fakeRecorder) InsertLoginFailure(_ context.Context, failure *domain.LoginFailure) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.failures = append(r.failures, failure)

	return nil
}

func (r *fakeRecorder) InsertTokenEvent(_ context.Context, event *domain.TokenEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, event)

	return nil
}

func TestRepositorySink_PersistsRows(t *testing.T) {
	recorder := &fakeRecorder{}
	sink := audit.NewRepositorySink(recorder, zap.NewNop())
	ctx := context.Background()

	sink.Emit(ctx, audit.Event{
		Timestamp: time.Now(),
		EventType: constant.EventLoginFailed,
		UserID:    "user-1",
		IP:        "1.2.3.4",
	})
	sink.Emit(ctx, audit.Event{
		Timestamp:   time.Now(),
		EventType:   constant.TokenEventRotationRevokedToken,
		UserID:      "user-1",
		IP:          "1.2.3.4",
		Description: "revoked refresh token reused",
	})
	sink.Emit(ctx, audit.Event{
		Timestamp: time.Now(),
		EventType: constant.EventUnlockEmailSent,
	})

	require.Len(t, recorder.failures, 1)
	assert.Equal(t, "user-1", recorder.failures[0].UserID)
	assert.NotEmpty(t, recorder.failures[0].ID)

	require.Len(t, recorder.events, 1)
	assert.Equal(t, constant.TokenEventRotationRevokedToken, recorder.events[0].EventType)
	assert.Equal(t, "revoked refresh token reused", recorder.events[0].Description)
}

func TestRepositorySink_SwallowsWriteErrors(t *testing.T) {
	recorder := &fakeRecorder{err: errors.New("db down")}
	sink := audit.NewRepositorySink(recorder, zap.NewNop())

	// Must not panic or propagate anything.
	sink.Emit(context.Background(), audit.Event{
		Timestamp: time.Now(),
		EventType: constant.EventLoginFailed,
		UserID:    "user-1",
	})
}
