package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/telemetry"
	"go.opentelemetry.io/otel/trace"
)

// ResetSession defines the interface for the ResetSession use case.
type ResetSession interface {
	// Execute clears the history and the booking context of a session.
	Execute(ctx context.Context, sessionID string) error
}

// ResetSessionImpl is the implementation of the ResetSession use case.
type ResetSessionImpl struct {
	sessions domain.SessionStore
	locks    domain.SessionLocker
}

// NewResetSessionImpl creates a new instance of ResetSessionImpl.
func NewResetSessionImpl(sessions domain.SessionStore, locks domain.SessionLocker) ResetSessionImpl {
	return ResetSessionImpl{sessions: sessions, locks: locks}
}

// Execute removes the session. Resetting an unknown or already reset session is not an error.
// A turn in progress on the session finishes before the session is removed.
func (r ResetSessionImpl) Execute(ctx context.Context, sessionID string) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.SessionID(sessionID),
	))
	defer span.End()

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		err := domain.NewValidationErr("session_id cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	unlock := r.locks.Lock(sessionID)
	defer unlock()

	err := r.sessions.DeleteSession(spanCtx, sessionID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitResetSession initializes the ResetSession use case and registers it in the dependency container.
type InitResetSession struct {
	Sessions domain.SessionStore  `resolve:""`
	Locks    domain.SessionLocker `resolve:""`
}

// Initialize registers the ResetSession use case in the dependency container.
func (i InitResetSession) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ResetSession](NewResetSessionImpl(i.Sessions, i.Locks))
	return ctx, nil
}
