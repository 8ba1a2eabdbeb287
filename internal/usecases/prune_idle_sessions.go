package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PruneIdleSessions defines the interface for the PruneIdleSessions use case.
type PruneIdleSessions interface {
	// Execute deletes the sessions idle for longer than the session TTL.
	Execute(ctx context.Context) (int64, error)
}

// PruneIdleSessionsImpl is the implementation of the PruneIdleSessions use case.
type PruneIdleSessionsImpl struct {
	pruner       domain.SessionPruner
	timeProvider domain.CurrentTimeProvider
	ttl          time.Duration
}

// NewPruneIdleSessionsImpl creates a new instance of PruneIdleSessionsImpl.
func NewPruneIdleSessionsImpl(pruner domain.SessionPruner, timeProvider domain.CurrentTimeProvider, ttl time.Duration) PruneIdleSessionsImpl {
	return PruneIdleSessionsImpl{
		pruner:       pruner,
		timeProvider: timeProvider,
		ttl:          ttl,
	}
}

// Execute deletes the sessions last updated before now minus the TTL.
func (p PruneIdleSessionsImpl) Execute(ctx context.Context) (int64, error) {
	cutoff := p.timeProvider.Now().Add(-p.ttl)
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("cutoff", cutoff.Format(time.RFC3339)),
	))
	defer span.End()

	deleted, err := p.pruner.DeleteIdleSessions(spanCtx, cutoff)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	span.SetAttributes(attribute.Int64("deleted", deleted))
	return deleted, nil
}

// InitPruneIdleSessions initializes the PruneIdleSessions use case and registers it in the dependency container.
type InitPruneIdleSessions struct {
	Pruner       domain.SessionPruner       `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	TTL          time.Duration              `config:"SESSION_TTL" default:"2h"`
}

// Initialize registers the PruneIdleSessions use case in the dependency container.
func (i InitPruneIdleSessions) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[PruneIdleSessions](NewPruneIdleSessionsImpl(i.Pruner, i.TimeProvider, i.TTL))
	return ctx, nil
}
