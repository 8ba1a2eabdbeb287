package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	sessionFields = []string{
		"id",
		"history",
		"bookings",
		"state",
		"updated_at",
	}
)

// SessionStore implements the domain.SessionStore and domain.SessionPruner
// interfaces on the chat_sessions table.
type SessionStore struct {
	sb squirrel.StatementBuilderType
}

// NewSessionStore creates a new instance of SessionStore.
func NewSessionStore(br squirrel.BaseRunner) SessionStore {
	return SessionStore{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// GetSession retrieves a session by its ID.
func (ss SessionStore) GetSession(ctx context.Context, id string) (domain.Session, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.SessionID(id),
	))
	defer span.End()

	var (
		s                         domain.Session
		historyJSON, bookingsJSON []byte
	)
	err := ss.sb.
		Select(sessionFields...).
		From("chat_sessions").
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(spanCtx).
		Scan(
			&s.ID,
			&historyJSON,
			&bookingsJSON,
			&s.State,
			&s.UpdatedAt,
		)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Session{}, false, err
	}

	if err := json.Unmarshal(historyJSON, &s.History); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Session{}, false, fmt.Errorf("failed to unmarshal session history: %w", err)
	}
	if err := json.Unmarshal(bookingsJSON, &s.Bookings); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Session{}, false, fmt.Errorf("failed to unmarshal session bookings: %w", err)
	}

	return s, true, nil
}

// SaveSession creates or replaces a session.
func (ss SessionStore) SaveSession(ctx context.Context, session domain.Session) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.SessionID(session.ID),
		attribute.Int("turns", len(session.History)),
	))
	defer span.End()

	history := session.History
	if history == nil {
		history = []domain.ConversationTurn{}
	}
	bookings := session.Bookings
	if bookings == nil {
		bookings = []string{}
	}

	historyJSON, err := json.Marshal(history)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal session history: %w", err)
	}
	bookingsJSON, err := json.Marshal(bookings)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal session bookings: %w", err)
	}

	_, err = ss.sb.
		Insert("chat_sessions").
		Columns(sessionFields...).
		Values(
			session.ID,
			historyJSON,
			bookingsJSON,
			session.State,
			session.UpdatedAt,
		).
		Suffix("ON CONFLICT (id) DO UPDATE SET history = EXCLUDED.history, bookings = EXCLUDED.bookings, state = EXCLUDED.state, updated_at = EXCLUDED.updated_at").
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// DeleteSession deletes a session by its ID.
func (ss SessionStore) DeleteSession(ctx context.Context, id string) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.SessionID(id),
	))
	defer span.End()

	_, err := ss.sb.
		Delete("chat_sessions").
		Where(squirrel.Eq{"id": id}).
		ExecContext(spanCtx)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// CountSessions returns the number of stored sessions.
func (ss SessionStore) CountSessions(ctx context.Context) (int, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var count int
	err := ss.sb.
		Select("COUNT(*)").
		From("chat_sessions").
		QueryRowContext(spanCtx).
		Scan(&count)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return count, nil
}

// DeleteIdleSessions deletes the sessions last updated before the given time.
func (ss SessionStore) DeleteIdleSessions(ctx context.Context, before time.Time) (int64, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("before", before.Format(time.RFC3339)),
	))
	defer span.End()

	res, err := ss.sb.
		Delete("chat_sessions").
		Where(squirrel.Lt{"updated_at": before}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}

	deleted, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return deleted, nil
}
