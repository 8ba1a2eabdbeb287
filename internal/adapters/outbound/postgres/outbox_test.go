package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const (
	insertOutboxEventQuery = "INSERT INTO outbox_events (id,entity_type,entity_id,topic,event_type,payload,status,retry_count,max_retries,last_error,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)"
	fetchPendingQuery      = "SELECT id, entity_type, entity_id, topic, event_type, payload, status, retry_count, max_retries, last_error, created_at FROM outbox_events WHERE status = $1 ORDER BY created_at ASC LIMIT %d FOR UPDATE SKIP LOCKED"
)

func TestOutboxRepository_CreateBookingEvent(t *testing.T) {
	eventID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	event := domain.BookingEvent{
		Type:         domain.EventType_BOOKING_CREATED,
		BookingID:    42,
		Reference:    "GF000042",
		RestaurantID: 2,
		BookingTime:  time.Date(2026, 1, 28, 20, 0, 0, 0, time.UTC),
		PartySize:    4,
		CreatedAt:    time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC),
	}
	payload := []byte(`{"type":"BOOKING.CREATED","booking_id":42,"reference":"GF000042","restaurant_id":2,"booking_time":"2026-01-28T20:00:00Z","party_size":4,"created_at":"2026-01-24T15:00:00Z"}`)

	tests := map[string]struct {
		expect func(sqlmock.Sqlmock)
		err    bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(insertOutboxEventQuery).
					WithArgs(
						eventID,
						"Booking",
						"42",
						"Bookings",
						"BOOKING.CREATED",
						payload,
						"PENDING",
						0,
						5,
						nil,
						event.CreatedAt,
					).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			err: false,
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(insertOutboxEventQuery).
					WithArgs(
						eventID,
						"Booking",
						"42",
						"Bookings",
						"BOOKING.CREATED",
						sqlmock.AnyArg(),
						"PENDING",
						0,
						5,
						nil,
						event.CreatedAt,
					).
					WillReturnError(errors.New("db error"))
			},
			err: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.expect(mock)

			repo := NewOutboxRepository(db)
			repo.newID = func() uuid.UUID { return eventID }
			gotErr := repo.CreateBookingEvent(context.Background(), event)
			if tt.err {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOutboxRepository_FetchPendingEvents(t *testing.T) {
	id1 := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	t1 := time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		limit    int
		expect   func(sqlmock.Sqlmock)
		expected []domain.OutboxEvent
		wantErr  bool
	}{
		"success": {
			limit: 2,
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(outboxEventFields).
					AddRow(
						id1.String(),
						"Booking",
						"42",
						"Bookings",
						"BOOKING.CREATED",
						[]byte(`{"booking_id":42}`),
						"PENDING",
						1,
						5,
						nil,
						t1,
					)
				m.ExpectQuery(fmt.Sprintf(fetchPendingQuery, 2)).
					WithArgs("PENDING").
					WillReturnRows(rows)
			},
			expected: []domain.OutboxEvent{
				{
					ID:         id1,
					EntityType: domain.OutboxEntityType_Booking,
					EntityID:   "42",
					Topic:      domain.OutboxTopic_Bookings,
					EventType:  domain.EventType_BOOKING_CREATED,
					Payload:    []byte(`{"booking_id":42}`),
					Status:     domain.OutboxStatus_Pending,
					RetryCount: 1,
					MaxRetries: 5,
					CreatedAt:  t1,
				},
			},
		},
		"db-error": {
			limit: 1,
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(fmt.Sprintf(fetchPendingQuery, 1)).
					WithArgs("PENDING").
					WillReturnError(errors.New("db error"))
			},
			wantErr: true,
		},
		"scan-error": {
			limit: 1,
			expect: func(m sqlmock.Sqlmock) {
				// invalid UUID to trigger scan error
				rows := sqlmock.NewRows(outboxEventFields).
					AddRow(
						"not-a-uuid",
						"Booking",
						"42",
						"Bookings",
						"BOOKING.CREATED",
						[]byte(`{}`),
						"PENDING",
						1,
						5,
						nil,
						t1,
					)
				m.ExpectQuery(fmt.Sprintf(fetchPendingQuery, 1)).
					WithArgs("PENDING").
					WillReturnRows(rows)
			},
			wantErr: true,
		},
		"no-rows": {
			limit: 1,
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(outboxEventFields)
				m.ExpectQuery(fmt.Sprintf(fetchPendingQuery, 1)).
					WithArgs("PENDING").
					WillReturnRows(rows)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.expect(mock)

			repo := NewOutboxRepository(db)
			got, err := repo.FetchPendingEvents(context.Background(), tt.limit)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOutboxRepository_UpdateEvent(t *testing.T) {
	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	tests := map[string]struct {
		expect func(sqlmock.Sqlmock)
		err    bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("UPDATE outbox_events SET status = $1, retry_count = $2, last_error = $3 WHERE id = $4").
					WithArgs("FAILED", 5, "publish error", id).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			err: false,
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("UPDATE outbox_events SET status = $1, retry_count = $2, last_error = $3 WHERE id = $4").
					WithArgs("FAILED", 5, "publish error", id).
					WillReturnError(errors.New("db error"))
			},
			err: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.expect(mock)

			repo := NewOutboxRepository(db)
			gotErr := repo.UpdateEvent(context.Background(), id, domain.OutboxStatus_Failed, 5, "publish error")
			if tt.err {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOutboxRepository_DeleteEvent(t *testing.T) {
	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	tests := map[string]struct {
		expect func(sqlmock.Sqlmock)
		err    bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("DELETE FROM outbox_events WHERE id = $1").
					WithArgs(id).
					WillReturnResult(driver.RowsAffected(1))
			},
			err: false,
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("DELETE FROM outbox_events WHERE id = $1").
					WithArgs(id).
					WillReturnError(errors.New("db error"))
			},
			err: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.expect(mock)

			repo := NewOutboxRepository(db)
			gotErr := repo.DeleteEvent(context.Background(), id)
			if tt.err {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
