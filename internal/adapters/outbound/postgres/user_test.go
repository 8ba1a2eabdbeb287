package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestUserRepository_GetOrCreateUser(t *testing.T) {
	const query = "INSERT INTO users (name,phone_number) VALUES ($1,$2) ON CONFLICT (phone_number) DO UPDATE SET phone_number = EXCLUDED.phone_number RETURNING id, name, phone_number"

	tests := map[string]struct {
		expect   func(sqlmock.Sqlmock)
		expected domain.User
		wantErr  bool
	}{
		"new-guest": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).
					WithArgs("Priya Patel", "+918765432109").
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone_number"}).
						AddRow(6, "Priya Patel", "+918765432109"))
			},
			expected: domain.User{ID: 6, Name: "Priya Patel", PhoneNumber: "+918765432109"},
		},
		"returning-guest-keeps-stored-name": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).
					WithArgs("Priya Patel", "+918765432109").
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone_number"}).
						AddRow(2, "Priya P.", "+918765432109"))
			},
			expected: domain.User{ID: 2, Name: "Priya P.", PhoneNumber: "+918765432109"},
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).
					WithArgs("Priya Patel", "+918765432109").
					WillReturnError(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.expect(mock)

			repo := NewUserRepository(db)
			got, err := repo.GetOrCreateUser(context.Background(), "Priya Patel", "+918765432109")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
