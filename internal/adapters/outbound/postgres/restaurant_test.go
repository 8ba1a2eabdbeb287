package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRestaurantRepository_FindRestaurants(t *testing.T) {
	koramangala := domain.Restaurant{
		ID:           1,
		Name:         "GoodFoods Koramangala",
		Address:      "Koramangala 4th Block, Bangalore",
		Latitude:     12.9352,
		Longitude:    77.6245,
		CuisineType:  "Multi-cuisine, North Indian, Chinese",
		OpeningHours: map[string]string{"monday": "12:00-23:00"},
	}
	restaurantRow := func(rows *sqlmock.Rows) *sqlmock.Rows {
		return rows.AddRow(1, "GoodFoods Koramangala", "Koramangala 4th Block, Bangalore", 12.9352, 77.6245,
			"Multi-cuisine, North Indian, Chinese", []byte(`{"monday":"12:00-23:00"}`))
	}

	tests := map[string]struct {
		filter   domain.RestaurantFilter
		expect   func(sqlmock.Sqlmock)
		expected []domain.Restaurant
		wantErr  bool
	}{
		"no-criteria": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT id, name, address, latitude, longitude, cuisine_type, opening_hours FROM restaurants ORDER BY id ASC").
					WillReturnRows(restaurantRow(sqlmock.NewRows(restaurantFields)))
			},
			expected: []domain.Restaurant{koramangala},
		},
		"location-and-cuisine": {
			filter: domain.RestaurantFilter{Location: "Koramangala", Cuisine: "chinese"},
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT id, name, address, latitude, longitude, cuisine_type, opening_hours FROM restaurants WHERE (address ILIKE $1 OR name ILIKE $2) AND cuisine_type ILIKE $3 ORDER BY id ASC").
					WithArgs("%Koramangala%", "%Koramangala%", "%chinese%").
					WillReturnRows(restaurantRow(sqlmock.NewRows(restaurantFields)))
			},
			expected: []domain.Restaurant{koramangala},
		},
		"cuisine-only-no-match": {
			filter: domain.RestaurantFilter{Cuisine: "mexican"},
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT id, name, address, latitude, longitude, cuisine_type, opening_hours FROM restaurants WHERE cuisine_type ILIKE $1 ORDER BY id ASC").
					WithArgs("%mexican%").
					WillReturnRows(sqlmock.NewRows(restaurantFields))
			},
		},
		"invalid-opening-hours": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT id, name, address, latitude, longitude, cuisine_type, opening_hours FROM restaurants ORDER BY id ASC").
					WillReturnRows(sqlmock.NewRows(restaurantFields).
						AddRow(1, "GoodFoods Koramangala", "Koramangala", 0.0, 0.0, "North Indian", []byte(`not-json`)))
			},
			wantErr: true,
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT id, name, address, latitude, longitude, cuisine_type, opening_hours FROM restaurants ORDER BY id ASC").
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

			repo := NewRestaurantRepository(db)
			got, err := repo.FindRestaurants(context.Background(), tt.filter)
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

func TestRestaurantRepository_GetRestaurant(t *testing.T) {
	const query = "SELECT id, name, address, latitude, longitude, cuisine_type, opening_hours FROM restaurants WHERE id = $1"

	tests := map[string]struct {
		expect    func(sqlmock.Sqlmock)
		expected  domain.Restaurant
		wantFound bool
		wantErr   bool
	}{
		"found": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).
					WithArgs(2).
					WillReturnRows(sqlmock.NewRows(restaurantFields).
						AddRow(2, "GoodFoods Indiranagar", "Indiranagar 100 Feet Road, Bangalore", 12.9789, 77.6417,
							"Multi-cuisine, Italian, Continental", []byte(`{}`)))
			},
			expected: domain.Restaurant{
				ID:           2,
				Name:         "GoodFoods Indiranagar",
				Address:      "Indiranagar 100 Feet Road, Bangalore",
				Latitude:     12.9789,
				Longitude:    77.6417,
				CuisineType:  "Multi-cuisine, Italian, Continental",
				OpeningHours: map[string]string{},
			},
			wantFound: true,
		},
		"not-found": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).
					WithArgs(2).
					WillReturnRows(sqlmock.NewRows(restaurantFields))
			},
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).
					WithArgs(2).
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

			repo := NewRestaurantRepository(db)
			got, found, err := repo.GetRestaurant(context.Background(), 2)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.expected, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRestaurantRepository_TotalCapacity(t *testing.T) {
	const query = "SELECT COALESCE(SUM(capacity), 0) FROM restaurant_tables WHERE restaurant_id = $1"

	tests := map[string]struct {
		expect   func(sqlmock.Sqlmock)
		expected int
		wantErr  bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).
					WithArgs(1).
					WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(36))
			},
			expected: 36,
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).
					WithArgs(1).
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

			repo := NewRestaurantRepository(db)
			got, err := repo.TotalCapacity(context.Background(), 1)
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
