package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	restaurantFields = []string{
		"id",
		"name",
		"address",
		"latitude",
		"longitude",
		"cuisine_type",
		"opening_hours",
	}
)

// RestaurantRepository implements the domain.RestaurantRepository interface using PostgreSQL as the storage backend.
type RestaurantRepository struct {
	sb squirrel.StatementBuilderType
}

// NewRestaurantRepository creates a new instance of RestaurantRepository.
func NewRestaurantRepository(br squirrel.BaseRunner) RestaurantRepository {
	return RestaurantRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// FindRestaurants lists restaurants whose address or name contains the location
// and whose cuisine contains the cuisine, matched case-insensitively.
func (rr RestaurantRepository) FindRestaurants(ctx context.Context, filter domain.RestaurantFilter) ([]domain.Restaurant, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("location", filter.Location),
		attribute.String("cuisine", filter.Cuisine),
	))
	defer span.End()

	qry := rr.sb.
		Select(restaurantFields...).
		From("restaurants").
		OrderBy("id ASC")

	if filter.Location != "" {
		pattern := "%" + filter.Location + "%"
		qry = qry.Where(squirrel.Or{
			squirrel.ILike{"address": pattern},
			squirrel.ILike{"name": pattern},
		})
	}
	if filter.Cuisine != "" {
		qry = qry.Where(squirrel.ILike{"cuisine_type": "%" + filter.Cuisine + "%"})
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var restaurants []domain.Restaurant
	for rows.Next() {
		r, err := scanRestaurant(rows)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		restaurants = append(restaurants, r)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return restaurants, nil
}

// GetRestaurant retrieves a restaurant by its ID.
func (rr RestaurantRepository) GetRestaurant(ctx context.Context, id int) (domain.Restaurant, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("id", id),
	))
	defer span.End()

	r, err := scanRestaurant(rr.sb.
		Select(restaurantFields...).
		From("restaurants").
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(spanCtx))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Restaurant{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Restaurant{}, false, err
	}
	return r, true, nil
}

// TotalCapacity returns the sum of the table capacities of a restaurant.
func (rr RestaurantRepository) TotalCapacity(ctx context.Context, restaurantID int) (int, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("restaurant_id", restaurantID),
	))
	defer span.End()

	var capacity int
	err := rr.sb.
		Select("COALESCE(SUM(capacity), 0)").
		From("restaurant_tables").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		QueryRowContext(spanCtx).
		Scan(&capacity)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return capacity, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRestaurant(row rowScanner) (domain.Restaurant, error) {
	var (
		r     domain.Restaurant
		hours []byte
	)
	err := row.Scan(
		&r.ID,
		&r.Name,
		&r.Address,
		&r.Latitude,
		&r.Longitude,
		&r.CuisineType,
		&hours,
	)
	if err != nil {
		return domain.Restaurant{}, err
	}
	if len(hours) > 0 {
		if err := json.Unmarshal(hours, &r.OpeningHours); err != nil {
			return domain.Restaurant{}, fmt.Errorf("failed to unmarshal opening hours: %w", err)
		}
	}
	return r, nil
}
