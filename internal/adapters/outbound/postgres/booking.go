package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	bookingDetailsFields = []string{
		"b.id",
		"b.restaurant_id",
		"r.name",
		"b.booking_time",
		"b.num_guests",
		"b.status",
		"b.special_requests",
		"u.name",
		"u.phone_number",
	}
)

// BookingRepository implements the domain.BookingRepository interface using PostgreSQL as the storage backend.
type BookingRepository struct {
	sb squirrel.StatementBuilderType
}

// NewBookingRepository creates a new instance of BookingRepository.
func NewBookingRepository(br squirrel.BaseRunner) BookingRepository {
	return BookingRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// BookedGuests returns the guests of the confirmed bookings of a restaurant at the exact time.
func (br BookingRepository) BookedGuests(ctx context.Context, restaurantID int, at time.Time) (int, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("restaurant_id", restaurantID),
		attribute.String("at", at.Format(time.RFC3339)),
	))
	defer span.End()

	var guests int
	err := br.sb.
		Select("COALESCE(SUM(num_guests), 0)").
		From("bookings").
		Where(squirrel.Eq{
			"restaurant_id": restaurantID,
			"booking_time":  at,
			"status":        domain.BookingStatus_Confirmed,
		}).
		QueryRowContext(spanCtx).
		Scan(&guests)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return guests, nil
}

// CreateBooking inserts a booking and returns it with the generated id.
func (br BookingRepository) CreateBooking(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("restaurant_id", booking.RestaurantID),
		attribute.Int("num_guests", booking.NumGuests),
	))
	defer span.End()

	err := br.sb.
		Insert("bookings").
		Columns(
			"restaurant_id",
			"user_id",
			"booking_time",
			"num_guests",
			"status",
			"special_requests",
			"created_at",
		).
		Values(
			booking.RestaurantID,
			booking.UserID,
			booking.BookingTime,
			booking.NumGuests,
			booking.Status,
			booking.SpecialRequests,
			booking.CreatedAt,
		).
		Suffix("RETURNING id").
		QueryRowContext(spanCtx).
		Scan(&booking.ID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Booking{}, err
	}
	return booking, nil
}

// GetBookingDetails returns a booking joined with its restaurant and guest.
func (br BookingRepository) GetBookingDetails(ctx context.Context, id int64, phoneNumber *string) (domain.BookingDetails, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("id", id),
		attribute.Bool("with_phone", phoneNumber != nil),
	))
	defer span.End()

	qry := br.sb.
		Select(bookingDetailsFields...).
		From("bookings b").
		Join("restaurants r ON r.id = b.restaurant_id").
		Join("users u ON u.id = b.user_id").
		Where(squirrel.Eq{"b.id": id})

	if phoneNumber != nil {
		qry = qry.Where(squirrel.Eq{"u.phone_number": *phoneNumber})
	}

	var (
		details   domain.BookingDetails
		bookingID int64
	)
	err := qry.QueryRowContext(spanCtx).Scan(
		&bookingID,
		&details.RestaurantID,
		&details.RestaurantName,
		&details.BookingTime,
		&details.PartySize,
		&details.Status,
		&details.SpecialRequests,
		&details.UserName,
		&details.PhoneNumber,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.BookingDetails{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.BookingDetails{}, false, err
	}

	details.Reference = domain.FormatBookingReference(bookingID)
	return details, true, nil
}

// CancelBooking marks a confirmed booking as cancelled.
func (br BookingRepository) CancelBooking(ctx context.Context, id int64) (bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("id", id),
	))
	defer span.End()

	res, err := br.sb.
		Update("bookings").
		Set("status", domain.BookingStatus_Cancelled).
		Where(squirrel.Eq{
			"id":     id,
			"status": domain.BookingStatus_Confirmed,
		}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}

	affected, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}
	return affected > 0, nil
}
