package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// BookingConfirmation is the result of a successful booking.
type BookingConfirmation struct {
	Booking        domain.Booking
	RestaurantName string
}

// Reference returns the booking reference.
func (c BookingConfirmation) Reference() string {
	return c.Booking.Reference()
}

// CreateBooking defines the interface for the CreateBooking use case.
type CreateBooking interface {
	Execute(ctx context.Context, req domain.BookingRequest) (BookingConfirmation, error)
}

// CreateBookingImpl is the implementation of the CreateBooking use case.
type CreateBookingImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewCreateBookingImpl creates a new instance of CreateBookingImpl.
func NewCreateBookingImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) CreateBookingImpl {
	return CreateBookingImpl{
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// Execute books a table. The capacity check, the guest lookup, the insert and
// the outbox event run in one unit of work.
func (cb CreateBookingImpl) Execute(ctx context.Context, req domain.BookingRequest) (BookingConfirmation, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.RestaurantID(req.RestaurantID),
		attribute.Int("booking.party_size", req.PartySize),
	))
	defer span.End()

	if err := req.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return BookingConfirmation{}, err
	}
	phone, _ := domain.NormalizePhoneNumber(req.PhoneNumber)

	now := cb.timeProvider.Now()
	clock, ok := domain.ParseClockTime(req.Time)
	if !ok {
		err := domain.NewValidationErr("time must be HH:MM")
		telemetry.RecordErrorAndStatus(span, err)
		return BookingConfirmation{}, err
	}
	bookingTime, err := domain.CombineDateAndTime(req.Date, clock, now.Location())
	if telemetry.RecordErrorAndStatus(span, err) {
		return BookingConfirmation{}, err
	}
	if bookingTime.Before(now) {
		err := domain.NewValidationErr("booking time cannot be in the past")
		telemetry.RecordErrorAndStatus(span, err)
		return BookingConfirmation{}, err
	}

	var confirmation BookingConfirmation
	err = cb.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		restaurant, found, err := uow.Restaurant().GetRestaurant(spanCtx, req.RestaurantID)
		if err != nil {
			return err
		}
		if !found {
			return domain.NewNotFoundErr("Restaurant not found")
		}

		capacity, err := uow.Restaurant().TotalCapacity(spanCtx, req.RestaurantID)
		if err != nil {
			return err
		}
		free, err := hasCapacity(spanCtx, uow.Booking(), req.RestaurantID, capacity, req.PartySize, bookingTime)
		if err != nil {
			return err
		}
		if !free {
			return domain.NewConflictErr("Requested time not available")
		}

		user, err := uow.User().GetOrCreateUser(spanCtx, strings.TrimSpace(req.UserName), phone)
		if err != nil {
			return err
		}

		booking, err := uow.Booking().CreateBooking(spanCtx, domain.Booking{
			RestaurantID:    req.RestaurantID,
			UserID:          user.ID,
			BookingTime:     bookingTime,
			NumGuests:       req.PartySize,
			Status:          domain.BookingStatus_Confirmed,
			SpecialRequests: trimSpecialRequests(req.SpecialRequests),
			CreatedAt:       now,
		})
		if err != nil {
			return err
		}

		if err := uow.Outbox().CreateBookingEvent(
			spanCtx,
			domain.NewBookingEvent(domain.EventType_BOOKING_CREATED, booking, now),
		); err != nil {
			return fmt.Errorf("failed to record booking event: %w", err)
		}

		confirmation = BookingConfirmation{
			Booking:        booking,
			RestaurantName: restaurant.Name,
		}
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return BookingConfirmation{}, err
	}

	span.SetAttributes(telemetry.BookingReference(confirmation.Reference()))
	return confirmation, nil
}

func trimSpecialRequests(requests *string) *string {
	if requests == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*requests)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// InitCreateBooking initializes the CreateBooking use case and registers it in the dependency container.
type InitCreateBooking struct {
	Uow          domain.UnitOfWork          `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the CreateBooking use case in the dependency container.
func (i InitCreateBooking) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateBooking](NewCreateBookingImpl(i.Uow, i.TimeProvider))
	return ctx, nil
}
