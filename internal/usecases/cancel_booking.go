package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/telemetry"
	"go.opentelemetry.io/otel/trace"
)

// CancelBooking defines the interface for the CancelBooking use case.
type CancelBooking interface {
	// Execute cancels the booking and reports whether it was cancelled.
	Execute(ctx context.Context, reference string) (bool, error)
}

// CancelBookingImpl is the implementation of the CancelBooking use case.
type CancelBookingImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewCancelBookingImpl creates a new instance of CancelBookingImpl.
func NewCancelBookingImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) CancelBookingImpl {
	return CancelBookingImpl{
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// Execute cancels a confirmed booking. Malformed references, unknown bookings
// and bookings that are no longer confirmed report false without an error.
func (cb CancelBookingImpl) Execute(ctx context.Context, reference string) (bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.BookingReference(reference),
	))
	defer span.End()

	id, ok := domain.ParseBookingReference(reference)
	if !ok {
		return false, nil
	}

	cancelled := false
	err := cb.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		details, found, err := uow.Booking().GetBookingDetails(spanCtx, id, nil)
		if err != nil {
			return err
		}
		if !found || details.Status != domain.BookingStatus_Confirmed {
			return nil
		}

		changed, err := uow.Booking().CancelBooking(spanCtx, id)
		if err != nil || !changed {
			return err
		}

		booking := domain.Booking{
			ID:           id,
			RestaurantID: details.RestaurantID,
			BookingTime:  details.BookingTime,
			NumGuests:    details.PartySize,
			Status:       domain.BookingStatus_Cancelled,
		}
		if err := uow.Outbox().CreateBookingEvent(
			spanCtx,
			domain.NewBookingEvent(domain.EventType_BOOKING_CANCELLED, booking, cb.timeProvider.Now()),
		); err != nil {
			return fmt.Errorf("failed to record booking event: %w", err)
		}

		cancelled = true
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}

	return cancelled, nil
}

// InitCancelBooking initializes the CancelBooking use case and registers it in the dependency container.
type InitCancelBooking struct {
	Uow          domain.UnitOfWork          `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the CancelBooking use case in the dependency container.
func (i InitCancelBooking) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CancelBooking](NewCancelBookingImpl(i.Uow, i.TimeProvider))
	return ctx, nil
}
