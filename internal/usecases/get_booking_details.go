package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/telemetry"
	"go.opentelemetry.io/otel/trace"
)

// GetBookingDetails defines the interface for the GetBookingDetails use case.
type GetBookingDetails interface {
	Query(ctx context.Context, reference string, phoneNumber *string) (domain.BookingDetails, error)
}

// GetBookingDetailsImpl is the implementation of the GetBookingDetails use case.
type GetBookingDetailsImpl struct {
	repo domain.BookingRepository
}

// NewGetBookingDetailsImpl creates a new instance of GetBookingDetailsImpl.
func NewGetBookingDetailsImpl(repo domain.BookingRepository) GetBookingDetailsImpl {
	return GetBookingDetailsImpl{repo: repo}
}

// Query returns the booking with its restaurant and guest. When a phone number
// is given, only a booking made with that number matches.
func (g GetBookingDetailsImpl) Query(ctx context.Context, reference string, phoneNumber *string) (domain.BookingDetails, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.BookingReference(reference),
	))
	defer span.End()

	id, ok := domain.ParseBookingReference(reference)
	if !ok {
		err := domain.NewValidationErr("Invalid booking ID format")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.BookingDetails{}, err
	}

	var phone *string
	if phoneNumber != nil && *phoneNumber != "" {
		normalized, ok := domain.NormalizePhoneNumber(*phoneNumber)
		if !ok {
			err := domain.NewValidationErr("phone_number must contain 10 to 15 digits")
			telemetry.RecordErrorAndStatus(span, err)
			return domain.BookingDetails{}, err
		}
		phone = &normalized
	}

	details, found, err := g.repo.GetBookingDetails(spanCtx, id, phone)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.BookingDetails{}, err
	}
	if !found {
		err := domain.NewNotFoundErr("Booking not found")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.BookingDetails{}, err
	}
	return details, nil
}

// InitGetBookingDetails initializes the GetBookingDetails use case and registers it in the dependency container.
type InitGetBookingDetails struct {
	Repo domain.BookingRepository `resolve:""`
}

// Initialize registers the GetBookingDetails use case in the dependency container.
func (i InitGetBookingDetails) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetBookingDetails](NewGetBookingDetailsImpl(i.Repo))
	return ctx, nil
}
