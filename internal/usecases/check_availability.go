package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AvailabilityQuery holds the input of an availability check.
type AvailabilityQuery struct {
	RestaurantID int
	// Date in YYYY-MM-DD format.
	Date string
	// Time of day, normalized to HH:MM.
	Time      string
	PartySize int
}

// CheckAvailability defines the interface for the CheckAvailability use case.
type CheckAvailability interface {
	Query(ctx context.Context, q AvailabilityQuery) (domain.Availability, error)
}

// CheckAvailabilityImpl is the implementation of the CheckAvailability use case.
type CheckAvailabilityImpl struct {
	restaurantRepo domain.RestaurantRepository
	bookingRepo    domain.BookingRepository
	timeProvider   domain.CurrentTimeProvider
}

// NewCheckAvailabilityImpl creates a new instance of CheckAvailabilityImpl.
func NewCheckAvailabilityImpl(
	restaurantRepo domain.RestaurantRepository,
	bookingRepo domain.BookingRepository,
	timeProvider domain.CurrentTimeProvider,
) CheckAvailabilityImpl {
	return CheckAvailabilityImpl{
		restaurantRepo: restaurantRepo,
		bookingRepo:    bookingRepo,
		timeProvider:   timeProvider,
	}
}

// Query checks whether the requested slot can seat the party. When it cannot,
// the same day slots around it are checked and the free ones are returned instead.
func (c CheckAvailabilityImpl) Query(ctx context.Context, q AvailabilityQuery) (domain.Availability, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.RestaurantID(q.RestaurantID),
		attribute.String("availability.date", q.Date),
		attribute.String("availability.time", q.Time),
		attribute.Int("availability.party_size", q.PartySize),
	))
	defer span.End()

	availability, err := checkSlots(spanCtx, c.restaurantRepo, c.bookingRepo, c.timeProvider, q)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Availability{}, err
	}
	return availability, nil
}

func checkSlots(
	ctx context.Context,
	restaurantRepo domain.RestaurantRepository,
	bookingRepo domain.BookingRepository,
	timeProvider domain.CurrentTimeProvider,
	q AvailabilityQuery,
) (domain.Availability, error) {
	if q.RestaurantID <= 0 {
		return domain.Availability{}, domain.NewValidationErr("restaurant_id must be a positive number")
	}
	if err := domain.ValidatePartySize(q.PartySize); err != nil {
		return domain.Availability{}, err
	}
	clock, ok := domain.ParseClockTime(q.Time)
	if !ok {
		return domain.Availability{}, domain.NewValidationErr("time must be HH:MM")
	}
	requested, err := domain.CombineDateAndTime(q.Date, clock, timeProvider.Now().Location())
	if err != nil {
		return domain.Availability{}, err
	}

	_, found, err := restaurantRepo.GetRestaurant(ctx, q.RestaurantID)
	if err != nil {
		return domain.Availability{}, err
	}
	if !found {
		return domain.Availability{}, domain.NewNotFoundErr(fmt.Sprintf("restaurant %d not found", q.RestaurantID))
	}

	capacity, err := restaurantRepo.TotalCapacity(ctx, q.RestaurantID)
	if err != nil {
		return domain.Availability{}, err
	}

	availability := domain.Availability{
		RestaurantID:   q.RestaurantID,
		Date:           q.Date,
		RequestedTime:  clock,
		PartySize:      q.PartySize,
		AvailableTimes: []string{},
	}

	free, err := hasCapacity(ctx, bookingRepo, q.RestaurantID, capacity, q.PartySize, requested)
	if err != nil {
		return domain.Availability{}, err
	}
	if free {
		availability.IsRequestedTimeAvailable = true
		availability.AvailableTimes = []string{clock}
		return availability, nil
	}

	for _, offset := range domain.AlternativeSlotOffsets {
		slot := requested.Add(offset)
		if slot.Format(time.DateOnly) != requested.Format(time.DateOnly) {
			continue
		}
		free, err := hasCapacity(ctx, bookingRepo, q.RestaurantID, capacity, q.PartySize, slot)
		if err != nil {
			return domain.Availability{}, err
		}
		if free {
			availability.AvailableTimes = append(availability.AvailableTimes, slot.Format("15:04"))
		}
	}
	return availability, nil
}

func hasCapacity(
	ctx context.Context,
	bookingRepo domain.BookingRepository,
	restaurantID, capacity, partySize int,
	at time.Time,
) (bool, error) {
	booked, err := bookingRepo.BookedGuests(ctx, restaurantID, at)
	if err != nil {
		return false, err
	}
	return capacity-booked >= partySize, nil
}

// InitCheckAvailability initializes the CheckAvailability use case and registers it in the dependency container.
type InitCheckAvailability struct {
	RestaurantRepo domain.RestaurantRepository `resolve:""`
	BookingRepo    domain.BookingRepository    `resolve:""`
	TimeProvider   domain.CurrentTimeProvider  `resolve:""`
}

// Initialize registers the CheckAvailability use case in the dependency container.
func (i InitCheckAvailability) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CheckAvailability](NewCheckAvailabilityImpl(i.RestaurantRepo, i.BookingRepo, i.TimeProvider))
	return ctx, nil
}
