package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/usecases"
)

// CreateBookingTool books a table for a guest.
type CreateBookingTool struct {
	creator      usecases.CreateBooking
	timeProvider domain.CurrentTimeProvider
}

// NewCreateBookingTool creates a new instance of CreateBookingTool.
func NewCreateBookingTool(creator usecases.CreateBooking, timeProvider domain.CurrentTimeProvider) CreateBookingTool {
	return CreateBookingTool{
		creator:      creator,
		timeProvider: timeProvider,
	}
}

// StatusMessage returns a status message about the tool execution.
func (t CreateBookingTool) StatusMessage() string {
	return "📝 Creating your booking..."
}

// Descriptor returns the tool descriptor for CreateBookingTool.
func (t CreateBookingTool) Descriptor() domain.ToolDescriptor {
	minSize, maxSize := bounded(1, domain.MaxPartySize)
	return domain.ToolDescriptor{
		Name:        domain.ToolName_CreateBooking,
		Description: "Create a confirmed booking. Collect the guest name and phone number first and verify the slot with check_availability.",
		Parameters: domain.ToolParameters{
			Type: "object",
			Properties: map[string]domain.ToolParameter{
				"restaurant_id": {
					Type:        "integer",
					Description: "Restaurant id from find_restaurants.",
				},
				"user_name": {
					Type:        "string",
					Description: "Full name of the guest.",
				},
				"phone_number": {
					Type:        "string",
					Description: "Phone number of the guest, e.g. +91-9876543210.",
				},
				"date": {
					Type:        "string",
					Description: "Date in YYYY-MM-DD format.",
				},
				"time": {
					Type:        "string",
					Description: "Time in 24 hour HH:MM format.",
				},
				"party_size": {
					Type:        "integer",
					Description: "Number of guests.",
					Minimum:     minSize,
					Maximum:     maxSize,
				},
				"special_requests": {
					Type:        "string",
					Description: "Optional requests such as a window seat or a birthday cake.",
				},
			},
			Required: []string{"restaurant_id", "user_name", "phone_number", "date", "time", "party_size"},
		},
	}
}

// Execute executes CreateBookingTool. Rejected bookings are reported in the outcome.
func (t CreateBookingTool) Execute(ctx context.Context, call domain.ToolCallRequest, history []domain.ConversationTurn) (domain.ToolResult, error) {
	params := struct {
		RestaurantID    flexInt `json:"restaurant_id"`
		UserName        string  `json:"user_name"`
		PhoneNumber     string  `json:"phone_number"`
		Date            string  `json:"date"`
		Time            string  `json:"time"`
		PartySize       flexInt `json:"party_size"`
		SpecialRequests *string `json:"special_requests"`
	}{}
	if err := unmarshalToolInput(call.ArgumentsJSON(), &params); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	date, ok := domain.ResolveBookingDate(params.Date, history, t.timeProvider.Now())
	if !ok {
		return domain.BookingOutcome{Success: false, Error: "date must be YYYY-MM-DD"}, nil
	}

	confirmation, err := t.creator.Execute(ctx, domain.BookingRequest{
		RestaurantID:    int(params.RestaurantID),
		UserName:        params.UserName,
		PhoneNumber:     params.PhoneNumber,
		Date:            date,
		Time:            params.Time,
		PartySize:       int(params.PartySize),
		SpecialRequests: params.SpecialRequests,
	})
	if err != nil {
		if isBusinessErr(err) {
			return domain.BookingOutcome{Success: false, Error: err.Error()}, nil
		}
		return nil, err
	}

	return domain.BookingOutcome{
		Success:        true,
		BookingID:      confirmation.Reference(),
		RestaurantName: confirmation.RestaurantName,
		Date:           confirmation.Booking.BookingTime.Format(time.DateOnly),
		Time:           confirmation.Booking.BookingTime.Format("15:04"),
		PartySize:      confirmation.Booking.NumGuests,
	}, nil
}
