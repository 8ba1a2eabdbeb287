package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/usecases"
)

// CheckAvailabilityTool checks table availability for a party at a given slot.
type CheckAvailabilityTool struct {
	checker      usecases.CheckAvailability
	timeProvider domain.CurrentTimeProvider
}

// NewCheckAvailabilityTool creates a new instance of CheckAvailabilityTool.
func NewCheckAvailabilityTool(checker usecases.CheckAvailability, timeProvider domain.CurrentTimeProvider) CheckAvailabilityTool {
	return CheckAvailabilityTool{
		checker:      checker,
		timeProvider: timeProvider,
	}
}

// StatusMessage returns a status message about the tool execution.
func (t CheckAvailabilityTool) StatusMessage() string {
	return "📅 Checking availability..."
}

// Descriptor returns the tool descriptor for CheckAvailabilityTool.
func (t CheckAvailabilityTool) Descriptor() domain.ToolDescriptor {
	minSize, maxSize := bounded(1, domain.MaxPartySize)
	return domain.ToolDescriptor{
		Name:        domain.ToolName_CheckAvailability,
		Description: "Check table availability at a restaurant for a date, time and party size. Returns the requested time when free, otherwise nearby alternatives on the same day.",
		Parameters: domain.ToolParameters{
			Type: "object",
			Properties: map[string]domain.ToolParameter{
				"restaurant_id": {
					Type:        "integer",
					Description: "Restaurant id from find_restaurants.",
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
			},
			Required: []string{"restaurant_id", "date", "time", "party_size"},
		},
	}
}

// Execute executes CheckAvailabilityTool. An unknown restaurant yields no slots.
func (t CheckAvailabilityTool) Execute(ctx context.Context, call domain.ToolCallRequest, history []domain.ConversationTurn) (domain.ToolResult, error) {
	params := struct {
		RestaurantID flexInt `json:"restaurant_id"`
		Date         string  `json:"date"`
		Time         string  `json:"time"`
		PartySize    flexInt `json:"party_size"`
	}{}
	if err := unmarshalToolInput(call.ArgumentsJSON(), &params); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	date, ok := domain.ResolveBookingDate(params.Date, history, t.timeProvider.Now())
	if !ok {
		return nil, domain.NewValidationErr("date must be YYYY-MM-DD")
	}

	availability, err := t.checker.Query(ctx, usecases.AvailabilityQuery{
		RestaurantID: int(params.RestaurantID),
		Date:         date,
		Time:         params.Time,
		PartySize:    int(params.PartySize),
	})
	if err != nil {
		var notFoundErr *domain.NotFoundErr
		if errors.As(err, &notFoundErr) {
			return domain.AvailableSlots{}, nil
		}
		return nil, err
	}
	return domain.AvailableSlots(availability.AvailableTimes), nil
}
