package tools

import (
	"context"
	"fmt"

	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/usecases"
)

// GetBookingDetailsTool looks up a booking by reference.
type GetBookingDetailsTool struct {
	details usecases.GetBookingDetails
}

// NewGetBookingDetailsTool creates a new instance of GetBookingDetailsTool.
func NewGetBookingDetailsTool(details usecases.GetBookingDetails) GetBookingDetailsTool {
	return GetBookingDetailsTool{details: details}
}

// StatusMessage returns a status message about the tool execution.
func (t GetBookingDetailsTool) StatusMessage() string {
	return "🔎 Looking up the booking..."
}

// Descriptor returns the tool descriptor for GetBookingDetailsTool.
func (t GetBookingDetailsTool) Descriptor() domain.ToolDescriptor {
	return domain.ToolDescriptor{
		Name:        domain.ToolName_GetBookingDetails,
		Description: "Get the details of an existing booking. The phone number, when given, must match the one used for the booking.",
		Parameters: domain.ToolParameters{
			Type: "object",
			Properties: map[string]domain.ToolParameter{
				"booking_id": {
					Type:        "string",
					Description: "Booking reference, GF followed by 6 digits, e.g. GF000123.",
				},
				"phone_number": {
					Type:        "string",
					Description: "Optional phone number used for the booking.",
				},
			},
			Required: []string{"booking_id"},
		},
	}
}

// Execute executes GetBookingDetailsTool. Unknown bookings are reported in the lookup.
func (t GetBookingDetailsTool) Execute(ctx context.Context, call domain.ToolCallRequest, _ []domain.ConversationTurn) (domain.ToolResult, error) {
	params := struct {
		BookingID   *string `json:"booking_id"`
		PhoneNumber *string `json:"phone_number"`
	}{}
	if err := unmarshalToolInput(call.ArgumentsJSON(), &params); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if params.BookingID == nil {
		return nil, domain.NewValidationErr("booking_id is required")
	}

	details, err := t.details.Query(ctx, *params.BookingID, params.PhoneNumber)
	if err != nil {
		if isBusinessErr(err) {
			return domain.BookingLookup{Success: false, Error: err.Error()}, nil
		}
		return nil, err
	}
	return domain.BookingLookup{Success: true, Details: details}, nil
}
