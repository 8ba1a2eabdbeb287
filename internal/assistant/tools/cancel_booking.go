package tools

import (
	"context"
	"fmt"

	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/usecases"
)

// CancelBookingTool cancels a confirmed booking by reference.
type CancelBookingTool struct {
	canceller usecases.CancelBooking
}

// NewCancelBookingTool creates a new instance of CancelBookingTool.
func NewCancelBookingTool(canceller usecases.CancelBooking) CancelBookingTool {
	return CancelBookingTool{canceller: canceller}
}

// StatusMessage returns a status message about the tool execution.
func (t CancelBookingTool) StatusMessage() string {
	return "🗑️ Cancelling the booking..."
}

// Descriptor returns the tool descriptor for CancelBookingTool.
func (t CancelBookingTool) Descriptor() domain.ToolDescriptor {
	return domain.ToolDescriptor{
		Name:        domain.ToolName_CancelBooking,
		Description: "Cancel an existing booking using its booking reference.",
		Parameters: domain.ToolParameters{
			Type: "object",
			Properties: map[string]domain.ToolParameter{
				"booking_id": {
					Type:        "string",
					Description: "Booking reference, GF followed by 6 digits, e.g. GF000123.",
				},
			},
			Required: []string{"booking_id"},
		},
	}
}

// Execute executes CancelBookingTool.
func (t CancelBookingTool) Execute(ctx context.Context, call domain.ToolCallRequest, _ []domain.ConversationTurn) (domain.ToolResult, error) {
	params := struct {
		BookingID *string `json:"booking_id"`
	}{}
	if err := unmarshalToolInput(call.ArgumentsJSON(), &params); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if params.BookingID == nil {
		return nil, domain.NewValidationErr("booking_id is required")
	}

	cancelled, err := t.canceller.Execute(ctx, *params.BookingID)
	if err != nil {
		return nil, err
	}
	return domain.CancellationOutcome(cancelled), nil
}
