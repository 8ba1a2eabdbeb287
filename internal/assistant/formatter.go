package assistant

import (
	"fmt"
	"strings"
	"time"

	"github.com/goodfoods/samvaad/internal/domain"
)

const (
	maxListedRestaurants = 3
	maxListedSlots       = 5
)

// Formatter renders tool results using fixed per tool templates.
type Formatter struct{}

// NewFormatter creates a new Formatter.
func NewFormatter() Formatter {
	return Formatter{}
}

// Format renders a tool result as a user facing message. It is total:
// every tool name and result shape produces a non-empty string.
func (f Formatter) Format(toolName string, result domain.ToolResult) string {
	name, known := domain.ParseToolName(toolName)
	if !known {
		if failure, ok := result.(domain.ToolFailure); ok {
			return fmt.Sprintf("I'm sorry, I couldn't complete that request: %s", failure.Message)
		}
		return fmt.Sprintf("Tool %s executed successfully.", toolName)
	}

	switch name {
	case domain.ToolName_FindRestaurants:
		return formatRestaurants(result)
	case domain.ToolName_CheckAvailability:
		return formatAvailability(result)
	case domain.ToolName_CreateBooking:
		return formatBookingOutcome(result)
	case domain.ToolName_CancelBooking:
		return formatCancellation(result)
	case domain.ToolName_GetBookingDetails:
		return formatBookingLookup(result)
	case domain.ToolName_GetMenuSpecials:
		return formatMenuSpecials(result)
	}
	return fmt.Sprintf("Tool %s executed successfully.", toolName)
}

func formatRestaurants(result domain.ToolResult) string {
	var restaurants domain.RestaurantMatches
	switch r := result.(type) {
	case domain.ToolFailure:
		return fmt.Sprintf("I'm sorry, I couldn't search for restaurants right now: %s", r.Message)
	case domain.RestaurantMatches:
		restaurants = r
	}

	switch len(restaurants) {
	case 0:
		return "I couldn't find any restaurants matching your criteria. Could you try a different location or cuisine type?"
	case 1:
		r := restaurants[0]
		return fmt.Sprintf("I found %s in %s. They serve %s cuisine. Would you like to book a table there?", r.Name, r.Address, r.CuisineType)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "I found %d restaurants:", len(restaurants))
	for i, r := range restaurants[:min(len(restaurants), maxListedRestaurants)] {
		fmt.Fprintf(&sb, "\n%d. %s - %s (%s)", i+1, r.Name, r.Address, r.CuisineType)
	}
	if len(restaurants) > maxListedRestaurants {
		fmt.Fprintf(&sb, "\n... and %d more", len(restaurants)-maxListedRestaurants)
	}
	sb.WriteString("\n\nWhich one would you like to book?")
	return sb.String()
}

func formatAvailability(result domain.ToolResult) string {
	var slots domain.AvailableSlots
	switch r := result.(type) {
	case domain.ToolFailure:
		return fmt.Sprintf("I'm sorry, I couldn't check availability right now: %s", r.Message)
	case domain.AvailableSlots:
		slots = r
	}

	switch len(slots) {
	case 0:
		return "I'm sorry, but there are no tables available at that time. Would you like me to check for alternative times?"
	case 1:
		return fmt.Sprintf("Great! A table is available at %s. Would you like me to proceed with the booking?", formatClock(slots[0]))
	}

	var sb strings.Builder
	sb.WriteString("The requested time isn't available, but I found these alternative times:")
	for _, slot := range slots[:min(len(slots), maxListedSlots)] {
		fmt.Fprintf(&sb, "\n- %s", formatClock(slot))
	}
	sb.WriteString("\n\nWhich time would you prefer?")
	return sb.String()
}

func formatBookingOutcome(result domain.ToolResult) string {
	switch r := result.(type) {
	case domain.ToolFailure:
		return bookingFailure(r.Message)
	case domain.BookingOutcome:
		if !r.Success {
			return bookingFailure(r.Error)
		}
		return fmt.Sprintf(
			"Excellent! Your booking is confirmed. Your booking reference is %s. We look forward to seeing you at %s on %s at %s for %d people.",
			r.BookingID, r.RestaurantName, formatLongDate(r.Date), formatClock(r.Time), r.PartySize,
		)
	}
	return bookingFailure("")
}

func bookingFailure(detail string) string {
	return fmt.Sprintf("I'm sorry, I couldn't complete the booking: %s", orUnknown(detail))
}

func formatCancellation(result domain.ToolResult) string {
	switch r := result.(type) {
	case domain.ToolFailure:
		return fmt.Sprintf("I'm sorry, I couldn't cancel that booking: %s", r.Message)
	case domain.CancellationOutcome:
		if r {
			return "Your booking has been cancelled successfully. Thank you for letting us know."
		}
	}
	return "I'm sorry, I couldn't find that booking to cancel. Please check your booking reference number."
}

func formatBookingLookup(result domain.ToolResult) string {
	switch r := result.(type) {
	case domain.ToolFailure:
		return lookupFailure(r.Message)
	case domain.BookingLookup:
		if !r.Success {
			return lookupFailure(r.Error)
		}
		d := r.Details
		return fmt.Sprintf(
			"Here are your booking details:\n- Booking ID: %s\n- Restaurant: %s\n- Date: %s\n- Time: %s\n- Party Size: %d\n- Status: %s",
			d.Reference,
			d.RestaurantName,
			formatLongDate(d.BookingTime.Format(time.DateOnly)),
			formatClock(d.BookingTime.Format("15:04")),
			d.PartySize,
			d.Status,
		)
	}
	return lookupFailure("")
}

func lookupFailure(detail string) string {
	return fmt.Sprintf("I'm sorry, I couldn't find that booking: %s", orUnknown(detail))
}

func formatMenuSpecials(result domain.ToolResult) string {
	var specials domain.MenuSpecials
	switch r := result.(type) {
	case domain.ToolFailure:
		return fmt.Sprintf("I'm sorry, I couldn't fetch the menu specials right now: %s", r.Message)
	case domain.MenuSpecials:
		specials = r
	}

	switch len(specials) {
	case 0:
		return "I'm sorry, but I couldn't find any menu specials at the moment. Please check back later or ask about our regular menu items."
	case 1:
		s := specials[0]
		return fmt.Sprintf("Our current special is the %s - %s for %s.", s.Name, s.Description, s.Price())
	}

	var sb strings.Builder
	sb.WriteString("Here are our current menu specials:")
	for i, s := range specials {
		fmt.Fprintf(&sb, "\n%d. %s - %s (%s)", i+1, s.Name, s.Description, s.Price())
	}
	sb.WriteString("\n\nThese are our chef's recommendations for today!")
	return sb.String()
}

// formatClock renders HH:MM as a 12 hour time. Unparsable input is returned as is.
func formatClock(hhmm string) string {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("3:04 PM")
}

// formatLongDate renders YYYY-MM-DD as e.g. "August 15, 2024". Unparsable input is returned as is.
func formatLongDate(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}

func orUnknown(detail string) string {
	if detail == "" {
		return "Unknown error"
	}
	return detail
}
