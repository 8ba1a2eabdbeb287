package assistant

import (
	"testing"
	"time"

	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatter_Format(t *testing.T) {
	restaurant := func(i int) domain.RestaurantMatch {
		names := []string{"GoodFoods Koramangala", "GoodFoods Indiranagar", "GoodFoods Whitefield", "GoodFoods Jayanagar", "GoodFoods HSR"}
		return domain.RestaurantMatch{ID: i + 1, Name: names[i], Address: "Bangalore", CuisineType: "North Indian", Rating: 4.5}
	}

	tests := map[string]struct {
		tool     string
		result   domain.ToolResult
		expected string
	}{
		"restaurants-none": {
			tool:     "find_restaurants",
			result:   domain.RestaurantMatches{},
			expected: "I couldn't find any restaurants matching your criteria. Could you try a different location or cuisine type?",
		},
		"restaurants-one": {
			tool:     "find_restaurants",
			result:   domain.RestaurantMatches{restaurant(0)},
			expected: "I found GoodFoods Koramangala in Bangalore. They serve North Indian cuisine. Would you like to book a table there?",
		},
		"restaurants-many-truncated": {
			tool:   "find_restaurants",
			result: domain.RestaurantMatches{restaurant(0), restaurant(1), restaurant(2), restaurant(3), restaurant(4)},
			expected: "I found 5 restaurants:" +
				"\n1. GoodFoods Koramangala - Bangalore (North Indian)" +
				"\n2. GoodFoods Indiranagar - Bangalore (North Indian)" +
				"\n3. GoodFoods Whitefield - Bangalore (North Indian)" +
				"\n... and 2 more" +
				"\n\nWhich one would you like to book?",
		},
		"restaurants-two": {
			tool:   "find_restaurants",
			result: domain.RestaurantMatches{restaurant(0), restaurant(1)},
			expected: "I found 2 restaurants:" +
				"\n1. GoodFoods Koramangala - Bangalore (North Indian)" +
				"\n2. GoodFoods Indiranagar - Bangalore (North Indian)" +
				"\n\nWhich one would you like to book?",
		},
		"restaurants-failure": {
			tool:     "find_restaurants",
			result:   domain.ToolFailure{Tool: "find_restaurants", Message: "Error executing tool find_restaurants: database error"},
			expected: "I'm sorry, I couldn't search for restaurants right now: Error executing tool find_restaurants: database error",
		},
		"availability-none": {
			tool:     "check_availability",
			result:   domain.AvailableSlots{},
			expected: "I'm sorry, but there are no tables available at that time. Would you like me to check for alternative times?",
		},
		"availability-one": {
			tool:     "check_availability",
			result:   domain.AvailableSlots{"19:00"},
			expected: "Great! A table is available at 7:00 PM. Would you like me to proceed with the booking?",
		},
		"availability-alternatives": {
			tool:   "check_availability",
			result: domain.AvailableSlots{"17:00", "18:00", "20:00", "21:00", "22:00", "23:00"},
			expected: "The requested time isn't available, but I found these alternative times:" +
				"\n- 5:00 PM\n- 6:00 PM\n- 8:00 PM\n- 9:00 PM\n- 10:00 PM" +
				"\n\nWhich time would you prefer?",
		},
		"availability-unparsable-slot": {
			tool:     "check_availability",
			result:   domain.AvailableSlots{"evening"},
			expected: "Great! A table is available at evening. Would you like me to proceed with the booking?",
		},
		"booking-confirmed": {
			tool: "create_booking",
			result: domain.BookingOutcome{
				Success: true, BookingID: "GF000042", RestaurantName: "GoodFoods Indiranagar",
				Date: "2024-08-15", Time: "20:00", PartySize: 4,
			},
			expected: "Excellent! Your booking is confirmed. Your booking reference is GF000042. We look forward to seeing you at GoodFoods Indiranagar on August 15, 2024 at 8:00 PM for 4 people.",
		},
		"booking-raw-date": {
			tool: "create_booking",
			result: domain.BookingOutcome{
				Success: true, BookingID: "GF000042", RestaurantName: "GoodFoods Indiranagar",
				Date: "15/08/2024", Time: "8pm", PartySize: 2,
			},
			expected: "Excellent! Your booking is confirmed. Your booking reference is GF000042. We look forward to seeing you at GoodFoods Indiranagar on 15/08/2024 at 8pm for 2 people.",
		},
		"booking-rejected": {
			tool:     "create_booking",
			result:   domain.BookingOutcome{Success: false, Error: "Requested time not available"},
			expected: "I'm sorry, I couldn't complete the booking: Requested time not available",
		},
		"booking-rejected-without-detail": {
			tool:     "create_booking",
			result:   domain.BookingOutcome{},
			expected: "I'm sorry, I couldn't complete the booking: Unknown error",
		},
		"booking-failure": {
			tool:     "create_booking",
			result:   domain.ToolFailure{Tool: "create_booking", Message: "Error executing tool create_booking: invalid arguments"},
			expected: "I'm sorry, I couldn't complete the booking: Error executing tool create_booking: invalid arguments",
		},
		"cancellation-succeeded": {
			tool:     "cancel_booking",
			result:   domain.CancellationOutcome(true),
			expected: "Your booking has been cancelled successfully. Thank you for letting us know.",
		},
		"cancellation-not-found": {
			tool:     "cancel_booking",
			result:   domain.CancellationOutcome(false),
			expected: "I'm sorry, I couldn't find that booking to cancel. Please check your booking reference number.",
		},
		"cancellation-failure": {
			tool:     "cancel_booking",
			result:   domain.ToolFailure{Tool: "cancel_booking", Message: "boom"},
			expected: "I'm sorry, I couldn't cancel that booking: boom",
		},
		"lookup-found": {
			tool: "get_booking_details",
			result: domain.BookingLookup{Success: true, Details: domain.BookingDetails{
				Reference:      "GF000042",
				RestaurantName: "GoodFoods Indiranagar",
				BookingTime:    time.Date(2024, 8, 15, 19, 30, 0, 0, time.UTC),
				PartySize:      4,
				Status:         domain.BookingStatus_Confirmed,
			}},
			expected: "Here are your booking details:\n- Booking ID: GF000042\n- Restaurant: GoodFoods Indiranagar\n- Date: August 15, 2024\n- Time: 7:30 PM\n- Party Size: 4\n- Status: confirmed",
		},
		"lookup-not-found": {
			tool:     "get_booking_details",
			result:   domain.BookingLookup{Success: false, Error: "Booking not found"},
			expected: "I'm sorry, I couldn't find that booking: Booking not found",
		},
		"specials-none": {
			tool:     "get_menu_specials",
			result:   domain.MenuSpecials{},
			expected: "I'm sorry, but I couldn't find any menu specials at the moment. Please check back later or ask about our regular menu items.",
		},
		"specials-one": {
			tool:     "get_menu_specials",
			result:   domain.MenuSpecials{{Name: "Butter Chicken", Description: "Creamy tomato curry", PriceINR: 1200}},
			expected: "Our current special is the Butter Chicken - Creamy tomato curry for ₹1,200.",
		},
		"specials-many": {
			tool: "get_menu_specials",
			result: domain.MenuSpecials{
				{Name: "Butter Chicken", Description: "Creamy tomato curry", PriceINR: 450},
				{Name: "Truffle Risotto", Description: "Arborio rice", PriceINR: 125000},
			},
			expected: "Here are our current menu specials:" +
				"\n1. Butter Chicken - Creamy tomato curry (₹450)" +
				"\n2. Truffle Risotto - Arborio rice (₹1,25,000)" +
				"\n\nThese are our chef's recommendations for today!",
		},
		"specials-failure": {
			tool:     "get_menu_specials",
			result:   domain.ToolFailure{Tool: "get_menu_specials", Message: "invalid preference"},
			expected: "I'm sorry, I couldn't fetch the menu specials right now: invalid preference",
		},
		"unknown-tool-success": {
			tool:     "order_food",
			result:   domain.AvailableSlots{"19:00"},
			expected: "Tool order_food executed successfully.",
		},
		"unknown-tool-failure": {
			tool:     "order_food",
			result:   domain.ToolFailure{Tool: "order_food", Message: "Tool 'order_food' not found."},
			expected: "I'm sorry, I couldn't complete that request: Tool 'order_food' not found.",
		},
		"known-tool-unexpected-result": {
			tool:     "find_restaurants",
			result:   domain.CancellationOutcome(true),
			expected: "I couldn't find any restaurants matching your criteria. Could you try a different location or cuisine type?",
		},
	}

	f := NewFormatter()
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.Format(tt.tool, tt.result))
		})
	}
}
