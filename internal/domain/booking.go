package domain

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BookingReferencePrefix is the prefix of every booking reference.
const BookingReferencePrefix = "GF"

const bookingReferenceDigits = 6

// BookingStatus represents the lifecycle of a booking.
type BookingStatus string

const (
	BookingStatus_Confirmed BookingStatus = "confirmed"
	BookingStatus_Cancelled BookingStatus = "cancelled"
)

// Booking represents a table reservation.
type Booking struct {
	ID              int64
	RestaurantID    int
	UserID          int64
	BookingTime     time.Time
	NumGuests       int
	Status          BookingStatus
	SpecialRequests *string
	CreatedAt       time.Time
}

// Reference returns the user facing booking reference.
func (b Booking) Reference() string {
	return FormatBookingReference(b.ID)
}

// BookingDetails is a booking joined with its restaurant and guest.
type BookingDetails struct {
	Reference       string        `json:"booking_id"`
	RestaurantID    int           `json:"restaurant_id"`
	RestaurantName  string        `json:"restaurant_name"`
	BookingTime     time.Time     `json:"booking_time"`
	PartySize       int           `json:"party_size"`
	Status          BookingStatus `json:"status"`
	SpecialRequests *string       `json:"special_requests,omitempty"`
	UserName        string        `json:"user_name"`
	PhoneNumber     string        `json:"phone_number"`
}

// BookingRequest holds the input to create a booking.
type BookingRequest struct {
	RestaurantID    int
	UserName        string
	PhoneNumber     string
	Date            string
	Time            string
	PartySize       int
	SpecialRequests *string
}

// Validate checks the request fields that do not need the store.
func (r BookingRequest) Validate() error {
	if r.RestaurantID <= 0 {
		return NewValidationErr("restaurant_id must be a positive number")
	}
	if strings.TrimSpace(r.UserName) == "" {
		return NewValidationErr("user_name cannot be empty")
	}
	if _, ok := NormalizePhoneNumber(r.PhoneNumber); !ok {
		return NewValidationErr("phone_number must contain 10 to 15 digits")
	}
	return ValidatePartySize(r.PartySize)
}

// ValidatePartySize checks the accepted group size range.
func ValidatePartySize(partySize int) error {
	if partySize < 1 || partySize > MaxPartySize {
		return NewValidationErr(fmt.Sprintf("party_size must be between 1 and %d", MaxPartySize))
	}
	return nil
}

// FormatBookingReference renders a booking id as a reference, e.g. GF000123.
func FormatBookingReference(id int64) string {
	return fmt.Sprintf("%s%0*d", BookingReferencePrefix, bookingReferenceDigits, id)
}

// ParseBookingReference extracts the booking id from a reference.
// Lower case prefixes and surrounding spaces are accepted.
func ParseBookingReference(reference string) (int64, bool) {
	ref := strings.ToUpper(strings.TrimSpace(reference))
	digits, ok := strings.CutPrefix(ref, BookingReferencePrefix)
	if !ok || len(digits) < bookingReferenceDigits {
		return 0, false
	}
	id, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// NormalizePhoneNumber strips separators and checks the digit count.
func NormalizePhoneNumber(phone string) (string, bool) {
	var b strings.Builder
	for i, r := range strings.TrimSpace(phone) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return "", false
		}
	}
	normalized := b.String()
	digits := len(strings.TrimPrefix(normalized, "+"))
	if digits < 10 || digits > 15 {
		return "", false
	}
	return normalized, true
}

// User represents a guest identified by phone number.
type User struct {
	ID          int64
	Name        string
	PhoneNumber string
}

// UserRepository defines the interface for guest persistence.
type UserRepository interface {
	// GetOrCreateUser returns the user with the phone number, creating it when missing.
	GetOrCreateUser(ctx context.Context, name, phoneNumber string) (User, error)
}

// BookingRepository defines the interface for booking persistence.
type BookingRepository interface {
	// BookedGuests returns the guests of confirmed bookings at exactly the given time.
	BookedGuests(ctx context.Context, restaurantID int, at time.Time) (int, error)
	// CreateBooking stores a booking and returns it with its id.
	CreateBooking(ctx context.Context, booking Booking) (Booking, error)
	// GetBookingDetails returns a booking with restaurant and guest data.
	// When phoneNumber is set, only a booking of that guest matches.
	GetBookingDetails(ctx context.Context, id int64, phoneNumber *string) (BookingDetails, bool, error)
	// CancelBooking marks a confirmed booking as cancelled and reports whether a booking changed.
	CancelBooking(ctx context.Context, id int64) (bool, error)
}
