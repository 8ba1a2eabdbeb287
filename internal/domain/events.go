package domain

import (
	"context"
	"time"
)

type EventType string

const (
	// EventType_BOOKING_CREATED represents the event when a booking is confirmed.
	EventType_BOOKING_CREATED EventType = "BOOKING.CREATED"
	// EventType_BOOKING_CANCELLED represents the event when a booking is cancelled.
	EventType_BOOKING_CANCELLED EventType = "BOOKING.CANCELLED"
)

// BookingEvent represents a booking lifecycle event published to downstream systems.
type BookingEvent struct {
	Type         EventType `json:"type"`
	BookingID    int64     `json:"booking_id"`
	Reference    string    `json:"reference"`
	RestaurantID int       `json:"restaurant_id"`
	BookingTime  time.Time `json:"booking_time"`
	PartySize    int       `json:"party_size"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewBookingEvent creates an event for the booking.
func NewBookingEvent(eventType EventType, booking Booking, now time.Time) BookingEvent {
	return BookingEvent{
		Type:         eventType,
		BookingID:    booking.ID,
		Reference:    booking.Reference(),
		RestaurantID: booking.RestaurantID,
		BookingTime:  booking.BookingTime,
		PartySize:    booking.NumGuests,
		CreatedAt:    now,
	}
}

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}
