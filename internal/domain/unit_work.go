package domain

import "context"

// UnitOfWork represents a unit of work for managing repositories and transactions.
type UnitOfWork interface {
	// Restaurant returns the repository for restaurants and their tables.
	Restaurant() RestaurantRepository
	// Booking returns the repository for bookings.
	Booking() BookingRepository
	// User returns the repository for guests.
	User() UserRepository
	// MenuSpecial returns the repository for menu specials.
	MenuSpecial() MenuSpecialRepository
	// Outbox returns the repository for managing outbox events.
	Outbox() OutboxRepository
	// Execute runs a function within the context of a unit of work.
	Execute(ctx context.Context, fn func(uow UnitOfWork) error) error
}
