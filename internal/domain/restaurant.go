package domain

import (
	"context"
	"time"
)

// DefaultRestaurantRating is reported for every restaurant; ratings are not stored.
const DefaultRestaurantRating = 4.5

// MaxPartySize is the largest group accepted for a single booking.
const MaxPartySize = 10

// Restaurant represents a GoodFoods location.
type Restaurant struct {
	ID           int
	Name         string
	Address      string
	Latitude     float64
	Longitude    float64
	CuisineType  string
	OpeningHours map[string]string
}

// ToMatch converts the restaurant into a find_restaurants record.
func (r Restaurant) ToMatch() RestaurantMatch {
	return RestaurantMatch{
		ID:          r.ID,
		Name:        r.Name,
		Address:     r.Address,
		CuisineType: r.CuisineType,
		Rating:      DefaultRestaurantRating,
	}
}

// RestaurantFilter holds the optional search criteria for restaurants.
type RestaurantFilter struct {
	Location string
	Cuisine  string
}

// Availability is the outcome of an availability check.
type Availability struct {
	RestaurantID             int
	Date                     string
	RequestedTime            string
	PartySize                int
	AvailableTimes           []string
	IsRequestedTimeAvailable bool
}

// AlternativeSlotOffsets are checked, in order, when the requested slot is full.
var AlternativeSlotOffsets = []time.Duration{
	-2 * time.Hour,
	-1 * time.Hour,
	1 * time.Hour,
	2 * time.Hour,
}

// RestaurantRepository defines the interface for restaurant persistence.
type RestaurantRepository interface {
	// FindRestaurants lists restaurants matching the filter ordered by id.
	FindRestaurants(ctx context.Context, filter RestaurantFilter) ([]Restaurant, error)
	// GetRestaurant returns a restaurant by id and whether it was found.
	GetRestaurant(ctx context.Context, id int) (Restaurant, bool, error)
	// TotalCapacity returns the seats of all tables of a restaurant.
	TotalCapacity(ctx context.Context, restaurantID int) (int, error)
}
