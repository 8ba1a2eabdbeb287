package domain

import (
	"context"
	"slices"
	"strconv"
	"strings"
)

// DietaryPreference is the closed set of menu filters.
type DietaryPreference string

const (
	DietaryPreference_None          DietaryPreference = "none"
	DietaryPreference_Vegetarian    DietaryPreference = "vegetarian"
	DietaryPreference_Vegan         DietaryPreference = "vegan"
	DietaryPreference_GlutenFree    DietaryPreference = "gluten-free"
	DietaryPreference_NonVegetarian DietaryPreference = "non-vegetarian"
)

// DietaryPreferences returns every accepted preference.
func DietaryPreferences() []DietaryPreference {
	return []DietaryPreference{
		DietaryPreference_None,
		DietaryPreference_Vegetarian,
		DietaryPreference_Vegan,
		DietaryPreference_GlutenFree,
		DietaryPreference_NonVegetarian,
	}
}

// ParseDietaryPreference validates a preference. Empty means none.
func ParseDietaryPreference(s string) (DietaryPreference, error) {
	p := DietaryPreference(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return DietaryPreference_None, nil
	}
	if !slices.Contains(DietaryPreferences(), p) {
		return "", NewValidationErr("dietary_preference must be one of none, vegetarian, vegan, gluten-free, non-vegetarian")
	}
	return p, nil
}

// MenuSpecial is a chef recommendation of a restaurant.
type MenuSpecial struct {
	ID           int               `json:"id"`
	RestaurantID int               `json:"restaurant_id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	PriceINR     int               `json:"price_inr"`
	DietaryType  DietaryPreference `json:"dietary_type"`
}

// Price returns the display price, e.g. ₹1,200.
func (m MenuSpecial) Price() string {
	return FormatINR(m.PriceINR)
}

// MenuSpecialFilter holds the optional menu specials criteria.
type MenuSpecialFilter struct {
	Dietary      DietaryPreference
	RestaurantID *int
}

// MenuSpecialRepository defines the interface for menu specials persistence.
type MenuSpecialRepository interface {
	// ListMenuSpecials lists the specials matching the filter ordered by id.
	ListMenuSpecials(ctx context.Context, filter MenuSpecialFilter) ([]MenuSpecial, error)
}

// FormatINR renders an amount of rupees with Indian digit grouping.
func FormatINR(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.Itoa(amount)
	if len(digits) <= 3 {
		return sign + "₹" + digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return sign + "₹" + strings.Join(groups, ",") + "," + tail
}
