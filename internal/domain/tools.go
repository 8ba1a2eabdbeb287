package domain

import (
	"encoding/json"
	"slices"
)

// ToolName identifies one of the fixed reservation tools.
type ToolName string

const (
	ToolName_FindRestaurants   ToolName = "find_restaurants"
	ToolName_CheckAvailability ToolName = "check_availability"
	ToolName_CreateBooking     ToolName = "create_booking"
	ToolName_CancelBooking     ToolName = "cancel_booking"
	ToolName_GetBookingDetails ToolName = "get_booking_details"
	ToolName_GetMenuSpecials   ToolName = "get_menu_specials"
)

// ToolNames returns every tool name in registry order.
func ToolNames() []ToolName {
	return []ToolName{
		ToolName_FindRestaurants,
		ToolName_CheckAvailability,
		ToolName_CreateBooking,
		ToolName_CancelBooking,
		ToolName_GetBookingDetails,
		ToolName_GetMenuSpecials,
	}
}

// ParseToolName converts a model supplied name into a ToolName.
func ParseToolName(name string) (ToolName, bool) {
	tn := ToolName(name)
	if slices.Contains(ToolNames(), tn) {
		return tn, true
	}
	return "", false
}

// ToolParameter describes one tool argument.
type ToolParameter struct {
	Type        string
	Description string
	Enum        []string
	Minimum     *int
	Maximum     *int
}

// ToolParameters describes the argument object of a tool.
type ToolParameters struct {
	Type       string
	Properties map[string]ToolParameter
	Required   []string
}

// ToolDescriptor is the static description of a tool presented to the model.
type ToolDescriptor struct {
	Name        ToolName
	Description string
	Parameters  ToolParameters
}

// JSONSchema renders the tool parameters as a JSON schema object.
func (d ToolDescriptor) JSONSchema() map[string]any {
	properties := make(map[string]any, len(d.Parameters.Properties))
	for name, p := range d.Parameters.Properties {
		prop := map[string]any{"type": p.Type}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		if len(p.Enum) > 0 {
			prop["enum"] = slices.Clone(p.Enum)
		}
		if p.Minimum != nil {
			prop["minimum"] = *p.Minimum
		}
		if p.Maximum != nil {
			prop["maximum"] = *p.Maximum
		}
		properties[name] = prop
	}

	schemaType := d.Parameters.Type
	if schemaType == "" {
		schemaType = "object"
	}
	required := d.Parameters.Required
	if required == nil {
		required = []string{}
	}
	return map[string]any{
		"type":       schemaType,
		"properties": properties,
		"required":   slices.Clone(required),
	}
}

// ToolCallRequest is one tool invocation requested by the model.
type ToolCallRequest struct {
	ID        string
	Name      string
	Arguments map[string]any
}

// ArgumentsJSON returns the arguments encoded as a JSON object.
func (r ToolCallRequest) ArgumentsJSON() string {
	if len(r.Arguments) == 0 {
		return "{}"
	}
	b, err := json.Marshal(r.Arguments)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// ToolResult is the payload produced by a tool. The concrete type is fixed per tool.
type ToolResult interface {
	isToolResult()
}

// RestaurantMatch is one find_restaurants record.
type RestaurantMatch struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	CuisineType string  `json:"cuisine_type"`
	Rating      float64 `json:"rating"`
}

// RestaurantMatches is the find_restaurants result.
type RestaurantMatches []RestaurantMatch

// AvailableSlots is the check_availability result, as HH:MM times.
type AvailableSlots []string

// BookingOutcome is the create_booking result.
type BookingOutcome struct {
	Success        bool   `json:"success"`
	BookingID      string `json:"booking_id,omitempty"`
	RestaurantName string `json:"restaurant_name,omitempty"`
	Date           string `json:"date,omitempty"`
	Time           string `json:"time,omitempty"`
	PartySize      int    `json:"party_size,omitempty"`
	Error          string `json:"error,omitempty"`
}

// CancellationOutcome is the cancel_booking result.
type CancellationOutcome bool

// BookingLookup is the get_booking_details result.
type BookingLookup struct {
	Success bool           `json:"success"`
	Details BookingDetails `json:"details"`
	Error   string         `json:"error,omitempty"`
}

// MenuSpecials is the get_menu_specials result.
type MenuSpecials []MenuSpecial

// ToolFailure is produced when a tool cannot be resolved or fails to execute.
type ToolFailure struct {
	Tool    string `json:"tool"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (f ToolFailure) Error() string {
	return f.Message
}

func (RestaurantMatches) isToolResult()   {}
func (AvailableSlots) isToolResult()      {}
func (BookingOutcome) isToolResult()      {}
func (CancellationOutcome) isToolResult() {}
func (BookingLookup) isToolResult()       {}
func (MenuSpecials) isToolResult()        {}
func (ToolFailure) isToolResult()         {}
