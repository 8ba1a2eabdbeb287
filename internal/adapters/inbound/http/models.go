package http

import "time"

// ErrorCode is the machine readable code of an error response.
type ErrorCode string

const (
	BADREQUEST    ErrorCode = "BAD_REQUEST"
	NOTFOUND      ErrorCode = "NOT_FOUND"
	CONFLICT      ErrorCode = "CONFLICT"
	INTERNALERROR ErrorCode = "INTERNAL_ERROR"
)

// Error is the body of a failed request.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp wraps an Error.
type ErrorResp struct {
	Error Error `json:"error"`
}

// newErrorResp creates an ErrorResp.
func newErrorResp(code ErrorCode, message string) ErrorResp {
	return ErrorResp{Error: Error{Code: code, Message: message}}
}

type ServiceInfoResp struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Version string `json:"version"`
	Agent   string `json:"agent"`
}

type HealthResp struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatReq struct {
	Message             string             `json:"message"`
	SessionID           *string            `json:"session_id,omitempty"`
	ConversationHistory []ConversationTurn `json:"conversation_history,omitempty"`
}

type ChatResp struct {
	Response            string             `json:"response"`
	SessionID           string             `json:"session_id"`
	ConversationHistory []ConversationTurn `json:"conversation_history"`
}

type ResetAgentReq struct {
	SessionID string `json:"session_id"`
}

type ResetAgentResp struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type SessionStatus struct {
	SessionID          string   `json:"session_id"`
	Found              bool     `json:"found"`
	State              string   `json:"state,omitempty"`
	ConversationLength int      `json:"conversation_length"`
	Bookings           []string `json:"bookings"`
}

type AgentStatusResp struct {
	Status         string         `json:"status"`
	Provider       string         `json:"provider"`
	Model          string         `json:"model"`
	AvailableTools []string       `json:"available_tools"`
	ActiveSessions int            `json:"active_sessions"`
	Session        *SessionStatus `json:"session,omitempty"`
}

type RestaurantSummary struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	CuisineType string  `json:"cuisine_type"`
	Rating      float64 `json:"rating"`
}

type Restaurant struct {
	ID           int               `json:"id"`
	Name         string            `json:"name"`
	Address      string            `json:"address"`
	Latitude     float64           `json:"latitude"`
	Longitude    float64           `json:"longitude"`
	CuisineType  string            `json:"cuisine_type"`
	OpeningHours map[string]string `json:"opening_hours"`
	Rating       float64           `json:"rating"`
}

type AvailabilityResp struct {
	RestaurantID             int      `json:"restaurant_id"`
	Date                     string   `json:"date"`
	RequestedTime            string   `json:"requested_time"`
	PartySize                int      `json:"party_size"`
	AvailableTimes           []string `json:"available_times"`
	IsRequestedTimeAvailable bool     `json:"is_requested_time_available"`
}

type CreateBookingReq struct {
	RestaurantID    int     `json:"restaurant_id"`
	UserName        string  `json:"user_name"`
	PhoneNumber     string  `json:"phone_number"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	PartySize       int     `json:"party_size"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

type BookingResp struct {
	Success         bool    `json:"success"`
	BookingID       string  `json:"booking_id"`
	RestaurantID    int     `json:"restaurant_id"`
	RestaurantName  string  `json:"restaurant_name"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	PartySize       int     `json:"party_size"`
	Status          string  `json:"status"`
	UserName        string  `json:"user_name,omitempty"`
	PhoneNumber     string  `json:"phone_number,omitempty"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

type CancelBookingResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type MenuSpecial struct {
	ID           int    `json:"id"`
	RestaurantID int    `json:"restaurant_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	PriceINR     int    `json:"price_inr"`
	Price        string `json:"price"`
	DietaryType  string `json:"dietary_type"`
}

type ListRestaurantsParams struct {
	Location *string
	Cuisine  *string
}

type CheckAvailabilityParams struct {
	Date      string
	Time      string
	PartySize int
}

type GetBookingParams struct {
	PhoneNumber *string
}

type ListMenuSpecialsParams struct {
	DietaryPreference *string
	RestaurantID      *int
}

type GetAgentStatusParams struct {
	SessionID *string
}
