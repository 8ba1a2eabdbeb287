package http

import (
	"errors"
	"time"

	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/usecases"
)

func toError(err error) ErrorResp {
	var (
		validationErr *domain.ValidationErr
		notFoundErr   *domain.NotFoundErr
		conflictErr   *domain.ConflictErr
	)
	switch {
	case errors.As(err, &validationErr):
		return newErrorResp(BADREQUEST, validationErr.Error())
	case errors.As(err, &notFoundErr):
		return newErrorResp(NOTFOUND, notFoundErr.Error())
	case errors.As(err, &conflictErr):
		return newErrorResp(CONFLICT, conflictErr.Error())
	default:
		return newErrorResp(INTERNALERROR, "internal server error")
	}
}

func toConversationTurns(turns []domain.ConversationTurn) []ConversationTurn {
	resp := make([]ConversationTurn, 0, len(turns))
	for _, t := range turns {
		resp = append(resp, ConversationTurn{Role: string(t.Role), Content: t.Content})
	}
	return resp
}

// fromConversationTurns returns nil for an empty history so the stored one is kept.
func fromConversationTurns(turns []ConversationTurn) []domain.ConversationTurn {
	if len(turns) == 0 {
		return nil
	}
	history := make([]domain.ConversationTurn, 0, len(turns))
	for _, t := range turns {
		history = append(history, domain.ConversationTurn{Role: domain.ChatRole(t.Role), Content: t.Content})
	}
	return history
}

func toAgentStatus(status usecases.AgentStatus) AgentStatusResp {
	resp := AgentStatusResp{
		Status:         "active",
		Provider:       status.Provider,
		Model:          status.Model,
		AvailableTools: make([]string, 0, len(status.Tools)),
		ActiveSessions: status.ActiveSessions,
	}
	for _, name := range status.Tools {
		resp.AvailableTools = append(resp.AvailableTools, string(name))
	}
	if s := status.Session; s != nil {
		resp.Session = &SessionStatus{
			SessionID:          s.ID,
			Found:              s.Found,
			State:              string(s.State),
			ConversationLength: s.TurnCount,
			Bookings:           append([]string{}, s.Bookings...),
		}
	}
	return resp
}

func toRestaurantSummary(r domain.Restaurant) RestaurantSummary {
	m := r.ToMatch()
	return RestaurantSummary{
		ID:          m.ID,
		Name:        m.Name,
		Address:     m.Address,
		CuisineType: m.CuisineType,
		Rating:      m.Rating,
	}
}

func toRestaurant(r domain.Restaurant) Restaurant {
	hours := r.OpeningHours
	if hours == nil {
		hours = map[string]string{}
	}
	return Restaurant{
		ID:           r.ID,
		Name:         r.Name,
		Address:      r.Address,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		CuisineType:  r.CuisineType,
		OpeningHours: hours,
		Rating:       domain.DefaultRestaurantRating,
	}
}

func toAvailability(a domain.Availability) AvailabilityResp {
	return AvailabilityResp{
		RestaurantID:             a.RestaurantID,
		Date:                     a.Date,
		RequestedTime:            a.RequestedTime,
		PartySize:                a.PartySize,
		AvailableTimes:           append([]string{}, a.AvailableTimes...),
		IsRequestedTimeAvailable: a.IsRequestedTimeAvailable,
	}
}

func toBookingFromConfirmation(c usecases.BookingConfirmation, req CreateBookingReq) BookingResp {
	phone, _ := domain.NormalizePhoneNumber(req.PhoneNumber)
	return BookingResp{
		Success:         true,
		BookingID:       c.Reference(),
		RestaurantID:    c.Booking.RestaurantID,
		RestaurantName:  c.RestaurantName,
		Date:            c.Booking.BookingTime.Format(time.DateOnly),
		Time:            c.Booking.BookingTime.Format("15:04"),
		PartySize:       c.Booking.NumGuests,
		Status:          string(c.Booking.Status),
		UserName:        req.UserName,
		PhoneNumber:     phone,
		SpecialRequests: c.Booking.SpecialRequests,
	}
}

func toBookingFromDetails(d domain.BookingDetails) BookingResp {
	return BookingResp{
		Success:         true,
		BookingID:       d.Reference,
		RestaurantID:    d.RestaurantID,
		RestaurantName:  d.RestaurantName,
		Date:            d.BookingTime.Format(time.DateOnly),
		Time:            d.BookingTime.Format("15:04"),
		PartySize:       d.PartySize,
		Status:          string(d.Status),
		UserName:        d.UserName,
		PhoneNumber:     d.PhoneNumber,
		SpecialRequests: d.SpecialRequests,
	}
}

func toMenuSpecial(m domain.MenuSpecial) MenuSpecial {
	return MenuSpecial{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Description:  m.Description,
		PriceINR:     m.PriceINR,
		Price:        m.Price(),
		DietaryType:  string(m.DietaryType),
	}
}
