package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/goodfoods/samvaad/internal/domain"
)

func (api SamvaadServer) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	confirmation, err := api.CreateBookingUseCase.Execute(r.Context(), domain.BookingRequest{
		RestaurantID:    req.RestaurantID,
		UserName:        req.UserName,
		PhoneNumber:     req.PhoneNumber,
		Date:            req.Date,
		Time:            req.Time,
		PartySize:       req.PartySize,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		respondUseCaseError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, toBookingFromConfirmation(confirmation, req))
}

func (api SamvaadServer) GetBooking(w http.ResponseWriter, r *http.Request) {
	var (
		bookingID string
		params    GetBookingParams
	)
	if err := bindPathParam(r, "booking_id", &bookingID); err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	if err := bindQueryParam(r, "phone_number", false, &params.PhoneNumber); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	details, err := api.GetBookingDetailsUseCase.Query(r.Context(), bookingID, params.PhoneNumber)
	if err != nil {
		respondUseCaseError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toBookingFromDetails(details))
}

func (api SamvaadServer) CancelBooking(w http.ResponseWriter, r *http.Request) {
	var bookingID string
	if err := bindPathParam(r, "booking_id", &bookingID); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	cancelled, err := api.CancelBookingUseCase.Execute(r.Context(), bookingID)
	if err != nil {
		respondUseCaseError(w, r, err)
		return
	}
	if !cancelled {
		respondError(w, newErrorResp(NOTFOUND, "Booking not found or already cancelled"))
		return
	}

	respondJSON(w, http.StatusOK, CancelBookingResp{
		Success: true,
		Message: fmt.Sprintf("Booking %s cancelled successfully", bookingID),
	})
}
