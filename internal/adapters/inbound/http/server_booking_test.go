package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goodfoods/samvaad/internal/common"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSamvaadServer_CreateBooking(t *testing.T) {
	bookingTime := time.Date(2026, 1, 28, 20, 0, 0, 0, time.UTC)
	req := CreateBookingReq{
		RestaurantID:    2,
		UserName:        "Priya Sharma",
		PhoneNumber:     "+91 98765-43210",
		Date:            "2026-01-28",
		Time:            "20:00",
		PartySize:       4,
		SpecialRequests: common.Ptr("window seat"),
	}

	tests := map[string]struct {
		requestBody    []byte
		setupUsecases  func(*usecases.MockCreateBooking)
		expectedStatus int
		expectedBody   *BookingResp
		expectedError  *ErrorResp
	}{
		"created": {
			requestBody: serializeJSON(t, req),
			setupUsecases: func(m *usecases.MockCreateBooking) {
				m.EXPECT().Execute(mock.Anything, domain.BookingRequest{
					RestaurantID:    2,
					UserName:        "Priya Sharma",
					PhoneNumber:     "+91 98765-43210",
					Date:            "2026-01-28",
					Time:            "20:00",
					PartySize:       4,
					SpecialRequests: common.Ptr("window seat"),
				}).Return(usecases.BookingConfirmation{
					Booking: domain.Booking{
						ID:              42,
						RestaurantID:    2,
						UserID:          5,
						BookingTime:     bookingTime,
						NumGuests:       4,
						Status:          domain.BookingStatus_Confirmed,
						SpecialRequests: common.Ptr("window seat"),
					},
					RestaurantName: "GoodFoods Indiranagar",
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody: &BookingResp{
				Success:         true,
				BookingID:       "GF000042",
				RestaurantID:    2,
				RestaurantName:  "GoodFoods Indiranagar",
				Date:            "2026-01-28",
				Time:            "20:00",
				PartySize:       4,
				Status:          "confirmed",
				UserName:        "Priya Sharma",
				PhoneNumber:     "+919876543210",
				SpecialRequests: common.Ptr("window seat"),
			},
		},
		"slot-full": {
			requestBody: serializeJSON(t, req),
			setupUsecases: func(m *usecases.MockCreateBooking) {
				m.EXPECT().Execute(mock.Anything, mock.Anything).
					Return(usecases.BookingConfirmation{}, domain.NewConflictErr("Requested time not available"))
			},
			expectedStatus: http.StatusConflict,
			expectedError: &ErrorResp{
				Error: Error{Code: CONFLICT, Message: "Requested time not available"},
			},
		},
		"validation-error": {
			requestBody: serializeJSON(t, CreateBookingReq{RestaurantID: 2}),
			setupUsecases: func(m *usecases.MockCreateBooking) {
				m.EXPECT().Execute(mock.Anything, domain.BookingRequest{RestaurantID: 2}).
					Return(usecases.BookingConfirmation{}, domain.NewValidationErr("user_name cannot be empty"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError: &ErrorResp{
				Error: Error{Code: BADREQUEST, Message: "user_name cannot be empty"},
			},
		},
		"invalid-body": {
			requestBody:    []byte(`{"restaurant_id": "two"}`),
			expectedStatus: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockCreate := usecases.NewMockCreateBooking(t)
			if tt.setupUsecases != nil {
				tt.setupUsecases(mockCreate)
			}

			server := SamvaadServer{CreateBookingUseCase: mockCreate}

			r := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(tt.requestBody))
			w := httptest.NewRecorder()

			server.routes().ServeHTTP(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assertResponse(t, w, tt.expectedBody, tt.expectedError)
		})
	}
}

func TestSamvaadServer_GetBooking(t *testing.T) {
	details := domain.BookingDetails{
		Reference:      "GF000042",
		RestaurantID:   2,
		RestaurantName: "GoodFoods Indiranagar",
		BookingTime:    time.Date(2026, 1, 28, 20, 0, 0, 0, time.UTC),
		PartySize:      4,
		Status:         domain.BookingStatus_Confirmed,
		UserName:       "Priya Sharma",
		PhoneNumber:    "+919876543210",
	}
	expected := &BookingResp{
		Success:        true,
		BookingID:      "GF000042",
		RestaurantID:   2,
		RestaurantName: "GoodFoods Indiranagar",
		Date:           "2026-01-28",
		Time:           "20:00",
		PartySize:      4,
		Status:         "confirmed",
		UserName:       "Priya Sharma",
		PhoneNumber:    "+919876543210",
	}

	tests := map[string]struct {
		path           string
		setupUsecases  func(*usecases.MockGetBookingDetails)
		expectedStatus int
		expectedBody   *BookingResp
		expectedError  *ErrorResp
	}{
		"found": {
			path: "/bookings/GF000042",
			setupUsecases: func(m *usecases.MockGetBookingDetails) {
				m.EXPECT().Query(mock.Anything, "GF000042", (*string)(nil)).Return(details, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   expected,
		},
		"found-with-phone": {
			path: "/bookings/GF000042?phone_number=9876543210",
			setupUsecases: func(m *usecases.MockGetBookingDetails) {
				m.EXPECT().Query(mock.Anything, "GF000042", common.Ptr("9876543210")).Return(details, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   expected,
		},
		"not-found": {
			path: "/bookings/GF000099",
			setupUsecases: func(m *usecases.MockGetBookingDetails) {
				m.EXPECT().Query(mock.Anything, "GF000099", (*string)(nil)).
					Return(domain.BookingDetails{}, domain.NewNotFoundErr("Booking not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedError: &ErrorResp{
				Error: Error{Code: NOTFOUND, Message: "Booking not found"},
			},
		},
		"invalid-reference": {
			path: "/bookings/42",
			setupUsecases: func(m *usecases.MockGetBookingDetails) {
				m.EXPECT().Query(mock.Anything, "42", (*string)(nil)).
					Return(domain.BookingDetails{}, domain.NewValidationErr("Invalid booking ID format"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError: &ErrorResp{
				Error: Error{Code: BADREQUEST, Message: "Invalid booking ID format"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockGet := usecases.NewMockGetBookingDetails(t)
			tt.setupUsecases(mockGet)

			server := SamvaadServer{GetBookingDetailsUseCase: mockGet}

			r := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			server.routes().ServeHTTP(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assertResponse(t, w, tt.expectedBody, tt.expectedError)
		})
	}
}

func TestSamvaadServer_CancelBooking(t *testing.T) {
	tests := map[string]struct {
		setupUsecases  func(*usecases.MockCancelBooking)
		expectedStatus int
		expectedBody   *CancelBookingResp
		expectedError  *ErrorResp
	}{
		"cancelled": {
			setupUsecases: func(m *usecases.MockCancelBooking) {
				m.EXPECT().Execute(mock.Anything, "GF000042").Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &CancelBookingResp{
				Success: true,
				Message: "Booking GF000042 cancelled successfully",
			},
		},
		"not-cancellable": {
			setupUsecases: func(m *usecases.MockCancelBooking) {
				m.EXPECT().Execute(mock.Anything, "GF000042").Return(false, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedError: &ErrorResp{
				Error: Error{Code: NOTFOUND, Message: "Booking not found or already cancelled"},
			},
		},
		"use-case-error": {
			setupUsecases: func(m *usecases.MockCancelBooking) {
				m.EXPECT().Execute(mock.Anything, "GF000042").Return(false, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError: &ErrorResp{
				Error: Error{Code: INTERNALERROR, Message: "internal server error"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockCancel := usecases.NewMockCancelBooking(t)
			tt.setupUsecases(mockCancel)

			server := SamvaadServer{CancelBookingUseCase: mockCancel}

			r := httptest.NewRequest(http.MethodDelete, "/bookings/GF000042", nil)
			w := httptest.NewRecorder()

			server.routes().ServeHTTP(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assertResponse(t, w, tt.expectedBody, tt.expectedError)
		})
	}
}
