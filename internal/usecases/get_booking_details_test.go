package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/goodfoods/samvaad/internal/common"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetBookingDetailsImpl_Query(t *testing.T) {
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

	tests := map[string]struct {
		reference       string
		phone           *string
		setExpectations func(repo *domain.MockBookingRepository)
		expected        domain.BookingDetails
		expectedErr     error
	}{
		"found": {
			reference: "GF000042",
			setExpectations: func(repo *domain.MockBookingRepository) {
				repo.EXPECT().GetBookingDetails(mock.Anything, int64(42), (*string)(nil)).Return(details, true, nil)
			},
			expected: details,
		},
		"found-with-normalized-phone": {
			reference: "GF000042",
			phone:     common.Ptr("+91-98765 43210"),
			setExpectations: func(repo *domain.MockBookingRepository) {
				repo.EXPECT().GetBookingDetails(mock.Anything, int64(42), common.Ptr("+919876543210")).Return(details, true, nil)
			},
			expected: details,
		},
		"empty-phone-is-ignored": {
			reference: "GF000042",
			phone:     common.Ptr(""),
			setExpectations: func(repo *domain.MockBookingRepository) {
				repo.EXPECT().GetBookingDetails(mock.Anything, int64(42), (*string)(nil)).Return(details, true, nil)
			},
			expected: details,
		},
		"not-found": {
			reference: "GF000042",
			phone:     common.Ptr("9999999999"),
			setExpectations: func(repo *domain.MockBookingRepository) {
				repo.EXPECT().GetBookingDetails(mock.Anything, int64(42), common.Ptr("9999999999")).Return(domain.BookingDetails{}, false, nil)
			},
			expectedErr: domain.NewNotFoundErr("Booking not found"),
		},
		"invalid-reference": {
			reference:   "42",
			expectedErr: domain.NewValidationErr("Invalid booking ID format"),
		},
		"invalid-phone": {
			reference:   "GF000042",
			phone:       common.Ptr("12ab"),
			expectedErr: domain.NewValidationErr("phone_number must contain 10 to 15 digits"),
		},
		"repository-error": {
			reference: "GF000042",
			setExpectations: func(repo *domain.MockBookingRepository) {
				repo.EXPECT().GetBookingDetails(mock.Anything, int64(42), (*string)(nil)).Return(domain.BookingDetails{}, false, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockBookingRepository(t)
			if tt.setExpectations != nil {
				tt.setExpectations(repo)
			}

			uc := NewGetBookingDetailsImpl(repo)
			got, gotErr := uc.Query(context.Background(), tt.reference, tt.phone)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInitGetBookingDetails_Initialize(t *testing.T) {
	i := InitGetBookingDetails{}

	ctx, err := i.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[GetBookingDetails]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
