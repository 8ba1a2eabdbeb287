package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goodfoods/samvaad/internal/common"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSamvaadServer_ListMenuSpecials(t *testing.T) {
	risotto := domain.MenuSpecial{
		ID:           3,
		RestaurantID: 2,
		Name:         "Mushroom Risotto",
		Description:  "Arborio rice with porcini",
		PriceINR:     850,
		DietaryType:  domain.DietaryPreference_Vegetarian,
	}

	tests := map[string]struct {
		query          string
		setupUsecases  func(*usecases.MockListMenuSpecials)
		expectedStatus int
		expectedBody   *[]MenuSpecial
		expectedCode   ErrorCode
	}{
		"no-filter": {
			setupUsecases: func(m *usecases.MockListMenuSpecials) {
				m.EXPECT().Query(mock.Anything, domain.MenuSpecialFilter{}).Return([]domain.MenuSpecial{risotto}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &[]MenuSpecial{{
				ID:           3,
				RestaurantID: 2,
				Name:         "Mushroom Risotto",
				Description:  "Arborio rice with porcini",
				PriceINR:     850,
				Price:        risotto.Price(),
				DietaryType:  "vegetarian",
			}},
		},
		"filtered": {
			query: "?dietary_preference=vegetarian&restaurant_id=2",
			setupUsecases: func(m *usecases.MockListMenuSpecials) {
				m.EXPECT().Query(mock.Anything, domain.MenuSpecialFilter{
					Dietary:      domain.DietaryPreference_Vegetarian,
					RestaurantID: common.Ptr(2),
				}).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &[]MenuSpecial{},
		},
		"unknown-preference": {
			query: "?dietary_preference=keto",
			setupUsecases: func(m *usecases.MockListMenuSpecials) {
				m.EXPECT().Query(mock.Anything, domain.MenuSpecialFilter{Dietary: "keto"}).
					Return(nil, domain.NewValidationErr("dietary_preference must be one of none, vegetarian, vegan, gluten-free, non-vegetarian"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   BADREQUEST,
		},
		"non-numeric-restaurant": {
			query:          "?restaurant_id=two",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   BADREQUEST,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockList := usecases.NewMockListMenuSpecials(t)
			if tt.setupUsecases != nil {
				tt.setupUsecases(mockList)
			}

			server := SamvaadServer{ListMenuSpecialsUseCase: mockList}

			req := httptest.NewRequest(http.MethodGet, "/menu/specials"+tt.query, nil)
			w := httptest.NewRecorder()

			server.routes().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assertResponse[[]MenuSpecial](t, w, tt.expectedBody, nil)
			assertErrorCode(t, w, tt.expectedCode)
		})
	}
}
