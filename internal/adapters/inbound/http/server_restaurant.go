package http

import (
	"net/http"

	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/usecases"
)

func (api SamvaadServer) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	var params ListRestaurantsParams
	if err := bindQueryParam(r, "location", false, &params.Location); err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	if err := bindQueryParam(r, "cuisine", false, &params.Cuisine); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	filter := domain.RestaurantFilter{}
	if params.Location != nil {
		filter.Location = *params.Location
	}
	if params.Cuisine != nil {
		filter.Cuisine = *params.Cuisine
	}

	restaurants, err := api.FindRestaurantsUseCase.Query(r.Context(), filter)
	if err != nil {
		respondUseCaseError(w, r, err)
		return
	}

	resp := make([]RestaurantSummary, 0, len(restaurants))
	for _, rest := range restaurants {
		resp = append(resp, toRestaurantSummary(rest))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (api SamvaadServer) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	var restaurantID int
	if err := bindPathParam(r, "restaurant_id", &restaurantID); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	restaurant, err := api.GetRestaurantUseCase.Query(r.Context(), restaurantID)
	if err != nil {
		respondUseCaseError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toRestaurant(restaurant))
}

func (api SamvaadServer) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var (
		restaurantID int
		params       CheckAvailabilityParams
	)
	if err := bindPathParam(r, "restaurant_id", &restaurantID); err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	for _, q := range []struct {
		name string
		dest any
	}{
		{"date", &params.Date},
		{"time", &params.Time},
		{"party_size", &params.PartySize},
	} {
		if err := bindQueryParam(r, q.name, true, q.dest); err != nil {
			respondBadRequest(w, err.Error())
			return
		}
	}

	availability, err := api.CheckAvailabilityUseCase.Query(r.Context(), usecases.AvailabilityQuery{
		RestaurantID: restaurantID,
		Date:         params.Date,
		Time:         params.Time,
		PartySize:    params.PartySize,
	})
	if err != nil {
		respondUseCaseError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toAvailability(availability))
}
