package http

import (
	"net/http"

	"github.com/goodfoods/samvaad/internal/domain"
)

func (api SamvaadServer) ListMenuSpecials(w http.ResponseWriter, r *http.Request) {
	var params ListMenuSpecialsParams
	if err := bindQueryParam(r, "dietary_preference", false, &params.DietaryPreference); err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	if err := bindQueryParam(r, "restaurant_id", false, &params.RestaurantID); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	filter := domain.MenuSpecialFilter{RestaurantID: params.RestaurantID}
	if params.DietaryPreference != nil {
		filter.Dietary = domain.DietaryPreference(*params.DietaryPreference)
	}

	specials, err := api.ListMenuSpecialsUseCase.Query(r.Context(), filter)
	if err != nil {
		respondUseCaseError(w, r, err)
		return
	}

	resp := make([]MenuSpecial, 0, len(specials))
	for _, s := range specials {
		resp = append(resp, toMenuSpecial(s))
	}
	respondJSON(w, http.StatusOK, resp)
}
