package http

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case BADREQUEST:
		statusCode = http.StatusBadRequest
	case NOTFOUND:
		statusCode = http.StatusNotFound
	case CONFLICT:
		statusCode = http.StatusConflict
	}
	respondJSON(w, statusCode, err)
}

// respondUseCaseError maps a use case error and logs the ones hidden behind INTERNAL_ERROR.
func respondUseCaseError(w http.ResponseWriter, r *http.Request, err error) {
	resp := toError(err)
	if resp.Error.Code == INTERNALERROR {
		zerolog.Ctx(r.Context()).Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
	}
	respondError(w, resp)
}

func respondBadRequest(w http.ResponseWriter, message string) {
	respondError(w, newErrorResp(BADREQUEST, message))
}
