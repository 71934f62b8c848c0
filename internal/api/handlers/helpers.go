package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-dashboard/internal/providers"
	"ulascansenturk/weather-dashboard/internal/service"
)

// respondWithLookup applies the status convention shared by all lookup
// endpoints. notFound is sent for every non-200 upstream answer.
func respondWithLookup[T any](w http.ResponseWriter, r *http.Request, data T, err error, notFound string) {
	if err == nil {
		respondWithJSON(w, http.StatusOK, SuccessResponse[T]{Success: true, Data: data})
		return
	}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		respondWithError(w, http.StatusBadRequest, validationErr.Message)
		return
	}

	var statusErr *providers.StatusError
	if errors.As(err, &statusErr) {
		respondWithError(w, http.StatusNotFound, notFound)
		return
	}

	zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("failed to get weather data")
	respondWithError(w, http.StatusInternalServerError, err.Error())
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{
		Success: false,
		Error:   message,
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
