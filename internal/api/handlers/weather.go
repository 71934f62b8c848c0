package handlers

import (
	"context"
	"net/http"
	"time"

	"ulascansenturk/weather-dashboard/internal/service"
)

const (
	cityNotFound     = "City not found"
	locationNotFound = "Location not found"
)

type WeatherHandler struct {
	weatherService service.WeatherService
	timeout        time.Duration
}

func NewWeatherHandler(weatherService service.WeatherService, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
		timeout:        timeout,
	}
}

// GetCurrentWeather serves GET /api/weather/current/{city}.
func (h *WeatherHandler) GetCurrentWeather(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.weatherService.CurrentByCity(ctx, r.PathValue("city"))
	respondWithLookup(w, r, result, err, cityNotFound)
}

// GetForecast serves GET /api/weather/forecast/{city}.
func (h *WeatherHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.weatherService.ForecastByCity(ctx, r.PathValue("city"))
	respondWithLookup(w, r, result, err, cityNotFound)
}

// GetWeatherByCoordinates serves GET /api/weather/coordinates?lat=&lon=.
func (h *WeatherHandler) GetWeatherByCoordinates(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	query := r.URL.Query()
	result, err := h.weatherService.CurrentByCoordinates(ctx, query.Get("lat"), query.Get("lon"))
	respondWithLookup(w, r, result, err, locationNotFound)
}

func (h *WeatherHandler) Health(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func apiNotFound(w http.ResponseWriter, _ *http.Request) {
	respondWithError(w, http.StatusNotFound, "Not found")
}
