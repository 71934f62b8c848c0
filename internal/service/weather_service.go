package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"ulascansenturk/weather-dashboard/internal/db/lookuplog"
	"ulascansenturk/weather-dashboard/internal/providers"
)

const lookupLogTimeout = 5 * time.Second

type WeatherService interface {
	CurrentByCity(ctx context.Context, city string) (CurrentWeather, error)
	CurrentByCoordinates(ctx context.Context, lat, lon string) (CurrentWeather, error)
	ForecastByCity(ctx context.Context, city string) (Forecast, error)
}

type weatherService struct {
	client  providers.OpenWeatherClient
	lookups lookuplog.Repository
}

// NewWeatherService builds the lookup service. lookups may be nil, in which
// case nothing is recorded.
func NewWeatherService(client providers.OpenWeatherClient, lookups lookuplog.Repository) WeatherService {
	return &weatherService{
		client:  client,
		lookups: lookups,
	}
}

func (s *weatherService) CurrentByCity(ctx context.Context, city string) (result CurrentWeather, err error) {
	defer s.record(ctx, lookuplog.KindCurrent, city, time.Now(), &err)

	if city == "" {
		return CurrentWeather{}, &ValidationError{Message: "City is required"}
	}

	payload, err := s.client.CurrentByCity(ctx, city)
	if err != nil {
		return CurrentWeather{}, err
	}

	return mapCurrentWeather(payload)
}

func (s *weatherService) CurrentByCoordinates(ctx context.Context, lat, lon string) (result CurrentWeather, err error) {
	defer s.record(ctx, lookuplog.KindCoordinates, lat+","+lon, time.Now(), &err)

	if lat == "" || lon == "" {
		return CurrentWeather{}, &ValidationError{Message: "Latitude and longitude are required"}
	}

	payload, err := s.client.CurrentByCoordinates(ctx, lat, lon)
	if err != nil {
		return CurrentWeather{}, err
	}

	return mapCurrentWeather(payload)
}

func (s *weatherService) ForecastByCity(ctx context.Context, city string) (result Forecast, err error) {
	defer s.record(ctx, lookuplog.KindForecast, city, time.Now(), &err)

	if city == "" {
		return Forecast{}, &ValidationError{Message: "City is required"}
	}

	payload, err := s.client.ForecastByCity(ctx, city)
	if err != nil {
		return Forecast{}, err
	}

	return mapForecast(payload)
}

func (s *weatherService) record(ctx context.Context, kind lookuplog.Kind, query string, start time.Time, errp *error) {
	outcome, status := classify(*errp)

	logger := zerolog.Ctx(ctx).With().Str("kind", string(kind)).Str("query", query).Logger()
	if outcome == lookuplog.OutcomeNotFound {
		// Every non-200 answer is reported as not found; keep the real status visible.
		logger.Warn().Int("upstream_status", status).Msg("upstream rejected lookup")
	}

	if s.lookups == nil {
		return
	}

	record := &lookuplog.LookupRecord{
		Kind:           kind,
		Query:          query,
		Outcome:        outcome,
		UpstreamStatus: status,
		DurationMs:     time.Since(start).Milliseconds(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lookupLogTimeout)
		defer cancel()

		if err := s.lookups.LogLookup(ctx, record); err != nil {
			logger.Error().Err(err).Msg("Failed to log weather lookup")
		}
	}()
}

func classify(err error) (lookuplog.Outcome, int) {
	if err == nil {
		return lookuplog.OutcomeSuccess, http.StatusOK
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return lookuplog.OutcomeInvalid, 0
	}

	var statusErr *providers.StatusError
	if errors.As(err, &statusErr) {
		return lookuplog.OutcomeNotFound, statusErr.StatusCode
	}

	var missingErr *MissingFieldError
	if errors.As(err, &missingErr) {
		return lookuplog.OutcomeError, http.StatusOK
	}

	return lookuplog.OutcomeError, 0
}
