package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// OpenWeatherClient issues single, unretried requests against the
// OpenWeatherMap 2.5 API with metric units.
type OpenWeatherClient interface {
	CurrentByCity(ctx context.Context, city string) (*CurrentWeatherPayload, error)
	CurrentByCoordinates(ctx context.Context, lat, lon string) (*CurrentWeatherPayload, error)
	ForecastByCity(ctx context.Context, city string) (*ForecastPayload, error)
}

type openWeatherClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewOpenWeatherClient(baseURL, apiKey string, timeout time.Duration) OpenWeatherClient {
	return &openWeatherClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// StatusError is returned for any non-200 upstream answer.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status code: %d", e.StatusCode)
}

func (c *openWeatherClient) CurrentByCity(ctx context.Context, city string) (*CurrentWeatherPayload, error) {
	q := url.Values{}
	q.Set("q", city)

	var payload CurrentWeatherPayload
	if err := c.get(ctx, "/weather", q, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *openWeatherClient) CurrentByCoordinates(ctx context.Context, lat, lon string) (*CurrentWeatherPayload, error) {
	q := url.Values{}
	q.Set("lat", lat)
	q.Set("lon", lon)

	var payload CurrentWeatherPayload
	if err := c.get(ctx, "/weather", q, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *openWeatherClient) ForecastByCity(ctx context.Context, city string) (*ForecastPayload, error) {
	q := url.Values{}
	q.Set("q", city)

	var payload ForecastPayload
	if err := c.get(ctx, "/forecast", q, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *openWeatherClient) get(ctx context.Context, path string, q url.Values, out any) error {
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		// url.Error carries the full URL, including appid.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("upstream returned malformed JSON: %w", err)
	}
	// The body must hold exactly one JSON value.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("upstream returned malformed JSON: unexpected data after top-level value")
	}

	return nil
}
