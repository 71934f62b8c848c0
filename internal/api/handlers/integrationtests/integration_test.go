package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"ulascansenturk/weather-dashboard/internal/api/handlers"
	"ulascansenturk/weather-dashboard/internal/db/lookuplog"
	"ulascansenturk/weather-dashboard/internal/providers"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgTestContainers "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ulascansenturk/weather-dashboard/internal/service"
)

var (
	postgresContainer *pgTestContainers.PostgresContainer
	sharedDB          *gorm.DB
)

const (
	dbName     = "test_api_database"
	dbUser     = "test_user"
	dbPassword = "test_password"
	apiKey     = "integration-key"
)

func init() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func SetupPostgres(t *testing.T) (*gorm.DB, func()) {
	if sharedDB != nil {
		err := sharedDB.Migrator().DropTable(&lookuplog.LookupRecord{})
		require.NoError(t, err)

		err = sharedDB.AutoMigrate(&lookuplog.LookupRecord{})
		require.NoError(t, err)

		return sharedDB, func() {}
	}

	log.Info().Msg("Setting up new PostgreSQL container")

	ctx := context.Background()

	var err error
	postgresContainer, err = pgTestContainers.Run(ctx,
		"postgres:13.3",
		pgTestContainers.WithDatabase(dbName),
		pgTestContainers.WithUsername(dbUser),
		pgTestContainers.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	host, err := postgresContainer.Host(context.Background())
	require.NoError(t, err)

	endpoint, err := postgresContainer.Endpoint(context.Background(), "")
	require.NoError(t, err)

	parts := strings.Split(endpoint, ":")
	port := parts[1]

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, dbUser, dbPassword, dbName,
	)

	sharedDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	log.Info().Msgf("Connected to database: %s on %s:%s", dbName, host, port)

	sqlDB, err := sharedDB.DB()
	require.NoError(t, err)

	err = sqlDB.Ping()
	require.NoError(t, err)

	err = sharedDB.AutoMigrate(&lookuplog.LookupRecord{})
	require.NoError(t, err)

	return sharedDB, func() {
		if postgresContainer != nil {
			log.Info().Msg("Terminating PostgreSQL container")
			if err := postgresContainer.Terminate(context.Background()); err != nil {
				log.Error().Err(err).Msg("Failed to terminate PostgreSQL container")
			}
		}
	}
}

// fakeOpenWeather mimics the two upstream endpoints and counts calls.
type fakeOpenWeather struct {
	*httptest.Server
	calls atomic.Int32
}

func newFakeOpenWeather() *fakeOpenWeather {
	f := &fakeOpenWeather{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		q := r.URL.Query()

		if q.Get("appid") != apiKey {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
			return
		}

		switch q.Get("q") {
		case "Atlantis":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"cod":"404","message":"city not found"}`))
			return
		case "Overloaded":
			w.WriteHeader(http.StatusTooManyRequests)
			return
		case "Broken":
			w.WriteHeader(http.StatusInternalServerError)
			return
		case "Trailing":
			w.Write([]byte(`{"name": "X", "sys": {"country": "GB"}, "wind": {"speed": 1}} garbage`))
			return
		}

		switch r.URL.Path {
		case "/weather":
			w.Write([]byte(`{
				"name": "London", "sys": {"country": "GB"},
				"main": {"temp": 15.2, "feels_like": 14.1, "humidity": 72, "pressure": 1012},
				"weather": [{"description": "light rain", "icon": "10d"}],
				"wind": {"speed": 4.1}
			}`))
		case "/forecast":
			var items []string
			for i := 0; i < 40; i++ {
				items = append(items, fmt.Sprintf(
					`{"dt_txt": "slot-%02d", "main": {"temp": %d, "humidity": 50}, "weather": [{"description": "d", "icon": "01d"}], "wind": {"speed": 1.5}}`,
					i, i))
			}
			fmt.Fprintf(w, `{"city": {"name": "London", "country": "GB"}, "list": [%s]}`, strings.Join(items, ","))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	return f
}

type testSetup struct {
	router   http.Handler
	upstream *fakeOpenWeather
	repo     lookuplog.Repository
}

func setupTest(t *testing.T, db *gorm.DB, key string) *testSetup {
	upstream := newFakeOpenWeather()
	t.Cleanup(upstream.Close)

	repo := lookuplog.NewRepository(db)
	client := providers.NewOpenWeatherClient(upstream.URL, key, 5*time.Second)
	weatherService := service.NewWeatherService(client, repo)
	handler := handlers.NewWeatherHandler(weatherService, 10*time.Second)

	return &testSetup{
		router:   handlers.NewRouter(handler, t.TempDir(), log.Logger),
		upstream: upstream,
		repo:     repo,
	}
}

func (ts *testSetup) get(target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func waitForLookups(t *testing.T, repo lookuplog.Repository, kind lookuplog.Kind, n int) []lookuplog.LookupRecord {
	var records []lookuplog.LookupRecord
	require.Eventually(t, func() bool {
		var err error
		records, err = repo.RecentLookups(context.Background(), kind, 100)
		return err == nil && len(records) >= n
	}, 5*time.Second, 50*time.Millisecond)
	return records
}

func TestWeatherDashboard(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container based integration test in short mode")
	}

	_, cleanup := SetupPostgres(t)
	defer cleanup()

	t.Run("CurrentWeatherSuccess", func(t *testing.T) {
		db, _ := SetupPostgres(t)
		ts := setupTest(t, db, apiKey)

		w := ts.get("/api/weather/current/London")
		assert.Equal(t, http.StatusOK, w.Code)

		var response handlers.SuccessResponse[service.CurrentWeather]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Success)
		assert.Equal(t, service.CurrentWeather{
			City: "London", Country: "GB", Temperature: 15.2, FeelsLike: 14.1,
			Humidity: 72, Pressure: 1012, Description: "light rain", Icon: "10d",
			WindSpeed: 4.1, WindDirection: 0,
		}, response.Data)

		records := waitForLookups(t, ts.repo, lookuplog.KindCurrent, 1)
		assert.Equal(t, "London", records[0].Query)
		assert.Equal(t, lookuplog.OutcomeSuccess, records[0].Outcome)
		assert.Equal(t, http.StatusOK, records[0].UpstreamStatus)
	})

	t.Run("UpstreamRejectionsCollapseToNotFound", func(t *testing.T) {
		db, _ := SetupPostgres(t)
		ts := setupTest(t, db, apiKey)

		for _, city := range []string{"Atlantis", "Overloaded", "Broken"} {
			w := ts.get("/api/weather/current/" + city)
			assert.Equal(t, http.StatusNotFound, w.Code, city)

			var response handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, "City not found", response.Error)
		}

		records := waitForLookups(t, ts.repo, lookuplog.KindCurrent, 3)
		statuses := map[string]int{}
		for _, r := range records {
			assert.Equal(t, lookuplog.OutcomeNotFound, r.Outcome)
			statuses[r.Query] = r.UpstreamStatus
		}
		assert.Equal(t, map[string]int{
			"Atlantis":   http.StatusNotFound,
			"Overloaded": http.StatusTooManyRequests,
			"Broken":     http.StatusInternalServerError,
		}, statuses)
	})

	t.Run("InvalidAPIKeyLooksLikeUnknownLocation", func(t *testing.T) {
		db, _ := SetupPostgres(t)
		ts := setupTest(t, db, "")

		w := ts.get("/api/weather/coordinates?lat=51.5&lon=-0.12")
		assert.Equal(t, http.StatusNotFound, w.Code)

		var response handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Location not found", response.Error)

		records := waitForLookups(t, ts.repo, lookuplog.KindCoordinates, 1)
		assert.Equal(t, "51.5,-0.12", records[0].Query)
		assert.Equal(t, http.StatusUnauthorized, records[0].UpstreamStatus)
	})

	t.Run("CoordinatesValidationSkipsUpstream", func(t *testing.T) {
		db, _ := SetupPostgres(t)
		ts := setupTest(t, db, apiKey)

		for _, target := range []string{"/api/weather/coordinates?lat=51.5", "/api/weather/coordinates?lon=-0.12"} {
			w := ts.get(target)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, "Latitude and longitude are required", response.Error)
		}

		assert.Equal(t, int32(0), ts.upstream.calls.Load())

		records := waitForLookups(t, ts.repo, lookuplog.KindCoordinates, 2)
		for _, r := range records {
			assert.Equal(t, lookuplog.OutcomeInvalid, r.Outcome)
			assert.Equal(t, 0, r.UpstreamStatus)
		}
	})

	t.Run("ForecastPreservesOrder", func(t *testing.T) {
		db, _ := SetupPostgres(t)
		ts := setupTest(t, db, apiKey)

		w := ts.get("/api/weather/forecast/London")
		assert.Equal(t, http.StatusOK, w.Code)

		var response handlers.SuccessResponse[service.Forecast]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Data.Forecasts, 40)
		for i, entry := range response.Data.Forecasts {
			assert.Equal(t, fmt.Sprintf("slot-%02d", i), entry.Date)
			assert.Equal(t, float64(i), entry.Temperature)
		}

		records := waitForLookups(t, ts.repo, lookuplog.KindForecast, 1)
		assert.Equal(t, lookuplog.OutcomeSuccess, records[0].Outcome)
	})

	t.Run("TrailingDataIsServerError", func(t *testing.T) {
		db, _ := SetupPostgres(t)
		ts := setupTest(t, db, apiKey)

		w := ts.get("/api/weather/current/Trailing")
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.False(t, response.Success)
		assert.Contains(t, response.Error, "malformed JSON")

		records := waitForLookups(t, ts.repo, lookuplog.KindCurrent, 1)
		assert.Equal(t, lookuplog.OutcomeError, records[0].Outcome)
	})

	t.Run("ConnectionRefused", func(t *testing.T) {
		db, _ := SetupPostgres(t)
		ts := setupTest(t, db, apiKey)
		ts.upstream.Close()

		w := ts.get("/api/weather/forecast/London")
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.False(t, response.Success)
		assert.NotEmpty(t, response.Error)
		assert.NotContains(t, response.Error, apiKey)

		records := waitForLookups(t, ts.repo, lookuplog.KindForecast, 1)
		assert.Equal(t, lookuplog.OutcomeError, records[0].Outcome)
	})
}
