package handlers

import (
	"errors"
	"io/fs"
	"net/http"
	"path"

	"github.com/rs/zerolog"
	"ulascansenturk/weather-dashboard/internal/api/middleware"
)

// NewRouter mounts the weather API, the health check and the static front
// end, wrapped in the request middleware chain.
func NewRouter(h *WeatherHandler, staticDir string, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/weather/current/{city}", h.GetCurrentWeather)
	mux.HandleFunc("GET /api/weather/forecast/{city}", h.GetForecast)
	mux.HandleFunc("GET /api/weather/coordinates", h.GetWeatherByCoordinates)
	mux.HandleFunc("GET /api/", apiNotFound)
	mux.HandleFunc("GET /healthz", h.Health)
	mux.Handle("GET /", http.FileServer(noListingFS{http.Dir(staticDir)}))

	return middleware.Chain(mux,
		middleware.RequestID(logger),
		middleware.AccessLog,
		middleware.Recover,
		middleware.CORS(),
	)
}

// noListingFS hides directories that have no index.html, so the file server
// answers 404 instead of rendering a directory listing.
type noListingFS struct {
	fs http.FileSystem
}

func (n noListingFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if !info.IsDir() {
		return f, nil
	}

	index, err := n.fs.Open(path.Join(name, "index.html"))
	if err != nil {
		f.Close()
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fs.ErrNotExist
		}
		return nil, err
	}
	index.Close()

	return f, nil
}
