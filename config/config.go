package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const DefaultOpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

type Config struct {
	ServiceName   string
	ServerAddress string
	StaticDir     string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env             string
	LogLevel        string
	HTTPTimeout     time.Duration
	UpstreamTimeout time.Duration

	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
}

// LoadConfig reads .env into the process environment, then resolves every key
// from defaults, environment and command line flags, in increasing priority.
func LoadConfig(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading .env file: %w", err)
		}
		log.Info().Msg("No .env file found, using environment variables only")
	}

	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-dashboard")
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:5000")
	v.SetDefault("STATIC_DIR", "static")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 15*time.Second)
	v.SetDefault("UPSTREAM_TIMEOUT", 10*time.Second)
	v.SetDefault("OPENWEATHER_BASE_URL", DefaultOpenWeatherBaseURL)

	v.AutomaticEnv()

	flags := pflag.NewFlagSet("weather-dashboard", pflag.ContinueOnError)
	flags.String("addr", "", "listen address, overrides SERVER_ADDRESS")
	flags.String("static-dir", "", "front end assets directory, overrides STATIC_DIR")
	flags.String("log-level", "", "zerolog level, overrides LOG_LEVEL")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	for key, flag := range map[string]string{
		"SERVER_ADDRESS": "addr",
		"STATIC_DIR":     "static-dir",
		"LOG_LEVEL":      "log-level",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("error binding flag %s: %w", flag, err)
		}
	}

	config := &Config{
		ServiceName:        v.GetString("SERVICE_NAME"),
		ServerAddress:      v.GetString("SERVER_ADDRESS"),
		StaticDir:          v.GetString("STATIC_DIR"),
		DBName:             v.GetString("DATABASE_NAME"),
		DBPassword:         v.GetString("DATABASE_PASSWORD"),
		DBUser:             v.GetString("DATABASE_USER"),
		DBPort:             v.GetString("DATABASE_PORT"),
		DBHost:             v.GetString("DATABASE_HOST"),
		Env:                v.GetString("ENV"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		HTTPTimeout:        v.GetDuration("HTTP_TIMEOUT"),
		UpstreamTimeout:    v.GetDuration("UPSTREAM_TIMEOUT"),
		OpenWeatherAPIKey:  v.GetString("OPENWEATHER_API_KEY"),
		OpenWeatherBaseURL: strings.TrimRight(v.GetString("OPENWEATHER_BASE_URL"), "/"),
	}

	return config, nil
}

// LookupLogEnabled reports whether a database is configured for the lookup log.
func (c *Config) LookupLogEnabled() bool {
	return c.DBHost != ""
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}
