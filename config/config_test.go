package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"ulascansenturk/weather-dashboard/config"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) TestDefaults() {
	s.T().Setenv("OPENWEATHER_API_KEY", "")

	conf, err := config.LoadConfig(nil)
	s.Require().NoError(err)

	s.Equal("weather-dashboard", conf.ServiceName)
	s.Equal("0.0.0.0:5000", conf.ServerAddress)
	s.Equal("static", conf.StaticDir)
	s.Equal(15*time.Second, conf.HTTPTimeout)
	s.Equal(10*time.Second, conf.UpstreamTimeout)
	s.Equal(config.DefaultOpenWeatherBaseURL, conf.OpenWeatherBaseURL)
	s.Empty(conf.OpenWeatherAPIKey)
	s.False(conf.LookupLogEnabled())
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	s.T().Setenv("OPENWEATHER_API_KEY", "secret")
	s.T().Setenv("OPENWEATHER_BASE_URL", "http://localhost:9999/data/2.5/")
	s.T().Setenv("UPSTREAM_TIMEOUT", "3s")
	s.T().Setenv("DATABASE_HOST", "db")
	s.T().Setenv("DATABASE_USER", "weather")
	s.T().Setenv("DATABASE_PASSWORD", "pw")
	s.T().Setenv("DATABASE_NAME", "lookups")

	conf, err := config.LoadConfig(nil)
	s.Require().NoError(err)

	s.Equal("secret", conf.OpenWeatherAPIKey)
	s.Equal("http://localhost:9999/data/2.5", conf.OpenWeatherBaseURL)
	s.Equal(3*time.Second, conf.UpstreamTimeout)
	s.True(conf.LookupLogEnabled())
	s.Equal("host=db port=5432 user=weather password=pw dbname=lookups sslmode=disable", conf.DSN())
}

func (s *ConfigTestSuite) TestFlagsOverrideEnvironment() {
	s.T().Setenv("SERVER_ADDRESS", "127.0.0.1:7000")

	conf, err := config.LoadConfig([]string{"--addr", ":8081", "--log-level", "debug"})
	s.Require().NoError(err)

	s.Equal(":8081", conf.ServerAddress)
	s.Equal("debug", conf.LogLevel)
}

func (s *ConfigTestSuite) TestUnknownFlag() {
	_, err := config.LoadConfig([]string{"--nope"})
	s.Error(err)
	s.Contains(err.Error(), "error parsing flags")
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
