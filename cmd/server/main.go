package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"ulascansenturk/weather-dashboard/config"
	"ulascansenturk/weather-dashboard/internal/api/handlers"
	"ulascansenturk/weather-dashboard/internal/db/lookuplog"
	"ulascansenturk/weather-dashboard/internal/providers"
	"ulascansenturk/weather-dashboard/internal/service"
)

func main() {
	conf, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger

	if conf.OpenWeatherAPIKey == "" {
		logger.Warn().Msg("OPENWEATHER_API_KEY is not set, upstream requests will be rejected. Set it in the environment or the .env file")
	}

	ctx, mainCtxStop := context.WithCancel(context.Background())

	var lookupRepo lookuplog.Repository
	if conf.LookupLogEnabled() {
		db, dbErr := initializeDatabase(conf)
		if dbErr != nil {
			logger.Fatal().Err(dbErr).Msg("failed to initialize database")
		}
		lookupRepo = lookuplog.NewRepository(db)
	} else {
		logger.Info().Msg("DATABASE_HOST is not set, lookup log disabled")
	}

	weatherClient := providers.NewOpenWeatherClient(conf.OpenWeatherBaseURL, conf.OpenWeatherAPIKey, conf.UpstreamTimeout)
	weatherService := service.NewWeatherService(weatherClient, lookupRepo)

	handler := handlers.NewWeatherHandler(weatherService, conf.HTTPTimeout)

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handlers.NewRouter(handler, conf.StaticDir, logger),
		ReadHeaderTimeout: conf.HTTPTimeout,
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
		log.Fatal().Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&lookuplog.LookupRecord{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
