package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partner-portal-service/internal/domain/repository"
	"partner-portal-service/internal/infrastructure/config"
	"partner-portal-service/internal/infrastructure/oauth"
	"partner-portal-service/internal/infrastructure/persistence"
	"partner-portal-service/internal/interface/handler"
	repo "partner-portal-service/internal/interface/repository"
	"partner-portal-service/internal/usecase"
	"partner-portal-service/pkg/logger"
	"partner-portal-service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Partner Portal Service", "version", cfg.AppVersion, "dbDriver", cfg.Database.Driver)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.NewMetrics("partner_portal", prometheus.DefaultRegisterer)

	// Set up the booking store
	bookingRepo, closeStore, err := openBookingStore(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to open booking store", "error", err)
	}
	defer closeStore()

	// Set up the hotel API client
	clientCfg := repo.HotelClientConfig{
		BaseURL:         cfg.Upstream.BaseURL,
		Timeout:         cfg.Upstream.Timeout,
		StrictResponses: cfg.Upstream.StrictResponses,
	}
	if cfg.Upstream.OAuth.Enabled() {
		log.Info("Using client credentials for the hotel API", "tokenURL", cfg.Upstream.OAuth.TokenURL)
		clientCfg.Tokens = oauth.NewUpstreamOAuth(cfg.Upstream.OAuth, log).GetTokenSource(ctx)
	}
	hotelClient := repo.NewHotelClient(clientCfg, log.With("component", "hotel-client"), m)

	defaults := usecase.HeaderDefaults{
		ChannelCode:            cfg.Upstream.ChannelCode,
		AppKey:                 cfg.Upstream.AppKey,
		OriginatingApplication: cfg.Upstream.OriginatingApplication,
		ExternalSystem:         cfg.Upstream.ExternalSystem,
	}

	// Set up services
	bookingService := usecase.NewBookingService(bookingRepo, log.With("component", "bookings"), m)
	hotelHandler := handler.NewHotelHandler(
		usecase.NewHotelAvailabilityService(repo.NewHotelAvailabilityAPI(hotelClient), defaults),
		usecase.NewHotelShopService(repo.NewHotelShopAPI(hotelClient), defaults),
		usecase.NewHotelContentService(repo.NewHotelContentAPI(hotelClient), defaults),
		usecase.NewHotelInventoryService(repo.NewHotelInventoryAPI(hotelClient), defaults),
		usecase.NewHotelReservationsService(repo.NewHotelReservationsAPI(hotelClient), defaults),
		log,
	)

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(
		handler.RouterConfig{CORSOrigins: cfg.CORSOrigins, Gatherer: prometheus.DefaultGatherer},
		handler.NewBookingHandler(bookingService, log),
		hotelHandler,
		log,
		m,
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port, "upstream", cfg.Upstream.BaseURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	log.Info("Partner Portal Service stopped")
}

// openBookingStore selects the booking repository for the configured driver.
// The returned func releases the underlying connection.
func openBookingStore(ctx context.Context, cfg config.DatabaseConfig, log logger.Logger) (repository.BookingRepository, func(), error) {
	if cfg.Driver == config.DriverMongoDB {
		log.Info("Connecting to MongoDB", "database", cfg.MongoDB)
		client, err := persistence.NewMongoClient(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error("MongoDB disconnect error", "error", err)
			}
		}

		bookingRepo, err := repo.NewMongoBookingRepository(ctx, persistence.GetDatabase(client, cfg.MongoDB))
		if err != nil {
			closeFn()
			return nil, nil, err
		}
		return bookingRepo, closeFn, nil
	}

	log.Info("Opening SQL database", "driver", cfg.Driver)
	db, err := persistence.OpenGorm(cfg)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return repo.NewGormBookingRepository(db), closeFn, nil
}
