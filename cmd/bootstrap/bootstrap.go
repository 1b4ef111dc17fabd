package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lotfi-dotcom/artztTerminapp/config"
	deliveryHttp "github.com/lotfi-dotcom/artztTerminapp/internal/delivery/http"
	"github.com/lotfi-dotcom/artztTerminapp/internal/delivery/http/handler"
	"github.com/lotfi-dotcom/artztTerminapp/internal/delivery/http/middleware"
	domainRepo "github.com/lotfi-dotcom/artztTerminapp/internal/domain/repository"
	"github.com/lotfi-dotcom/artztTerminapp/internal/infrastructure/cache"
	"github.com/lotfi-dotcom/artztTerminapp/internal/infrastructure/clipboard"
	"github.com/lotfi-dotcom/artztTerminapp/internal/infrastructure/database"
	"github.com/lotfi-dotcom/artztTerminapp/internal/infrastructure/metrics"
	"github.com/lotfi-dotcom/artztTerminapp/internal/repository"
	"github.com/lotfi-dotcom/artztTerminapp/internal/service"
	"github.com/lotfi-dotcom/artztTerminapp/internal/usecase"
	"github.com/lotfi-dotcom/artztTerminapp/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Dashboard   usecase.DashboardUsecase
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log := setupLogger(cfg.App.LogLevel)
	app.Log = log
	log.Info("Configuration loaded successfully")

	slots, err := app.openSlotStore()
	if err != nil {
		return nil, err
	}

	server, err := app.initializeServer(slots)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
		log.Warnf("Unknown log level %q, falling back to info", level)
	}
	log.SetLevel(parsed)
	return log
}

// openSlotStore connects the backend selected by STORAGE_DRIVER.
func (app *App) openSlotStore() (domainRepo.SlotStore, error) {
	cfg := app.Config

	switch cfg.Storage.Driver {
	case config.StorageDriverRedis:
		redisClient, err := cache.NewRedisClient(cfg.Redis, app.Log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		return repository.NewRedisSlotStore(redisClient), nil

	case config.StorageDriverPostgres:
		db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env, app.Log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		return repository.NewGormSlotStore(db), nil

	case config.StorageDriverMemory:
		app.Log.Warn("Using in-memory storage, appointments are lost on restart")
		return repository.NewMemorySlotStore(), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer(slots domainRepo.SlotStore) (*http.Server, error) {
	cfg := app.Config
	log := app.Log

	registry := prometheus.NewRegistry()
	bookingMetrics := metrics.NewBookingMetrics(registry)

	customValidator := validator.NewValidator()

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository(slots, cfg.Storage.Key, log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := appointmentRepo.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	// Initialize services
	selection := service.NewSelectionService(doctorRepo, cfg.Booking.DoctorLookupDelay, log, bookingMetrics)
	confirmation := service.NewConfirmationService(cfg.Booking.ConfirmationTTL, log)
	share := service.NewShareService(cfg.App.BaseURL, clipboard.NewSystemClipboard(), log, bookingMetrics)

	// Initialize usecases
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, doctorRepo, confirmation, share, bookingMetrics)
	dashboardUsecase := usecase.NewDashboardUsecase(log, appointmentUsecase, appointmentRepo, doctorRepo, selection, confirmation)
	app.Dashboard = dashboardUsecase

	// Initialize handlers
	pageHandler, err := handler.NewPageHandler(dashboardUsecase, log)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)

	// Initialize middleware
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)

	// Initialize router
	router := deliveryHttp.NewRouter(pageHandler, appointmentHandler, doctorHandler, loggingMiddleware, corsMiddleware, registry)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s, storage: %s", app.Config.App.Env, app.Config.Storage.Driver)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close stops pending timers and closes the storage connections.
func (app *App) Close() {
	if app.Dashboard != nil {
		app.Dashboard.Close()
	}

	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
