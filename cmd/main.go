package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminLoginHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/admin_login"
	createBookingHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/create_booking"
	createVenueHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/create_venue"
	deleteBookingHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/delete_booking"
	deleteVenueHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/delete_venue"
	getAvailabilityHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_booking"
	getVenueHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_venue"
	listBookingsHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/list_bookings"
	listVenuesHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/list_venues"
	loginUserHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/login_user"
	registerUserHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/register_user"
	updateBookingStatusHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/update_booking_status"
	updateVenueHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/update_venue"
	"github.com/m04kA/SMC-VenueBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBookingService/internal/config"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/booking"
	userRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/user"
	venueRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/venue"
	bookingsService "github.com/m04kA/SMC-VenueBookingService/internal/service/bookings"
	usersService "github.com/m04kA/SMC-VenueBookingService/internal/service/users"
	venuesService "github.com/m04kA/SMC-VenueBookingService/internal/service/venues"
	createBookingUC "github.com/m04kA/SMC-VenueBookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/SMC-VenueBookingService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-VenueBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueBookingService/pkg/logger"
	"github.com/m04kA/SMC-VenueBookingService/pkg/metrics"
	"github.com/m04kA/SMC-VenueBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-VenueBookingService/pkg/txmanager"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-VenueBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Рабочие часы площадок из конфигурации
	businessOpen, err := types.NewTimeStringFromString(cfg.BusinessHours.Open)
	if err != nil {
		log.Fatal("Invalid business_hours.open: %v", err)
	}
	businessClose, err := types.NewTimeStringFromString(cfg.BusinessHours.Close)
	if err != nil {
		log.Fatal("Invalid business_hours.close: %v", err)
	}
	businessHours := domain.TimeInterval{Start: businessOpen, End: businessClose}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database")

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		venueRepository   *venueRepo.Repository
		userRepository    *userRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		venueRepository = venueRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		venueRepository = venueRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	venueSvc := venuesService.NewService(venueRepository, log)
	userSvc := usersService.NewService(
		userRepository,
		cfg.Auth.Secret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		venueRepository,
		txMgr,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		venueRepository,
		businessHours,
		cfg.BusinessHours.SlotDurationMinutes,
		log,
	)

	// Инициализируем handlers
	registerUser := registerUserHandler.NewHandler(userSvc, log)
	loginUser := loginUserHandler.NewHandler(userSvc, log)
	adminLogin := adminLoginHandler.NewHandler(userSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	listVenues := listVenuesHandler.NewHandler(venueSvc, log)
	getVenue := getVenueHandler.NewHandler(venueSvc, log)
	createVenue := createVenueHandler.NewHandler(venueSvc, log)
	updateVenue := updateVenueHandler.NewHandler(venueSvc, log)
	deleteVenue := deleteVenueHandler.NewHandler(venueSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация и вход
	api.HandleFunc("/auth/register", registerUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", loginUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// Каталог площадок
	api.HandleFunc("/venues", listVenues.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}", getVenue.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer JWT)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.Secret, log))

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Доступность площадки на дату
	protected.HandleFunc("/venues/{venueId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// --- Управление площадками (только админ, проверка в сервисе) ---
	protected.HandleFunc("/venues", createVenue.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/venues/{venueId}", updateVenue.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/venues/{venueId}", deleteVenue.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
