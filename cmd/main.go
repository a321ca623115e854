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

	cancelBookingHandler "github.com/NPaugust/Femida-sub000/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/NPaugust/Femida-sub000/internal/api/handlers/check_availability"
	completeBookingHandler "github.com/NPaugust/Femida-sub000/internal/api/handlers/complete_booking"
	createBookingHandler "github.com/NPaugust/Femida-sub000/internal/api/handlers/create_booking"
	getBookingHandler "github.com/NPaugust/Femida-sub000/internal/api/handlers/get_booking"
	getDisabledDatesHandler "github.com/NPaugust/Femida-sub000/internal/api/handlers/get_disabled_dates"
	getMovementsHandler "github.com/NPaugust/Femida-sub000/internal/api/handlers/get_movements"
	getRoomStatusHandler "github.com/NPaugust/Femida-sub000/internal/api/handlers/get_room_status"
	listAvailableRoomsHandler "github.com/NPaugust/Femida-sub000/internal/api/handlers/list_available_rooms"
	listBookingsHandler "github.com/NPaugust/Femida-sub000/internal/api/handlers/list_bookings"
	reportOccupancyHandler "github.com/NPaugust/Femida-sub000/internal/api/handlers/report_occupancy"
	updateBookingHandler "github.com/NPaugust/Femida-sub000/internal/api/handlers/update_booking"
	"github.com/NPaugust/Femida-sub000/internal/api/middleware"
	"github.com/NPaugust/Femida-sub000/internal/config"
	bookingRepo "github.com/NPaugust/Femida-sub000/internal/infra/storage/booking"
	roomRepo "github.com/NPaugust/Femida-sub000/internal/infra/storage/room"
	availabilityService "github.com/NPaugust/Femida-sub000/internal/service/availability"
	bookingsService "github.com/NPaugust/Femida-sub000/internal/service/bookings"
	createBookingUC "github.com/NPaugust/Femida-sub000/internal/usecase/create_booking"
	updateBookingUC "github.com/NPaugust/Femida-sub000/internal/usecase/update_booking"
	"github.com/NPaugust/Femida-sub000/pkg/dbmetrics"
	"github.com/NPaugust/Femida-sub000/pkg/logger"
	"github.com/NPaugust/Femida-sub000/pkg/metrics"
	"github.com/NPaugust/Femida-sub000/pkg/simpletxmanager"
	"github.com/NPaugust/Femida-sub000/pkg/txmanager"
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

	log.Info("Starting Femida booking service...")
	log.Info("Configuration loaded from config.toml")

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
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		roomRepository    *roomRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		roomRepository,
		bookingRepository,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		roomRepository,
		bookingRepository,
		availabilitySvc,
		txMgr,
		log,
	)

	updateBookingUseCase := updateBookingUC.NewUseCase(
		roomRepository,
		bookingRepository,
		availabilitySvc,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getRoomStatus := getRoomStatusHandler.NewHandler(availabilitySvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(availabilitySvc, log)
	listAvailableRooms := listAvailableRoomsHandler.NewHandler(availabilitySvc, log)
	getDisabledDates := getDisabledDatesHandler.NewHandler(availabilitySvc, log)
	reportOccupancy := reportOccupancyHandler.NewHandler(availabilitySvc, log)
	getMovements := getMovementsHandler.NewHandler(availabilitySvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Номера и доступность ---
	// Подбор свободных номеров на период
	api.HandleFunc("/rooms/available", listAvailableRooms.Handle).Methods(http.MethodGet)

	// Состояние номера на дату
	api.HandleFunc("/rooms/{id}/status", getRoomStatus.Handle).Methods(http.MethodGet)

	// Проверка доступности номера на период
	api.HandleFunc("/rooms/{id}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Занятые периоды для календаря номера
	api.HandleFunc("/rooms/{id}/disabled-dates", getDisabledDates.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// История бронирований с фильтрацией
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)

	// Изменение бронирования
	api.HandleFunc("/bookings/{id}", updateBooking.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	api.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// Завершение бронирования (выезд гостя)
	api.HandleFunc("/bookings/{id}/complete", completeBooking.Handle).Methods(http.MethodPost)

	// --- Отчеты ---
	// Снапшот занятости на дату
	api.HandleFunc("/reports/occupancy", reportOccupancy.Handle).Methods(http.MethodGet)

	// Заезды и выезды за период
	api.HandleFunc("/reports/movements", getMovements.Handle).Methods(http.MethodGet)

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
