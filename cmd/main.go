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

	cancelBookingHandler "github.com/m04kA/PT-ScheduleService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/PT-ScheduleService/internal/api/handlers/create_booking"
	createPaymentHandler "github.com/m04kA/PT-ScheduleService/internal/api/handlers/create_payment"
	deletePackageHandler "github.com/m04kA/PT-ScheduleService/internal/api/handlers/delete_package"
	deletePaymentHandler "github.com/m04kA/PT-ScheduleService/internal/api/handlers/delete_payment"
	getActivePackageHandler "github.com/m04kA/PT-ScheduleService/internal/api/handlers/get_active_package"
	getClientBookingsHandler "github.com/m04kA/PT-ScheduleService/internal/api/handlers/get_client_bookings"
	getSlotHandler "github.com/m04kA/PT-ScheduleService/internal/api/handlers/get_slot"
	getWeekHandler "github.com/m04kA/PT-ScheduleService/internal/api/handlers/get_week"
	listClientsHandler "github.com/m04kA/PT-ScheduleService/internal/api/handlers/list_clients"
	listPaymentsHandler "github.com/m04kA/PT-ScheduleService/internal/api/handlers/list_payments"
	packageSessionsHandler "github.com/m04kA/PT-ScheduleService/internal/api/handlers/package_sessions"
	purchasePackageHandler "github.com/m04kA/PT-ScheduleService/internal/api/handlers/purchase_package"
	removeClientHandler "github.com/m04kA/PT-ScheduleService/internal/api/handlers/remove_client"
	"github.com/m04kA/PT-ScheduleService/internal/api/middleware"
	"github.com/m04kA/PT-ScheduleService/internal/config"
	"github.com/m04kA/PT-ScheduleService/internal/domain"
	bookingRepo "github.com/m04kA/PT-ScheduleService/internal/infra/storage/booking"
	packagesRepo "github.com/m04kA/PT-ScheduleService/internal/infra/storage/packages"
	paymentRepo "github.com/m04kA/PT-ScheduleService/internal/infra/storage/payment"
	ledgerService "github.com/m04kA/PT-ScheduleService/internal/service/ledger"
	paymentsService "github.com/m04kA/PT-ScheduleService/internal/service/payments"
	scheduleService "github.com/m04kA/PT-ScheduleService/internal/service/schedule"
	cancelBookingUC "github.com/m04kA/PT-ScheduleService/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/PT-ScheduleService/internal/usecase/create_booking"
	"github.com/m04kA/PT-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/PT-ScheduleService/pkg/logger"
	"github.com/m04kA/PT-ScheduleService/pkg/metrics"
	"github.com/m04kA/PT-ScheduleService/pkg/simpletxmanager"
	"github.com/m04kA/PT-ScheduleService/pkg/txmanager"
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

	log.Info("Starting PT-ScheduleService...")
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

	// Сетка расписания из конфигурации
	grid := domain.ScheduleGrid{
		DayStartHour:         cfg.Schedule.DayStartHour,
		DayEndHour:           cfg.Schedule.DayEndHour,
		SecondaryOffsetHours: cfg.Schedule.SecondaryOffsetHours,
	}

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		packageRepository *packagesRepo.Repository
		payRepository     *paymentRepo.Repository
		txMgr             TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		packageRepository = packagesRepo.NewRepository(wrappedDB)
		payRepository = paymentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		packageRepository = packagesRepo.NewRepository(db)
		payRepository = paymentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	ledgerSvc := ledgerService.NewService(
		packageRepository,
		bookingRepository,
		cfg.Schedule.PackageSizes,
		log,
	)
	scheduleSvc := scheduleService.NewService(bookingRepository, grid, log)
	paymentsSvc := paymentsService.NewService(payRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		packageRepository,
		txMgr,
		grid,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		packageRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getWeek := getWeekHandler.NewHandler(scheduleSvc, log)
	getSlot := getSlotHandler.NewHandler(scheduleSvc, log)
	purchasePackage := purchasePackageHandler.NewHandler(ledgerSvc, log)
	deletePackage := deletePackageHandler.NewHandler(ledgerSvc, log)
	packageSessions := packageSessionsHandler.NewHandler(ledgerSvc, log)
	listClients := listClientsHandler.NewHandler(ledgerSvc, log)
	getActivePackage := getActivePackageHandler.NewHandler(ledgerSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(scheduleSvc, log)
	removeClient := removeClientHandler.NewHandler(ledgerSvc, log)
	createPayment := createPaymentHandler.NewHandler(paymentsSvc, log)
	listPayments := listPaymentsHandler.NewHandler(paymentsSvc, log)
	deletePayment := deletePaymentHandler.NewHandler(paymentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Расписание ---
	api.HandleFunc("/schedule/week", getWeek.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/slot", getSlot.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Пакеты тренировок ---
	api.HandleFunc("/packages", purchasePackage.Handle).Methods(http.MethodPost)
	api.HandleFunc("/packages/{packageId}", deletePackage.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/packages/{packageId}/sessions", packageSessions.Handle).Methods(http.MethodGet)

	// --- Клиенты ---
	api.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientName}/active-package", getActivePackage.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientName}/bookings", getClientBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientName}", removeClient.Handle).Methods(http.MethodDelete)

	// --- Платежи ---
	api.HandleFunc("/payments", createPayment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/payments", listPayments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/payments/{paymentId}", deletePayment.Handle).Methods(http.MethodDelete)

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

	log.Info("Server exited")
}
