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
	"github.com/redis/go-redis/v9"

	confirmBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/confirm_booking"
	getQuoteHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_quote"
	getSlotOptionsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_slot_options"
	getWizardHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_wizard"
	goBackHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/go_back"
	resumeWizardHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/resume_wizard"
	saveEventOrderHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/save_event_order"
	startWizardHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/start_wizard"
	submitWizardEventHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/submit_wizard_event"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/draftstore"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	eventOrderRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/eventorder"
	paymentsClient "github.com/m04kA/SMC-ReservationService/internal/integrations/payments"
	sessionsService "github.com/m04kA/SMC-ReservationService/internal/service/sessions"
	confirmBookingUC "github.com/m04kA/SMC-ReservationService/internal/usecase/confirm_booking"
	getQuoteUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_quote"
	getSlotOptionsUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_slot_options"
	saveEventOrderUC "github.com/m04kA/SMC-ReservationService/internal/usecase/save_event_order"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
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

	log.Info("Starting SMC-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// При выключенных метриках обёртка работает как прозрачный прокси
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	if cfg.Metrics.Enabled {
		log.Info("Database metrics collection started")
	}

	// Подключаемся к Redis (общее хранилище черновиков)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	draftStore := draftstore.NewRedisStore(redisClient)

	// Инициализируем интеграционного клиента платежного сервиса
	paymentClient := paymentsClient.NewClient(
		cfg.PaymentService.URL,
		time.Duration(cfg.PaymentService.Timeout)*time.Second,
		log,
	)
	log.Info("Payment service client initialized (url=%s, timeout=%ds)",
		cfg.PaymentService.URL, cfg.PaymentService.Timeout)

	// Инициализируем репозитории и transaction manager
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	eventOrderRepository := eventOrderRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервис сессий мастера
	wizardSessions := sessionsService.NewService(domain.StandardWeek(), draftStore, log)

	// Инициализируем use cases
	getSlotOptionsUseCase := getSlotOptionsUC.NewUseCase(domain.StandardWeek(), log)
	getQuoteUseCase := getQuoteUC.NewUseCase(log)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		wizardSessions,
		bookingRepository,
		draftStore,
		paymentClient,
		txMgr,
		log,
	)
	saveEventOrderUseCase := saveEventOrderUC.NewUseCase(eventOrderRepository, log)

	// Инициализируем handlers
	startWizard := startWizardHandler.NewHandler(wizardSessions, log)
	getWizard := getWizardHandler.NewHandler(wizardSessions, log)
	submitWizardEvent := submitWizardEventHandler.NewHandler(wizardSessions, log)
	goBack := goBackHandler.NewHandler(wizardSessions, log)
	resumeWizard := resumeWizardHandler.NewHandler(wizardSessions, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	getSlotOptions := getSlotOptionsHandler.NewHandler(getSlotOptionsUseCase, log)
	getQuote := getQuoteHandler.NewHandler(getQuoteUseCase, log)
	saveEventOrder := saveEventOrderHandler.NewHandler(saveEventOrderUseCase, log)

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

	// --- Мастер бронирования ---
	// Старт сессии (с опциональным предвыбором площадки)
	api.HandleFunc("/wizard", startWizard.Handle).Methods(http.MethodPost)

	// Восстановление мастера из черновика (возврат от платежного сервиса)
	api.HandleFunc("/wizard/resume", resumeWizard.Handle).Methods(http.MethodPost)

	// Текущее состояние сессии
	api.HandleFunc("/wizard/{sessionId}", getWizard.Handle).Methods(http.MethodGet)

	// Событие мастера (выбор площадки, гостей, времени, контактов)
	api.HandleFunc("/wizard/{sessionId}/events", submitWizardEvent.Handle).Methods(http.MethodPost)

	// Навигация назад
	api.HandleFunc("/wizard/{sessionId}/back", goBack.Handle).Methods(http.MethodPost)

	// Подтверждение брони
	api.HandleFunc("/wizard/{sessionId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// --- Слоты и цены ---
	// Наборы опций временного интервала
	api.HandleFunc("/venues/{venueId}/slot-options", getSlotOptions.Handle).Methods(http.MethodGet)

	// Расчет стоимости
	api.HandleFunc("/venues/{venueId}/quote", getQuote.Handle).Methods(http.MethodGet)

	// --- Заказы мероприятий ---
	// Идемпотентное сохранение заказа
	api.HandleFunc("/event-orders", saveEventOrder.Handle).Methods(http.MethodPost)

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
