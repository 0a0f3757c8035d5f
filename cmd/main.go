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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminLoginHandler "github.com/MarkDidenkoHT/mesto-sili-booking/internal/api/handlers/admin_login"
	createBookingHandler "github.com/MarkDidenkoHT/mesto-sili-booking/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/MarkDidenkoHT/mesto-sili-booking/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/MarkDidenkoHT/mesto-sili-booking/internal/api/handlers/get_booking"
	getBusySlotsHandler "github.com/MarkDidenkoHT/mesto-sili-booking/internal/api/handlers/get_busy_slots"
	listBookingsHandler "github.com/MarkDidenkoHT/mesto-sili-booking/internal/api/handlers/list_bookings"
	updateBookingHandler "github.com/MarkDidenkoHT/mesto-sili-booking/internal/api/handlers/update_booking"
	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/api/middleware"
	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/config"
	bookingRepo "github.com/MarkDidenkoHT/mesto-sili-booking/internal/infra/storage/booking"
	telegramClient "github.com/MarkDidenkoHT/mesto-sili-booking/internal/integrations/telegram"
	authService "github.com/MarkDidenkoHT/mesto-sili-booking/internal/service/auth"
	bookingsService "github.com/MarkDidenkoHT/mesto-sili-booking/internal/service/bookings"
	createBookingUC "github.com/MarkDidenkoHT/mesto-sili-booking/internal/usecase/create_booking"
	updateBookingUC "github.com/MarkDidenkoHT/mesto-sili-booking/internal/usecase/update_booking"
	"github.com/MarkDidenkoHT/mesto-sili-booking/pkg/dbmetrics"
	"github.com/MarkDidenkoHT/mesto-sili-booking/pkg/logger"
	"github.com/MarkDidenkoHT/mesto-sili-booking/pkg/metrics"
	"github.com/MarkDidenkoHT/mesto-sili-booking/pkg/simpletxmanager"
	"github.com/MarkDidenkoHT/mesto-sili-booking/pkg/txmanager"
)

func main() {
	// Переменные окружения из .env (секреты для локальной разработки)
	_ = godotenv.Load()

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

	log.Info("Starting mesto-sili-booking...")
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

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем Telegram уведомления (если включены).
	// Ошибка инициализации не останавливает сервис: брони важнее уведомлений
	var notifier createBookingUC.BookingNotifier
	if cfg.Telegram.Enabled {
		tgClient, err := telegramClient.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID, log)
		if err != nil {
			log.Error("Failed to initialize Telegram client, notifications disabled: %v", err)
		} else {
			notifier = tgClient
			log.Info("Telegram notifications enabled (chat_id=%d)", cfg.Telegram.ChatID)
		}
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(
		cfg.Auth.AdminLogin,
		cfg.Auth.AdminPasswordHash,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		log,
	)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		notifier,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	adminCreateBooking := createBookingHandler.NewAdminHandler(createBookingUseCase, log)
	getBusySlots := getBusySlotsHandler.NewHandler(bookingSvc, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Ограничение частоты для публичной формы и логина
	var limit func(http.Handler) http.Handler
	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
		limit = rl.Middleware
		log.Info("Rate limiting enabled (%d req/min, burst %d)",
			cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	} else {
		limit = func(next http.Handler) http.Handler { return next }
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Заявка на бронирование
	api.Handle("/bookings", limit(http.HandlerFunc(createBooking.Handle))).Methods(http.MethodPost)

	// Занятые интервалы ресурса на дату
	api.HandleFunc("/bookings/busy", getBusySlots.Handle).Methods(http.MethodGet)

	// Вход администратора
	api.Handle("/admin/login", limit(http.HandlerFunc(adminLogin.Handle))).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer токен)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(authSvc))

	// Список бронирований с фильтрами
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Добавление брони администратором
	admin.HandleFunc("/bookings", adminCreateBooking.Handle).Methods(http.MethodPost)

	// Бронирование по ID
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Редактирование брони
	admin.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)

	// Удаление брони
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Статика фронтенда (если настроена)
	if cfg.Server.StaticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.Server.StaticDir)))
		log.Info("Serving static files from %s", cfg.Server.StaticDir)
	}

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
