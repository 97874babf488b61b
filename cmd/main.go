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

	bookSlotsHandler "github.com/m04kA/DORM-ReservationService/internal/api/handlers/book_slots"
	listResourcesHandler "github.com/m04kA/DORM-ReservationService/internal/api/handlers/list_resources"
	listSlotsHandler "github.com/m04kA/DORM-ReservationService/internal/api/handlers/list_slots"
	"github.com/m04kA/DORM-ReservationService/internal/api/middleware"
	"github.com/m04kA/DORM-ReservationService/internal/config"
	resourceRepo "github.com/m04kA/DORM-ReservationService/internal/infra/storage/resource"
	slotRepo "github.com/m04kA/DORM-ReservationService/internal/infra/storage/slot"
	resourcesService "github.com/m04kA/DORM-ReservationService/internal/service/resources"
	bookSlotsUC "github.com/m04kA/DORM-ReservationService/internal/usecase/book_slots"
	getBookedSlotsUC "github.com/m04kA/DORM-ReservationService/internal/usecase/get_booked_slots"
	"github.com/m04kA/DORM-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/DORM-ReservationService/pkg/logger"
	"github.com/m04kA/DORM-ReservationService/pkg/metrics"
	"github.com/m04kA/DORM-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/DORM-ReservationService/pkg/txmanager"
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

	log.Info("Starting DORM-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Опорная таймзона: в ней считаются границы дня для квот и слотов
	location, err := time.LoadLocation(cfg.Service.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Service.Timezone, err)
	}
	log.Info("Reference timezone: %s", cfg.Service.Timezone)

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

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		slotRepository     *slotRepo.Repository
		resourceRepository *resourceRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	lockTimeout := time.Duration(cfg.Booking.LockTimeoutMS) * time.Millisecond

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		resourceRepository = resourceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB, txmanager.WithLockTimeout(lockTimeout))
	} else {
		slotRepository = slotRepo.NewRepository(db)
		resourceRepository = resourceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db, simpletxmanager.WithLockTimeout(lockTimeout))
	}

	// Инициализируем сервисы
	resourcesSvc := resourcesService.NewService(
		resourceRepository,
		slotRepository,
		log,
	)

	// Инициализируем use cases
	bookSlotsUseCase := bookSlotsUC.NewUseCase(
		slotRepository,
		resourceRepository,
		txMgr,
		location,
		log,
	)

	getBookedSlotsUseCase := getBookedSlotsUC.NewUseCase(
		slotRepository,
		resourceRepository,
		location,
		log,
	)

	// Инициализируем handlers
	listResources := listResourcesHandler.NewHandler(resourcesSvc, log)
	listSlots := listSlotsHandler.NewHandler(getBookedSlotsUseCase, log)
	bookSlots := bookSlotsHandler.NewHandler(bookSlotsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Все маршруты требуют X-User-ID: сервис живёт за шлюзом общежития
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Список ресурсов категории с признаком занятости
	protected.HandleFunc("/{category}", listResources.Handle).Methods(http.MethodGet)

	// Занятые слоты ресурса на дату
	protected.HandleFunc("/{category}/{resourceId}/slots", listSlots.Handle).Methods(http.MethodGet)

	// Бронирование одного или двух смежных слотов
	protected.HandleFunc("/{category}/{resourceId}/book", bookSlots.Handle).Methods(http.MethodPost)

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
