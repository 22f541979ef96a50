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

	createWorkingHoursHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/create_working_hours"
	getWorkingHoursHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_working_hours"
	listSweepsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/list_sweeps"
	listWorkingHoursHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/list_working_hours"
	refreshWindowHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/refresh_window"
	updateWorkingHoursHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/update_working_hours"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/config"
	sweepRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/sweep"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/backend"
	"github.com/m04kA/SMC-ScheduleService/internal/notify"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduler"
	"github.com/m04kA/SMC-ScheduleService/internal/service/maintainer"
	workingHoursService "github.com/m04kA/SMC-ScheduleService/internal/service/workinghours"
	createEntryUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_entry"
	refreshWindowUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/refresh_window"
	updateEntryUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/update_entry"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
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

	log.Info("Starting SMC-ScheduleService...")

	policy, err := cfg.Schedule.ParsedPolicy()
	if err != nil {
		log.Fatal("Invalid schedule policy: %v", err)
	}
	location, err := cfg.Schedule.Location()
	if err != nil {
		log.Fatal("Invalid schedule timezone: %v", err)
	}
	template, err := cfg.Schedule.TemplateSchedule()
	if err != nil {
		log.Fatal("Invalid schedule template: %v", err)
	}
	log.Info("Schedule: policy=%s, window_days=%d, timezone=%s", policy, cfg.Schedule.WindowDays, location)

	// Инициализируем метрики (если включены).
	// Интерфейсы заполняются только при включенных метриках, чтобы не передать typed nil.
	var (
		metricsCollector *metrics.Metrics
		backendObserver  backend.Observer
		sweepRecorder    maintainer.SweepRecorder
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		backendObserver = metricsCollector
		sweepRecorder = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Журнал прогонов в Postgres (опционально)
	var (
		db           *sql.DB
		journal      maintainer.SweepJournal
		journalList  listSweepsHandler.SweepJournal
		journalPrune scheduler.JournalPruner
	)
	if cfg.Database.Enabled {
		db, err = sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		repo := sweepRepo.NewRepository(db)
		journal = repo
		journalList = repo
		journalPrune = repo
	} else {
		log.Info("Database disabled, sweep journal is off")
	}

	// Клиент бэкенда салона
	backendClient := backend.NewClient(backend.Config{
		BaseURL: cfg.Backend.URL,
		Timeout: time.Duration(cfg.Backend.Timeout) * time.Second,
		RPS:     cfg.Backend.RPS,
		Burst:   cfg.Backend.Burst,
	}, log, backendObserver)
	log.Info("Backend client initialized (url=%s, timeout=%ds, rps=%.1f)", cfg.Backend.URL, cfg.Backend.Timeout, cfg.Backend.RPS)

	// Очередь detect-affected
	dispatcher := notify.NewDispatcher(
		backendClient,
		cfg.Notifier.QueueSize,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)

	// Инициализируем сервисы
	windowMaintainer := maintainer.NewService(
		maintainer.Settings{
			Policy:              policy,
			WindowDays:          cfg.Schedule.WindowDays,
			HistoryLookbackDays: cfg.Schedule.HistoryLookbackDays,
			Template:            template,
			BulkBackfill:        cfg.Schedule.BulkBackfill,
			Location:            location,
		},
		backendClient,
		dispatcher,
		journal,
		sweepRecorder,
		&maintainer.RealTimeProvider{},
		log,
	)
	windowView := workingHoursService.NewService(backendClient, windowMaintainer, log)

	// Инициализируем use cases
	refreshWindowUseCase := refreshWindowUC.NewUseCase(windowMaintainer, windowView, log)
	createEntryUseCase := createEntryUC.NewUseCase(backendClient, windowMaintainer, windowView, log)
	updateEntryUseCase := updateEntryUC.NewUseCase(backendClient, windowMaintainer, windowView, log)

	// Инициализируем handlers
	listWorkingHours := listWorkingHoursHandler.NewHandler(windowView, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(windowView, log)
	createWorkingHours := createWorkingHoursHandler.NewHandler(createEntryUseCase, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(updateEntryUseCase, log)
	refreshWindow := refreshWindowHandler.NewHandler(refreshWindowUseCase, log)
	listSweeps := listSweepsHandler.NewHandler(journalList, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// API prefix, все маршруты в разрезе тенанта
	api := r.PathPrefix("/api/v1/tenants/{tenantId}").Subrouter()
	api.Use(middleware.NewTenant(backendClient, middleware.DefaultTenantCacheTTL, log).Middleware)

	// Окно расписания и поиск по фильтрам
	api.HandleFunc("/working-hours", listWorkingHours.Handle).Methods(http.MethodGet)

	// Ручное добавление дня
	api.HandleFunc("/working-hours", createWorkingHours.Handle).Methods(http.MethodPost)

	// Обслуживание окна по активной политике
	api.HandleFunc("/working-hours/refresh", refreshWindow.Handle).Methods(http.MethodPost)

	// Получение и сохранение дня
	api.HandleFunc("/working-hours/{id}", getWorkingHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/working-hours/{id}", updateWorkingHours.Handle).Methods(http.MethodPut)

	// Журнал прогонов
	api.HandleFunc("/sweeps", listSweeps.Handle).Methods(http.MethodGet)

	// Ежедневное обновление окон
	var cronScheduler *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		cronScheduler, err = scheduler.New(scheduler.Config{
			Spec:             cfg.Scheduler.Spec,
			Tenants:          cfg.Scheduler.Tenants,
			RunOnStart:       cfg.Scheduler.RunOnStart,
			Location:         location,
			TenantTimeout:    time.Duration(cfg.Scheduler.TenantTimeout) * time.Second,
			JournalRetention: time.Duration(cfg.Database.JournalRetentionDays) * 24 * time.Hour,
		}, refreshWindowUseCase, journalPrune, log)
		if err != nil {
			log.Fatal("Failed to create scheduler: %v", err)
		}
		cronScheduler.Start()
		log.Info("Scheduler started (spec=%q, tenants=%d)", cfg.Scheduler.Spec, len(cfg.Scheduler.Tenants))
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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	// 1. Новые прогоны не запускаем
	if cronScheduler != nil {
		if err := cronScheduler.Stop(shutdownCtx); err != nil {
			log.Error("Scheduler forced to stop: %v", err)
		}
	}

	// 2. Дожидаемся текущих запросов
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// 3. Отправляем оставшиеся detect-affected
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.Error("Notifier queue not drained: %v", err)
	}

	log.Info("Server stopped gracefully")
}
