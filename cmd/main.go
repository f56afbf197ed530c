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

	checkInAppointmentHandler "github.com/m04kA/WPS-DockService/internal/api/handlers/check_in_appointment"
	checkOutAppointmentHandler "github.com/m04kA/WPS-DockService/internal/api/handlers/check_out_appointment"
	createAppointmentHandler "github.com/m04kA/WPS-DockService/internal/api/handlers/create_appointment"
	createSupplierHandler "github.com/m04kA/WPS-DockService/internal/api/handlers/create_supplier"
	deleteAppointmentHandler "github.com/m04kA/WPS-DockService/internal/api/handlers/delete_appointment"
	deleteScheduleRuleHandler "github.com/m04kA/WPS-DockService/internal/api/handlers/delete_schedule_rule"
	deleteSupplierHandler "github.com/m04kA/WPS-DockService/internal/api/handlers/delete_supplier"
	getAppointmentHandler "github.com/m04kA/WPS-DockService/internal/api/handlers/get_appointment"
	getDaySlotsHandler "github.com/m04kA/WPS-DockService/internal/api/handlers/get_day_slots"
	getScheduleHandler "github.com/m04kA/WPS-DockService/internal/api/handlers/get_schedule"
	getSupplierAppointmentsHandler "github.com/m04kA/WPS-DockService/internal/api/handlers/get_supplier_appointments"
	getSuppliersHandler "github.com/m04kA/WPS-DockService/internal/api/handlers/get_suppliers"
	getWeekAppointmentsHandler "github.com/m04kA/WPS-DockService/internal/api/handlers/get_week_appointments"
	updateAppointmentHandler "github.com/m04kA/WPS-DockService/internal/api/handlers/update_appointment"
	updateSupplierHandler "github.com/m04kA/WPS-DockService/internal/api/handlers/update_supplier"
	upsertDateExceptionHandler "github.com/m04kA/WPS-DockService/internal/api/handlers/upsert_date_exception"
	upsertWeeklyRuleHandler "github.com/m04kA/WPS-DockService/internal/api/handlers/upsert_weekly_rule"
	"github.com/m04kA/WPS-DockService/internal/api/middleware"
	"github.com/m04kA/WPS-DockService/internal/config"
	appointmentRepo "github.com/m04kA/WPS-DockService/internal/infra/storage/appointment"
	scheduleRepo "github.com/m04kA/WPS-DockService/internal/infra/storage/schedule"
	supplierRepo "github.com/m04kA/WPS-DockService/internal/infra/storage/supplier"
	erpServiceClient "github.com/m04kA/WPS-DockService/internal/integrations/erpservice"
	appointmentsService "github.com/m04kA/WPS-DockService/internal/service/appointments"
	scheduleService "github.com/m04kA/WPS-DockService/internal/service/schedule"
	suppliersService "github.com/m04kA/WPS-DockService/internal/service/suppliers"
	createAppointmentUC "github.com/m04kA/WPS-DockService/internal/usecase/create_appointment"
	getDaySlotsUC "github.com/m04kA/WPS-DockService/internal/usecase/get_day_slots"
	updateAppointmentUC "github.com/m04kA/WPS-DockService/internal/usecase/update_appointment"
	"github.com/m04kA/WPS-DockService/migrations"
	"github.com/m04kA/WPS-DockService/pkg/dbmetrics"
	"github.com/m04kA/WPS-DockService/pkg/logger"
	"github.com/m04kA/WPS-DockService/pkg/metrics"
	"github.com/m04kA/WPS-DockService/pkg/simpletxmanager"
	"github.com/m04kA/WPS-DockService/pkg/txmanager"
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

	log.Info("Starting WPS-DockService...")
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

	// Применяем миграции
	if err := migrations.Up(db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Инициализируем клиента ERP (если интеграция включена)
	var erpNotifier checkInAppointmentHandler.ERPNotifier
	if cfg.ERPService.Enabled {
		erpNotifier = erpServiceClient.NewClient(
			cfg.ERPService.URL,
			time.Duration(cfg.ERPService.Timeout)*time.Second,
			log,
		)
		log.Info("ERP integration enabled (URL=%s timeout=%ds)", cfg.ERPService.URL, cfg.ERPService.Timeout)
	} else {
		log.Info("ERP integration disabled, check-in payloads will not be delivered")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		supplierRepository    *supplierRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		supplierRepository = supplierRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		supplierRepository = supplierRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		supplierRepository,
		log,
	)
	supplierSvc := suppliersService.NewService(
		supplierRepository,
		appointmentRepository,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		supplierRepository,
		scheduleRepository,
		txMgr,
		log,
	)

	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		txMgr,
		log,
	)

	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(
		scheduleRepository,
		appointmentRepository,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, cfg.Policy.EditScheduledOnly, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	checkInAppointment := checkInAppointmentHandler.NewHandler(appointmentSvc, erpNotifier, log)
	checkOutAppointment := checkOutAppointmentHandler.NewHandler(appointmentSvc, log)
	getWeekAppointments := getWeekAppointmentsHandler.NewHandler(appointmentSvc, log)
	getSupplierAppointments := getSupplierAppointmentsHandler.NewHandler(appointmentSvc, log)
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	createSupplier := createSupplierHandler.NewHandler(supplierSvc, log)
	updateSupplier := updateSupplierHandler.NewHandler(supplierSvc, log)
	deleteSupplier := deleteSupplierHandler.NewHandler(supplierSvc, log)
	getSuppliers := getSuppliersHandler.NewHandler(supplierSvc, log)
	upsertWeeklyRule := upsertWeeklyRuleHandler.NewHandler(scheduleSvc, log)
	upsertDateException := upsertDateExceptionHandler.NewHandler(scheduleSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	deleteScheduleRule := deleteScheduleRuleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Слоты дня с учётом правил расписания и занятости
	api.HandleFunc("/slots", getDaySlots.Handle).Methods(http.MethodGet)

	// Агендирования за неделю
	api.HandleFunc("/appointments", getWeekAppointments.Handle).Methods(http.MethodGet)

	// Агендирование по ID
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Поставщики
	api.HandleFunc("/suppliers", getSuppliers.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/suppliers/{supplierId}", getSuppliers.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/suppliers/{supplierId}/appointments", getSupplierAppointments.Handle).Methods(http.MethodGet)

	// Расписание доков
	api.HandleFunc("/schedule/weekly-rules", getSchedule.HandleWeeklyRules).Methods(http.MethodGet)
	api.HandleFunc("/schedule/date-exceptions", getSchedule.HandleDateExceptions).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Агендирования ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/appointments/{appointmentId}/check-in", checkInAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/check-out", checkOutAppointment.Handle).Methods(http.MethodPost)

	// --- Поставщики ---
	protected.HandleFunc("/suppliers", createSupplier.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/suppliers/{supplierId}", updateSupplier.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/suppliers/{supplierId}", deleteSupplier.Handle).Methods(http.MethodDelete)

	// --- Расписание доков ---
	protected.HandleFunc("/schedule/weekly-rules", upsertWeeklyRule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/schedule/weekly-rules/{ruleId}", deleteScheduleRule.HandleWeeklyRule).Methods(http.MethodDelete)
	protected.HandleFunc("/schedule/date-exceptions", upsertDateException.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/schedule/date-exceptions/{exceptionId}", deleteScheduleRule.HandleDateException).Methods(http.MethodDelete)

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
