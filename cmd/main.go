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

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/rafaelruch/agendapro-sub002/internal/api/handlers/cancel_appointment"
	checkAvailabilityHandler "github.com/rafaelruch/agendapro-sub002/internal/api/handlers/check_availability"
	createAppointmentHandler "github.com/rafaelruch/agendapro-sub002/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/rafaelruch/agendapro-sub002/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/rafaelruch/agendapro-sub002/internal/api/handlers/get_available_slots"
	getBusinessHoursHandler "github.com/rafaelruch/agendapro-sub002/internal/api/handlers/get_business_hours"
	listAppointmentsHandler "github.com/rafaelruch/agendapro-sub002/internal/api/handlers/list_appointments"
	listServicesHandler "github.com/rafaelruch/agendapro-sub002/internal/api/handlers/list_services"
	updateAppointmentHandler "github.com/rafaelruch/agendapro-sub002/internal/api/handlers/update_appointment"
	updateAppointmentStatusHandler "github.com/rafaelruch/agendapro-sub002/internal/api/handlers/update_appointment_status"
	updateBusinessHoursHandler "github.com/rafaelruch/agendapro-sub002/internal/api/handlers/update_business_hours"
	"github.com/rafaelruch/agendapro-sub002/internal/api/middleware"
	"github.com/rafaelruch/agendapro-sub002/internal/config"
	appointmentRepo "github.com/rafaelruch/agendapro-sub002/internal/infra/storage/appointment"
	businessHoursRepo "github.com/rafaelruch/agendapro-sub002/internal/infra/storage/businesshours"
	clientRepo "github.com/rafaelruch/agendapro-sub002/internal/infra/storage/client"
	professionalRepo "github.com/rafaelruch/agendapro-sub002/internal/infra/storage/professional"
	serviceRepo "github.com/rafaelruch/agendapro-sub002/internal/infra/storage/service"
	"github.com/rafaelruch/agendapro-sub002/internal/integrations/notifier"
	appointmentsService "github.com/rafaelruch/agendapro-sub002/internal/service/appointments"
	catalogService "github.com/rafaelruch/agendapro-sub002/internal/service/catalog"
	scheduleService "github.com/rafaelruch/agendapro-sub002/internal/service/schedule"
	checkAvailabilityUC "github.com/rafaelruch/agendapro-sub002/internal/usecase/check_availability"
	createAppointmentUC "github.com/rafaelruch/agendapro-sub002/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/rafaelruch/agendapro-sub002/internal/usecase/get_available_slots"
	updateAppointmentUC "github.com/rafaelruch/agendapro-sub002/internal/usecase/update_appointment"
	"github.com/rafaelruch/agendapro-sub002/pkg/dbmetrics"
	"github.com/rafaelruch/agendapro-sub002/pkg/logger"
	"github.com/rafaelruch/agendapro-sub002/pkg/metrics"
	"github.com/rafaelruch/agendapro-sub002/pkg/simpletxmanager"
	"github.com/rafaelruch/agendapro-sub002/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting AgendaPro scheduling service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
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

	notifierURL := ""
	if cfg.Notifier.Enabled {
		notifierURL = cfg.Notifier.URL
	}
	notifierClient := notifier.NewClient(
		notifierURL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	if notifierClient.Enabled() {
		log.Info("Webhook notifier initialized (url=%s timeout=%ds)", cfg.Notifier.URL, cfg.Notifier.Timeout)
	} else {
		log.Info("Webhook notifier disabled")
	}

	// Transaction manager surface shared by the booking use cases (which need
	// SERIALIZABLE check-then-insert) and the schedule service (plain tx).
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		dbExecutor dbmetrics.DBExecutor
		txMgr      TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
		dbExecutor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		dbExecutor = db
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	appointmentRepository := appointmentRepo.NewRepository(dbExecutor)
	businessHoursRepository := businessHoursRepo.NewRepository(dbExecutor)
	serviceRepository := serviceRepo.NewRepository(dbExecutor)
	professionalRepository := professionalRepo.NewRepository(dbExecutor)
	clientRepository := clientRepo.NewRepository(dbExecutor)

	appointmentsSvc := appointmentsService.NewService(appointmentRepository, notifierClient, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)
	scheduleSvc := scheduleService.NewService(businessHoursRepository, txMgr, log)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		businessHoursRepository,
		serviceRepository,
		professionalRepository,
		clientRepository,
		notifierClient,
		txMgr,
		cfg.Scheduling.AllowUnconfiguredHours,
		log,
	)
	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		appointmentRepository,
		businessHoursRepository,
		serviceRepository,
		professionalRepository,
		txMgr,
		cfg.Scheduling.AllowUnconfiguredHours,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		appointmentRepository,
		businessHoursRepository,
		serviceRepository,
		professionalRepository,
		cfg.Scheduling.AllowUnconfiguredHours,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		businessHoursRepository,
		serviceRepository,
		professionalRepository,
		cfg.Scheduling.AllowUnconfiguredHours,
		log,
	)

	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(scheduleSvc, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(scheduleSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Every business route is tenant-scoped via the X-Tenant-ID header,
	// including the read-only ones: slot listings differ per tenant.
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.TenantAuth(log))

	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", updateAppointment.Handle).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{id}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	api.HandleFunc("/availability/check", checkAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	api.HandleFunc("/business-hours", getBusinessHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/business-hours", updateBusinessHours.Handle).Methods(http.MethodPut)

	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Recovery outermost, then CORS for the browser-based admin panel.
	handler := gorillahandlers.RecoveryHandler(
		gorillahandlers.PrintRecoveryStack(true),
	)(r)
	handler = gorillahandlers.CORS(
		gorillahandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions,
		}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type", middleware.TenantHeader}),
	)(handler)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
