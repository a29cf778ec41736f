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

	bookingActionHandler "github.com/CsIsLab17/smart-lab-booking/internal/api/handlers/booking_action"
	dashboardHandler "github.com/CsIsLab17/smart-lab-booking/internal/api/handlers/dashboard"
	getBookedSlotsHandler "github.com/CsIsLab17/smart-lab-booking/internal/api/handlers/get_booked_slots"
	getEquipmentAvailabilityHandler "github.com/CsIsLab17/smart-lab-booking/internal/api/handlers/get_equipment_availability"
	submitBookingHandler "github.com/CsIsLab17/smart-lab-booking/internal/api/handlers/submit_booking"
	submitEquipmentBookingHandler "github.com/CsIsLab17/smart-lab-booking/internal/api/handlers/submit_equipment_booking"
	"github.com/CsIsLab17/smart-lab-booking/internal/api/handlers"
	"github.com/CsIsLab17/smart-lab-booking/internal/api/middleware"
	"github.com/CsIsLab17/smart-lab-booking/internal/config"
	bookingRepo "github.com/CsIsLab17/smart-lab-booking/internal/infra/storage/booking"
	equipmentRepo "github.com/CsIsLab17/smart-lab-booking/internal/infra/storage/equipment"
	"github.com/CsIsLab17/smart-lab-booking/internal/notify"
	dashboardService "github.com/CsIsLab17/smart-lab-booking/internal/service/dashboard"
	bookingActionUC "github.com/CsIsLab17/smart-lab-booking/internal/usecase/booking_action"
	getBookedSlotsUC "github.com/CsIsLab17/smart-lab-booking/internal/usecase/get_booked_slots"
	getEquipmentAvailabilityUC "github.com/CsIsLab17/smart-lab-booking/internal/usecase/get_equipment_availability"
	submitBookingUC "github.com/CsIsLab17/smart-lab-booking/internal/usecase/submit_booking"
	submitEquipmentBookingUC "github.com/CsIsLab17/smart-lab-booking/internal/usecase/submit_equipment_booking"
	"github.com/CsIsLab17/smart-lab-booking/pkg/dbmetrics"
	"github.com/CsIsLab17/smart-lab-booking/pkg/logger"
	"github.com/CsIsLab17/smart-lab-booking/pkg/metrics"
	"github.com/CsIsLab17/smart-lab-booking/pkg/simpletxmanager"
	"github.com/CsIsLab17/smart-lab-booking/pkg/txmanager"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting smart-lab-booking...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Configure the connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Verify the connection
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Outgoing mail: fall back to a no-op mailer when SMTP is not configured
	// so local runs work without a mail server.
	var mailer notify.Mailer
	if cfg.SMTP.Host != "" {
		mailer = notify.NewSMTPMailer(cfg.SMTP)
		log.Info("SMTP mailer initialized (host=%s, from=%s)", cfg.SMTP.Host, cfg.SMTP.From)
	} else {
		mailer = notify.NoopMailer{}
		log.Warn("SMTP host not configured, outgoing email disabled")
	}
	notifier := notify.NewNotifier(mailer, cfg.App.BaseURL, cfg.SMTP.LabHeadEmail, log)

	// Initialize repositories (with or without metrics)
	var (
		bookingRepository   *bookingRepo.Repository
		equipmentRepository *equipmentRepo.Repository
	)

	// Transaction manager interface shared by the use cases.
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		equipmentRepository = equipmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		equipmentRepository = equipmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Initialize services
	dashboardSvc := dashboardService.NewService(bookingRepository, equipmentRepository, log)

	// Initialize use cases
	getBookedSlotsUseCase := getBookedSlotsUC.NewUseCase(bookingRepository, log)
	getEquipmentAvailabilityUseCase := getEquipmentAvailabilityUC.NewUseCase(equipmentRepository, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(bookingRepository, notifier, txMgr, log)
	submitEquipmentBookingUseCase := submitEquipmentBookingUC.NewUseCase(equipmentRepository, notifier, txMgr, log)
	bookingActionUseCase := bookingActionUC.NewUseCase(bookingRepository, equipmentRepository, notifier, txMgr, log)

	// Initialize handlers
	getBookedSlots := getBookedSlotsHandler.NewHandler(getBookedSlotsUseCase, log)
	getEquipmentAvailability := getEquipmentAvailabilityHandler.NewHandler(getEquipmentAvailabilityUseCase, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	submitEquipmentBooking := submitEquipmentBookingHandler.NewHandler(submitEquipmentBookingUseCase, log)
	bookingAction := bookingActionHandler.NewHandler(bookingActionUseCase, log)
	dashboard := dashboardHandler.NewHandler(dashboardSvc, log)

	// Configure the router
	r := mux.NewRouter()
	r.Use(middleware.CORS)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondNotFound(w, "unknown endpoint")
	})

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Booking form API
	r.HandleFunc("/api/getBookedSlots", getBookedSlots.Handle).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/getEquipmentAvailability", getEquipmentAvailability.Handle).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/submitBooking", submitBooking.Handle).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/submitEquipmentBooking", submitEquipmentBooking.Handle).Methods(http.MethodPost, http.MethodOptions)

	// Admin direct entry, bypasses the approval email
	r.HandleFunc("/api/admin_lab_booking", submitBooking.HandleAdmin).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/admin_equipment_booking", submitEquipmentBooking.HandleAdmin).Methods(http.MethodPost, http.MethodOptions)

	// Dashboard feeds
	r.HandleFunc("/api/getDashboardData", dashboard.HandleBookings).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/getEquipmentDashboardData", dashboard.HandleLoans).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/getDashboardSummary", dashboard.HandleSummary).Methods(http.MethodGet, http.MethodOptions)

	// Action links opened from emails and QR codes
	r.HandleFunc("/approve", bookingAction.HandleApprove).Methods(http.MethodGet)
	r.HandleFunc("/reject", bookingAction.HandleReject).Methods(http.MethodGet)
	r.HandleFunc("/checkin", bookingAction.HandleCheckIn).Methods(http.MethodGet)
	r.HandleFunc("/checkout", bookingAction.HandleCheckOut).Methods(http.MethodGet)

	// Create the HTTP server
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

	// Wait for a termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Stop connection pool metrics collection
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
