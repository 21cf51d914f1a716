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

	changeBookingStatusHandler "github.com/m0rzh/HMS-BookingService/internal/api/handlers/change_booking_status"
	createBookingHandler "github.com/m0rzh/HMS-BookingService/internal/api/handlers/create_booking"
	createChargeHandler "github.com/m0rzh/HMS-BookingService/internal/api/handlers/create_charge"
	createDailyCloseHandler "github.com/m0rzh/HMS-BookingService/internal/api/handlers/create_daily_close"
	createPaymentHandler "github.com/m0rzh/HMS-BookingService/internal/api/handlers/create_payment"
	deleteBookingHandler "github.com/m0rzh/HMS-BookingService/internal/api/handlers/delete_booking"
	deleteChargeHandler "github.com/m0rzh/HMS-BookingService/internal/api/handlers/delete_charge"
	deletePaymentHandler "github.com/m0rzh/HMS-BookingService/internal/api/handlers/delete_payment"
	getBookingHandler "github.com/m0rzh/HMS-BookingService/internal/api/handlers/get_booking"
	getBookingDueHandler "github.com/m0rzh/HMS-BookingService/internal/api/handlers/get_booking_due"
	getDailyCloseHandler "github.com/m0rzh/HMS-BookingService/internal/api/handlers/get_daily_close"
	getPlanningHandler "github.com/m0rzh/HMS-BookingService/internal/api/handlers/get_planning"
	listChargesHandler "github.com/m0rzh/HMS-BookingService/internal/api/handlers/list_charges"
	listDailyClosesHandler "github.com/m0rzh/HMS-BookingService/internal/api/handlers/list_daily_closes"
	listPaymentsHandler "github.com/m0rzh/HMS-BookingService/internal/api/handlers/list_payments"
	listRoomsHandler "github.com/m0rzh/HMS-BookingService/internal/api/handlers/list_rooms"
	moveBookingHandler "github.com/m0rzh/HMS-BookingService/internal/api/handlers/move_booking"
	previewDailyCloseHandler "github.com/m0rzh/HMS-BookingService/internal/api/handlers/preview_daily_close"
	updateBookingHandler "github.com/m0rzh/HMS-BookingService/internal/api/handlers/update_booking"
	updateChargeHandler "github.com/m0rzh/HMS-BookingService/internal/api/handlers/update_charge"
	updatePaymentHandler "github.com/m0rzh/HMS-BookingService/internal/api/handlers/update_payment"
	"github.com/m0rzh/HMS-BookingService/internal/api/middleware"
	"github.com/m0rzh/HMS-BookingService/internal/config"
	bookingRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/booking"
	chargeRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/charge"
	dailycloseRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/dailyclose"
	hotelRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/hotel"
	paymentRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/payment"
	roomRepo "github.com/m0rzh/HMS-BookingService/internal/infra/storage/room"
	guestStoreClient "github.com/m0rzh/HMS-BookingService/internal/integrations/gueststore"
	billingService "github.com/m0rzh/HMS-BookingService/internal/service/billing"
	bookingsService "github.com/m0rzh/HMS-BookingService/internal/service/bookings"
	chargesService "github.com/m0rzh/HMS-BookingService/internal/service/charges"
	paymentsService "github.com/m0rzh/HMS-BookingService/internal/service/payments"
	changeBookingStatusUC "github.com/m0rzh/HMS-BookingService/internal/usecase/change_booking_status"
	createBookingUC "github.com/m0rzh/HMS-BookingService/internal/usecase/create_booking"
	createDailyCloseUC "github.com/m0rzh/HMS-BookingService/internal/usecase/create_daily_close"
	moveBookingUC "github.com/m0rzh/HMS-BookingService/internal/usecase/move_booking"
	recordPaymentUC "github.com/m0rzh/HMS-BookingService/internal/usecase/record_payment"
	updateBookingUC "github.com/m0rzh/HMS-BookingService/internal/usecase/update_booking"
	updatePaymentUC "github.com/m0rzh/HMS-BookingService/internal/usecase/update_payment"
	"github.com/m0rzh/HMS-BookingService/pkg/auth"
	"github.com/m0rzh/HMS-BookingService/pkg/dbmetrics"
	"github.com/m0rzh/HMS-BookingService/pkg/logger"
	"github.com/m0rzh/HMS-BookingService/pkg/metrics"
	"github.com/m0rzh/HMS-BookingService/pkg/simpletxmanager"
	"github.com/m0rzh/HMS-BookingService/pkg/txmanager"
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

	log.Info("Starting HMS-BookingService...")

	// Метрики создаем всегда, endpoint выставляем только если включены
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	stopMetricsCh := make(chan struct{})

	// Подключаемся к базе данных
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

	// Клиент справочника гостей
	guestClient := guestStoreClient.NewClient(
		cfg.GuestService.URL,
		time.Duration(cfg.GuestService.Timeout)*time.Second,
		log,
	)
	log.Info("Guest store client initialized (url=%s, timeout=%ds)",
		cfg.GuestService.URL, cfg.GuestService.Timeout)

	// JWT сервис
	authService := auth.NewService(
		cfg.Auth.JWTSecret,
		cfg.Auth.Issuer,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
	)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var (
		txMgr             TxManager
		bookingRepository *bookingRepo.Repository
		roomRepository    *roomRepo.Repository
		chargeRepository  *chargeRepo.Repository
		paymentRepository *paymentRepo.Repository
		hotelRepository   *hotelRepo.Repository
		closeRepository   *dailycloseRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		chargeRepository = chargeRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		hotelRepository = hotelRepo.NewRepository(wrappedDB)
		closeRepository = dailycloseRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		chargeRepository = chargeRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		hotelRepository = hotelRepo.NewRepository(db)
		closeRepository = dailycloseRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, roomRepository, txMgr, log)
	chargeSvc := chargesService.NewService(chargeRepository, bookingRepository, log)
	paymentSvc := paymentsService.NewService(paymentRepository, bookingRepository, log)
	billingSvc := billingService.NewService(
		bookingRepository,
		chargeRepository,
		paymentRepository,
		hotelRepository,
		closeRepository,
		log,
	)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository, roomRepository, guestClient, txMgr, metricsCollector, log)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository, roomRepository, txMgr, log)
	changeStatusUseCase := changeBookingStatusUC.NewUseCase(
		bookingRepository, roomRepository, chargeRepository, paymentRepository, txMgr, metricsCollector, log)
	moveBookingUseCase := moveBookingUC.NewUseCase(
		bookingRepository, roomRepository, txMgr, metricsCollector, log)
	recordPaymentUseCase := recordPaymentUC.NewUseCase(
		bookingRepository, chargeRepository, paymentRepository, txMgr, metricsCollector, log)
	updatePaymentUseCase := updatePaymentUC.NewUseCase(
		bookingRepository, chargeRepository, paymentRepository, txMgr, log)
	createDailyCloseUseCase := createDailyCloseUC.NewUseCase(
		hotelRepository, paymentRepository, closeRepository, txMgr, metricsCollector, log)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	changeStatus := changeBookingStatusHandler.NewHandler(changeStatusUseCase, log)
	moveBooking := moveBookingHandler.NewHandler(moveBookingUseCase, log)
	getBookingDue := getBookingDueHandler.NewHandler(billingSvc, log)
	getPlanning := getPlanningHandler.NewHandler(bookingSvc, log)
	listRooms := listRoomsHandler.NewHandler(bookingSvc, log)
	createCharge := createChargeHandler.NewHandler(chargeSvc, log)
	listCharges := listChargesHandler.NewHandler(chargeSvc, log)
	updateCharge := updateChargeHandler.NewHandler(chargeSvc, log)
	deleteCharge := deleteChargeHandler.NewHandler(chargeSvc, log)
	createPayment := createPaymentHandler.NewHandler(recordPaymentUseCase, log)
	listPayments := listPaymentsHandler.NewHandler(paymentSvc, log)
	updatePayment := updatePaymentHandler.NewHandler(updatePaymentUseCase, log)
	deletePayment := deletePaymentHandler.NewHandler(paymentSvc, log)
	createDailyClose := createDailyCloseHandler.NewHandler(createDailyCloseUseCase, log)
	previewDailyClose := previewDailyCloseHandler.NewHandler(billingSvc, log)
	getDailyClose := getDailyCloseHandler.NewHandler(billingSvc, log)
	listDailyCloses := listDailyClosesHandler.NewHandler(billingSvc, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check (публичный)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// Все API endpoints за JWT: hotelID берется только из токена
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(authService, log))

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/bookings/{bookingId}/status", changeStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/move-room", moveBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/due", getBookingDue.Handle).Methods(http.MethodGet)

	// --- Шахматка и комнаты ---
	api.HandleFunc("/planning", getPlanning.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)

	// --- Начисления ---
	api.HandleFunc("/charges", createCharge.Handle).Methods(http.MethodPost)
	api.HandleFunc("/charges", listCharges.Handle).Methods(http.MethodGet)
	api.HandleFunc("/charges/{chargeId}", updateCharge.Handle).Methods(http.MethodPut)
	api.HandleFunc("/charges/{chargeId}", deleteCharge.Handle).Methods(http.MethodDelete)

	// --- Платежи ---
	api.HandleFunc("/payments", createPayment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/payments", listPayments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/payments/{paymentId}", updatePayment.Handle).Methods(http.MethodPut)
	api.HandleFunc("/payments/{paymentId}", deletePayment.Handle).Methods(http.MethodDelete)

	// --- Закрытие дня ---
	api.HandleFunc("/daily-close", createDailyClose.Handle).Methods(http.MethodPost)
	api.HandleFunc("/daily-close", listDailyCloses.Handle).Methods(http.MethodGet)
	// preview регистрируется раньше {dateKey}, иначе mux сматчит его как дату
	api.HandleFunc("/daily-close/preview", previewDailyClose.Handle).Methods(http.MethodGet)
	api.HandleFunc("/daily-close/{dateKey}", getDailyClose.Handle).Methods(http.MethodGet)

	// HTTP сервер
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
