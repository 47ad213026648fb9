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

	cancelReservationHandler "github.com/m04kA/DPT-ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/DPT-ReservationService/internal/api/handlers/create_reservation"
	deleteNotificationHandler "github.com/m04kA/DPT-ReservationService/internal/api/handlers/delete_notification"
	getAvailableSlotsHandler "github.com/m04kA/DPT-ReservationService/internal/api/handlers/get_available_slots"
	getNotificationsHandler "github.com/m04kA/DPT-ReservationService/internal/api/handlers/get_notifications"
	getReservationHandler "github.com/m04kA/DPT-ReservationService/internal/api/handlers/get_reservation"
	getUnreadCountHandler "github.com/m04kA/DPT-ReservationService/internal/api/handlers/get_unread_count"
	getUserReservationsHandler "github.com/m04kA/DPT-ReservationService/internal/api/handlers/get_user_reservations"
	markAllNotificationsReadHandler "github.com/m04kA/DPT-ReservationService/internal/api/handlers/mark_all_notifications_read"
	markNotificationReadHandler "github.com/m04kA/DPT-ReservationService/internal/api/handlers/mark_notification_read"
	updateReservationStatusHandler "github.com/m04kA/DPT-ReservationService/internal/api/handlers/update_reservation_status"
	"github.com/m04kA/DPT-ReservationService/internal/api/middleware"
	"github.com/m04kA/DPT-ReservationService/internal/config"
	"github.com/m04kA/DPT-ReservationService/internal/infra/queue"
	notificationRepo "github.com/m04kA/DPT-ReservationService/internal/infra/storage/notification"
	reservationRepo "github.com/m04kA/DPT-ReservationService/internal/infra/storage/reservation"
	authServiceClient "github.com/m04kA/DPT-ReservationService/internal/integrations/authservice"
	departmentServiceClient "github.com/m04kA/DPT-ReservationService/internal/integrations/departmentservice"
	notificationsService "github.com/m04kA/DPT-ReservationService/internal/service/notifications"
	reservationsService "github.com/m04kA/DPT-ReservationService/internal/service/reservations"
	createReservationUC "github.com/m04kA/DPT-ReservationService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/DPT-ReservationService/internal/usecase/get_available_slots"
	"github.com/m04kA/DPT-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/DPT-ReservationService/pkg/logger"
	"github.com/m04kA/DPT-ReservationService/pkg/metrics"
	"github.com/m04kA/DPT-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/DPT-ReservationService/pkg/txmanager"
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

	log.Info("Starting DPT-ReservationService...")
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

	// Инициализируем интеграционных клиентов
	departmentClient := departmentServiceClient.NewClient(
		cfg.DepartmentService.URL,
		time.Duration(cfg.DepartmentService.Timeout)*time.Second,
		log,
	)
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (DepartmentService=%s timeout=%ds, AuthService=%s timeout=%ds)",
		cfg.DepartmentService.URL, cfg.DepartmentService.Timeout, cfg.AuthService.URL, cfg.AuthService.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		reservationRepository  *reservationRepo.Repository
		notificationRepository *notificationRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем publisher событий (если включен)
	var eventPublisher notificationsService.EventPublisher
	if cfg.RabbitMQ.Enabled {
		eventPublisher = queue.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, log)
		log.Info("RabbitMQ event publisher enabled (queue=%s)", cfg.RabbitMQ.Queue)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		authClient,
		log,
	)
	notificationSvc := notificationsService.NewService(
		notificationRepository,
		eventPublisher,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		departmentClient,
		notificationSvc,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		departmentClient,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)
	getNotifications := getNotificationsHandler.NewHandler(notificationSvc, log)
	getUnreadCount := getUnreadCountHandler.NewHandler(notificationSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationSvc, log)
	markAllNotificationsRead := markAllNotificationsReadHandler.NewHandler(notificationSvc, log)
	deleteNotification := deleteNotificationHandler.NewHandler(notificationSvc, log)

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

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Получение доступных слотов департамента
	api.HandleFunc("/departments/{departmentId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена бронирования владельцем
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// Административное обновление статуса
	protected.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// --- Уведомления ---
	// Список уведомлений пользователя
	protected.HandleFunc("/notifications", getNotifications.Handle).Methods(http.MethodGet)

	// Количество непрочитанных
	protected.HandleFunc("/notifications/unread-count", getUnreadCount.Handle).Methods(http.MethodGet)

	// Пометить все прочитанными
	protected.HandleFunc("/notifications/read-all", markAllNotificationsRead.Handle).Methods(http.MethodPatch)

	// Пометить уведомление прочитанным
	protected.HandleFunc("/notifications/{notificationId}/read", markNotificationRead.Handle).Methods(http.MethodPatch)

	// Удаление уведомления
	protected.HandleFunc("/notifications/{notificationId}", deleteNotification.Handle).Methods(http.MethodDelete)

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
