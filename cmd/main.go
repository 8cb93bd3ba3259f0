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

	adminCancelAppointmentHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/admin_cancel_appointment"
	assistantReplyHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/assistant_reply"
	cancelAppointmentHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/create_appointment"
	getAdminAppointmentsHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/get_admin_appointments"
	getAvailableSlotsHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/get_available_slots"
	getBusinessInfoHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/get_business_info"
	getPhoneAppointmentsHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/get_phone_appointments"
	"github.com/m04kA/barbershop-booking/internal/api/middleware"
	"github.com/m04kA/barbershop-booking/internal/config"
	appointmentRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/appointment"
	"github.com/m04kA/barbershop-booking/internal/integrations/events"
	"github.com/m04kA/barbershop-booking/internal/integrations/whatsapp"
	appointmentsService "github.com/m04kA/barbershop-booking/internal/service/appointments"
	businessService "github.com/m04kA/barbershop-booking/internal/service/business"
	assistantUC "github.com/m04kA/barbershop-booking/internal/usecase/assistant"
	createAppointmentUC "github.com/m04kA/barbershop-booking/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/barbershop-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/barbershop-booking/pkg/dbmetrics"
	"github.com/m04kA/barbershop-booking/pkg/logger"
	"github.com/m04kA/barbershop-booking/pkg/metrics"
)

const defaultConfigPath = "config.toml"

// eventPublisher общий интерфейс KafkaPublisher и NoopPublisher
type eventPublisher interface {
	Publish(ctx context.Context, event events.AppointmentEvent) error
	Close() error
}

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting barbershop-booking...")
	log.Info("Configuration loaded from %s", configPath)

	// Часовой пояс барбершопа: в нем считаются даты, слоты и "сейчас"
	location, err := cfg.Business.Location()
	if err != nil {
		log.Fatal("Failed to load business timezone: %v", err)
	}
	catalog := cfg.Business.Catalog()
	hours := cfg.Business.BusinessHours()
	log.Info("Business %q loaded (timezone=%s, services=%d)", cfg.Business.Name, location, len(catalog.Services()))

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище записей: PostgreSQL или заглушка, если база отключена
	var appointmentRepository appointmentRepo.Store

	if cfg.Database.Enabled {
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

		if cfg.Metrics.Enabled {
			appointmentRepository = appointmentRepo.NewRepository(dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh))
			log.Info("Database metrics collection started")
		} else {
			appointmentRepository = appointmentRepo.NewRepository(db)
		}
	} else {
		appointmentRepository = appointmentRepo.NewUnconfiguredRepository()
		log.Warn("Database is disabled: appointments will not be persisted")
	}

	// Публикация событий записей
	var publisher eventPublisher
	if cfg.Kafka.Enabled {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		log.Info("Kafka publisher enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	} else {
		publisher = events.NewNoopPublisher()
		log.Info("Kafka publisher disabled (no brokers configured)")
	}
	defer publisher.Close()

	// Rate limiter: Redis, если включен, с локальным limiter'ом на случай его недоступности
	var (
		limiter     middleware.Limiter
		redisClient *redis.Client
	)
	if cfg.RateLimit.Enabled {
		window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
		memoryLimiter := middleware.NewMemoryLimiter(cfg.RateLimit.Requests, window)
		limiter = memoryLimiter

		if cfg.Redis.Enabled {
			redisClient = redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			defer redisClient.Close()

			pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
			if err := redisClient.Ping(pingCtx).Err(); err != nil {
				log.Warn("Redis is unreachable, local rate limiter will be used until it recovers: %v", err)
			}
			cancelPing()

			var fallback middleware.Limiter
			if cfg.RateLimit.FailOpen {
				fallback = memoryLimiter
			}
			limiter = middleware.NewRedisLimiter(redisClient, cfg.RateLimit.Requests, window, "barbershop:rl", fallback, log)
			log.Info("Redis rate limiter enabled (addr=%s, requests=%d, window=%s)", cfg.Redis.Addr, cfg.RateLimit.Requests, window)
		} else {
			log.Info("In-memory rate limiter enabled (requests=%d, window=%s)", cfg.RateLimit.Requests, window)
		}
	}

	links := whatsapp.NewLinks(cfg.Business.Phone, cfg.Business.OwnerName)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		catalog,
		publisher,
		links,
		metricsCollector,
		location,
		log,
	)
	businessSvc := businessService.NewService(
		businessService.Info{
			Name:      cfg.Business.Name,
			OwnerName: cfg.Business.OwnerName,
			Phone:     cfg.Business.Phone,
			Timezone:  cfg.Business.Timezone,
			Greeting:  assistantUC.Greeting,
		},
		catalog,
		hours,
		links,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		catalog,
		hours,
		location,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalog,
		hours,
		publisher,
		links,
		metricsCollector,
		location,
		log,
	)
	assistantUseCase := assistantUC.NewUseCase(
		appointmentRepository,
		catalog,
		hours,
		links,
		cfg.Business.OwnerName,
		metricsCollector,
		location,
		log,
	)

	// Инициализируем handlers
	getBusinessInfo := getBusinessInfoHandler.NewHandler(businessSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, location, log)
	getPhoneAppointments := getPhoneAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	assistantReply := assistantReplyHandler.NewHandler(assistantUseCase, log)
	getAdminAppointments := getAdminAppointmentsHandler.NewHandler(appointmentsSvc, location, log)
	adminCancelAppointment := adminCancelAppointmentHandler.NewHandler(appointmentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Прайс, контакты и расписание
	api.HandleFunc("/business", getBusinessInfo.Handle).Methods(http.MethodGet)

	// Свободные слоты услуги на дату
	api.HandleFunc("/services/{serviceId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Записи клиента по телефону
	api.HandleFunc("/appointments", getPhoneAppointments.Handle).Methods(http.MethodGet)

	// Отмена записи клиентом
	api.HandleFunc("/appointments/{appointmentId}", cancelAppointment.Handle).Methods(http.MethodDelete)

	// ============================================================
	// RATE LIMITED ROUTES
	// ============================================================

	limited := api.PathPrefix("").Subrouter()
	if limiter != nil {
		limited.Use(middleware.RateLimit(limiter, cfg.RateLimit.FailOpen, cfg.RateLimit.TrustProxy, log))
	}

	// Создание записи
	limited.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Сообщение ассистенту
	limited.HandleFunc("/assistant/messages", assistantReply.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Password)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.PasswordHash, middleware.RealTimeProvider{}, log))
	if cfg.Admin.PasswordHash == "" {
		log.Warn("Admin password hash is not configured: admin routes are disabled")
	}

	// Записи на день или ближайшие
	admin.HandleFunc("/appointments", getAdminAppointments.Handle).Methods(http.MethodGet)

	// Отмена записи администратором
	admin.HandleFunc("/appointments/{appointmentId}", adminCancelAppointment.Handle).Methods(http.MethodDelete)

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
	close(stopMetricsCh)

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
