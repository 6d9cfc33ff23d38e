package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	flag "github.com/spf13/pflag"

	"github.com/m04kA/LittleLemon-Booking/internal/api"
	checkTimeAvailabilityHandler "github.com/m04kA/LittleLemon-Booking/internal/api/handlers/check_time_availability"
	formSessionHandler "github.com/m04kA/LittleLemon-Booking/internal/api/handlers/form_session"
	getAvailableTimesHandler "github.com/m04kA/LittleLemon-Booking/internal/api/handlers/get_available_times"
	getConfirmationHandler "github.com/m04kA/LittleLemon-Booking/internal/api/handlers/get_confirmation"
	"github.com/m04kA/LittleLemon-Booking/internal/api/handlers/pages"
	submitBookingHandler "github.com/m04kA/LittleLemon-Booking/internal/api/handlers/submit_booking"
	"github.com/m04kA/LittleLemon-Booking/internal/api/middleware"
	"github.com/m04kA/LittleLemon-Booking/internal/config"
	"github.com/m04kA/LittleLemon-Booking/internal/infra/storage/slot"
	"github.com/m04kA/LittleLemon-Booking/internal/service/bookingform"
	"github.com/m04kA/LittleLemon-Booking/internal/service/confirmation"
	"github.com/m04kA/LittleLemon-Booking/internal/service/sessions"
	checkTimeAvailabilityUC "github.com/m04kA/LittleLemon-Booking/internal/usecase/check_time_availability"
	getAvailableTimesUC "github.com/m04kA/LittleLemon-Booking/internal/usecase/get_available_times"
	submitBookingUC "github.com/m04kA/LittleLemon-Booking/internal/usecase/submit_booking"
	"github.com/m04kA/LittleLemon-Booking/pkg/logger"
	"github.com/m04kA/LittleLemon-Booking/pkg/metrics"
	"github.com/m04kA/LittleLemon-Booking/pkg/simulation"
)

func main() {
	configPath := flag.StringP("config", "c", "config.toml", "path to the TOML configuration file")
	port := flag.IntP("port", "p", 0, "HTTP port, overrides server.http_port")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.HTTPPort = *port
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting LittleLemon-Booking...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Источники задержки и случайности mock API
	latency := simulation.NewLatency(cfg.Mock.LatencyScale)
	random := simulation.NewRandom()
	log.Info("Mock API latency scale: %.2f", cfg.Mock.LatencyScale)

	// Хранилище подтверждённых бронирований
	var backend slot.Backend
	switch cfg.Storage.Backend {
	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:        cfg.Storage.Redis.Addr,
			Password:    cfg.Storage.Redis.Password,
			DB:          cfg.Storage.Redis.DB,
			DialTimeout: time.Duration(cfg.Storage.Redis.DialTimeout) * time.Second,
		})
		defer client.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), time.Duration(cfg.Storage.Redis.DialTimeout)*time.Second)
		err := client.Ping(pingCtx).Err()
		cancelPing()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Storage.Redis.Addr, err)
		}

		backend = slot.NewRedisBackend(client, time.Duration(cfg.Storage.Redis.TTL)*time.Second)
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Storage.Redis.Addr, cfg.Storage.Redis.DB)
	default:
		backend = slot.NewMemoryBackend()
		log.Info("Using in-memory booking storage")
	}
	slotRepository := slot.NewRepository(backend, cfg.Storage.Key)

	// Инициализируем сервисы
	confirmationSvc := confirmation.NewService(slotRepository, log)

	// Инициализируем use cases
	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(latency, random, metricsCollector, log)
	checkTimeAvailabilityUseCase := checkTimeAvailabilityUC.NewUseCase(latency, random, metricsCollector, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(latency, random, metricsCollector, log)

	// Инициализируем сессии формы бронирования
	machine, err := bookingform.NewMachine(bookingform.RealClock{})
	if err != nil {
		log.Fatal("Failed to initialize booking form: %v", err)
	}

	sessionManager := sessions.NewManager(&sessions.Deps{
		Machine:   machine,
		Engine:    getAvailableTimesUseCase,
		Submitter: submitBookingUseCase,
		Store:     confirmationSvc,
		Metrics:   metricsCollector,
		Clock:     bookingform.RealClock{},
		Logger:    log,
	}, cfg.Sessions.SessionTTL())

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	if cfg.Sessions.TTL > 0 && cfg.Sessions.JanitorInterval > 0 {
		go sessionManager.RunJanitor(janitorCtx, cfg.Sessions.Interval())
		log.Info("Session janitor started (ttl=%ds, interval=%ds)", cfg.Sessions.TTL, cfg.Sessions.JanitorInterval)
	}

	// Инициализируем handlers
	pagesHandler, err := pages.NewHandler(confirmationSvc, bookingform.RealClock{}, log)
	if err != nil {
		log.Fatal("Failed to load page templates: %v", err)
	}

	handlers := &api.Handlers{
		GetAvailableTimes:     getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, log),
		CheckTimeAvailability: checkTimeAvailabilityHandler.NewHandler(checkTimeAvailabilityUseCase, log),
		SubmitBooking:         submitBookingHandler.NewHandler(submitBookingUseCase, log),
		GetConfirmation:       getConfirmationHandler.NewHandler(confirmationSvc, log),
		FormSession:           formSessionHandler.NewHandler(sessionManager, log).WithSecureCookies(cfg.Server.SecureCookies),
		Pages:                 pagesHandler,
	}

	// Настраиваем роутер
	opts := api.Options{
		SecureCookies: cfg.Server.SecureCookies,
		Logger:        log,
	}
	if cfg.Metrics.Enabled {
		opts.Metrics = metricsCollector
		opts.MetricsPath = cfg.Metrics.Path
		opts.MetricsHandler = promhttp.Handler()
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log)
		if cfg.RateLimit.IdleTTL > 0 && cfg.RateLimit.JanitorInterval > 0 {
			go limiter.RunJanitor(janitorCtx, cfg.RateLimit.Interval(), cfg.RateLimit.IdleDuration())
		}
		opts.RateLimiter = limiter
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d, idle_ttl=%ds)",
			cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)
	}

	r := api.NewRouter(handlers, sessionManager, opts)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	stopJanitor()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully (active sessions: %d)", sessionManager.Len())
}
