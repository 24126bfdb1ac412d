package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/andrelribeiro/agendo/libs/config"
	"github.com/andrelribeiro/agendo/libs/db"
	"github.com/andrelribeiro/agendo/libs/httpx"
	"github.com/andrelribeiro/agendo/libs/kafkax"
	otelx "github.com/andrelribeiro/agendo/libs/otel"
	"github.com/andrelribeiro/agendo/libs/runtime"
	"github.com/andrelribeiro/agendo/services/appointment-service/internal/creation"
	"github.com/andrelribeiro/agendo/services/appointment-service/internal/handlers"
	"github.com/andrelribeiro/agendo/services/appointment-service/internal/notify"
	"github.com/andrelribeiro/agendo/services/appointment-service/internal/outbox"
	"github.com/andrelribeiro/agendo/services/appointment-service/internal/storage"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	service := config.String("SERVICE_NAME", "appointment-service")
	port, err := config.Port("PORT", "8080")
	if err != nil {
		panic(err)
	}
	logger := runtime.NewLogger(service)

	ctx, stop := runtime.SignalContext()
	defer stop()

	otelShutdown, err := otelx.Setup(ctx, otelx.ConfigFromEnv(service))
	if err != nil {
		logger.Error("otel setup failed", "err", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(shutdownCtx)
		}()
	}

	dbURL, err := config.RequiredString("DATABASE_URL")
	if err != nil {
		panic(err)
	}

	pool, err := db.Open(ctx, dbURL)
	if err != nil {
		logger.Error("db connection failed", "err", err)
		panic(err)
	}
	defer pool.Close()

	repo := storage.NewAppointmentRepository(pool)
	notificationsRepo := storage.NewNotificationRepository(pool)
	outboxRepo := outbox.NewRepository(pool)
	fanout := notify.NewFanout(notificationsRepo, outboxRepo)

	creationProvider, err := creation.NewRemoteProvider(logger, config.String("CREATION_GRPC_ADDR", ""), creation.NewLocalProvider(repo))
	if err != nil {
		logger.Error("creation provider init failed; using local provider", "err", err)
		creationProvider = creation.NewLocalProvider(repo)
	}

	outboxPublisher := outbox.NewPublisher(pool, outboxRepo, logger, outbox.PublisherConfig{
		Brokers:   config.String("KAFKA_BROKERS", ""),
		PollEvery: config.Duration("OUTBOX_POLL_INTERVAL", 2*time.Second),
		BatchSize: config.Int("OUTBOX_BATCH_SIZE", 50),
	})
	go outboxPublisher.Run(ctx)

	appointmentHandler := handlers.NewAppointmentHandler(repo, fanout, creationProvider, logger)
	notificationHandler := handlers.NewNotificationHandler(notificationsRepo, logger)

	requireUser := handlers.RequireUser(config.String("JWT_SECRET", "dev-secret"))
	mux := runtime.NewBaseMuxWithReady(
		runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(pool)},
		runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(config.String("KAFKA_BROKERS", ""))},
	)
	mux.Handle("/api/v1/appointments", requireUser(http.HandlerFunc(appointmentHandler.Appointments)))
	mux.Handle("/api/v1/appointments/", requireUser(http.HandlerFunc(appointmentHandler.Cancel)))
	mux.Handle("/api/v1/notifications", requireUser(http.HandlerFunc(notificationHandler.List)))
	mux.Handle("/api/v1/notifications/", requireUser(http.HandlerFunc(notificationHandler.MarkRead)))

	limitPerMinute := config.Int("RATE_LIMIT_PER_MINUTE", 60)
	var rateLimitMW httpx.Middleware
	if addr := strings.TrimSpace(config.String("REDIS_ADDR", "")); addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: config.String("REDIS_PASSWORD", ""),
			DB:       config.Int("REDIS_DB", 0),
		})
		defer func() { _ = rdb.Close() }()

		rl := httpx.NewRedisRateLimiter(rdb, limitPerMinute, time.Minute, config.String("RATE_LIMIT_PREFIX", "rl"))
		rateLimitMW = rl.Middleware(logger, config.Bool("RATE_LIMIT_FAIL_OPEN", true))
		logger.Info("rate limiting enabled (redis)", "per_minute", limitPerMinute, "redis_addr", addr)
	} else {
		rl := httpx.NewRateLimiter(limitPerMinute, time.Minute)
		rateLimitMW = rl.Middleware()
		logger.Info("rate limiting enabled (in-memory)", "per_minute", limitPerMinute)
	}

	handler := httpx.Chain(mux,
		httpx.WithCORS(httpx.CORSPolicy{
			AllowedOrigins:   strings.Split(config.String("CORS_ALLOWED_ORIGINS", ""), ","),
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
			AllowCredentials: config.Bool("CORS_ALLOW_CREDENTIALS", false),
			MaxAge:           config.Duration("CORS_MAX_AGE", 10*time.Minute),
		}),
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
		httpx.WithBodyLimit(int64(config.Int("REQUEST_BODY_LIMIT_BYTES", 1<<20))),
		httpx.WithTimeout(config.Duration("REQUEST_TIMEOUT", 10*time.Second)),
		rateLimitMW,
	)
	handler = otelhttp.NewHandler(handler, "appointment")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}
	logger.Info("http server stopped")
}
