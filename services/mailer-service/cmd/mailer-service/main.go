package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/andrelribeiro/agendo/libs/config"
	"github.com/andrelribeiro/agendo/libs/db"
	"github.com/andrelribeiro/agendo/libs/httpx"
	"github.com/andrelribeiro/agendo/libs/kafkax"
	otelx "github.com/andrelribeiro/agendo/libs/otel"
	"github.com/andrelribeiro/agendo/libs/runtime"
	"github.com/andrelribeiro/agendo/services/mailer-service/internal/consumer"
	"github.com/andrelribeiro/agendo/services/mailer-service/internal/email"
	"github.com/andrelribeiro/agendo/services/mailer-service/internal/inbox"
	"github.com/andrelribeiro/agendo/services/mailer-service/internal/storage"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	service := config.String("SERVICE_NAME", "mailer-service")
	port, err := config.Port("PORT", "8081")
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

	inboxRepo := inbox.NewRepository(pool)
	deliveriesRepo := storage.NewRepository(pool)

	smtpHost := config.String("SMTP_HOST", "mailpit")
	smtpPort := config.String("SMTP_PORT", "1025")
	smtpFrom := config.String("SMTP_FROM", "no-reply@agendo.local")
	sender := email.NewSMTPSender(smtpHost, smtpPort, smtpFrom)

	consumerCfg := consumer.Config{
		Brokers: config.String("KAFKA_BROKERS", ""),
		GroupID: config.String("KAFKA_GROUP_ID", "mailer-service"),
		Topic:   config.String("KAFKA_CONSUME_TOPIC", "appointment.cancellation_mail.v1"),
	}
	eventConsumer := consumer.New(logger, inboxRepo, consumerCfg, func(ctx context.Context, msg kafka.Message) error {
		var job email.CancellationJob
		if err := json.Unmarshal(msg.Value, &job); err != nil {
			logger.Error("invalid cancellation mail payload", "err", err)
			return nil
		}
		if err := job.Validate(); err != nil {
			logger.Error("incomplete cancellation mail payload", "err", err, "appointment_id", job.AppointmentID)
			return nil
		}

		status := "sent"
		failureReason := ""
		body := email.RenderCancellation(job)
		if err := sender.Send(job.ProviderEmail, email.CancellationSubject, body); err != nil {
			status = "failed"
			failureReason = err.Error()
			logger.Error("cancellation mail send failed", "err", err, "recipient", job.ProviderEmail)
		}

		if err := deliveriesRepo.Insert(ctx, storage.Delivery{
			AppointmentID: job.AppointmentID,
			Recipient:     job.ProviderEmail,
			Subject:       email.CancellationSubject,
			Status:        status,
			FailureReason: failureReason,
		}); err != nil {
			logger.Error("failed to persist delivery record", "err", err)
			return err
		}

		logger.Info("cancellation mail processed",
			"appointment_id", job.AppointmentID,
			"recipient", job.ProviderEmail,
			"status", status,
		)
		return nil
	})
	go eventConsumer.Run(ctx)

	mux := runtime.NewBaseMuxWithReady(
		runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(pool)},
		runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(config.String("KAFKA_BROKERS", ""))},
	)
	handler := httpx.Chain(mux,
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
	)
	handler = otelhttp.NewHandler(handler, "mailer")
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
