package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/seongminpark/hotelhub/internal/config"
	kafkax "github.com/seongminpark/hotelhub/internal/kafka"
	"github.com/seongminpark/hotelhub/internal/logger"
	"github.com/seongminpark/hotelhub/internal/mailer"
	mailerService "github.com/seongminpark/hotelhub/internal/service/mailer"
	"github.com/seongminpark/hotelhub/internal/worker"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New(cfg.Env)
	log.Info("notifier worker starting")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Create mailer service
	mailerSender := &mailer.SMTPSender{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: cfg.SMTPFrom,
	}
	mailerSvc := mailerService.NewMailerService(log, mailerSender)

	// Create Kafka consumer and DLQ producer
	consumer := kafkax.NewConsumer([]string{cfg.KafkaBrokers}, "hotelhub-notifier", "reservations")
	defer consumer.Close()
	dlq := kafkax.NewProducer([]string{cfg.KafkaBrokers}, "reservations-dlq")
	defer dlq.Close()

	// Create and run notifier
	n := worker.NewNotifier(log, mailerSvc, consumer, dlq, cfg.MaxWorkerRoutineCount)
	_ = n.Run(ctx)

	<-ctx.Done()
	log.Info("worker stopped")
}
