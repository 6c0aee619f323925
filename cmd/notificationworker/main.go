package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/lostfound/board/internal/adapters/queue/rabbitmq"
	"github.com/lostfound/board/internal/config"
	"github.com/lostfound/board/internal/core/services"
)

func main() {
	log := logrus.New()

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found")
	}

	var mqHost, mqPort, mqQueue string
	var backoff time.Duration
	flag.StringVar(&mqHost, "mq-host", config.Env("RABBITMQ_HOST", "localhost"), "RabbitMQ host")
	flag.StringVar(&mqPort, "mq-port", config.Env("RABBITMQ_PORT", "5672"), "RabbitMQ port")
	flag.StringVar(&mqQueue, "mq-queue", config.Env("RABBITMQ_QUEUE_NAME", "notifications"), "Notification queue name")
	flag.DurationVar(&backoff, "reconnect-interval", 3*time.Second, "Delay between reconnection attempts")
	flag.Parse()

	source := rabbitmq.NewSource(fmt.Sprintf("amqp://guest:guest@%s:%s/", mqHost, mqPort), mqQueue)
	worker := services.NewNotificationWorker(source, backoff, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Infof("notification worker starting, queue %q", mqQueue)
	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Info("notification worker stopped")
}
