package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/lostfound/board/internal/adapters/authgateway"
	"github.com/lostfound/board/internal/adapters/dataservice"
	"github.com/lostfound/board/internal/adapters/handler/http"
	"github.com/lostfound/board/internal/adapters/queue/rabbitmq"
	"github.com/lostfound/board/internal/config"
	"github.com/lostfound/board/internal/core/services"
)

func main() {
	log := logrus.New()

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found")
	}

	var addr, dataServiceURL, authVerifyURL, mqHost, mqPort, mqQueue string
	flag.StringVar(&addr, "addr", config.Env("ANNOUNCEMENT_SERVICE_ADDR", "0.0.0.0:8000"), "Listen address")
	flag.StringVar(&dataServiceURL, "data-service-url", config.Env("DATA_SERVICE_URL", "http://localhost:8090"), "Data service base URL")
	flag.StringVar(&authVerifyURL, "auth-verify-url", config.Env("AUTH_VERIFY_URL", "http://localhost:8001/auth/verify-token"), "Token verification endpoint")
	flag.StringVar(&mqHost, "mq-host", config.Env("RABBITMQ_HOST", "localhost"), "RabbitMQ host")
	flag.StringVar(&mqPort, "mq-port", config.Env("RABBITMQ_PORT", "5672"), "RabbitMQ port")
	flag.StringVar(&mqQueue, "mq-queue", config.Env("RABBITMQ_QUEUE_NAME", "notifications"), "Notification queue name")
	flag.Parse()

	store := dataservice.NewClient(dataServiceURL)
	verifier := authgateway.NewClient(authVerifyURL)
	publisher := rabbitmq.NewPublisher(fmt.Sprintf("amqp://guest:guest@%s:%s/", mqHost, mqPort), mqQueue)

	service := services.NewAnnouncementService(store, publisher, log)
	handler := http.NewAnnouncementRouter(http.NewAnnouncementHandler(service), verifier)

	server := &stdhttp.Server{Addr: addr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("announcement service listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Info("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}
