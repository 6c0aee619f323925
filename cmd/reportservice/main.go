package main

import (
	"context"
	"errors"
	"flag"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/lostfound/board/internal/adapters/authgateway"
	"github.com/lostfound/board/internal/adapters/dataservice"
	"github.com/lostfound/board/internal/adapters/handler/http"
	"github.com/lostfound/board/internal/config"
	"github.com/lostfound/board/internal/core/services"
)

func main() {
	log := logrus.New()

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found")
	}

	var addr, dataServiceURL, authVerifyURL string
	flag.StringVar(&addr, "addr", config.Env("REPORT_SERVICE_ADDR", "0.0.0.0:8002"), "Listen address")
	flag.StringVar(&dataServiceURL, "data-service-url", config.Env("DATA_SERVICE_URL", "http://localhost:8090"), "Data service base URL")
	flag.StringVar(&authVerifyURL, "auth-verify-url", config.Env("AUTH_VERIFY_URL", "http://localhost:8001/auth/verify-token"), "Token verification endpoint")
	flag.Parse()

	store := dataservice.NewClient(dataServiceURL)
	verifier := authgateway.NewClient(authVerifyURL)

	service := services.NewReportService(store)
	handler := http.NewReportRouter(http.NewReportHandler(service), verifier)

	server := &stdhttp.Server{Addr: addr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("report service listening on %s", addr)
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
