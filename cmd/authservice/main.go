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

	var addr, dataServiceURL, jwtSecret string
	flag.StringVar(&addr, "addr", config.Env("AUTH_SERVICE_ADDR", "0.0.0.0:8001"), "Listen address")
	flag.StringVar(&dataServiceURL, "data-service-url", config.Env("DATA_SERVICE_URL", "http://localhost:8090"), "Data service base URL")
	flag.StringVar(&jwtSecret, "jwt-secret", config.Env("JWT_SECRET", ""), "Token signing secret")
	flag.Parse()

	if jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	store := dataservice.NewClient(dataServiceURL)
	tokens := services.NewTokenService([]byte(jwtSecret))
	service := services.NewAuthService(store, tokens)

	handler := http.NewAuthRouter(http.NewAuthHandler(service))
	server := &stdhttp.Server{Addr: addr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("auth service listening on %s", addr)
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
