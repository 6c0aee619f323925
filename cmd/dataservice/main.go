package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/lostfound/board/internal/adapters/handler/http"
	"github.com/lostfound/board/internal/adapters/repository/postgres"
	"github.com/lostfound/board/internal/config"
	"github.com/lostfound/board/internal/core/services"
)

func main() {
	log := logrus.New()

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found")
	}

	var addr, dbHost, dbPort, dbUser, dbPass, dbName string
	flag.StringVar(&addr, "addr", config.Env("DATA_SERVICE_ADDR", "0.0.0.0:8090"), "Listen address")
	flag.StringVar(&dbHost, "db-host", config.Env("POSTGRES_HOST", "localhost"), "Database host")
	flag.StringVar(&dbPort, "db-port", config.Env("POSTGRES_PORT", "5432"), "Database port")
	flag.StringVar(&dbUser, "db-user", config.Env("POSTGRES_USER", "postgres"), "Database user")
	flag.StringVar(&dbPass, "db-pass", config.Env("POSTGRES_PASSWORD", ""), "Database password")
	flag.StringVar(&dbName, "db-name", config.Env("POSTGRES_DB", "lostfound"), "Database name")
	flag.Parse()

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", dbUser, dbPass, dbHost, dbPort, dbName)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	userRepo := postgres.NewUserRepository(db)
	announcementRepo := postgres.NewAnnouncementRepository(db)
	responseRepo := postgres.NewResponseRepository(db)

	service := services.NewDataService(userRepo, announcementRepo, responseRepo)
	handler := http.NewDataRouter(http.NewDataHandler(service))

	server := &stdhttp.Server{Addr: addr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("data service listening on %s", addr)
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
