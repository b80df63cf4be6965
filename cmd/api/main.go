package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"club-membership-service/internal/config"
	"club-membership-service/internal/domain"
	"club-membership-service/internal/logger"
	"club-membership-service/internal/repository"
	"club-membership-service/internal/repository/inmemory"
	"club-membership-service/internal/repository/postgres"
	"club-membership-service/internal/service"
	httptransport "club-membership-service/internal/transport/http"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // driver
	_ "github.com/golang-migrate/migrate/v4/source/file"       // driver
)

const dbConnectDelay = 2 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stdout, nil)).Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	if err := run(cfg, log); err != nil {
		log.Error("application startup error", "error", err)
		os.Exit(1)
	}
}

type repositories struct {
	users repository.UserRepository
	clubs repository.ClubRepository
	close func()
}

func openRepositories(ctx context.Context, cfg config.Config, log *slog.Logger) (repositories, error) {
	if cfg.Storage == config.StorageMemory {
		log.Info("using in-memory storage")
		storage, err := inmemory.NewStorage()
		if err != nil {
			return repositories{}, err
		}

		return repositories{
			users: inmemory.NewUserRepo(storage),
			clubs: inmemory.NewClubRepo(storage),
			close: func() {},
		}, nil
	}

	log.Info("connecting to database...")
	retrier := postgres.NewPostgresRetrier(cfg.DBConnectRetries, dbConnectDelay, postgres.NewPsqlConnection, log)
	dbPool, err := postgres.NewPsqlConnectionWithRetrier(ctx, postgres.Config{DSN: cfg.DatabaseDSN}, retrier)
	if err != nil {
		return repositories{}, err
	}
	log.Info("database connection established")

	log.Info("running database migrations...")
	m, err := migrate.New(cfg.MigrationsPath, cfg.DatabaseDSN)
	if err != nil {
		dbPool.Close()
		return repositories{}, fmt.Errorf("init migrations: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		dbPool.Close()
		return repositories{}, fmt.Errorf("apply migrations: %w", err)
	}
	log.Info("database migrations complete")

	return repositories{
		users: postgres.NewUserRepo(dbPool),
		clubs: postgres.NewClubRepo(dbPool),
		close: dbPool.Close,
	}, nil
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer repos.close()

	userService := service.NewUserService(repos.users, domain.NewUUIDUserFactory(), log)
	clubService := service.NewClubService(repos.clubs, repos.users, domain.NewUUIDClubFactory(), log)

	httpHandler := httptransport.NewHandler(userService, clubService, log)

	router := httpHandler.RegisterRoutes()

	srv := &http.Server{
		Addr:         cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("server starting", "port", cfg.ServerPort)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info("server shut down gracefully")
	return nil
}
