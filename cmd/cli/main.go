package main

import (
	"context"
	"fmt"
	"os"

	"club-membership-service/internal/config"
	"club-membership-service/internal/domain"
	"club-membership-service/internal/logger"
	"club-membership-service/internal/repository/postgres"
	"club-membership-service/internal/service"
	"club-membership-service/internal/transport/cli"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := cli.ParseArgs(args, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	ctx := context.Background()

	pool, err := postgres.NewPsqlConnection(ctx, postgres.Config{DSN: cfg.DatabaseDSN})
	if err != nil {
		log.Error("database connection failed", "error", err)
		return 1
	}
	defer pool.Close()

	userService := service.NewUserService(postgres.NewUserRepo(pool), domain.NewUUIDUserFactory(), log)

	if err := cli.Run(ctx, opts, userService, os.Stdout); err != nil {
		log.Error("operation failed", "operation", opts.Operation, "error", err)
		return 1
	}

	return 0
}
