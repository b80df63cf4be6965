package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PsqlConnectionStrategy func(context.Context, Config) (*pgxpool.Pool, error)

type PostgresRetrier struct {
	countRetries   int
	delay          time.Duration
	connectionFunc PsqlConnectionStrategy
	logger         *slog.Logger
}

func NewPostgresRetrier(countRetries int, delay time.Duration, connectionFunc PsqlConnectionStrategy, logger *slog.Logger) *PostgresRetrier {
	return &PostgresRetrier{
		countRetries:   countRetries,
		delay:          delay,
		connectionFunc: connectionFunc,
		logger:         logger,
	}
}

func (r *PostgresRetrier) newConnection(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	db, err := r.connectionFunc(ctx, cfg)

	for attempt := 1; err != nil && attempt <= r.countRetries; attempt++ {
		r.logger.Warn("database connection failed, retrying",
			"attempt", attempt,
			"retries", r.countRetries,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.delay):
		}

		db, err = r.connectionFunc(ctx, cfg)
	}

	return db, err
}

func NewPsqlConnectionWithRetrier(ctx context.Context, cfg Config, retrier *PostgresRetrier) (*pgxpool.Pool, error) {
	return retrier.newConnection(ctx, cfg)
}
