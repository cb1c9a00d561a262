package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/pitchscout/scout-ui-api/internal/bootstrap"
)

func connectDB(ctx *commandContext) (*pgxpool.Pool, error) {
	pool, err := bootstrap.ConnectDB(ctx.Ctx, bootstrap.DatabaseConfig{
		DBConfig: ctx.Config.Postgres,
		Logger:   ctx.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	return pool, nil
}

func connectRedis(ctx *commandContext) (*redis.Client, error) {
	client, err := bootstrap.ConnectRedis(ctx.Ctx, bootstrap.DatabaseConfig{
		RedisConfig: ctx.Config.Redis,
		Logger:      ctx.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return client, nil
}

// scanSessionKeys iterates the session-store keyspace without blocking Redis
// the way KEYS would.
func scanSessionKeys(ctx context.Context, client *redis.Client) ([]string, error) {
	var (
		keys   []string
		cursor uint64
	)
	for {
		batch, next, err := client.Scan(ctx, cursor, "session:*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("scan sessions: %w", err)
		}
		keys = append(keys, batch...)
		if next == 0 {
			return keys, nil
		}
		cursor = next
	}
}
