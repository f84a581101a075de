package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"
)

// Config holds Redis connection settings with environment variable mapping.
type Config struct {
	RedisURL      string        `env:"REDIS_URL,required"`
	RetryAttempts uint64        `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
}

var (
	// ErrEmptyRedisURL means Config.RedisURL was not set.
	ErrEmptyRedisURL = errors.New("empty redis url")

	// ErrFailedToConnect means the client could not be verified within the
	// configured retry budget.
	ErrFailedToConnect = errors.New("failed to connect to redis")
)

// Connect creates a verified Redis client with exponential-backoff retry on
// the initial ping.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		return nil, ErrEmptyRedisURL
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToConnect, err)
	}
	client := redis.NewClient(opts)

	backoff := retry.WithMaxRetries(cfg.RetryAttempts, retry.NewExponential(cfg.RetryInterval))
	if err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	}); err != nil {
		_ = client.Close()
		return nil, errors.Join(ErrFailedToConnect, err)
	}

	return client, nil
}
