package app

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/riskibarqy/ubuntu-explorer/internal/config"
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/session"
	"github.com/riskibarqy/ubuntu-explorer/internal/infrastructure/repository/memory"
	redisrepo "github.com/riskibarqy/ubuntu-explorer/internal/infrastructure/repository/redis"
	basecache "github.com/riskibarqy/ubuntu-explorer/internal/platform/cache"
	"github.com/riskibarqy/ubuntu-explorer/internal/platform/logging"
)

const redisPingTimeout = 3 * time.Second

type sessionSweeper interface {
	Sweep(ctx context.Context) int
}

func (a *App) openSessionStore(ctx context.Context, cfg config.Config) (session.Repository, error) {
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:         cfg.RedisAddr,
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
		a.closers = append(a.closers, namedCloser{name: "redis", close: client.Close})

		repo := redisrepo.NewSessionRepository(client, cfg.SessionTTL)
		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		if err := repo.Ping(pingCtx); err != nil {
			return nil, fmt.Errorf("redis ping failed: %w", err)
		}

		a.logger.Info("session store ready", "store", cfg.SessionStore, "addr", cfg.RedisAddr)
		return repo, nil
	default:
		repo := memory.NewSessionRepository(basecache.NewStore(cfg.SessionTTL))
		a.sweeper = repo
		a.logger.Info("session store ready", "store", config.SessionStoreMemory)
		return repo, nil
	}
}

// runSessionSweeper drops expired in-memory sessions every interval. Redis
// expires keys on its own and has no sweeper.
func runSessionSweeper(ctx context.Context, sweeper sessionSweeper, interval time.Duration, logger *logging.Logger) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := sweeper.Sweep(ctx); removed > 0 {
				logger.DebugContext(ctx, "expired sessions swept", "removed", removed)
			}
		}
	}
}
