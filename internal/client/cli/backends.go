package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/portalauth/internal/client/config"
	"github.com/dmitrijs2005/portalauth/internal/filex"
	"github.com/dmitrijs2005/portalauth/internal/kv"
	"github.com/redis/go-redis/v9"
)

const (
	redisPersistentPrefix = "portal"
	redisVolatilePrefix   = "portal:volatile"
)

// openPersistent builds the persistent tier named by cfg.PersistentBackend.
// The returned closer is nil when there is nothing to release.
func openPersistent(ctx context.Context, cfg *config.Config) (kv.Backend, io.Closer, error) {
	switch cfg.PersistentBackend {
	case config.BackendSQLite:
		if err := filex.EnsureParentDir(cfg.SQLitePath); err != nil {
			return nil, nil, err
		}
		s, err := kv.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil

	case config.BackendPostgres:
		if cfg.PostgresDSN == "" {
			return nil, nil, fmt.Errorf("postgres backend requires a DSN")
		}
		s, err := kv.OpenPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		s := kv.NewRedisStore(client, redisPersistentPrefix, 0)
		if err := s.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return s, client, nil

	default:
		return nil, nil, fmt.Errorf("unknown persistent backend %q", cfg.PersistentBackend)
	}
}

// openVolatile builds the volatile tier. A Redis volatile tier expires its
// keys after cfg.SessionTTL so an abandoned session does not linger.
func openVolatile(ctx context.Context, cfg *config.Config) (kv.Backend, io.Closer, error) {
	switch cfg.VolatileBackend {
	case config.BackendMemory:
		return kv.NewMemoryStore(), nil, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		s := kv.NewRedisStore(client, redisVolatilePrefix, cfg.SessionTTL)
		if err := s.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return s, client, nil

	default:
		return nil, nil, fmt.Errorf("unknown volatile backend %q", cfg.VolatileBackend)
	}
}
