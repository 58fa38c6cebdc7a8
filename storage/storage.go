// Package storage selects the durable key-value backend of the content store.
package storage

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/genmo/core"
	"github.com/trezcool/genmo/storage/kvstore/inmem"
	"github.com/trezcool/genmo/storage/kvstore/postgres"
	"github.com/trezcool/genmo/storage/kvstore/redis"
	"github.com/trezcool/genmo/storage/kvstore/sqlite"
)

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// Open returns the KVStore configured by conf.Storage.Backend.
func Open(ctx context.Context, conf *core.Config, logger core.Logger) (core.KVStore, error) {
	var (
		kv  core.KVStore
		err error
	)
	switch conf.Storage.Backend {
	case BackendMemory:
		kv = inmem.New()
	case BackendSQLite, "":
		kv, err = openSQLite(conf, logger)
	case BackendPostgres:
		kv, err = openPostgres(ctx, conf, logger)
	case BackendRedis:
		kv, err = openRedis(ctx, conf, logger)
	default:
		return nil, errors.Wrap(ErrUnknownBackend, conf.Storage.Backend)
	}
	if err != nil {
		return nil, err
	}
	return kv, nil
}

func openSQLite(conf *core.Config, logger core.Logger) (core.KVStore, error) {
	s, err := sqlite.Open(conf.Storage.SQLitePath, logger)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func openPostgres(ctx context.Context, conf *core.Config, logger core.Logger) (core.KVStore, error) {
	s, err := postgres.Open(ctx, postgres.DSN(conf.Storage.Database), logger)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func openRedis(ctx context.Context, conf *core.Config, logger core.Logger) (core.KVStore, error) {
	s, err := redis.Open(ctx, conf.Storage.Redis, logger)
	if err != nil {
		return nil, err
	}
	return s, nil
}
