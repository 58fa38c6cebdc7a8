package redis

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"

	"github.com/trezcool/genmo/core"
)

// Store keeps each slot under its own redis key, without expiry.
type Store struct {
	rdb    *goredis.Client
	log    core.Logger
	closed atomic.Bool
}

var _ core.KVStore = (*Store)(nil)

func Open(ctx context.Context, conf core.RedisConfig, logger core.Logger) (*Store, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        conf.Addr,
		Password:    conf.Password,
		DB:          conf.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrap(err, "redis ping")
	}
	logger.Info("redis storage ready", "addr", conf.Addr, "db", conf.DB)
	return &Store{rdb: rdb, log: logger}, nil
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	if s.closed.Load() {
		return nil, core.ErrClosed
	}
	value, err := s.rdb.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, core.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", key)
	}
	return value, nil
}

func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	if s.closed.Load() {
		return core.ErrClosed
	}
	if err := s.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "saving %s", key)
	}
	s.log.Debug("slot saved", "key", key, "bytes", len(value))
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if s.closed.Load() {
		return core.ErrClosed
	}
	return errors.Wrapf(s.rdb.Del(ctx, key).Err(), "deleting %s", key)
}

func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	s.log.Info("closing redis storage")
	return s.rdb.Close()
}
