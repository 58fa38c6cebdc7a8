package postgres

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/genmo/core"
)

const (
	loadQuery   = `SELECT value FROM kv_slots WHERE key = $1`
	deleteQuery = `DELETE FROM kv_slots WHERE key = $1`
	saveQuery   = `
INSERT INTO kv_slots (key, value, updated_at) VALUES ($1, $2::jsonb, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
)

// Store keeps slots in the kv_slots table.
type Store struct {
	db     *sqlx.DB
	log    core.Logger
	closed atomic.Bool
}

var _ core.KVStore = (*Store)(nil)

// Open connects to the database at dsn, waits for it and applies migrations.
func Open(ctx context.Context, dsn string, logger core.Logger) (*Store, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if err := ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Info("postgres storage ready")
	return &Store{db: db, log: logger}, nil
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	if s.closed.Load() {
		return nil, core.ErrClosed
	}
	var value []byte
	if err := s.db.GetContext(ctx, &value, loadQuery, key); err != nil {
		if errors.Cause(err) == sql.ErrNoRows {
			return nil, core.ErrKeyNotFound
		}
		return nil, errors.Wrapf(err, "loading %s", key)
	}
	return value, nil
}

func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	if s.closed.Load() {
		return core.ErrClosed
	}
	if _, err := s.db.ExecContext(ctx, saveQuery, key, string(value)); err != nil {
		return errors.Wrapf(err, "saving %s", key)
	}
	s.log.Debug("slot saved", "key", key, "bytes", len(value))
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if s.closed.Load() {
		return core.ErrClosed
	}
	_, err := s.db.ExecContext(ctx, deleteQuery, key)
	return errors.Wrapf(err, "deleting %s", key)
}

func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	s.log.Info("closing postgres storage")
	return s.db.Close()
}
