package sqlite

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormLogger "gorm.io/gorm/logger"

	"github.com/trezcool/genmo/core"
)

type slot struct {
	Key       string         `gorm:"column:key;primaryKey"`
	Value     datatypes.JSON `gorm:"column:value"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (slot) TableName() string { return "kv_slots" }

// Store keeps slots in a single sqlite table.
type Store struct {
	db     *gorm.DB
	log    core.Logger
	closed atomic.Bool
}

var _ core.KVStore = (*Store)(nil)

// Open opens (or creates) the sqlite file at path and migrates the slots table.
func Open(path string, logger core.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "opening sqlite")
	}
	if err := db.AutoMigrate(&slot{}); err != nil {
		return nil, pkgerrors.Wrap(err, "migrating sqlite")
	}
	logger.Info("sqlite storage ready", "path", path)
	return &Store{db: db, log: logger}, nil
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	if s.closed.Load() {
		return nil, core.ErrClosed
	}
	var row slot
	err := s.db.WithContext(ctx).Where("key = ?", key).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, core.ErrKeyNotFound
	}
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "loading %s", key)
	}
	return []byte(row.Value), nil
}

func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	if s.closed.Load() {
		return core.ErrClosed
	}
	row := slot{Key: key, Value: datatypes.JSON(value), UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return pkgerrors.Wrapf(err, "saving %s", key)
	}
	s.log.Debug("slot saved", "key", key, "bytes", len(value))
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if s.closed.Load() {
		return core.ErrClosed
	}
	err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&slot{}).Error
	return pkgerrors.Wrapf(err, "deleting %s", key)
}

func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	s.log.Info("closing sqlite storage")
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
