package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/genmo/core"
	logsvc "github.com/trezcool/genmo/services/logger"
	"github.com/trezcool/genmo/storage/kvstore/inmem"
	"github.com/trezcool/genmo/storage/kvstore/sqlite"
)

func TestOpen(t *testing.T) {
	log := logsvc.NewNopLogger()
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		kv, err := Open(ctx, &core.Config{Storage: core.StorageConfig{Backend: BackendMemory}}, log)
		require.NoError(t, err)
		assert.IsType(t, &inmem.Store{}, kv)
	})

	t.Run("sqlite", func(t *testing.T) {
		conf := &core.Config{Storage: core.StorageConfig{
			Backend:    BackendSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "genmo.db"),
		}}
		kv, err := Open(ctx, conf, log)
		require.NoError(t, err)
		defer func() { _ = kv.Close() }()
		assert.IsType(t, &sqlite.Store{}, kv)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Open(ctx, &core.Config{Storage: core.StorageConfig{Backend: "mongo"}}, log)
		assert.Equal(t, ErrUnknownBackend, errors.Cause(err))
	})
}
