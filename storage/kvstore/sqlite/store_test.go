package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/genmo/core"
	logsvc "github.com/trezcool/genmo/services/logger"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "genmo.db")

	s, err := Open(path, logsvc.NewNopLogger())
	require.NoError(t, err)

	_, err = s.Load(ctx, "genmo-clients")
	assert.Equal(t, core.ErrKeyNotFound, err)

	require.NoError(t, s.Save(ctx, "genmo-clients", []byte(`[{"id":"c1"}]`)))
	require.NoError(t, s.Save(ctx, "genmo-clients", []byte(`[{"id":"c2"}]`)))
	require.NoError(t, s.Close())
	assert.Equal(t, core.ErrClosed, s.Save(ctx, "genmo-clients", []byte(`[]`)))
	assert.NoError(t, s.Close())

	// reopen: data survives
	s, err = Open(path, logsvc.NewNopLogger())
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	got, err := s.Load(ctx, "genmo-clients")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"c2"}]`, string(got))

	require.NoError(t, s.Delete(ctx, "genmo-clients"))
	_, err = s.Load(ctx, "genmo-clients")
	assert.Equal(t, core.ErrKeyNotFound, err)
}
