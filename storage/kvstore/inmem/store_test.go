package inmem

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/genmo/core"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.Load(ctx, "genmo-skills")
	assert.Equal(t, core.ErrKeyNotFound, err)

	value := []byte(`[{"id":"s1"}]`)
	require.NoError(t, s.Save(ctx, "genmo-skills", value))
	value[0] = 'x' // stored copy must not change

	got, err := s.Load(ctx, "genmo-skills")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"s1"}]`, string(got))
	assert.ElementsMatch(t, []string{"genmo-skills"}, s.Keys())

	require.NoError(t, s.Save(ctx, "genmo-skills", []byte(`[]`)))
	got, err = s.Load(ctx, "genmo-skills")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	require.NoError(t, s.Delete(ctx, "genmo-skills"))
	_, err = s.Load(ctx, "genmo-skills")
	assert.Equal(t, core.ErrKeyNotFound, err)
	assert.NoError(t, s.Close())
}

func TestStore_closed(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Save(ctx, "genmo-skills", []byte(`[]`)))
	require.NoError(t, s.Close())

	_, err := s.Load(ctx, "genmo-skills")
	assert.Equal(t, core.ErrClosed, err)
	assert.Equal(t, core.ErrClosed, s.Save(ctx, "genmo-skills", []byte(`[]`)))
	assert.Equal(t, core.ErrClosed, s.Delete(ctx, "genmo-skills"))
	assert.NoError(t, s.Close())
}
