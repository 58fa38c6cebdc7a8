package dig_container

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/trezcool/genmo/apps/api/echo"
	"github.com/trezcool/genmo/core"
	"github.com/trezcool/genmo/core/content"
)

func TestNew(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("TEST_STORAGE_BACKEND", "memory")
	t.Setenv("TEST_SERVER_DISABLEREQLOGS", "true")
	t.Setenv("TEST_STORAGE_KEYPREFIX", "dig")

	c := New()
	err := c.Invoke(func(conf *core.Config, store *content.Store, server *echoapi.Server) {
		assert.Equal(t, "memory", conf.Storage.Backend)
		assert.True(t, conf.TestMode)
		assert.Len(t, store.Skills(), 6)

		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stats", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
	require.NoError(t, err)
}
