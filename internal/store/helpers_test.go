// internal/store/helpers_test.go
package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eventide-app/eventide-backend/internal/kv"
)

// blankKeys writes empty lists so tests start from an empty collection
// instead of the fixture seed.
func blankKeys(t *testing.T, store kv.Store, keys ...string) {
	t.Helper()
	for _, key := range keys {
		require.NoError(t, store.Set(key, []byte(`[]`)))
	}
}
