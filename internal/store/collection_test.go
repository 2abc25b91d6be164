// internal/store/collection_test.go
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventide-app/eventide-backend/internal/kv"
)

func TestCorruptedCollectionIsResetNotReseeded(t *testing.T) {
	mem := kv.NewMemoryStore()
	require.NoError(t, mem.Set(eventsKey, []byte(`{definitely not a JSON array`)))
	events := NewEventStore(mem)

	assert.Empty(t, events.List())

	// The key now holds an empty list, so the fixtures never come back.
	raw, err := mem.Get(eventsKey)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), raw)
	assert.Empty(t, events.List())
}

func TestEmptiedCollectionStaysEmpty(t *testing.T) {
	mem := kv.NewMemoryStore()
	require.NoError(t, mem.Set(eventsKey, []byte(`[]`)))

	assert.Empty(t, NewEventStore(mem).List())
}

func TestIDSetAddIsIdempotent(t *testing.T) {
	mem := kv.NewMemoryStore()
	set := newIDSet(mem, savedEventIDsKey)

	set.add("a")
	set.add("a")
	assert.Equal(t, []string{"a"}, set.load())

	set.add("b")
	set.remove("a")
	assert.Equal(t, []string{"b"}, set.load())
	assert.False(t, set.contains("a"))
	assert.True(t, set.contains("b"))
}

func TestUserFindOrCreateMatchesByEmailThenName(t *testing.T) {
	mem := kv.NewMemoryStore()
	users := NewUserStore(mem)

	// user-1 is Alice in the fixtures.
	byEmail := users.FindOrCreate("Someone Else", "alice@example.com", "")
	assert.Equal(t, "user-1", byEmail.ID)

	byName := users.FindOrCreate("Bob The Builder", "", "")
	assert.Equal(t, "user-2", byName.ID)

	created := users.FindOrCreate("Newcomer", "new@example.com", "")
	assert.NotEmpty(t, created.ID)
	assert.Len(t, users.List(), 4)

	again := users.FindOrCreate("Newcomer", "new@example.com", "")
	assert.Equal(t, created.ID, again.ID)
	assert.Len(t, users.List(), 4)
}
