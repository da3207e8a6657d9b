package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeUnderTest builds each Store implementation that can run without
// external services.
func storesUnderTest(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fileStore,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			require.NoError(t, store.Set(ctx, "solace:user_contexts", []byte(`{"u1":{}}`)))

			got, err := store.Get(ctx, "solace:user_contexts")
			require.NoError(t, err)
			assert.JSONEq(t, `{"u1":{}}`, string(got))

			// Overwrite wins.
			require.NoError(t, store.Set(ctx, "solace:user_contexts", []byte(`{"u2":{}}`)))
			got, err = store.Get(ctx, "solace:user_contexts")
			require.NoError(t, err)
			assert.JSONEq(t, `{"u2":{}}`, string(got))
		})
	}
}

func TestStoreGetMissingKey(t *testing.T) {
	ctx := context.Background()

	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			_, err := store.Get(ctx, "absent")
			assert.ErrorIs(t, err, ErrKeyNotFound)
		})
	}
}

func TestStoreDelete(t *testing.T) {
	ctx := context.Background()

	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			require.NoError(t, store.Set(ctx, "k", []byte("v")))
			require.NoError(t, store.Delete(ctx, "k"))

			_, err := store.Get(ctx, "k")
			assert.ErrorIs(t, err, ErrKeyNotFound)

			// Deleting an absent key is not an error.
			assert.NoError(t, store.Delete(ctx, "k"))
		})
	}
}

func TestFileStoreEscapesKeys(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "solace:conversation_memories", []byte("{}")))
	got, err := store.Get(ctx, "solace:conversation_memories")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(got))
}

func TestFileStoreRequiresDirectory(t *testing.T) {
	_, err := NewFileStore("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRedisConfigValidate(t *testing.T) {
	assert.ErrorIs(t, RedisConfig{}.Validate(), ErrInvalidConfig)
	assert.NoError(t, RedisConfig{Addr: "localhost:6379"}.Validate())
}
