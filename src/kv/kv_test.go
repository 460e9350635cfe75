package kv_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"infoslide/src/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStores(t *testing.T) map[string]kv.Store {
	t.Helper()
	file, err := kv.OpenFile(filepath.Join(t.TempDir(), "nested", "store.yaml"))
	require.NoError(t, err)
	return map[string]kv.Store{
		"memory": kv.NewMemory(),
		"file":   file,
	}
}

func TestStoreContract(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := store.Get("missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, store.Set("memos", json.RawMessage(`[{"date":"2024-07-01"}]`)))
			v, ok, err := store.Get("memos")
			require.NoError(t, err)
			require.True(t, ok)
			assert.JSONEq(t, `[{"date":"2024-07-01"}]`, string(v))

			require.NoError(t, store.Set("memos", json.RawMessage(`[]`)))
			v, _, err = store.Get("memos")
			require.NoError(t, err)
			assert.JSONEq(t, `[]`, string(v))

			assert.ErrorIs(t, store.Set("bad", json.RawMessage(`{not json`)), kv.ErrInvalidJSON)

			require.NoError(t, store.Delete("memos"))
			require.NoError(t, store.Delete("memos"))
			_, ok, err = store.Get("memos")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	store := kv.NewMemory()
	value := json.RawMessage(`{"a":1}`)
	require.NoError(t, store.Set("k", value))
	value[2] = 'b'

	got, _, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))
}

func TestFilePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.yaml")

	first, err := kv.OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, first.Set("visualization_memos", json.RawMessage(`[{"stage":"one: \"quoted\""}]`)))

	second, err := kv.OpenFile(path)
	require.NoError(t, err)
	v, ok, err := second.Get("visualization_memos")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"stage":"one: \"quoted\""}]`, string(v))
}

func TestOpenFileRejectsCorruptStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0644))

	_, err := kv.OpenFile(path)
	assert.Error(t, err)

	_, err = kv.OpenFile("")
	assert.Error(t, err)
}
