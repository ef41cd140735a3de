package datastore

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckLogStore_AppendAndLoad(t *testing.T) {
	store, err := NewCheckLogStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	now := time.Now().UnixMilli()
	records := []CheckRecord{
		{FileName: "a.txt", URL: "https://cdn.example.com/a", CheckedAt: now, ContentHash: "hash-a", Changed: true, StatusCode: 200},
		{FileName: "b.txt", URL: "https://cdn.example.com/b", CheckedAt: now, ContentHash: "hash-b", PreviousHash: "hash-b", Changed: false, StatusCode: 200},
		{FileName: "c.txt", URL: "https://cdn.example.com/c", CheckedAt: now, Changed: false, Error: "network error"},
	}

	require.NoError(t, store.Append(context.Background(), records))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	assert.Equal(t, "a.txt", loaded[0].FileName)
	assert.True(t, loaded[0].Changed)
	assert.Equal(t, int32(200), loaded[0].StatusCode)
	assert.Equal(t, "hash-b", loaded[1].PreviousHash)
	assert.False(t, loaded[1].Changed)
	assert.Equal(t, "network error", loaded[2].Error)
}

func TestCheckLogStore_AppendAccumulatesAcrossRuns(t *testing.T) {
	store, err := NewCheckLogStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	now := time.Now().UnixMilli()
	require.NoError(t, store.Append(context.Background(), []CheckRecord{
		{FileName: "a.txt", URL: "https://cdn.example.com/a", CheckedAt: now, ContentHash: "hash-1", Changed: true, StatusCode: 200},
	}))
	require.NoError(t, store.Append(context.Background(), []CheckRecord{
		{FileName: "a.txt", URL: "https://cdn.example.com/a", CheckedAt: now + 60_000, ContentHash: "hash-1", PreviousHash: "hash-1", Changed: false, StatusCode: 200},
	}))
	require.NoError(t, store.Append(context.Background(), []CheckRecord{
		{FileName: "a.txt", URL: "https://cdn.example.com/a", CheckedAt: now + 120_000, ContentHash: "hash-2", PreviousHash: "hash-1", Changed: true, StatusCode: 200},
	}))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	// Records from every run survive, in append order.
	assert.Equal(t, now, loaded[0].CheckedAt)
	assert.Equal(t, now+60_000, loaded[1].CheckedAt)
	assert.Equal(t, now+120_000, loaded[2].CheckedAt)
	assert.False(t, loaded[1].Changed)
	assert.Equal(t, "hash-2", loaded[2].ContentHash)
}

func TestCheckLogStore_AppendEmpty(t *testing.T) {
	store, err := NewCheckLogStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	assert.NoError(t, store.Append(context.Background(), nil))
}

func TestCheckLogStore_LoadMissingFile(t *testing.T) {
	store, err := NewCheckLogStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	records, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHashContent(t *testing.T) {
	// sha256("foo")
	assert.Equal(t, "2c26b46b68ffc68ff99b453c1d30413413422d706483bfa0f98a5e886266e7ae", HashContent([]byte("foo")))
	// Hash of empty content is still a valid identity.
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", HashContent(nil))
}
