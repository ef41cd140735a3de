package datastore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryStore_Archive(t *testing.T) {
	dir := t.TempDir()
	store, err := NewHistoryStore(dir, zerolog.Nop())
	require.NoError(t, err)

	content := []byte("raw content")
	hash := HashContent(content)

	path, err := store.Archive(ArchiveInput{
		Name:      "external_vars.txt",
		Content:   content,
		Timestamp: "2024-05-01T12-30-00",
		Hash:      hash,
	})
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.Equal(t, "external_vars_2024-05-01T12-30-00_"+hash+".txt", filepath.Base(path))

	stored, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestHistoryStore_ArchiveNestedName(t *testing.T) {
	dir := t.TempDir()
	store, err := NewHistoryStore(dir, zerolog.Nop())
	require.NoError(t, err)

	content := []byte("nested")
	hash := HashContent(content)

	path, err := store.Archive(ArchiveInput{
		Name:      "gamedata/texts.txt",
		Content:   content,
		Timestamp: "2024-05-01T12-30-00",
		Hash:      hash,
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "gamedata"), filepath.Dir(path))

	stored, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestHistoricalFileName(t *testing.T) {
	assert.Equal(t, "a_ts_hash.txt", historicalFileName("a.txt", "ts", "hash"))
	assert.Equal(t, "noext_ts_hash", historicalFileName("noext", "ts", "hash"))
	assert.Equal(t, "figure.data_ts_hash.xml", historicalFileName("figure.data.xml", "ts", "hash"))
}
