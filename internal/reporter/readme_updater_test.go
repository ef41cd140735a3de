package reporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testReadme = "# Gamedata\n" +
	"\n" +
	"| File | Source | Last Detected Update |\n" +
	"| --- | --- | --- |\n" +
	"| [`client_urls.txt`](client_urls.txt) | CDN | `2024-01-01T00-00-00` |\n" +
	"| [`external_vars.txt`](external_vars.txt) | CDN | `2024-02-02T00-00-00` |\n"

func writeTestReadme(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(path, []byte(testReadme), 0644))
	return path
}

func TestReadmeUpdater_UpdateTimestamp(t *testing.T) {
	path := writeTestReadme(t)
	ru := NewReadmeUpdater(path, zerolog.Nop())

	require.NoError(t, ru.UpdateTimestamp("client_urls.txt", "2024-05-01T12-30-00"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "| [`client_urls.txt`](client_urls.txt) | CDN | `2024-05-01T12-30-00` |")
	// The other row stays untouched.
	assert.Contains(t, string(content), "| [`external_vars.txt`](external_vars.txt) | CDN | `2024-02-02T00-00-00` |")
}

func TestReadmeUpdater_NoMatchingRow(t *testing.T) {
	path := writeTestReadme(t)
	ru := NewReadmeUpdater(path, zerolog.Nop())

	require.NoError(t, ru.UpdateTimestamp("unknown.txt", "2024-05-01T12-30-00"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testReadme, string(content))
}

func TestReadmeUpdater_Disabled(t *testing.T) {
	ru := NewReadmeUpdater("", zerolog.Nop())

	assert.False(t, ru.Enabled())
	assert.NoError(t, ru.UpdateTimestamp("client_urls.txt", "2024-05-01T12-30-00"))
}

func TestReadmeUpdater_MissingReadme(t *testing.T) {
	ru := NewReadmeUpdater(filepath.Join(t.TempDir(), "README.md"), zerolog.Nop())

	assert.Error(t, ru.UpdateTimestamp("client_urls.txt", "2024-05-01T12-30-00"))
}
