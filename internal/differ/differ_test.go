package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentDiffer_Identical(t *testing.T) {
	cd := NewContentDiffer()

	stats := cd.Diff([]byte("a\nb\nc\n"), []byte("a\nb\nc\n"))

	assert.True(t, stats.IsIdentical)
	assert.Zero(t, stats.LinesAdded)
	assert.Zero(t, stats.LinesDeleted)
}

func TestContentDiffer_AddedLines(t *testing.T) {
	cd := NewContentDiffer()

	stats := cd.Diff([]byte("a\nb\n"), []byte("a\nb\nc\nd\n"))

	assert.False(t, stats.IsIdentical)
	assert.Equal(t, 2, stats.LinesAdded)
	assert.Zero(t, stats.LinesDeleted)
}

func TestContentDiffer_DeletedLines(t *testing.T) {
	cd := NewContentDiffer()

	stats := cd.Diff([]byte("a\nb\nc\n"), []byte("a\n"))

	assert.False(t, stats.IsIdentical)
	assert.Zero(t, stats.LinesAdded)
	assert.Equal(t, 2, stats.LinesDeleted)
}

func TestContentDiffer_ChangedLine(t *testing.T) {
	cd := NewContentDiffer()

	stats := cd.Diff([]byte("key=old\n"), []byte("key=new\n"))

	assert.False(t, stats.IsIdentical)
	assert.Equal(t, 1, stats.LinesAdded)
	assert.Equal(t, 1, stats.LinesDeleted)
}

func TestContentDiffer_FromEmpty(t *testing.T) {
	cd := NewContentDiffer()

	stats := cd.Diff(nil, []byte("a\nb\n"))

	assert.False(t, stats.IsIdentical)
	assert.Equal(t, 2, stats.LinesAdded)
	assert.Zero(t, stats.LinesDeleted)
}
