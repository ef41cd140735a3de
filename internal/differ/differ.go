package differ

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffStats summarizes the line-level changes between two snapshot versions.
// It exists for logging and notifications only; the change decision itself is
// byte equality in the tracker.
type DiffStats struct {
	LinesAdded   int
	LinesDeleted int
	IsIdentical  bool
}

// ContentDiffer computes line-based diff statistics between snapshot versions.
type ContentDiffer struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewContentDiffer creates a new ContentDiffer.
func NewContentDiffer() *ContentDiffer {
	return &ContentDiffer{
		dmp: diffmatchpatch.New(),
	}
}

// Diff compares previous and current content line-wise and returns change
// statistics.
func (cd *ContentDiffer) Diff(previousContent, currentContent []byte) DiffStats {
	prevRunes, currRunes, lines := cd.dmp.DiffLinesToRunes(string(previousContent), string(currentContent))
	diffs := cd.dmp.DiffMainRunes(prevRunes, currRunes, false)
	diffs = cd.dmp.DiffCharsToLines(diffs, lines)

	stats := DiffStats{IsIdentical: true}
	for _, diff := range diffs {
		lineCount := countLines(diff.Text)
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			stats.LinesAdded += lineCount
			stats.IsIdentical = false
		case diffmatchpatch.DiffDelete:
			stats.LinesDeleted += lineCount
			stats.IsIdentical = false
		}
	}
	return stats
}

// countLines counts the lines a diff fragment spans. A fragment without a
// trailing newline still represents one (partial) line.
func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
