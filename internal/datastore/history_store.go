package datastore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gamedatatrack/internal/common"

	"github.com/rs/zerolog"
)

// HistoryStore archives the raw bytes of every detected change as
// <base>_<timestamp>_<hash>.<ext> so the full revision history survives even
// when snapshots are later overwritten. The raw (un-prettified) response is
// stored.
type HistoryStore struct {
	baseDir string
	logger  zerolog.Logger
}

// NewHistoryStore creates a new HistoryStore rooted at baseDir.
func NewHistoryStore(baseDir string, logger zerolog.Logger) (*HistoryStore, error) {
	if baseDir == "" {
		return nil, common.NewValidationError("history_dir", baseDir, "history directory is not configured")
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, common.WrapError(err, "failed to create history directory: "+baseDir)
	}
	return &HistoryStore{
		baseDir: baseDir,
		logger:  logger.With().Str("component", "HistoryStore").Logger(),
	}, nil
}

// ArchiveInput holds parameters for Archive.
type ArchiveInput struct {
	Name      string
	Content   []byte
	Timestamp string
	Hash      string
}

// Archive stores a historical copy of changed content and returns its path.
func (hs *HistoryStore) Archive(input ArchiveInput) (string, error) {
	historicalPath := filepath.Join(hs.baseDir, historicalFileName(input.Name, input.Timestamp, input.Hash))

	// Tracked names may contain separators; mirror that layout under baseDir.
	if dir := filepath.Dir(historicalPath); dir != hs.baseDir {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", common.WrapError(err, "failed to create history subdirectory: "+dir)
		}
	}

	if err := os.WriteFile(historicalPath, input.Content, 0644); err != nil {
		return "", common.WrapError(err, "failed to write historical copy: "+historicalPath)
	}

	hs.logger.Info().Str("file", input.Name).Str("path", historicalPath).Msg("Saved historical copy")
	return historicalPath, nil
}

// historicalFileName builds "<base>_<timestamp>_<hash>.<ext>" from a snapshot
// file name. A name without an extension gets the suffix appended directly.
func historicalFileName(name, timestamp, hash string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if ext == "" {
		return fmt.Sprintf("%s_%s_%s", base, timestamp, hash)
	}
	return fmt.Sprintf("%s_%s_%s%s", base, timestamp, hash, ext)
}
