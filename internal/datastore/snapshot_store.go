package datastore

import (
	"os"
	"path/filepath"

	"gamedatatrack/internal/common"

	"github.com/rs/zerolog"
)

// SnapshotStore reads and writes the last-known content of tracked files.
// Writes are atomic (temp file + rename) so the downstream commit step never
// observes a partial snapshot.
type SnapshotStore struct {
	baseDir string
	logger  zerolog.Logger
}

// NewSnapshotStore creates a new SnapshotStore rooted at baseDir.
func NewSnapshotStore(baseDir string, logger zerolog.Logger) (*SnapshotStore, error) {
	if baseDir == "" {
		return nil, common.NewValidationError("snapshot_dir", baseDir, "snapshot directory is not configured")
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, common.WrapError(err, "failed to create snapshot directory: "+baseDir)
	}
	return &SnapshotStore{
		baseDir: baseDir,
		logger:  logger.With().Str("component", "SnapshotStore").Logger(),
	}, nil
}

// Path returns the snapshot path for a tracked file name.
func (ss *SnapshotStore) Path(name string) string {
	return filepath.Join(ss.baseDir, name)
}

// Read returns the stored snapshot bytes for a tracked file.
// A missing snapshot (first run) is not an error; it returns (nil, nil).
func (ss *SnapshotStore) Read(name string) ([]byte, error) {
	content, err := os.ReadFile(ss.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			ss.logger.Debug().Str("file", name).Msg("No prior snapshot exists")
			return nil, nil
		}
		return nil, common.WrapError(err, "failed to read snapshot: "+name)
	}
	return content, nil
}

// Write replaces the snapshot for a tracked file with new content. The
// content is written to a temp file in the same directory and renamed into
// place.
func (ss *SnapshotStore) Write(name string, content []byte) error {
	finalPath := ss.Path(name)

	if dir := filepath.Dir(finalPath); dir != ss.baseDir {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return common.WrapError(err, "failed to create snapshot subdirectory: "+dir)
		}
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(finalPath), filepath.Base(finalPath)+".tmp-*")
	if err != nil {
		return common.WrapError(err, "failed to create temp snapshot file for: "+name)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(content); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return common.WrapError(err, "failed to write temp snapshot file for: "+name)
	}
	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return common.WrapError(err, "failed to close temp snapshot file for: "+name)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return common.WrapError(err, "failed to replace snapshot: "+name)
	}

	ss.logger.Debug().Str("file", name).Int("size", len(content)).Msg("Snapshot written")
	return nil
}
