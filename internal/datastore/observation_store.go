package datastore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// ObservationStore wraps the SQL database that records, per tracked file, when
// its content was last detected to have changed. The timestamp moves only when
// a change is detected.
type ObservationStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

// ObservationRecord represents a row in the observations table.
type ObservationRecord struct {
	FileName     string
	URL          string
	ContentHash  string
	ETag         string
	LastModified string
	ChangedAt    string // common.TimestampLayout, sortable
	UpdatedAt    time.Time
}

// NewObservationStore initializes the observation database and ensures the
// schema is set up.
func NewObservationStore(dataSourceName string, logger zerolog.Logger) (*ObservationStore, error) {
	moduleLogger := logger.With().Str("component", "ObservationStore").Logger()
	moduleLogger.Debug().Str("db_path", dataSourceName).Msg("Initializing observation database connection")

	dbDir := filepath.Dir(dataSourceName)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		moduleLogger.Error().Err(err).Str("directory", dbDir).Msg("Failed to create observation database directory")
		return nil, fmt.Errorf("failed to create observation database directory %s: %w", dbDir, err)
	}

	dbInstance, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		moduleLogger.Error().Err(err).Str("db_path", dataSourceName).Msg("Failed to open observation database")
		return nil, fmt.Errorf("sql.Open failed for %s: %w", dataSourceName, err)
	}

	store := &ObservationStore{
		db:     dbInstance,
		logger: moduleLogger,
	}

	if err := store.InitSchema(); err != nil {
		_ = store.Close()
		moduleLogger.Error().Err(err).Msg("Failed to initialize observation schema")
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (os *ObservationStore) Close() error {
	if os.db != nil {
		return os.db.Close()
	}
	return nil
}

// InitSchema creates the observations table if it doesn't already exist.
func (os *ObservationStore) InitSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS observations (
		file_name TEXT PRIMARY KEY,
		url TEXT NOT NULL,
		content_hash TEXT NOT NULL,
		etag TEXT,
		last_modified TEXT,
		changed_at TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);
	`
	if _, err := os.db.Exec(query); err != nil {
		os.logger.Error().Err(err).Msg("Failed to initialize observations schema")
		return err
	}
	return nil
}

// Get retrieves the observation record for a tracked file.
// A file that has never changed yields (nil, nil).
func (os *ObservationStore) Get(fileName string) (*ObservationRecord, error) {
	query := `SELECT file_name, url, content_hash, COALESCE(etag, ''), COALESCE(last_modified, ''), changed_at, updated_at FROM observations WHERE file_name = ?`

	record := &ObservationRecord{}
	err := os.db.QueryRow(query, fileName).Scan(
		&record.FileName,
		&record.URL,
		&record.ContentHash,
		&record.ETag,
		&record.LastModified,
		&record.ChangedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		os.logger.Error().Err(err).Str("file", fileName).Msg("Failed to query observation record")
		return nil, fmt.Errorf("failed to query observation record for %s: %w", fileName, err)
	}
	return record, nil
}

// RecordChange upserts the observation record for a tracked file after a
// content change was detected. The changed_at timestamps sort lexically, and
// a stored timestamp never moves backwards: a server whose Last-Modified
// header regresses keeps the later detection time.
func (os *ObservationStore) RecordChange(record ObservationRecord) error {
	query := `
	INSERT INTO observations (file_name, url, content_hash, etag, last_modified, changed_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(file_name) DO UPDATE SET
		url = excluded.url,
		content_hash = excluded.content_hash,
		etag = excluded.etag,
		last_modified = excluded.last_modified,
		changed_at = MAX(observations.changed_at, excluded.changed_at),
		updated_at = excluded.updated_at;
	`
	updatedAt := record.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err := os.db.Exec(query, record.FileName, record.URL, record.ContentHash, record.ETag, record.LastModified, record.ChangedAt, updatedAt)
	if err != nil {
		os.logger.Error().Err(err).Str("file", record.FileName).Msg("Failed to record observation")
		return fmt.Errorf("failed to record observation for %s: %w", record.FileName, err)
	}

	os.logger.Info().Str("file", record.FileName).Str("changed_at", record.ChangedAt).Msg("Recorded change observation")
	return nil
}
