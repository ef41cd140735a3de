package datastore

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"gamedatatrack/internal/common"

	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"
)

const checkLogFileName = "checks.parquet"

// CheckRecord is one per-file check outcome, appended every run. It is the
// audit trail behind the snapshots: what was checked, when, and whether it
// changed.
type CheckRecord struct {
	FileName     string `parquet:"file_name"`
	URL          string `parquet:"url"`
	CheckedAt    int64  `parquet:"checked_at"` // Unix milliseconds
	ContentHash  string `parquet:"content_hash,optional"`
	PreviousHash string `parquet:"previous_hash,optional"`
	Changed      bool   `parquet:"changed"`
	StatusCode   int32  `parquet:"status_code,optional"`
	Error        string `parquet:"error,optional"`
}

// CheckLogStore handles writing check records to a Parquet file.
type CheckLogStore struct {
	basePath string
	logger   zerolog.Logger
}

// NewCheckLogStore creates a new CheckLogStore.
func NewCheckLogStore(basePath string, logger zerolog.Logger) (*CheckLogStore, error) {
	if basePath == "" {
		return nil, common.NewValidationError("check_log_base_path", basePath, "check log base path is not configured")
	}
	return &CheckLogStore{
		basePath: basePath,
		logger:   logger.With().Str("component", "CheckLogStore").Logger(),
	}, nil
}

// Append adds a slice of CheckRecord to the Parquet log. A parquet file
// cannot be extended in place, so existing records are loaded and the file is
// rewritten with the new records included.
func (cls *CheckLogStore) Append(ctx context.Context, records []CheckRecord) error {
	if len(records) == 0 {
		return nil
	}

	filePath, err := cls.prepareOutputFile()
	if err != nil {
		return err
	}

	existing, err := cls.Load(ctx)
	if err != nil {
		return common.WrapError(err, "failed to load existing check records")
	}

	if err := cls.writeToParquetFile(filePath, append(existing, records...)); err != nil {
		return err
	}

	cls.logger.Debug().Str("file_path", filePath).Int("records_written", len(records)).Msg("Wrote check records to Parquet file")
	return nil
}

func (cls *CheckLogStore) prepareOutputFile() (string, error) {
	if err := os.MkdirAll(cls.basePath, 0755); err != nil {
		return "", common.WrapError(err, "failed to create check log directory: "+cls.basePath)
	}
	return filepath.Join(cls.basePath, checkLogFileName), nil
}

func (cls *CheckLogStore) writeToParquetFile(filePath string, records []CheckRecord) error {
	// Written to a temp file and renamed so a failed rewrite cannot truncate
	// the existing log.
	tmpFile, err := os.CreateTemp(cls.basePath, checkLogFileName+".tmp-*")
	if err != nil {
		return common.WrapError(err, "failed to create temp check log parquet file")
	}
	tmpPath := tmpFile.Name()

	writer := parquet.NewGenericWriter[CheckRecord](tmpFile, parquet.Compression(&parquet.Zstd))

	if _, err = writer.Write(records); err != nil {
		_ = writer.Close()
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return common.WrapError(err, "failed to write check records to parquet file")
	}
	if err := writer.Close(); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return common.WrapError(err, "failed to close parquet writer")
	}
	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return common.WrapError(err, "failed to close temp check log parquet file")
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		_ = os.Remove(tmpPath)
		return common.WrapError(err, "failed to replace check log parquet file: "+filePath)
	}
	return nil
}

// Load reads all check records from the Parquet log. Missing log files yield
// an empty slice.
func (cls *CheckLogStore) Load(ctx context.Context) ([]CheckRecord, error) {
	filePath, err := cls.prepareOutputFile()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return []CheckRecord{}, nil
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, common.WrapError(err, "failed to open check log parquet file for reading: "+filePath)
	}
	defer file.Close()

	reader := parquet.NewGenericReader[CheckRecord](file)
	defer reader.Close()

	records := make([]CheckRecord, 0)
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		batch := make([]CheckRecord, 100)
		n, err := reader.Read(batch)
		if n > 0 {
			records = append(records, batch[:n]...)
		}
		if err != nil {
			if err == io.EOF {
				return records, nil
			}
			return nil, common.WrapError(err, "failed to read check records from parquet file")
		}
	}
}
