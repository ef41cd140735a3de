package tracker

import (
	"bytes"
	"context"
	"errors"
	"time"

	"gamedatatrack/internal/common"
	"gamedatatrack/internal/datastore"
	"gamedatatrack/internal/fetcher"
	"gamedatatrack/internal/notifier"
)

// checkFile runs the fetch/compare/write cycle for one tracked file. Any
// error is recorded on the result; it never aborts the remaining files.
func (t *Tracker) checkFile(ctx context.Context, file TrackedFile) CheckResult {
	result := CheckResult{
		File:      file,
		CheckedAt: time.Now(),
	}

	previousContent, err := t.snapshotStore.Read(file.Name)
	if err != nil {
		result.Error = common.WrapError(err, "reading prior snapshot")
		return result
	}
	if previousContent != nil {
		result.OldHash = datastore.HashContent(previousContent)
	}

	fetchInput := fetcher.FetchInput{URL: file.URL}
	if t.cfg.UseConditionalGet && previousContent != nil {
		fetchInput.PreviousETag, fetchInput.PreviousLastModified = t.previousValidators(file.Name)
	}

	fetchResult, err := t.fetcher.Fetch(ctx, fetchInput)
	if err != nil {
		if errors.Is(err, fetcher.ErrNotModified) {
			// The server vouches the content is unchanged; the snapshot and
			// observation record stay as they are.
			result.StatusCode = fetchResult.HTTPStatusCode
			result.NewHash = result.OldHash
			t.logger.Info().Str("file", file.Name).Msg("File has not changed (304)")
			return result
		}
		if fetchResult != nil {
			result.StatusCode = fetchResult.HTTPStatusCode
		}
		result.Error = common.WrapError(err, "fetching remote content")
		return result
	}
	result.StatusCode = fetchResult.HTTPStatusCode

	rawContent := fetchResult.Content
	content := rawContent
	if file.Prettify {
		content = t.prettifier.Prettify(file.Name, rawContent)
	}
	result.Content = content
	result.NewHash = datastore.HashContent(content)

	// Byte equality against the stored snapshot decides whether this counts
	// as a change. An absent snapshot always counts as changed.
	if previousContent != nil && bytes.Equal(content, previousContent) {
		t.logger.Info().Str("file", file.Name).Str("hash", result.NewHash).Msg("File has not changed")
		return result
	}

	result.Changed = true
	result.ChangedAt = t.changeTimestamp(fetchResult)

	t.logger.Info().
		Str("file", file.Name).
		Str("old_hash", result.OldHash).
		Str("new_hash", result.NewHash).
		Str("changed_at", result.ChangedAt).
		Msg("File was changed")

	// The history copy and observation record are persisted before the
	// snapshot. The snapshot's atomic rename is the commit point: if anything
	// before it fails, the old snapshot stays in place and the next run
	// detects the same change again.
	if t.historyStore != nil {
		// The raw, un-prettified response is archived.
		historyPath, err := t.historyStore.Archive(datastore.ArchiveInput{
			Name:      file.Name,
			Content:   rawContent,
			Timestamp: result.ChangedAt,
			Hash:      result.NewHash,
		})
		if err != nil {
			result.Changed = false
			result.Error = common.WrapError(err, "archiving historical copy")
			return result
		}
		result.HistoryPath = historyPath
	}

	if t.observationStore != nil {
		record := datastore.ObservationRecord{
			FileName:     file.Name,
			URL:          file.URL,
			ContentHash:  result.NewHash,
			ETag:         fetchResult.ETag,
			LastModified: fetchResult.LastModified,
			ChangedAt:    result.ChangedAt,
		}
		if err := t.observationStore.RecordChange(record); err != nil {
			result.Changed = false
			result.Error = common.WrapError(err, "recording observation")
			return result
		}
	}

	if err := t.snapshotStore.Write(file.Name, content); err != nil {
		result.Changed = false
		result.Error = common.WrapError(err, "writing snapshot")
		return result
	}

	if previousContent != nil && t.contentDiffer != nil {
		result.DiffStats = t.contentDiffer.Diff(previousContent, content)
	}

	if t.readmeUpdater != nil {
		// README rows are cosmetic; a failed rewrite does not fail the check.
		if err := t.readmeUpdater.UpdateTimestamp(file.Name, result.ChangedAt); err != nil {
			t.logger.Warn().Err(err).Str("file", file.Name).Msg("Failed to update README timestamp")
		}
	}

	if t.notificationHelper != nil {
		t.notificationHelper.NotifyChange(ctx, notifier.ChangeNotification{
			FileName:     file.Name,
			URL:          file.URL,
			OldHash:      result.OldHash,
			NewHash:      result.NewHash,
			ChangedAt:    result.ChangedAt,
			LinesAdded:   result.DiffStats.LinesAdded,
			LinesDeleted: result.DiffStats.LinesDeleted,
		})
	}

	return result
}

// previousValidators loads the stored ETag and Last-Modified values for a
// file, if an observation record exists.
func (t *Tracker) previousValidators(fileName string) (etag string, lastModified string) {
	if t.observationStore == nil {
		return "", ""
	}
	record, err := t.observationStore.Get(fileName)
	if err != nil || record == nil {
		return "", ""
	}
	return record.ETag, record.LastModified
}

// changeTimestamp picks the timestamp recorded for a change: the upstream
// Last-Modified header when the server provides one, otherwise the current
// UTC time. First-detection semantics either way.
func (t *Tracker) changeTimestamp(fetchResult *fetcher.FetchResult) string {
	if lastModified, ok := fetchResult.LastModifiedTime(); ok {
		return common.FormatTimestamp(lastModified)
	}
	return common.FormatTimestamp(time.Now())
}
