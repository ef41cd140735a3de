package tracker

import (
	"context"
	"strings"
	"time"

	"gamedatatrack/internal/common"
	"gamedatatrack/internal/config"
	"gamedatatrack/internal/datastore"
	"gamedatatrack/internal/differ"
	"gamedatatrack/internal/fetcher"
	"gamedatatrack/internal/gamedata"
	"gamedatatrack/internal/notifier"
	"gamedatatrack/internal/reporter"

	"github.com/rs/zerolog"
)

// Tracker runs one sequential pass over the configured tracked files: fetch,
// compare against the stored snapshot, and persist changes. Failures are
// isolated per file; the run is reported as failed only after every file was
// attempted.
type Tracker struct {
	cfg                *config.TrackerConfig
	logger             zerolog.Logger
	fetcher            *fetcher.Fetcher
	prettifier         *gamedata.Prettifier
	snapshotStore      *datastore.SnapshotStore
	historyStore       *datastore.HistoryStore
	observationStore   *datastore.ObservationStore
	checkLogStore      *datastore.CheckLogStore
	contentDiffer      *differ.ContentDiffer
	notificationHelper *notifier.NotificationHelper
	readmeUpdater      *reporter.ReadmeUpdater
}

// Run checks every tracked file once, including files discovered from
// external variables. It returns the run summary and a non-nil error when any
// check failed.
func (t *Tracker) Run(ctx context.Context) (*RunSummary, error) {
	startTime := time.Now()
	summary := &RunSummary{}

	rulesBySource := t.discoveryRulesBySource()

	queue := make([]TrackedFile, 0, len(t.cfg.TrackedFiles))
	for _, tf := range t.cfg.TrackedFiles {
		queue = append(queue, TrackedFile{Name: tf.Name, URL: tf.URL, Prettify: tf.Prettify})
	}

	for i := 0; i < len(queue); i++ {
		file := queue[i]

		result := t.checkFile(ctx, file)
		summary.Results = append(summary.Results, result)
		summary.TotalChecked++

		switch {
		case result.Error != nil:
			summary.Failed++
			summary.ErrorMessages = append(summary.ErrorMessages, result.File.Name+": "+result.Error.Error())
			t.logger.Error().Err(result.Error).Str("file", file.Name).Str("url", file.URL).Msg("Check failed")
		case result.Changed:
			summary.Changed++
		default:
			summary.Unchanged++
		}

		if rules := rulesBySource[file.Name]; len(rules) > 0 {
			queue = append(queue, t.discoverFiles(file, result, rules)...)
		}
	}

	summary.Duration = time.Since(startTime)

	t.appendCheckLog(ctx, summary.Results)

	if summary.Failed > 0 {
		if t.notificationHelper != nil {
			t.notificationHelper.NotifyRunFailure(ctx, summary.ErrorMessages)
		}
		return summary, common.NewError("run finished with %d failed check(s):\n  %s",
			summary.Failed, strings.Join(summary.ErrorMessages, "\n  "))
	}

	t.logger.Info().
		Int("checked", summary.TotalChecked).
		Int("changed", summary.Changed).
		Int("unchanged", summary.Unchanged).
		Dur("duration", summary.Duration).
		Msg("Tracking run finished")
	return summary, nil
}

// discoveryRulesBySource groups the configured discovery rules by the tracked
// file that carries the external variables.
func (t *Tracker) discoveryRulesBySource() map[string][]config.DiscoveryRuleConfig {
	rules := make(map[string][]config.DiscoveryRuleConfig)
	for _, rule := range t.cfg.DiscoveryRules {
		rules[rule.Source] = append(rules[rule.Source], rule)
	}
	return rules
}

// discoverFiles resolves discovery rules against the external variables of a
// just-checked source file. When the fetch returned no body (304 or failure)
// the stored snapshot is parsed instead, so discovered files are still
// checked every run. A variable that is absent only skips that one rule.
func (t *Tracker) discoverFiles(source TrackedFile, result CheckResult, rules []config.DiscoveryRuleConfig) []TrackedFile {
	content := result.Content
	if content == nil {
		snapshot, err := t.snapshotStore.Read(source.Name)
		if err != nil || snapshot == nil {
			t.logger.Warn().Str("source", source.Name).Msg("No content available to resolve discovery rules")
			return nil
		}
		content = snapshot
	}

	vars := gamedata.ParseExternalVariables(content)

	discovered := make([]TrackedFile, 0, len(rules))
	for _, rule := range rules {
		url, ok := vars.Lookup(rule.Key)
		if !ok {
			t.logger.Warn().Str("source", source.Name).Str("key", rule.Key).Msg("External variable not found, skipping discovered file")
			continue
		}
		t.logger.Debug().Str("source", source.Name).Str("key", rule.Key).Str("url", url).Msg("Discovered tracked file")
		discovered = append(discovered, TrackedFile{Name: rule.Name, URL: url, Discovered: true})
	}
	return discovered
}

// appendCheckLog persists one check record per result. Log append failures do
// not fail the run; the snapshots on disk remain the source of truth.
func (t *Tracker) appendCheckLog(ctx context.Context, results []CheckResult) {
	if t.checkLogStore == nil {
		return
	}

	records := make([]datastore.CheckRecord, 0, len(results))
	for _, result := range results {
		record := datastore.CheckRecord{
			FileName:     result.File.Name,
			URL:          result.File.URL,
			CheckedAt:    result.CheckedAt.UnixMilli(),
			ContentHash:  result.NewHash,
			PreviousHash: result.OldHash,
			Changed:      result.Changed,
			StatusCode:   int32(result.StatusCode),
		}
		if result.Error != nil {
			record.Error = result.Error.Error()
		}
		records = append(records, record)
	}

	if err := t.checkLogStore.Append(ctx, records); err != nil {
		t.logger.Error().Err(err).Msg("Failed to append check records")
	}
}
