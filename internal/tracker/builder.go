package tracker

import (
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

// TrackerBuilder provides a fluent interface for creating a Tracker.
type TrackerBuilder struct {
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

// NewTrackerBuilder creates a new builder.
func NewTrackerBuilder(logger zerolog.Logger) *TrackerBuilder {
	return &TrackerBuilder{
		logger:        logger,
		contentDiffer: differ.NewContentDiffer(),
	}
}

// WithConfig sets the tracker configuration.
func (b *TrackerBuilder) WithConfig(cfg *config.TrackerConfig) *TrackerBuilder {
	b.cfg = cfg
	return b
}

// WithFetcher sets the fetcher.
func (b *TrackerBuilder) WithFetcher(f *fetcher.Fetcher) *TrackerBuilder {
	b.fetcher = f
	return b
}

// WithPrettifier sets the JSON prettifier.
func (b *TrackerBuilder) WithPrettifier(p *gamedata.Prettifier) *TrackerBuilder {
	b.prettifier = p
	return b
}

// WithSnapshotStore sets the snapshot store.
func (b *TrackerBuilder) WithSnapshotStore(s *datastore.SnapshotStore) *TrackerBuilder {
	b.snapshotStore = s
	return b
}

// WithHistoryStore sets the history store.
func (b *TrackerBuilder) WithHistoryStore(s *datastore.HistoryStore) *TrackerBuilder {
	b.historyStore = s
	return b
}

// WithObservationStore sets the observation store.
func (b *TrackerBuilder) WithObservationStore(s *datastore.ObservationStore) *TrackerBuilder {
	b.observationStore = s
	return b
}

// WithCheckLogStore sets the check log store.
func (b *TrackerBuilder) WithCheckLogStore(s *datastore.CheckLogStore) *TrackerBuilder {
	b.checkLogStore = s
	return b
}

// WithNotificationHelper sets the notification helper.
func (b *TrackerBuilder) WithNotificationHelper(nh *notifier.NotificationHelper) *TrackerBuilder {
	b.notificationHelper = nh
	return b
}

// WithReadmeUpdater sets the README updater.
func (b *TrackerBuilder) WithReadmeUpdater(ru *reporter.ReadmeUpdater) *TrackerBuilder {
	b.readmeUpdater = ru
	return b
}

// Build creates a new Tracker instance.
func (b *TrackerBuilder) Build() (*Tracker, error) {
	if b.cfg == nil {
		return nil, common.NewValidationError("tracker_config", b.cfg, "tracker config cannot be nil")
	}
	if b.fetcher == nil {
		return nil, common.NewValidationError("fetcher", b.fetcher, "fetcher cannot be nil")
	}
	if b.snapshotStore == nil {
		return nil, common.NewValidationError("snapshot_store", b.snapshotStore, "snapshot store cannot be nil")
	}

	if b.prettifier == nil {
		b.prettifier = gamedata.NewPrettifier(b.logger)
	}

	return &Tracker{
		cfg:                b.cfg,
		logger:             b.logger.With().Str("component", "Tracker").Logger(),
		fetcher:            b.fetcher,
		prettifier:         b.prettifier,
		snapshotStore:      b.snapshotStore,
		historyStore:       b.historyStore,
		observationStore:   b.observationStore,
		checkLogStore:      b.checkLogStore,
		contentDiffer:      b.contentDiffer,
		notificationHelper: b.notificationHelper,
		readmeUpdater:      b.readmeUpdater,
	}, nil
}
