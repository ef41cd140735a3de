package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamedatatrack/internal/config"
	"gamedatatrack/internal/datastore"
	"gamedatatrack/internal/fetcher"
	"gamedatatrack/internal/gamedata"
	"gamedatatrack/internal/logger"
	"gamedatatrack/internal/notifier"
	"gamedatatrack/internal/reporter"
	"gamedatatrack/internal/tracker"
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile)
	if err != nil {
		log.Printf("[FATAL] Could not load global config using path '%s': %v", flags.GlobalConfigFile, err)
		return 1
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Printf("[FATAL] Could not initialize logger: %v", err)
		return 1
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Error().Err(err).Msg("Configuration validation failed")
		return 1
	}

	if len(gCfg.TrackerConfig.TrackedFiles) == 0 {
		zLogger.Error().Msg("No tracked files configured. Nothing to do.")
		return 1
	}

	// The invoker (scheduler or operator) can interrupt a run; in-flight
	// fetches are cancelled, finished snapshot writes stay in place.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	snapshotStore, err := datastore.NewSnapshotStore(gCfg.StorageConfig.SnapshotDir, zLogger)
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to initialize snapshot store")
		return 1
	}

	historyStore, err := datastore.NewHistoryStore(gCfg.StorageConfig.HistoryDir, zLogger)
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to initialize history store")
		return 1
	}

	observationStore, err := datastore.NewObservationStore(gCfg.StorageConfig.ObservationDBPath, zLogger)
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to initialize observation store")
		return 1
	}
	defer observationStore.Close()

	checkLogStore, err := datastore.NewCheckLogStore(gCfg.StorageConfig.CheckLogBasePath, zLogger)
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to initialize check log store")
		return 1
	}

	discordNotifier := notifier.NewDiscordNotifier(zLogger, &http.Client{Timeout: 20 * time.Second})
	notificationHelper := notifier.NewNotificationHelper(discordNotifier, gCfg.NotificationConfig, zLogger)

	trackerInstance, err := tracker.NewTrackerBuilder(zLogger).
		WithConfig(&gCfg.TrackerConfig).
		WithFetcher(fetcher.NewFetcher(nil, zLogger, &gCfg.TrackerConfig)).
		WithPrettifier(gamedata.NewPrettifier(zLogger)).
		WithSnapshotStore(snapshotStore).
		WithHistoryStore(historyStore).
		WithObservationStore(observationStore).
		WithCheckLogStore(checkLogStore).
		WithNotificationHelper(notificationHelper).
		WithReadmeUpdater(reporter.NewReadmeUpdater(gCfg.StorageConfig.ReadmePath, zLogger)).
		Build()
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to initialize tracker")
		return 1
	}

	zLogger.Info().Int("tracked_files", len(gCfg.TrackerConfig.TrackedFiles)).Msg("Starting tracking run")

	summary, err := trackerInstance.Run(ctx)
	if err != nil {
		zLogger.Error().Err(err).
			Int("checked", summary.TotalChecked).
			Int("failed", summary.Failed).
			Msg("Tracking run failed")
		return 1
	}

	return 0
}
