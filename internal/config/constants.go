package config

// Default values used when a config section is missing or partially specified.
const (
	DefaultLogFile       = ""
	DefaultLogFormat     = "console"
	DefaultLogLevel      = "info"
	DefaultMaxLogBackups = 3
	DefaultMaxLogSizeMB  = 100

	DefaultHTTPTimeoutSeconds = 30
	DefaultMaxContentSize     = 10 * 1024 * 1024 // 10MB
	DefaultUserAgent          = "gamedatatrack"

	DefaultSnapshotDir       = "."
	DefaultHistoryDir        = "history"
	DefaultObservationDBPath = "data/observations.db"
	DefaultCheckLogBasePath  = "data"
	DefaultReadmePath        = ""

	// ConfigPathEnvVar overrides config file discovery when set.
	ConfigPathEnvVar = "GAMEDATATRACK_CONFIG_PATH"
)
