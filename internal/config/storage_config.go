package config

// StorageConfig defines configuration for data storage
type StorageConfig struct {
	SnapshotDir       string `json:"snapshot_dir,omitempty" yaml:"snapshot_dir,omitempty"`
	HistoryDir        string `json:"history_dir,omitempty" yaml:"history_dir,omitempty"`
	ObservationDBPath string `json:"observation_db_path,omitempty" yaml:"observation_db_path,omitempty"`
	CheckLogBasePath  string `json:"check_log_base_path,omitempty" yaml:"check_log_base_path,omitempty"`
	ReadmePath        string `json:"readme_path,omitempty" yaml:"readme_path,omitempty"`
}

// NewDefaultStorageConfig creates default storage configuration
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		SnapshotDir:       DefaultSnapshotDir,
		HistoryDir:        DefaultHistoryDir,
		ObservationDBPath: DefaultObservationDBPath,
		CheckLogBasePath:  DefaultCheckLogBasePath,
		ReadmePath:        DefaultReadmePath,
	}
}
