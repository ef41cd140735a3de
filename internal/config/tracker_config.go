package config

// TrackedFileConfig describes a single remote file to track.
// Name is the snapshot file name relative to the snapshot directory and
// doubles as the file's identity in the observation store.
type TrackedFileConfig struct {
	Name     string `json:"name" yaml:"name" validate:"required"`
	URL      string `json:"url" yaml:"url" validate:"required,url"`
	Prettify bool   `json:"prettify" yaml:"prettify"`
}

// DiscoveryRuleConfig maps an external-variables key found in a tracked file
// to an additional file tracked under Name. The source file must be listed in
// TrackedFiles and is parsed after it has been fetched.
type DiscoveryRuleConfig struct {
	Source string `json:"source" yaml:"source" validate:"required"`
	Key    string `json:"key" yaml:"key" validate:"required"`
	Name   string `json:"name" yaml:"name" validate:"required"`
}

// TrackerConfig defines configuration for the tracker run
type TrackerConfig struct {
	TrackedFiles       []TrackedFileConfig   `json:"tracked_files,omitempty" yaml:"tracked_files,omitempty" validate:"omitempty,dive"`
	DiscoveryRules     []DiscoveryRuleConfig `json:"discovery_rules,omitempty" yaml:"discovery_rules,omitempty" validate:"omitempty,dive"`
	HTTPTimeoutSeconds int                   `json:"http_timeout_seconds,omitempty" yaml:"http_timeout_seconds,omitempty" validate:"omitempty,min=1"`
	MaxContentSize     int                   `json:"max_content_size,omitempty" yaml:"max_content_size,omitempty" validate:"omitempty,min=1"`
	UserAgent          string                `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	UseConditionalGet  bool                  `json:"use_conditional_get" yaml:"use_conditional_get"`
}

// NewDefaultTrackerConfig creates default tracker configuration
func NewDefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		TrackedFiles:       []TrackedFileConfig{},
		DiscoveryRules:     []DiscoveryRuleConfig{},
		HTTPTimeoutSeconds: DefaultHTTPTimeoutSeconds,
		MaxContentSize:     DefaultMaxContentSize,
		UserAgent:          DefaultUserAgent,
		UseConditionalGet:  false,
	}
}
