package tracker

import (
	"time"

	"gamedatatrack/internal/differ"
)

// TrackedFile is a single remote file monitored for changes.
type TrackedFile struct {
	Name     string
	URL      string
	Prettify bool

	// Discovered marks files resolved from another file's external variables
	// rather than static configuration.
	Discovered bool
}

// CheckResult represents the outcome of checking one tracked file.
type CheckResult struct {
	File        TrackedFile
	Changed     bool
	OldHash     string
	NewHash     string
	ChangedAt   string // set only when Changed
	StatusCode  int
	DiffStats   differ.DiffStats
	HistoryPath string
	Error       error
	CheckedAt   time.Time

	// Content is the (possibly prettified) fetched content, retained so
	// discovery rules can parse it. Nil when the fetch failed or the server
	// answered 304.
	Content []byte
}

// RunSummary aggregates the results of a full tracking run.
type RunSummary struct {
	TotalChecked  int
	Changed       int
	Unchanged     int
	Failed        int
	ErrorMessages []string
	Duration      time.Duration
	Results       []CheckResult
}
