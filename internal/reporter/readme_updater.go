package reporter

import (
	"os"
	"regexp"

	"gamedatatrack/internal/common"

	"github.com/rs/zerolog"
)

// ReadmeUpdater rewrites the "Last Detected Update" column of the README
// table when a tracked file changes. Rows look like:
//
//	| [`client_urls.txt`](client_urls.txt) | ... | `2024-01-02T03-04-05` |
//
// Identification is by the backticked link label matching the snapshot name.
type ReadmeUpdater struct {
	readmePath string
	logger     zerolog.Logger
}

// NewReadmeUpdater creates a new ReadmeUpdater. An empty readmePath disables
// updates.
func NewReadmeUpdater(readmePath string, logger zerolog.Logger) *ReadmeUpdater {
	return &ReadmeUpdater{
		readmePath: readmePath,
		logger:     logger.With().Str("component", "ReadmeUpdater").Logger(),
	}
}

// Enabled reports whether a README path is configured.
func (ru *ReadmeUpdater) Enabled() bool {
	return ru.readmePath != ""
}

// UpdateTimestamp replaces the last table cell of the row for the given
// tracked file name with the new timestamp. A README without a matching row
// is left unchanged.
func (ru *ReadmeUpdater) UpdateTimestamp(name, timestamp string) error {
	if !ru.Enabled() {
		return nil
	}

	content, err := os.ReadFile(ru.readmePath)
	if err != nil {
		return common.WrapError(err, "failed to read README: "+ru.readmePath)
	}

	rowRegex, err := regexp.Compile("\\[`" + regexp.QuoteMeta(name) + "`\\](.*)\\|(.*)\\|")
	if err != nil {
		return common.WrapError(err, "failed to compile README row pattern for: "+name)
	}

	updated := rowRegex.ReplaceAll(content, []byte("[`"+name+"`]${1}| `"+timestamp+"` |"))
	if string(updated) == string(content) {
		ru.logger.Debug().Str("file", name).Msg("No README row matched, nothing to update")
		return nil
	}

	if err := os.WriteFile(ru.readmePath, updated, 0644); err != nil {
		return common.WrapError(err, "failed to write README: "+ru.readmePath)
	}

	ru.logger.Info().Str("file", name).Str("timestamp", timestamp).Msg("Updated README timestamp")
	return nil
}
