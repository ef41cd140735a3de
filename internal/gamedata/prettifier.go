package gamedata

import (
	"bytes"
	"encoding/json"

	"github.com/rs/zerolog"
)

// Prettifier reformats JSON gamedata so snapshot diffs stay readable in
// version control. Non-JSON content passes through untouched.
type Prettifier struct {
	logger zerolog.Logger
}

// NewPrettifier creates a new Prettifier.
func NewPrettifier(logger zerolog.Logger) *Prettifier {
	return &Prettifier{
		logger: logger.With().Str("component", "Prettifier").Logger(),
	}
}

// Prettify re-indents JSON content. When the content is not valid JSON the
// raw bytes are returned unchanged; formatting is best-effort and never an
// error for the tracking run.
func (p *Prettifier) Prettify(name string, content []byte) []byte {
	var decoded interface{}
	if err := json.Unmarshal(content, &decoded); err != nil {
		p.logger.Warn().Err(err).Str("file", name).Msg("Failed to prettify response, keeping raw content")
		return content
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "    ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(decoded); err != nil {
		p.logger.Warn().Err(err).Str("file", name).Msg("Failed to re-encode prettified content, keeping raw content")
		return content
	}

	return bytes.TrimRight(buf.Bytes(), "\n")
}
