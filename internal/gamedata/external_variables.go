package gamedata

import (
	"bytes"
	"regexp"
)

// Game client external-variables files are plain text with one "key = value"
// assignment per line. Lines that do not match the pattern (comments, blank
// lines, malformed entries) are ignored.
var externalVariableLineRegex = regexp.MustCompile(`^ *([\w.]+) *=(.+)$`)

// ExternalVariables holds the parsed key/value assignments of an
// external-variables file, e.g. "external.texts.txt" mapped to its CDN URL.
type ExternalVariables map[string]string

// ParseExternalVariables extracts key/value assignments from raw
// external-variables content. Later assignments of the same key win.
func ParseExternalVariables(content []byte) ExternalVariables {
	vars := make(ExternalVariables)

	for _, line := range bytes.Split(content, []byte("\n")) {
		line = bytes.TrimRight(line, "\r")
		match := externalVariableLineRegex.FindSubmatch(line)
		if match == nil {
			continue
		}
		key := string(bytes.TrimSpace(match[1]))
		value := string(bytes.TrimSpace(match[2]))
		vars[key] = value
	}

	return vars
}

// Lookup returns the value for the given variable key.
func (ev ExternalVariables) Lookup(key string) (string, bool) {
	value, ok := ev[key]
	return value, ok
}
