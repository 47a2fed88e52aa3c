// Package config parses the per-file-ignores configuration into an ordered
// list of pattern/rule entries.
//
// Two textual encodings are accepted. The multi-line form carries one
// "pattern:rule,rule" entry per line. The flattened single-line form, as it
// arrives from flag values and flat config strings, packs entries into one
// comma-separated string; it is rewritten into the multi-line form before
// parsing. A structured YAML form is also supported and has none of the
// flattened form's ambiguity.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry maps one glob pattern to the rule tokens suppressed under it.
// Entries keep the order they were written in and are immutable after
// parsing.
type Entry struct {
	Pattern string   `yaml:"pattern"`
	Rules   []string `yaml:"rules"`
}

// Errors reported for malformed configuration entries.
var (
	ErrMissingSeparator = errors.New("missing ':' between pattern and rule list")
	ErrMissingPattern   = errors.New("entry has no pattern")
)

// flattenedEntry finds a comma that starts a new pattern:rules entry in the
// flattened single-line encoding. A comma followed by a colon-bearing token
// starts a new entry; a comma inside a rule list does not.
//
// The heuristic cannot represent a pattern or rule name that itself
// contains a comma immediately followed by a colon-bearing token. That is a
// known limitation of the flattened encoding; the YAML form is exact.
var flattenedEntry = regexp.MustCompile(`,([^,:]+:)`)

// Parse turns the raw per-file-ignores value into an ordered entry list.
func Parse(raw string) ([]Entry, error) {
	if !strings.Contains(raw, "\n") {
		// Flattened form, e.g. "a/*.go:LL1001,TD1001,b/*.go:PC1001".
		raw = flattenedEntry.ReplaceAllString(raw, "\n$1")
	}

	var entries []Entry

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		pattern, list, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingSeparator, line)
		}

		entries = append(entries, Entry{
			Pattern: strings.TrimSpace(pattern),
			Rules:   splitRules(list),
		})
	}

	return entries, nil
}

// ParseYAML decodes the structured form: a list of {pattern, rules}
// records.
func ParseYAML(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode per-file-ignores: %w", err)
	}

	for _, entry := range entries {
		if entry.Pattern == "" {
			return nil, fmt.Errorf("%w: rules %v", ErrMissingPattern, entry.Rules)
		}
	}

	return entries, nil
}

// splitRules splits a comma-separated rule list, dropping empty tokens.
func splitRules(s string) []string {
	parts := strings.Split(s, ",")
	rules := make([]string, 0, len(parts))

	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			rules = append(rules, token)
		}
	}

	return rules
}
