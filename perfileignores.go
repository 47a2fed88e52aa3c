// Package perfileignores suppresses selected diagnostics in selected files
// for go/analysis based linters.
//
// Analyzers declare their rule catalogs with Register. A per-file-ignores
// configuration maps glob patterns to rule codes or aliases:
//
//	testdata/**/*.go:line-too-long,todo-comment
//	internal/gen/*.go:PC1001
//
// Install parses the configuration, expands each pattern against the
// working directory, resolves every rule token to its declaring analyzer,
// and wraps that analyzer's entry point with a filtering layer. A
// diagnostic whose position falls in a matched file and whose category is
// in the suppressed set for that file is dropped before it reaches the
// driver's report stream; everything else is forwarded untouched.
//
// All resolution happens before anything is installed: a malformed entry
// or an unknown rule token aborts the whole installation, leaving no
// partial suppression state behind.
package perfileignores

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/go/analysis"

	"github.com/mpyw/perfileignores/internal/config"
	"github.com/mpyw/perfileignores/internal/interceptor"
	"github.com/mpyw/perfileignores/internal/pathglob"
	"github.com/mpyw/perfileignores/internal/rules"
)

// Rule is the canonical definition of one diagnostic category.
type Rule = rules.Rule

// Entry maps one glob pattern to the rule tokens suppressed under it.
type Entry = config.Entry

var defaultRegistry = rules.NewRegistry()

// Register declares rules as owned by the given analyzer. A rule's code is
// matched against the Category of the diagnostics the analyzer reports.
func Register(owner *analysis.Analyzer, rr ...Rule) {
	defaultRegistry.Register(owner, rr...)
}

// Attach installs an empty filtering layer for the given analyzers so that
// //perfileignores:ignore file directives take effect even for analyzers
// no configuration entry targets.
func Attach(analyzers ...*analysis.Analyzer) {
	for _, a := range analyzers {
		interceptor.Install(a, nil, nil, defaultRegistry.Aliases(a))
	}
}

// Install parses a textual per-file-ignores configuration and installs the
// resulting suppressions.
func Install(raw string) error {
	entries, err := config.Parse(raw)
	if err != nil {
		return err
	}

	return InstallEntries(entries)
}

// InstallFile loads a configuration file and installs it. Files with a
// .yml or .yaml extension use the structured form; anything else is parsed
// as the textual form.
func InstallFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read per-file-ignores file: %w", err)
	}

	var entries []Entry
	switch filepath.Ext(path) {
	case ".yml", ".yaml":
		entries, err = config.ParseYAML(data)
	default:
		entries, err = config.Parse(string(data))
	}
	if err != nil {
		return err
	}

	return InstallEntries(entries)
}

// contribution pairs one entry's resolved file set with the rule codes it
// suppresses for one analyzer.
type contribution struct {
	owner *analysis.Analyzer
	files map[string]bool
	codes map[string]bool
}

// InstallEntries resolves the entries and installs the filtering layers.
// Patterns are expanded exactly once, against the working directory; files
// created afterwards are not picked up, and a pattern matching no files is
// a valid no-op. Resolution errors abort before any layer is installed.
//
// Contributions targeting the same analyzer merge into one layer, however
// many entries produced them.
func InstallEntries(entries []Entry) error {
	var plan []*contribution

	for _, entry := range entries {
		files, err := pathglob.Resolve(entry.Pattern)
		if err != nil {
			return err
		}

		perOwner := make(map[*analysis.Analyzer]*contribution)

		for _, token := range entry.Rules {
			owner, defs, err := defaultRegistry.Resolve(token)
			if err != nil {
				return err
			}

			c, ok := perOwner[owner]
			if !ok {
				c = &contribution{owner: owner, files: files, codes: make(map[string]bool)}
				perOwner[owner] = c
				plan = append(plan, c)
			}

			for _, def := range defs {
				c.codes[def.Code] = true
			}
		}
	}

	for _, c := range plan {
		interceptor.Install(c.owner, c.files, c.codes, defaultRegistry.Aliases(c.owner))
	}

	return nil
}
