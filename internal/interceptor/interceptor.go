// Package interceptor installs the filtering layer that sits between an
// analyzer's diagnostic emissions and the driver's report stream.
package interceptor

import (
	"path/filepath"
	"sync"
	"sync/atomic"

	"golang.org/x/tools/go/analysis"

	"github.com/mpyw/perfileignores/internal/directives/fileignore"
)

// capture is the immutable suppression state a layer consults on every
// emission. It is swapped wholesale on re-installation, never mutated in
// place, so readers need no locks.
type capture struct {
	// suppressed maps an absolute file path to the rule codes dropped there.
	suppressed map[string]map[string]bool
	// aliases maps rule aliases to codes, for file-level ignore directives.
	aliases map[string]string
}

// layer is the per-analyzer installation record. Exactly one exists per
// analyzer per process; re-installation extends it instead of nesting a
// second wrapper around the first.
type layer struct {
	run func(*analysis.Pass) (any, error) // the analyzer's original entry point
	cap atomic.Pointer[capture]
}

var (
	mu     sync.Mutex
	layers = make(map[*analysis.Analyzer]*layer)
)

// Install places a filtering layer in front of the analyzer's Run entry
// point, dropping emissions of the given rule codes in the given files.
// The Analyzer value is shared by every pass and worker in the process, so
// one installation covers them all. Installing again for the same analyzer
// merges into the existing layer.
//
// Separate worker processes share nothing; each re-runs the whole
// configuration phase before analyzing, which is how go/analysis drivers
// behave anyway.
func Install(owner *analysis.Analyzer, files, codes map[string]bool, aliases map[string]string) {
	mu.Lock()
	defer mu.Unlock()

	l, ok := layers[owner]
	if !ok {
		l = &layer{run: owner.Run}
		l.cap.Store(&capture{
			suppressed: make(map[string]map[string]bool),
			aliases:    make(map[string]string),
		})
		layers[owner] = l
		owner.Run = l.filteredRun
	}

	l.cap.Store(merge(l.cap.Load(), files, codes, aliases))
}

// merge builds a new capture with the (file, code) pairs added. The old
// capture stays untouched for in-flight readers.
func merge(old *capture, files, codes map[string]bool, aliases map[string]string) *capture {
	next := &capture{
		suppressed: make(map[string]map[string]bool, len(old.suppressed)+len(files)),
		aliases:    make(map[string]string, len(old.aliases)+len(aliases)),
	}

	for file, set := range old.suppressed {
		copied := make(map[string]bool, len(set)+len(codes))
		for code := range set {
			copied[code] = true
		}
		next.suppressed[file] = copied
	}

	for alias, code := range old.aliases {
		next.aliases[alias] = code
	}
	for alias, code := range aliases {
		next.aliases[alias] = code
	}

	for file := range files {
		set := next.suppressed[file]
		if set == nil {
			set = make(map[string]bool, len(codes))
			next.suppressed[file] = set
		}
		for code := range codes {
			set[code] = true
		}
	}

	return next
}

// filteredRun wraps the analyzer's original Run, substituting pass.Report
// with the suppressing sink. The suppress decision is a pure function of
// the capture, the per-pass directives and the emission itself, so sharing
// the layer across parallel passes is safe.
func (l *layer) filteredRun(pass *analysis.Pass) (any, error) {
	c := l.cap.Load()
	directives := collectDirectives(pass)
	report := pass.Report

	pass.Report = func(d analysis.Diagnostic) {
		file := diagnosticFile(pass, d)
		if file == "" {
			report(d)
			return
		}
		if c.suppressed[file][d.Category] {
			return
		}
		if fileignore.Matches(directives[file], d.Category, c.aliases) {
			return
		}
		report(d)
	}

	return l.run(pass)
}

// collectDirectives gathers file-level ignore directives keyed by absolute
// path.
func collectDirectives(pass *analysis.Pass) map[string][]fileignore.Directive {
	directives := make(map[string][]fileignore.Directive)

	for _, file := range pass.Files {
		ds := fileignore.Scan(file)
		if len(ds) == 0 {
			continue
		}

		abs, err := filepath.Abs(pass.Fset.Position(file.Pos()).Filename)
		if err != nil {
			continue
		}
		directives[abs] = ds
	}

	return directives
}

// diagnosticFile returns the absolute path of the diagnostic's position, or
// "" when the position does not name a file.
func diagnosticFile(pass *analysis.Pass, d analysis.Diagnostic) string {
	if !d.Pos.IsValid() {
		return ""
	}

	name := pass.Fset.Position(d.Pos).Filename
	if name == "" {
		return ""
	}

	abs, err := filepath.Abs(name)
	if err != nil {
		return ""
	}

	return abs
}
