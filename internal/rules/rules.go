// Package rules maintains the catalog of diagnostic rules declared by
// analyzers and resolves rule tokens back to their declaring analyzer.
package rules

import (
	"fmt"
	"sync"

	"golang.org/x/tools/go/analysis"
)

// Rule is the canonical definition of one diagnostic category. Code is the
// stable identifier an analyzer sets as the diagnostic Category; Alias is
// the human-readable name. Either form resolves the rule.
type Rule struct {
	Code  string
	Alias string
	Doc   string
}

// UnknownRuleError reports a rule token that no registered analyzer
// declares. A typo'd rule id must stop configuration loading instead of
// silently suppressing nothing.
type UnknownRuleError struct {
	Token string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("unknown rule %q", e.Token)
}

// Registry maps analyzers to the rule catalogs they declare. Analyzers are
// referenced, never owned. Registration order is preserved and drives
// resolution when a token would match more than one catalog.
type Registry struct {
	mu      sync.Mutex
	order   []*analysis.Analyzer
	catalog map[*analysis.Analyzer][]Rule
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{catalog: make(map[*analysis.Analyzer][]Rule)}
}

// Register declares rules as owned by the given analyzer. Registering the
// same analyzer again merges into its catalog, deduplicated by code.
func (r *Registry) Register(owner *analysis.Analyzer, rules ...Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.catalog[owner]
	if !ok {
		r.order = append(r.order, owner)
	}

	seen := make(map[string]bool, len(existing))
	for _, rule := range existing {
		seen[rule.Code] = true
	}

	for _, rule := range rules {
		if !seen[rule.Code] {
			existing = append(existing, rule)
			seen[rule.Code] = true
		}
	}

	r.catalog[owner] = existing
}

// Resolve maps a rule token to the single analyzer declaring it, plus all
// of that analyzer's definitions matching the token by code or alias.
// Analyzers are scanned in registration order; the first one declaring a
// match wins.
func (r *Registry) Resolve(token string) (*analysis.Analyzer, []Rule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, owner := range r.order {
		var defs []Rule
		for _, rule := range r.catalog[owner] {
			if rule.Code == token || rule.Alias == token {
				defs = append(defs, rule)
			}
		}
		if len(defs) > 0 {
			return owner, defs, nil
		}
	}

	return nil, nil, &UnknownRuleError{Token: token}
}

// Aliases returns the alias-to-code index of one analyzer's catalog.
func (r *Registry) Aliases(owner *analysis.Analyzer) map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	aliases := make(map[string]string)
	for _, rule := range r.catalog[owner] {
		if rule.Alias != "" {
			aliases[rule.Alias] = rule.Code
		}
	}

	return aliases
}
