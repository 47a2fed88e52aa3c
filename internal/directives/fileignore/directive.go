// Package fileignore handles //perfileignores:ignore file-level
// directives.
package fileignore

import (
	"go/ast"
	"strings"
)

// Directive records one file-level ignore comment. An empty token list
// ignores every rule in the file.
type Directive struct {
	Tokens []string
}

// Scan collects the ignore directives of one file.
func Scan(file *ast.File) []Directive {
	var directives []Directive

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			if tokens, ok := parseComment(c.Text); ok {
				directives = append(directives, Directive{Tokens: tokens})
			}
		}
	}

	return directives
}

// parseComment parses a file-level ignore directive and returns the rule
// tokens. A nil token list means every rule is ignored. Returns false when
// the comment is not an ignore directive.
//
// Supported formats:
//   - //perfileignores:ignore                       -> ignore all rules
//   - //perfileignores:ignore line-too-long         -> ignore specific rule
//   - //perfileignores:ignore LL1001,todo-comment   -> ignore multiple rules
//   - //perfileignores:ignore - reason              -> ignore all with comment
//   - //perfileignores:ignore LL1001 - reason       -> ignore specific with comment
func parseComment(text string) ([]string, bool) {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, "perfileignores:ignore") {
		return nil, false
	}

	rest := strings.TrimPrefix(text, "perfileignores:ignore")
	rest = strings.TrimSpace(rest)

	if rest == "" {
		return nil, true // No specific rules = ignore all
	}

	// Stop at comment markers: " - ", " // ", or " //"
	// These indicate the start of a human-readable comment
	if idx := strings.Index(rest, " - "); idx >= 0 {
		rest = rest[:idx]
	}
	if idx := strings.Index(rest, " //"); idx >= 0 {
		rest = rest[:idx]
	}
	// Also handle "- " at the start (no rules specified, just comment)
	if strings.HasPrefix(rest, "- ") || rest == "-" {
		return nil, true
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil, true
	}

	// Parse comma-separated rule tokens
	parts := strings.Split(rest, ",")
	tokens := make([]string, 0, len(parts))

	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}

	return tokens, true
}

// Matches reports whether any directive covers the given diagnostic
// category. aliases maps rule aliases to codes.
func Matches(directives []Directive, category string, aliases map[string]string) bool {
	for _, d := range directives {
		if len(d.Tokens) == 0 {
			return true
		}
		for _, token := range d.Tokens {
			if token == category || aliases[token] == category {
				return true
			}
		}
	}

	return false
}
