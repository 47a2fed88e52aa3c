// Package todos reports TODO and FIXME markers left in comments.
package todos

import (
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/mpyw/perfileignores/internal/rules"
)

// Rule codes this analyzer reports under.
const (
	CodeTodo  = "TD1001"
	CodeFixme = "TD1002"
)

// Rules is the catalog this analyzer declares.
var Rules = []rules.Rule{
	{Code: CodeTodo, Alias: "todo-comment", Doc: "comment contains a TODO marker"},
	{Code: CodeFixme, Alias: "fixme-comment", Doc: "comment contains a FIXME marker"},
}

// Analyzer reports TODO and FIXME comment markers.
var Analyzer = &analysis.Analyzer{
	Name: "todos",
	Doc:  "reports TODO and FIXME markers left in comments",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	for _, file := range pass.Files {
		for _, cg := range file.Comments {
			for _, c := range cg.List {
				switch {
				case strings.Contains(c.Text, "TODO"):
					pass.Report(analysis.Diagnostic{
						Pos:      c.Pos(),
						Category: CodeTodo,
						Message:  "comment contains a TODO marker",
					})
				case strings.Contains(c.Text, "FIXME"):
					pass.Report(analysis.Diagnostic{
						Pos:      c.Pos(),
						Category: CodeFixme,
						Message:  "comment contains a FIXME marker",
					})
				}
			}
		}
	}

	return nil, nil
}
