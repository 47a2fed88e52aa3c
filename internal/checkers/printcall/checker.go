// Package printcall reports calls to the fmt print helpers and the print
// builtins, which are usually debugging leftovers.
package printcall

import (
	"errors"
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/perfileignores/internal/rules"
)

// CodePrintCall is the rule code this analyzer reports under.
const CodePrintCall = "PC1001"

// Rules is the catalog this analyzer declares.
var Rules = []rules.Rule{
	{Code: CodePrintCall, Alias: "print-call", Doc: "call to a fmt print helper or a print builtin"},
}

// Analyzer reports calls to fmt.Print, fmt.Printf, fmt.Println and the
// print/println builtins.
var Analyzer = &analysis.Analyzer{
	Name:     "printcall",
	Doc:      "reports calls to fmt print helpers and print builtins",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var ErrNoInspector = errors.New("inspector analyzer result not found")

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	nodeFilter := []ast.Node{(*ast.CallExpr)(nil)}

	insp.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)

		name, ok := printCallee(pass, call)
		if !ok {
			return
		}

		pass.Report(analysis.Diagnostic{
			Pos:      call.Pos(),
			Category: CodePrintCall,
			Message:  fmt.Sprintf("call to %s", name),
		})
	})

	return nil, nil
}

// printCallee resolves the callee and reports whether it is one of the fmt
// print helpers or the print builtins.
func printCallee(pass *analysis.Pass, call *ast.CallExpr) (string, bool) {
	switch fun := call.Fun.(type) {
	case *ast.Ident:
		if _, ok := pass.TypesInfo.Uses[fun].(*types.Builtin); !ok {
			return "", false
		}
		if fun.Name == "print" || fun.Name == "println" {
			return fun.Name, true
		}
	case *ast.SelectorExpr:
		fn, ok := pass.TypesInfo.Uses[fun.Sel].(*types.Func)
		if !ok || fn.Pkg() == nil || fn.Pkg().Path() != "fmt" {
			return "", false
		}
		switch fn.Name() {
		case "Print", "Printf", "Println":
			return "fmt." + fn.Name(), true
		}
	}

	return "", false
}
