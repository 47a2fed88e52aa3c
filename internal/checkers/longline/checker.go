// Package longline reports source lines exceeding a maximum length.
package longline

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/tools/go/analysis"

	"github.com/mpyw/perfileignores/internal/rules"
)

// CodeLineTooLong is the rule code this analyzer reports under.
const CodeLineTooLong = "LL1001"

// Rules is the catalog this analyzer declares.
var Rules = []rules.Rule{
	{Code: CodeLineTooLong, Alias: "line-too-long", Doc: "source line exceeds the maximum length"},
}

var maxLen int

func init() {
	Analyzer.Flags.IntVar(&maxLen, "max-len", 120, "maximum allowed line length in characters")
}

// Analyzer reports lines longer than -max-len characters.
var Analyzer = &analysis.Analyzer{
	Name:  "longline",
	Doc:   "reports source lines exceeding the maximum length",
	Run:   run,
	Flags: flag.FlagSet{},
}

func run(pass *analysis.Pass) (any, error) {
	for _, file := range pass.Files {
		tf := pass.Fset.File(file.Pos())
		if tf == nil {
			continue
		}

		src, err := os.ReadFile(tf.Name())
		if err != nil {
			return nil, err
		}

		for i, line := range strings.Split(string(src), "\n") {
			if i+1 > tf.LineCount() {
				break
			}

			line = strings.TrimSuffix(line, "\r")
			width := utf8.RuneCountInString(line)
			if width <= maxLen {
				continue
			}

			pass.Report(analysis.Diagnostic{
				Pos:      tf.LineStart(i + 1),
				Category: CodeLineTooLong,
				Message:  fmt.Sprintf("line is %d characters, over the %d maximum", width, maxLen),
			})
		}
	}

	return nil, nil
}
