// Command perfileignores runs the bundled analyzers with per-file ignore
// support.
//
// Usage:
//
//	perfileignores [-per-file-ignores=<spec>] [-per-file-ignores-file=<path>] [driver flags] ./...
//
// With neither ignore flag present, a .perfileignores.yml file in the
// working directory is loaded when it exists. The ignore flags are consumed
// here; everything else is handed to the multichecker driver.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/mpyw/perfileignores"
	"github.com/mpyw/perfileignores/internal/checkers/longline"
	"github.com/mpyw/perfileignores/internal/checkers/printcall"
	"github.com/mpyw/perfileignores/internal/checkers/todos"
)

const defaultConfigFile = ".perfileignores.yml"

func main() {
	log.SetFlags(0)
	log.SetPrefix("perfileignores: ")

	perfileignores.Register(longline.Analyzer, longline.Rules...)
	perfileignores.Register(todos.Analyzer, todos.Rules...)
	perfileignores.Register(printcall.Analyzer, printcall.Rules...)

	raw, file, rest, err := splitIgnoreArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	switch {
	case raw != "":
		err = perfileignores.Install(raw)
	case file != "":
		err = perfileignores.InstallFile(file)
	default:
		if _, statErr := os.Stat(defaultConfigFile); statErr == nil {
			err = perfileignores.InstallFile(defaultConfigFile)
		}
	}
	if err != nil {
		log.Fatal(err)
	}

	perfileignores.Attach(longline.Analyzer, todos.Analyzer, printcall.Analyzer)

	os.Args = append(os.Args[:1], rest...)
	multichecker.Main(longline.Analyzer, todos.Analyzer, printcall.Analyzer)
}

// splitIgnoreArgs extracts the per-file-ignores flags from the argument
// list, returning the remaining arguments for the multichecker driver,
// which rejects flags it does not know.
func splitIgnoreArgs(args []string) (raw, file string, rest []string, err error) {
	rest = make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		flagArg := arg
		if strings.HasPrefix(flagArg, "--") {
			flagArg = flagArg[1:]
		}

		switch {
		case flagArg == "-per-file-ignores":
			if i+1 >= len(args) {
				return "", "", nil, fmt.Errorf("flag %s needs a value", arg)
			}
			i++
			raw = args[i]
		case strings.HasPrefix(flagArg, "-per-file-ignores="):
			raw = strings.TrimPrefix(flagArg, "-per-file-ignores=")
		case flagArg == "-per-file-ignores-file":
			if i+1 >= len(args) {
				return "", "", nil, fmt.Errorf("flag %s needs a value", arg)
			}
			i++
			file = args[i]
		case strings.HasPrefix(flagArg, "-per-file-ignores-file="):
			file = strings.TrimPrefix(flagArg, "-per-file-ignores-file=")
		default:
			rest = append(rest, arg)
		}
	}

	return raw, file, rest, nil
}
