package main

import (
	"fmt"
	"os"

	orklog "github.com/oarkflow/log"

	"github.com/go-monkey/monkey"
	"github.com/go-monkey/monkey/internal/config"
	"github.com/go-monkey/monkey/internal/repl"
)

const appName = "monkey"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Usage:
  %s run [-debug] <file.mk>   Run a script.
  %s repl                     Start the REPL.
`, appName, appName)
}

func cmdRun(args []string) int {
	debug := false
	var file string
	for _, a := range args {
		if a == "-debug" {
			debug = true
			continue
		}
		file = a
	}
	if file == "" {
		fmt.Fprintf(os.Stderr, "usage: %s run [-debug] <file.mk>\n", appName)
		return 2
	}

	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	p := monkey.NewParser(monkey.NewLexer(string(src)))
	program := p.ParseProgram()
	if errs := p.ParseErrors(); len(errs) > 0 {
		for _, pe := range errs {
			fmt.Fprint(os.Stderr, monkey.WrapErrorWithName(pe, file, string(src)).Error())
		}
		return 1
	}

	var logger *orklog.Logger
	if debug {
		l := orklog.DefaultLogger
		logger = &l
	}

	env := monkey.NewEnvironment()
	for _, stmt := range program.Statements {
		result := monkey.Eval(stmt, env)
		if logger != nil {
			logger.Debug().
				Str("type", string(result.Type())).
				Str("stmt", stmt.String()).
				Msg("evaluated top-level statement")
		}
		if errObj, ok := result.(*monkey.Error); ok {
			fmt.Fprintln(os.Stderr, "ERROR: "+errObj.Message)
			return 1
		}
		if _, ok := result.(*monkey.ReturnValue); ok {
			break
		}
	}
	return 0
}

func cmdRepl(_ []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: bad monkey.toml: %v\n", appName, err)
		return 1
	}
	return repl.Run(cfg)
}
