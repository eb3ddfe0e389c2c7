// Package repl implements an interactive read-eval-print loop over
// the monkey package's two entry points, parse and Eval. It never
// reaches into evaluator internals: a real host only needs a Program
// and an Environment, the same boundary cmd/monkey's "run" command
// uses for whole files.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/go-monkey/monkey"
	"github.com/go-monkey/monkey/internal/config"
)

const banner = "Monkey REPL. Ctrl+C cancels input, Ctrl+D exits."

// Run starts the loop, blocking until the user exits. cfg supplies
// prompts, history file path, and whether output is colorized.
func Run(cfg *config.Config) int {
	fmt.Println(banner)
	monkey.EnableColor = cfg.Color

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.HistoryFile
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	env := monkey.NewEnvironment()

	for {
		code, ok := readBalanced(ln, cfg.Prompt, cfg.ContPrompt)
		if !ok {
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(code) == "" {
			continue
		}

		p := monkey.NewParser(monkey.NewLexer(code))
		program := p.ParseProgram()
		if errs := p.ParseErrors(); len(errs) > 0 {
			reportParseErrors(errs, code)
			ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
			continue
		}

		result := monkey.Eval(program, env)
		if out := monkey.FormatResult(result); out != "" {
			fmt.Println(out)
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}
}

// readBalanced prompts for lines, switching to the continuation
// prompt while brackets/braces/parens opened so far outweigh those
// closed, so a multi-line function literal or hash can be entered
// without the REPL evaluating it one line at a time.
func readBalanced(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder
	depth := 0

	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return b.String(), true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		depth += bracketDelta(line)

		if depth <= 0 {
			return b.String(), true
		}
	}
}

// bracketDelta counts opens minus closes among (){}[] in line,
// ignoring anything inside a double-quoted string.
func bracketDelta(line string) int {
	delta := 0
	inStr := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		if inStr {
			if c == '\\' {
				i++
				continue
			}
			if c == '"' {
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '(', '{', '[':
			delta++
		case ')', '}', ']':
			delta--
		}
	}
	return delta
}

func reportParseErrors(errs []*monkey.ParseError, src string) {
	for _, pe := range errs {
		fmt.Fprint(os.Stderr, monkey.WrapErrorWithSource(pe, src).Error())
	}
}
