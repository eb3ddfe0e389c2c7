// errors.go: user-facing error wrapping and caret-snippet rendering
//
// What this file does
// -------------------
// Turns a *ParseError (parser.go) into a readable, Python-style error
// snippet with a caret pointing at the offending column:
//
//	PARSE ERROR at 2:14: Expected next token to be ), got ; instead
//
//	   1 | let a = 1;
//	   2 | let x = (1 + 2;
//	     |              ^
//	   3 | let y = 3;
//
// The snippet includes up to one line of context before and after the
// error, numbers the lines, and places a caret under the 1-based
// column. The lexer never produces an error value of its own — it is
// total — so there is no LexError/RuntimeError branch here, only
// parse-time diagnostics carry source position.
//
// Public:   WrapErrorWithSource(err error, src string) error
//           WrapErrorWithName(err error, srcName string, src string) error
// Private:  caret-snippet renderer and tiny helpers.
package monkey

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource returns an error augmented with a caret-annotated
// snippet of src when err is a *ParseError. Any other error is
// returned unchanged.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with an optional source
// name (e.g. a filename) included in the header.
func WrapErrorWithName(err error, srcName string, src string) error {
	pe, ok := err.(*ParseError)
	if !ok {
		return err
	}
	return fmt.Errorf("%s", prettyErrorStringLabeled(src, "PARSE ERROR", srcName, pe.Line, pe.Col, pe.Msg))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// prettyErrorStringLabeled builds a Python-like snippet with a header
// and a caret. It shows at most one previous and one next line when
// available. Coordinates are 1-based; line is clamped to the source's
// line range and col is raised to at least 1.
func prettyErrorStringLabeled(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	caretPad := max(col-1, 0)
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", caretPad))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
