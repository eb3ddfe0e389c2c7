package monkey

import "testing"

func TestWrapErrorWithSourceRendersCaret(t *testing.T) {
	src := "let x = (1 + 2\n)\n"
	pe := &ParseError{Line: 1, Col: 9, Msg: "no prefix parse function found for ("}

	wrapped := WrapErrorWithSource(pe, src)
	got := wrapped.Error()

	if got == "" {
		t.Fatalf("expected non-empty rendered error")
	}
	wantSubstr := "PARSE ERROR at 1:9"
	if !containsSubstr(got, wantSubstr) {
		t.Fatalf("expected rendered error to contain %q, got:\n%s", wantSubstr, got)
	}
	if !containsSubstr(got, "^") {
		t.Fatalf("expected a caret in rendered error, got:\n%s", got)
	}
}

func TestWrapErrorWithSourcePassesThroughOtherErrors(t *testing.T) {
	base := &Error{Message: "identifier not found: x"}
	// *Error does not implement error, so wrap it via fmt-compatible type.
	var err error = errNotParse{base}
	wrapped := WrapErrorWithSource(err, "x")
	if wrapped != err {
		t.Fatalf("expected non-ParseError to pass through unchanged")
	}
}

type errNotParse struct{ obj *Error }

func (e errNotParse) Error() string { return e.obj.Message }

func containsSubstr(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
