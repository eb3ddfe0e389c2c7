package monkey

import "testing"

// BenchmarkFibonacci35 lexes and parses a recursive workload once, then
// times only its evaluation, the same shape the reference benchmark in
// the example pack uses for its bytecode VM.
func BenchmarkFibonacci35(b *testing.B) {
	input := `
let fibonacci = fn(x) {
  if (x == 0) {
    0
  } else {
    if (x == 1) {
      1
    } else {
      fibonacci(x - 1) + fibonacci(x - 2);
    }
  }
};
fibonacci(35);
`
	p := NewParser(NewLexer(input))
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		b.Fatalf("unexpected parse errors: %v", errs)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		env := NewEnvironment()
		Eval(program, env)
	}
}
