package suite

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2/lexer"
)

// Failure is one check that did not hold.
type Failure struct {
	Pos     lexer.Position
	Pattern string
	Msg     string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %s: %s", f.Pos, f.Pattern, f.Msg)
}

// Result counts checks across one or more suite files.
type Result struct {
	Passed   int
	Failed   int
	Failures []Failure
}

func (r *Result) pass(ctx *Context, pos lexer.Position, pattern, what string) {
	r.Passed++
	if ctx.Out != nil {
		fmt.Fprintf(ctx.Out, "ok   %s: %s: %s\n", pos, pattern, what)
	}
}

func (r *Result) fail(pos lexer.Position, pattern, msg string) {
	r.Failed++
	r.Failures = append(r.Failures, Failure{Pos: pos, Pattern: pattern, Msg: msg})
}

// Merge adds the counts and failures of o to r.
func (r *Result) Merge(o *Result) {
	r.Passed += o.Passed
	r.Failed += o.Failed
	r.Failures = append(r.Failures, o.Failures...)
}

func (r *Result) OK() bool { return r.Failed == 0 }

// Display prints every failure and a summary line.
func (r *Result) Display(w io.Writer) {
	for _, f := range r.Failures {
		fmt.Fprintf(w, "FAIL %s\n", f)
	}
	fmt.Fprintf(w, "%d passed, %d failed\n", r.Passed, r.Failed)
}
