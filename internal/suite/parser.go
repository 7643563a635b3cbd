// Package suite runs files of expected regex behaviour against regexlib.
//
// A suite file is a list of cases. Each case names a pattern and either the
// inputs its DFA must accept and reject, or the kind of error compiling it
// must produce:
//
//	# textbook example
//	pattern "(a|b)*abb" {
//	    accept "abb" "aabb" "babb"
//	    reject "" "ab" "abba"
//	}
//	pattern "a#b" fails unsupported-symbol
package suite

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"redfa/regexlib"
)

type File struct {
	Cases []*Case `parser:"@@*"`
}

type Case struct {
	Pos     lexer.Position
	Pattern string `parser:"'pattern' @String"`
	Body    *Body  `parser:"@@"`
}

type Body struct {
	Fails   *string   `parser:"  'fails' @Ident"`
	Expects []*Expect `parser:"| '{' @@* '}'"`
}

type Expect struct {
	Pos    lexer.Position
	Accept bool     `parser:"( @'accept' | 'reject' )"`
	Inputs []string `parser:"@String+"`
}

var suiteLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_-]*`},
	{Name: "Punct", Pattern: `[{}]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[File](
	participle.Lexer(suiteLexer),
	participle.Unquote("String"),
	participle.Elide("Whitespace", "Comment"),
)

// Parse reads a suite from data. filename only appears in positions.
func Parse(filename, data string) (*File, error) {
	return parser.ParseString(filename, data)
}

// Exec runs every case and collects the outcome of each check.
func (f *File) Exec(ctx *Context) *Result {
	res := &Result{}
	for _, c := range f.Cases {
		c.Exec(ctx, res)
	}
	return res
}

func (c *Case) Exec(ctx *Context, res *Result) {
	re, err := ctx.Env.Compile(c.Pattern)

	if c.Body.Fails != nil {
		want := regexlib.ErrorKind(*c.Body.Fails)
		switch {
		case !knownKind(want):
			res.fail(c.Pos, c.Pattern, fmt.Sprintf("unknown error kind %q", want))
		case err == nil:
			res.fail(c.Pos, c.Pattern, fmt.Sprintf("compiled, want %s", want))
		case regexlib.KindOf(err) != want:
			res.fail(c.Pos, c.Pattern, fmt.Sprintf("got %v, want %s", err, want))
		default:
			res.pass(ctx, c.Pos, c.Pattern, string(want))
		}
		return
	}

	if err != nil {
		res.fail(c.Pos, c.Pattern, err.Error())
		return
	}
	for _, e := range c.Body.Expects {
		for _, in := range e.Inputs {
			if re.Match(in) == e.Accept {
				res.pass(ctx, e.Pos, c.Pattern, verdict(e.Accept)+" "+quote(in))
				continue
			}
			res.fail(e.Pos, c.Pattern, fmt.Sprintf("%s, want %s", verdict(!e.Accept)+" "+quote(in), verdict(e.Accept)))
		}
	}
}

func knownKind(k regexlib.ErrorKind) bool {
	for _, known := range regexlib.Kinds {
		if k == known {
			return true
		}
	}
	return false
}

func verdict(accept bool) string {
	if accept {
		return "accepted"
	}
	return "rejected"
}

func quote(s string) string { return fmt.Sprintf("%q", s) }
