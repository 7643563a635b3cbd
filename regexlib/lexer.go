package regexlib

import (
	"errors"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// EndMarker is the symbol of the leaf appended to every pattern. It is not
// accepted in user input.
const EndMarker = '#'

type tokenType int

const (
	tEOF    tokenType = iota
	tChar             // literal symbol
	tLParen           // (
	tRParen           // )
	tStar             // *
	tUnion            // |
	tConcat           // inserted between adjacent operands
)

func (t tokenType) String() string {
	switch t {
	case tEOF:
		return "EOF"
	case tChar:
		return "CHAR"
	case tLParen:
		return "LPAREN"
	case tRParen:
		return "RPAREN"
	case tStar:
		return "STAR"
	case tUnion:
		return "UNION"
	case tConcat:
		return "CONCAT"
	default:
		return "UNKNOWN"
	}
}

type token struct {
	typ tokenType
	ch  byte // for tChar
	off int  // byte offset in the pattern
}

// tokenizer is compiled once; scanners created from it share the DFA read-only.
var tokenizer = sync.OnceValues(func() (*lexmachine.Lexer, error) {
	lx := lexmachine.NewLexer()
	lx.Add([]byte(`[a-zA-Z0-9]`), tokAction(tChar))
	lx.Add([]byte(`[(]`), tokAction(tLParen))
	lx.Add([]byte(`[)]`), tokAction(tRParen))
	lx.Add([]byte(`[*]`), tokAction(tStar))
	lx.Add([]byte(`[|]`), tokAction(tUnion))
	if err := lx.Compile(); err != nil {
		return nil, err
	}
	return lx, nil
})

func tokAction(typ tokenType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return token{typ: typ, ch: m.Bytes[0], off: m.TC}, nil
	}
}

// lex splits the pattern into tokens. The first byte that no rule matches
// is reported as UnsupportedSymbol.
func lex(pattern string) ([]token, error) {
	lx, err := tokenizer()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner([]byte(pattern))
	if err != nil {
		return nil, err
	}
	toks := make([]token, 0, len(pattern))
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			var ui *machines.UnconsumedInput
			if errors.As(err, &ui) {
				off := ui.StartTC
				if off < 0 || off >= len(pattern) {
					off = len(pattern) - 1
				}
				r, _ := utf8.DecodeRuneInString(pattern[off:])
				return nil, unsupported(off, r)
			}
			return nil, err
		}
		toks = append(toks, tok.(token))
	}
	return toks, nil
}

// insertConcat makes concatenation explicit: an operator goes between x and
// y unless x opens a group or alternation, or y is postfix, infix or closing.
func insertConcat(toks []token) []token {
	out := make([]token, 0, 2*len(toks))
	for i, t := range toks {
		out = append(out, t)
		if i+1 == len(toks) {
			break
		}
		next := toks[i+1]
		if t.typ == tLParen || t.typ == tUnion {
			continue
		}
		if next.typ == tStar || next.typ == tUnion || next.typ == tRParen {
			continue
		}
		out = append(out, token{typ: tConcat, off: next.off})
	}
	return out
}

func explicitString(toks []token) string {
	var b strings.Builder
	for _, t := range toks {
		switch t.typ {
		case tChar:
			b.WriteByte(t.ch)
		case tLParen:
			b.WriteByte('(')
		case tRParen:
			b.WriteByte(')')
		case tStar:
			b.WriteByte('*')
		case tUnion:
			b.WriteByte('|')
		case tConcat:
			b.WriteByte('.')
		}
	}
	return b.String()
}
