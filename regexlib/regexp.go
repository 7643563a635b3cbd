// Package regexlib converts regular expressions over alphanumeric symbols
// into DFAs with the direct method: the augmented syntax tree is annotated
// with nullable, firstpos and lastpos, followpos is derived from it, and
// DFA states are built as sets of positions.
//
// Supported syntax is symbols [A-Za-z0-9], grouping with (), alternation |
// and Kleene star *. Concatenation is implicit.
package regexlib

import "fmt"

const (
	DefaultMaxPatternLength = 1024
	DefaultMaxStates        = 4096
)

// Options bounds the work done by CompileWith. Zero fields take defaults.
type Options struct {
	MaxPatternLength int
	MaxStates        int
}

func (o Options) maxPatternLength() int {
	if o.MaxPatternLength <= 0 {
		return DefaultMaxPatternLength
	}
	return o.MaxPatternLength
}

func (o Options) maxStates() int {
	if o.MaxStates <= 0 {
		return DefaultMaxStates
	}
	return o.MaxStates
}

// Regex is a compiled pattern together with the intermediate structures
// used to build its DFA.
type Regex struct {
	pattern  string
	explicit string
	tree     *Node
	symbols  SymbolTable
	follow   FollowTable
	dfa      *DFA
}

// Compile compiles pattern with default Options.
func Compile(pattern string) (*Regex, error) {
	return CompileWith(pattern, Options{})
}

// CompileWith parses pattern, annotates its tree and builds the DFA. On
// failure the returned error is an *Error and no partial result is kept.
func CompileWith(pattern string, opts Options) (*Regex, error) {
	if pattern == "" {
		return nil, &Error{Kind: EmptyPattern, Offset: -1, Msg: "pattern is empty"}
	}
	if limit := opts.maxPatternLength(); len(pattern) > limit {
		return nil, &Error{
			Kind:   LimitExceeded,
			Offset: -1,
			Msg:    fmt.Sprintf("pattern is %d bytes, limit is %d", len(pattern), limit),
		}
	}

	toks, err := lex(pattern)
	if err != nil {
		return nil, err
	}
	toks = insertConcat(toks)

	c := newCompiler(opts)
	tree, err := c.parse(toks)
	if err != nil {
		return nil, err
	}
	root := c.augment(tree)
	c.annotate(root)

	dfa, err := c.buildDFA(root)
	if err != nil {
		return nil, err
	}

	return &Regex{
		pattern:  pattern,
		explicit: explicitString(toks),
		tree:     root,
		symbols:  c.symbols,
		follow:   c.follow,
		dfa:      dfa,
	}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Regex {
	r, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return r
}

// Match reports whether the whole input is in the pattern's language.
func (r *Regex) Match(input string) bool { return r.dfa.Accepts(input) }

func (r *Regex) Pattern() string { return r.pattern }

// Explicit is the pattern with concatenation written as '.'.
func (r *Regex) Explicit() string { return r.explicit }

// Tree returns the augmented syntax tree; its root is the concatenation
// with the end marker.
func (r *Regex) Tree() *Node          { return r.tree }
func (r *Regex) Symbols() SymbolTable { return r.symbols }
func (r *Regex) Follow() FollowTable  { return r.follow }
func (r *Regex) DFA() *DFA            { return r.dfa }
func (r *Regex) String() string       { return r.pattern }
