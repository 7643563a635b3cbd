package regexlib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserPrecedence(t *testing.T) {
	tests := []struct {
		pattern string
		tree    string
	}{
		{"a", "a"},
		{"abc", ".(.(a b) c)"},
		{"a|b|c", "|(|(a b) c)"},
		{"a|bc*", "|(a .(b *(c)))"},
		{"ab|c", "|(.(a b) c)"},
		{"(a|b)*c", ".(*(|(a b)) c)"},
		{"a**", "*(*(a))"},
		{"((a))", "a"},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			require.NoError(t, err)
			root := re.Tree()
			require.Equal(t, Concat, root.Kind)
			assert.Equal(t, tt.tree, root.Left.String())
			assert.Equal(t, byte(EndMarker), root.Right.Symbol)
		})
	}
}

func TestParserPositions(t *testing.T) {
	re := MustCompile("(a|b)*abb")

	var leaves []*Node
	re.Tree().Walk(func(n *Node) bool {
		if n.Kind == Leaf {
			leaves = append(leaves, n)
		}
		return true
	})
	require.Len(t, leaves, 6)
	for i, n := range leaves {
		assert.Equal(t, Position(i+1), n.Pos)
	}
	assert.Equal(t, SymbolTable{0, 'a', 'b', 'a', 'b', 'b', '#'}, re.Symbols())
	assert.Equal(t, Position(6), re.Symbols().EndPos())
	assert.Equal(t, "# (6)", leaves[5].Label())
}

func TestParserMalformed(t *testing.T) {
	for _, pattern := range []string{
		"(a|b", "a|b)", ")(", "a(",
		"*a", "|a", "a|", "a||b", "(|a)", "(a|)",
		"()", "a()", "()*", "(*)",
	} {
		t.Run(pattern, func(t *testing.T) {
			re, err := Compile(pattern)
			assert.Nil(t, re)
			assert.True(t, IsKind(err, MalformedRegex), "got %v", err)
		})
	}
}

func TestCompileErrorKinds(t *testing.T) {
	tests := []struct {
		pattern string
		opts    Options
		kind    ErrorKind
	}{
		{"", Options{}, EmptyPattern},
		{"a#b", Options{}, UnsupportedSymbol},
		{"ab#", Options{}, UnsupportedSymbol},
		{"a.b", Options{}, UnsupportedSymbol},
		{"(a|b", Options{}, MalformedRegex},
		{strings.Repeat("a", 10), Options{MaxPatternLength: 5}, LimitExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := CompileWith(tt.pattern, tt.opts)
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	_, err := Compile("a#b")
	assert.EqualError(t, err, `unsupported-symbol at offset 1: symbol '#' is reserved for the end marker`)

	_, err = Compile("")
	assert.EqualError(t, err, "empty-pattern: pattern is empty")
}

func TestMustCompilePanics(t *testing.T) {
	assert.Panics(t, func() { MustCompile("(") })
}
