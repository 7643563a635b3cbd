package suite

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redfa/regexlib"
)

func run(t *testing.T, src string) (*Result, *Environment) {
	t.Helper()
	f, err := Parse("test.suite", src)
	require.NoError(t, err)
	env := NewEnvironment(regexlib.Options{})
	return f.Exec(&Context{Env: env}), env
}

func TestParse(t *testing.T) {
	f, err := Parse("test.suite", `
pattern "ab*" {
    accept "a" "ab"
    reject ""
}
pattern "a#" fails unsupported-symbol # trailing comment
`)
	require.NoError(t, err)
	require.Len(t, f.Cases, 2)

	first := f.Cases[0]
	assert.Equal(t, "ab*", first.Pattern)
	assert.Equal(t, 2, first.Pos.Line)
	assert.Nil(t, first.Body.Fails)
	require.Len(t, first.Body.Expects, 2)
	assert.True(t, first.Body.Expects[0].Accept)
	assert.Equal(t, []string{"a", "ab"}, first.Body.Expects[0].Inputs)
	assert.False(t, first.Body.Expects[1].Accept)
	assert.Equal(t, []string{""}, first.Body.Expects[1].Inputs)

	second := f.Cases[1]
	assert.Equal(t, "a#", second.Pattern)
	require.NotNil(t, second.Body.Fails)
	assert.Equal(t, "unsupported-symbol", *second.Body.Fails)
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		`pattern "a" {`,
		`pattern "a"`,
		`pattern a { accept "a" }`,
		`pattern "a" { accept }`,
		`pattern "a" fails`,
	} {
		_, err := Parse("bad.suite", src)
		if assert.Error(t, err, src) {
			assert.Contains(t, err.Error(), "bad.suite:1:", src)
		}
	}
}

func TestExecPasses(t *testing.T) {
	f, err := Load("testdata/basic.suite")
	require.NoError(t, err)

	res := f.Exec(&Context{Env: NewEnvironment(regexlib.Options{})})
	assert.Empty(t, res.Failures)
	assert.Equal(t, 12, res.Passed)
	assert.True(t, res.OK())
}

func TestExecFailures(t *testing.T) {
	res, _ := run(t, `pattern "ab" { accept "a" }
pattern "ab" fails empty-pattern
pattern "(a" fails unsupported-symbol
pattern "a" fails bogus
pattern "a|" { accept "a" }
`)
	assert.Equal(t, 0, res.Passed)
	assert.Equal(t, 5, res.Failed)
	assert.False(t, res.OK())

	msgs := make([]string, len(res.Failures))
	for i, f := range res.Failures {
		assert.Equal(t, i+1, f.Pos.Line)
		msgs[i] = f.Msg
	}
	assert.Equal(t, `rejected "a", want accepted`, msgs[0])
	assert.Equal(t, "compiled, want empty-pattern", msgs[1])
	assert.Contains(t, msgs[2], "got malformed-regex")
	assert.Equal(t, `unknown error kind "bogus"`, msgs[3])
	assert.Contains(t, msgs[4], "malformed-regex")
}

func TestLimitsApply(t *testing.T) {
	f, err := Parse("test.suite", `pattern "(a|b)*a(a|b)(a|b)" fails limit-exceeded`)
	require.NoError(t, err)

	res := f.Exec(&Context{Env: NewEnvironment(regexlib.Options{MaxStates: 4})})
	assert.True(t, res.OK())
	assert.Equal(t, 1, res.Passed)
}

func TestEnvironmentCaches(t *testing.T) {
	_, env := run(t, `pattern "ab" { accept "ab" }
pattern "ab" { reject "a" }
pattern "a(" fails malformed-regex
pattern "a(" fails malformed-regex
`)
	assert.Equal(t, 2, env.Len())

	a, err := env.Compile("ab")
	require.NoError(t, err)
	b, err := env.Compile("ab")
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestDisplay(t *testing.T) {
	res, _ := run(t, `pattern "a" { accept "a" "b" }`)

	var buf bytes.Buffer
	res.Display(&buf)
	assert.Equal(t, "FAIL test.suite:1:15: a: rejected \"b\", want accepted\n1 passed, 1 failed\n", buf.String())
}

func TestVerboseOutput(t *testing.T) {
	f, err := Parse("test.suite", `pattern "a" { reject "b" }`)
	require.NoError(t, err)

	var buf bytes.Buffer
	f.Exec(&Context{Env: NewEnvironment(regexlib.Options{}), Out: &buf})
	assert.Equal(t, "ok   test.suite:1:15: a: rejected \"b\"\n", buf.String())
}

func TestMerge(t *testing.T) {
	a, _ := run(t, `pattern "a" { accept "a" }`)
	b, _ := run(t, `pattern "a" { accept "b" }`)
	a.Merge(b)
	assert.Equal(t, 1, a.Passed)
	assert.Equal(t, 1, a.Failed)
	assert.Len(t, a.Failures, 1)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("testdata/missing.suite")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
