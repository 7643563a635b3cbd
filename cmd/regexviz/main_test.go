package main

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd.SetFlags(fs)
	require.NoError(t, fs.Parse(args))
	return cmd.Execute(context.Background(), fs)
}

func TestDotWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.dot")
	require.Equal(t, subcommands.ExitSuccess, execute(t, &dotCmd{}, "-graph", "tree", "-o", out, "a|b"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `n2 [label="a (1)"];`)
}

func TestDotUsage(t *testing.T) {
	assert.Equal(t, subcommands.ExitUsageError, execute(t, &dotCmd{}, "-png", "ab"))
	assert.Equal(t, subcommands.ExitUsageError, execute(t, &dotCmd{}, "-graph", "nfa", "ab"))
	assert.Equal(t, subcommands.ExitUsageError, execute(t, &dotCmd{}))
}

func TestCompileErrorsFail(t *testing.T) {
	assert.Equal(t, subcommands.ExitFailure, execute(t, &dotCmd{}, "-o", filepath.Join(t.TempDir(), "x.dot"), "a|"))
	assert.Equal(t, subcommands.ExitFailure, execute(t, &buildCmd{}, "-max-states", "2", "(a|b)*a(a|b)"))
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.suite")
	bad := filepath.Join(dir, "bad.suite")
	require.NoError(t, os.WriteFile(good, []byte(`pattern "ab*" { accept "a" "abb" reject "b" }`), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte(`pattern "ab*" { accept "b" }`), 0o644))

	assert.Equal(t, subcommands.ExitSuccess, execute(t, &checkCmd{}, good))
	assert.Equal(t, subcommands.ExitFailure, execute(t, &checkCmd{}, good, bad))
	assert.Equal(t, subcommands.ExitFailure, execute(t, &checkCmd{}, filepath.Join(dir, "missing.suite")))
}

func TestLimitsOptions(t *testing.T) {
	var l limits
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	l.SetFlags(fs)
	require.NoError(t, fs.Parse([]string{"-max-len", "8"}))

	opts := l.options()
	assert.Equal(t, 8, opts.MaxPatternLength)
	assert.Equal(t, 4096, opts.MaxStates)
}
