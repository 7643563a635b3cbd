// Command regexviz builds DFAs from regular expressions with the direct
// method and shows the intermediate tables, graphs and test results.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/google/subcommands"

	"redfa/regexlib"
)

var logger = log.New(os.Stderr, "regexviz: ", 0)

// verbose is set by -v and enables progress lines on the logger.
var verbose bool

func main() {
	flag.BoolVar(&verbose, "v", false, "log progress to stderr")

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&buildCmd{}, "")
	subcommands.Register(&testCmd{}, "")
	subcommands.Register(&dotCmd{}, "")
	subcommands.Register(&checkCmd{}, "")
	subcommands.Register(&schemaCmd{}, "")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}

func debugf(format string, args ...any) {
	if verbose {
		logger.Printf(format, args...)
	}
}

// limits are the compile bounds every pattern-taking command accepts.
type limits struct {
	maxLen    int
	maxStates int
}

func (l *limits) SetFlags(f *flag.FlagSet) {
	f.IntVar(&l.maxLen, "max-len", regexlib.DefaultMaxPatternLength, "reject patterns longer than this many bytes")
	f.IntVar(&l.maxStates, "max-states", regexlib.DefaultMaxStates, "abort when the DFA needs more states")
}

func (l *limits) options() regexlib.Options {
	return regexlib.Options{MaxPatternLength: l.maxLen, MaxStates: l.maxStates}
}

func (l *limits) compile(pattern string) (*regexlib.Regex, error) {
	re, err := regexlib.CompileWith(pattern, l.options())
	if err != nil {
		return nil, err
	}
	debugf("compiled %q: %d positions, %d states, %d transitions",
		pattern, re.Symbols().Len(), len(re.DFA().States), re.DFA().TransitionCount())
	return re, nil
}

// output opens path for writing; "-" is stdout.
func output(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
