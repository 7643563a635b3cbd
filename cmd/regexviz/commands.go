package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/exec"

	"github.com/google/subcommands"

	"redfa/internal/render"
	"redfa/internal/suite"
)

//---------------------------------------------------------------------- build

type buildCmd struct {
	limits
	format render.Format
}

func (*buildCmd) Name() string     { return "build" }
func (*buildCmd) Synopsis() string { return "show the tree, followpos table and DFA of a pattern" }
func (*buildCmd) Usage() string {
	return "build [-format text|json|yaml] [-max-len n] [-max-states n] <pattern>\n"
}

func (c *buildCmd) SetFlags(f *flag.FlagSet) {
	c.limits.SetFlags(f)
	c.format = render.FormatText
	f.Var(&c.format, "format", "report format: text, json or yaml")
}

func (c *buildCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	re, err := c.compile(f.Arg(0))
	if err != nil {
		logger.Print(err)
		return subcommands.ExitFailure
	}
	if err := render.Write(os.Stdout, re, c.format); err != nil {
		logger.Print(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

//----------------------------------------------------------------------- test

type testCmd struct {
	limits
	trace bool
}

func (*testCmd) Name() string     { return "test" }
func (*testCmd) Synopsis() string { return "run input strings through the DFA of a pattern" }
func (*testCmd) Usage() string {
	return "test [-trace] [-max-len n] [-max-states n] <pattern> <input>...\n"
}

func (c *testCmd) SetFlags(f *flag.FlagSet) {
	c.limits.SetFlags(f)
	f.BoolVar(&c.trace, "trace", false, "print the transitions taken")
}

func (c *testCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	re, err := c.compile(f.Arg(0))
	if err != nil {
		logger.Print(err)
		return subcommands.ExitFailure
	}
	d := re.DFA()
	for _, in := range f.Args()[1:] {
		if c.trace {
			fmt.Printf("%q: ", in)
			if err := render.WriteTrace(os.Stdout, d, d.Trace(in)); err != nil {
				logger.Print(err)
				return subcommands.ExitFailure
			}
			continue
		}
		verdict := "rejected"
		if d.Accepts(in) {
			verdict = "accepted"
		}
		fmt.Printf("%q: %s\n", in, verdict)
	}
	return subcommands.ExitSuccess
}

//------------------------------------------------------------------------ dot

type dotCmd struct {
	limits
	graph string
	out   string
	png   bool
}

func (*dotCmd) Name() string     { return "dot" }
func (*dotCmd) Synopsis() string { return "export the DFA or syntax tree as Graphviz DOT" }
func (*dotCmd) Usage() string {
	return "dot [-graph dfa|tree] [-o file] [-png] <pattern>\n"
}

func (c *dotCmd) SetFlags(f *flag.FlagSet) {
	c.limits.SetFlags(f)
	f.StringVar(&c.graph, "graph", "dfa", "what to draw: dfa or tree")
	f.StringVar(&c.out, "o", "-", "output file, - for stdout")
	f.BoolVar(&c.png, "png", false, "render PNG via dot -Tpng (needs -o)")
}

func (c *dotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 || (c.png && c.out == "-") {
		f.Usage()
		return subcommands.ExitUsageError
	}
	re, err := c.compile(f.Arg(0))
	if err != nil {
		logger.Print(err)
		return subcommands.ExitFailure
	}

	var g interface{}
	switch c.graph {
	case "dfa":
		g = re.DFA()
	case "tree":
		g = re.Tree()
	default:
		logger.Printf("unknown graph %q (want dfa or tree)", c.graph)
		return subcommands.ExitUsageError
	}

	var buf bytes.Buffer
	if err := render.ExportDOT(&buf, g); err != nil {
		logger.Print(err)
		return subcommands.ExitFailure
	}

	if c.png {
		cmd := exec.Command("dot", "-Tpng", "-o", c.out)
		cmd.Stdin = bytes.NewReader(buf.Bytes())
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			logger.Printf("dot failed: %v", err)
			return subcommands.ExitFailure
		}
		debugf("PNG written to %s", c.out)
		return subcommands.ExitSuccess
	}

	w, err := output(c.out)
	if err != nil {
		logger.Print(err)
		return subcommands.ExitFailure
	}
	_, err = buf.WriteTo(w)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		logger.Print(err)
		return subcommands.ExitFailure
	}
	debugf("DOT written to %s", c.out)
	return subcommands.ExitSuccess
}

//---------------------------------------------------------------------- check

type checkCmd struct {
	limits
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "verify suite files of expected matches and errors" }
func (*checkCmd) Usage() string {
	return "check [-max-len n] [-max-states n] <file>...\n"
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	ctx := &suite.Context{Env: suite.NewEnvironment(c.options())}
	if verbose {
		ctx.Out = os.Stdout
	}

	total := &suite.Result{}
	for _, path := range f.Args() {
		file, err := suite.Load(path)
		if err != nil {
			logger.Print(err)
			return subcommands.ExitFailure
		}
		total.Merge(file.Exec(ctx))
	}
	debugf("compile cache holds %s", ctx.Env)

	total.Display(os.Stdout)
	if !total.OK() {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

//--------------------------------------------------------------------- schema

type schemaCmd struct{}

func (*schemaCmd) Name() string           { return "schema" }
func (*schemaCmd) Synopsis() string       { return "print the JSON Schema of the build -format json report" }
func (*schemaCmd) Usage() string          { return "schema\n" }
func (*schemaCmd) SetFlags(*flag.FlagSet) {}

func (*schemaCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(render.Schema()); err != nil {
		logger.Print(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
