package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"redfa/regexlib"
)

// WriteText prints the construction details of re as aligned tables:
// root attributes, the followpos table and the transition table. In the
// transition table the start state is marked "->" and finals "*".
func WriteText(w io.Writer, re *regexlib.Regex) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	root := re.Tree()
	d := re.DFA()

	fmt.Fprintf(tw, "pattern\t%s\n", re.Pattern())
	fmt.Fprintf(tw, "explicit\t%s\n", re.Explicit())
	fmt.Fprintf(tw, "tree\t%s\n", root)
	fmt.Fprintf(tw, "nullable\t%t\n", root.Nullable)
	fmt.Fprintf(tw, "firstpos\t%s\n", root.First)
	fmt.Fprintf(tw, "lastpos\t%s\n", root.Last)
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "POSITION\tSYMBOL\tFOLLOWPOS")
	for _, p := range re.Follow().Positions() {
		fmt.Fprintf(tw, "%d\t%c\t%s\n", p, re.Symbols().Symbol(p), re.Follow().Of(p))
	}
	fmt.Fprintln(tw)

	header := []string{"STATE", "POSITIONS"}
	for _, sym := range d.Alphabet {
		header = append(header, string(sym))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, s := range d.States {
		row := []string{stateMark(d, s) + s.Label, s.Set.String()}
		for _, sym := range d.Alphabet {
			cell := "-"
			if to, ok := s.Next(sym); ok {
				cell = d.States[to].Label
			}
			row = append(row, cell)
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func stateMark(d *regexlib.DFA, s *regexlib.State) string {
	mark := ""
	if s.ID == d.Start().ID {
		mark += "->"
	}
	if s.Final {
		mark += "*"
	}
	return mark
}

// WriteTrace prints one simulation as a chain of transitions followed by
// the verdict.
func WriteTrace(w io.Writer, d *regexlib.DFA, tr regexlib.Trace) error {
	var b strings.Builder
	b.WriteString(d.Start().Label)
	for _, st := range tr.Steps {
		fmt.Fprintf(&b, " -%c-> %s", st.Symbol, d.States[st.To].Label)
	}
	switch {
	case tr.Stuck >= 0:
		fmt.Fprintf(&b, "  rejected: no transition on %q at offset %d", tr.Input[tr.Stuck], tr.Stuck)
	case tr.Accepted:
		b.WriteString("  accepted")
	default:
		fmt.Fprintf(&b, "  rejected: %s is not final", d.States[tr.End].Label)
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}
