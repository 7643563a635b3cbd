package render

import (
	"fmt"
	"io"
	"strings"

	"redfa/regexlib"
)

// ExportDOT writes a Graphviz description of g, which must be a
// *regexlib.DFA or a *regexlib.Node syntax tree.
func ExportDOT(w io.Writer, g interface{}) error {
	var b strings.Builder
	fmt.Fprintln(&b, "digraph G {")

	switch t := g.(type) {

	//------------------------------------------------------------------ DFA
	case *regexlib.DFA:
		fmt.Fprintln(&b, "    rankdir=LR;")
		for _, s := range t.States {
			shape := "circle"
			if s.Final {
				shape = "doublecircle"
			}
			fmt.Fprintf(&b, "    %s [shape=%s, tooltip=%q];\n", s.Label, shape, s.Set.String())
		}
		for _, s := range t.States {
			for _, sym := range s.Symbols() {
				to, _ := s.Next(sym)
				fmt.Fprintf(&b, "    %s -> %s [label=\"%c\"];\n", s.Label, t.States[to].Label, sym)
			}
		}
		fmt.Fprintf(&b, "    _start [shape=point]; _start -> %s;\n", t.Start().Label)

	//------------------------------------------------------------------ tree
	case *regexlib.Node:
		id := 0
		var walk func(n *regexlib.Node) int
		walk = func(n *regexlib.Node) int {
			self := id
			id++
			fmt.Fprintf(&b, "    n%d [label=%q];\n", self, n.Label())
			for _, child := range []*regexlib.Node{n.Left, n.Right} {
				if child == nil {
					continue
				}
				fmt.Fprintf(&b, "    n%d -> n%d;\n", self, walk(child))
			}
			return self
		}
		walk(t)

	default:
		return fmt.Errorf("render: cannot export %T as DOT", g)
	}

	fmt.Fprintln(&b, "}")
	_, err := io.WriteString(w, b.String())
	return err
}
