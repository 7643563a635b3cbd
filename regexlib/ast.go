package regexlib

import "fmt"

// NodeKind tags a syntax tree node.
type NodeKind uint8

const (
	Leaf   NodeKind = iota // symbol or end marker
	Concat                 // Left then Right
	Alt                    // Left or Right
	Star                   // zero or more Left
)

func (k NodeKind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Concat:
		return "concat"
	case Alt:
		return "alt"
	case Star:
		return "star"
	default:
		return "unknown"
	}
}

// Node is a syntax tree node annotated with the direct-method attributes.
// Star keeps its operand in Left.
type Node struct {
	Kind  NodeKind
	Left  *Node
	Right *Node

	Symbol byte     // for Leaf
	Pos    Position // for Leaf

	Nullable bool
	First    PosSet
	Last     PosSet
}

// Label is the node's display text: the symbol with its position for
// leaves, the operator otherwise.
func (n *Node) Label() string {
	switch n.Kind {
	case Leaf:
		return fmt.Sprintf("%c (%d)", n.Symbol, n.Pos)
	case Concat:
		return "."
	case Alt:
		return "|"
	case Star:
		return "*"
	default:
		return "?"
	}
}

// Walk visits n and its descendants in pre-order, left before right.
// Returning false from f skips the node's children.
func (n *Node) Walk(f func(*Node) bool) {
	if n == nil || !f(n) {
		return
	}
	n.Left.Walk(f)
	n.Right.Walk(f)
}

// String renders the subtree in fully parenthesized prefix form, e.g.
// ".(*(|(a b)) #)".
func (n *Node) String() string {
	switch n.Kind {
	case Leaf:
		return string(n.Symbol)
	case Star:
		return fmt.Sprintf("*(%s)", n.Left)
	default:
		return fmt.Sprintf("%s(%s %s)", n.Label(), n.Left, n.Right)
	}
}
