package regexlib

// compiler holds the state of one pattern compilation. Nothing in it is
// shared between calls to Compile.
type compiler struct {
	opts    Options
	symbols SymbolTable // index = position
	follow  FollowTable // index = position
	size    int         // highest position, the end marker's once augmented
}

func newCompiler(opts Options) *compiler {
	return &compiler{opts: opts, symbols: SymbolTable{0}}
}

func (c *compiler) leaf(sym byte) *Node {
	c.size++
	c.symbols = append(c.symbols, sym)
	return &Node{Kind: Leaf, Symbol: sym, Pos: Position(c.size)}
}

func precedence(t tokenType) int {
	switch t {
	case tStar:
		return 3
	case tConcat:
		return 2
	case tUnion:
		return 1
	default:
		return 0
	}
}

type pending struct {
	tok   token
	depth int // operand count when a '(' was pushed
}

// parse builds the tree with an operand stack and an operator stack.
// Operators of higher or equal precedence are reduced before a new one is
// pushed, which makes concatenation and alternation left-associative.
func (c *compiler) parse(toks []token) (*Node, error) {
	var operands []*Node
	var ops []pending

	reduce := func(op token) error {
		switch op.typ {
		case tStar:
			if len(operands) < 1 {
				return malformed(op.off, "'*' has no operand")
			}
			top := len(operands) - 1
			operands[top] = &Node{Kind: Star, Left: operands[top]}
			return nil
		case tConcat, tUnion:
			if len(operands) < 2 {
				if op.typ == tUnion {
					return malformed(op.off, "'|' is missing an operand")
				}
				return malformed(op.off, "concatenation is missing an operand")
			}
			l, r := operands[len(operands)-2], operands[len(operands)-1]
			operands = operands[:len(operands)-2]
			kind := Concat
			if op.typ == tUnion {
				kind = Alt
			}
			operands = append(operands, &Node{Kind: kind, Left: l, Right: r})
			return nil
		default:
			return malformed(op.off, "unexpected %s", op.typ)
		}
	}

	for _, t := range toks {
		switch t.typ {
		case tChar:
			operands = append(operands, c.leaf(t.ch))
		case tLParen:
			ops = append(ops, pending{tok: t, depth: len(operands)})
		case tRParen:
			for {
				if len(ops) == 0 {
					return nil, malformed(t.off, "unmatched ')'")
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.tok.typ == tLParen {
					if len(operands) == top.depth {
						return nil, malformed(top.tok.off, "empty group")
					}
					break
				}
				if err := reduce(top.tok); err != nil {
					return nil, err
				}
			}
		default:
			for len(ops) > 0 && precedence(ops[len(ops)-1].tok.typ) >= precedence(t.typ) {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if err := reduce(top.tok); err != nil {
					return nil, err
				}
			}
			ops = append(ops, pending{tok: t})
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.tok.typ == tLParen {
			return nil, malformed(top.tok.off, "unclosed '('")
		}
		if err := reduce(top.tok); err != nil {
			return nil, err
		}
	}

	if len(operands) != 1 {
		return nil, malformed(-1, "expected one expression, found %d", len(operands))
	}
	return operands[0], nil
}

// augment appends the end-marker leaf, which takes the last position.
func (c *compiler) augment(tree *Node) *Node {
	return &Node{Kind: Concat, Left: tree, Right: c.leaf(EndMarker)}
}
