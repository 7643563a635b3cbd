package regexlib

// SymbolTable maps a position to its symbol. Index 0 is unused.
type SymbolTable []byte

// Symbol returns the symbol at p, or 0 when p is out of range.
func (t SymbolTable) Symbol(p Position) byte {
	if p < 1 || int(p) >= len(t) {
		return 0
	}
	return t[p]
}

// Len returns the number of positions, end marker included.
func (t SymbolTable) Len() int { return len(t) - 1 }

// EndPos is the end marker's position.
func (t SymbolTable) EndPos() Position { return Position(len(t) - 1) }

// FollowTable maps a position to the positions that can follow it.
// Index 0 is unused; every leaf position has an entry.
type FollowTable []PosSet

// Of returns followpos(p).
func (f FollowTable) Of(p Position) PosSet {
	if p < 1 || int(p) >= len(f) {
		return PosSet{}
	}
	return f[p]
}

// Positions lists the table keys in ascending order.
func (f FollowTable) Positions() []Position {
	out := make([]Position, 0, len(f))
	for p := 1; p < len(f); p++ {
		out = append(out, Position(p))
	}
	return out
}

// annotate computes nullable, firstpos and lastpos bottom-up and records
// followpos for concatenation and star nodes.
func (c *compiler) annotate(root *Node) {
	c.follow = make(FollowTable, c.size+1)
	for i := 1; i <= c.size; i++ {
		c.follow[i] = newPosSet(c.size)
	}
	c.computeFollowPos(root)
}

func (c *compiler) computeFollowPos(n *Node) {
	switch n.Kind {
	case Leaf:
		n.Nullable = false
		n.First = posSetOf(c.size, n.Pos)
		n.Last = posSetOf(c.size, n.Pos)
	case Concat:
		c.computeFollowPos(n.Left)
		c.computeFollowPos(n.Right)
		n.Nullable = n.Left.Nullable && n.Right.Nullable
		n.First = n.Left.First.clone()
		if n.Left.Nullable {
			n.First.or(n.Right.First)
		}
		n.Last = n.Right.Last.clone()
		if n.Right.Nullable {
			n.Last.or(n.Left.Last)
		}
		n.Left.Last.forEach(func(p Position) {
			c.follow[p].or(n.Right.First)
		})
	case Alt:
		c.computeFollowPos(n.Left)
		c.computeFollowPos(n.Right)
		n.Nullable = n.Left.Nullable || n.Right.Nullable
		n.First = n.Left.First.union(n.Right.First)
		n.Last = n.Left.Last.union(n.Right.Last)
	case Star:
		c.computeFollowPos(n.Left)
		n.Nullable = true
		n.First = n.Left.First.clone()
		n.Last = n.Left.Last.clone()
		n.Last.forEach(func(p Position) {
			c.follow[p].or(n.First)
		})
	}
}
