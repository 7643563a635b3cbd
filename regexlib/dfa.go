package regexlib

import (
	"fmt"
	"slices"
)

// StateID indexes DFA.States. The start state is always 0.
type StateID int

// State is a DFA state. Its identity is Set; Label is for display.
type State struct {
	ID    StateID
	Label string
	Set   PosSet
	Final bool
	trans map[byte]StateID
}

// Next returns the transition on sym, if any.
func (s *State) Next(sym byte) (StateID, bool) {
	id, ok := s.trans[sym]
	return id, ok
}

// Symbols lists the symbols with an outgoing transition, ascending.
func (s *State) Symbols() []byte {
	out := make([]byte, 0, len(s.trans))
	for sym := range s.trans {
		out = append(out, sym)
	}
	slices.Sort(out)
	return out
}

// DFA is the automaton built from followpos. Transitions are partial: a
// missing entry means the input is rejected.
type DFA struct {
	States   []*State
	Alphabet []byte
}

// Start returns the start state.
func (d *DFA) Start() *State { return d.States[0] }

// Finals returns the accepting states in ID order.
func (d *DFA) Finals() []*State {
	var out []*State
	for _, s := range d.States {
		if s.Final {
			out = append(out, s)
		}
	}
	return out
}

// Lookup returns the state whose position set equals set.
func (d *DFA) Lookup(set PosSet) (*State, bool) {
	key := set.Key()
	for _, s := range d.States {
		if s.Set.Key() == key {
			return s, true
		}
	}
	return nil, false
}

// TransitionCount is the number of defined (state, symbol) pairs.
func (d *DFA) TransitionCount() int {
	n := 0
	for _, s := range d.States {
		n += len(s.trans)
	}
	return n
}

// stateLabel names states A..Z, AA, AB, ... in creation order.
func stateLabel(i int) string {
	var b []byte
	for i++; i > 0; i = (i - 1) / 26 {
		b = append(b, byte('A'+(i-1)%26))
	}
	slices.Reverse(b)
	return string(b)
}

// buildDFA explores position sets breadth-first from root firstpos. The
// successor of a state on a symbol is the union of followpos over the
// state's positions carrying that symbol; sets already seen reuse their state.
func (c *compiler) buildDFA(root *Node) (*DFA, error) {
	end := c.symbols.EndPos()
	maxStates := c.opts.maxStates()

	d := &DFA{Alphabet: c.alphabet()}
	ids := make(map[string]StateID)
	var queue []StateID

	getOrCreate := func(set PosSet) (StateID, error) {
		key := set.Key()
		if id, ok := ids[key]; ok {
			return id, nil
		}
		if len(d.States) >= maxStates {
			return 0, &Error{
				Kind:   LimitExceeded,
				Offset: -1,
				Msg:    fmt.Sprintf("automaton needs more than %d states", maxStates),
			}
		}
		id := StateID(len(d.States))
		ids[key] = id
		d.States = append(d.States, &State{
			ID:    id,
			Label: stateLabel(int(id)),
			Set:   set,
			Final: set.Has(end),
			trans: make(map[byte]StateID),
		})
		queue = append(queue, id)
		return id, nil
	}

	if _, err := getOrCreate(root.First.clone()); err != nil {
		return nil, err
	}

	marked := make(map[StateID]bool)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if marked[id] {
			continue
		}
		marked[id] = true
		state := d.States[id]

		next := make(map[byte]PosSet)
		state.Set.forEach(func(p Position) {
			if p == end {
				return
			}
			sym := c.symbols[p]
			u, ok := next[sym]
			if !ok {
				u = newPosSet(c.size)
				next[sym] = u
			}
			u.or(c.follow[p])
		})

		symbols := make([]byte, 0, len(next))
		for sym := range next {
			symbols = append(symbols, sym)
		}
		slices.Sort(symbols)
		for _, sym := range symbols {
			to, err := getOrCreate(next[sym])
			if err != nil {
				return nil, err
			}
			state.trans[sym] = to
		}
	}
	return d, nil
}

func (c *compiler) alphabet() []byte {
	seen := make(map[byte]bool)
	var out []byte
	for p := 1; p < len(c.symbols); p++ {
		sym := c.symbols[p]
		if Position(p) == c.symbols.EndPos() || seen[sym] {
			continue
		}
		seen[sym] = true
		out = append(out, sym)
	}
	slices.Sort(out)
	return out
}
