package regexlib

// Accepts runs the DFA over input one byte at a time. A byte without a
// transition rejects at once; otherwise the input is accepted iff the walk
// ends in a final state.
func (d *DFA) Accepts(input string) bool {
	cur := d.Start()
	for i := 0; i < len(input); i++ {
		next, ok := cur.trans[input[i]]
		if !ok {
			return false
		}
		cur = d.States[next]
	}
	return cur.Final
}

// Step is one transition taken while tracing.
type Step struct {
	Offset int
	Symbol byte
	From   StateID
	To     StateID
}

// Trace records a simulation. Stuck is the offset of the first byte that
// had no transition, or -1 when the whole input was consumed.
type Trace struct {
	Input    string
	Steps    []Step
	End      StateID
	Stuck    int
	Accepted bool
}

// Trace is Accepts with the path kept.
func (d *DFA) Trace(input string) Trace {
	tr := Trace{Input: input, Stuck: -1}
	cur := d.Start()
	for i := 0; i < len(input); i++ {
		next, ok := cur.trans[input[i]]
		if !ok {
			tr.Stuck = i
			tr.End = cur.ID
			return tr
		}
		tr.Steps = append(tr.Steps, Step{Offset: i, Symbol: input[i], From: cur.ID, To: next})
		cur = d.States[next]
	}
	tr.End = cur.ID
	tr.Accepted = cur.Final
	return tr
}
