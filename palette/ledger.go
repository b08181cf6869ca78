package palette

import "slices"

// Ledger is the registry of colours a glyph drawing cares about.
type Ledger struct {
	Inputs   []Color
	Outputs  []Color
	Function Color
}

// NewLedger returns a ledger with copies of inputs and outputs.
func NewLedger(function Color, inputs, outputs []Color) Ledger {
	return Ledger{
		Inputs:   slices.Clone(inputs),
		Outputs:  slices.Clone(outputs),
		Function: function,
	}
}

// Classify returns the role of c. Precedence is fixed and total:
// registered input, registered output, function marker, loop form, none.
// Complexity: O(len(Inputs)+len(Outputs)).
func (l Ledger) Classify(c Color) Role {
	if slices.Contains(l.Inputs, c) {
		return Input(c)
	}
	if slices.Contains(l.Outputs, c) {
		return Output(c)
	}
	if c == l.Function {
		return Function()
	}
	if c.IsLoopForm() {
		return Loop(c.R)
	}
	return None
}

// Relevant is shorthand for Classify(c).Relevant().
func (l Ledger) Relevant(c Color) bool {
	return l.Classify(c).Relevant()
}
