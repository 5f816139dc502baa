package ir

// Helper names the free helper function that produced a Conditional node,
// distinct from a plain source-level if statement.
type Helper string

const (
	HelperNone     Helper = ""
	HelperWhen     Helper = "when"
	HelperUnless   Helper = "unless"
	HelperWhenOr   Helper = "whenOr"
	HelperUnlessOr Helper = "unlessOr"
)

// Conditional is produced by a plain `if` statement (Helper == HelperNone)
// or by when/unless/whenOr/unlessOr.
type Conditional struct {
	base

	// Condition is the source text of the predicate expression.
	Condition string

	Helper Helper

	Consequent []Node
	Alternate  []Node

	// DefaultValue is the literal default argument to whenOr/unlessOr, if
	// any and if literal.
	DefaultValue *OptionValue
}

func (Conditional) Kind() Kind { return KindConditional }

func NewConditional(a *Arena, loc Location) *Conditional {
	return &Conditional{base: newBase(a, loc)}
}

// Decision is produced by step.if, step.label, and step.branch.
// Consequent always has at least one element (ir invariant #5); Alternate
// may be empty or nil.
type Decision struct {
	base

	DecisionID      string
	Condition       string
	ConditionLabel  string
	Consequent      []Node
	Alternate       []Node
}

func (Decision) Kind() Kind { return KindDecision }

func NewDecision(a *Arena, loc Location) *Decision {
	return &Decision{base: newBase(a, loc)}
}

// SwitchCase is one arm of a Switch node.
type SwitchCase struct {
	// Value is the case label's source text; empty when IsDefault.
	Value     string
	IsDefault bool
	Body      []Node
}

// Switch is produced by a `switch` statement on the step callback body.
type Switch struct {
	base

	Expression string
	Cases      []SwitchCase
}

func (Switch) Kind() Kind { return KindSwitch }

func NewSwitch(a *Arena, loc Location) *Switch {
	return &Switch{base: newBase(a, loc)}
}
