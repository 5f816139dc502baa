package ir

// Kind tags which of the closed sum of flow-node shapes a Node is.
type Kind string

const (
	KindStep        Kind = "step"
	KindSagaStep    Kind = "saga-step"
	KindStream      Kind = "stream"
	KindSequence    Kind = "sequence"
	KindParallel    Kind = "parallel"
	KindRace        Kind = "race"
	KindConditional Kind = "conditional"
	KindDecision    Kind = "decision"
	KindSwitch      Kind = "switch"
	KindLoop        Kind = "loop"
	KindWorkflowRef Kind = "workflow-ref"
	KindUnknown     Kind = "unknown"
)

// Node is implemented by every flow-node shape in the closed sum. The
// unexported isNode method keeps the sum closed to this package: callers
// outside ir can consume nodes via the interface and a type switch on
// Kind(), but cannot add new cases.
type Node interface {
	ID() NodeID
	Kind() Kind
	Loc() Location
	isNode()
}

// base carries the fields common to every node shape.
type base struct {
	id       NodeID
	location Location
}

func (b base) ID() NodeID      { return b.id }
func (b base) Loc() Location   { return b.location }
func (base) isNode()           {}

// newBase is a constructor helper used by every concrete node type.
func newBase(a *Arena, loc Location) base {
	return base{id: a.Next(), location: loc}
}
