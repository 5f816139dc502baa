package ir

// LoopType distinguishes the five loop shapes the walker recognizes.
// Note spec.md §9 Open Question (i): the for...of vs for...in distinction
// in the original spec relied on a source-text heuristic; this Go port's
// syntax frontend tokenizes `in`/`of` directly (see syntax package), so
// LoopFor{In,Of} are assigned from the token stream rather than a
// substring search — see DESIGN.md for the recorded decision.
type LoopType string

const (
	LoopFor       LoopType = "for"
	LoopForOf     LoopType = "for-of"
	LoopForIn     LoopType = "for-in"
	LoopWhile     LoopType = "while"
	LoopForEach   LoopType = "step.forEach"
)

// Collect describes how step.forEach accumulates per-iteration output.
type Collect string

const (
	CollectNone  Collect = ""
	CollectArray Collect = "array"
	CollectLast  Collect = "last"
)

// Loop covers for/for-in/for-of/while statements and step.forEach calls.
type Loop struct {
	base

	LoopType LoopType

	// IterSource is the source text of the iterated expression (step.forEach's
	// second argument, or a for-of/for-in's right-hand side). Empty for
	// plain for/while loops.
	IterSource string

	Body []Node

	// BoundKnown is true only when step.forEach carried a literal numeric
	// maxIterations; for/for-in/for-of/while statements never set it.
	BoundKnown   bool
	BoundCount   int
	MaxIterations int

	// StepIdPattern is the literal stepIdPattern option of step.forEach,
	// or Dynamic if present but non-literal.
	StepIdPattern string

	Out     string
	Collect Collect
	Errors  []string
}

func (Loop) Kind() Kind { return KindLoop }

func NewLoop(a *Arena, loc Location) *Loop {
	return &Loop{base: newBase(a, loc)}
}

// WorkflowRef recognizes a call to another known workflow name from
// inside a callback body. Cross-file references are deliberately left
// unresolved (Resolved == false) per spec.md §4.2/§9.
type WorkflowRef struct {
	base

	WorkflowName string
	Resolved     bool
}

func (WorkflowRef) Kind() Kind { return KindWorkflowRef }

func NewWorkflowRef(a *Arena, loc Location) *WorkflowRef {
	return &WorkflowRef{base: newBase(a, loc)}
}
