package ir

// ParallelMode distinguishes step.parallel/allAsync (fail-fast) from
// allSettledAsync (all-settled).
type ParallelMode string

const (
	ParallelAll          ParallelMode = "all"
	ParallelAllSettled   ParallelMode = "allSettled"
)

// Sequence groups two or more sibling nodes produced by one statement
// list. A single-child statement list is never wrapped (ir invariant #2:
// Sequence.Children always has length >= 2); the walker returns the lone
// child directly instead of constructing a Sequence.
type Sequence struct {
	base

	Children []Node
}

func (Sequence) Kind() Kind { return KindSequence }

// NewSequence constructs a Sequence. Callers must pass at least two
// children; the walker enforces this by never calling NewSequence for a
// shorter list.
func NewSequence(a *Arena, loc Location, children []Node) *Sequence {
	return &Sequence{base: newBase(a, loc), Children: children}
}

// Parallel is produced by step.parallel (object/name+object forms),
// allAsync, and allSettledAsync.
type Parallel struct {
	base

	Mode     ParallelMode
	Name     string
	Children []Node
	Callee   string

	// NamedBranches is true when branches came from an object literal
	// (each child then carries a Name), per ir invariant #3.
	NamedBranches bool
}

func (Parallel) Kind() Kind { return KindParallel }

func NewParallel(a *Arena, loc Location) *Parallel {
	return &Parallel{base: newBase(a, loc)}
}

// Race is produced by step.race and anyAsync.
type Race struct {
	base

	Name          string
	Children      []Node
	Callee        string
	NamedBranches bool
}

func (Race) Kind() Kind { return KindRace }

func NewRace(a *Arena, loc Location) *Race {
	return &Race{base: newBase(a, loc)}
}
