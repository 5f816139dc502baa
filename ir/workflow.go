package ir

// ParamSignature describes one parameter of a dependency function, as
// reported by the type enricher's checker.
type ParamSignature struct {
	Name string
	Type string
}

// ReturnSignature describes a dependency's return type, optionally
// classified as Result-like (see typeinfer package).
type ReturnSignature struct {
	Display    string
	Kind       string
	ResultLike *ResultLike
}

// ResultLike records the extracted T/E of an AsyncResult<T,E> /
// Result<T,E> / Promise<Result<T,E>> return type, including one level of
// type-alias expansion.
type ResultLike struct {
	OkType    TypeInfo
	ErrorType TypeInfo
}

// Signature is the full enriched shape of a dependency function, filled
// in by the type enricher when a checker is available.
type Signature struct {
	Params     []ParamSignature
	ReturnType ReturnSignature
}

// Dep is one entry of createWorkflow's dependency object.
type Dep struct {
	Name string

	// Location is the dependency property's source span, queried by the
	// type enricher against a Checker to resolve the dependency's type.
	Location Location

	// TypeSignature is the raw display string of the dependency's type,
	// when the checker could produce one.
	TypeSignature string

	// Signature is filled in by the type enricher; nil when no checker
	// was bound or the dependency's type could not be resolved.
	Signature *Signature
}

// Workflow is the root of one analysis: one createWorkflow(...) binding
// invoked with a callback.
type Workflow struct {
	WorkflowName   string
	DeclaredErrors []string
	Strict         bool
	Dependencies   []Dep
	Description    string
	Children       []Node

	// HasDeclaredErrors distinguishes "no errors option" from "errors: []".
	HasDeclaredErrors bool
}

// Stats aggregates per-workflow node counts, per spec.md §4.3 "Stats".
type Stats struct {
	TotalSteps       int
	ConditionalCount int
	ParallelCount    int
	RaceCount        int
	LoopCount        int
	WorkflowRefCount int
	UnknownCount     int
}
