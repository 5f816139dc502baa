package ir

// TypeInfo is a display-string type fact attached by the type enricher.
// Kind stays "plain" at the step layer per spec.md §4.4 item 3; richer
// Result-like classification lives on Dep.Signature.ResultLike.
type TypeInfo struct {
	Display string
	Kind    string
}

// RetryOptions captures the literal fields of a step.retry options object.
// Option keys that were not literal expressions are recorded with an
// OptionDynamic value rather than omitted, so callers can tell "absent"
// from "present but dynamic".
type RetryOptions map[string]OptionValue

// TimeoutOptions captures the literal fields of a step.withTimeout options
// object, same literality rule as RetryOptions.
type TimeoutOptions map[string]OptionValue

// Step is a single DSL-recognized unit of work: a call on the bound step
// parameter (or one of its method-chain variants) that produces exactly
// one IR node.
type Step struct {
	base

	// StepID is the literal first argument if it was a string literal or
	// a no-substitution template; otherwise Dynamic.
	StepID string

	// Name is the human label, when the call supplied one distinct from
	// StepID (e.g. an options.name field, or a parallel/race branch key).
	Name string

	// Callee is the full dotted callee text as written (e.g. "step",
	// "step.retry", "step.try", "deps.fetchUser").
	Callee string

	// Key is the options.key literal, or Dynamic if options.key was
	// present but non-literal. Empty if no key option was supplied.
	Key string

	// DepSource is the dependency name this step ultimately invokes, as
	// resolved by the priority chain in walk (explicit {dep:} option →
	// step.dep wrapper → auto-detected from the callee).
	DepSource string

	Retry   *RetryOptions
	Timeout *TimeoutOptions

	// Errors is the declared error-tag list (post tags(...) resolution).
	// Nil means no errors option was present at all; an empty non-nil
	// slice means an explicit errors: [] was given.
	Errors []string

	// Out is the produced data-flow key, if options.out was a literal.
	Out string

	// Reads is the union of the explicit reads option and every literal
	// ctx.ref('K') argument found in the step's function body.
	Reads []string

	InputType  *string
	OutputType *string

	OutputTypeInfo *TypeInfo
	ErrorTypeInfo  *TypeInfo

	// SleepDuration is set for steps recognized as a sleep/delay helper.
	SleepDuration *OptionValue

	// IsTryStep marks a step.try call so downstream consumers can tell it
	// apart from a plain step with an errors option.
	IsTryStep bool

	// NoIDOverload is true when the call used the (fn, opts?) overload
	// rather than (id, fn, opts?) — feeds the missing-step-id diagnostic.
	NoIDOverload bool
}

func (Step) Kind() Kind { return KindStep }

// NewStep constructs a Step node and mints its id from the arena.
func NewStep(a *Arena, loc Location) *Step {
	return &Step{base: newBase(a, loc)}
}

// SagaStep is produced by saga.step / saga.tryStep.
type SagaStep struct {
	base

	Name                string
	Callee              string
	HasCompensation     bool
	CompensationCallee  string
	IsTryStep           bool
	Key                 string
}

func (SagaStep) Kind() Kind { return KindSagaStep }

func NewSagaStep(a *Arena, loc Location) *SagaStep {
	return &SagaStep{base: newBase(a, loc)}
}

// Stream recognizes a streaming construct bound to a namespace.
type Stream struct {
	base

	StreamType string
	Namespace  string
}

func (Stream) Kind() Kind { return KindStream }

func NewStream(a *Arena, loc Location) *Stream {
	return &Stream{base: newBase(a, loc)}
}

// Unknown is emitted for a recognized-as-DSL-shaped but unrecognized
// construct; it never aborts the walk.
type Unknown struct {
	base

	Reason string
}

func (Unknown) Kind() Kind { return KindUnknown }

func NewUnknown(a *Arena, loc Location, reason string) *Unknown {
	u := &Unknown{base: newBase(a, loc), Reason: reason}
	return u
}
