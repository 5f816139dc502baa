package events

import "time"

// Type identifies the kind of analysis progress event.
type Type string

const (
	// WorkflowDiscovered fires once per workflow found during discovery,
	// before its callback is walked.
	WorkflowDiscovered Type = "workflow_discovered"

	// StepVisited fires once per step node (ir.Step) of a workflow, after
	// its callback has been walked; saga steps and streams do not produce
	// it.
	StepVisited Type = "step_visited"

	// Warning fires for a non-fatal condition surfaced during discovery,
	// walking, or analysis (e.g. an unresolved dependency source).
	Warning Type = "warning"

	// AnalysisComplete fires once, after every workflow in the input has
	// been discovered, walked, and analyzed.
	AnalysisComplete Type = "analysis_complete"
)

// Event is one observable occurrence during Analyze.
type Event struct {
	Type Type

	// WorkflowName identifies the workflow for WorkflowDiscovered,
	// StepVisited, and per-workflow Warning events.
	WorkflowName string

	// StepID identifies the step for StepVisited events.
	StepID string

	// Message carries the warning text for Warning events; it is empty
	// for the other event types.
	Message string

	// WorkflowCount is the total number of workflows analyzed, set on
	// AnalysisComplete.
	WorkflowCount int

	Timestamp time.Time
}

// Emit sends e with a timestamp to ch, without blocking if ch is full or
// nil.
func Emit(ch chan<- Event, e Event) {
	if ch == nil {
		return
	}
	e.Timestamp = time.Now()
	select {
	case ch <- e:
	default:
	}
}

// NewChannel creates a buffered event channel with standard capacity.
func NewChannel() chan Event {
	return make(chan Event, 64)
}
