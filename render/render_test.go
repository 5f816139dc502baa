package render

import "github.com/awaitly-go/analyzer/diagram"

// sampleDiagram is a small single-parallel workflow (fork, two steps,
// join) shared across this package's renderer tests.
func sampleDiagram() diagram.Diagram {
	return diagram.Diagram{
		WorkflowName: "orderWorkflow",
		States: []diagram.State{
			{ID: "initial", Label: "start", Type: diagram.StateInitial},
			{ID: "parallel_fork_1", Label: "parallel", Type: diagram.StateDecision},
			{ID: "step_1", Label: "charge", Type: diagram.StateStep},
			{ID: "step_2", Label: "notify", Type: diagram.StateStep},
			{ID: "parallel_join_1", Label: "join", Type: diagram.StateJoin},
			{ID: "terminal", Label: "end", Type: diagram.StateTerminal},
		},
		Transitions: []diagram.Transition{
			{FromStateID: "initial", ToStateID: "parallel_fork_1", Event: "start"},
			{FromStateID: "parallel_fork_1", ToStateID: "step_1", Event: "charge"},
			{FromStateID: "parallel_fork_1", ToStateID: "step_2", Event: "notify"},
			{FromStateID: "step_1", ToStateID: "parallel_join_1", Event: "done"},
			{FromStateID: "step_2", ToStateID: "parallel_join_1", Event: "done"},
			{FromStateID: "parallel_join_1", ToStateID: "terminal", Event: "done"},
		},
		InitialStateID:   "initial",
		TerminalStateIDs: []string{"terminal"},
	}
}
