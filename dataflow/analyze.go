package dataflow

import (
	"sort"

	"github.com/awaitly-go/analyzer/ir"
)

// Edge is one producer-to-consumer data-flow edge.
type Edge struct {
	From string // writer step id
	To   string // reader step id
	Key  string
	// Type is the producer's output display type, when the type
	// enricher ran and resolved one.
	Type string
}

// UndefinedRead is a reader whose key has no producer anywhere earlier
// in document order.
type UndefinedRead struct {
	StepID string
	Key    string
}

// Issue is one data-flow validation finding.
type Issue struct {
	Type     string // "undefined-read" | "type-mismatch"
	Severity string // "warning"
	Message  string
	StepID   string
	Key      string
}

// Result is the full data-flow graph plus its derived validation.
type Result struct {
	Edges           []Edge
	ProducedKeys    map[string]bool
	UndefinedReads  []UndefinedRead
	DuplicateWrites map[string][]string

	// Order is a topological sort of step ids following Edges, stable on
	// document order when unconstrained. Nil when the edge set is
	// cyclic — which should not occur, since edges only ever point from
	// an earlier step to a later one, but Analyze still detects it
	// defensively rather than assume acyclicity.
	Order []string

	Valid  bool
	Issues []Issue
}

// Analyze walks roots in document order and builds the data-flow graph.
//
// Type-mismatch detection (spec.md §4.5's per-ctx.ref parameter-position
// inference) is not implemented: the walker collapses a step's reads to
// a flat key list and does not retain, per occurrence, which argument
// position of the enclosing dependency call a ctx.ref('K') landed in or
// whether it was wrapped by another expression. Reconstructing that
// would require the callback walker to carry per-read call-site and
// argument-index metadata through to this package. This is a recorded,
// intentional simplification (see DESIGN.md); Analyze never emits a
// type-mismatch issue as a result.
func Analyze(roots []ir.Node) Result {
	steps := ir.Steps(roots)

	writers := map[string][]string{} // key -> writer stepIds, document order
	for _, st := range steps {
		if st.Out != "" && st.Out != ir.Dynamic {
			writers[st.Out] = append(writers[st.Out], st.StepID)
		}
	}

	produced := map[string]bool{}
	for k := range writers {
		produced[k] = true
	}

	duplicates := map[string][]string{}
	for k, ws := range writers {
		if len(ws) >= 2 {
			duplicates[k] = ws
		}
	}

	var edges []Edge
	var undefined []UndefinedRead
	var issues []Issue

	seenWriterBeforeIndex := map[string][]string{} // key -> writer ids seen so far, filled incrementally
	outputType := map[string]string{}              // writer step id -> enriched output display type
	for _, st := range steps {
		for _, key := range st.Reads {
			earlierWriters := seenWriterBeforeIndex[key]
			if len(earlierWriters) == 0 {
				undefined = append(undefined, UndefinedRead{StepID: st.StepID, Key: key})
				issues = append(issues, Issue{
					Type: "undefined-read", Severity: "warning",
					Message: "read of key \"" + key + "\" has no producer",
					StepID:  st.StepID, Key: key,
				})
				continue
			}
			for _, w := range earlierWriters {
				edges = append(edges, Edge{From: w, To: st.StepID, Key: key, Type: outputType[w]})
			}
		}
		if st.Out != "" && st.Out != ir.Dynamic {
			seenWriterBeforeIndex[st.Out] = append(seenWriterBeforeIndex[st.Out], st.StepID)
			if st.OutputTypeInfo != nil {
				outputType[st.StepID] = st.OutputTypeInfo.Display
			}
		}
	}

	order := topoSort(steps, edges)

	return Result{
		Edges:           edges,
		ProducedKeys:    produced,
		UndefinedReads:  undefined,
		DuplicateWrites: duplicates,
		Order:           order,
		Valid:           true,
		Issues:          issues,
	}
}

// topoSort orders step ids by the Edges constraints, breaking ties by
// document order. Adapted from the round-by-round "remove what's ready"
// style: each round peels off every node whose dependencies are already
// placed, rather than maintaining an explicit indegree queue; a round
// that places nothing signals a cycle.
func topoSort(steps []*ir.Step, edges []Edge) []string {
	docOrder := make([]string, len(steps))
	index := make(map[string]int, len(steps))
	for i, st := range steps {
		docOrder[i] = st.StepID
		index[st.StepID] = i
	}

	deps := map[string]map[string]bool{} // stepId -> set of stepIds that must come first
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		if deps[e.To] == nil {
			deps[e.To] = map[string]bool{}
		}
		deps[e.To][e.From] = true
	}

	placed := map[string]bool{}
	var order []string
	remaining := append([]string(nil), docOrder...)

	for len(remaining) > 0 {
		var ready []string
		var stillRemaining []string
		for _, id := range remaining {
			ok := true
			for dep := range deps[id] {
				if !placed[dep] {
					ok = false
					break
				}
			}
			if ok {
				ready = append(ready, id)
			} else {
				stillRemaining = append(stillRemaining, id)
			}
		}
		if len(ready) == 0 {
			return nil // cycle
		}
		sort.Slice(ready, func(i, j int) bool { return index[ready[i]] < index[ready[j]] })
		for _, id := range ready {
			placed[id] = true
			order = append(order, id)
		}
		remaining = stillRemaining
	}
	return order
}
