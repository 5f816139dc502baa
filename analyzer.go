// Package analyzer is the public facade of the static workflow analyzer:
// parse a TypeScript-flavored workflow DSL source file, discover its
// createWorkflow(...) definitions and invocations, walk each callback
// into the Static Workflow IR, then run the optional type enricher and
// the data-flow, error-flow, and strict-diagnostics analyses over it.
package analyzer

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/awaitly-go/analyzer/dataflow"
	"github.com/awaitly-go/analyzer/diagnose"
	"github.com/awaitly-go/analyzer/diagram"
	"github.com/awaitly-go/analyzer/errorflow"
	"github.com/awaitly-go/analyzer/events"
	"github.com/awaitly-go/analyzer/internal/source"
	"github.com/awaitly-go/analyzer/ir"
	"github.com/awaitly-go/analyzer/syntax"
	"github.com/awaitly-go/analyzer/typeinfer"
	"github.com/awaitly-go/analyzer/walk"

	"github.com/awaitly-go/analyzer/discover"
)

// WorkflowAnalysis is the complete analysis output for one discovered
// workflow.
type WorkflowAnalysis struct {
	WorkflowName string
	Workflow     ir.Workflow
	Stats        ir.Stats
	Warnings     []string
	DataFlow     dataflow.Result
	ErrorFlow    errorflow.Result
	ErrorCheck   errorflow.Validation
	Findings     []diagnose.Finding
	Diagram      diagram.Diagram
}

// FileAnalysis is the result of analyzing one source file: one
// WorkflowAnalysis per analyzed workflow. It carries no file-level
// warnings; warnings are recorded per workflow in WorkflowAnalysis.Warnings
// (an invocation with no matching definition is still analyzed, under
// the invoked name).
type FileAnalysis struct {
	// RunID identifies this one Analyze call, minted fresh each time
	// (never derived from path/content). Cache keys and emitted events do
	// not include it.
	RunID     string
	Path      string
	Workflows []WorkflowAnalysis
}

// AnalyzeFile reads path (with internal/source's retry wrapper) and
// analyzes its contents. It is the entry point the CLI uses.
func AnalyzeFile(ctx context.Context, path string, opts ...Option) (FileAnalysis, error) {
	data, err := source.ReadFile(ctx, path, source.DefaultConfig())
	if err != nil {
		return FileAnalysis{}, err
	}
	return Analyze(path, data, opts...)
}

// Analyze runs the full pipeline over already-read source bytes. path is
// used only for diagnostics and as the cache key for each discovered
// workflow's rendered diagram.
//
// The cache is write-through on the Diagram artifact only, never a
// skip-reanalysis read: the closed ir.Node sum (Workflow.Children) is an
// interface slice, and round-tripping an interface value through
// encoding/json requires a discriminated-union codec this analyzer does
// not implement (see DESIGN.md) — so a cache hit can reconstruct what a
// rendered diagram looked like, but never stands in for re-walking the
// source. A long-lived host (an editor extension, a CI service) can
// still use it to avoid re-lowering an unchanged workflow's diagram.
func Analyze(path string, src []byte, opts ...Option) (FileAnalysis, error) {
	o := ApplyOptions(opts...)

	tree, err := syntax.Parse(src, path)
	if err != nil {
		return FileAnalysis{}, &ParseError{Path: path, Message: err.Error()}
	}

	tagsConsts := discover.ResolveTagsConstants(tree)
	defs := discover.Definitions(tree)
	invocations := discover.Invocations(tree, defs)

	knownWorkflows := make(map[string]bool, len(defs))
	for _, d := range defs {
		if d.Name != "" {
			knownWorkflows[d.Name] = true
		}
	}

	defByName := make(map[string]discover.Definition, len(defs))
	for _, d := range defs {
		if d.Name != "" {
			defByName[d.Name] = d
		}
	}

	fa := FileAnalysis{RunID: uuid.New().String(), Path: path}

	// A defined workflow whose createWorkflow(...) call itself carries an
	// inline callback argument (a convenience some authors use instead of
	// the factory-then-invoke `workflow(callback)` form) is analyzed
	// directly from its Definition; every other Definition is analyzed
	// once its matching Invocation below supplies the callback.
	analyzed := make(map[string]bool, len(defs))
	for _, d := range defs {
		callback := callbackArg(d.CallNode)
		if callback == nil {
			continue
		}
		events.Emit(o.Events, events.Event{Type: events.WorkflowDiscovered, WorkflowName: d.Name})
		fa.Workflows = append(fa.Workflows, analyzeOne(d.Name, d, callback, tagsConsts, knownWorkflows, o))
		analyzed[d.Name] = true
	}

	for _, inv := range invocations {
		if analyzed[inv.WorkflowName] {
			continue
		}
		d := discover.Definition{Name: inv.WorkflowName}
		if resolved, ok := defByName[inv.WorkflowName]; ok {
			d = resolved
		}
		events.Emit(o.Events, events.Event{Type: events.WorkflowDiscovered, WorkflowName: inv.WorkflowName})
		fa.Workflows = append(fa.Workflows, analyzeOne(inv.WorkflowName, d, inv.Callback, tagsConsts, knownWorkflows, o))
		analyzed[inv.WorkflowName] = true
	}

	if len(fa.Workflows) == 0 {
		return fa, &NoWorkflowsError{Path: path}
	}

	events.Emit(o.Events, events.Event{Type: events.AnalysisComplete, WorkflowCount: len(fa.Workflows)})

	if o.Cache != nil {
		for _, w := range fa.Workflows {
			if data, err := json.Marshal(w.Diagram); err == nil {
				_ = o.Cache.Set(context.Background(), path+"::"+w.WorkflowName, data)
			}
		}
	}

	return fa, nil
}

func callbackArg(call *syntax.Node) *syntax.Node {
	if call == nil {
		return nil
	}
	for _, a := range call.Arguments() {
		if a.Kind == syntax.KindArrowFunction || a.Kind == syntax.KindFunctionExpression {
			return a
		}
	}
	return nil
}

func analyzeOne(name string, d discover.Definition, callback *syntax.Node, tagsConsts map[string][]string, knownWorkflows map[string]bool, o Options) WorkflowAnalysis {
	arena := ir.NewArena()
	res := walk.Walk(arena, callback, tagsConsts, knownWorkflows, name)

	wf := ir.Workflow{
		WorkflowName:      name,
		DeclaredErrors:    d.DeclaredErrors,
		Strict:            d.Strict,
		Dependencies:      d.Dependencies,
		Description:       d.Description,
		Children:          res.Children,
		HasDeclaredErrors: d.HasErrorsField,
	}

	if o.Checker != nil {
		typeinfer.Enrich(o.Checker, &wf)
	}

	warnings := res.Warnings
	for _, verr := range ir.Validate(&wf) {
		warnings = append(warnings, verr.Error())
	}

	for _, w := range warnings {
		events.Emit(o.Events, events.Event{Type: events.Warning, WorkflowName: name, Message: w})
	}
	for _, st := range ir.Steps(res.Children) {
		events.Emit(o.Events, events.Event{Type: events.StepVisited, WorkflowName: name, StepID: st.StepID})
	}

	ef := errorflow.Analyze(wf.Children)

	return WorkflowAnalysis{
		WorkflowName: name,
		Workflow:     wf,
		Stats:        res.Stats,
		Warnings:     warnings,
		DataFlow:     dataflow.Analyze(wf.Children),
		ErrorFlow:    ef,
		ErrorCheck:   errorflow.Validate(ef, wf.DeclaredErrors),
		Findings:     diagnose.Run(wf.Children, o.Diagnose),
		Diagram:      diagram.Lower(name, wf.Children),
	}
}
