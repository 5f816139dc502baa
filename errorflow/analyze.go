package errorflow

import (
	"sort"

	"github.com/awaitly-go/analyzer/ir"
)

// Entry is one step's declared error tags; Errors is never nil here even
// when the step itself recorded "no errors option at all" (nil) — this
// package normalizes that to an empty slice per SPEC_FULL.md §4.6, while
// still recording the step in StepsWithoutErrors.
type Entry struct {
	StepID string
	Errors []string
}

// Result is the aggregate error-flow view over one workflow's steps.
type Result struct {
	Entries []Entry

	// AllErrors is the sorted union of every step's declared errors.
	AllErrors []string

	// ErrorToSteps maps each error tag to the step ids that declare it.
	ErrorToSteps map[string][]string

	// StepsWithoutErrors lists step ids that had no errors option at all
	// (Step.Errors == nil), as opposed to an explicit errors: [].
	StepsWithoutErrors []string

	AllStepsDeclareErrors bool
}

// Analyze aggregates the error tags of every step reachable from roots.
func Analyze(roots []ir.Node) Result {
	steps := ir.Steps(roots)

	var entries []Entry
	errorToSteps := map[string][]string{}
	allSet := map[string]bool{}
	var withoutErrors []string

	for _, st := range steps {
		errs := st.Errors
		if errs == nil {
			withoutErrors = append(withoutErrors, st.StepID)
			errs = []string{}
		}
		entries = append(entries, Entry{StepID: st.StepID, Errors: errs})
		for _, e := range errs {
			allSet[e] = true
			errorToSteps[e] = append(errorToSteps[e], st.StepID)
		}
	}

	var all []string
	for e := range allSet {
		all = append(all, e)
	}
	sort.Strings(all)

	return Result{
		Entries:               entries,
		AllErrors:             all,
		ErrorToSteps:          errorToSteps,
		StepsWithoutErrors:    withoutErrors,
		AllStepsDeclareErrors: len(withoutErrors) == 0,
	}
}

// Validation is the outcome of checking a Result's AllErrors against a
// workflow's declared error set.
type Validation struct {
	UnusedDeclared   []string // declared \ allErrors
	UndeclaredErrors []string // allErrors \ declared
	Valid            bool
}

// Validate checks r's aggregated errors against declared, the workflow's
// own `errors` option.
func Validate(r Result, declared []string) Validation {
	declaredSet := map[string]bool{}
	for _, d := range declared {
		declaredSet[d] = true
	}
	allSet := map[string]bool{}
	for _, e := range r.AllErrors {
		allSet[e] = true
	}

	var unused, undeclared []string
	for _, d := range declared {
		if !allSet[d] {
			unused = append(unused, d)
		}
	}
	for _, e := range r.AllErrors {
		if !declaredSet[e] {
			undeclared = append(undeclared, e)
		}
	}
	sort.Strings(unused)
	sort.Strings(undeclared)

	return Validation{
		UnusedDeclared:   unused,
		UndeclaredErrors: undeclared,
		Valid:            len(undeclared) == 0,
	}
}
