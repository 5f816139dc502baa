package diagnose

import (
	"github.com/awaitly-go/analyzer/ir"
	"github.com/awaitly-go/analyzer/rulecatalog"
)

// Finding is one strict-diagnostic violation.
type Finding struct {
	RuleID      rulecatalog.ID
	Severity    rulecatalog.Severity
	Message     string
	StepID      string
	Location    ir.Location
	AutofixHint string
}

func (o Options) severity(id rulecatalog.ID) rulecatalog.Severity {
	if o.WarningsAsErrors {
		return rulecatalog.SeverityError
	}
	return id.Severity()
}

func (o Options) finding(id rulecatalog.ID, stepID string, loc ir.Location, message string) Finding {
	return Finding{
		RuleID:      id,
		Severity:    o.severity(id),
		Message:     message,
		StepID:      stepID,
		Location:    loc,
		AutofixHint: id.AutofixHint(),
	}
}

// Run evaluates every enabled rule over roots and returns every violation
// found, in document order.
func Run(roots []ir.Node, opts Options) []Finding {
	var findings []Finding

	// parallelBranchSteps collects every Step that is a direct named
	// branch of a strict parallel/race node, so the generic
	// missing-errors rule does not also fire for it: the more specific
	// parallel-missing-errors rule takes precedence.
	parallelBranchSteps := map[ir.NodeID]bool{}

	ir.Visit(roots, func(n ir.Node) {
		switch t := n.(type) {
		case *ir.Parallel:
			if opts.RequireParallelErrors && t.NamedBranches {
				for _, c := range t.Children {
					if st, ok := c.(*ir.Step); ok {
						parallelBranchSteps[st.ID()] = true
						if st.Errors == nil {
							findings = append(findings, opts.finding(rulecatalog.ParallelMissingErrors, st.StepID, st.Loc(),
								"parallel branch \""+branchLabel(st)+"\" has no errors declaration"))
						}
					}
				}
			}
		case *ir.Race:
			if opts.RequireParallelErrors && t.NamedBranches {
				for _, c := range t.Children {
					if st, ok := c.(*ir.Step); ok {
						parallelBranchSteps[st.ID()] = true
						if st.Errors == nil {
							findings = append(findings, opts.finding(rulecatalog.ParallelMissingErrors, st.StepID, st.Loc(),
								"race branch \""+branchLabel(st)+"\" has no errors declaration"))
						}
					}
				}
			}
		}
	})

	ir.Visit(roots, func(n ir.Node) {
		switch t := n.(type) {
		case *ir.Step:
			if opts.RequireStepID && t.NoIDOverload {
				findings = append(findings, opts.finding(rulecatalog.MissingStepID, t.StepID, t.Loc(),
					"step call used the no-id overload"))
			}
			if opts.RequireErrors && t.Errors == nil && !parallelBranchSteps[t.ID()] {
				findings = append(findings, opts.finding(rulecatalog.MissingErrors, t.StepID, t.Loc(),
					"step \""+t.StepID+"\" has no errors option"))
			}
		case *ir.Loop:
			if opts.RequireLoopCollect && t.LoopType == ir.LoopForEach && t.Out != "" && t.Collect == ir.CollectNone {
				findings = append(findings, opts.finding(rulecatalog.LoopMissingCollect, "", t.Loc(),
					"step.forEach declares out but no collect"))
			}
		}
	})

	return findings
}

func branchLabel(st *ir.Step) string {
	if st.Name != "" {
		return st.Name
	}
	return st.StepID
}
