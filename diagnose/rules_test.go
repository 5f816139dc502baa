package diagnose

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/awaitly-go/analyzer/ir"
	"github.com/awaitly-go/analyzer/rulecatalog"
)

func TestRunFlagsMissingErrorsAndStepID(t *testing.T) {
	a := ir.NewArena()
	s := ir.NewStep(a, ir.Location{})
	s.StepID = "charge"
	s.NoIDOverload = true

	findings := Run([]ir.Node{s}, DefaultOptions())

	var ruleIDs []rulecatalog.ID
	for _, f := range findings {
		ruleIDs = append(ruleIDs, f.RuleID)
	}
	assert.Contains(t, ruleIDs, rulecatalog.MissingStepID)
	assert.Contains(t, ruleIDs, rulecatalog.MissingErrors)
}

func TestRunSkipsDisabledRules(t *testing.T) {
	a := ir.NewArena()
	s := ir.NewStep(a, ir.Location{})
	s.StepID = "charge"
	s.NoIDOverload = true

	findings := Run([]ir.Node{s}, Apply(WithRequireStepID(false), WithRequireErrors(false)))
	assert.Empty(t, findings)
}

func TestRunFlagsParallelBranchMissingErrorsNotGenericRule(t *testing.T) {
	a := ir.NewArena()
	branch := ir.NewStep(a, ir.Location{})
	branch.StepID = "charge"
	branch.Name = "charge"
	p := ir.NewParallel(a, ir.Location{})
	p.NamedBranches = true
	p.Children = []ir.Node{branch}

	findings := Run([]ir.Node{p}, DefaultOptions())

	assert.Len(t, findings, 1)
	assert.Equal(t, rulecatalog.ParallelMissingErrors, findings[0].RuleID)
}

func TestRunFlagsLoopMissingCollect(t *testing.T) {
	a := ir.NewArena()
	loop := ir.NewLoop(a, ir.Location{})
	loop.LoopType = ir.LoopForEach
	loop.Out = "results"
	loop.Collect = ir.CollectNone

	findings := Run([]ir.Node{loop}, DefaultOptions())
	assert.Len(t, findings, 1)
	assert.Equal(t, rulecatalog.LoopMissingCollect, findings[0].RuleID)
}

func TestWarningsAsErrorsEscalatesSeverity(t *testing.T) {
	a := ir.NewArena()
	s := ir.NewStep(a, ir.Location{})
	s.StepID = "charge"
	s.NoIDOverload = true

	findings := Run([]ir.Node{s}, Apply(WithWarningsAsErrors(true), WithRequireErrors(false)))
	assert.Equal(t, rulecatalog.SeverityError, findings[0].Severity)
}
