package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awaitly-go/analyzer/ir"
)

func TestLowerSingleStepHasInitialStepTerminal(t *testing.T) {
	a := ir.NewArena()
	s := ir.NewStep(a, ir.Location{})
	s.StepID = "charge"

	d := Lower("orderWorkflow", []ir.Node{s})

	assert.Equal(t, "orderWorkflow", d.WorkflowName)
	assert.Equal(t, "initial", d.InitialStateID)
	require.Len(t, d.TerminalStateIDs, 1)

	var kinds []StateType
	for _, st := range d.States {
		kinds = append(kinds, st.Type)
	}
	assert.Equal(t, []StateType{StateInitial, StateStep, StateTerminal}, kinds)
}

func TestLowerEmptyWorkflowHasSelfTerminalInitial(t *testing.T) {
	d := Lower("emptyWorkflow", nil)
	assert.Equal(t, []string{"initial"}, d.TerminalStateIDs)
	assert.Len(t, d.States, 1)
}

func TestLowerParallelProducesForkAndJoin(t *testing.T) {
	a := ir.NewArena()
	s1 := ir.NewStep(a, ir.Location{})
	s1.StepID = "charge"
	s2 := ir.NewStep(a, ir.Location{})
	s2.StepID = "notify"
	p := ir.NewParallel(a, ir.Location{})
	p.Children = []ir.Node{s1, s2}

	d := Lower("orderWorkflow", []ir.Node{p})

	var sawFork, sawJoin bool
	for _, st := range d.States {
		if st.Type == StateJoin && st.ID == "parallel_fork_1" {
			sawFork = true
		}
		if st.Type == StateJoin && st.ID == "parallel_join_1" {
			sawJoin = true
		}
	}
	assert.True(t, sawFork)
	assert.True(t, sawJoin)

	var forkTransitions int
	for _, tr := range d.Transitions {
		if tr.FromStateID == "parallel_fork_1" {
			forkTransitions++
		}
	}
	assert.Equal(t, 2, forkTransitions)
}

func TestLowerDecisionProducesBothBranches(t *testing.T) {
	a := ir.NewArena()
	consequent := ir.NewStep(a, ir.Location{})
	consequent.StepID = "ship"
	alternate := ir.NewStep(a, ir.Location{})
	alternate.StepID = "notify"

	dec := ir.NewDecision(a, ir.Location{})
	dec.ConditionLabel = "charge.ok"
	dec.Consequent = []ir.Node{consequent}
	dec.Alternate = []ir.Node{alternate}

	d := Lower("orderWorkflow", []ir.Node{dec})

	var labels []string
	for _, tr := range d.Transitions {
		if tr.ConditionLabel != "" {
			labels = append(labels, tr.ConditionLabel)
		}
	}
	assert.NotEmpty(t, labels)
}
