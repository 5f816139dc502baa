package dataflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/awaitly-go/analyzer/ir"
)

func step(a *ir.Arena, id, out string, reads ...string) *ir.Step {
	s := ir.NewStep(a, ir.Location{})
	s.StepID = id
	s.Out = out
	s.Reads = reads
	return s
}

func TestAnalyzeBuildsEdgeFromWriterToReader(t *testing.T) {
	a := ir.NewArena()
	charge := step(a, "charge", "chargeResult")
	ship := step(a, "ship", "", "chargeResult")

	res := Analyze([]ir.Node{charge, ship})

	assert.Equal(t, []Edge{{From: "charge", To: "ship", Key: "chargeResult"}}, res.Edges)
	assert.Empty(t, res.UndefinedReads)
}

func TestAnalyzeFlagsUndefinedRead(t *testing.T) {
	a := ir.NewArena()
	ship := step(a, "ship", "", "chargeResult")

	res := Analyze([]ir.Node{ship})

	assert.Equal(t, []UndefinedRead{{StepID: "ship", Key: "chargeResult"}}, res.UndefinedReads)
	assert.Len(t, res.Issues, 1)
	assert.Equal(t, "undefined-read", res.Issues[0].Type)
}

func TestAnalyzeFlagsDuplicateWrites(t *testing.T) {
	a := ir.NewArena()
	s1 := step(a, "a", "key1")
	s2 := step(a, "b", "key1")

	res := Analyze([]ir.Node{s1, s2})

	assert.ElementsMatch(t, []string{"a", "b"}, res.DuplicateWrites["key1"])
}

func TestAnalyzeIgnoresDynamicOut(t *testing.T) {
	a := ir.NewArena()
	s := step(a, "a", ir.Dynamic)

	res := Analyze([]ir.Node{s})
	assert.False(t, res.ProducedKeys[ir.Dynamic])
}
