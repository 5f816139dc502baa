package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepsCollectsNestedSteps(t *testing.T) {
	a := NewArena()
	s1 := NewStep(a, Location{})
	s1.StepID = "a"
	s2 := NewStep(a, Location{})
	s2.StepID = "b"
	s3 := NewStep(a, Location{})
	s3.StepID = "c"

	seq := &Sequence{base: newBase(a, Location{}), Children: []Node{s1, s2}}
	cond := &Conditional{base: newBase(a, Location{}), Consequent: []Node{s3}}

	roots := []Node{seq, cond}

	steps := Steps(roots)
	assert.Len(t, steps, 3)
	assert.Equal(t, "a", steps[0].StepID)
	assert.Equal(t, "b", steps[1].StepID)
	assert.Equal(t, "c", steps[2].StepID)
}

func TestVisitSkipsNilNode(t *testing.T) {
	visited := 0
	Visit([]Node{nil}, func(Node) { visited++ })
	assert.Equal(t, 0, visited)
}

func TestVisitDescendsLoopBody(t *testing.T) {
	a := NewArena()
	s := NewStep(a, Location{})
	loop := &Loop{base: newBase(a, Location{}), Body: []Node{s}}

	var kinds []Kind
	Visit([]Node{loop}, func(n Node) { kinds = append(kinds, n.Kind()) })

	assert.Equal(t, []Kind{KindLoop, KindStep}, kinds)
}
