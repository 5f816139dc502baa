package errorflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/awaitly-go/analyzer/ir"
)

func stepWithErrors(a *ir.Arena, id string, errs []string) *ir.Step {
	s := ir.NewStep(a, ir.Location{})
	s.StepID = id
	s.Errors = errs
	return s
}

func TestAnalyzeAggregatesErrorsAcrossSteps(t *testing.T) {
	a := ir.NewArena()
	charge := stepWithErrors(a, "charge", []string{"PaymentFailed"})
	ship := stepWithErrors(a, "ship", []string{"ShippingFailed", "PaymentFailed"})

	res := Analyze([]ir.Node{charge, ship})

	assert.Equal(t, []string{"PaymentFailed", "ShippingFailed"}, res.AllErrors)
	assert.ElementsMatch(t, []string{"charge", "ship"}, res.ErrorToSteps["PaymentFailed"])
	assert.True(t, res.AllStepsDeclareErrors)
}

func TestAnalyzeTracksStepsWithoutErrorsOption(t *testing.T) {
	a := ir.NewArena()
	noOpt := ir.NewStep(a, ir.Location{})
	noOpt.StepID = "charge"
	explicitEmpty := stepWithErrors(a, "ship", []string{})

	res := Analyze([]ir.Node{noOpt, explicitEmpty})

	assert.Equal(t, []string{"charge"}, res.StepsWithoutErrors)
	assert.False(t, res.AllStepsDeclareErrors)
}

func TestValidateFindsUndeclaredAndUnusedErrors(t *testing.T) {
	a := ir.NewArena()
	charge := stepWithErrors(a, "charge", []string{"PaymentFailed", "NetworkTimeout"})

	res := Analyze([]ir.Node{charge})
	v := Validate(res, []string{"PaymentFailed", "ShippingFailed"})

	assert.Equal(t, []string{"ShippingFailed"}, v.UnusedDeclared)
	assert.Equal(t, []string{"NetworkTimeout"}, v.UndeclaredErrors)
	assert.False(t, v.Valid)
}

func TestValidateValidWhenAllErrorsDeclared(t *testing.T) {
	a := ir.NewArena()
	charge := stepWithErrors(a, "charge", []string{"PaymentFailed"})

	res := Analyze([]ir.Node{charge})
	v := Validate(res, []string{"PaymentFailed"})

	assert.True(t, v.Valid)
	assert.Empty(t, v.UndeclaredErrors)
}
