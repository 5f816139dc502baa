package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awaitly-go/analyzer/ir"
	"github.com/awaitly-go/analyzer/syntax"
)

func parseCallback(t *testing.T, src string) *syntax.Node {
	t.Helper()
	tree, err := syntax.Parse([]byte(src), "cb.ts")
	require.NoError(t, err)
	stmt := tree.Root.Statements()[0]
	call := stmt.Children()[0]
	return call.Arguments()[0]
}

func TestWalkBuildsSequentialSteps(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  const charge = await step('charge', async () => {
    return deps.chargeCard()
  }, { out: 'chargeResult', errors: ['PaymentFailed'] })

  await step('ship', async () => {
    return deps.shipOrder()
  })
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 2)
	first, ok := res.Children[0].(*ir.Step)
	require.True(t, ok)
	assert.Equal(t, "charge", first.StepID)
	assert.Equal(t, "chargeResult", first.Out)
	assert.Equal(t, []string{"PaymentFailed"}, first.Errors)
	assert.Equal(t, 2, res.Stats.TotalSteps)
}

func TestWalkFlagsNoIDOverload(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  await step(async () => {
    return deps.chargeCard()
  })
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 1)
	st, ok := res.Children[0].(*ir.Step)
	require.True(t, ok)
	assert.True(t, st.NoIDOverload)
	assert.Equal(t, ir.Dynamic, st.StepID)
}

func TestWalkBuildsConditionalFromIfStatement(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  if (charge.ok) {
    await step('ship', async () => { return deps.shipOrder() })
  } else {
    await step('notify', async () => { return deps.notifyFailure() })
  }
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 1)
	cond, ok := res.Children[0].(*ir.Conditional)
	require.True(t, ok)
	assert.Equal(t, ir.HelperNone, cond.Helper)
	assert.Len(t, cond.Consequent, 1)
	assert.Len(t, cond.Alternate, 1)
}

func TestWalkBuildsStepRetryFromOptsDirectly(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  await step.retry('charge', async () => {
    return deps.chargeCard()
  }, { maxAttempts: 3 })
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 1)
	st, ok := res.Children[0].(*ir.Step)
	require.True(t, ok)
	require.NotNil(t, st.Retry)
	maxAttempts, exists := (*st.Retry)["maxAttempts"]
	require.True(t, exists)
	assert.Equal(t, ir.OptionNumber, maxAttempts.Kind)
	assert.Equal(t, float64(3), maxAttempts.Num)
	assert.Nil(t, st.Timeout)
	assert.Equal(t, 1, res.Stats.TotalSteps)
}

func TestWalkBuildsStepWithTimeoutFromOptsDirectly(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  await step.withTimeout('charge', async () => {
    return deps.chargeCard()
  }, { ms: 5000 })
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 1)
	st, ok := res.Children[0].(*ir.Step)
	require.True(t, ok)
	require.NotNil(t, st.Timeout)
	ms, exists := (*st.Timeout)["ms"]
	require.True(t, exists)
	assert.Equal(t, ir.OptionNumber, ms.Kind)
	assert.Equal(t, float64(5000), ms.Num)
	assert.Nil(t, st.Retry)
}

func TestWalkBuildsStepTryWithErrorOption(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  await step.try('charge', async () => {
    return deps.chargeCard()
  }, { error: 'PaymentFailed' })
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 1)
	st, ok := res.Children[0].(*ir.Step)
	require.True(t, ok)
	assert.True(t, st.IsTryStep)
	assert.Equal(t, []string{"PaymentFailed"}, st.Errors)
}

func TestWalkBuildsStepParallelObjectLiteralForm(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  await step.parallel({
    charge: async () => { return deps.chargeCard() },
    notify: async () => { return deps.notifyUser() },
  })
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 1)
	p, ok := res.Children[0].(*ir.Parallel)
	require.True(t, ok)
	assert.True(t, p.NamedBranches)
	assert.Len(t, p.Children, 2)
	assert.Equal(t, 1, res.Stats.ParallelCount)
}

func TestWalkBuildsStepParallelNameAndObjectForm(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  await step.parallel('fanout', {
    charge: async () => { return deps.chargeCard() },
  })
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 1)
	p, ok := res.Children[0].(*ir.Parallel)
	require.True(t, ok)
	assert.Equal(t, "fanout", p.Name)
	assert.Len(t, p.Children, 1)
	assert.Equal(t, 1, res.Stats.ParallelCount)
}

func TestWalkBuildsStepParallelCompositionFormWithoutDoubleCounting(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  await step.parallel('fanout', () => allAsync([
    deps.chargeCard(),
    deps.notifyUser(),
  ]))
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 1)
	p, ok := res.Children[0].(*ir.Parallel)
	require.True(t, ok)
	assert.Equal(t, "fanout", p.Name)
	assert.Len(t, p.Children, 2)
	assert.Equal(t, 1, res.Stats.ParallelCount)
}

func TestWalkBuildsStepRace(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  await step.race({
    primary: async () => { return deps.fetchPrimary() },
    backup: async () => { return deps.fetchBackup() },
  })
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 1)
	r, ok := res.Children[0].(*ir.Race)
	require.True(t, ok)
	assert.True(t, r.NamedBranches)
	assert.Len(t, r.Children, 2)
	assert.Equal(t, 1, res.Stats.RaceCount)
}

func TestWalkBuildsSagaStepsAndExcludesThemFromTotalSteps(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  await step('charge', async () => { return deps.chargeCard() })

  await saga.step('reserveInventory', async () => {
    return deps.reserveInventory()
  }, { compensate: deps.releaseInventory })

  await saga.tryStep('notify', async () => {
    return deps.notifyUser()
  })
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 3)

	_, ok := res.Children[0].(*ir.Step)
	require.True(t, ok)

	saga1, ok := res.Children[1].(*ir.SagaStep)
	require.True(t, ok)
	assert.Equal(t, "reserveInventory", saga1.Name)
	assert.True(t, saga1.HasCompensation)
	assert.False(t, saga1.IsTryStep)

	saga2, ok := res.Children[2].(*ir.SagaStep)
	require.True(t, ok)
	assert.Equal(t, "notify", saga2.Name)
	assert.True(t, saga2.IsTryStep)

	assert.Equal(t, 1, res.Stats.TotalSteps)
	assert.Equal(t, len(ir.Steps(res.Children)), res.Stats.TotalSteps)
}

func TestWalkBuildsAllAsyncWithImplicitStepBranch(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  await allAsync([
    deps.chargeCard(),
    async () => { return deps.notifyUser() },
  ])
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 1)
	p, ok := res.Children[0].(*ir.Parallel)
	require.True(t, ok)
	assert.Equal(t, ir.ParallelAll, p.Mode)
	require.Len(t, p.Children, 2)

	implicit, ok := p.Children[0].(*ir.Step)
	require.True(t, ok)
	assert.Equal(t, ir.Dynamic, implicit.StepID)
	assert.Equal(t, "chargeCard", implicit.Name)
	assert.Equal(t, 1, res.Stats.ParallelCount)
}

func TestWalkBuildsAllSettledAsync(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  await allSettledAsync([
    deps.chargeCard(),
    deps.notifyUser(),
  ])
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 1)
	p, ok := res.Children[0].(*ir.Parallel)
	require.True(t, ok)
	assert.Equal(t, ir.ParallelAllSettled, p.Mode)
	assert.Len(t, p.Children, 2)
}

func TestWalkBuildsAnyAsync(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  await anyAsync([
    deps.fetchPrimary(),
    deps.fetchBackup(),
  ])
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 1)
	r, ok := res.Children[0].(*ir.Race)
	require.True(t, ok)
	assert.Len(t, r.Children, 2)
	assert.Equal(t, 1, res.Stats.RaceCount)
}

func TestWalkBuildsWhenHelper(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  await when(charge.ok, async () => {
    await step('ship', async () => { return deps.shipOrder() })
  })
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 1)
	c, ok := res.Children[0].(*ir.Conditional)
	require.True(t, ok)
	assert.Equal(t, ir.HelperWhen, c.Helper)
	assert.Equal(t, "charge.ok", c.Condition)
	assert.Len(t, c.Consequent, 1)
}

func TestWalkBuildsUnlessOrHelperWithDefaultValue(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  await unlessOr(charge.ok, async () => {
    await step('notify', async () => { return deps.notifyFailure() })
  }, 'skipped')
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 1)
	c, ok := res.Children[0].(*ir.Conditional)
	require.True(t, ok)
	assert.Equal(t, ir.HelperUnlessOr, c.Helper)
	require.NotNil(t, c.DefaultValue)
	assert.Equal(t, "skipped", c.DefaultValue.Str)
}

func TestWalkBuildsStepBranch(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  await step.branch('routeOrder', {
    conditionLabel: 'isPriority',
    condition: order.priority,
    then: async () => { return deps.expeditedShip() },
    else: async () => { return deps.standardShip() },
    thenErrors: ['ExpediteFailed'],
    out: 'shipResult',
  })
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 1)
	d, ok := res.Children[0].(*ir.Decision)
	require.True(t, ok)
	assert.Equal(t, "routeOrder", d.DecisionID)
	assert.Equal(t, "isPriority", d.ConditionLabel)
	require.Len(t, d.Consequent, 1)
	require.Len(t, d.Alternate, 1)

	thenStep, ok := d.Consequent[0].(*ir.Step)
	require.True(t, ok)
	assert.Equal(t, []string{"ExpediteFailed"}, thenStep.Errors)
	assert.Equal(t, "shipResult", thenStep.Out)

	elseStep, ok := d.Alternate[0].(*ir.Step)
	require.True(t, ok)
	assert.Equal(t, "shipResult", elseStep.Out)
}

func TestWalkBuildsClassicForLoop(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  for (let i = 0; i < 3; i++) {
    await step('retry', async () => { return deps.chargeCard() })
  }
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 1)
	l, ok := res.Children[0].(*ir.Loop)
	require.True(t, ok)
	assert.Equal(t, ir.LoopFor, l.LoopType)
	assert.False(t, l.BoundKnown)
	assert.Len(t, l.Body, 1)
	assert.Equal(t, 1, res.Stats.LoopCount)
}

func TestWalkBuildsForOfLoop(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  for (const item of order.items) {
    await step('charge', async () => { return deps.chargeCard() })
  }
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 1)
	l, ok := res.Children[0].(*ir.Loop)
	require.True(t, ok)
	assert.Equal(t, ir.LoopForOf, l.LoopType)
	assert.Equal(t, "order.items", l.IterSource)
}

func TestWalkBuildsForInLoop(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  for (const key in order.items) {
    await step('charge', async () => { return deps.chargeCard() })
  }
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 1)
	l, ok := res.Children[0].(*ir.Loop)
	require.True(t, ok)
	assert.Equal(t, ir.LoopForIn, l.LoopType)
}

func TestWalkBuildsWhileLoop(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  while (order.pending) {
    await step('charge', async () => { return deps.chargeCard() })
  }
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 1)
	l, ok := res.Children[0].(*ir.Loop)
	require.True(t, ok)
	assert.Equal(t, ir.LoopWhile, l.LoopType)
}

func TestWalkBuildsStepForEachWithBoundAndCollect(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  await step.forEach('chargeEach', order.items, {
    run: async (item) => { return deps.chargeCard() },
    maxIterations: 10,
    out: 'chargeResults',
    collect: 'array',
    stepIdPattern: 'chargeEach-{i}',
  })
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 1)
	l, ok := res.Children[0].(*ir.Loop)
	require.True(t, ok)
	assert.Equal(t, ir.LoopForEach, l.LoopType)
	assert.Equal(t, "order.items", l.IterSource)
	assert.True(t, l.BoundKnown)
	assert.Equal(t, 10, l.BoundCount)
	assert.Equal(t, 10, l.MaxIterations)
	assert.Equal(t, "chargeResults", l.Out)
	assert.Equal(t, ir.CollectArray, l.Collect)
	assert.Equal(t, "chargeEach-{i}", l.StepIdPattern)
	assert.Equal(t, 1, res.Stats.LoopCount)
}

func TestWalkBuildsStepForEachWithoutCollectDefaultsToNone(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  await step.forEach('chargeEach', order.items, {
    run: async (item) => { return deps.chargeCard() },
    out: 'chargeResults',
  })
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 1)
	l, ok := res.Children[0].(*ir.Loop)
	require.True(t, ok)
	assert.Equal(t, "chargeResults", l.Out)
	assert.Equal(t, ir.CollectNone, l.Collect)
	assert.False(t, l.BoundKnown)
}

func TestWalkBuildsSwitchStatement(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  switch (order.status) {
    case 'pending':
      await step('charge', async () => { return deps.chargeCard() })
      break
    case 'shipped':
      await step('notify', async () => { return deps.notifyUser() })
      break
    default:
      await step('archive', async () => { return deps.archiveOrder() })
  }
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 1)
	sw, ok := res.Children[0].(*ir.Switch)
	require.True(t, ok)
	assert.Equal(t, "order.status", sw.Expression)
	require.Len(t, sw.Cases, 3)
	assert.Equal(t, "'pending'", sw.Cases[0].Value)
	assert.False(t, sw.Cases[0].IsDefault)
	assert.Len(t, sw.Cases[0].Body, 1)
	assert.True(t, sw.Cases[2].IsDefault)
}

func TestWalkCountsUnknownForUnrecognizedDSLCall(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  step.bogus('charge', async () => { return deps.chargeCard() })
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 1)
	_, ok := res.Children[0].(*ir.Unknown)
	require.True(t, ok)
	assert.Equal(t, 1, res.Stats.UnknownCount)
}

func TestWalkCountsUnknownForUnrecognizedParallelBranch(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  await allAsync([
    'not-a-branch',
    deps.chargeCard(),
  ])
})
`)

	arena := ir.NewArena()
	res := Walk(arena, cb, nil, nil, "orderWorkflow")

	require.Len(t, res.Children, 1)
	p, ok := res.Children[0].(*ir.Parallel)
	require.True(t, ok)
	require.Len(t, p.Children, 2)
	_, ok = p.Children[0].(*ir.Unknown)
	require.True(t, ok)
	assert.Equal(t, 1, res.Stats.UnknownCount)
}

func TestWalkRecognizesWorkflowReference(t *testing.T) {
	cb := parseCallback(t, `
orderWorkflow(async (step, deps) => {
  await billingWorkflow(step, deps)
})
`)

	arena := ir.NewArena()
	known := map[string]bool{"billingWorkflow": true, "orderWorkflow": true}
	res := Walk(arena, cb, nil, known, "orderWorkflow")

	require.Len(t, res.Children, 1)
	ref, ok := res.Children[0].(*ir.WorkflowRef)
	require.True(t, ok)
	assert.Equal(t, "billingWorkflow", ref.WorkflowName)
	assert.True(t, ref.Resolved)
	assert.Equal(t, 1, res.Stats.WorkflowRefCount)
}
