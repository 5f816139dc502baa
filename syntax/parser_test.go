package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProgramFindsTopLevelStatements(t *testing.T) {
	src := []byte(`
const orderWorkflow = createWorkflow('orderWorkflow', { chargeCard: deps.chargeCard })

orderWorkflow(async (step, deps) => {
  await step('charge', async () => {
    return deps.chargeCard()
  })
})
`)
	tree, err := Parse(src, "order.ts")
	require.NoError(t, err)
	require.NotNil(t, tree.Root)
	assert.Equal(t, KindProgram, tree.Root.Kind)
	assert.Len(t, tree.Root.Statements(), 2)
}

func TestParseCallExpressionExposesCalleeAndArguments(t *testing.T) {
	src := []byte(`createWorkflow('orderWorkflow', {})`)
	tree, err := Parse(src, "order.ts")
	require.NoError(t, err)

	stmt := tree.Root.Statements()[0]
	call := stmt.Children()[0]
	require.Equal(t, KindCallExpression, call.Kind)

	callee := call.Function()
	require.NotNil(t, callee)
	assert.Equal(t, "createWorkflow", callee.Text())
	assert.Len(t, call.Arguments(), 2)
}

func TestParseIfStatementExposesConditionAndBranches(t *testing.T) {
	src := []byte(`
if (charge.ok) {
  ship()
} else {
  notify()
}
`)
	tree, err := Parse(src, "order.ts")
	require.NoError(t, err)

	stmt := tree.Root.Statements()[0]
	require.Equal(t, KindIfStatement, stmt.Kind)
	assert.NotNil(t, stmt.Condition())
	assert.NotNil(t, stmt.Consequence())
	assert.NotNil(t, stmt.Alternative())
}

func TestParseNoSubTemplateStringIsStringValue(t *testing.T) {
	src := []byte("const x = `charge`")
	tree, err := Parse(src, "order.ts")
	require.NoError(t, err)

	decl := tree.Root.Statements()[0]
	declarator := decl.Children()[0]
	value := declarator.Value()
	require.NotNil(t, value)
	v, ok := value.StringValue()
	assert.True(t, ok)
	assert.Equal(t, "charge", v)
}

func TestParseUnclosedObjectLiteralReturnsParseError(t *testing.T) {
	src := []byte(`const x = { a: 1`)
	_, err := Parse(src, "bad.ts")
	require.Error(t, err)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "bad.ts", pe.Path)
}
