package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAdapterSetGetHas(t *testing.T) {
	a := NewMemoryAdapter()
	ctx := context.Background()

	ok, err := a.Has(ctx, "orderWorkflow")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, a.Set(ctx, "orderWorkflow", json.RawMessage(`{"workflowName":"orderWorkflow"}`)))

	ok, err = a.Has(ctx, "orderWorkflow")
	require.NoError(t, err)
	assert.True(t, ok)

	data, ok, err := a.Get(ctx, "orderWorkflow")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"workflowName":"orderWorkflow"}`, string(data))
}

func TestMemoryAdapterGetMissingKey(t *testing.T) {
	a := NewMemoryAdapter()
	data, ok, err := a.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestMemoryAdapterKeys(t *testing.T) {
	a := NewMemoryAdapter()
	ctx := context.Background()
	require.NoError(t, a.Set(ctx, "a", json.RawMessage(`1`)))
	require.NoError(t, a.Set(ctx, "b", json.RawMessage(`2`)))

	keys, err := a.Keys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, keys)
}

var _ Adapter = (*MemoryAdapter)(nil)
var _ Adapter = (*FileAdapter)(nil)
