package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArenaMintsSequentialIDs(t *testing.T) {
	a := NewArena()
	assert.Equal(t, NodeID(1), a.Next())
	assert.Equal(t, NodeID(2), a.Next())
	assert.Equal(t, NodeID(3), a.Next())
	assert.Equal(t, 3, a.Count())
}

func TestArenaReset(t *testing.T) {
	a := NewArena()
	a.Next()
	a.Next()
	a.Reset()
	assert.Equal(t, NodeID(1), a.Next())
	assert.Equal(t, 1, a.Count())
}

func TestArenaIsPerInstance(t *testing.T) {
	a1 := NewArena()
	a2 := NewArena()
	a1.Next()
	a1.Next()
	assert.Equal(t, NodeID(1), a2.Next())
}
