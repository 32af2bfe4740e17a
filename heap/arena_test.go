package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArenaUsableByInit(t *testing.T) {
	arena := NewArena(8192)
	assert.Len(t, arena, 8192)

	h, err := Init(arena, nil, nil)
	require.NoError(t, err)
	assert.True(t, h.InvariantsHold())
}

func TestMinArenaSizeAccepted(t *testing.T) {
	_, err := Init(NewArena(int(MinArenaSize())), nil, nil)
	assert.NoError(t, err)
}
