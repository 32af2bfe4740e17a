package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRejectsUndersizedArena(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"empty", 0, true},
		{"too_small", int(MinArenaSize()) - 1, true},
		{"minimum", int(MinArenaSize()), false},
		{"generous", 4096, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Init(make([]byte, tt.size), nil, nil)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInitSeedsRootFragment(t *testing.T) {
	h, err := Init(make([]byte, 4096), nil, nil)
	require.NoError(t, err)

	d := h.GetDiagnostics()
	assert.Equal(t, uintptr(0), d.Allocated)
	assert.Equal(t, uintptr(0), d.PeakAllocated)
	assert.Equal(t, uint64(0), d.OOMCount)
	assert.True(t, d.Capacity > 0)
	assert.True(t, h.InvariantsHold())
	assert.NotEqual(t, uintptr(0), h.nonemptyMask, "expected at least one non-empty bin after Init")
}

func TestInitHooksDefaultToNoOps(t *testing.T) {
	h, err := Init(make([]byte, 4096), nil, nil)
	require.NoError(t, err)
	b := h.Allocate(64)
	require.NotNil(t, b)
	h.Free(b)
}

func TestInitInvokesHooks(t *testing.T) {
	var entered, left int
	h, err := Init(make([]byte, 4096), func() { entered++ }, func() { left++ })
	require.NoError(t, err)

	h.Allocate(64)
	assert.Equal(t, 1, entered)
	assert.Equal(t, 1, left)
}
