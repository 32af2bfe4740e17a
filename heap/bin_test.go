package heap

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinIndex(t *testing.T) {
	tests := []struct {
		size uintptr
		want uintptr
	}{
		{MinFragmentSize * 1, 0},
		{MinFragmentSize * 2, 1},
		{MinFragmentSize * 3, 1},
		{MinFragmentSize * 4, 2},
		{MinFragmentSize * 8, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, binIndex(tt.size), "size=%d", tt.size)
	}
}

func newTestInstance(t *testing.T, arenaSize int) *Instance {
	t.Helper()
	h, err := Init(make([]byte, arenaSize), nil, nil)
	require.NoError(t, err)
	return h
}

func TestBinInsertRemoveRoundTrip(t *testing.T) {
	h := newTestInstance(t, 4096)

	// Pull the root fragment out from wherever Init put it, by scanning
	// every bin; exactly one must be non-empty right after Init.
	var root *fragment
	for i := uintptr(0); i < NumBins; i++ {
		if head := h.binHead(i); head != nil {
			root = head
			break
		}
	}
	require.NotNil(t, root)

	size := root.size
	idx := binIndex(size)
	assert.Equal(t, unsafe.Pointer(root), h.bins[idx])
	assert.NotEqual(t, uintptr(0), h.nonemptyMask&pow2(idx))

	h.binRemove(root)
	assert.Nil(t, h.bins[idx])
	assert.Equal(t, uintptr(0), h.nonemptyMask&pow2(idx))

	h.binInsert(root)
	assert.Equal(t, unsafe.Pointer(root), h.bins[idx])
	assert.NotEqual(t, uintptr(0), h.nonemptyMask&pow2(idx))
}
