package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		x    uintptr
		want bool
	}{
		{0, true},
		{1, true},
		{2, true},
		{3, false},
		{4, true},
		{6, false},
		{1024, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isPowerOfTwo(tt.x), "x=%d", tt.x)
	}
}

func TestLog2Floor(t *testing.T) {
	tests := []struct{ x, want uintptr }{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 1},
		{4, 2},
		{30, 4},
		{60, 5},
		{64, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, log2Floor(tt.x), "x=%d", tt.x)
	}
}

func TestLog2Ceil(t *testing.T) {
	tests := []struct{ x, want uintptr }{
		{1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{30, 5},
		{60, 6},
		{64, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, log2Ceil(tt.x), "x=%d", tt.x)
	}
}

func TestPow2(t *testing.T) {
	for p := uintptr(0); p < 10; p++ {
		assert.Equal(t, uintptr(1)<<p, pow2(p))
	}
}
