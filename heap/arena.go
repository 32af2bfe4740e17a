package heap

import "github.com/bytedance/gopkg/lang/dirtmake"

// NewArena allocates a size-byte slice suitable for passing to Init. It is
// a convenience only: Init accepts any []byte of sufficient length,
// wherever it came from (a static buffer, a memory-mapped region, a slice
// carved out of a bigger allocation). The bytes returned here are
// deliberately not zeroed — Init never relies on zeroed memory, and an
// allocator whose whole purpose is avoiding unnecessary work shouldn't pay
// for zeroing the caller will overwrite anyway.
func NewArena(size int) []byte {
	return dirtmake.Bytes(size, size)
}
