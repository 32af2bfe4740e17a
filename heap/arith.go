package heap

import (
	"math/bits"
	"unsafe"
)

// WordSize is the width of a machine word on the build target, matching the
// original's use of size_t throughout the size arithmetic.
const WordSize = unsafe.Sizeof(uintptr(0))

// isPowerOfTwo treats zero as a power of two, matching the original's own
// self-test (isPowerOf2(0) is true).
func isPowerOfTwo(x uintptr) bool {
	return x&(x-1) == 0
}

// log2Floor returns floor(log2(x)) for x > 1, and 0 for x in {0, 1}. The
// original computes this with a manual shift loop; bits.Len is the same idea
// expressed with the intrinsic the standard library already provides for it.
func log2Floor(x uintptr) uintptr {
	if x <= 1 {
		return 0
	}
	return uintptr(bits.Len(uint(x))) - 1
}

// log2Ceil returns ceil(log2(x)) for x > 0.
func log2Ceil(x uintptr) uintptr {
	if x <= 1 {
		return 0
	}
	return uintptr(bits.Len(uint(x - 1)))
}

// pow2 returns 2**power.
func pow2(power uintptr) uintptr {
	return uintptr(1) << power
}
