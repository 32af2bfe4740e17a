package heap

import "unsafe"

// fragment is the header every fragment of the arena carries at its own
// address. The first four fields (the physical-list header) occupy exactly
// Alignment bytes on both 32- and 64-bit builds, so the payload handed to the
// caller begins at exactly fragmentAddr+Alignment; prevFree/nextFree reuse
// that same payload region and are only meaningful while the fragment is
// free.
type fragment struct {
	prevPhys unsafe.Pointer // *fragment, nil at the arena's low edge
	nextPhys unsafe.Pointer // *fragment, nil at the arena's high edge
	size     uintptr        // including this header, always a multiple of MinFragmentSize
	used     bool

	prevFree unsafe.Pointer // *fragment, valid only while free
	nextFree unsafe.Pointer // *fragment, valid only while free
}

func (f *fragment) physPrev() *fragment { return (*fragment)(f.prevPhys) }
func (f *fragment) physNext() *fragment { return (*fragment)(f.nextPhys) }
func (f *fragment) freePrev() *fragment { return (*fragment)(f.prevFree) }
func (f *fragment) freeNext() *fragment { return (*fragment)(f.nextFree) }

func (f *fragment) setPhysPrev(p *fragment) { f.prevPhys = unsafe.Pointer(p) }
func (f *fragment) setPhysNext(p *fragment) { f.nextPhys = unsafe.Pointer(p) }
func (f *fragment) setFreePrev(p *fragment) { f.prevFree = unsafe.Pointer(p) }
func (f *fragment) setFreeNext(p *fragment) { f.nextFree = unsafe.Pointer(p) }

// interlink splices left and right together as physical neighbors. Either
// side may be nil, meaning "arena edge".
func interlink(left, right *fragment) {
	if left != nil {
		left.setPhysNext(right)
	}
	if right != nil {
		right.setPhysPrev(left)
	}
}

// payload returns the address handed to the caller for fragment f.
func (f *fragment) payload() unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(f), Alignment)
}

// fragmentFromPayload recovers the fragment header from a payload address
// previously returned by payload().
func fragmentFromPayload(p unsafe.Pointer) *fragment {
	return (*fragment)(unsafe.Add(p, -int(Alignment)))
}
