package heap

import "unsafe"

// binIndex returns the index of the free-list bin for a fragment of size
// bytes: floor(log2(size/MinFragmentSize)), so bin i holds sizes in
// [MinFragmentSize<<i, MinFragmentSize<<(i+1)). size need not be a power of
// two; free fragments are only multiples of MinFragmentSize.
func binIndex(size uintptr) uintptr {
	return log2Floor(size / MinFragmentSize)
}

// binHead returns the current head of bin i, or nil if it is empty.
func (h *Instance) binHead(i uintptr) *fragment {
	return (*fragment)(h.bins[i])
}

// binInsert pushes f onto the front of its size-class free list in O(1).
// f.size must already be set.
func (h *Instance) binInsert(f *fragment) {
	i := binIndex(f.size)
	head := h.binHead(i)

	f.setFreePrev(nil)
	f.setFreeNext(head)
	if head != nil {
		head.setFreePrev(f)
	}
	h.bins[i] = unsafe.Pointer(f)
	h.nonemptyMask |= pow2(i)
}

// binRemove splices f out of its free list in O(1). f must currently be a
// member of the bin binIndex(f.size) computes.
func (h *Instance) binRemove(f *fragment) {
	i := binIndex(f.size)
	prev, next := f.freePrev(), f.freeNext()

	if prev != nil {
		prev.setFreeNext(next)
	} else {
		h.bins[i] = unsafe.Pointer(next)
	}
	if next != nil {
		next.setFreePrev(prev)
	}
	if h.bins[i] == nil {
		h.nonemptyMask &^= pow2(i)
	}

	f.setFreePrev(nil)
	f.setFreeNext(nil)
}
