package heap

import "unsafe"

// Free releases a slice previously returned by Allocate on the same
// Instance. Freeing nil, or any slice with zero capacity, is a no-op; a
// zero-length slice that still has the block's capacity is freed.
//
// Free panics if block was not returned by Allocate on this Instance, or if
// it has already been freed: these are programmer errors, not capacity
// conditions, and the original's AssertionViolation is this package's
// panic. Free runs in O(1): coalescing only ever touches block's two
// immediate physical neighbors, never walks the free lists.
func (h *Instance) Free(block []byte) {
	if cap(block) == 0 {
		return
	}

	// Recover the fragment header from the slice's data pointer, the way
	// Allocate derived the slice from it in the first place.
	dataPtr := *(*uintptr)(unsafe.Pointer(&block))
	f := fragmentFromPayload(unsafe.Pointer(dataPtr))

	if !h.owns(unsafe.Pointer(f)) {
		panic("heap: pointer not owned by this arena")
	}

	h.enter()

	if !f.used {
		h.leave()
		panic("heap: double free or invalid pointer")
	}
	if uintptr(cap(block)) != f.size-Alignment {
		h.leave()
		panic("heap: corrupted fragment size")
	}

	freedSize := f.size

	prev := f.physPrev()
	next := f.physNext()
	joinLeft := prev != nil && !prev.used
	joinRight := next != nil && !next.used

	var merged *fragment
	switch {
	case joinLeft && joinRight:
		h.binRemove(prev)
		h.binRemove(next)
		prev.size += f.size + next.size
		interlink(prev, next.physNext())
		merged = prev
	case joinLeft:
		h.binRemove(prev)
		prev.size += f.size
		interlink(prev, next)
		merged = prev
	case joinRight:
		h.binRemove(next)
		f.size += next.size
		interlink(f, next.physNext())
		merged = f
	default:
		merged = f
	}

	merged.used = false
	h.binInsert(merged)

	h.diagnostics.Allocated -= freedSize

	if h.trace != nil {
		h.trace.push(Event{Kind: EventFree, Amount: freedSize - Alignment, Ok: true})
	}

	h.leave()
}
