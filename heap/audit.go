package heap

import "unsafe"

// InvariantsHold performs a weak but fast sanity check on h. It only ever
// inspects the bin array and the Diagnostics counters — both fixed-size,
// independent of how much of the arena is in use — so it runs in the same
// O(1) bound as Allocate and Free, not a full walk of every fragment.
//
// A false result means the Instance's bookkeeping has diverged from a
// consistent state, typically because something outside this package wrote
// into the arena. A true result is not a guarantee of full correctness, only
// that this cheap check found nothing wrong.
func (h *Instance) InvariantsHold() bool {
	d := h.diagnostics
	if d.Allocated > d.Capacity || d.PeakAllocated > d.Capacity || d.PeakAllocated < d.Allocated {
		return false
	}
	if uintptr(h.arenaLimit)-uintptr(h.arenaBase) != d.Capacity {
		return false
	}

	for i := uintptr(0); i < NumBins; i++ {
		head := h.binHead(i)
		bitSet := h.nonemptyMask&pow2(i) != 0
		if (head != nil) != bitSet {
			return false
		}
		if head == nil {
			continue
		}
		if head.used || head.freePrev() != nil {
			return false
		}
		if head.size < MinFragmentSize || head.size%MinFragmentSize != 0 {
			return false
		}
		if binIndex(head.size) != i {
			return false
		}
		if !h.owns(unsafe.Pointer(head)) {
			return false
		}
	}
	return true
}

// Audit reports whether block looks like a live allocation currently owned
// by h: a heuristic, constant-time check in the same spirit as the
// original's inline pointer-validity guard, not a guarantee against
// corruption originating outside the arena. A nil block, or any block with
// zero capacity, is trivially valid and reports true — there is nothing to
// own.
func (h *Instance) Audit(block []byte) bool {
	if cap(block) == 0 {
		return true
	}
	dataPtr := *(*uintptr)(unsafe.Pointer(&block))
	if dataPtr%Alignment != 0 {
		return false
	}
	f := fragmentFromPayload(unsafe.Pointer(dataPtr))
	if !h.owns(unsafe.Pointer(f)) {
		return false
	}
	if !f.used || uintptr(cap(block)) != f.size-Alignment {
		return false
	}

	prev, next := f.physPrev(), f.physNext()
	if prev != nil && prev.physNext() != f {
		return false
	}
	if next != nil && next.physPrev() != f {
		return false
	}
	return true
}

// owns reports whether p is an Alignment-aligned address within h's arena.
func (h *Instance) owns(p unsafe.Pointer) bool {
	if uintptr(p)%Alignment != 0 {
		return false
	}
	return uintptr(p) >= uintptr(h.arenaBase) && uintptr(p) < uintptr(h.arenaLimit)
}
