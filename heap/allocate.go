package heap

import "unsafe"

// Allocate returns a slice of at least amount bytes, or nil if the Instance
// has no fragment large enough to satisfy the request (including the
// trivial case amount == 0, which always returns nil without touching
// Instance state).
//
// The returned slice's capacity may exceed amount: fragments only come in
// power-of-two sizes, so a request is always rounded up. Allocate runs in
// O(1): it never walks the free lists or the physical list, only the
// NumBins-wide bin mask.
func (h *Instance) Allocate(amount uintptr) []byte {
	if amount == 0 {
		return nil
	}

	// overflowed is set when amount is too large to even form a valid
	// block size (e.g. amount near the uintptr maximum); such a request
	// is unsatisfiable by definition and falls straight into the OOM
	// accounting path below rather than overflowing the arithmetic.
	overflowed := amount > MaxFragmentSize-Alignment

	var blockSize, candidateMask uintptr
	if !overflowed {
		// Round the request (header included) up to a power of two. Per
		// Herter's bound on external fragmentation, this is what keeps the
		// allocator's worst case bounded in exchange for some wasted space.
		blockSize = pow2(log2Ceil(amount + Alignment))
		if !isPowerOfTwo(blockSize) {
			panic("heap: rounded block size is not a power of two")
		}
		candidateMask = ^(pow2(binIndex(blockSize)) - 1)
	}

	h.enter()

	var smallestBinMask uintptr
	if !overflowed {
		suitable := h.nonemptyMask & candidateMask
		smallestBinMask = suitable & -suitable // isolate the lowest set bit
	}

	var out []byte
	ok := smallestBinMask != 0
	if ok {
		idx := log2Floor(smallestBinMask)
		blk := h.binHead(idx)
		h.binRemove(blk)

		leftover := blk.size - blockSize
		if leftover >= MinFragmentSize {
			tail := (*fragment)(unsafe.Add(unsafe.Pointer(blk), blockSize))
			next := blk.physNext()
			*tail = fragment{size: leftover}
			interlink(blk, tail)
			interlink(tail, next)
			h.binInsert(tail)
			blk.size = blockSize
		}

		blk.used = true
		blk.setFreePrev(nil)
		blk.setFreeNext(nil) // redundant, but guards against a corrupted carry-over value

		full := unsafe.Slice((*byte)(blk.payload()), blk.size-Alignment)
		out = full[:amount]

		h.diagnostics.Allocated += blk.size
		if h.diagnostics.Allocated > h.diagnostics.PeakAllocated {
			h.diagnostics.PeakAllocated = h.diagnostics.Allocated
		}
	} else {
		h.diagnostics.OOMCount++
	}

	if amount > h.diagnostics.PeakRequestSize {
		h.diagnostics.PeakRequestSize = amount
	}

	if h.trace != nil {
		h.trace.push(Event{Kind: EventAllocate, Amount: amount, Ok: ok})
	}

	h.leave()

	return out
}
