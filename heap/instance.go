// Package heap implements a constant-time, bounded-fragmentation memory
// allocator over a single arena supplied by the caller. There is no global
// state: every operation goes through an *Instance returned by Init, and the
// only concurrency primitive is the pair of critical-section hooks the
// caller supplies to that Init call.
package heap

import "unsafe"

const (
	// Alignment is the required alignment of every fragment and of every
	// payload address handed back by Allocate.
	Alignment = 4 * WordSize

	// MinFragmentSize is the smallest unit the arena is ever cut into.
	MinFragmentSize = 2 * Alignment

	// MaxFragmentSize is the largest size a single fragment can claim to be.
	MaxFragmentSize = (^uintptr(0) >> 1) + 1

	// NumBins is the number of size-class bins, one per bit of a uintptr.
	NumBins = WordSize * 8
)

// Hook is a critical-section callback. Enter is invoked before an Instance
// touches its internal state and Leave after, so that a caller sharing one
// Instance across execution contexts (threads, interrupts, ISRs) can take
// and release a lock, mask interrupts, or do nothing at all. The allocator
// itself holds no lock and has no other notion of concurrency.
type Hook func()

// Diagnostics is a point-in-time snapshot of an Instance's bookkeeping
// counters. It is always computed in O(1); nothing here is scanned from the
// arena.
type Diagnostics struct {
	// Capacity is the number of arena bytes the Instance manages: the arena
	// length minus Init's alignment padding, rounded down to a multiple of
	// MinFragmentSize and clamped to MaxFragmentSize. Fragment headers are
	// carved out of this space.
	Capacity uintptr

	// Allocated is the sum of the sizes of fragments currently in use,
	// header included.
	Allocated uintptr

	// PeakAllocated is the largest Allocated has ever been.
	PeakAllocated uintptr

	// PeakRequestSize is the largest amount ever passed to Allocate,
	// whether or not that call succeeded.
	PeakRequestSize uintptr

	// OOMCount counts Allocate calls that returned nil for lack of a
	// suitably large fragment.
	OOMCount uint64
}

// Instance is one independent allocator over one arena. Its zero value is
// not usable; construct one with Init.
type Instance struct {
	bins         [NumBins]unsafe.Pointer // *fragment, head of each bin's free list
	nonemptyMask uintptr                 // bit i set iff bins[i] != nil

	arenaBase  unsafe.Pointer // lowest valid fragment address
	arenaLimit unsafe.Pointer // one past the highest valid byte

	enter, leave Hook

	diagnostics Diagnostics

	trace *Ring
}

// MaxAllocationSize returns the largest amount that Allocate could possibly
// satisfy given the Instance's current capacity, regardless of
// fragmentation. It is a cheap upper bound a caller can consult before
// attempting an expensive request, not a guarantee that an allocation of
// this size will succeed.
func (h *Instance) MaxAllocationSize() uintptr {
	capacity := h.diagnostics.Capacity
	if capacity < MinFragmentSize {
		return 0
	}
	fragSize := pow2(log2Floor(capacity))
	if fragSize > MaxFragmentSize {
		fragSize = MaxFragmentSize
	}
	return fragSize - Alignment
}

// GetDiagnostics returns the current bookkeeping snapshot. Like Allocate and
// Free, it invokes enter once and leave once around the read, so a caller
// sharing one Instance across execution contexts sees a consistent snapshot.
func (h *Instance) GetDiagnostics() Diagnostics {
	h.enter()
	d := h.diagnostics
	h.leave()
	return d
}

// MinArenaSize is the smallest arena Init will accept: room for exactly one
// MinFragmentSize fragment after alignment is accounted for.
func MinArenaSize() uintptr {
	return MinFragmentSize + Alignment - 1
}

// AttachTrace enables event tracing: the Instance will push an Event onto
// ring, inside the critical section, for every Allocate with a nonzero amount
// and every Free of a block with nonzero capacity (Allocate(0) and Free of a
// nil or zero-capacity slice record nothing), overwriting the oldest entry
// once ring is full. Passing nil disables tracing again. Tracing is off by
// default; a hard-real-time caller with no interest in it pays nothing for
// it.
func (h *Instance) AttachTrace(ring *Ring) {
	h.trace = ring
}
