package heap

import (
	"fmt"
	"unsafe"
)

// Init prepares arena for use as the backing memory of a new allocator
// instance and returns a handle to it. arena is never read by Init beyond
// its address and length; it does not need to be zeroed, and Init makes no
// copy of it.
//
// enter and leave are the critical-section hooks invoked by every
// subsequent Allocate and Free on the returned Instance: enter immediately
// before the call touches Instance state, leave immediately after. Either
// may be nil, meaning "do nothing" (appropriate when the caller already
// guarantees serialized access).
//
// Init fails if arena is shorter than MinArenaSize(), whatever its actual
// alignment; that length is enough to host a single MinFragmentSize
// fragment after the worst-case alignment padding.
func Init(arena []byte, enter, leave Hook) (*Instance, error) {
	if len(arena) == 0 {
		return nil, fmt.Errorf("heap: arena must not be empty")
	}
	if uintptr(len(arena)) < MinArenaSize() {
		return nil, fmt.Errorf("heap: arena of %d bytes is smaller than the minimum of %d", len(arena), MinArenaSize())
	}

	base := unsafe.Pointer(&arena[0])

	// Walk forward to the first Alignment-aligned address within the
	// arena; the caller's slice is not guaranteed to start on an
	// Alignment boundary even though Go guarantees word alignment.
	misalignment := uintptr(base) % Alignment
	var padding uintptr
	if misalignment != 0 {
		padding = Alignment - misalignment
	}
	if padding >= uintptr(len(arena)) {
		return nil, fmt.Errorf("heap: arena of %d bytes leaves no room after alignment padding", len(arena))
	}

	alignedBase := unsafe.Add(base, padding)
	available := uintptr(len(arena)) - padding

	// Round the usable capacity down to a whole number of
	// MinFragmentSize units, and clamp it to the largest size a single
	// fragment header can ever claim to be.
	capacity := available &^ (MinFragmentSize - 1)
	if capacity > MaxFragmentSize {
		capacity = MaxFragmentSize
	}
	if capacity < MinFragmentSize {
		return nil, fmt.Errorf("heap: arena of %d bytes yields only %d usable bytes, need at least %d", len(arena), capacity, uintptr(MinFragmentSize))
	}

	if enter == nil {
		enter = func() {}
	}
	if leave == nil {
		leave = func() {}
	}

	h := &Instance{
		arenaBase:  alignedBase,
		arenaLimit: unsafe.Add(alignedBase, capacity),
		enter:      enter,
		leave:      leave,
		diagnostics: Diagnostics{
			Capacity: capacity,
		},
	}

	root := (*fragment)(alignedBase)
	*root = fragment{size: capacity}
	h.binInsert(root)

	return h, nil
}
