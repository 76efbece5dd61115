// Package memstack provides batch-lifetime memory management: a contiguous
// bump-pointer arena plus a tracked-allocation stack that frees many
// short-lived allocations together, running per-allocation cleanup hooks
// first.
//
// # Overview
//
// A bump arena carves blocks by advancing a used-size cursor through one
// buffer; blocks are never freed individually, only all at once. The Stack
// builds on that: every allocation made through it is copied into the
// arena and recorded as a Handle, and a single Teardown call runs each
// handle's optional destructor (in registration order) before releasing
// the whole arena. This is useful for:
//
//   - Phase- or batch-scoped allocations with coordinated cleanup
//   - Attaching cleanup hooks (close a file, release a token) to the
//     allocation they belong to
//   - Reducing garbage collection pressure for many small payloads
//
// # Basic Usage
//
//	st, err := memstack.NewStack(4096)
//	if err != nil {
//		return err
//	}
//	defer st.Teardown() // runs destructors, then releases everything
//
//	h, err := st.Track([]byte("payload"))
//	if err != nil {
//		return err
//	}
//	h.SetDestructor(func(h *memstack.Handle) {
//		// runs once during Teardown, before memory is released
//	})
//	use(h.Bytes())
//
// # Memory Layout
//
// A Stack owns one Arena (a single contiguous buffer) and an ordered
// record of handles. Payloads are packed back to back with no alignment
// padding. When a payload does not fit, the arena is grown by twice the
// payload size (at least 1 KiB); growth relocates the buffer, but handles
// and Blocks address it by offset and resolve through the arena on each
// access, so they never dangle.
//
// # Error Handling
//
// Fallible operations return sentinel errors (ErrArenaFull, ErrZeroAlloc,
// ErrNilPayload, ...) and leave the arena observably unchanged on failure.
// Using an arena after Release, or a stack after Teardown, is a
// programming error and panics.
//
// # Important Notes
//
//   - Handles and their bytes are valid only until the owning stack's
//     Teardown; Teardown is permitted exactly once
//   - No individual deallocation: the used cursor only moves forward
//   - Slices returned by Bytes refer to the current buffer and must be
//     re-acquired after any growth
//   - Nothing in this package is goroutine-safe; callers sharing a stack
//     or arena must synchronize externally
//
// # Metrics and Monitoring
//
// Both types expose snapshot statistics:
//
//	m := st.Metrics()
//	fmt.Printf("tracked: %d\n", m.Tracked)
//	fmt.Printf("bytes in use: %d of %d\n", m.Arena.Used, m.Arena.Capacity)
package memstack
