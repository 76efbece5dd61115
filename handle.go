package memstack

// DestructorFunc is a cleanup callback attached to a Handle. It is invoked
// exactly once, during the owning Stack's Teardown, with the handle itself
// as argument; the callback may still read the handle's Bytes and Size,
// since it runs before the backing memory is released.
type DestructorFunc func(*Handle)

// Handle tracks one allocation made through a Stack. It holds no memory
// itself: the payload lives in the stack's arena, and the handle records
// only where. Handles are produced by Stack.Track and become invalid when
// the owning stack is torn down; the zero value is not usable.
type Handle struct {
	stack *Stack
	block Block
	dtor  DestructorFunc
}

// Size returns the payload length in bytes, as requested at Track time.
func (h *Handle) Size() int {
	return h.block.Size
}

// Bytes returns the live payload. The slice is resolved through the owning
// arena on every call, so it is always correct even after the arena has
// grown and relocated its buffer; do not retain it across further Track
// calls. Valid for reads and writes until the owning stack's Teardown.
func (h *Handle) Bytes() []byte {
	h.stack.panicIfTornDown()
	return h.stack.arena.Bytes(h.block)
}

// SetDestructor installs fn as the handle's teardown callback, replacing
// any previously installed one (last write wins). A nil fn restores the
// default no-op.
func (h *Handle) SetDestructor(fn DestructorFunc) {
	h.dtor = fn
}
