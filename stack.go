package memstack

// minGrowth is the smallest number of bytes added to a stack's arena when
// an incoming payload does not fit (1 KiB).
const minGrowth = 1024

// Stack is a tracked-allocation stack: one arena for payload bytes plus an
// ordered record of every allocation made through it. All tracked
// allocations share the stack's lifetime and are released together by
// Teardown, which first runs each handle's destructor in registration
// order. Not goroutine-safe; callers sharing a stack must synchronize
// externally.
type Stack struct {
	arena   *Arena
	handles []*Handle
}

// NewStack creates a Stack whose arena is seeded with capacity bytes. The
// handle record and the arena grow independently on demand: the number of
// tracked allocations is never capped by the byte capacity. Returns
// ErrInvalidCapacity if capacity <= 0; nothing is retained on failure.
func NewStack(capacity int) (*Stack, error) {
	arena, err := NewArena(capacity)
	if err != nil {
		return nil, err
	}
	return &Stack{arena: arena}, nil
}

// Track copies data into the stack's arena and records a handle for it.
// The handle's bytes remain valid for reads and writes until Teardown.
// If the arena cannot fit the payload it is grown first, by twice the
// payload size and at least minGrowth bytes. A nil payload returns
// ErrNilPayload and a zero-length one ErrZeroAlloc; neither consumes any
// arena bytes.
func (s *Stack) Track(data []byte) (*Handle, error) {
	s.panicIfTornDown()
	if data == nil {
		return nil, ErrNilPayload
	}
	n := len(data)
	if n == 0 {
		return nil, ErrZeroAlloc
	}
	if s.arena.Remaining() < n {
		extra := 2 * n
		if extra < minGrowth {
			extra = minGrowth
		}
		if err := s.arena.Grow(extra); err != nil {
			return nil, err
		}
	}
	block, err := s.arena.Alloc(n)
	if err != nil {
		return nil, err
	}
	copy(s.arena.Bytes(block), data)
	h := &Handle{stack: s, block: block}
	s.handles = append(s.handles, h)
	return h, nil
}

// Len returns the number of allocations tracked so far, or 0 after
// Teardown.
func (s *Stack) Len() int {
	return len(s.handles)
}

// Teardown runs every registered destructor exactly once, in ascending
// registration order (not reverse), then releases the arena and the handle
// record. The order is a deliberate simplification: destructors must not
// depend on later-registered handles having already been cleaned up.
// Teardown may be called exactly once; any operation on the stack
// afterwards panics.
func (s *Stack) Teardown() {
	s.panicIfTornDown()
	for _, h := range s.handles {
		if h.dtor != nil {
			h.dtor(h)
		}
	}
	s.arena.Release()
	s.arena = nil
	s.handles = nil
}

// panicIfTornDown panics if the stack has been torn down.
func (s *Stack) panicIfTornDown() {
	if s.arena == nil {
		panic("memstack: use after Teardown()")
	}
}
