// Package memstack implements a bump-pointer arena and a tracked-allocation
// stack for batch-lifetime memory management. Typical usage: create one Stack
// per batch of work, track many short-lived allocations on it, then
// Teardown() at the end to run per-allocation cleanup hooks and release
// everything at once.
package memstack

import "errors"

// Sentinel errors returned by fallible arena and stack operations.
var (
	// ErrInvalidCapacity is returned by constructors given a non-positive
	// capacity.
	ErrInvalidCapacity = errors.New("memstack: capacity must be positive")

	// ErrZeroAlloc is returned when an allocation of zero (or negative)
	// size is requested.
	ErrZeroAlloc = errors.New("memstack: zero-size allocation")

	// ErrArenaFull is returned by Alloc when the request exceeds the
	// arena's remaining capacity.
	ErrArenaFull = errors.New("memstack: arena capacity exhausted")

	// ErrInvalidGrow is returned by Grow given a non-positive amount.
	ErrInvalidGrow = errors.New("memstack: growth amount must be positive")

	// ErrNilPayload is returned by Stack.Track given a nil payload.
	ErrNilPayload = errors.New("memstack: nil payload")
)

// Block describes one carved region of an Arena. It records an offset
// rather than a pointer, so it stays valid even when growth relocates the
// arena's backing buffer; resolve it to live bytes with Arena.Bytes.
type Block struct {
	Offset int // start of the region within the arena
	Size   int // length of the region in bytes
}

// Arena is a contiguous bump allocator. Blocks are carved sequentially by
// advancing a used-size cursor and are never individually reclaimed; the
// whole buffer is released at once. Not goroutine-safe: callers sharing an
// arena must synchronize externally.
type Arena struct {
	used    int
	block   []byte
	growths int
}

// NewArena creates an Arena backed by a capacity-byte buffer.
// Returns ErrInvalidCapacity if capacity <= 0.
func NewArena(capacity int) (*Arena, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Arena{block: make([]byte, capacity)}, nil
}

// Alloc carves an n-byte block at the current used offset and advances the
// cursor. No alignment adjustment is performed. Alloc never grows the
// arena: when n exceeds the remaining capacity it returns ErrArenaFull and
// leaves the arena unchanged, and the caller decides whether to Grow and
// retry.
func (a *Arena) Alloc(n int) (Block, error) {
	a.panicIfReleased()
	if n <= 0 {
		return Block{}, ErrZeroAlloc
	}
	if a.used+n > len(a.block) {
		return Block{}, ErrArenaFull
	}
	b := Block{Offset: a.used, Size: n}
	a.used += n
	return b, nil
}

// Grow resizes the backing buffer so that at least extra more bytes can be
// carved. Capacity increases by exactly extra; the used cursor and
// all previously carved bytes are unchanged. Previously issued Blocks stay
// valid because they are offset-based, but any []byte obtained from Bytes
// before the call may refer to the old buffer and must be re-resolved.
// Returns ErrInvalidGrow, with the arena untouched, if extra <= 0.
func (a *Arena) Grow(extra int) error {
	a.panicIfReleased()
	if extra <= 0 {
		return ErrInvalidGrow
	}
	block := make([]byte, len(a.block)+extra)
	copy(block, a.block[:a.used])
	a.block = block
	a.growths++
	return nil
}

// Bytes resolves a Block to its live bytes in the current buffer. The
// returned slice is capped to the block, so writes cannot spill into
// neighboring blocks. It must be re-resolved after any Grow.
func (a *Arena) Bytes(b Block) []byte {
	a.panicIfReleased()
	return a.block[b.Offset : b.Offset+b.Size : b.Offset+b.Size]
}

// Release drops the backing buffer and makes the arena unusable.
// Any subsequent Alloc, Grow, or Bytes call panics.
func (a *Arena) Release() {
	a.block = nil
	a.used = 0
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.block == nil {
		panic("memstack: use after Release()")
	}
}
