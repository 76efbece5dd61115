package memstack

import "unsafe"

// Track copies the raw bytes of v into the stack and returns the handle
// tracking them. T must not contain pointers: the arena's buffer is opaque
// to the garbage collector, so pointer fields stored there would not keep
// their referents alive. Zero-size types return ErrZeroAlloc.
func Track[T any](s *Stack, v T) (*Handle, error) {
	size := int(unsafe.Sizeof(v))
	if size == 0 {
		return nil, ErrZeroAlloc
	}
	data := unsafe.Slice((*byte)(unsafe.Pointer(&v)), size)
	return s.Track(data)
}

// Value copies the payload of a handle produced by Track[T] back out into
// a T. The copy-out is deliberate: the arena performs no alignment, so the
// stored bytes cannot be reinterpreted in place as a *T.
func Value[T any](h *Handle) T {
	var v T
	size := int(unsafe.Sizeof(v))
	if size > 0 {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&v)), size), h.Bytes())
	}
	return v
}

// TrackString copies the bytes of v into the stack. Unlike Track[string],
// which would store the string header, TrackString stores the character
// data itself.
func TrackString(s *Stack, v string) (*Handle, error) {
	if len(v) == 0 {
		return nil, ErrZeroAlloc
	}
	return s.Track([]byte(v))
}
