package memstack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStack(t *testing.T) {
	st, err := NewStack(128)
	require.NoError(t, err)
	assert.Equal(t, 0, st.Len())
	assert.Equal(t, 128, st.arena.Capacity())

	for _, capacity := range []int{0, -4} {
		st, err := NewStack(capacity)
		assert.ErrorIs(t, err, ErrInvalidCapacity)
		assert.Nil(t, st)
	}
}

func TestStackTrack(t *testing.T) {
	st, err := NewStack(64)
	require.NoError(t, err)
	defer st.Teardown()

	h1, err := st.Track([]byte("first"))
	require.NoError(t, err)
	h2, err := st.Track([]byte("second"))
	require.NoError(t, err)

	assert.Equal(t, 2, st.Len())
	assert.Equal(t, 5, h1.Size())
	assert.Equal(t, 6, h2.Size())
	assert.Equal(t, []byte("first"), h1.Bytes())
	assert.Equal(t, []byte("second"), h2.Bytes())

	// Payloads are copies: mutating the source must not affect the handle
	src := []byte("mutable")
	h3, err := st.Track(src)
	require.NoError(t, err)
	src[0] = 'X'
	assert.Equal(t, []byte("mutable"), h3.Bytes())

	// Handle bytes are writable until teardown
	h1.Bytes()[0] = 'F'
	assert.Equal(t, []byte("First"), h1.Bytes())
}

func TestStackTrackInvalidPayloads(t *testing.T) {
	st, err := NewStack(64)
	require.NoError(t, err)
	defer st.Teardown()

	used := st.arena.Used()

	h, err := st.Track(nil)
	assert.ErrorIs(t, err, ErrNilPayload)
	assert.Nil(t, h)

	h, err = st.Track([]byte{})
	assert.ErrorIs(t, err, ErrZeroAlloc)
	assert.Nil(t, h)

	assert.Equal(t, used, st.arena.Used(), "failed Track must not consume bytes")
	assert.Equal(t, 0, st.Len(), "failed Track must not record a handle")
}

func TestStackGrowth(t *testing.T) {
	// 12 bytes of capacity: two 6-byte payloads fill the arena exactly,
	// the third forces growth.
	st, err := NewStack(12)
	require.NoError(t, err)
	defer st.Teardown()

	h0, err := st.Track([]byte("Hello\x00"))
	require.NoError(t, err)
	h1, err := st.Track([]byte("World\x00"))
	require.NoError(t, err)
	assert.Equal(t, 0, st.arena.Growths())
	assert.Equal(t, 0, st.arena.Remaining())

	h2, err := st.Track([]byte("!!\x00"))
	require.NoError(t, err)
	assert.Equal(t, 1, st.arena.Growths())

	// All three handles survive the relocation with their contents intact
	assert.Equal(t, []byte("Hello\x00"), h0.Bytes())
	assert.Equal(t, []byte("World\x00"), h1.Bytes())
	assert.Equal(t, []byte("!!\x00"), h2.Bytes())
	assert.Equal(t, 3, st.Len())
}

func TestStackGrowthStep(t *testing.T) {
	st, err := NewStack(4)
	require.NoError(t, err)
	defer st.Teardown()

	// Small payload: arena grows by the 1 KiB floor, not 2*len
	_, err = st.Track([]byte("12345678"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, st.arena.Capacity(), minGrowth)

	// Large payload: arena grows by at least twice the payload size
	big := make([]byte, 4096)
	before := st.arena.Capacity()
	_, err = st.Track(big)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, st.arena.Capacity(), before+2*len(big))
}

func TestStackNoGrowthWithinCapacity(t *testing.T) {
	st, err := NewStack(64)
	require.NoError(t, err)
	defer st.Teardown()

	// Payloads summing to the initial capacity never trigger growth
	for i := 0; i < 8; i++ {
		_, err := st.Track(make([]byte, 8))
		require.NoError(t, err)
	}
	assert.Equal(t, 0, st.arena.Growths())
	assert.Equal(t, 64, st.arena.Capacity())
}

func TestStackHandleLimitExceedsSeed(t *testing.T) {
	// The handle record grows independently of the arena: tracking far
	// more allocations than the seed capacity must succeed.
	st, err := NewStack(2)
	require.NoError(t, err)
	defer st.Teardown()

	for i := 0; i < 100; i++ {
		_, err := st.Track([]byte{byte(i)})
		require.NoError(t, err)
	}
	assert.Equal(t, 100, st.Len())
}

func TestStackTeardownDestructorOrder(t *testing.T) {
	st, err := NewStack(256)
	require.NoError(t, err)

	const n = 5
	var order []int
	for i := 0; i < n; i++ {
		h, err := st.Track([]byte{byte(i)})
		require.NoError(t, err)
		i := i
		h.SetDestructor(func(h *Handle) {
			order = append(order, i)
		})
	}

	st.Teardown()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order, "destructors run once each, in registration order")
}

func TestStackDestructorSeesPayload(t *testing.T) {
	st, err := NewStack(64)
	require.NoError(t, err)

	h, err := st.Track([]byte("resource-id"))
	require.NoError(t, err)

	var seen []byte
	var size int
	h.SetDestructor(func(h *Handle) {
		seen = append(seen, h.Bytes()...)
		size = h.Size()
	})

	st.Teardown()
	assert.Equal(t, []byte("resource-id"), seen)
	assert.Equal(t, 11, size)
}

func TestStackDestructorLastWriteWins(t *testing.T) {
	st, err := NewStack(64)
	require.NoError(t, err)

	h, err := st.Track([]byte("x"))
	require.NoError(t, err)

	var got string
	h.SetDestructor(func(h *Handle) { got = "first" })
	h.SetDestructor(func(h *Handle) { got = "second" })

	st.Teardown()
	assert.Equal(t, "second", got)
}

func TestStackDefaultDestructorIsNoop(t *testing.T) {
	st, err := NewStack(64)
	require.NoError(t, err)

	_, err = st.Track([]byte("no destructor"))
	require.NoError(t, err)

	assert.NotPanics(t, func() { st.Teardown() })
}

func TestStackUseAfterTeardown(t *testing.T) {
	st, err := NewStack(64)
	require.NoError(t, err)
	st.Teardown()

	assert.Equal(t, 0, st.Len())
	assert.Equal(t, StackMetrics{}, st.Metrics())
	assert.Panics(t, func() { st.Track([]byte("late")) })
	assert.Panics(t, func() { st.Teardown() })
}

func TestStackHandleBytesAfterTeardownPanics(t *testing.T) {
	st, err := NewStack(64)
	require.NoError(t, err)

	h, err := st.Track([]byte("gone"))
	require.NoError(t, err)

	st.Teardown()
	assert.Panics(t, func() { h.Bytes() })
}
