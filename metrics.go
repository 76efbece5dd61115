package memstack

// Used returns the number of bytes consumed so far, including bytes in
// blocks whose payload copy later failed. Returns 0 on a released arena.
func (a *Arena) Used() int {
	return a.used
}

// Capacity returns the size of the backing buffer in bytes.
// Returns 0 on a released arena.
func (a *Arena) Capacity() int {
	return len(a.block)
}

// Remaining returns the number of bytes still available for carving.
func (a *Arena) Remaining() int {
	return len(a.block) - a.used
}

// Growths returns how many times the backing buffer has been resized.
func (a *Arena) Growths() int {
	if a.block == nil {
		return 0
	}
	return a.growths
}

// Utilization returns the ratio of used bytes to capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.used) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		Used:        a.Used(),
		Capacity:    a.Capacity(),
		Remaining:   a.Remaining(),
		Growths:     a.Growths(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	Used        int     // Bytes carved so far
	Capacity    int     // Backing buffer size in bytes
	Remaining   int     // Bytes still available
	Growths     int     // Number of buffer resizes
	Utilization float64 // Ratio of used to capacity (0.0-1.0)
}

// Metrics returns a snapshot of the stack's statistics, including those of
// its arena. After Teardown all fields are zero.
func (s *Stack) Metrics() StackMetrics {
	if s.arena == nil {
		return StackMetrics{}
	}
	return StackMetrics{
		Tracked: len(s.handles),
		Arena:   s.arena.Metrics(),
	}
}

// StackMetrics contains statistical information about a tracked-allocation
// stack.
type StackMetrics struct {
	Tracked int          // Number of tracked allocations
	Arena   ArenaMetrics // Statistics of the owned arena
}
