package arena

import "fmt"

// SizeInUse returns the bytes handed out across all blocks, including
// alignment padding.
func (a *Arena) SizeInUse() int {
	sum := 0
	for b := a.head; b != nil; b = b.next {
		sum += b.size
	}
	return sum
}

// NumBlocks returns the number of blocks in the chain.
func (a *Arena) NumBlocks() int {
	return a.numBlocks
}

// Capacity returns the total capacity (in bytes) of all blocks in the arena.
func (a *Arena) Capacity() int {
	return a.capacity
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// BlockSize returns the nominal block capacity.
func (a *Arena) BlockSize() int {
	return a.blockSize
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	padding := 0
	for b := a.head; b != nil; b = b.next {
		padding += b.padding
	}
	return ArenaMetrics{
		SizeInUse:    a.SizeInUse(),
		Capacity:     a.Capacity(),
		NumBlocks:    a.NumBlocks(),
		BlockSize:    a.BlockSize(),
		Utilization:  a.Utilization(),
		BytesPadding: padding,
		TotalAllocs:  a.totalAllocs,
		Grows:        a.grows,
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse    int     // Bytes handed out, padding included
	Capacity     int     // Total capacity in bytes
	NumBlocks    int     // Number of blocks in the chain
	BlockSize    int     // Nominal block size
	Utilization  float64 // Ratio of used to total capacity (0.0-1.0)
	BytesPadding int     // Alignment padding inside SizeInUse
	TotalAllocs  uint64  // Successful non-empty allocations
	Grows        uint64  // Blocks added after construction
}

func (a *Arena) String() string {
	m := a.Metrics()
	return fmt.Sprintf("Arena{blocks: %d, capacity: %d, used: %d, padding: %d, usage: %.1f%%, allocs: %d}",
		m.NumBlocks, m.Capacity, m.SizeInUse, m.BytesPadding, m.Utilization*100, m.TotalAllocs)
}

// Thread-safe metrics for SafeArena

// SizeInUse thread-safely returns the bytes handed out.
func (s *SafeArena) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}

// NumBlocks thread-safely returns the number of blocks.
func (s *SafeArena) NumBlocks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.NumBlocks()
}

// Capacity thread-safely returns the total capacity of all blocks.
func (s *SafeArena) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
