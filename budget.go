package arena

import (
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ErrBudgetExceeded is returned when a block would exceed the memory budget.
var ErrBudgetExceeded = errors.New("arena: memory budget exceeded")

// MemoryAcquirer reserves memory for new blocks. Implementations must not
// block: arena operations never wait.
type MemoryAcquirer interface {
	AcquireMemory(bytes int64) error
	ReleaseMemory(bytes int64)
}

// Budget is a byte limit that may be shared by arenas on many goroutines.
type Budget struct {
	limit int64
	sem   *semaphore.Weighted // nil if unlimited
	used  atomic.Int64
}

// NewBudget returns a Budget of limit bytes. A limit <= 0 only tracks usage.
func NewBudget(limit int64) *Budget {
	b := &Budget{limit: limit}
	if limit > 0 {
		b.sem = semaphore.NewWeighted(limit)
	}
	return b
}

// AcquireMemory reserves bytes or returns ErrBudgetExceeded.
func (b *Budget) AcquireMemory(bytes int64) error {
	if b == nil || bytes <= 0 {
		return nil
	}
	if b.sem != nil && !b.sem.TryAcquire(bytes) {
		return ErrBudgetExceeded
	}
	b.used.Add(bytes)
	return nil
}

// ReleaseMemory returns bytes to the budget.
func (b *Budget) ReleaseMemory(bytes int64) {
	if b == nil || bytes <= 0 {
		return
	}
	if b.sem != nil {
		b.sem.Release(bytes)
	}
	b.used.Add(-bytes)
}

// Used returns the bytes currently reserved.
func (b *Budget) Used() int64 {
	if b == nil {
		return 0
	}
	return b.used.Load()
}

// Limit returns the configured limit, 0 if unlimited.
func (b *Budget) Limit() int64 {
	if b == nil || b.limit < 0 {
		return 0
	}
	return b.limit
}
