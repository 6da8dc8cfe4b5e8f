package arena

import "fmt"

// ElementAllocator is what a container needs from its allocator.
type ElementAllocator[T any] interface {
	// Allocate returns storage for n elements.
	Allocate(n int) ([]T, error)
	// Deallocate hands storage back. It may be a no-op.
	Deallocate(s []T)
}

// Allocator allocates elements from whichever arena is active on its Slot.
// Deallocate is a no-op and nothing is finalized when the arena is released,
// so T must be plain data. Element types holding Go pointers are refused
// with ErrInvalidRequest.
type Allocator[T any] struct {
	slot *Slot
}

var _ ElementAllocator[int] = Allocator[int]{}

// NewAllocator returns an Allocator bound to s.
func NewAllocator[T any](s *Slot) Allocator[T] {
	return Allocator[T]{slot: s}
}

// Allocate returns zeroed storage for n elements from the active arena. It
// fails with ErrNoScope when no scope is open on the slot.
func (al Allocator[T]) Allocate(n int) ([]T, error) {
	return allocSlice[T](al.slot.Allocate, n)
}

// Deallocate does nothing; storage lives until the arena is released.
func (Allocator[T]) Deallocate([]T) {}

// Slot returns the slot al allocates through.
func (al Allocator[T]) Slot() *Slot {
	return al.slot
}

// Equal reports whether other, of any element type, allocates through the
// same slot as al. Storage from one can be handed to the other.
func (al Allocator[T]) Equal(other interface{ Slot() *Slot }) bool {
	return other != nil && al.slot == other.Slot()
}

// Rebind returns an allocator for U sharing al's slot.
func Rebind[U, T any](al Allocator[T]) Allocator[U] {
	return Allocator[U]{slot: al.slot}
}

// HeapAllocator allocates from the Go heap. Pair it with Fake where arena
// allocation is switched off.
type HeapAllocator[T any] struct{}

var _ ElementAllocator[int] = HeapAllocator[int]{}

// Allocate returns make([]T, n).
func (HeapAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d elements", ErrInvalidRequest, n)
	}
	return make([]T, n), nil
}

// Deallocate does nothing; the collector reclaims the storage.
func (HeapAllocator[T]) Deallocate([]T) {}
