package arena

const minVectorCap = 8

// Vector is a growable sequence whose storage comes from an
// ElementAllocator.
type Vector[T any] struct {
	alloc ElementAllocator[T]
	items []T
}

// NewVector returns an empty Vector using alloc.
func NewVector[T any](alloc ElementAllocator[T]) *Vector[T] {
	return &Vector[T]{alloc: alloc}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return len(v.items) }

// Cap returns the number of elements that fit without growing.
func (v *Vector[T]) Cap() int { return cap(v.items) }

// At returns element i.
func (v *Vector[T]) At(i int) T { return v.items[i] }

// Set replaces element i.
func (v *Vector[T]) Set(i int, val T) { v.items[i] = val }

// Items returns the elements. The slice aliases the vector's storage until
// the next growth.
func (v *Vector[T]) Items() []T { return v.items }

// Append adds vals, growing the storage geometrically if needed.
func (v *Vector[T]) Append(vals ...T) error {
	if need := len(v.items) + len(vals); need > cap(v.items) {
		if err := v.Reserve(max(need, 2*cap(v.items), minVectorCap)); err != nil {
			return err
		}
	}
	v.items = append(v.items, vals...)
	return nil
}

// Reserve makes room for at least n elements.
func (v *Vector[T]) Reserve(n int) error {
	if n <= cap(v.items) {
		return nil
	}
	fresh, err := v.alloc.Allocate(n)
	if err != nil {
		return err
	}
	fresh = fresh[:len(v.items)]
	copy(fresh, v.items)

	old := v.items
	v.items = fresh
	if cap(old) > 0 {
		v.alloc.Deallocate(old[:cap(old)])
	}
	return nil
}
