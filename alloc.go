package arena

import (
	"fmt"
	"math"
	"reflect"
	"sync"
	"unsafe"
)

// Alloc returns a pointer to a zeroed T stored inside the arena.
// T must not contain Go pointers: arena memory is not scanned by the
// garbage collector, so such types are refused with ErrInvalidRequest.
func Alloc[T any](a *Arena) (*T, error) {
	if err := checkPointerFree[T](); err != nil {
		return nil, err
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		if _, err := a.Allocate(0, 1); err != nil {
			return nil, err
		}
		return new(T), nil
	}
	b, err := a.Allocate(size, int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(b))), nil
}

// AllocSlice allocates a zeroed slice of n elements of type T inside the
// arena. Returns nil if n == 0.
func AllocSlice[T any](a *Arena, n int) ([]T, error) {
	return allocSlice[T](a.Allocate, n)
}

// allocSlice sizes a request for n elements of T and carves it with alloc.
func allocSlice[T any](alloc func(n, align int) ([]byte, error), n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d elements", ErrInvalidRequest, n)
	}
	if err := checkPointerFree[T](); err != nil {
		return nil, err
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if n == 0 || elemSize == 0 {
		// Nothing to carve, but a released arena or missing scope still
		// has to be reported.
		if _, err := alloc(0, 1); err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, nil
		}
		return make([]T, n), nil
	}
	if n > math.MaxInt/elemSize {
		return nil, fmt.Errorf("%w: %d elements of %d bytes", ErrInvalidRequest, n, elemSize)
	}
	b, err := alloc(elemSize*n, int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n), nil
}

// pointerTypes caches hasPointers per reflect.Type.
var pointerTypes sync.Map

func checkPointerFree[T any]() error {
	t := reflect.TypeFor[T]()
	v, ok := pointerTypes.Load(t)
	if !ok {
		v, _ = pointerTypes.LoadOrStore(t, hasPointers(t))
	}
	if v.(bool) {
		return fmt.Errorf("%w: %v holds pointers", ErrInvalidRequest, t)
	}
	return nil
}

// hasPointers reports whether values of t contain anything the garbage
// collector has to trace.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.String, reflect.Slice,
		reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
