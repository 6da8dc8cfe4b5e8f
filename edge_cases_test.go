package arena_test

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	arena "github.com/pavanmanishd/chainarena"
)

// TestEdgeCases covers misuse and boundary behaviour through the public API.
func TestEdgeCases(t *testing.T) {
	t.Run("UseAfterRelease", func(t *testing.T) {
		a, err := arena.NewArena(1024)
		require.NoError(t, err)
		require.NoError(t, a.Release())

		var slot arena.Slot
		defer a.Enter(&slot).Exit()

		checks := map[string]func() error{
			"Allocate":   func() error { _, err := a.Allocate(100, 1); return err },
			"AllocBytes": func() error { _, err := a.AllocBytes(100); return err },
			"Alloc":      func() error { _, err := arena.Alloc[int](a); return err },
			"AllocSlice": func() error { _, err := arena.AllocSlice[int](a, 10); return err },
			"Slot":       func() error { _, err := slot.Allocate(8, 8); return err },
			"Allocator":  func() error { _, err := arena.NewAllocator[int](&slot).Allocate(2); return err },
		}
		for name, fn := range checks {
			assert.ErrorIs(t, fn(), arena.ErrReleased, name)
		}
	})

	t.Run("MultipleReleases", func(t *testing.T) {
		a, err := arena.NewArena(1024, arena.WithOffHeap())
		require.NoError(t, err)
		assert.NoError(t, a.Release())
		assert.NoError(t, a.Release())
		assert.True(t, a.Released())
	})

	t.Run("AlignmentOfMixedTypes", func(t *testing.T) {
		a, err := arena.NewArena(1024)
		require.NoError(t, err)
		defer a.Release()

		type AlignTest1 struct{ a int8 }
		type AlignTest2 struct{ a int64 }
		type AlignTest3 struct {
			a int8
			b int64
		}

		p1, err := arena.Alloc[AlignTest1](a)
		require.NoError(t, err)
		p2, err := arena.Alloc[AlignTest2](a)
		require.NoError(t, err)
		p3, err := arena.Alloc[AlignTest3](a)
		require.NoError(t, err)

		assert.Zero(t, uintptr(unsafe.Pointer(p1))%unsafe.Alignof(AlignTest1{}))
		assert.Zero(t, uintptr(unsafe.Pointer(p2))%unsafe.Alignof(AlignTest2{}))
		assert.Zero(t, uintptr(unsafe.Pointer(p3))%unsafe.Alignof(AlignTest3{}))
	})

	t.Run("ScopeRestoredOnPanic", func(t *testing.T) {
		a, err := arena.NewArena(64)
		require.NoError(t, err)
		defer a.Release()

		var slot arena.Slot
		func() {
			defer func() { _ = recover() }()
			defer a.Enter(&slot).Exit()
			panic("unwind")
		}()
		_, err = slot.Allocate(1, 1)
		assert.True(t, errors.Is(err, arena.ErrNoScope))
	})
}

// TestMemoryCorruption checks that allocations never overlap.
func TestMemoryCorruption(t *testing.T) {
	a, err := arena.NewArena(1024)
	require.NoError(t, err)
	defer a.Release()

	ptrs := make([]*[64]byte, 100)
	for i := range ptrs {
		ptrs[i], err = arena.Alloc[[64]byte](a)
		require.NoError(t, err)
		for j := range ptrs[i] {
			ptrs[i][j] = byte(i)
		}
	}

	for i, ptr := range ptrs {
		for j, b := range ptr {
			if b != byte(i) {
				t.Errorf("Memory corruption detected at ptr[%d][%d]: got %d, want %d", i, j, b, byte(i))
			}
		}
	}
}

// TestBoundaryConditions tests block boundary conditions
func TestBoundaryConditions(t *testing.T) {
	t.Run("ExactBlockSizeAllocation", func(t *testing.T) {
		blockSize := 1024
		a, err := arena.NewArena(blockSize)
		require.NoError(t, err)
		defer a.Release()

		buf, err := a.AllocBytes(blockSize)
		require.NoError(t, err)
		assert.Len(t, buf, blockSize)
		assert.Equal(t, 1, a.NumBlocks())

		// This should trigger a new block
		buf2, err := a.AllocBytes(1)
		require.NoError(t, err)
		assert.Len(t, buf2, 1)
		assert.Equal(t, 2, a.NumBlocks())
		assert.Equal(t, 2*blockSize, a.Capacity())
	})

	t.Run("OneByteBlocks", func(t *testing.T) {
		a, err := arena.NewArena(1)
		require.NoError(t, err)
		defer a.Release()

		for i := 0; i < 10; i++ {
			b, err := a.Allocate(8, 8)
			require.NoError(t, err)
			assert.Zero(t, uintptr(unsafe.Pointer(&b[0]))%8)
		}
		assert.Equal(t, 11, a.NumBlocks())
	})
}
