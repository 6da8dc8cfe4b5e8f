package arena

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlock(t *testing.T) {
	for _, offHeap := range []bool{false, true} {
		b, err := newBlock(100, offHeap)
		require.NoError(t, err)

		assert.Len(t, b.buf, 100)
		assert.Equal(t, 100, cap(b.buf))
		assert.Zero(t, b.size)
		base := uintptr(unsafe.Pointer(unsafe.SliceData(b.buf)))
		assert.Zero(t, base%BlockAlign, "offHeap=%v base %x", offHeap, base)
		assert.Equal(t, offHeap, b.mapping != nil)

		require.NoError(t, b.free())
		assert.Nil(t, b.buf)
	}
}

func TestBlockAllocate(t *testing.T) {
	b, err := newBlock(64, false)
	require.NoError(t, err)

	off, ok := b.allocate(3, 1)
	require.True(t, ok)
	assert.Equal(t, 0, off)

	off, ok = b.allocate(8, 8)
	require.True(t, ok)
	assert.Equal(t, 8, off)
	assert.Equal(t, 16, b.size)
	assert.Equal(t, 5, b.padding)

	off, ok = b.allocate(16, 16)
	require.True(t, ok)
	assert.Equal(t, 16, off)
	assert.Equal(t, 32, b.size)
}

func TestBlockAllocateNoRoom(t *testing.T) {
	b, err := newBlock(64, false)
	require.NoError(t, err)

	_, ok := b.allocate(40, 1)
	require.True(t, ok)

	_, ok = b.allocate(40, 1)
	assert.False(t, ok)
	assert.Equal(t, 40, b.size, "failed allocation must not move size")

	// 40 rounds up to 48; 48+16 fits exactly.
	off, ok := b.allocate(16, 16)
	require.True(t, ok)
	assert.Equal(t, 48, off)
	assert.Equal(t, 64, b.size)

	_, ok = b.allocate(1, 1)
	assert.False(t, ok)
	_, ok = b.allocate(0, 1)
	assert.True(t, ok)
}

func TestBlockAllocateLargeAlignment(t *testing.T) {
	b, err := newBlock(512, false)
	require.NoError(t, err)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(b.buf)))

	_, ok := b.allocate(1, 1)
	require.True(t, ok)

	for _, align := range []int{32, 64, 128} {
		off, ok := b.allocate(8, align)
		require.True(t, ok)
		assert.Zero(t, (base+uintptr(off))%uintptr(align), "align %d", align)
	}
}

func TestGrowPadding(t *testing.T) {
	tests := []struct {
		align int
		want  int
	}{
		{1, 0},
		{8, 0},
		{BlockAlign, 0},
		{32, 32 - BlockAlign},
		{4096, 4096 - BlockAlign},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, growPadding(tt.align), "align %d", tt.align)
	}
}
