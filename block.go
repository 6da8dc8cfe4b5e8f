package arena

import (
	"fmt"
	"unsafe"

	"github.com/pavanmanishd/chainarena/internal/mmap"
)

// BlockAlign is the alignment of every block's first byte. Offsets that are a
// multiple of align are addresses that are a multiple of align for any
// align <= BlockAlign.
const BlockAlign = 16

// block is one fixed-capacity region in an arena's chain.
type block struct {
	buf     []byte // exactly capacity bytes
	size    int    // bytes handed out, including padding
	padding int    // alignment padding included in size
	next    *block // the block that was head before this one
	mapping *mmap.Mapping
}

// newBlock allocates a block holding exactly capacity bytes of payload.
func newBlock(capacity int, offHeap bool) (*block, error) {
	if offHeap {
		m, err := mmap.MapAnon(capacity)
		if err != nil {
			return nil, fmt.Errorf("arena: map %d byte block: %w", capacity, err)
		}
		buf := m.Bytes()
		return &block{buf: buf[:capacity:capacity], mapping: m}, nil
	}

	raw := make([]byte, capacity+BlockAlign-1)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	pad := int(-base & (BlockAlign - 1))
	return &block{buf: raw[pad : pad+capacity : pad+capacity]}, nil
}

// allocate carves n bytes aligned to align out of the unused tail.
// It returns false without touching size when the block has no room.
// align must be a power of two.
func (b *block) allocate(n, align int) (int, bool) {
	start := (b.size + align - 1) &^ (align - 1)
	if align > BlockAlign {
		base := uintptr(unsafe.Pointer(unsafe.SliceData(b.buf)))
		mask := uintptr(align - 1)
		start = int((base+uintptr(b.size)+mask)&^mask - base)
	}
	if n > len(b.buf)-start {
		return 0, false
	}
	b.padding += start - b.size
	b.size = start + n
	return start, true
}

// free drops the block's storage. Heap blocks are left to the collector,
// off-heap blocks are unmapped.
func (b *block) free() error {
	b.buf = nil
	if b.mapping != nil {
		m := b.mapping
		b.mapping = nil
		return m.Close()
	}
	return nil
}

// growPadding is the worst-case padding a fresh block needs before an
// allocation aligned to align.
func growPadding(align int) int {
	if align > BlockAlign {
		return align - BlockAlign
	}
	return 0
}
