// Package arena implements an extensible bump allocator for Go.
//
// # Overview
//
// An Arena hands out sub-ranges of large blocks. When the newest block
// cannot satisfy a request, a new block of max(block size, request) bytes is
// pushed onto the front of a singly linked chain; older blocks stay alive, so
// no allocation ever moves or invalidates an earlier one. Nothing is freed
// until the whole arena is released.
//
// # Basic Usage
//
//	a, err := arena.NewArena(0) // Use default block size
//	if err != nil { ... }
//	defer a.Release()
//
//	buf, _ := a.Allocate(1024, 8)
//	p, _ := arena.Alloc[Point](a)
//	xs, _ := arena.AllocSlice[float64](a, 100)
//
// # Scopes
//
// Containers usually do not hold an arena. Instead each goroutine owns a
// Slot, and a Scope makes one arena the active arena of that Slot:
//
//	var slot arena.Slot
//	defer a.Enter(&slot).Exit()
//
//	v := arena.NewVector(arena.NewAllocator[int](&slot))
//	v.Append(1, 2, 3)
//
// Scopes nest. Exit restores whatever was active before Enter, and scopes on
// one Slot must exit in reverse order. Allocating through a Slot with no
// open scope returns ErrNoScope. WithSlot and SlotFrom carry a Slot through a
// context.Context.
//
// Fake has the same Enter and Release surface as Arena and does nothing; use
// it with HeapAllocator to turn arena allocation off.
//
// # Thread Safety
//
// Arena and Slot are not safe for concurrent use. Give each goroutine its own
// Slot and its own arenas. SafeArena wraps an Arena in a mutex for the rare
// case of explicit sharing. A Budget may be shared freely.
//
// # Memory Layout
//
// Blocks start on a BlockAlign boundary and allocations are padded up to
// the requested alignment. Blocks live on the Go heap unless WithOffHeap is
// given, in which case they are anonymous memory mappings that are unmapped
// by Release.
//
// # Important Notes
//
//   - Values stored in an arena must not contain Go pointers; arena memory
//     is not scanned by the garbage collector, so Alloc, AllocSlice and
//     Allocator refuse such types with ErrInvalidRequest
//   - Deallocate is a no-op and no finalizers run on Release
//   - Memory from an off-heap arena must not be touched after Release
//   - Allocated memory is always zeroed
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Blocks: %d, grows: %d\n", m.NumBlocks, m.Grows)
package arena
