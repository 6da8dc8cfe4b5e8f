package arena

import (
	"errors"
	"fmt"
	"math"
)

// DefaultBlockSize is the block size used when NewArena is given a
// non-positive capacity (64 KiB).
const DefaultBlockSize = 1 << 16

var (
	// ErrReleased is returned when allocating from a released arena.
	ErrReleased = errors.New("arena: use after Release()")
	// ErrInvalidRequest is returned for a negative size or an alignment that
	// is not a positive power of two.
	ErrInvalidRequest = errors.New("arena: invalid allocation request")
)

// Arena owns a singly linked chain of blocks, newest first. It is not safe
// for concurrent use; see SafeArena.
type Arena struct {
	head      *block
	blockSize int
	cfg       config

	numBlocks   int
	capacity    int
	totalAllocs uint64
	grows       uint64
}

// NewArena creates an Arena whose blocks hold capacity bytes. If
// capacity <= 0, DefaultBlockSize is used.
func NewArena(capacity int, opts ...Option) (*Arena, error) {
	if capacity <= 0 {
		capacity = DefaultBlockSize
	}
	a := &Arena{blockSize: capacity, cfg: newConfig(opts)}
	head, err := a.newBlock(capacity)
	if err != nil {
		return nil, err
	}
	a.head = head
	return a, nil
}

// Allocate returns n bytes aligned to align. The slice stays valid until the
// arena is released; no later allocation moves or reuses it. Memory is
// zeroed. align must be a power of two.
func (a *Arena) Allocate(n, align int) ([]byte, error) {
	h := a.head
	if h == nil {
		return nil, ErrReleased
	}
	if n < 0 || align <= 0 || align&(align-1) != 0 {
		return nil, fmt.Errorf("%w: size %d, align %d", ErrInvalidRequest, n, align)
	}
	if n == 0 {
		return h.buf[h.size:h.size:h.size], nil
	}

	// Fast path: current head has room
	if off, ok := h.allocate(n, align); ok {
		a.totalAllocs++
		return h.buf[off : off+n : off+n], nil
	}

	return a.allocateSlow(n, align)
}

// AllocBytes is Allocate with byte alignment.
func (a *Arena) AllocBytes(n int) ([]byte, error) {
	return a.Allocate(n, 1)
}

// allocateSlow pushes a new head block large enough for the request.
func (a *Arena) allocateSlow(n, align int) ([]byte, error) {
	pad := growPadding(align)
	if n > math.MaxInt-BlockAlign-pad {
		return nil, fmt.Errorf("%w: size %d too large", ErrInvalidRequest, n)
	}
	capacity := max(a.blockSize, n+pad)
	b, err := a.newBlock(capacity)
	if err != nil {
		return nil, err
	}
	b.next = a.head
	a.head = b
	a.grows++

	a.cfg.logger.Debug("arena block added",
		"capacity", capacity, "request", n, "align", align, "blocks", a.numBlocks)

	off, ok := b.allocate(n, align)
	if !ok {
		panic(fmt.Sprintf("arena: fresh block of %d bytes cannot hold %d bytes aligned to %d", capacity, n, align))
	}
	a.totalAllocs++
	return b.buf[off : off+n : off+n], nil
}

func (a *Arena) newBlock(capacity int) (*block, error) {
	if a.cfg.budget != nil {
		if err := a.cfg.budget.AcquireMemory(int64(capacity)); err != nil {
			a.cfg.logger.Debug("arena block refused", "capacity", capacity, "err", err)
			return nil, fmt.Errorf("arena: reserve %d byte block: %w", capacity, err)
		}
	}
	b, err := newBlock(capacity, a.cfg.offHeap)
	if err != nil {
		if a.cfg.budget != nil {
			a.cfg.budget.ReleaseMemory(int64(capacity))
		}
		return nil, err
	}
	a.numBlocks++
	a.capacity += capacity
	return b, nil
}

// Release tears down the whole chain. It does not run any finalizers for
// values stored in the arena. Release is idempotent; later allocations
// return ErrReleased.
func (a *Arena) Release() error {
	if a.head == nil {
		return nil
	}

	var errs []error
	for b := a.head; b != nil; {
		next := b.next
		b.next = nil
		if err := b.free(); err != nil {
			errs = append(errs, err)
		}
		b = next
	}
	a.head = nil

	if a.cfg.budget != nil {
		a.cfg.budget.ReleaseMemory(int64(a.capacity))
	}
	a.cfg.logger.Debug("arena released",
		"blocks", a.numBlocks, "capacity", a.capacity, "allocs", a.totalAllocs)
	a.numBlocks = 0
	a.capacity = 0

	return errors.Join(errs...)
}

// Released reports whether Release has been called.
func (a *Arena) Released() bool {
	return a.head == nil
}
