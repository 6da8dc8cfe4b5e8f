package arena

import (
	"context"
	"errors"
)

var (
	// ErrNoScope is returned when allocating through a Slot with no arena
	// entered.
	ErrNoScope = errors.New("arena: no active scope")
	// ErrScopeOrder is the panic value when scopes on a Slot are exited out
	// of LIFO order.
	ErrScopeOrder = errors.New("arena: scope exited out of order")
)

// Slot holds the arena that is active for one goroutine. The zero value has
// no active arena. A Slot must only be used by the goroutine that owns it;
// give each goroutine its own.
type Slot struct {
	active *Arena
	seq    uint64 // last scope id handed out
	top    uint64 // id of the innermost open scope, 0 if none
}

// Active returns the arena entered most recently, or nil.
func (s *Slot) Active() *Arena {
	if s == nil {
		return nil
	}
	return s.active
}

// Allocate allocates from the active arena. It returns ErrNoScope when no
// scope is open on s.
func (s *Slot) Allocate(n, align int) ([]byte, error) {
	if s == nil || s.active == nil {
		return nil, ErrNoScope
	}
	return s.active.Allocate(n, align)
}

// Scope is the guard returned by Enter. Exit restores the arena that was
// active before Enter. The zero Scope is a no-op.
type Scope struct {
	slot    *Slot
	prev    *Arena
	seq     uint64
	prevTop uint64
}

// Enter makes a the active arena of s until the returned Scope exits:
//
//	defer a.Enter(slot).Exit()
func (a *Arena) Enter(s *Slot) Scope {
	s.seq++
	sc := Scope{slot: s, prev: s.active, seq: s.seq, prevTop: s.top}
	s.top = s.seq
	s.active = a
	return sc
}

// Exit restores the previously active arena. Scopes on one Slot must exit in
// reverse order of entry, each exactly once; anything else panics with
// ErrScopeOrder.
func (sc Scope) Exit() {
	s := sc.slot
	if s == nil {
		return
	}
	if s.top != sc.seq {
		panic(ErrScopeOrder)
	}
	s.top = sc.prevTop
	s.active = sc.prev
}

// Do runs fn with a entered on s and exits the scope however fn returns.
func (a *Arena) Do(s *Slot, fn func() error) error {
	defer a.Enter(s).Exit()
	return fn()
}

type slotKey struct{}

// WithSlot returns a context carrying s, for call chains that cannot take a
// Slot parameter.
func WithSlot(ctx context.Context, s *Slot) context.Context {
	return context.WithValue(ctx, slotKey{}, s)
}

// SlotFrom returns the Slot carried by ctx, or nil. Allocating through a nil
// Slot returns ErrNoScope.
func SlotFrom(ctx context.Context) *Slot {
	s, _ := ctx.Value(slotKey{}).(*Slot)
	return s
}
