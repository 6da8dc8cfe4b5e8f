package arena

// Binder is the surface shared by Arena and Fake, so callers can switch arena
// allocation off without touching call sites.
type Binder interface {
	Enter(s *Slot) Scope
	Release() error
}

var (
	_ Binder = (*Arena)(nil)
	_ Binder = Fake{}
)

// Fake stands in for an Arena and does nothing. Entering it leaves the Slot
// untouched, so pair it with HeapAllocator.
type Fake struct{}

// NewFake ignores its arguments and returns a Fake.
func NewFake(capacity int, opts ...Option) Fake {
	return Fake{}
}

// Enter returns a no-op Scope.
func (Fake) Enter(*Slot) Scope { return Scope{} }

// Release does nothing.
func (Fake) Release() error { return nil }
