package arena

import "log/slog"

type config struct {
	logger  *slog.Logger
	offHeap bool
	budget  MemoryAcquirer
}

// Option configures an Arena.
type Option func(*config)

// WithLogger sets the logger used for block growth and release events.
// By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithOffHeap backs blocks with anonymous memory mappings instead of the Go
// heap. Memory handed out by an off-heap arena must not be used after
// Release.
func WithOffHeap() Option {
	return func(c *config) {
		c.offHeap = true
	}
}

// WithBudget charges every block's capacity against m. Growth fails when m
// refuses the bytes.
func WithBudget(m MemoryAcquirer) Option {
	return func(c *config) {
		c.budget = m
	}
}

func newConfig(opts []Option) config {
	c := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
