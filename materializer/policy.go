package materializer

import (
	"io"
	"log/slog"
)

// Policy selects which installation methods Install is allowed to try.
// Both flags default to false (copy-only) in the zero value.
type Policy struct {
	// FileClone enables an attempted reflink/CoW clone as the first
	// strategy.
	FileClone bool
	// HardLink enables hard-linking (with a 0444 guard on the
	// destination) as the second strategy.
	HardLink bool
}

type config struct {
	logger *slog.Logger
}

// Option configures an Installer.
type Option func(*config)

// WithLogger sets the logger used for attempt/fallback diagnostics.
// The default discards all output.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

func newConfig(opts []Option) *config {
	c := &config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Installer installs files under a fixed Policy and logger.
type Installer struct {
	policy Policy
	cfg    *config
}

// New returns an Installer that attempts the strategies enabled by
// policy, in clone, hard-link, copy order.
func New(policy Policy, opts ...Option) *Installer {
	return &Installer{policy: policy, cfg: newConfig(opts)}
}
