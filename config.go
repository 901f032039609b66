package gorayon

import (
	"github.com/sirupsen/logrus"

	"github.com/go-foundations/gorayon/bridge"
	"github.com/go-foundations/gorayon/registry"
)

// Config snapshots everything a pool needs at construction time; like
// registry.Config, it is never mutated afterward.
type Config struct {
	// NumThreads is the number of worker goroutines to spawn. Zero is
	// rejected with ErrNumberOfThreadsZero — this is the explicit,
	// user-supplied value, not a sentinel for "pick a default". Build a
	// Config via DefaultConfig if you want that.
	NumThreads int
	// PanicHandler, if set, receives any task failure that has nowhere
	// else to go.
	PanicHandler func(any)
	// StackSize is accepted for interface parity with the source this
	// is modeled on; Go goroutines size their own stacks, so a non-zero
	// value is only ever logged. A negative value is rejected by
	// NewThreadPool/Initialize with registry.ErrNegativeStackSize.
	StackSize int
	// SplitThreshold overrides bridge.Threshold for every pool process-
	// wide once a pool using it is constructed. Zero leaves
	// bridge.Threshold untouched.
	SplitThreshold float64
	// Logger receives structured log output from the pool. Nil uses the
	// module's own internal default logger (a separate logrus.Logger,
	// not logrus.StandardLogger()).
	Logger *logrus.Logger
}

// DefaultConfig returns a Config with NumThreads pre-filled from
// go.uber.org/automaxprocs's view of runtime.GOMAXPROCS, so the
// zero-is-error rule on NumThreads only bites callers who build a
// Config{} by hand.
func DefaultConfig() Config {
	return Config{NumThreads: registry.DefaultNumThreads(nil)}
}

func (c Config) toRegistryConfig() registry.Config {
	return registry.Config{
		NumThreads:   c.NumThreads,
		PanicHandler: c.PanicHandler,
		StackSize:    c.StackSize,
		Logger:       c.Logger,
	}
}

// applySplitThreshold overrides the package-wide bridge.Threshold. This
// is necessarily process-wide rather than truly per-pool, since
// bridge.Threshold is the single knob the bridge package exposes — the
// "single global THRESHOLD is a pragmatic choice" allowance this
// implementation leans on, recorded in DESIGN.md.
func (c Config) applySplitThreshold() {
	if c.SplitThreshold > 0 {
		bridge.Threshold = c.SplitThreshold
	}
}
