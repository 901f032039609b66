// Package gorayon is the public surface of the scheduler: build a pool,
// install work on it, and fork/join or spawn/scope within that work.
// Everything here is a thin facade over registry (the worker pool) and
// sched (join/spawn/scope) — the facade exists so callers depend on one
// import and one Config type instead of reaching into the internal
// packages directly.
package gorayon

import (
	"github.com/go-foundations/gorayon/registry"
	"github.com/go-foundations/gorayon/sched"
)

// Re-exported error values, exactly as spec.md §6 names them.
var ErrNumberOfThreadsZero = registry.ErrNumberOfThreadsZero

// ThreadPool is a handle to a running, isolated worker pool.
type ThreadPool struct {
	inner *sched.ThreadPool
}

// NewThreadPool validates cfg and starts a new, independent pool.
func NewThreadPool(cfg Config) (*ThreadPool, error) {
	cfg.applySplitThreshold()
	p, err := sched.NewThreadPool(cfg.toRegistryConfig())
	if err != nil {
		return nil, err
	}
	return &ThreadPool{inner: p}, nil
}

// NumThreads returns the pool's configured worker count.
func (p *ThreadPool) NumThreads() int { return p.inner.NumThreads() }

// CurrentThreadIndex reports the index of the calling worker within
// this pool, or (0, false) if the caller isn't one of its workers.
func (p *ThreadPool) CurrentThreadIndex() (int, bool) { return p.inner.CurrentThreadIndex() }

// Install runs fn inside the pool and blocks until it completes.
func (p *ThreadPool) Install(fn func()) { p.inner.Install(fn) }

// Initialize sets up the process-wide default pool exactly once;
// later calls are no-ops that return the original result. Callers that
// never call Initialize get the default pool lazily, sized by
// DefaultConfig's automaxprocs-derived thread count, the first time
// Join/Spawn/ScopeFn needs it off-worker.
func Initialize(cfg Config) error {
	cfg.applySplitThreshold()
	return sched.Initialize(cfg.toRegistryConfig())
}

// Join executes a and b, possibly in parallel, and returns both
// results. See sched.Join for the full placement/propagation contract.
func Join[A any, B any](a func() A, b func() B) (A, B) {
	return sched.Join(a, b)
}

// Scope is a bounded-lifetime spawning region; see sched.Scope.
type Scope = sched.Scope

// ScopeFn runs body with a fresh Scope, blocking until every task
// spawned through it has completed.
func ScopeFn(body func(s *Scope)) { sched.ScopeFn(body) }

// Spawn schedules fn to run asynchronously and returns immediately; any
// failure it reports goes to the owning pool's orphaned-error sink.
func Spawn(fn func()) { sched.Spawn(fn) }

// CurrentNumThreads returns the worker count of the pool the calling
// goroutine is running on, or of the default pool otherwise.
func CurrentNumThreads() int { return sched.CurrentNumThreads() }

// CurrentThreadIndex reports the calling worker's index within
// whatever pool owns it, or (0, false) outside any pool.
func CurrentThreadIndex() (int, bool) { return sched.CurrentThreadIndex() }
