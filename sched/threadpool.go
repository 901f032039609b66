// Package sched implements the scheduler primitives built on top of
// registry: the fork/join primitive, external spawn/scope, and the
// ThreadPool facade that ties a Config to a running Registry.
package sched

import (
	"sync"

	"github.com/go-foundations/gorayon/registry"
)

// ThreadPool is a handle to a running, isolated worker pool.
type ThreadPool struct {
	reg *registry.Registry
}

// NewThreadPool validates cfg and starts a new, independent pool.
func NewThreadPool(cfg registry.Config) (*ThreadPool, error) {
	reg, err := registry.New(cfg)
	if err != nil {
		return nil, err
	}
	reg.WaitUntilPrimed()
	return &ThreadPool{reg: reg}, nil
}

// NumThreads returns the pool's configured worker count.
func (p *ThreadPool) NumThreads() int { return p.reg.NumThreads() }

// CurrentThreadIndex reports the index of the calling worker within
// this specific pool. A goroutine that is a worker of a *different*
// pool, or not a worker at all, gets ok == false.
func (p *ThreadPool) CurrentThreadIndex() (int, bool) {
	wt, ok := registry.CurrentWorker()
	if !ok || wt.Registry != p.reg {
		return 0, false
	}
	return wt.Index, true
}

// Install runs fn inside the pool and blocks until it completes. fn (and
// anything it calls into, such as Join or Spawn) observes itself as
// running on one of this pool's workers.
//
// Nested pools: calling Install on pool B from a worker of pool A makes
// A's worker block on B's job latch exactly as any other non-worker
// caller would — it does not participate in B's stealing, since it has
// no deque in B's registry. This is the simplest contract that cannot
// deadlock: B's own workers are entirely independent of A's.
func (p *ThreadPool) Install(fn func()) {
	j := newVoidJob(fn)
	p.reg.Inject(j)
	waitAndPropagate(j)
}

var (
	defaultPoolMu   sync.Mutex
	defaultPool     *ThreadPool
	defaultPoolErr  error
	defaultPoolInit bool
)

// Initialize sets up the global default pool exactly once. Calling it
// again after the first successful (or failed) call is a no-op that
// returns the original result.
func Initialize(cfg registry.Config) error {
	defaultPoolMu.Lock()
	defer defaultPoolMu.Unlock()
	if defaultPoolInit {
		return defaultPoolErr
	}
	defaultPoolInit = true
	defaultPool, defaultPoolErr = NewThreadPool(cfg)
	return defaultPoolErr
}

// globalPool returns the default pool, lazily constructing it with an
// automaxprocs-derived thread count if Initialize was never called.
func globalPool() (*ThreadPool, error) {
	defaultPoolMu.Lock()
	defer defaultPoolMu.Unlock()
	if defaultPoolInit {
		return defaultPool, defaultPoolErr
	}
	defaultPoolInit = true
	defaultPool, defaultPoolErr = NewThreadPool(registry.Config{
		NumThreads: registry.DefaultNumThreads(nil),
	})
	return defaultPool, defaultPoolErr
}

// CurrentNumThreads returns the worker count of the pool the calling
// goroutine is running on, or of the global default pool if the caller
// is not on a worker.
func CurrentNumThreads() int {
	if wt, ok := registry.CurrentWorker(); ok {
		return wt.Registry.NumThreads()
	}
	p, err := globalPool()
	if err != nil {
		return 0
	}
	return p.NumThreads()
}

// CurrentThreadIndex reports the calling worker's index within whatever
// pool owns it, or (0, false) outside any pool.
func CurrentThreadIndex() (int, bool) {
	wt, ok := registry.CurrentWorker()
	if !ok {
		return 0, false
	}
	return wt.Index, true
}
