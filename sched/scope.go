package sched

import (
	"golang.org/x/sync/errgroup"

	"github.com/go-foundations/gorayon/job"
	"github.com/go-foundations/gorayon/registry"
)

// Scope is a bounded-lifetime spawning region: tasks spawned through it
// may reference stack data owned by the caller of ScopeFn/ScopeIn, because
// the scope does not return until every spawned task has completed.
// The counter-plus-latch the spec calls for is exactly what
// golang.org/x/sync/errgroup already provides, so Scope is a thin
// wrapper around one.
type Scope struct {
	reg *registry.Registry
	g   *errgroup.Group
}

// Spawn schedules fn within the scope. fn is pushed onto the calling
// worker's own deque when called from a worker, otherwise injected —
// identical placement rules to Spawn, so spawned tasks remain stealable.
func (s *Scope) Spawn(fn func() error) {
	j := job.New(func() (any, error) {
		return nil, fn()
	})
	pushOrInject(s.reg, j)
	s.g.Go(func() error {
		_, err := j.Wait()
		return err
	})
}

// ScopeFn runs body with a fresh Scope bound to the calling goroutine's
// pool (the global default pool if called off-worker), blocking until
// every task spawned through that scope has completed, then re-raising
// the first reported failure, if any.
func ScopeFn(body func(s *Scope)) {
	var reg *registry.Registry
	if wt, ok := registry.CurrentWorker(); ok {
		reg = wt.Registry
	} else {
		pool, err := globalPool()
		if err != nil {
			panic(registry.NewTaskError(err))
		}
		reg = pool.reg
	}

	var g errgroup.Group
	s := &Scope{reg: reg, g: &g}
	body(s)

	if err := g.Wait(); err != nil {
		panic(registry.NewTaskError(err))
	}
}

// ScopeIn runs body with a Scope explicitly bound to pool, regardless of
// whether the calling goroutine happens to be one of pool's workers.
func ScopeIn(pool *ThreadPool, body func(s *Scope)) {
	var g errgroup.Group
	s := &Scope{reg: pool.reg, g: &g}
	body(s)

	if err := g.Wait(); err != nil {
		panic(registry.NewTaskError(err))
	}
}
