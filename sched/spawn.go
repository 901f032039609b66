package sched

import (
	"github.com/go-foundations/gorayon/job"
	"github.com/go-foundations/gorayon/registry"
)

// Spawn places fn on the injected-job queue (or, from a worker, on that
// worker's own deque, per the precondition in the spec that a worker
// pushes locally rather than injecting) and returns immediately. Since
// nobody waits on a spawned job directly, a failure is the pool's
// orphaned-error sink's to handle.
func Spawn(fn func()) {
	j := newVoidJob(fn)

	var reg *registry.Registry
	if wt, ok := registry.CurrentWorker(); ok {
		reg = wt.Registry
		reg.ThreadInfo(wt.Index).Deque.Push(j)
	} else {
		pool, err := globalPool()
		if err != nil {
			panic(registry.NewTaskError(err))
		}
		reg = pool.reg
		reg.Inject(j)
	}

	go func() {
		if _, err := j.Wait(); err != nil {
			reg.HandleOrphanedError(err)
		}
	}()
}

// SpawnInto is Spawn targeted at an explicit pool, for callers that are
// not currently running on that pool's workers (the common case for the
// injection precondition: "caller is NOT on a worker").
func SpawnInto(p *ThreadPool, fn func()) {
	j := newVoidJob(fn)
	p.reg.Inject(j)
	go func() {
		if _, err := j.Wait(); err != nil {
			p.reg.HandleOrphanedError(err)
		}
	}()
}

// pushOrInject schedules j the idiomatic way for the calling goroutine:
// directly onto the current worker's own deque if there is one,
// otherwise injected into reg.
func pushOrInject(reg *registry.Registry, j *job.Job) {
	if wt, ok := registry.CurrentWorker(); ok && wt.Registry == reg {
		reg.ThreadInfo(wt.Index).Deque.Push(j)
		return
	}
	reg.Inject(j)
}
