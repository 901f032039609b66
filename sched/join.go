package sched

import (
	"fmt"
	"time"

	"github.com/go-foundations/gorayon/job"
	"github.com/go-foundations/gorayon/registry"
)

// stealRetryInterval bounds how long the wait-but-work loop sleeps
// between steal attempts once every peer deque has come up empty,
// mirroring the teacher's workStealingWorker busy-wait backoff.
const stealRetryInterval = time.Millisecond

// Join executes a and b, guaranteeing a runs on the calling goroutine.
// When called from a worker, b is pushed onto that worker's deque as a
// stealable task: if no peer steals it before a finishes, the caller
// runs b inline; if it was stolen, the caller helps drain other work
// while waiting for b's latch ("wait-but-work"), rather than blocking
// idle. When called from a non-worker goroutine, b is injected into the
// global pool and the caller waits on its latch without stealing, since
// it has no deque of its own.
//
// If either side failed, Join panics with the wrapped failure (the
// first one observed); if both failed, the second is additionally
// handed to the owning registry's orphaned-error sink.
func Join[A any, B any](a func() A, b func() B) (A, B) {
	if wt, ok := registry.CurrentWorker(); ok {
		return joinOnWorker(wt, a, b)
	}
	return joinOffWorker(a, b)
}

func joinOnWorker[A any, B any](wt *registry.WorkerThread, a func() A, b func() B) (A, B) {
	reg := wt.Registry
	info := reg.ThreadInfo(wt.Index)

	var bResult B
	bJob := job.New(func() (any, error) {
		bResult = b()
		return nil, nil
	})
	info.Deque.Push(bJob)

	var aResult A
	aPanic := callCapturingPanic(func() { aResult = a() })

	if info.Deque.Pop(bJob) {
		// b was never stolen; it is still ours to run. It runs even if
		// a already failed, so that a failure of b as well reaches the
		// orphaned-error sink in reconcileJoin; b's result never
		// escapes in that case.
		bJob.Run()
	} else {
		for !bJob.Latch().Probe() {
			if stolen, ok := reg.StealWork(wt.Index); ok {
				stolen.Run()
				continue
			}
			time.Sleep(stealRetryInterval)
		}
	}

	_, bErr := bJob.Wait()
	return reconcileJoin(aResult, bResult, aPanic, bErr, reg)
}

func joinOffWorker[A any, B any](a func() A, b func() B) (A, B) {
	pool, err := globalPool()
	if err != nil {
		panic(registry.NewTaskError(err))
	}

	var bResult B
	bJob := job.New(func() (any, error) {
		bResult = b()
		return nil, nil
	})
	pool.reg.Inject(bJob)

	var aResult A
	aPanic := callCapturingPanic(func() { aResult = a() })

	_, bErr := bJob.Wait()
	return reconcileJoin(aResult, bResult, aPanic, bErr, pool.reg)
}

// callCapturingPanic runs fn and returns a recovered panic value, if
// any, instead of letting it unwind — Join needs to inspect both
// children's outcomes before deciding which failure (if either) to
// re-raise.
func callCapturingPanic(fn func()) (recovered any) {
	defer func() {
		recovered = recover()
	}()
	fn()
	return nil
}

func reconcileJoin[A any, B any](aResult A, bResult B, aPanic any, bErr error, reg *registry.Registry) (A, B) {
	switch {
	case aPanic != nil && bErr != nil:
		reg.HandleOrphanedError(bErr)
		panic(registry.NewTaskError(fmt.Errorf("%v", aPanic)))
	case aPanic != nil:
		panic(registry.NewTaskError(fmt.Errorf("%v", aPanic)))
	case bErr != nil:
		panic(registry.NewTaskError(bErr))
	default:
		return aResult, bResult
	}
}
