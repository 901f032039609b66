package registry

import (
	"math/rand/v2"

	"github.com/go-foundations/gorayon/job"
)

// workerMain is the infinite loop a worker goroutine runs for the life
// of the pool: wait for injected work, else try to steal, else block.
// Grounded on the teacher's workStealingWorker, generalized from a
// one-shot per-Run() pool into a standing pool whose workers never
// exit.
func (r *Registry) workerMain(ix int) {
	wt := &WorkerThread{Registry: r, Index: ix}
	bindCurrentGoroutine(wt)

	info := r.threads[ix]
	info.primed.Set()
	r.log.WithField("worker", ix).Debug("worker primed")

	wasActive := false
	for {
		if j := r.waitForWork(ix, wasActive); j != nil {
			r.runJob(ix, j)
			wasActive = true
			continue
		}

		if j, ok := r.StealWork(ix); ok {
			r.startWorking(ix)
			r.runJob(ix, j)
			wasActive = true
			continue
		}

		wasActive = false
	}
}

// StealWork picks a random starting peer and visits every other worker
// exactly once in rotating order, returning the first successfully
// stolen job. Randomizing the start avoids every idle worker
// converging on the same victim (a convoy); the rotation itself is
// deterministic given that start, which keeps the fairness argument
// simple. Exported so a worker's wait-but-work loop inside a join can
// reuse the same scan instead of blocking idle.
func (r *Registry) StealWork(ix int) (*job.Job, bool) {
	n := len(r.threads)
	if n <= 1 {
		return nil, false
	}
	start := rand.IntN(n)
	for offset := 0; offset < n; offset++ {
		victim := (start + offset) % n
		if victim == ix {
			continue
		}
		if j, ok := r.threads[victim].Deque.Steal(); ok {
			return j, true
		}
	}
	return nil, false
}

// runJob executes j. Whoever created j — a join call waiting on its
// latch, a scope's errgroup goroutine, or Spawn's own completion
// watcher — is responsible for reading the result and deciding what to
// do with a failure; the worker loop's only job is to drive j to
// completion.
func (r *Registry) runJob(workerIx int, j *job.Job) {
	j.Run()
}
