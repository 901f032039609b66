// Package job implements the type-erased unit of work (Job) and the
// one-shot completion signal (Latch) it carries. Jobs are the leaves the
// rest of the scheduler pushes, steals, and waits on; a Job created by
// Join does not outlive that Join call (a spawned Job does outlive its
// Spawn call), and its pointer identity is what the deque's targeted
// Pop compares against.
package job

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Fn is the function a Job drives to completion. Its result and error
// are captured in the Job's result slot; a panic inside Fn is recovered
// and surfaced as the Job's error instead of crashing the worker.
type Fn func() (any, error)

// Latch is a single-writer, multi-reader monotone flag. It starts
// unset; Set is idempotent; Wait blocks until set; Probe never blocks.
type Latch struct {
	mu   sync.Mutex
	cond *sync.Cond
	done bool
}

// NewLatch returns a Latch in the unset state.
func NewLatch() *Latch {
	l := &Latch{}
	l.cond = sync.NewCond(&l.mu)
	return l
}

// Set transitions the latch to set and wakes every waiter. Calling Set
// more than once has no additional effect.
func (l *Latch) Set() {
	l.mu.Lock()
	if l.done {
		l.mu.Unlock()
		return
	}
	l.done = true
	l.mu.Unlock()
	l.cond.Broadcast()
}

// Wait blocks until the latch is set.
func (l *Latch) Wait() {
	l.mu.Lock()
	for !l.done {
		l.cond.Wait()
	}
	l.mu.Unlock()
}

// Probe reports the current state without blocking.
func (l *Latch) Probe() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}

// Job is an opaque unit of work: a function, a completion latch, and a
// result/error slot. Deque linkage (prev toward the owner's top end,
// next toward the thief's bottom end) lives here too since the deque
// package manipulates it directly on the shared pointer.
type Job struct {
	ID    uuid.UUID
	fn    Fn
	latch *Latch

	result any
	err    error
	ran    atomic.Bool

	prev, next *Job
}

// New wraps fn in a Job with a fresh, unset latch.
func New(fn Fn) *Job {
	return &Job{ID: uuid.New(), fn: fn, latch: NewLatch()}
}

// Run invokes the job's function exactly once, recovering any panic and
// storing it as the job's error, then sets the latch. Invoking Run a
// second time on the same Job is an internal invariant violation and
// panics rather than silently re-running or no-op'ing.
func (j *Job) Run() {
	if !j.ran.CompareAndSwap(false, true) {
		panic("job: Run invoked twice on the same Job")
	}
	defer j.latch.Set()
	defer func() {
		if r := recover(); r != nil {
			j.err = errors.Errorf("job: panic: %v", r)
		}
	}()
	j.result, j.err = j.fn()
}

// Wait blocks until the job has run and returns its result and error.
func (j *Job) Wait() (any, error) {
	j.latch.Wait()
	return j.result, j.err
}

// Latch returns the job's completion latch.
func (j *Job) Latch() *Latch { return j.latch }

// Prev returns the neighbor toward the deque's owner (top) end.
func (j *Job) Prev() *Job { return j.prev }

// SetPrev sets the neighbor toward the deque's owner (top) end.
func (j *Job) SetPrev(p *Job) { j.prev = p }

// Next returns the neighbor toward the deque's thief (bottom) end.
func (j *Job) Next() *Job { return j.next }

// SetNext sets the neighbor toward the deque's thief (bottom) end.
func (j *Job) SetNext(n *Job) { j.next = n }
