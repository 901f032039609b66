// Package deque implements the per-worker task store: a doubly linked
// list of *job.Job with two ends. The owning worker pushes and pops at
// the top end (LIFO, for cache locality on the most recently created
// subtask); any other worker steals from the bottom end (FIFO, so the
// oldest, usually largest, subtasks are the ones that migrate). Both
// ends share a single mutex, which is the deliberate, simple choice
// called for by the spec over a lock-free Chase-Lev ring buffer: it
// trades a little contention for a targeted-pop contract that is easy
// to reason about.
package deque

import (
	"sync"

	"github.com/go-foundations/gorayon/job"
)

// WorkerDeque is the task store owned by a single worker. The zero
// value is not usable; construct with New.
type WorkerDeque struct {
	mu     sync.Mutex
	top    *job.Job // owner end
	bottom *job.Job // thief end
}

// New returns an empty deque.
func New() *WorkerDeque {
	return &WorkerDeque{}
}

// Push inserts j at the top end. Only the owning worker may call Push.
func (d *WorkerDeque) Push(j *job.Job) {
	d.mu.Lock()
	defer d.mu.Unlock()

	j.SetPrev(nil)
	j.SetNext(d.top)
	if d.top != nil {
		d.top.SetPrev(j)
	}
	d.top = j
	if d.bottom == nil {
		d.bottom = j
	}
}

// Pop removes j from the top end, but only if j is still the top job —
// i.e. no other worker has stolen it out from under its owner. Only the
// owning worker may call Pop, and only with a job it itself pushed.
func (d *WorkerDeque) Pop(j *job.Job) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.top != j {
		return false
	}
	d.top = j.Next()
	if d.top != nil {
		d.top.SetPrev(nil)
	} else {
		d.bottom = nil
	}
	j.SetPrev(nil)
	j.SetNext(nil)
	return true
}

// Steal removes and returns the job at the bottom end. Any worker other
// than the owner may call Steal.
func (d *WorkerDeque) Steal() (*job.Job, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.bottom == nil {
		return nil, false
	}
	victim := d.bottom
	d.bottom = victim.Prev()
	if d.bottom != nil {
		d.bottom.SetNext(nil)
	} else {
		d.top = nil
	}
	victim.SetPrev(nil)
	victim.SetNext(nil)
	return victim, true
}

// Empty reports whether the deque currently holds no jobs. It is a
// snapshot; by the time the caller acts on it, the answer may be stale.
func (d *WorkerDeque) Empty() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.top == nil
}
