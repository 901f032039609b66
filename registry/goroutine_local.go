package registry

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// goroutineID returns a best-effort identifier for the calling
// goroutine by parsing the header line of runtime.Stack. The Go
// runtime deliberately exposes no public API for this; parsing the
// stack dump is the standard workaround the wider ecosystem reaches for
// when something genuinely needs goroutine-scoped state, which is
// exactly our situation: the spec's WorkerThread is "installed in
// thread-local storage at worker startup" so that code can ask "am I
// currently running on a worker, and if so, which one". No library in
// this module's dependency set offers goroutine-local storage, so this
// one file is intentionally a standard-library-only exception (see
// DESIGN.md).
func goroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := buf[:n]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	id, _ := strconv.ParseInt(string(b), 10, 64)
	return id
}

var workerThreads sync.Map // goroutine id (int64) -> *WorkerThread

// bindCurrentGoroutine installs wt as the WorkerThread owning the
// calling goroutine. Called once, at the top of a worker's main loop.
func bindCurrentGoroutine(wt *WorkerThread) {
	workerThreads.Store(goroutineID(), wt)
}

// CurrentWorker reports the WorkerThread that owns the calling
// goroutine, if any. Non-worker goroutines (the program's main
// goroutine, an injector) get ok == false.
func CurrentWorker() (wt *WorkerThread, ok bool) {
	v, found := workerThreads.Load(goroutineID())
	if !found {
		return nil, false
	}
	return v.(*WorkerThread), true
}
