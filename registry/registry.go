// Package registry owns the fixed-size pool of workers: it spawns
// them, tracks how many are actively executing work, accepts jobs
// injected from outside the pool, and runs each worker's
// wait-then-steal main loop. It is the process-wide (or pool-scoped)
// coordination point the rest of the scheduler builds on.
package registry

import (
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/go-foundations/gorayon/deque"
	"github.com/go-foundations/gorayon/internal/rlog"
	"github.com/go-foundations/gorayon/job"
)

// Config snapshots everything a Registry needs at construction time.
// It is never mutated afterward.
type Config struct {
	// NumThreads is the number of worker goroutines to spawn. Zero is
	// rejected with ErrNumberOfThreadsZero.
	NumThreads int
	// PanicHandler, if set, is invoked whenever a task failure has
	// nowhere else to go: the second failure of a join whose children
	// both failed, or the failure of a fire-and-forget Spawn job (see
	// HandleOrphanedError). A scope re-raises only its first failure;
	// further failures in the same scope are not passed to it.
	PanicHandler func(any)
	// StackSize is accepted for interface parity with the pool this is
	// modeled on. Go goroutines grow their stacks on demand and take no
	// caller-supplied initial size, so a non-zero value is only logged,
	// never acted on; New still rejects a negative value with
	// ErrNegativeStackSize.
	StackSize int
	// Logger receives the registry's structured log output. Nil uses
	// rlog.Default().
	Logger *logrus.Logger
}

var maxProcsOnce sync.Once

// DefaultNumThreads returns runtime.GOMAXPROCS(0) after giving
// go.uber.org/automaxprocs a chance to adjust it to the container's CPU
// quota. It is exported so callers building their own Config (e.g. the
// root package's DefaultConfig) can reuse the exact same derivation.
func DefaultNumThreads(logger *logrus.Logger) int {
	log := rlog.For(logger, "automaxprocs")
	maxProcsOnce.Do(func() {
		if _, err := maxprocs.Set(maxprocs.Logger(log.Infof)); err != nil {
			log.WithError(err).Warn("failed to adjust GOMAXPROCS from cgroup quota")
		}
	})
	return runtime.GOMAXPROCS(0)
}

// ThreadInfo is the per-worker record the Registry keeps: the worker's
// own deque, plus a latch that flips once the worker has entered its
// main loop (used by WaitUntilPrimed for deterministic test setup).
type ThreadInfo struct {
	Deque  *deque.WorkerDeque
	primed *job.Latch
}

// WorkerThread is the per-worker handle installed for the duration of
// the worker's life via the goroutine-local mechanism in
// goroutine_local.go. It carries a back-pointer to the owning Registry
// and the worker's index, letting scheduler code answer "am I on a
// worker, and which one" without threading an explicit parameter
// through every call.
type WorkerThread struct {
	Registry *Registry
	Index    int
}

// Registry owns the worker pool: its threads, shared state, and
// configuration. Construct with New; there is no teardown — workers
// loop until the process exits.
type Registry struct {
	cfg     Config
	log     *logrus.Entry
	threads []*ThreadInfo

	mu            sync.Mutex
	cond          *sync.Cond
	threadsAtWork int
	injected      []*job.Job
}

// New validates cfg, spawns cfg.NumThreads worker goroutines, and
// returns once construction completes. Workers run their main loop
// asynchronously; use WaitUntilPrimed to block until every worker has
// entered it.
func New(cfg Config) (*Registry, error) {
	if cfg.NumThreads == 0 {
		return nil, ErrNumberOfThreadsZero
	}
	if cfg.NumThreads < 0 {
		return nil, newThreadCreationError(ErrNumberOfThreadsZero)
	}
	if cfg.StackSize < 0 {
		return nil, ErrNegativeStackSize
	}

	log := rlog.For(cfg.Logger, "registry")
	if cfg.StackSize > 0 {
		log.WithField("stack_size", cfg.StackSize).Debug("StackSize is accepted but not actionable on goroutines")
	}

	r := &Registry{
		cfg:     cfg,
		log:     log,
		threads: make([]*ThreadInfo, cfg.NumThreads),
	}
	r.cond = sync.NewCond(&r.mu)

	for i := range r.threads {
		r.threads[i] = &ThreadInfo{Deque: deque.New(), primed: job.NewLatch()}
	}
	for i := range r.threads {
		go r.workerMain(i)
	}

	log.WithField("num_threads", cfg.NumThreads).Info("registry started")
	return r, nil
}

// NumThreads returns the configured worker count.
func (r *Registry) NumThreads() int { return len(r.threads) }

// PanicHandler returns the configured handler, or nil.
func (r *Registry) PanicHandler() func(any) { return r.cfg.PanicHandler }

// HandleOrphanedError is the terminal sink for a task failure nobody
// else will re-raise: the losing side of a join where both children
// failed, or a fire-and-forget Spawn whose job errored. It calls the
// configured PanicHandler if set, otherwise logs at warn level.
func (r *Registry) HandleOrphanedError(err error) {
	if err == nil {
		return
	}
	if h := r.cfg.PanicHandler; h != nil {
		h(err)
		return
	}
	r.log.WithError(err).Warn("task failed with no panic handler configured")
}

// ThreadInfo returns the per-worker record for index ix.
func (r *Registry) ThreadInfo(ix int) *ThreadInfo { return r.threads[ix] }

// WaitUntilPrimed blocks until every worker has entered its main loop.
// Exposed for benchmarking/test determinism, per the spec.
func (r *Registry) WaitUntilPrimed() {
	for _, t := range r.threads {
		t.primed.Wait()
	}
}

// Inject pushes jobs into the shared injected-job queue and wakes any
// worker blocked waiting for work. The caller must not be running on a
// worker of this registry; workers push to their own deque instead.
func (r *Registry) Inject(jobs ...*job.Job) {
	r.mu.Lock()
	r.injected = append(r.injected, jobs...)
	r.mu.Unlock()
	r.cond.Broadcast()
}

// startWorking records that worker ix has acquired a job and is about
// to execute it, and wakes idle peers so they notice the new active
// thread and go looking for stolen subtasks.
func (r *Registry) startWorking(ix int) {
	r.mu.Lock()
	r.threadsAtWork++
	r.mu.Unlock()
	r.cond.Broadcast()
}

// waitForWork implements the state machine from the spec: pop an
// injected job if one is waiting; otherwise, if peers are still active,
// return nil so the caller goes looking for stolen work without holding
// this mutex; otherwise block until woken.
func (r *Registry) waitForWork(ix int, wasActive bool) *job.Job {
	r.mu.Lock()
	defer r.mu.Unlock()

	if wasActive {
		r.threadsAtWork--
	}

	for {
		if n := len(r.injected); n > 0 {
			j := r.injected[0]
			r.injected = r.injected[1:]
			r.threadsAtWork++
			r.cond.Broadcast()
			return j
		}

		if r.threadsAtWork > 0 {
			return nil
		}

		r.cond.Wait()
	}
}
