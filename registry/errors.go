package registry

import "github.com/pkg/errors"

// ErrNumberOfThreadsZero is returned from New when Config.NumThreads is
// explicitly zero. Zero is never treated as "pick a default" at this
// layer — callers that want an automatic thread count should fill
// NumThreads themselves (see the root package's DefaultConfig).
var ErrNumberOfThreadsZero = errors.New("gorayon: num_threads must be positive, got 0")

// ErrNegativeStackSize is returned from New when Config.StackSize is
// negative. StackSize is otherwise unactionable (Go goroutines grow
// their own stack on demand), but a negative value is never a sensible
// input and is rejected rather than silently ignored.
var ErrNegativeStackSize = errors.New("gorayon: stack_size must be non-negative")

// ThreadCreationError wraps a failure encountered while starting a
// worker goroutine. Go cannot fail to spawn a goroutine the way an OS
// thread spawn can fail, so in practice this is unreachable unless a
// Config validation step below computes a negative thread count; it is
// kept for parity with the error taxonomy this pool is modeled on.
type ThreadCreationError struct {
	cause error
}

func newThreadCreationError(cause error) *ThreadCreationError {
	return &ThreadCreationError{cause: errors.WithStack(cause)}
}

func (e *ThreadCreationError) Error() string {
	return "gorayon: thread creation failed: " + e.cause.Error()
}

func (e *ThreadCreationError) Unwrap() error {
	return e.cause
}

// TaskError wraps a user task failure (an error returned from, or a
// panic recovered inside, a job's function) so it can be re-raised at
// the join or scope boundary that owns it.
type TaskError struct {
	cause error
}

// NewTaskError wraps cause, or returns nil if cause is nil.
func NewTaskError(cause error) *TaskError {
	if cause == nil {
		return nil
	}
	return &TaskError{cause: errors.WithStack(cause)}
}

func (e *TaskError) Error() string {
	return "gorayon: task failed: " + e.cause.Error()
}

func (e *TaskError) Unwrap() error {
	return e.cause
}
