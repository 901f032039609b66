package sched

import (
	"github.com/go-foundations/gorayon/job"
	"github.com/go-foundations/gorayon/registry"
)

// newVoidJob wraps a side-effecting closure (no return value) in a Job.
func newVoidJob(fn func()) *job.Job {
	return job.New(func() (any, error) {
		fn()
		return nil, nil
	})
}

// waitAndPropagate blocks until j completes and re-panics a wrapped
// TaskError if it failed — used by Install, which has no other channel
// through which to surface a task failure to its caller.
func waitAndPropagate(j *job.Job) {
	if _, err := j.Wait(); err != nil {
		panic(registry.NewTaskError(err))
	}
}
