package sched_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/go-foundations/gorayon/registry"
	"github.com/go-foundations/gorayon/sched"
)

// No TestMain/goleak here: every ThreadPool this package constructs is,
// by design, never torn down (spec.md §3: "no teardown in the core
// model; workers loop forever"), so its worker goroutines are expected
// to still be running when the test binary exits. goleak verification
// belongs to packages like job/deque where every goroutine a test
// starts is also expected to fully unwind.

type SchedTestSuite struct {
	suite.Suite
}

func TestSchedTestSuite(t *testing.T) {
	suite.Run(t, new(SchedTestSuite))
}

func (ts *SchedTestSuite) TestJoinReturnsBothResults() {
	a, b := sched.Join(func() int { return 1 }, func() int { return 2 })
	ts.Equal(1, a)
	ts.Equal(2, b)
}

func (ts *SchedTestSuite) TestJoinManyTimesNeverDeadlocks() {
	pool, err := sched.NewThreadPool(registry.Config{NumThreads: 4})
	ts.Require().NoError(err)

	pool.Install(func() {
		for i := 0; i < 2000; i++ {
			a, b := sched.Join(func() int { return 1 }, func() int { return 2 })
			ts.Equal(1, a)
			ts.Equal(2, b)
		}
	})
}

func (ts *SchedTestSuite) TestJoinPropagatesFirstFailure() {
	pool, err := sched.NewThreadPool(registry.Config{NumThreads: 2})
	ts.Require().NoError(err)

	ts.Panics(func() {
		pool.Install(func() {
			sched.Join(
				func() int { panic("left blew up") },
				func() int { return 2 },
			)
		})
	})
}

func (ts *SchedTestSuite) TestJoinLeftFailureAndRightFailureWrapTheSameType() {
	pool, err := sched.NewThreadPool(registry.Config{NumThreads: 2})
	ts.Require().NoError(err)

	recoverJoinPanic := func(leftFails, rightFails bool) any {
		var recovered any
		func() {
			defer func() { recovered = recover() }()
			pool.Install(func() {
				sched.Join(
					func() int {
						if leftFails {
							panic("left blew up")
						}
						return 1
					},
					func() int {
						if rightFails {
							panic("right blew up")
						}
						return 2
					},
				)
			})
		}()
		return recovered
	}

	leftPanic := recoverJoinPanic(true, false)
	rightPanic := recoverJoinPanic(false, true)

	ts.Require().NotNil(leftPanic)
	ts.Require().NotNil(rightPanic)

	var leftTaskErr, rightTaskErr *registry.TaskError
	ts.ErrorAs(leftPanic.(error), &leftTaskErr, "left-side failure must wrap to *registry.TaskError same as right-side")
	ts.ErrorAs(rightPanic.(error), &rightTaskErr, "right-side failure must wrap to *registry.TaskError")
}

func (ts *SchedTestSuite) TestJoinReportsSecondFailureToPanicHandler() {
	var handled atomic.Int64
	pool, err := sched.NewThreadPool(registry.Config{
		NumThreads:   2,
		PanicHandler: func(any) { handled.Add(1) },
	})
	ts.Require().NoError(err)

	ts.Panics(func() {
		pool.Install(func() {
			sched.Join(
				func() int { panic("left blew up") },
				func() int { panic("right blew up too") },
			)
		})
	})
	ts.EqualValues(1, handled.Load())
}

func (ts *SchedTestSuite) TestNumThreadsAndCurrentThreadIndex() {
	pool, err := sched.NewThreadPool(registry.Config{NumThreads: 22})
	ts.Require().NoError(err)
	ts.Equal(22, pool.NumThreads())

	_, ok := pool.CurrentThreadIndex()
	ts.False(ok, "must be None outside the pool")

	resultCh := make(chan int, 1)
	okCh := make(chan bool, 1)
	pool.Install(func() {
		i, ok := pool.CurrentThreadIndex()
		resultCh <- i
		okCh <- ok
	})

	ts.True(<-okCh)
	ts.Less(<-resultCh, 22)
}

func (ts *SchedTestSuite) TestScopeCompletesAllSpawnedTasks() {
	pool, err := sched.NewThreadPool(registry.Config{NumThreads: 4})
	ts.Require().NoError(err)

	const m = 100
	var count atomic.Int64
	pool.Install(func() {
		sched.ScopeIn(pool, func(s *sched.Scope) {
			for i := 0; i < m; i++ {
				s.Spawn(func() error {
					count.Add(1)
					return nil
				})
			}
		})
	})

	ts.EqualValues(m, count.Load())
}

func (ts *SchedTestSuite) TestScopePropagatesSpawnedFailure() {
	pool, err := sched.NewThreadPool(registry.Config{NumThreads: 2})
	ts.Require().NoError(err)

	ts.Panics(func() {
		sched.ScopeIn(pool, func(s *sched.Scope) {
			s.Spawn(func() error { return nil })
			s.Spawn(func() error { return errors.New("spawned task failed") })
		})
	})
}
