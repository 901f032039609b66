package deque_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"

	"github.com/go-foundations/gorayon/deque"
	"github.com/go-foundations/gorayon/job"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type DequeTestSuite struct {
	suite.Suite
}

func TestDequeTestSuite(t *testing.T) {
	suite.Run(t, new(DequeTestSuite))
}

func (ts *DequeTestSuite) TestPushPopLIFO() {
	d := deque.New()
	a := job.New(func() (any, error) { return "a", nil })
	b := job.New(func() (any, error) { return "b", nil })

	d.Push(a)
	d.Push(b)

	// b was pushed last, so it is on top; popping a specific job only
	// succeeds for the job currently at the top.
	ts.False(d.Pop(a))
	ts.True(d.Pop(b))
	ts.True(d.Pop(a))
	ts.True(d.Empty())
}

func (ts *DequeTestSuite) TestStealTakesFromBottom() {
	d := deque.New()
	a := job.New(func() (any, error) { return "a", nil })
	b := job.New(func() (any, error) { return "b", nil })
	d.Push(a) // a is at the bottom (pushed first)
	d.Push(b) // b is at the top (pushed last)

	stolen, ok := d.Steal()
	ts.True(ok)
	ts.Same(a, stolen)

	// b remains, still poppable by the owner.
	ts.True(d.Pop(b))
	ts.True(d.Empty())
}

func (ts *DequeTestSuite) TestStealOnEmptyFails() {
	d := deque.New()
	_, ok := d.Steal()
	ts.False(ok)
}

func (ts *DequeTestSuite) TestPopAfterStealFails() {
	d := deque.New()
	a := job.New(func() (any, error) { return "a", nil })
	d.Push(a)

	stolen, ok := d.Steal()
	ts.True(ok)
	ts.Same(a, stolen)

	ts.False(d.Pop(a))
}

// TestEveryJobExecutedExactlyOnce pushes many jobs, then races the
// owner's targeted pops against concurrent thieves and asserts that each job
// is claimed by exactly one side, matching invariant 2 (targeted-pop
// correctness): pop(J) succeeds iff no peer has stolen J, and J is
// executed exactly once either way.
func (ts *DequeTestSuite) TestEveryJobExecutedExactlyOnce() {
	const n = 2000
	d := deque.New()
	jobs := make([]*job.Job, n)
	for i := range jobs {
		jobs[i] = job.New(func() (any, error) { return nil, nil })
		d.Push(jobs[i])
	}

	claimed := make([]int32, n)
	var claimedMu sync.Mutex
	mark := func(i int) {
		claimedMu.Lock()
		claimed[i]++
		claimedMu.Unlock()
	}

	var wg sync.WaitGroup
	// Thieves race to steal from the bottom.
	for t := 0; t < 8; t++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				j, ok := d.Steal()
				if !ok {
					return
				}
				for i, candidate := range jobs {
					if candidate == j {
						mark(i)
						break
					}
				}
			}
		}()
	}

	// Owner pops from the top, racing the thieves for the same jobs.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := n - 1; i >= 0; i-- {
			if d.Pop(jobs[i]) {
				mark(i)
			}
		}
	}()

	wg.Wait()

	for i, count := range claimed {
		ts.Equal(int32(1), count, "job %d claimed %d times", i, count)
	}
}
