package piter_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/go-foundations/gorayon/bridge"
	"github.com/go-foundations/gorayon/piter"
)

// No TestMain/goleak here: every bridge.* call in this file drives the
// package-wide default pool (see sched.globalPool), whose worker
// goroutines are, by design, never torn down.

type PiterTestSuite struct {
	suite.Suite
}

func TestPiterTestSuite(t *testing.T) {
	suite.Run(t, new(PiterTestSuite))
}

func (ts *PiterTestSuite) TestMapPreservesOrder() {
	data := make([]int, 5000)
	for i := range data {
		data[i] = i
	}

	out := make([]int, len(data))
	bridge.CollectInto[int](piter.Map(piter.Slice(data), func(v int) int { return v * 2 }), out)

	for i, v := range out {
		ts.Equal(i*2, v)
	}
}

func (ts *PiterTestSuite) TestEnumerateIndicesMatchPosition() {
	data := make([]string, 4321)
	for i := range data {
		data[i] = "x"
	}

	out := make([]piter.EnumPair[string], len(data))
	bridge.CollectInto[piter.EnumPair[string]](piter.Enumerate(piter.Slice(data)), out)

	for i, pair := range out {
		ts.EqualValues(i, pair.Index)
	}
}

func (ts *PiterTestSuite) TestZipStopsAtShorterSide() {
	a := []int{1, 2, 3, 4, 5}
	b := []string{"a", "b", "c"}

	out := bridge.FromParIter[piter.Pair[int, string]](piter.Zip(piter.Slice(a), piter.Slice(b)))
	ts.Len(out, 3)

	sort.Slice(out, func(i, j int) bool { return out[i].First < out[j].First })
	ts.Equal(piter.Pair[int, string]{First: 1, Second: "a"}, out[0])
	ts.Equal(piter.Pair[int, string]{First: 3, Second: "c"}, out[2])
}

func (ts *PiterTestSuite) TestZipEqPanicsOnLengthMismatch() {
	a := []int{1, 2, 3}
	b := []int{1, 2}
	ts.Panics(func() { piter.ZipEq(piter.Slice(a), piter.Slice(b)) })
}

func (ts *PiterTestSuite) TestForEachVisitsEveryItemExactlyOnce() {
	const n = 10000
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}

	seen := make([]int32, n)
	var mu sync.Mutex
	bridge.ForEach[int](piter.Slice(data), func(v int) {
		mu.Lock()
		seen[v]++
		mu.Unlock()
	})

	for i, count := range seen {
		ts.Equal(int32(1), count, "item %d visited %d times", i, count)
	}
}

func (ts *PiterTestSuite) TestCollectIntoMatchesSourceOrder() {
	data := make([]int, 7919)
	for i := range data {
		data[i] = i * i
	}

	out := make([]int, len(data))
	bridge.CollectInto[int](piter.Slice(data), out)
	ts.Equal(data, out)
}

func (ts *PiterTestSuite) TestCollectIntoPanicsOnLengthMismatch() {
	data := []int{1, 2, 3}
	ts.Panics(func() { bridge.CollectInto[int](piter.Slice(data), make([]int, 2)) })
}

func (ts *PiterTestSuite) TestFilterKeepsOnlyMatching() {
	data := make([]int, 2000)
	for i := range data {
		data[i] = i
	}

	out := bridge.FilterCollect[int](piter.Slice(data), func(v int) bool { return v%2 == 0 })
	for _, v := range out {
		ts.Zero(v % 2)
	}
	ts.Len(out, 1000)
}

func (ts *PiterTestSuite) TestFilterMapTransformsAndFilters() {
	data := []int{1, 2, 3, 4, 5, 6}
	out := bridge.FilterMapCollect[int, int](piter.Slice(data), func(v int) (int, bool) {
		if v%2 != 0 {
			return 0, false
		}
		return v * 10, true
	})
	sort.Ints(out)
	ts.Equal([]int{20, 40, 60}, out)
}

func (ts *PiterTestSuite) TestFlattenConcatenatesInOrder() {
	groups := [][]int{{1, 2}, {3}, {}, {4, 5, 6}}
	out := bridge.FlattenCollect[int](piter.Slice(groups))
	ts.Equal([]int{1, 2, 3, 4, 5, 6}, out)
}

func (ts *PiterTestSuite) TestChunksCoversEveryElementOnce() {
	data := make([]int, 103)
	for i := range data {
		data[i] = i
	}

	var got []int
	var mu sync.Mutex
	bridge.ForEach[[]int](piter.Chunks(data, 10), func(chunk []int) {
		mu.Lock()
		got = append(got, chunk...)
		mu.Unlock()
	})
	ts.ElementsMatch(data, got)
}

func (ts *PiterTestSuite) TestWindowsProducesOverlappingSlices() {
	data := []int{1, 2, 3, 4, 5}
	p := piter.Windows(data, 2)
	ts.EqualValues(4, p.Len())

	var windows [][]int
	for w := range p.Items() {
		windows = append(windows, append([]int(nil), w...))
	}
	ts.Equal([][]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}}, windows)
}
