package piter

// FilterConsumer wraps an inner UnindexedConsumer, forwarding only
// items for which Pred returns true. A predicate can discard an
// unpredictable number of items, so the underlying producer's exact
// length no longer matches what the consumer actually sees — which is
// exactly why Filter is a consumer wrapper driven via
// bridge.BridgeUnindexed rather than a producer transform driven via
// bridge.Bridge.
type FilterConsumer[T any, R any] struct {
	Pred  func(T) bool
	Inner UnindexedConsumer[T, R]
}

// Filter wraps inner so only items matching pred reach it.
func Filter[T any, R any](pred func(T) bool, inner UnindexedConsumer[T, R]) *FilterConsumer[T, R] {
	return &FilterConsumer[T, R]{Pred: pred, Inner: inner}
}

func (c *FilterConsumer[T, R]) Cost(length uint64) float64 {
	return c.Inner.Cost(length) * FuncAdjustment
}

func (c *FilterConsumer[T, R]) SplitAt(index uint64) (left, right Consumer[T, R], reducer Reducer[R]) {
	return c.SplitUnindexed()
}

func (c *FilterConsumer[T, R]) SplitUnindexed() (left, right UnindexedConsumer[T, R], reducer Reducer[R]) {
	innerLeft, innerRight, red := c.Inner.SplitUnindexed()
	return &FilterConsumer[T, R]{Pred: c.Pred, Inner: innerLeft},
		&FilterConsumer[T, R]{Pred: c.Pred, Inner: innerRight},
		red
}

func (c *FilterConsumer[T, R]) Fold() Folder[T, R] {
	return &filterFolder[T, R]{pred: c.Pred, inner: c.Inner.Fold()}
}

type filterFolder[T any, R any] struct {
	pred  func(T) bool
	inner Folder[T, R]
}

func (f *filterFolder[T, R]) Consume(item T) Folder[T, R] {
	if f.pred(item) {
		f.inner = f.inner.Consume(item)
	}
	return f
}

func (f *filterFolder[T, R]) Full() bool { return f.inner.Full() }

func (f *filterFolder[T, R]) Complete() R { return f.inner.Complete() }
