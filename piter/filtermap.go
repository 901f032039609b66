package piter

// FilterMapConsumer wraps an inner UnindexedConsumer of U, applying fn
// to every incoming T and forwarding only the items where fn reports
// ok. Combines what Map and Filter each do, in a single pass, for the
// common case of a closure that is naturally both a transform and a
// predicate.
type FilterMapConsumer[T any, U any, R any] struct {
	Fn    func(T) (U, bool)
	Inner UnindexedConsumer[U, R]
}

// FilterMap wraps inner so every item T is transformed by fn, and only
// forwarded when fn reports ok.
func FilterMap[T any, U any, R any](fn func(T) (U, bool), inner UnindexedConsumer[U, R]) *FilterMapConsumer[T, U, R] {
	return &FilterMapConsumer[T, U, R]{Fn: fn, Inner: inner}
}

func (c *FilterMapConsumer[T, U, R]) Cost(length uint64) float64 {
	return c.Inner.Cost(length) * FuncAdjustment
}

func (c *FilterMapConsumer[T, U, R]) SplitAt(index uint64) (left, right Consumer[T, R], reducer Reducer[R]) {
	return c.SplitUnindexed()
}

func (c *FilterMapConsumer[T, U, R]) SplitUnindexed() (left, right UnindexedConsumer[T, R], reducer Reducer[R]) {
	innerLeft, innerRight, red := c.Inner.SplitUnindexed()
	return &FilterMapConsumer[T, U, R]{Fn: c.Fn, Inner: innerLeft},
		&FilterMapConsumer[T, U, R]{Fn: c.Fn, Inner: innerRight},
		red
}

func (c *FilterMapConsumer[T, U, R]) Fold() Folder[T, R] {
	return &filterMapFolder[T, U, R]{fn: c.Fn, inner: c.Inner.Fold()}
}

type filterMapFolder[T any, U any, R any] struct {
	fn    func(T) (U, bool)
	inner Folder[U, R]
}

func (f *filterMapFolder[T, U, R]) Consume(item T) Folder[T, R] {
	if v, ok := f.fn(item); ok {
		f.inner = f.inner.Consume(v)
	}
	return f
}

func (f *filterMapFolder[T, U, R]) Full() bool { return f.inner.Full() }

func (f *filterMapFolder[T, U, R]) Complete() R { return f.inner.Complete() }
