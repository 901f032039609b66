package piter

// FlatMapConsumer wraps an inner UnindexedConsumer of U, expanding
// every incoming T into zero or more Us via fn and forwarding each one
// in turn. Flatten is the special case where T is already []U and fn
// is the identity.
type FlatMapConsumer[T any, U any, R any] struct {
	Fn    func(T) []U
	Inner UnindexedConsumer[U, R]
}

// FlatMap wraps inner so every item T expands via fn into zero or more
// items forwarded to inner.
func FlatMap[T any, U any, R any](fn func(T) []U, inner UnindexedConsumer[U, R]) *FlatMapConsumer[T, U, R] {
	return &FlatMapConsumer[T, U, R]{Fn: fn, Inner: inner}
}

// Flatten wraps inner, a consumer of U, into one accepting T = []U,
// forwarding every element of every incoming slice in order. Grounded
// on flat_map(identity) being how the Rust source expresses Flatten.
func Flatten[T any, R any](inner UnindexedConsumer[T, R]) *FlatMapConsumer[[]T, T, R] {
	return FlatMap(func(s []T) []T { return s }, inner)
}

func (c *FlatMapConsumer[T, U, R]) Cost(length uint64) float64 {
	return c.Inner.Cost(length) * FuncAdjustment
}

func (c *FlatMapConsumer[T, U, R]) SplitAt(index uint64) (left, right Consumer[T, R], reducer Reducer[R]) {
	return c.SplitUnindexed()
}

func (c *FlatMapConsumer[T, U, R]) SplitUnindexed() (left, right UnindexedConsumer[T, R], reducer Reducer[R]) {
	innerLeft, innerRight, red := c.Inner.SplitUnindexed()
	return &FlatMapConsumer[T, U, R]{Fn: c.Fn, Inner: innerLeft},
		&FlatMapConsumer[T, U, R]{Fn: c.Fn, Inner: innerRight},
		red
}

func (c *FlatMapConsumer[T, U, R]) Fold() Folder[T, R] {
	return &flatMapFolder[T, U, R]{fn: c.Fn, inner: c.Inner.Fold()}
}

type flatMapFolder[T any, U any, R any] struct {
	fn    func(T) []U
	inner Folder[U, R]
}

func (f *flatMapFolder[T, U, R]) Consume(item T) Folder[T, R] {
	for _, v := range f.fn(item) {
		f.inner = f.inner.Consume(v)
		if f.inner.Full() {
			break
		}
	}
	return f
}

func (f *flatMapFolder[T, U, R]) Full() bool { return f.inner.Full() }

func (f *flatMapFolder[T, U, R]) Complete() R { return f.inner.Complete() }
