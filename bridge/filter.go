package bridge

import "github.com/go-foundations/gorayon/piter"

// FilterForEach calls fn on every item of p for which pred returns
// true, possibly in parallel.
func FilterForEach[T any](p piter.Producer[T], pred func(T) bool, fn func(T)) {
	BridgeUnindexed[T, int](p, piter.Filter[T, int](pred, piter.ForEach(fn)))
}

// FilterCollect returns every item of p for which pred returns true,
// in the original order, via the cons-list-of-chunks reduction (the
// output length isn't known ahead of time, so a direct indexed write
// like CollectInto can't be used).
func FilterCollect[T any](p piter.Producer[T], pred func(T) bool) []T {
	list := BridgeUnindexed[T, *piter.ConsList[T]](p, piter.Filter[T, *piter.ConsList[T]](pred, piter.FromParIterConsumer[T]{}))
	return piter.FlattenConsList(list)
}

// FilterMapForEach calls fn on every item of p for which fn reports ok,
// possibly in parallel.
func FilterMapForEach[T any, U any](p piter.Producer[T], fn func(T) (U, bool), onEach func(U)) {
	BridgeUnindexed[T, int](p, piter.FilterMap[T, U, int](fn, piter.ForEach(onEach)))
}

// FilterMapCollect returns fn applied to every item of p for which fn
// reports ok, in the original order.
func FilterMapCollect[T any, U any](p piter.Producer[T], fn func(T) (U, bool)) []U {
	list := BridgeUnindexed[T, *piter.ConsList[U]](p, piter.FilterMap[T, U, *piter.ConsList[U]](fn, piter.FromParIterConsumer[U]{}))
	return piter.FlattenConsList(list)
}

// FlatMapForEach expands every item of p via fn and calls onEach on
// each resulting item, possibly in parallel.
func FlatMapForEach[T any, U any](p piter.Producer[T], fn func(T) []U, onEach func(U)) {
	BridgeUnindexed[T, int](p, piter.FlatMap[T, U, int](fn, piter.ForEach(onEach)))
}

// FlatMapCollect expands every item of p via fn and concatenates the
// results, in order.
func FlatMapCollect[T any, U any](p piter.Producer[T], fn func(T) []U) []U {
	list := BridgeUnindexed[T, *piter.ConsList[U]](p, piter.FlatMap[T, U, *piter.ConsList[U]](fn, piter.FromParIterConsumer[U]{}))
	return piter.FlattenConsList(list)
}

// FlattenForEach calls onEach on every element of every slice p
// produces, possibly in parallel, in the flat_map(identity) style the
// Rust source implements Flatten with.
func FlattenForEach[T any](p piter.Producer[[]T], onEach func(T)) {
	BridgeUnindexed[[]T, int](p, piter.Flatten[T, int](piter.ForEach(onEach)))
}

// FlattenCollect concatenates every slice p produces, in order.
func FlattenCollect[T any](p piter.Producer[[]T]) []T {
	list := BridgeUnindexed[[]T, *piter.ConsList[T]](p, piter.Flatten[T, *piter.ConsList[T]](piter.FromParIterConsumer[T]{}))
	return piter.FlattenConsList(list)
}
