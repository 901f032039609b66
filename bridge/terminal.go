package bridge

import "github.com/go-foundations/gorayon/piter"

// ForEach drives fn against every item p produces, possibly in
// parallel, and blocks until all of them have run.
func ForEach[T any](p piter.Producer[T], fn func(T)) {
	Bridge[T, int](p, piter.ForEach(fn))
}

// CollectInto drives p into dest, which must be exactly as long as
// p.Len(). Each leaf of the recursion writes into a disjoint slice of
// dest, so the result needs no further copying.
func CollectInto[T any](p piter.Producer[T], dest []T) {
	if uint64(len(dest)) != p.Len() {
		panic("bridge: CollectInto destination length does not match producer length")
	}
	Bridge[T, int](p, piter.CollectInto(dest))
}

// FromParIter drives p into a freshly allocated slice, via the
// cons-list-of-chunks reduction: every leaf of the recursion builds its
// own chunk independently, joins link chunk lists together without
// copying items, and a single sequential pass flattens the result at
// the end.
func FromParIter[T any](p piter.Producer[T]) []T {
	list := Bridge[T, *piter.ConsList[T]](p, piter.FromParIterConsumer[T]{})
	return piter.FlattenConsList(list)
}
