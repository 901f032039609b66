package piter

import "iter"

// mapProducer lazily applies fn to every item of inner. Since Map never
// changes how many items come out, it stays a pure producer transform
// rather than a consumer wrapper — no need for the unindexed machinery
// Filter and FlatMap require.
type mapProducer[T any, U any] struct {
	inner Producer[T]
	fn    func(T) U
}

// Map returns a Producer that yields fn applied to every item of p.
func Map[T any, U any](p Producer[T], fn func(T) U) Producer[U] {
	return mapProducer[T, U]{inner: p, fn: fn}
}

func (m mapProducer[T, U]) Len() uint64 { return m.inner.Len() }

func (m mapProducer[T, U]) Cost(length uint64) float64 {
	return m.inner.Cost(length) * FuncAdjustment
}

func (m mapProducer[T, U]) SplitAt(index uint64) (left, right Producer[U]) {
	l, r := m.inner.SplitAt(index)
	return mapProducer[T, U]{inner: l, fn: m.fn}, mapProducer[T, U]{inner: r, fn: m.fn}
}

func (m mapProducer[T, U]) Items() iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range m.inner.Items() {
			if !yield(m.fn(v)) {
				return
			}
		}
	}
}
