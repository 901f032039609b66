package piter

import "iter"

// EnumPair is the (index, item) pair Enumerate yields.
type EnumPair[T any] struct {
	Index uint64
	Item  T
}

type enumerateProducer[T any] struct {
	inner  Producer[T]
	offset uint64
}

// Enumerate pairs every item of p with its position relative to the
// start of p, preserved correctly across splits by threading the
// absolute offset of each half rather than restarting from zero.
func Enumerate[T any](p Producer[T]) Producer[EnumPair[T]] {
	return enumerateProducer[T]{inner: p}
}

func (e enumerateProducer[T]) Len() uint64 { return e.inner.Len() }

func (e enumerateProducer[T]) Cost(length uint64) float64 { return e.inner.Cost(length) }

func (e enumerateProducer[T]) SplitAt(index uint64) (left, right Producer[EnumPair[T]]) {
	l, r := e.inner.SplitAt(index)
	return enumerateProducer[T]{inner: l, offset: e.offset},
		enumerateProducer[T]{inner: r, offset: e.offset + index}
}

func (e enumerateProducer[T]) Items() iter.Seq[EnumPair[T]] {
	return func(yield func(EnumPair[T]) bool) {
		i := e.offset
		for v := range e.inner.Items() {
			if !yield(EnumPair[T]{Index: i, Item: v}) {
				return
			}
			i++
		}
	}
}
