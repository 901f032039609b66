package piter

import "iter"

// Pair is the element type Zip/ZipEq produce.
type Pair[A any, B any] struct {
	First  A
	Second B
}

type zipProducer[A any, B any] struct {
	a   Producer[A]
	b   Producer[B]
	len uint64
}

// Zip pairs items from a and b positionally, stopping at the shorter
// of the two.
func Zip[A any, B any](a Producer[A], b Producer[B]) Producer[Pair[A, B]] {
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	return zipProducer[A, B]{a: a, b: b, len: n}
}

// ZipEq pairs items from a and b positionally and panics immediately if
// their lengths differ, matching the "Zip with equal lengths" contract
// named in the spec rather than silently truncating.
func ZipEq[A any, B any](a Producer[A], b Producer[B]) Producer[Pair[A, B]] {
	if a.Len() != b.Len() {
		panic("piter: ZipEq producers have different lengths")
	}
	return zipProducer[A, B]{a: a, b: b, len: a.Len()}
}

func (z zipProducer[A, B]) Len() uint64 { return z.len }

func (z zipProducer[A, B]) Cost(length uint64) float64 {
	return z.a.Cost(length) + z.b.Cost(length)
}

func (z zipProducer[A, B]) SplitAt(index uint64) (left, right Producer[Pair[A, B]]) {
	leftA, rightA := z.a.SplitAt(index)
	leftB, rightB := z.b.SplitAt(index)
	return zipProducer[A, B]{a: leftA, b: leftB, len: index},
		zipProducer[A, B]{a: rightA, b: rightB, len: z.len - index}
}

func (z zipProducer[A, B]) Items() iter.Seq[Pair[A, B]] {
	return func(yield func(Pair[A, B]) bool) {
		next, stop := iter.Pull(z.b.Items())
		defer stop()

		var n uint64
		for v := range z.a.Items() {
			if n >= z.len {
				return
			}
			w, ok := next()
			if !ok {
				return
			}
			if !yield(Pair[A, B]{First: v, Second: w}) {
				return
			}
			n++
		}
	}
}
