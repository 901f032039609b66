package piter

import "iter"

type windowsProducer[T any] struct {
	data []T
	size uint64
}

// Windows yields every overlapping contiguous slice of size elements
// from data, in order: Len() elements total for a size-size slice of
// an n-element source (zero if n < size).
func Windows[T any](data []T, size uint64) Producer[[]T] {
	if size == 0 {
		panic("piter: Windows size must be > 0")
	}
	return windowsProducer[T]{data: data, size: size}
}

func (w windowsProducer[T]) Len() uint64 {
	n := uint64(len(w.data))
	if n < w.size {
		return 0
	}
	return n - w.size + 1
}

func (w windowsProducer[T]) Cost(length uint64) float64 { return float64(length) * float64(w.size) }

func (w windowsProducer[T]) SplitAt(index uint64) (left, right Producer[[]T]) {
	// The left half must retain size-1 trailing elements beyond its
	// own window count so its final window is still fully formed; the
	// right half simply starts at index, since every window from there
	// on only needs data at or after that point.
	leftEnd := index + w.size - 1
	if leftEnd > uint64(len(w.data)) {
		leftEnd = uint64(len(w.data))
	}
	return windowsProducer[T]{data: w.data[:leftEnd], size: w.size},
		windowsProducer[T]{data: w.data[index:], size: w.size}
}

func (w windowsProducer[T]) Items() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		n := w.Len()
		for i := uint64(0); i < n; i++ {
			if !yield(w.data[i : i+w.size]) {
				return
			}
		}
	}
}
