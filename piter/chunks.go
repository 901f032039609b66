package piter

import "iter"

type chunksProducer[T any] struct {
	data []T
	size uint64
}

// Chunks splits data into consecutive, non-overlapping slices of at
// most size elements each (the final chunk may be shorter).
func Chunks[T any](data []T, size uint64) Producer[[]T] {
	if size == 0 {
		panic("piter: Chunks size must be > 0")
	}
	return chunksProducer[T]{data: data, size: size}
}

// ChunksMut is Chunks under another name, for the same reason SliceMut
// is Slice under another name: Go's slices already alias their backing
// array, so the mutable and immutable variants are identical here.
func ChunksMut[T any](data []T, size uint64) Producer[[]T] {
	return Chunks(data, size)
}

func (c chunksProducer[T]) Len() uint64 {
	n := uint64(len(c.data))
	return (n + c.size - 1) / c.size
}

func (c chunksProducer[T]) Cost(length uint64) float64 { return float64(length) * float64(c.size) }

func (c chunksProducer[T]) SplitAt(index uint64) (left, right Producer[[]T]) {
	at := index * c.size
	if at > uint64(len(c.data)) {
		at = uint64(len(c.data))
	}
	return chunksProducer[T]{data: c.data[:at], size: c.size}, chunksProducer[T]{data: c.data[at:], size: c.size}
}

func (c chunksProducer[T]) Items() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		data := c.data
		for uint64(len(data)) > 0 {
			n := c.size
			if uint64(len(data)) < n {
				n = uint64(len(data))
			}
			if !yield(data[:n]) {
				return
			}
			data = data[n:]
		}
	}
}
