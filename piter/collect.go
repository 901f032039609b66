package piter

// CountReducer reduces two item counts by summing them. It is the
// Reducer used by every indexed consumer whose Result is just "how
// many items did I handle", which both CollectConsumer and ForEach use.
type CountReducer struct{}

func (CountReducer) Reduce(left, right int) int { return left + right }

// CollectConsumer writes items directly into a pre-sized destination
// slice at the offset matching wherever the driving producer split to
// reach it, so every leaf writes into disjoint, already-allocated
// space. There is no Rust-style raw-pointer-into-uninitialized-memory
// hazard here: Target is a normal Go slice the caller sized up front,
// so every index is always valid to write, panic or not.
type CollectConsumer[T any] struct {
	Target []T
	Offset uint64
}

// CollectInto returns a Consumer that writes its items into dest,
// starting at index 0. dest must be exactly as long as the producer it
// will be bridged against.
func CollectInto[T any](dest []T) *CollectConsumer[T] {
	return &CollectConsumer[T]{Target: dest}
}

func (c *CollectConsumer[T]) Cost(length uint64) float64 { return float64(length) }

func (c *CollectConsumer[T]) SplitAt(index uint64) (left, right Consumer[T, int], reducer Reducer[int]) {
	return &CollectConsumer[T]{Target: c.Target, Offset: c.Offset},
		&CollectConsumer[T]{Target: c.Target, Offset: c.Offset + index},
		CountReducer{}
}

func (c *CollectConsumer[T]) Fold() Folder[T, int] {
	return &collectFolder[T]{target: c.Target, offset: c.Offset}
}

type collectFolder[T any] struct {
	target []T
	offset uint64
	count  uint64
}

func (f *collectFolder[T]) Consume(item T) Folder[T, int] {
	f.target[f.offset+f.count] = item
	f.count++
	return f
}

func (f *collectFolder[T]) Full() bool { return false }

func (f *collectFolder[T]) Complete() int { return int(f.count) }

// ConsList is the cons-list-of-chunks shape FromParIter reduces into:
// every leaf of the recursion produces a one-element list holding its
// own items, and every join concatenates two lists by relinking nodes
// (walking the left list to its tail, never copying items), deferring
// the actual flattening to a single sequential pass at the end.
// Grounded on the Vec/LinkedList FromParallelIterator strategy: build
// small pieces independently, concatenate the structure (not the
// data) in parallel, flatten once.
type ConsList[T any] struct {
	Chunk []T
	Next  *ConsList[T]
}

// ConsListReducer concatenates two ConsLists by linking the left
// list's tail to the right list's head.
type ConsListReducer[T any] struct{}

func (ConsListReducer[T]) Reduce(left, right *ConsList[T]) *ConsList[T] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	tail := left
	for tail.Next != nil {
		tail = tail.Next
	}
	tail.Next = right
	return left
}

// FromParIterConsumer accumulates every item it sees into a single
// Chunk, and reduces by linking those chunks together. FlattenConsList
// walks the resulting list once, sequentially, into a plain slice.
type FromParIterConsumer[T any] struct{}

func (FromParIterConsumer[T]) Cost(length uint64) float64 { return float64(length) }

func (FromParIterConsumer[T]) SplitAt(index uint64) (left, right Consumer[T, *ConsList[T]], reducer Reducer[*ConsList[T]]) {
	return FromParIterConsumer[T]{}, FromParIterConsumer[T]{}, ConsListReducer[T]{}
}

func (FromParIterConsumer[T]) SplitUnindexed() (left, right UnindexedConsumer[T, *ConsList[T]], reducer Reducer[*ConsList[T]]) {
	return FromParIterConsumer[T]{}, FromParIterConsumer[T]{}, ConsListReducer[T]{}
}

func (FromParIterConsumer[T]) Fold() Folder[T, *ConsList[T]] {
	return &fromParIterFolder[T]{}
}

type fromParIterFolder[T any] struct {
	chunk []T
}

func (f *fromParIterFolder[T]) Consume(item T) Folder[T, *ConsList[T]] {
	f.chunk = append(f.chunk, item)
	return f
}

func (f *fromParIterFolder[T]) Full() bool { return false }

func (f *fromParIterFolder[T]) Complete() *ConsList[T] {
	if len(f.chunk) == 0 {
		return nil
	}
	return &ConsList[T]{Chunk: f.chunk}
}

// FlattenConsList walks a ConsList sequentially and appends every
// chunk, in order, to a single slice. Named apart from the Flatten
// iterator adapter, which is an unrelated producer/consumer pair.
func FlattenConsList[T any](list *ConsList[T]) []T {
	var out []T
	for node := list; node != nil; node = node.Next {
		out = append(out, node.Chunk...)
	}
	return out
}
