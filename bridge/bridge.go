// Package bridge drives piter's producer/consumer algebra: it decides,
// at every level of a divide-and-conquer recursion, whether to split
// further or fall back to a sequential fold, and performs the split
// via sched.Join so each half runs as a stealable job. This is the
// direct Go counterpart of the Rust implementation's bridge() routine.
package bridge

import (
	"github.com/go-foundations/gorayon/piter"
	"github.com/go-foundations/gorayon/sched"
)

// Threshold is the cost above which a producer/consumer pair is split
// rather than folded sequentially. Lower values parallelize more
// eagerly at the cost of more join overhead; higher values favor
// sequential work. Mirrors the teacher's switchThreshold in spirit: a
// single tunable constant with the rationale recorded alongside it,
// here overridable via Config.SplitThreshold (process-wide, since this
// is a single package variable shared by every pool).
var Threshold float64 = 1 << 13

// Bridge runs p through c, splitting recursively via sched.Join
// whenever the combined cost of the remaining work exceeds Threshold,
// and folding sequentially otherwise.
func Bridge[T any, R any](p piter.Producer[T], c piter.Consumer[T, R]) R {
	return bridgeLen(p.Len(), p, c)
}

func bridgeLen[T any, R any](length uint64, p piter.Producer[T], c piter.Consumer[T, R]) R {
	cost := combinedCost(length, p.Cost(length), c.Cost(length))
	if length > 1 && cost > Threshold {
		mid := length / 2
		leftP, rightP := p.SplitAt(mid)
		leftC, rightC, reducer := c.SplitAt(mid)

		leftResult, rightResult := sched.Join(
			func() R { return bridgeLen(mid, leftP, leftC) },
			func() R { return bridgeLen(length-mid, rightP, rightC) },
		)
		return reducer.Reduce(leftResult, rightResult)
	}
	return foldSequentially[T, R](p, c.Fold())
}

// BridgeUnindexed is Bridge for consumers whose true output length
// isn't known until items are produced (Filter, FlatMap): the producer
// still splits by index, since its own length is always exact, but the
// consumer splits via SplitUnindexed.
func BridgeUnindexed[T any, R any](p piter.Producer[T], c piter.UnindexedConsumer[T, R]) R {
	return bridgeUnindexedLen(p.Len(), p, c)
}

func bridgeUnindexedLen[T any, R any](length uint64, p piter.Producer[T], c piter.UnindexedConsumer[T, R]) R {
	cost := combinedCost(length, p.Cost(length), c.Cost(length))
	if length > 1 && cost > Threshold {
		mid := length / 2
		leftP, rightP := p.SplitAt(mid)
		leftC, rightC, reducer := c.SplitUnindexed()

		leftResult, rightResult := sched.Join(
			func() R { return bridgeUnindexedLen(mid, leftP, leftC) },
			func() R { return bridgeUnindexedLen(length-mid, rightP, rightC) },
		)
		return reducer.Reduce(leftResult, rightResult)
	}
	return foldSequentially[T, R](p, c.Fold())
}

func combinedCost(length uint64, producerCost, consumerCost float64) float64 {
	if length <= 1 {
		return 0
	}
	return producerCost * consumerCost
}

func foldSequentially[T any, R any](p piter.Producer[T], folder piter.Folder[T, R]) R {
	for item := range p.Items() {
		if folder.Full() {
			break
		}
		folder = folder.Consume(item)
	}
	return folder.Complete()
}
