package kdforest

import "container/heap"

// boundedItem is one entry in a bounded max-heap: a distance paired
// with the identifier it belongs to. Grounded on the teacher's
// knnItem/knnHeap (kdtree.go), generalized to any Content type. Used by
// NearestN; BestNWithin keeps its own sibling heap (rankedMaxHeap in
// best_n_within.go) because it stores rank and distance separately.
type boundedItem[A Axis, C Content] struct {
	rank A
	id   C
}

// boundedMaxHeap is a max-heap on rank (largest on top), used as a
// fixed-capacity priority queue: once it holds k items, a new
// candidate is only kept if it beats the current worst (the root),
// which is then evicted.
type boundedMaxHeap[A Axis, C Content] []boundedItem[A, C]

func (h boundedMaxHeap[A, C]) Len() int            { return len(h) }
func (h boundedMaxHeap[A, C]) Less(i, j int) bool  { return h[i].rank > h[j].rank }
func (h boundedMaxHeap[A, C]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *boundedMaxHeap[A, C]) Push(x interface{}) { *h = append(*h, x.(boundedItem[A, C])) }
func (h *boundedMaxHeap[A, C]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// offer inserts (rank, id) into h if h has fewer than k items, or if
// rank beats the current worst item once h is full (evicting it).
func offer[A Axis, C Content](h *boundedMaxHeap[A, C], k int, rank A, id C) {
	if h.Len() < k {
		heap.Push(h, boundedItem[A, C]{rank: rank, id: id})
		return
	}
	if rank < (*h)[0].rank {
		(*h)[0] = boundedItem[A, C]{rank: rank, id: id}
		heap.Fix(h, 0)
	}
}

// worst returns the current worst (largest) rank held in h, and
// maxAxisValue() until h has reached capacity k — spec.md §4.4's
// nearest_n prune radius is unbounded while fewer than k candidates
// have been collected, not merely while h is empty, since a partially
// filled heap's worst entry is not yet a valid bound on the k-th
// nearest distance.
func worst[A Axis, C Content](h boundedMaxHeap[A, C], k int) A {
	if len(h) < k {
		return maxAxisValue[A]()
	}
	return h[0].rank
}

// sortedResults drains h into ascending-rank order without mutating
// the caller's copy of h's backing slice.
func sortedResults[A Axis, C Content](h boundedMaxHeap[A, C]) []boundedItem[A, C] {
	h = append(boundedMaxHeap[A, C](nil), h...)
	n := h.Len()
	out := make([]boundedItem[A, C], n)
	for i := n - 1; i >= 0; i-- {
		out[i] = heap.Pop(&h).(boundedItem[A, C])
	}
	return out
}
