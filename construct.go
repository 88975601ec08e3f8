package kdforest

// nextPow2 returns the smallest power of two >= n (n must be >= 1).
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// desiredQuantities computes q_j for j in [0, leafCount): distribute n
// points across leafCount leaves in standard balanced fashion, giving
// floor(n/leafCount) to each and the remainder to the left-most
// leaves, exactly as spec.md §4.3 prescribes.
func desiredQuantities(n, leafCount int) []int {
	q := make([]int, leafCount)
	base := n / leafCount
	rem := n % leafCount
	for j := range q {
		q[j] = base
		if j < rem {
			q[j]++
		}
	}
	return q
}

// buildConstruction runs the bottom-up bucket-packing constructor (C3)
// over an already-populated leafStore (columns filled with the input
// points in arbitrary order) and returns the finished stem array. It
// mutates the leafStore in place, permuting every column so that
// invariant 2 (partition correctness) holds once it returns.
func buildConstruction[A Axis, C Content](store *leafStore[A, C], dims, n, leafCount int, layout stemLayout) []A {
	quantities := desiredQuantities(n, leafCount)

	prefix := make([]int, leafCount+1)
	for j, q := range quantities {
		prefix[j+1] = prefix[j] + q
	}
	copy(store.leafOffsets, prefix)

	stems := make([]A, layout.physicalSlots(leafCount))

	if leafCount > 1 {
		c := &constructor[A, C]{store: store, dims: dims, layout: layout, stems: stems, prefix: prefix}
		c.split(1, 0, 0, leafCount)
	}

	return stems
}

// rangeMin and rangeMax scan col[lo:hi] directly; called only for the
// two degenerate splits (qLeft == 0 or qLeft == count) where no
// partitioning happens and no single index is guaranteed to already
// hold the extreme value.
func rangeMin[A Axis](col []A, lo, hi int) A {
	m := col[lo]
	for i := lo + 1; i < hi; i++ {
		if col[i] < m {
			m = col[i]
		}
	}
	return m
}

func rangeMax[A Axis](col []A, lo, hi int) A {
	m := col[lo]
	for i := lo + 1; i < hi; i++ {
		if col[i] > m {
			m = col[i]
		}
	}
	return m
}

type constructor[A Axis, C Content] struct {
	store  *leafStore[A, C]
	dims   int
	layout stemLayout
	stems  []A
	prefix []int // prefix[j] = sum of desired quantities of leaves [0, j)
}

// split partitions the point range covering leaf range [lo, hi) into
// its left and right halves, recording the split value as the stem at
// logical index `node` (depth `depth`) and recursing. This leaf range's
// points begin at index prefix[lo] of the columnar arrays; the range's
// length is always prefix[hi]-prefix[lo].
func (c *constructor[A, C]) split(node, depth, lo, hi int) {
	if hi-lo <= 1 {
		return
	}

	mid := lo + (hi-lo)/2
	c.stems[c.layout.physicalIndex(node)] = c.pivotSplit(depth, lo, mid, hi)

	c.split(node<<1, depth+1, lo, mid)
	c.split(node<<1+1, depth+1, mid, hi)
}

// pivotSplit computes the leaf range's desired split point on the
// current depth's axis, partitioning the underlying columns in place
// via selectNth (mirror partition) so that after it returns, points
// belonging to leaves [lo, mid) occupy indices [prefix[lo], prefix[mid])
// and points belonging to leaves [mid, hi) occupy the rest, and returns
// the stem value for this node.
func (c *constructor[A, C]) pivotSplit(depth, lo, mid, hi int) A {
	pointsStart := c.prefix[lo]
	pointsEnd := c.prefix[hi]
	qLeft := c.prefix[mid] - c.prefix[lo]
	count := pointsEnd - pointsStart
	axis := axisOf(depth, c.dims)

	switch {
	case count == 0:
		// Both children are empty (this whole subtree's desired
		// quantity is zero). No point ever falls on either side, so no
		// query can ever observe this stem's value; use the same
		// sentinel the stem-padding region [L, M) carries so descent
		// through it is well-defined without touching an empty range.
		return maxAxisValue[A]()
	case qLeft == 0:
		// Every point goes right; invariant 2 only requires S[i] be <=
		// every one of them, so the range minimum (not an arbitrary
		// element) is the value that satisfies it without partitioning.
		return rangeMin(c.store.axisCols[axis], pointsStart, pointsEnd)
	case qLeft == count:
		// Every point goes left; invariant 2 requires S[i] be >= every
		// one of them, so use the range maximum.
		return rangeMax(c.store.axisCols[axis], pointsStart, pointsEnd)
	default:
		selectNth(c.store, pointsStart, pointsEnd, qLeft, axis)
		return c.store.axisCols[axis][pointsStart+qLeft]
	}
}

// selectNth performs an in-place rank selection (quickselect) on
// store.axisCols[axis][lo:hi], mirrored across every other axis column
// and the items column via store.swapPoints, so that after it returns:
//
//	store.axisCols[axis][lo+i] <= store.axisCols[axis][lo+k]  for i < k
//	store.axisCols[axis][lo+i] >= store.axisCols[axis][lo+k]  for i > k
//
// This is the mirror-partition primitive spec.md §4.3 names, and its
// nth_element-style guarantee is exactly the "duplicate discipline"
// spec.md separately spells out: because the guarantee holds
// regardless of how many points share the pivot's value, no additional
// bookkeeping is required to split ties correctly — see DESIGN.md.
func selectNth[A Axis, C Content](store *leafStore[A, C], lo, hi, k, axis int) {
	col := store.axisCols[axis]
	target := lo + k
	for hi-lo > 1 {
		pivotIdx := medianOfThreeIndex(col, lo, hi-1, lo+(hi-lo)/2)
		p := partition(store, lo, hi, pivotIdx, axis)
		switch {
		case target < p:
			hi = p
		case target > p:
			lo = p + 1
		default:
			return
		}
	}
}

// medianOfThreeIndex returns whichever of a, b, c indexes the median
// value in col, used as the pivot choice to keep quickselect's expected
// running time linear on typical (non-adversarial) inputs.
func medianOfThreeIndex[A Axis](col []A, a, b, c int) int {
	av, bv, cv := col[a], col[b], col[c]
	switch {
	case (av <= bv && bv <= cv) || (cv <= bv && bv <= av):
		return b
	case (bv <= av && av <= cv) || (cv <= av && av <= bv):
		return a
	default:
		return c
	}
}

// partition performs a Lomuto-style partition of store's columns over
// [lo, hi) around the value at pivotIdx (on the given axis), mirroring
// every swap across all columns, and returns the final index of the
// pivot value.
func partition[A Axis, C Content](store *leafStore[A, C], lo, hi, pivotIdx, axis int) int {
	col := store.axisCols[axis]
	pivotVal := col[pivotIdx]
	store.swapPoints(pivotIdx, hi-1)

	store_i := lo
	for j := lo; j < hi-1; j++ {
		if col[j] < pivotVal {
			store.swapPoints(store_i, j)
			store_i++
		}
	}
	store.swapPoints(store_i, hi-1)
	return store_i
}
