package kdforest

// NearestNeighbour pairs a stored point's distance from the query with
// its identifier, returned in ascending-distance order by NearestN and
// Within (WithinUnsorted returns the same type in no particular order).
type NearestNeighbour[A Axis, C Content] struct {
	Distance A
	ID       C
}

// NearestN finds the n closest stored points to query and returns them
// in ascending order of distance. If the tree holds fewer than n
// points, every stored point is returned. n must be positive.
//
// Grounded on the teacher's KDTree.knnSearch/knnHeap machinery
// (kdtree.go), reusing the shared descend skeleton (query.go) instead
// of a dedicated recursive walk.
func NearestN[A Axis, C Content](t *Tree[A, C], m Metric[A], query []A, n int) ([]NearestNeighbour[A, C], error) {
	if n <= 0 {
		return nil, ErrNonPositiveCount
	}
	if t.size == 0 {
		return nil, nil
	}

	var h boundedMaxHeap[A, C]
	scratch := t.scanScratch()

	radiusFn := func() A { return worst(h, n) }

	t.descend(m, query, radiusFn, func(leafIdx int) {
		t.leaves.scanLeaf(leafIdx, query, m, scratch, t.simdTile, func(d A, item C) {
			offer(&h, n, d, item)
		})
	})

	items := sortedResults(h)
	out := make([]NearestNeighbour[A, C], len(items))
	for i, it := range items {
		out[i] = NearestNeighbour[A, C]{Distance: it.rank, ID: it.id}
	}
	return out, nil
}
