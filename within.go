package kdforest

import "sort"

// Within finds every stored point whose distance from query is <=
// radius (in the metric's own units), sorted in ascending order of
// distance. An empty, non-nil slice is returned when nothing matches.
//
// Grounded on the same descend skeleton NearestN and NearestOne use,
// specialized with a fixed (non-shrinking) stopping radius, mirroring
// the teacher's own separation between a k-bounded search
// (knnSearch) and a fixed-radius one.
func Within[A Axis, C Content](t *Tree[A, C], m Metric[A], query []A, radius A) []NearestNeighbour[A, C] {
	out := WithinUnsorted(t, m, query, radius)
	sort.Slice(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out
}

// WithinUnsorted is Within without the final sort, for callers who
// only need the matching set and want to skip the O(m log m) ordering
// step.
func WithinUnsorted[A Axis, C Content](t *Tree[A, C], m Metric[A], query []A, radius A) []NearestNeighbour[A, C] {
	out := make([]NearestNeighbour[A, C], 0)
	if t.size == 0 {
		return out
	}

	scratch := t.scanScratch()
	radiusFn := func() A { return radius }

	t.descend(m, query, radiusFn, func(leafIdx int) {
		t.leaves.scanLeaf(leafIdx, query, m, scratch, t.simdTile, func(d A, item C) {
			if d <= radius {
				out = append(out, NearestNeighbour[A, C]{Distance: d, ID: item})
			}
		})
	})

	return out
}
