package kdforest

import "math"

// NearestOne finds the single closest stored point to query and
// returns its distance (in the metric's own units, e.g. squared for
// SquaredEuclidean) and identifier. ok is false only when the tree is
// empty.
//
// Grounded on the teacher's KDTree.knnSearch called with k=1, but
// specialized away from the heap the general case needs: a single
// running best is cheaper to maintain and to compare against.
func NearestOne[A Axis, C Content](t *Tree[A, C], m Metric[A], query []A) (dist A, id C, ok bool) {
	if t.size == 0 {
		return maxAxisValue[A](), id, false
	}

	found := false
	var bestDist A
	var bestID C
	scratch := t.scanScratch()

	radiusFn := func() A {
		if !found {
			return maxAxisValue[A]()
		}
		return bestDist
	}

	t.descend(m, query, radiusFn, func(leafIdx int) {
		t.leaves.scanLeaf(leafIdx, query, m, scratch, t.simdTile, func(d A, item C) {
			if !found || d < bestDist {
				found = true
				bestDist = d
				bestID = item
			}
		})
	})

	if !found {
		return maxAxisValue[A](), id, false
	}
	return bestDist, bestID, true
}

// maxAxisValue returns an initial "infinite" stopping radius, large
// enough that no real point distance exceeds it, used before the first
// candidate has been found.
func maxAxisValue[A Axis]() A {
	var a A
	switch any(a).(type) {
	case float32:
		return A(math.MaxFloat32)
	default:
		m := math.MaxFloat64
		return A(m)
	}
}
