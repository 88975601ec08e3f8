package kdforest

// leafStore is the columnar bucket storage described in spec.md's Data
// Model: one packed array per axis plus a content column, sharing a
// single permutation of the input points, partitioned into leaves via
// leafOffsets. Grounded on the teacher's own flat row-major `data
// []float64` plus `idxArray []int` permutation (kdtree.go), split one
// step further into separate per-axis columns so that scanLeaf can walk
// each axis contiguously instead of striding through an interleaved
// row.
type leafStore[A Axis, C Content] struct {
	dims        int
	axisCols    [][]A // axisCols[a] has length n; axisCols[a][i] is point i's coordinate a
	items       []C   // length n
	leafOffsets []int // length leafCount+1
}

func newLeafStore[A Axis, C Content](dims, n, leafCount int) *leafStore[A, C] {
	cols := make([][]A, dims)
	for a := range cols {
		cols[a] = make([]A, n)
	}
	return &leafStore[A, C]{
		dims:        dims,
		axisCols:    cols,
		items:       make([]C, n),
		leafOffsets: make([]int, leafCount+1),
	}
}

// leafRange returns the half-open [start, end) index range within the
// columnar backing arrays that belongs to leaf i.
func (s *leafStore[A, C]) leafRange(i int) (start, end int) {
	return s.leafOffsets[i], s.leafOffsets[i+1]
}

// swapPoints is the mirror-partition primitive spec.md's Constructor
// section names explicitly: it swaps the point at index i with the
// point at index j, moving every axis column and the items column in
// lockstep so that a rank-selection driven purely by one axis column
// still keeps every column describing the same set of points.
func (s *leafStore[A, C]) swapPoints(i, j int) {
	if i == j {
		return
	}
	for a := 0; a < s.dims; a++ {
		col := s.axisCols[a]
		col[i], col[j] = col[j], col[i]
	}
	s.items[i], s.items[j] = s.items[j], s.items[i]
}

// point copies the coordinates of the point at storage index i into
// dst, which must have length dims.
func (s *leafStore[A, C]) point(i int, dst []A) {
	for a := 0; a < s.dims; a++ {
		dst[a] = s.axisCols[a][i]
	}
}

// scanLeaf is C2's scan_leaf operation: it computes the metric distance
// from query to every point in leaf leafIdx and calls visit once per
// point. dists is caller-owned scratch space reused across calls so a
// query doesn't allocate per leaf; it must have length >= the tree's
// bucket capacity. tile is the lane width scanTile groups points into
// (Options.SIMDTile, resolved at build time).
func (s *leafStore[A, C]) scanLeaf(leafIdx int, query []A, m Metric[A], dists []A, tile int, visit func(dist A, item C)) {
	start, end := s.leafRange(leafIdx)
	count := end - start
	if count == 0 {
		return
	}
	scanTile(s.axisCols, start, count, s.dims, tile, query, m, dists[:count])
	for i := 0; i < count; i++ {
		visit(dists[i], s.items[start+i])
	}
}
