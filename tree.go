package kdforest

// Tree is an immutable, construction-balanced k-dimensional tree over
// points of axis type A, each associated with a caller-supplied
// identifier of type C. A Tree is built once by Build or BuildParallel
// and is safe for unlimited concurrent readers thereafter: every query
// method takes no lock and mutates no tree state, only caller-owned
// scratch buffers.
//
// The zero Tree is not usable; always obtain one via Build or
// BuildParallel. Grounded on the teacher's own KDTree struct
// (kdtree.go), generalized from a single fixed row-major []float64
// backing array to the columnar leafStore plus separate stem array
// described in the Data Model.
type Tree[A Axis, C Content] struct {
	dims      int
	bucketCap int
	size      int
	leafCount int
	stemDepth int
	simdTile  int
	stems     []A
	layout    stemLayout
	leaves    *leafStore[A, C]
}

// Dims returns the tree's point dimensionality.
func (t *Tree[A, C]) Dims() int { return t.dims }

// Size returns the number of points stored in the tree.
func (t *Tree[A, C]) Size() int { return t.size }

// BucketCapacity returns the leaf bucket capacity the tree was built
// with.
func (t *Tree[A, C]) BucketCapacity() int { return t.bucketCap }

// Build constructs a Tree from points, a slice of equal-length
// coordinate slices, each paired positionally with the identifier in
// ids. len(points) must equal len(ids); every point must have the same
// dimensionality, which must be positive.
//
// An empty points slice produces a valid, empty Tree: every query on
// it reports no results rather than erroring, matching spec.md's edge
// case for zero input points.
func Build[A Axis, C Content](points [][]A, ids []C, opts Options) (*Tree[A, C], error) {
	store, dims, n, leafCount, stemDepth, simdTile, layout, empty, err := buildPrep[A, C](points, ids, opts)
	if err != nil {
		return nil, err
	}
	if empty != nil {
		return empty, nil
	}

	stems := buildConstruction[A, C](store, dims, n, leafCount, layout)
	return &Tree[A, C]{
		dims:      dims,
		bucketCap: opts.BucketCapacity,
		size:      n,
		leafCount: leafCount,
		stemDepth: stemDepth,
		simdTile:  simdTile,
		stems:     stems,
		layout:    layout,
		leaves:    store,
	}, nil
}

// buildPrep validates input and populates a leafStore shared by Build
// and BuildParallel, which differ only in whether buildConstruction or
// buildConstructionParallel finishes the job. When points is empty, it
// returns a ready-to-use empty Tree in empty and every other return
// value zeroed.
func buildPrep[A Axis, C Content](points [][]A, ids []C, opts Options) (store *leafStore[A, C], dims, n, leafCount, stemDepth, simdTile int, layout stemLayout, empty *Tree[A, C], err error) {
	if len(points) != len(ids) {
		return nil, 0, 0, 0, 0, 0, stemLayout{}, nil, ErrInconsistentDimension
	}

	if len(points) > 0 {
		dims = len(points[0])
	}
	if verr := opts.validate(dims); verr != nil && len(points) > 0 {
		return nil, 0, 0, 0, 0, 0, stemLayout{}, nil, verr
	}
	if len(points) == 0 {
		if verr := opts.validateCapacity(); verr != nil {
			return nil, 0, 0, 0, 0, 0, stemLayout{}, nil, verr
		}
		return nil, 0, 0, 0, 0, 0, stemLayout{}, &Tree[A, C]{
			dims:      0,
			bucketCap: opts.BucketCapacity,
			leafCount: 1,
			simdTile:  resolveSIMDTile[A](opts),
			layout:    newEytzingerLayout(),
		}, nil
	}
	for _, p := range points {
		if len(p) != dims {
			return nil, 0, 0, 0, 0, 0, stemLayout{}, nil, ErrInconsistentDimension
		}
	}

	n = len(points)
	leafCount = nextPow2(max(1, ceilDiv(n, opts.BucketCapacity)))
	simdTile = resolveSIMDTile[A](opts)

	store = newLeafStore[A, C](dims, n, leafCount)
	for a := 0; a < dims; a++ {
		col := store.axisCols[a]
		for i, p := range points {
			col[i] = p[a]
		}
	}
	copy(store.items, ids)

	stemDepth = depthOf(leafCount)

	if opts.StemOrdering == ModifiedVanEmdeBoasOrdering {
		layout = newModifiedVanEmdeBoasLayout[A](leafCount)
	} else {
		layout = newEytzingerLayout()
	}

	return store, dims, n, leafCount, stemDepth, simdTile, layout, nil, nil
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}
