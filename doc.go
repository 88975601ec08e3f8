// Package kdforest implements an immutable, construction-balanced k-d
// tree for nearest-neighbour search over low-to-moderate dimensional
// (2-4 typical, up to ~16 supported) floating point points.
//
// Trees are built once from a slice of points via Build (or
// BuildParallel for large inputs) and are then read-only: every query
// function is a pure function of the tree and is safe to call from any
// number of goroutines concurrently without synchronization.
//
// Basic usage:
//
//	points := [][]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
//	ids := []uint32{0, 1, 2, 3}
//	tree, err := kdforest.Build(points, ids, kdforest.DefaultOptions())
//	metric := kdforest.SquaredEuclidean[float64]{}
//	dist, id, ok := kdforest.NearestOne(tree, metric, []float64{0, 0})
//	// dist == 0, id == 0, ok == true
//
// The tree stores only content ids (the second type parameter) and
// leaves interpretation of those ids to the caller; it never stores or
// owns the caller's objects.
package kdforest
