package kdforest

import "sync"

// BuildParallel is Build with construction parallelized across sibling
// subtrees near the root, for large point sets on multi-core machines.
// numWorkers sets how many top levels of the split recursion fan out:
// the first ceil(log2(numWorkers)) levels each spawn one goroutine per
// child, so up to nextPow2(numWorkers) subtrees are built concurrently;
// numWorkers <= 1 behaves exactly like Build.
//
// Grounded on the teacher's WaitGroup-plus-range-split worker pool
// pattern (parallel.go's ComputePairwiseDistancesParallel and
// friends), adapted from splitting independent row ranges of a
// distance matrix to splitting independent left/right subtrees of the
// stem recursion: once construction has split the point set into two
// halves, the two halves share no state and can be built concurrently.
func BuildParallel[A Axis, C Content](points [][]A, ids []C, opts Options, numWorkers int) (*Tree[A, C], error) {
	if numWorkers <= 1 {
		return Build[A, C](points, ids, opts)
	}

	store, dims, n, leafCount, stemDepth, simdTile, layout, empty, err := buildPrep[A, C](points, ids, opts)
	if err != nil {
		return nil, err
	}
	if empty != nil {
		return empty, nil
	}

	stems := buildConstructionParallel[A, C](store, dims, n, leafCount, layout, numWorkers)

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

// buildConstructionParallel is buildConstruction with the top levels of
// the split recursion fanned out across goroutines. The two subtrees
// produced by a split touch disjoint index ranges of every leafStore
// column (that is the partition invariant the mirror-partition step
// establishes before either half is recursed into), so no
// synchronization is needed beyond the WaitGroup that joins the fan-out
// back together.
func buildConstructionParallel[A Axis, C Content](store *leafStore[A, C], dims, n, leafCount int, layout stemLayout, numWorkers int) []A {
	quantities := desiredQuantities(n, leafCount)

	prefix := make([]int, leafCount+1)
	for j, q := range quantities {
		prefix[j+1] = prefix[j] + q
	}
	copy(store.leafOffsets, prefix)

	stems := make([]A, layout.physicalSlots(leafCount))

	if leafCount > 1 {
		c := &constructor[A, C]{store: store, dims: dims, layout: layout, stems: stems, prefix: prefix}

		fanoutDepth := 0
		for (1 << fanoutDepth) < numWorkers {
			fanoutDepth++
		}
		c.splitParallel(1, 0, 0, leafCount, fanoutDepth)
	}

	return stems
}

// splitParallel behaves exactly like split, except that for the first
// fanoutLevels of recursion it spawns the left and right recursive
// calls as separate goroutines instead of calling them sequentially.
func (c *constructor[A, C]) splitParallel(node, depth, lo, hi, fanoutLevels int) {
	if hi-lo <= 1 {
		return
	}
	if fanoutLevels <= 0 {
		c.split(node, depth, lo, hi)
		return
	}

	mid := lo + (hi-lo)/2
	c.stems[c.layout.physicalIndex(node)] = c.pivotSplit(depth, lo, mid, hi)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		c.splitParallel(node<<1, depth+1, lo, mid, fanoutLevels-1)
	}()
	go func() {
		defer wg.Done()
		c.splitParallel(node<<1+1, depth+1, mid, hi, fanoutLevels-1)
	}()
	wg.Wait()
}
