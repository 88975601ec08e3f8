package kdforest

import (
	"math/rand"
	"testing"
)

func TestDesiredQuantities_Distribution(t *testing.T) {
	q := desiredQuantities(32, 8)
	want := []int{4, 4, 4, 4, 4, 4, 4, 4}
	for i, w := range want {
		if q[i] != w {
			t.Errorf("q[%d] = %d, want %d", i, q[i], w)
		}
	}

	q2 := desiredQuantities(10, 4)
	sum := 0
	for _, v := range q2 {
		sum += v
	}
	if sum != 10 {
		t.Fatalf("sum(q2) = %d, want 10", sum)
	}
	// Remainder distributed to the left-most leaves.
	if q2[0] < q2[len(q2)-1] {
		t.Errorf("remainder not distributed left-most: %v", q2)
	}
}

func TestNextPow2(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 1000: 1024}
	for in, want := range cases {
		if got := nextPow2(in); got != want {
			t.Errorf("nextPow2(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestSelectNth_Correctness(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	n := 200
	store := newLeafStore[float64, uint32](1, n, 1)
	for i := 0; i < n; i++ {
		store.axisCols[0][i] = rng.Float64() * 1000
		store.items[i] = uint32(i)
	}

	k := 73
	selectNth[float64, uint32](store, 0, n, k, 0)

	pivot := store.axisCols[0][k]
	for i := 0; i < k; i++ {
		if store.axisCols[0][i] > pivot {
			t.Fatalf("left[%d] = %v > pivot %v", i, store.axisCols[0][i], pivot)
		}
	}
	for i := k; i < n; i++ {
		if store.axisCols[0][i] < pivot {
			t.Fatalf("right[%d] = %v < pivot %v", i, store.axisCols[0][i], pivot)
		}
	}

	seen := make(map[uint32]bool, n)
	for i := 0; i < n; i++ {
		seen[store.items[i]] = true
	}
	if len(seen) != n {
		t.Errorf("items lost during partition: saw %d distinct, want %d", len(seen), n)
	}
}

// Scenario 7 (duplicate tolerance): heavy duplication along one axis
// must still build a valid, balanced tree with correct query results.
func TestDuplicateTolerance_AxisAlignedPlane(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	n := 20000
	points := make([][]float64, n)
	ids := idsFor(n)
	for i := range points {
		points[i] = []float64{rng.Float64(), rng.Float64(), 0}
	}
	tree, err := Build[float64, uint32](points, ids, DefaultOptions())
	if err != nil {
		t.Fatalf("Build error = %v", err)
	}
	if tree.Size() != n {
		t.Fatalf("Size() = %d, want %d", tree.Size(), n)
	}

	m := SquaredEuclidean[float64]{}
	query := []float64{0.5, 0.5, 0}
	radius := 0.01

	got := Within[float64, uint32](tree, m, query, radius)
	want := bruteForceWithin[float64, uint32](points, ids, m, query, radius)
	if len(got) != len(want) {
		t.Fatalf("Within count = %d, want %d", len(got), len(want))
	}
}

// Regression test: when the leaf count is rounded up to a power of two
// far beyond ceil(N/B), some deep subtrees end up with a desired
// quantity of zero on both sides (empty children), which must not
// index past the end of the columnar arrays while computing that
// stem's placeholder value.
func TestBuild_EmptySubtreesFromPowerOfTwoRounding(t *testing.T) {
	opts := DefaultOptions()
	opts.BucketCapacity = 1
	points := [][]float64{{1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}}
	tree, err := Build[float64, uint32](points, idsFor(5), opts)
	if err != nil {
		t.Fatalf("Build error = %v", err)
	}
	if tree.leafCount != 8 {
		t.Fatalf("leafCount = %d, want 8", tree.leafCount)
	}
	if tree.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", tree.Size())
	}

	m := SquaredEuclidean[float64]{}
	for _, p := range points {
		dist, _, ok := NearestOne[float64, uint32](tree, m, p)
		if !ok || dist != 0 {
			t.Errorf("NearestOne(%v) = (%v, ok=%v), want (0, true)", p, dist, ok)
		}
	}
}

func TestBuildParallel_MatchesBuild(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	n := 5000
	points := randomPoints(rng, n, 3)
	ids := idsFor(n)

	seq, err := Build[float64, uint32](points, ids, DefaultOptions())
	if err != nil {
		t.Fatalf("Build error = %v", err)
	}
	par, err := BuildParallel[float64, uint32](points, ids, DefaultOptions(), 4)
	if err != nil {
		t.Fatalf("BuildParallel error = %v", err)
	}

	m := SquaredEuclidean[float64]{}
	for q := 0; q < 30; q++ {
		query := []float64{rng.Float64()*200 - 100, rng.Float64()*200 - 100, rng.Float64()*200 - 100}
		wantDist, _, _ := NearestOne[float64, uint32](seq, m, query)
		gotDist, _, _ := NearestOne[float64, uint32](par, m, query)
		if wantDist != gotDist {
			t.Errorf("query %d: sequential dist=%v parallel dist=%v", q, wantDist, gotDist)
		}
	}
}
