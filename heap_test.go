package kdforest

import "testing"

func TestBoundedMaxHeap_KeepsSmallestK(t *testing.T) {
	var h boundedMaxHeap[float64, uint32]
	k := 3
	values := []float64{5, 1, 9, 2, 8, 0, 7}
	for i, v := range values {
		offer(&h, k, v, uint32(i))
	}

	if h.Len() != k {
		t.Fatalf("heap len = %d, want %d", h.Len(), k)
	}

	items := sortedResults(h)
	wantRanks := []float64{0, 1, 2}
	for i, it := range items {
		if it.rank != wantRanks[i] {
			t.Errorf("items[%d].rank = %v, want %v", i, it.rank, wantRanks[i])
		}
	}
}

func TestWorst_EmptyHeapReturnsMax(t *testing.T) {
	var h boundedMaxHeap[float64, uint32]
	if w := worst(h, 2); w != maxAxisValue[float64]() {
		t.Errorf("worst(empty) = %v, want max axis value", w)
	}
}

func TestWorst_BelowCapacityReturnsMax(t *testing.T) {
	var h boundedMaxHeap[float64, uint32]
	offer(&h, 3, 5, 0)
	offer(&h, 3, 1, 1)
	if w := worst(h, 3); w != maxAxisValue[float64]() {
		t.Errorf("worst() with 2/3 slots filled = %v, want max axis value", w)
	}
}

func TestWorst_TracksHeapRootOnceFull(t *testing.T) {
	var h boundedMaxHeap[float64, uint32]
	offer(&h, 2, 5, 0)
	offer(&h, 2, 1, 1)
	if w := worst(h, 2); w != 5 {
		t.Errorf("worst() = %v, want 5", w)
	}
	offer(&h, 2, 3, 2)
	if w := worst(h, 2); w != 3 {
		t.Errorf("worst() after eviction = %v, want 3", w)
	}
}
