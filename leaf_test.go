package kdforest

import (
	"math/rand"
	"testing"
)

func TestLeafStore_SwapPointsKeepsColumnsInSync(t *testing.T) {
	store := newLeafStore[float64, uint32](2, 4, 1)
	pts := [][2]float64{{0, 10}, {1, 11}, {2, 12}, {3, 13}}
	for i, p := range pts {
		store.axisCols[0][i] = p[0]
		store.axisCols[1][i] = p[1]
		store.items[i] = uint32(i)
	}

	store.swapPoints(0, 3)

	if store.axisCols[0][0] != 3 || store.axisCols[1][0] != 13 || store.items[0] != 3 {
		t.Errorf("index 0 after swap = (%v, %v, %v), want (3, 13, 3)",
			store.axisCols[0][0], store.axisCols[1][0], store.items[0])
	}
	if store.axisCols[0][3] != 0 || store.axisCols[1][3] != 10 || store.items[3] != 0 {
		t.Errorf("index 3 after swap = (%v, %v, %v), want (0, 10, 0)",
			store.axisCols[0][3], store.axisCols[1][3], store.items[3])
	}
}

func TestLeafStore_Point(t *testing.T) {
	store := newLeafStore[float64, uint32](3, 2, 1)
	store.axisCols[0][1] = 7
	store.axisCols[1][1] = 8
	store.axisCols[2][1] = 9

	dst := make([]float64, 3)
	store.point(1, dst)
	want := []float64{7, 8, 9}
	for a := range want {
		if dst[a] != want[a] {
			t.Errorf("dst[%d] = %v, want %v", a, dst[a], want[a])
		}
	}
}

func TestScanLeaf_MatchesPointDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	dims, n := 3, 50
	store := newLeafStore[float64, uint32](dims, n, 1)
	store.leafOffsets[0], store.leafOffsets[1] = 0, n

	pts := make([][]float64, n)
	for i := 0; i < n; i++ {
		p := make([]float64, dims)
		for a := 0; a < dims; a++ {
			p[a] = rng.Float64() * 100
			store.axisCols[a][i] = p[a]
		}
		pts[i] = p
		store.items[i] = uint32(i)
	}

	query := []float64{50, 50, 50}
	m := SquaredEuclidean[float64]{}
	scratch := make([]float64, n)

	// Every tile width must agree with a plain PointDistance call: the
	// tile is a performance knob, never an observable change in results.
	for _, tile := range []int{1, 2, 3, 4, 5, 8, 16} {
		got := make(map[uint32]float64, n)
		store.scanLeaf(0, query, m, scratch, tile, func(d float64, id uint32) {
			got[id] = d
		})

		if len(got) != n {
			t.Fatalf("tile=%d: scanLeaf visited %d points, want %d", tile, len(got), n)
		}
		for i, p := range pts {
			want := m.PointDistance(query, p)
			if got[uint32(i)] != want {
				t.Errorf("tile=%d: point %d: scanLeaf dist = %v, want %v", tile, i, got[uint32(i)], want)
			}
		}
	}
}

func TestScanLeaf_EmptyLeaf(t *testing.T) {
	store := newLeafStore[float64, uint32](2, 0, 1)
	visited := 0
	store.scanLeaf(0, []float64{0, 0}, SquaredEuclidean[float64]{}, nil, 4, func(float64, uint32) { visited++ })
	if visited != 0 {
		t.Errorf("scanLeaf visited %d points on empty leaf, want 0", visited)
	}
}
