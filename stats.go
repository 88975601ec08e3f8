package kdforest

import "gonum.org/v1/gonum/stat"

// AxisStats summarizes one axis' coordinate distribution across every
// point stored in a tree.
type AxisStats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Stats computes per-axis descriptive statistics over every stored
// point. It is an O(n) pass independent of tree structure, provided as
// a diagnostic for callers tuning bucket capacity or stem ordering
// against the shape of their data.
//
// The teacher's go.mod already carried gonum as an indirect
// dependency (pulled in transitively but never imported directly);
// this promotes it to a direct one, using stat.MeanStdDev (a corrected
// two-pass mean/variance computation) rather than hand-rolling an
// accumulator.
func Stats[A Axis, C Content](t *Tree[A, C]) []AxisStats {
	out := make([]AxisStats, t.dims)
	if t.size == 0 {
		return out
	}

	values := make([]float64, t.size)
	for a := 0; a < t.dims; a++ {
		col := t.leaves.axisCols[a]
		minV, maxV := float64(col[0]), float64(col[0])
		for i, v := range col {
			fv := float64(v)
			values[i] = fv
			if fv < minV {
				minV = fv
			}
			if fv > maxV {
				maxV = fv
			}
		}
		mean, std := stat.MeanStdDev(values, nil)
		out[a] = AxisStats{Mean: mean, StdDev: std, Min: minV, Max: maxV}
	}
	return out
}
