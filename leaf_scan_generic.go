//go:build !amd64

package kdforest

// scanTile is the portable kernel used on any architecture without a
// dedicated hand-unrolled fast path (see leaf_scan_amd64.go). It still
// honors tile (resolved from Options.SIMDTile, see types.go's
// resolveSIMDTile) by accumulating that many lanes side by side each
// pass instead of unrolling by a fixed literal amount, so the option
// changes behavior here too rather than being amd64-only. It must
// produce results identical to leaf_scan_amd64.go's kernels for every
// input; tests in leaf_test.go check both against scalar PointDistance
// calls.
func scanTile[A Axis](cols [][]A, start, count, dims, tile int, query []A, m Metric[A], distOut []A) {
	if tile < 1 {
		tile = 1
	}
	if tile > 8 {
		tile = 8
	}

	i := 0
	for ; i+tile <= count; i += tile {
		var acc [8]A
		idx := start + i
		for a := 0; a < dims; a++ {
			qa := query[a]
			col := cols[a]
			for lane := 0; lane < tile; lane++ {
				acc[lane] = m.Combine(acc[lane], m.AxisContribution(qa-col[idx+lane]))
			}
		}
		for lane := 0; lane < tile; lane++ {
			distOut[i+lane] = acc[lane]
		}
	}
	for ; i < count; i++ {
		var sum A
		idx := start + i
		for a := 0; a < dims; a++ {
			sum = m.Combine(sum, m.AxisContribution(query[a]-cols[a][idx]))
		}
		distOut[i] = sum
	}
}
