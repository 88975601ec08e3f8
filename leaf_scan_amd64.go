//go:build amd64

package kdforest

// scanTile computes m.PointDistance-equivalent per-point distances for
// count points starting at column offset `start`, writing results into
// distOut[0:count]. tile (resolved from Options.SIMDTile at build time,
// see types.go's resolveSIMDTile) picks which manually unrolled kernel
// runs: unrolling by a fixed literal width gives the compiler a
// fixed-width, alias-free shape to auto-vectorize — spec.md is explicit
// that hand-written SIMD intrinsics are out of scope for this core and
// that a correct scalar implementation must pass every test; this is
// the "shape contract" accelerator spec.md allows, grounded on the same
// build-tag-gated-kernel pattern the pack's cilium-statedb ART tree
// uses to pick a platform-specific fast path (simd_fallback.go /
// simd_scalar.go) while keeping a portable fallback
// (leaf_scan_generic.go) that must produce identical answers.
func scanTile[A Axis](cols [][]A, start, count, dims, tile int, query []A, m Metric[A], distOut []A) {
	switch {
	case tile >= 8:
		scanTile8(cols, start, count, dims, query, m, distOut)
	case tile >= 4:
		scanTile4(cols, start, count, dims, query, m, distOut)
	default:
		scanTileScalar(cols, start, count, dims, query, m, distOut)
	}
}

// scanTileScalar handles both the tile<4 case and the remainder left
// over after scanTile4's main unrolled loop (scanTile8 hands its own
// remainder to scanTile4).
func scanTileScalar[A Axis](cols [][]A, start, count, dims int, query []A, m Metric[A], distOut []A) {
	for i := 0; i < count; i++ {
		var sum A
		idx := start + i
		for a := 0; a < dims; a++ {
			sum = m.Combine(sum, m.AxisContribution(query[a]-cols[a][idx]))
		}
		distOut[i] = sum
	}
}

func scanTile4[A Axis](cols [][]A, start, count, dims int, query []A, m Metric[A], distOut []A) {
	i := 0
	for ; i+4 <= count; i += 4 {
		var s0, s1, s2, s3 A
		idx := start + i
		for a := 0; a < dims; a++ {
			qa := query[a]
			col := cols[a]
			s0 = m.Combine(s0, m.AxisContribution(qa-col[idx]))
			s1 = m.Combine(s1, m.AxisContribution(qa-col[idx+1]))
			s2 = m.Combine(s2, m.AxisContribution(qa-col[idx+2]))
			s3 = m.Combine(s3, m.AxisContribution(qa-col[idx+3]))
		}
		distOut[i], distOut[i+1], distOut[i+2], distOut[i+3] = s0, s1, s2, s3
	}
	scanTileScalar(cols, start+i, count-i, dims, query, m, distOut[i:])
}

func scanTile8[A Axis](cols [][]A, start, count, dims int, query []A, m Metric[A], distOut []A) {
	i := 0
	for ; i+8 <= count; i += 8 {
		var s0, s1, s2, s3, s4, s5, s6, s7 A
		idx := start + i
		for a := 0; a < dims; a++ {
			qa := query[a]
			col := cols[a]
			s0 = m.Combine(s0, m.AxisContribution(qa-col[idx]))
			s1 = m.Combine(s1, m.AxisContribution(qa-col[idx+1]))
			s2 = m.Combine(s2, m.AxisContribution(qa-col[idx+2]))
			s3 = m.Combine(s3, m.AxisContribution(qa-col[idx+3]))
			s4 = m.Combine(s4, m.AxisContribution(qa-col[idx+4]))
			s5 = m.Combine(s5, m.AxisContribution(qa-col[idx+5]))
			s6 = m.Combine(s6, m.AxisContribution(qa-col[idx+6]))
			s7 = m.Combine(s7, m.AxisContribution(qa-col[idx+7]))
		}
		distOut[i], distOut[i+1], distOut[i+2], distOut[i+3] = s0, s1, s2, s3
		distOut[i+4], distOut[i+5], distOut[i+6], distOut[i+7] = s4, s5, s6, s7
	}
	scanTile4(cols, start+i, count-i, dims, query, m, distOut[i:])
}
