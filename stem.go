package kdforest

import "unsafe"

// stemLayout is the physical arrangement of the stem array. It answers
// exactly the questions C1 needs: given a logical tree position, which
// physical slot in the stems slice holds that node's split value.
//
// Logical tree positions always follow the plain Eytzinger convention
// (root at 1, children of i at 2i and 2i+1) regardless of physical
// layout — logical indices are what depthOf, axisOf, parentOf,
// siblingOf and descendRecurse's child arithmetic operate on. Only the
// final "read the split
// value" step goes through a layout-specific indirection, which is the
// only place Eytzinger and modified-vEB trees differ.
type stemLayout struct {
	ordering StemOrdering

	// logicalToPhys maps a logical Eytzinger index (root=1) to its
	// physical slot in the stems slice. Nil (unused) under
	// EytzingerOrdering, where the mapping is the identity and is
	// skipped rather than materialized.
	logicalToPhys []int32
}

// newEytzingerLayout returns the (trivial) identity layout.
func newEytzingerLayout() stemLayout {
	return stemLayout{ordering: EytzingerOrdering}
}

// newModifiedVanEmdeBoasLayout builds the block-grouped layout for a
// tree with leafCount leaves (stems occupy logical indices [1, leafCount)).
//
// F consecutive tree levels are packed into a physical block sized to
// one cache line's worth of A values. A block that has further blocks
// below it is followed by one unused slot; blocks at the bottom of the
// tree (including ones with fewer than F levels) are packed back to
// back with no unused slot, so those blocks are not kept within a
// single cache line. Go cannot
// express the fully branchless bit-trick child-of/leaf-to-stem-path
// arithmetic the spec's Open Question flags as fragile in a way that's
// portable across float32 and float64 instantiations, so kdforest
// precomputes the permutation once at build time and indexes through
// it — see DESIGN.md for the tradeoff.
func newModifiedVanEmdeBoasLayout[A Axis](leafCount int) stemLayout {
	stemCount := leafCount // logical indices [1, leafCount) are real; leafCount itself is one-past-the-end
	if stemCount < 2 {
		return stemLayout{ordering: ModifiedVanEmdeBoasOrdering, logicalToPhys: []int32{0, 1}}
	}

	depth := 0
	for (1 << depth) < leafCount {
		depth++
	}

	var zero A
	cachelineBytes := 64
	elemBytes := int(unsafe.Sizeof(zero))
	elemsPerLine := cachelineBytes / elemBytes
	f := 1
	for (1 << (f + 1)) <= elemsPerLine {
		f++
	}

	logicalToPhys := make([]int32, leafCount)
	vebLayoutBlock(1, depth, 1, f, logicalToPhys)

	return stemLayout{ordering: ModifiedVanEmdeBoasOrdering, logicalToPhys: logicalToPhys}
}

// vebLayoutBlock lays out the subtree logically rooted at `logical`,
// which has `levelsLeft` stem levels remaining below it (itself
// counted), starting at physical slot `physBase`. It returns the
// number of physical slots the subtree consumed.
func vebLayoutBlock(logical, levelsLeft, physBase, f int, out []int32) int {
	if levelsLeft <= 0 {
		return 0
	}

	blockLevels := f
	if levelsLeft < blockLevels {
		blockLevels = levelsLeft
	}

	frontier := []int{logical}
	physOffset := 0
	for level := 0; level < blockLevels; level++ {
		next := make([]int, 0, len(frontier)*2)
		for _, node := range frontier {
			out[node] = int32(physBase + physOffset)
			physOffset++
			next = append(next, node*2, node*2+1)
		}
		frontier = next
	}

	blockSlots := physOffset
	hasChildren := levelsLeft > blockLevels
	if hasChildren {
		blockSlots++ // one wasted slot so the next block starts on a fresh line
	}

	childPhysStart := physBase + blockSlots
	if hasChildren {
		remaining := levelsLeft - blockLevels
		for _, childLogical := range frontier {
			consumed := vebLayoutBlock(childLogical, remaining, childPhysStart, f, out)
			childPhysStart += consumed
		}
	}

	return childPhysStart - physBase
}

// physicalSlots returns the physical size of the stems array needed to
// hold every logical index in [1, leafCount).
func (l stemLayout) physicalSlots(leafCount int) int {
	if l.ordering == EytzingerOrdering {
		return leafCount
	}
	max := int32(0)
	for _, p := range l.logicalToPhys {
		if p > max {
			max = p
		}
	}
	return int(max) + 1
}

// physicalIndex returns the physical stems-slice slot for a logical
// Eytzinger index.
func (l stemLayout) physicalIndex(logical int) int {
	if l.ordering == EytzingerOrdering {
		return logical
	}
	return int(l.logicalToPhys[logical])
}

// axisOf returns the splitting axis for a stem at the given tree depth,
// round-robin over dims as spec.md's Data Model requires.
func axisOf(depth, dims int) int {
	return depth % dims
}

// depthOf returns the tree depth of a logical Eytzinger index (root=1
// is depth 0).
func depthOf(logical int) int {
	d := 0
	for logical > 1 {
		logical >>= 1
		d++
	}
	return d
}

// parentOf and siblingOf are the constant-time C1 helpers spec.md
// names explicitly; they operate on logical indices, valid regardless
// of physical stem layout.
func parentOf(logical int) int { return logical >> 1 }

func siblingOf(logical int) int { return logical ^ 1 }
