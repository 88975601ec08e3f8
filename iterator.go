package kdforest

// Iterator walks every stored point in leaf order. It is restartable
// via Reset and safe to use concurrently with queries (it never
// mutates tree state), but a single Iterator value must not be shared
// across goroutines.
type Iterator[A Axis, C Content] struct {
	tree *Tree[A, C]
	pos  int
	pt   []A
}

// Iter returns a fresh Iterator positioned before the first point.
func (t *Tree[A, C]) Iter() *Iterator[A, C] {
	return &Iterator[A, C]{tree: t, pos: 0, pt: make([]A, t.dims)}
}

// Reset repositions it before the first point.
func (it *Iterator[A, C]) Reset() { it.pos = 0 }

// Next advances the iterator and reports whether a point is now
// available via Point/ID. Point and ID are undefined once Next returns
// false.
func (it *Iterator[A, C]) Next() bool {
	if it.pos >= it.tree.size {
		return false
	}
	it.tree.leaves.point(it.pos, it.pt)
	it.pos++
	return true
}

// Point returns the current point's coordinates. The returned slice is
// owned by the Iterator and is overwritten by the next call to Next.
func (it *Iterator[A, C]) Point() []A { return it.pt }

// ID returns the current point's identifier.
func (it *Iterator[A, C]) ID() C { return it.tree.leaves.items[it.pos-1] }

// All returns an iterator function suitable for a range-over-func loop,
// yielding each stored point's coordinates and identifier in leaf
// order.
func (t *Tree[A, C]) All() func(yield func([]A, C) bool) {
	return func(yield func([]A, C) bool) {
		pt := make([]A, t.dims)
		for i := 0; i < t.size; i++ {
			t.leaves.point(i, pt)
			if !yield(pt, t.leaves.items[i]) {
				return
			}
		}
	}
}
