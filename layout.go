package kdforest

// PersistedLayout documents the stable field order an external
// zero-copy archive format would serialize a Tree in. This package
// does not implement archive framing (out of scope); PersistedLayout
// exists so a caller building one has a single place naming the
// contract instead of reverse-engineering it from Tree's private
// fields.
//
// Logical order: a fixed header (N, L, K, B, axis type tag, stem
// ordering tag), then the stem array (aligned), then leaf_offsets,
// then one array per axis column, then the items column. Only the
// stem array's alignment requirement forces a copy on some
// deserializers; the leaf columns are otherwise zero-copy.
type PersistedLayout struct {
	Count          int
	LeafCount      int
	Dims           int
	BucketCapacity int
	AxisTypeTag    string
	StemOrdering   StemOrdering
}

// Describe returns the header a persisted archive of t would carry.
func Describe[A Axis, C Content](t *Tree[A, C]) PersistedLayout {
	var a A
	tag := "float64"
	if _, ok := any(a).(float32); ok {
		tag = "float32"
	}
	return PersistedLayout{
		Count:          t.size,
		LeafCount:      t.leafCount,
		Dims:           t.dims,
		BucketCapacity: t.bucketCap,
		AxisTypeTag:    tag,
		StemOrdering:   t.layout.ordering,
	}
}
