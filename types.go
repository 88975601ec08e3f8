package kdforest

import (
	"runtime"
	"unsafe"
)

// Axis is the constraint on the coordinate type used along each
// dimension of a tree. Only binary floating point types are supported
// by this package; fixed-point axes are an excluded extension variant.
type Axis interface {
	~float32 | ~float64
}

// Content is the constraint on the id type a tree associates with each
// point. The tree stores only ids, never the caller's objects.
type Content interface {
	~uint32 | ~uint64
}

// StemOrdering selects the physical layout of the stem array.
type StemOrdering int

const (
	// EytzingerOrdering lays stems out with the root at index 1 and the
	// children of node i at 2i and 2i+1. This is the default: it is
	// simple, and in practice competitive with the alternative below.
	EytzingerOrdering StemOrdering = iota

	// ModifiedVanEmdeBoasOrdering groups consecutive tree levels into
	// cache-line-sized blocks to reduce the number of cache line fills
	// per root-to-leaf descent. Whether it wins over EytzingerOrdering
	// is workload dependent (see DESIGN.md); treat it as an optional
	// tuning knob, not a default.
	ModifiedVanEmdeBoasOrdering
)

// Options configures tree construction.
type Options struct {
	// BucketCapacity is the target number of points per leaf bucket.
	// Must be a power of two. Default 32.
	BucketCapacity int

	// StemOrdering selects the stem array physical layout.
	StemOrdering StemOrdering

	// SIMDTile is the lane width used when scanning leaf buckets. Zero
	// selects a width automatically based on the axis type's size and
	// the build target (see leaf_scan_amd64.go / leaf_scan_generic.go).
	SIMDTile int
}

// DefaultOptions returns the Options a caller gets by not specifying
// any: bucket capacity 32, Eytzinger stem ordering, auto SIMD tile.
func DefaultOptions() Options {
	return Options{
		BucketCapacity: 32,
		StemOrdering:   EytzingerOrdering,
		SIMDTile:       0,
	}
}

func (o Options) validate(dims int) error {
	if err := o.validateCapacity(); err != nil {
		return err
	}
	if dims <= 0 {
		return ErrDimensionOutOfBounds
	}
	return nil
}

// validateCapacity checks only the BucketCapacity field, independent
// of dimensionality. Build calls this even for an empty points slice
// (where dims cannot be determined), so a malformed capacity is still
// reported rather than silently accepted into a Tree that will never
// be queried against real data.
func (o Options) validateCapacity() error {
	if o.BucketCapacity == 0 {
		return ErrZeroCapacity
	}
	if o.BucketCapacity < 0 {
		return ErrNonPositiveBucketCapacity
	}
	if o.BucketCapacity&(o.BucketCapacity-1) != 0 {
		return ErrBucketCapacityNotPowerOfTwo
	}
	return nil
}

// defaultSIMDTile picks a lane count from the axis element size and the
// build target, mirroring the way the teacher's KD-tree substitutes a
// sane default whenever the caller passes an unusable leafSize.
func defaultSIMDTile(axisBytes int) int {
	if runtime.GOARCH == "amd64" || runtime.GOARCH == "arm64" {
		if axisBytes <= 4 {
			return 8
		}
		return 4
	}
	if axisBytes <= 4 {
		return 4
	}
	return 2
}

// resolveSIMDTile turns the caller's Options.SIMDTile (0 meaning "pick
// for me") into the concrete lane width scanTile is called with,
// consulted once at build time and cached on the Tree rather than
// re-derived on every query.
func resolveSIMDTile[A Axis](opts Options) int {
	if opts.SIMDTile > 0 {
		return opts.SIMDTile
	}
	var zero A
	return defaultSIMDTile(int(unsafe.Sizeof(zero)))
}
