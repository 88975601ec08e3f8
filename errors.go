package kdforest

import "errors"

// Construction-time configuration errors, plus the query-time
// ErrNonPositiveCount. Every construction error is reported before any
// partitioning work begins: validate first, do no partial work.
var (
	// ErrZeroCapacity is returned when the requested bucket capacity is
	// zero.
	ErrZeroCapacity = errors.New("kdforest: bucket capacity must be nonzero")

	// ErrNonPositiveBucketCapacity is returned when the requested bucket
	// capacity is negative (zero is reported as ErrZeroCapacity).
	ErrNonPositiveBucketCapacity = errors.New("kdforest: bucket capacity must be positive")

	// ErrBucketCapacityNotPowerOfTwo is returned when the requested
	// bucket capacity is not a power of two.
	ErrBucketCapacityNotPowerOfTwo = errors.New("kdforest: bucket capacity must be a power of two")

	// ErrDimensionOutOfBounds is returned when the point dimensionality
	// is not positive.
	ErrDimensionOutOfBounds = errors.New("kdforest: dimension must be positive")

	// ErrInconsistentDimension is returned when the input points do not
	// all share the same dimensionality.
	ErrInconsistentDimension = errors.New("kdforest: all points must share the same dimensionality")

	// ErrNonPositiveCount is returned by queries that take a maximum
	// result count (NearestN, BestNWithin) when that count is <= 0.
	ErrNonPositiveCount = errors.New("kdforest: count must be positive")
)
