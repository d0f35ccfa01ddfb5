// Package stats provides exact descriptive statistics over slices of
// floating-point samples: range, mean, median, and covariance.
//
// The median is computed by selection (recursive three-way partitioning)
// rather than by sorting. None of the operations mutate or retain the
// caller's slices.
package stats

// Float is the set of sample types the package operates on. The
// not-a-number check relies on IEEE 754 semantics (x != x), so the type
// set is restricted to floating-point kinds.
type Float interface {
	~float32 | ~float64
}

func isNaN[T Float](x T) bool {
	return x != x
}

// Midpoint returns the value halfway between x and y.
func Midpoint[T Float](x, y T) T {
	return x + (y-x)/2
}
