package stats

import (
	"errors"
	"slices"
)

// ErrEmptyInput is returned by operations that need at least one sample.
var ErrEmptyInput = errors.New("empty input")

// Median returns the exact median of xs: the middle value for odd
// lengths, the midpoint of the two central values for even lengths. It
// is computed by selection, without sorting, and xs is left untouched.
// A single not-a-number sample anywhere in xs makes the result
// not-a-number.
func Median[T Float](xs []T) (T, error) {
	if len(xs) == 0 {
		var zero T
		return zero, ErrEmptyInput
	}
	return selectMedian(0, xs, 0), nil
}

// FaultTolerantMidpoint returns the midpoint of the f-th smallest and
// f-th largest samples, f = (len(xs)-1)/3, discarding up to f extreme
// values on each side.
func FaultTolerantMidpoint[T Float](xs []T) (T, error) {
	if len(xs) == 0 {
		var zero T
		return zero, ErrEmptyInput
	}
	s := make([]T, len(xs))
	copy(s, xs)
	slices.Sort(s)
	f := (len(s) - 1) / 3
	return Midpoint(s[f], s[len(s)-1-f]), nil
}
