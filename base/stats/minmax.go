package stats

// An Interval is a closed range of sample values.
type Interval[T Float] struct {
	Min, Max T
}

// Range returns the smallest interval containing every sample in xs.
// The second return value is false when xs is empty.
func Range[T Float](xs []T) (Interval[T], bool) {
	if len(xs) == 0 {
		return Interval[T]{}, false
	}
	iv := Interval[T]{Min: xs[0], Max: xs[0]}
	for _, x := range xs[1:] {
		if x < iv.Min {
			iv.Min = x
		}
		if x > iv.Max {
			iv.Max = x
		}
	}
	return iv, true
}
