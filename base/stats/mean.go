package stats

// Mean returns the arithmetic mean of xs. An empty slice yields the
// type's zero-over-zero result, i.e. not-a-number.
func Mean[T Float](xs []T) T {
	var sum, n T
	for _, x := range xs {
		sum += x
		n++
	}
	return sum / n
}
