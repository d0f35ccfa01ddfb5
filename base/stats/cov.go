package stats

import "errors"

// ErrSizeMismatch is returned when paired sequences differ in length.
var ErrSizeMismatch = errors.New("sequences must have the same length")

// A Pair is one paired observation.
type Pair[T Float] struct {
	X, Y T
}

// Unzip splits paired observations into their two coordinate slices.
func Unzip[T Float](ps []Pair[T]) (xs, ys []T) {
	xs = make([]T, len(ps))
	ys = make([]T, len(ps))
	for i, p := range ps {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

func covariance[T Float](xs, ys []T, denom T) (T, error) {
	if len(xs) != len(ys) {
		var zero T
		return zero, ErrSizeMismatch
	}
	if len(xs) == 0 {
		// Zero over zero, not-a-number for both variants.
		var zero T
		return zero / zero, nil
	}
	mx := Mean(xs)
	my := Mean(ys)
	var sum T
	for i := range xs {
		sum += (xs[i] - mx) * (ys[i] - my)
	}
	// A not-a-number observation on either side poisons both means.
	return sum / denom, nil
}

// Covariance returns the sample covariance of the paired samples xs and
// ys, dividing by N-1 (Bessel's correction).
func Covariance[T Float](xs, ys []T) (T, error) {
	return covariance(xs, ys, T(len(xs))-1)
}

// CovariancePopulation returns the population covariance of the paired
// samples xs and ys, dividing by N.
func CovariancePopulation[T Float](xs, ys []T) (T, error) {
	return covariance(xs, ys, T(len(xs)))
}

// CovariancePairs is Covariance over a slice of pairs.
func CovariancePairs[T Float](ps []Pair[T]) (T, error) {
	xs, ys := Unzip(ps)
	return Covariance(xs, ys)
}

// CovariancePopulationPairs is CovariancePopulation over a slice of pairs.
func CovariancePopulationPairs[T Float](ps []Pair[T]) (T, error) {
	xs, ys := Unzip(ps)
	return CovariancePopulation(xs, ys)
}

func pairsOf[E any, T Float](es []E, f func(E) Pair[T]) []Pair[T] {
	ps := make([]Pair[T], len(es))
	for i, e := range es {
		ps[i] = f(e)
	}
	return ps
}

// CovarianceFunc projects each element of es to a pair and returns the
// sample covariance of the projections.
func CovarianceFunc[E any, T Float](es []E, f func(E) Pair[T]) (T, error) {
	return CovariancePairs(pairsOf(es, f))
}

// CovariancePopulationFunc projects each element of es to a pair and
// returns the population covariance of the projections.
func CovariancePopulationFunc[E any, T Float](es []E, f func(E) Pair[T]) (T, error) {
	return CovariancePopulationPairs(pairsOf(es, f))
}
