package stats

// partition3 splits xs into the values less than, equal to, and greater
// than the pivot. The pivot itself is counted in eq. The three piles are
// freshly allocated and xs is never written to. If a not-a-number value
// is encountered the scan stops immediately and that value is returned
// with ok == false.
func partition3[T Float](pivot T, xs []T) (lt, eq, gt []T, nan T, ok bool) {
	eq = append(eq, pivot)
	for _, x := range xs {
		switch {
		case isNaN(x):
			return nil, nil, nil, x, false
		case x < pivot:
			lt = append(lt, x)
		case x > pivot:
			gt = append(gt, x)
		default:
			eq = append(eq, x)
		}
	}
	var zero T
	return lt, eq, gt, zero, true
}

func minOf[T Float](xs []T) T {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func maxOf[T Float](xs []T) T {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

// selectMedian returns the median of the original sequence, of which xs
// is the active sublist: before elements are already known to rank below
// every value in xs and after elements above. The median of the original
// sequence always lies within xs, so before + len(xs) + after equals the
// original length at every level of the recursion.
//
// The pivot is the head of the sublist, so the expected cost is linear
// and the worst case quadratic, as with classic quickselect. Each
// recursive call excludes at least the pivot, which guarantees
// termination.
func selectMedian[T Float](before int, xs []T, after int) T {
	if len(xs) == 0 {
		panic("unexpected empty sublist in median selection")
	}
	pivot := xs[0]
	if isNaN(pivot) {
		return pivot
	}
	lt, eq, gt, nan, ok := partition3(pivot, xs[1:])
	if !ok {
		return nan
	}
	numlt, numeq, numgt := len(lt), len(eq), len(gt)
	switch {
	case before+numlt > numeq+numgt+after:
		// The median ranks below the pivot and its duplicates.
		return selectMedian(before, lt, after+numeq+numgt)
	case before+numlt == numeq+numgt+after:
		// Even length, straddling the lt and eq piles.
		return Midpoint(maxOf(lt), pivot)
	case before+numlt+numeq > numgt+after:
		return pivot
	case before+numlt+numeq == numgt+after:
		// Even length, straddling the eq and gt piles.
		return Midpoint(pivot, minOf(gt))
	default:
		return selectMedian(before+numlt+numeq, gt, after)
	}
}
