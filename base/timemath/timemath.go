package timemath

import (
	"slices"
	"time"

	"example.com/sample-stats/base/stats"
)

func Duration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

func Seconds(d time.Duration) float64 {
	return float64(d) / float64(time.Second)
}

func Midpoint(x, y time.Duration) time.Duration {
	return x + (y-x)/2
}

// Median returns the median duration, computed by selection over the
// values in nanoseconds. Durations up to 2^53 nanoseconds (about 104
// days) are handled exactly. It panics when ds is empty.
func Median(ds []time.Duration) time.Duration {
	fs := make([]float64, len(ds))
	for i, d := range ds {
		fs[i] = float64(d)
	}
	m, err := stats.Median(fs)
	if err != nil {
		panic("unexpected number of values")
	}
	return time.Duration(m)
}

// FaultTolerantMidpoint returns the midpoint of the f-th smallest and
// f-th largest durations, f = (len(ds)-1)/3. It panics when ds is empty.
func FaultTolerantMidpoint(ds []time.Duration) time.Duration {
	n := len(ds)
	if n == 0 {
		panic("unexpected number of values")
	}
	s := make([]time.Duration, n)
	copy(s, ds)
	slices.Sort(s)
	f := (n - 1) / 3
	return Midpoint(s[f], s[n-1-f])
}
