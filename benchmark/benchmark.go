// Package benchmark measures the selection-based median against a
// sorting baseline on freshly generated random samples.
package benchmark

import (
	"math/rand"
	"os"
	"slices"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"go.uber.org/zap"

	"example.com/sample-stats/base/stats"
	"example.com/sample-stats/base/timemath"
	"example.com/sample-stats/base/unixutil"
)

func sortedMedian(xs []float64) float64 {
	s := make([]float64, len(xs))
	copy(s, xs)
	slices.Sort(s)
	i := len(s) / 2
	if len(s)%2 != 0 {
		return s[i]
	}
	return stats.Midpoint(s[i-1], s[i])
}

// RunMedianBenchmark runs numRounds median computations over random
// slices of the given size, verifies each result against the sorting
// baseline, and prints a latency percentile distribution in
// microseconds.
func RunMedianBenchmark(log *zap.Logger, numRounds, size int) {
	if numRounds <= 0 || size <= 0 {
		panic("invalid argument: numRounds and size must be greater than 0")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	hg := hdrhistogram.New(1, 60_000_000, 5)
	ds := make([]time.Duration, 0, numRounds)
	xs := make([]float64, size)

	user0, sys0, err := unixutil.CPUTimes()
	if err != nil {
		log.Fatal("failed to read resource usage", zap.Error(err))
	}

	t0 := time.Now()
	for i := numRounds; i > 0; i-- {
		for j := range xs {
			// Coarse values so duplicate handling is exercised too.
			xs[j] = float64(rng.Intn(size/2 + 1))
		}

		t1 := time.Now()
		m, err := stats.Median(xs)
		d := time.Since(t1)

		if err != nil {
			log.Fatal("failed to compute median", zap.Error(err))
		}
		if ref := sortedMedian(xs); m != ref {
			log.Fatal("median mismatch",
				zap.Float64("selected", m), zap.Float64("sorted", ref))
		}

		err = hg.RecordValue(d.Microseconds())
		if err != nil {
			log.Fatal("failed to record histogram value", zap.Error(err))
		}
		ds = append(ds, d)
	}
	elapsed := time.Since(t0)

	user1, sys1, err := unixutil.CPUTimes()
	if err != nil {
		log.Fatal("failed to read resource usage", zap.Error(err))
	}

	hg.PercentilesPrint(os.Stdout, 1, 1.0)

	log.Info("median benchmark done",
		zap.Int("rounds", numRounds),
		zap.Int("size", size),
		zap.Duration("elapsed", elapsed),
		zap.Duration("median_latency", timemath.Median(ds)),
		zap.Duration("user_cpu", user1-user0),
		zap.Duration("sys_cpu", sys1-sys0),
	)
}
