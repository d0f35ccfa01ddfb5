package report

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestExporterPublish(t *testing.T) {
	// Gauges register against the default registry, so a single
	// exporter serves both subtests.
	e := NewExporter()

	t.Run("Summary", func(t *testing.T) {
		e.Publish(Summary{
			Count:   4,
			Min:     1,
			Max:     4,
			Mean:    2.5,
			Median:  2.5,
			Elapsed: 2 * time.Second,
		})
		if got := testutil.ToFloat64(e.sampleCount); got != 4 {
			t.Errorf("sample count gauge = %v, want 4", got)
		}
		if got := testutil.ToFloat64(e.rangeMin); got != 1 {
			t.Errorf("range min gauge = %v, want 1", got)
		}
		if got := testutil.ToFloat64(e.rangeMax); got != 4 {
			t.Errorf("range max gauge = %v, want 4", got)
		}
		if got := testutil.ToFloat64(e.mean); got != 2.5 {
			t.Errorf("mean gauge = %v, want 2.5", got)
		}
		if got := testutil.ToFloat64(e.median); got != 2.5 {
			t.Errorf("median gauge = %v, want 2.5", got)
		}
		if got := testutil.ToFloat64(e.duration); got != 2 {
			t.Errorf("duration gauge = %v, want 2", got)
		}
	})

	t.Run("PairSummary", func(t *testing.T) {
		e.PublishPairs(PairSummary{
			Count:                5,
			Covariance:           434.9,
			CovariancePopulation: 347.92,
		})
		if got := testutil.ToFloat64(e.sampleCount); got != 5 {
			t.Errorf("sample count gauge = %v, want 5", got)
		}
		if got := testutil.ToFloat64(e.covariance); got != 434.9 {
			t.Errorf("covariance gauge = %v, want 434.90", got)
		}
		if got := testutil.ToFloat64(e.covariancePopulation); got != 347.92 {
			t.Errorf("population covariance gauge = %v, want 347.92", got)
		}
	})
}
