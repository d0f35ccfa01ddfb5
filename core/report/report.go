// Package report computes descriptive summaries over loaded samples and
// exposes them as Prometheus gauges.
package report

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"example.com/sample-stats/base/metrics"
	"example.com/sample-stats/base/stats"
)

// A Summary holds the descriptive statistics of one sample sequence.
type Summary struct {
	Count   int
	Min     float64
	Max     float64
	Mean    float64
	Median  float64
	Elapsed time.Duration
}

// A PairSummary holds the per-side summaries and covariance of one
// paired sample sequence.
type PairSummary struct {
	Count                int
	X, Y                 Summary
	Covariance           float64
	CovariancePopulation float64
	Elapsed              time.Duration
}

// Summarize computes the summary of xs. It fails on empty input.
func Summarize(xs []float64) (Summary, error) {
	t0 := time.Now()
	md, err := stats.Median(xs)
	if err != nil {
		return Summary{}, err
	}
	iv, _ := stats.Range(xs)
	s := Summary{
		Count:  len(xs),
		Min:    iv.Min,
		Max:    iv.Max,
		Mean:   stats.Mean(xs),
		Median: md,
	}
	s.Elapsed = time.Since(t0)
	return s, nil
}

// SummarizePairs computes per-side summaries and both covariance
// variants of ps. It fails on empty input.
func SummarizePairs(ps []stats.Pair[float64]) (PairSummary, error) {
	t0 := time.Now()
	xs, ys := stats.Unzip(ps)
	sx, err := Summarize(xs)
	if err != nil {
		return PairSummary{}, err
	}
	sy, err := Summarize(ys)
	if err != nil {
		return PairSummary{}, err
	}
	cov, err := stats.Covariance(xs, ys)
	if err != nil {
		return PairSummary{}, err
	}
	covp, err := stats.CovariancePopulation(xs, ys)
	if err != nil {
		return PairSummary{}, err
	}
	s := PairSummary{
		Count:                len(ps),
		X:                    sx,
		Y:                    sy,
		Covariance:           cov,
		CovariancePopulation: covp,
	}
	s.Elapsed = time.Since(t0)
	return s, nil
}

// Log writes the summary to log at info level.
func (s Summary) Log(log *zap.Logger, name string) {
	log.Info("sample summary",
		zap.String("sequence", name),
		zap.Int("count", s.Count),
		zap.Float64("min", s.Min),
		zap.Float64("max", s.Max),
		zap.Float64("mean", s.Mean),
		zap.Float64("median", s.Median),
		zap.Duration("elapsed", s.Elapsed),
	)
}

// Log writes the paired summary to log at info level.
func (s PairSummary) Log(log *zap.Logger) {
	s.X.Log(log, "x")
	s.Y.Log(log, "y")
	log.Info("paired sample summary",
		zap.Int("count", s.Count),
		zap.Float64("covariance", s.Covariance),
		zap.Float64("covariance_population", s.CovariancePopulation),
		zap.Duration("elapsed", s.Elapsed),
	)
}

// An Exporter publishes summaries as Prometheus gauges. Create at most
// one per process.
type Exporter struct {
	sampleCount          prometheus.Gauge
	rangeMin             prometheus.Gauge
	rangeMax             prometheus.Gauge
	mean                 prometheus.Gauge
	median               prometheus.Gauge
	covariance           prometheus.Gauge
	covariancePopulation prometheus.Gauge
	duration             prometheus.Gauge
}

func NewExporter() *Exporter {
	return &Exporter{
		sampleCount: promauto.NewGauge(prometheus.GaugeOpts{
			Name: metrics.ReportSampleCountN,
			Help: metrics.ReportSampleCountH,
		}),
		rangeMin: promauto.NewGauge(prometheus.GaugeOpts{
			Name: metrics.ReportRangeMinN,
			Help: metrics.ReportRangeMinH,
		}),
		rangeMax: promauto.NewGauge(prometheus.GaugeOpts{
			Name: metrics.ReportRangeMaxN,
			Help: metrics.ReportRangeMaxH,
		}),
		mean: promauto.NewGauge(prometheus.GaugeOpts{
			Name: metrics.ReportMeanN,
			Help: metrics.ReportMeanH,
		}),
		median: promauto.NewGauge(prometheus.GaugeOpts{
			Name: metrics.ReportMedianN,
			Help: metrics.ReportMedianH,
		}),
		covariance: promauto.NewGauge(prometheus.GaugeOpts{
			Name: metrics.ReportCovarianceN,
			Help: metrics.ReportCovarianceH,
		}),
		covariancePopulation: promauto.NewGauge(prometheus.GaugeOpts{
			Name: metrics.ReportCovariancePopulationN,
			Help: metrics.ReportCovariancePopulationH,
		}),
		duration: promauto.NewGauge(prometheus.GaugeOpts{
			Name: metrics.ReportDurationN,
			Help: metrics.ReportDurationH,
		}),
	}
}

func (e *Exporter) Publish(s Summary) {
	e.sampleCount.Set(float64(s.Count))
	e.rangeMin.Set(s.Min)
	e.rangeMax.Set(s.Max)
	e.mean.Set(s.Mean)
	e.median.Set(s.Median)
	e.duration.Set(s.Elapsed.Seconds())
}

func (e *Exporter) PublishPairs(s PairSummary) {
	e.sampleCount.Set(float64(s.Count))
	e.covariance.Set(s.Covariance)
	e.covariancePopulation.Set(s.CovariancePopulation)
	e.duration.Set(s.Elapsed.Seconds())
}
