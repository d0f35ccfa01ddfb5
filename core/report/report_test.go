package report_test

import (
	"errors"
	"math"
	"testing"

	"example.com/sample-stats/base/stats"
	"example.com/sample-stats/core/report"
)

func TestSummarize(t *testing.T) {
	s, err := report.Summarize([]float64{3, 1, 2, 4})
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if s.Count != 4 {
		t.Errorf("Count = %d, want 4", s.Count)
	}
	if s.Min != 1 || s.Max != 4 {
		t.Errorf("range = [%v, %v], want [1, 4]", s.Min, s.Max)
	}
	if s.Mean != 2.5 {
		t.Errorf("Mean = %v, want 2.5", s.Mean)
	}
	if s.Median != 2.5 {
		t.Errorf("Median = %v, want 2.5", s.Median)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := report.Summarize(nil)
	if !errors.Is(err, stats.ErrEmptyInput) {
		t.Errorf("Summarize(nil) error = %v, want ErrEmptyInput", err)
	}
}

func TestSummarizeNaN(t *testing.T) {
	s, err := report.Summarize([]float64{1, math.NaN(), 3})
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if !math.IsNaN(s.Median) {
		t.Errorf("Median = %v, want NaN", s.Median)
	}
	if !math.IsNaN(s.Mean) {
		t.Errorf("Mean = %v, want NaN", s.Mean)
	}
}

func TestSummarizePairs(t *testing.T) {
	ps := []stats.Pair[float64]{
		{X: 5, Y: 2}, {X: 12, Y: 8}, {X: 18, Y: 18}, {X: -23, Y: -20}, {X: 45, Y: 28},
	}
	s, err := report.SummarizePairs(ps)
	if err != nil {
		t.Fatalf("SummarizePairs failed: %v", err)
	}
	if s.Count != 5 {
		t.Errorf("Count = %d, want 5", s.Count)
	}
	if math.Abs(s.Covariance-434.9) > 1e-6 {
		t.Errorf("Covariance = %v, want 434.90", s.Covariance)
	}
	if math.Abs(s.CovariancePopulation-347.92) > 1e-6 {
		t.Errorf("CovariancePopulation = %v, want 347.92", s.CovariancePopulation)
	}
	if s.X.Median != 12 {
		t.Errorf("X.Median = %v, want 12", s.X.Median)
	}
	if s.Y.Median != 8 {
		t.Errorf("Y.Median = %v, want 8", s.Y.Median)
	}
}

func TestSummarizePairsEmpty(t *testing.T) {
	_, err := report.SummarizePairs(nil)
	if !errors.Is(err, stats.ErrEmptyInput) {
		t.Errorf("SummarizePairs(nil) error = %v, want ErrEmptyInput", err)
	}
}
