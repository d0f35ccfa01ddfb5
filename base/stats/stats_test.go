package stats

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name  string
		input []float64
		want  float64
	}{
		{"Single element", []float64{4}, 4},
		{"Integers", []float64{1, 2, 3, 4}, 2.5},
		{"Negative values", []float64{-2, 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mean(tt.input); got != tt.want {
				t.Errorf("Mean(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	t.Run("Empty", func(t *testing.T) {
		if got := Mean([]float64{}); !math.IsNaN(got) {
			t.Errorf("Mean([]) = %v, want NaN", got)
		}
	})

	t.Run("NaN", func(t *testing.T) {
		if got := Mean([]float64{1, math.NaN(), 3}); !math.IsNaN(got) {
			t.Errorf("Mean = %v, want NaN", got)
		}
	})
}

func TestRange(t *testing.T) {
	tests := []struct {
		name   string
		input  []float64
		want   Interval[float64]
		wantOK bool
	}{
		{"Empty", nil, Interval[float64]{}, false},
		{"Single element", []float64{7}, Interval[float64]{Min: 7, Max: 7}, true},
		{"Unordered", []float64{3, -1, 4, 1, 5}, Interval[float64]{Min: -1, Max: 5}, true},
		{"Duplicates", []float64{2, 2, 2}, Interval[float64]{Min: 2, Max: 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Range(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Range(%v) = %v, %v, want %v, %v",
					tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMidpoint(t *testing.T) {
	tests := []struct {
		x, y, want float64
	}{
		{1, 2, 1.5},
		{2, 1, 1.5},
		{-3, 3, 0},
		{5, 5, 5},
	}
	for _, tt := range tests {
		if got := Midpoint(tt.x, tt.y); got != tt.want {
			t.Errorf("Midpoint(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
