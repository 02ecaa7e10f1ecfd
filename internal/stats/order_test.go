package stats

import (
	"errors"
	"slices"
	"testing"
)

func TestMedianMAD(t *testing.T) {
	tests := []struct {
		name       string
		values     []float64
		start      int
		stop       int
		wantMedian float32
		wantMAD    float32
	}{
		{"SingleItem", []float64{5}, 0, 1, 5, 0},
		{"EvenCount", []float64{1, 2, 3, 4}, 0, 4, 2.5, 1},
		{"EvenCountShuffled", []float64{3, 1, 4, 2}, 0, 4, 2.5, 1},
		{"OddCount", []float64{3, 1, 2}, 0, 3, 2, 1},
		{"SubRange", []float64{100, 1, 2, 3, 100}, 1, 4, 2, 1},
		{"Constant", []float64{0.5, 0.5, 0.5, 0.5}, 0, 4, 0.5, 0},
		{"WithOutlier", []float64{1, 1, 2, 2, 4, 6, 9}, 0, 7, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MedianMAD(tt.values, tt.start, tt.stop)
			if err != nil {
				t.Fatalf("MedianMAD() error = %v", err)
			}
			if got.Median != tt.wantMedian {
				t.Errorf("MedianMAD() median = %v, want %v", got.Median, tt.wantMedian)
			}
			if got.MAD != tt.wantMAD {
				t.Errorf("MedianMAD() mad = %v, want %v", got.MAD, tt.wantMAD)
			}
			if got.MAD < 0 {
				t.Errorf("MedianMAD() mad = %v, must not be negative", got.MAD)
			}
		})
	}
}

func TestMedianMADErrors(t *testing.T) {
	values := []float64{1, 2, 3}
	tests := []struct {
		name        string
		start, stop int
		want        error
	}{
		{"Empty", 1, 1, ErrEmptySample},
		{"NegativeStart", -1, 2, ErrInvalidRange},
		{"StopPastEnd", 0, 4, ErrInvalidRange},
		{"Reversed", 2, 1, ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := MedianMAD(values, tt.start, tt.stop); !errors.Is(err, tt.want) {
				t.Errorf("MedianMAD() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMedianMADDoesNotMutateInput(t *testing.T) {
	values := []float64{4, 1, 3, 2}
	orig := slices.Clone(values)

	if _, err := MedianMAD(values, 0, len(values)); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(values, orig) {
		t.Errorf("input mutated: got %v, want %v", values, orig)
	}
}
