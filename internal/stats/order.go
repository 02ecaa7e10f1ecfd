package stats

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// OrderStats holds the median and the median absolute deviation of a sample.
type OrderStats struct {
	Median float32 `json:"median"`
	MAD    float32 `json:"mad"`
}

// MedianMAD computes the median and MAD of values[start:stop].
// The input slice is not modified.
func MedianMAD(values []float64, start, stop int) (OrderStats, error) {
	work, err := copyRange(values, start, stop)
	if err != nil {
		return OrderStats{}, err
	}
	if len(work) == 0 {
		return OrderStats{}, ErrEmptySample
	}

	sortDescending(work)
	median := middle(work)

	deviations := make([]float32, len(work))
	for i, v := range work {
		deviations[i] = float32(math.Abs(float64(v - median)))
	}
	sortDescending(deviations)

	return OrderStats{Median: median, MAD: middle(deviations)}, nil
}

// middle returns the median of a slice already sorted in descending order.
func middle(sorted []float32) float32 {
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2.0
	}
	return sorted[(n+1)/2-1]
}

func sortDescending(values []float32) {
	slices.SortFunc(values, func(a, b float32) int {
		return cmp.Compare(b, a)
	})
}

// copyRange narrows values[start:stop] into a fresh float32 working copy.
func copyRange(values []float64, start, stop int) ([]float32, error) {
	if start < 0 || stop > len(values) || start > stop {
		return nil, fmt.Errorf("%w: [%d, %d) over %d values", ErrInvalidRange, start, stop, len(values))
	}

	work := make([]float32, stop-start)
	for i, v := range values[start:stop] {
		work[i] = float32(v)
	}
	return work, nil
}
