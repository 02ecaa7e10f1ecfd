package stats

import (
	"fmt"
	"math"
	"slices"
)

// Moments is the result of a trimmed mean/stddev computation.
// Count and SumSquares describe the retained sample; for Accumulator.Add
// they are the cumulative totals.
type Moments struct {
	Mean       float32 `json:"mean"`
	Stddev     float32 `json:"stddev"`
	Count      int     `json:"count"`
	SumSquares float64 `json:"sum_squares"`
}

// Accumulator carries the retained-sample totals across several calls to Add,
// e.g. one call per chromosome. It must only be updated by one caller at a time.
type Accumulator struct {
	Count      int     `json:"count"`
	Sum        float64 `json:"sum"`
	SumSquares float64 `json:"sum_squares"`
}

// TrimBounds returns the retained index range [lower, upper) of a descending
// sorted sample of size n when percent of the distribution is excluded.
//
// The low tail drops n*percent/200 values while the upper bound uses
// percent/2 truncated first, then adds one. The asymmetry is intentional:
// changing it changes which values are retained.
func TrimBounds(n, percent int) (lower, upper int) {
	lower = max(0, n*percent/200)
	upper = min(n*(100-percent/2)/100+1, n)
	return lower, upper
}

// RobustMeanStddev computes the trimmed mean and standard deviation of
// values[start:stop], excluding percent of the sample split between both tails.
// Values are narrowed to float32 but the retained sums are accumulated in
// float64, so the last digits can differ from a float32 accumulation over the
// same retained values.
func RobustMeanStddev(values []float64, start, stop, percent int) (Moments, error) {
	work, err := copyRange(values, start, stop)
	if err != nil {
		return Moments{}, err
	}

	var acc Accumulator
	return acc.add(work, percent)
}

// RobustMeanStddevInto is the function form of acc.Add.
func RobustMeanStddevInto(values []float32, percent int, acc *Accumulator) (Moments, error) {
	return acc.Add(values, percent)
}

// Add trims values by percent, folds the retained values into the running
// totals and returns mean and stddev computed over everything accumulated so
// far. On error the accumulator is left unchanged.
func (a *Accumulator) Add(values []float32, percent int) (Moments, error) {
	return a.add(slices.Clone(values), percent)
}

// Validate reports whether the totals are ones a sequence of Add calls could
// have produced. State received from outside the process should be checked
// before it is reused.
func (a *Accumulator) Validate() error {
	switch {
	case a.Count < 0:
		return fmt.Errorf("%w: count %d", ErrInvalidAccumulator, a.Count)
	case a.SumSquares < 0:
		return fmt.Errorf("%w: sum of squares %v", ErrInvalidAccumulator, a.SumSquares)
	case a.Count == 0 && (a.Sum != 0 || a.SumSquares != 0):
		return fmt.Errorf("%w: non-zero sums with count 0", ErrInvalidAccumulator)
	}
	return nil
}

// add sorts work in place; callers pass a private copy.
func (a *Accumulator) add(work []float32, percent int) (Moments, error) {
	if err := a.Validate(); err != nil {
		return Moments{}, err
	}
	if percent < 0 || percent >= 100 {
		return Moments{}, fmt.Errorf("%w: got %d", ErrInvalidPercent, percent)
	}
	if len(work) == 0 {
		return Moments{}, ErrEmptySample
	}

	sortDescending(work)
	lower, upper := TrimBounds(len(work), percent)
	if upper <= lower {
		return Moments{}, fmt.Errorf("%w: %d of %d values retained", ErrEmptySample, upper-lower, len(work))
	}

	for _, v := range work[lower:upper] {
		a.Count++
		a.Sum += float64(v)
		a.SumSquares += float64(v * v)
	}
	return a.Moments(), nil
}

// Variance returns the population variance of the accumulated values,
// clamped at zero so rounding never yields a NaN stddev.
func (a *Accumulator) Variance() float64 {
	if a.Count == 0 {
		return 0
	}

	n := float64(a.Count)
	mean := a.Sum / n
	return max(0, a.SumSquares/n-mean*mean)
}

// Moments reduces the current totals.
func (a *Accumulator) Moments() Moments {
	if a.Count == 0 {
		return Moments{}
	}

	return Moments{
		Mean:       float32(a.Sum / float64(a.Count)),
		Stddev:     float32(math.Sqrt(a.Variance())),
		Count:      a.Count,
		SumSquares: a.SumSquares,
	}
}

// Reset clears the running totals.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}
