// Package stats implements the descriptive statistics shown on the dashboard.
//
// All functions are pure and treat their input as read-only. Variance and
// StdDev are population measures; the sample variants used by Describe keep
// the n-1 divisor. Functions that would otherwise produce NaN on degenerate
// input return 0 instead, empty slices stay empty.
package stats

import (
	"math"
	"sort"
)

// Floats converts a slice of ints to float64 for the numeric helpers.
func Floats(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// Sum returns the total of values.
func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Sum(values) / float64(len(values))
}

// Median returns the middle value of values, interpolating between the two
// central values for an even count. Returns 0 for an empty slice.
func Median(values []float64) float64 {
	return Percentile(values, 50)
}

// Mode returns every value that occurs with the highest frequency, in
// ascending order. When all values are unique each of them is a mode.
func Mode(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	counts := make(map[float64]int, len(values))
	best := 0
	for _, v := range values {
		counts[v]++
		if counts[v] > best {
			best = counts[v]
		}
	}
	modes := make([]float64, 0, len(counts))
	for v, n := range counts {
		if n == best {
			modes = append(modes, v)
		}
	}
	sort.Float64s(modes)
	return modes
}

// Variance returns the population variance of values, or 0 for an empty slice.
func Variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := Mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation of values.
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// SampleVariance returns the variance of values with the n-1 divisor, or 0
// when values holds fewer than two elements.
func SampleVariance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := Mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(values)-1)
}

// SampleStdDev returns the standard deviation of values with the n-1 divisor.
func SampleStdDev(values []float64) float64 {
	return math.Sqrt(SampleVariance(values))
}

// Percentile returns the p-th percentile of values using linear interpolation
// between the two nearest order statistics. p is clamped to [0, 100].
// Returns 0 for an empty slice.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Quartiles returns the 25th, 50th and 75th percentiles of values.
func Quartiles(values []float64) (q1, q2, q3 float64) {
	return Percentile(values, 25), Percentile(values, 50), Percentile(values, 75)
}

// IQR returns the interquartile range of values.
func IQR(values []float64) float64 {
	return Percentile(values, 75) - Percentile(values, 25)
}

// Deciles returns the 10th through 90th percentiles of values.
func Deciles(values []float64) []float64 {
	out := make([]float64, 0, 9)
	for i := 1; i <= 9; i++ {
		out = append(out, Percentile(values, float64(i*10)))
	}
	return out
}

// Min returns the smallest of values, or 0 for an empty slice.
func Min(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest of values, or 0 for an empty slice.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Chebyshev returns the minimum share of values guaranteed to lie within k
// standard deviations of the mean, 1 - 1/k^2. Returns 0 for k < 1.
func Chebyshev(k int) float64 {
	if k < 1 {
		return 0
	}
	return 1 - 1/float64(k*k)
}

// Shape names the distribution shape of values by comparing mean and median.
func Shape(values []float64) string {
	mean := Mean(values)
	median := Median(values)
	switch {
	case mean == median:
		return "Symmetric Distribution"
	case mean < median:
		return "Left Skewed Distribution"
	default:
		return "Right Skewed Distribution"
	}
}
