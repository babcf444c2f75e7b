package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

var cases = []float64{6811444, 6640216, 161853, 9375}

func TestMeanMedian(t *testing.T) {
	tests := []struct {
		name      string
		values    []float64
		mean, med float64
	}{
		{name: "even count", values: []float64{1, 2, 3, 4}, mean: 2.5, med: 2.5},
		{name: "odd count", values: []float64{1, 2, 9}, mean: 4, med: 2},
		{name: "case figures", values: cases, mean: 3405722, med: 3401034.5},
		{name: "empty", values: nil, mean: 0, med: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.mean, Mean(tt.values), 1e-9)
			require.InDelta(t, tt.med, Median(tt.values), 1e-9)
		})
	}
}

func TestMode(t *testing.T) {
	require.Equal(t, []float64{2, 3}, Mode([]float64{1, 2, 2, 3, 3, 4}))
	require.Equal(t, []float64{9375, 161853, 6640216, 6811444}, Mode(cases))
	require.Nil(t, Mode(nil))
}

func TestVarianceStdDev(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	require.InDelta(t, 4, Variance(values), 1e-9)
	require.InDelta(t, 2, StdDev(values), 1e-9)
	require.Zero(t, Variance(nil))
}

func TestSampleVariance(t *testing.T) {
	values := []float64{1, 2, 3, 4}

	require.InDelta(t, 5.0/3.0, SampleVariance(values), 1e-9)
	require.InDelta(t, math.Sqrt(5.0/3.0), SampleStdDev(values), 1e-9)
	require.Zero(t, SampleVariance([]float64{42}))
}

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		p      float64
		want   float64
	}{
		{name: "q1", values: cases, p: 25, want: 123733.5},
		{name: "q3", values: cases, p: 75, want: 6683023},
		{name: "p90", values: cases, p: 90, want: 6760075.6},
		{name: "interpolated", values: []float64{1, 2, 3, 4}, p: 25, want: 1.75},
		{name: "clamped low", values: []float64{1, 2, 3}, p: -5, want: 1},
		{name: "clamped high", values: []float64{1, 2, 3}, p: 140, want: 3},
		{name: "single", values: []float64{7}, p: 50, want: 7},
		{name: "empty", values: nil, p: 50, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, Percentile(tt.values, tt.p), 1e-9)
		})
	}
}

func TestQuartilesIQR(t *testing.T) {
	q1, q2, q3 := Quartiles(cases)

	require.InDelta(t, 123733.5, q1, 1e-9)
	require.InDelta(t, 3401034.5, q2, 1e-9)
	require.InDelta(t, 6683023, q3, 1e-9)
	require.InDelta(t, 6559289.5, IQR(cases), 1e-9)
}

func TestDeciles(t *testing.T) {
	deciles := Deciles(cases)

	require.Len(t, deciles, 9)
	require.InDelta(t, Percentile(cases, 10), deciles[0], 1e-9)
	require.InDelta(t, Median(cases), deciles[4], 1e-9)
	require.InDelta(t, Percentile(cases, 90), deciles[8], 1e-9)
}

func TestMinMax(t *testing.T) {
	require.Equal(t, 9375.0, Min(cases))
	require.Equal(t, 6811444.0, Max(cases))
	require.Zero(t, Min(nil))
	require.Zero(t, Max(nil))
}

func TestChebyshev(t *testing.T) {
	require.Zero(t, Chebyshev(0))
	require.Zero(t, Chebyshev(1))
	require.InDelta(t, 0.75, Chebyshev(2), 1e-9)
	require.InDelta(t, 1-1.0/9.0, Chebyshev(3), 1e-9)
}

func TestShape(t *testing.T) {
	require.Equal(t, "Symmetric Distribution", Shape([]float64{1, 2, 3}))
	require.Equal(t, "Left Skewed Distribution", Shape([]float64{1, 4, 4}))
	require.Equal(t, "Right Skewed Distribution", Shape(cases))
}

func TestHistogram(t *testing.T) {
	bins := Histogram([]float64{1, 2, 3, 4}, 2)

	require.Len(t, bins, 2)
	require.Equal(t, Bin{Lower: 1, Upper: 2.5, Count: 2}, bins[0])
	require.Equal(t, Bin{Lower: 2.5, Upper: 4, Count: 2}, bins[1])
}

func TestHistogramCases(t *testing.T) {
	bins := Histogram(cases, 4)

	require.Len(t, bins, 4)
	counts := make([]int, 0, len(bins))
	for _, b := range bins {
		counts = append(counts, b.Count)
	}
	require.Equal(t, []int{2, 0, 0, 2}, counts)
	require.InDelta(t, 9375, bins[0].Lower, 1e-9)
	require.InDelta(t, 6811444, bins[3].Upper, 1e-9)
}

func TestHistogramDegenerate(t *testing.T) {
	bins := Histogram([]float64{5, 5}, 1)

	require.Len(t, bins, 1)
	require.Equal(t, Bin{Lower: 4.5, Upper: 5.5, Count: 2}, bins[0])

	require.Nil(t, Histogram(nil, 4))
	require.Nil(t, Histogram([]float64{1}, 0))
}

func TestClassBoundaries(t *testing.T) {
	b := ClassBoundaries([]float64{7, 10})

	require.Equal(t, []Boundary{{Lower: 6.5, Upper: 7.5}, {Lower: 9.5, Upper: 10.5}}, b)
}

func TestMidpoints(t *testing.T) {
	require.Equal(t, []float64{6725830, 3401034.5, 85614}, Midpoints(cases))
	require.Nil(t, Midpoints([]float64{1}))
}

func TestCumSum(t *testing.T) {
	require.Equal(t, []float64{6811444, 13451660, 13613513, 13622888}, CumSum(cases))
}

func TestRelativeFrequencies(t *testing.T) {
	require.Equal(t, []float64{0.25, 0.25, 0.5}, RelativeFrequencies([]float64{1, 1, 2}))
	require.Equal(t, []float64{0, 0}, RelativeFrequencies([]float64{0, 0}))
}

func TestStemLeafPlot(t *testing.T) {
	plot := StemLeafPlot([]int{6811444, 6640216, 161853, 9375})

	require.Equal(t, []StemLeaf{
		{Stem: "6", Leaf: "640216"},
		{Stem: "1", Leaf: "61853"},
		{Stem: "9", Leaf: "375"},
	}, plot)
}

func TestStemLeafPlotSingleDigit(t *testing.T) {
	require.Equal(t, []StemLeaf{{Stem: "7", Leaf: ""}}, StemLeafPlot([]int{7}))
}

func TestPareto(t *testing.T) {
	labels := []string{"Confirmed", "Recovered", "Deaths", "Active Cases"}

	got := Pareto(labels, cases)

	require.Equal(t, []LabeledValue{
		{Label: "Confirmed", Value: 6811444},
		{Label: "Recovered", Value: 6640216},
		{Label: "Deaths", Value: 161853},
		{Label: "Active Cases", Value: 9375},
	}, got)
}

func TestDescribe(t *testing.T) {
	d := Describe([]float64{1, 2, 3, 4})

	require.Equal(t, 4, d.Count)
	require.InDelta(t, 2.5, d.Mean, 1e-9)
	require.InDelta(t, math.Sqrt(5.0/3.0), d.Std, 1e-9)
	require.InDelta(t, 1, d.Min, 1e-9)
	require.InDelta(t, 1.75, d.Q1, 1e-9)
	require.InDelta(t, 2.5, d.Median, 1e-9)
	require.InDelta(t, 3.25, d.Q3, 1e-9)
	require.InDelta(t, 4, d.Max, 1e-9)

	require.Equal(t, Description{}, Describe(nil))
}

func TestFloats(t *testing.T) {
	require.Equal(t, []float64{1, 2, 3}, Floats([]int{1, 2, 3}))
}
