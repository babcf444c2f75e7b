package stats

import (
	"sort"
	"strconv"
)

// Bin is one bucket of a histogram. Lower is inclusive; Upper is exclusive
// except for the last bin, which also takes the maximum value.
type Bin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// Histogram splits values into bins equal-width buckets between the minimum
// and the maximum. When all values are equal the range is widened by half a
// unit on both sides so the single bucket is still well formed.
func Histogram(values []float64, bins int) []Bin {
	if len(values) == 0 || bins < 1 {
		return nil
	}
	lo, hi := Min(values), Max(values)
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	width := (hi - lo) / float64(bins)

	out := make([]Bin, bins)
	for i := range out {
		out[i].Lower = lo + float64(i)*width
		out[i].Upper = lo + float64(i+1)*width
	}
	out[bins-1].Upper = hi

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}

// Boundary is the half-unit class boundary around a single value.
type Boundary struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// ClassBoundaries returns the half-unit boundaries around each value, in
// input order.
func ClassBoundaries(values []float64) []Boundary {
	out := make([]Boundary, len(values))
	for i, v := range values {
		out[i] = Boundary{Lower: v - 0.5, Upper: v + 0.5}
	}
	return out
}

// Midpoints returns the midpoint of each consecutive pair of values.
func Midpoints(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	out := make([]float64, len(values)-1)
	for i := range out {
		out[i] = (values[i] + values[i+1]) / 2
	}
	return out
}

// CumSum returns the running totals of values.
func CumSum(values []float64) []float64 {
	out := make([]float64, len(values))
	var total float64
	for i, v := range values {
		total += v
		out[i] = total
	}
	return out
}

// RelativeFrequencies returns each value's share of the total. A zero total
// yields all zeroes.
func RelativeFrequencies(values []float64) []float64 {
	out := make([]float64, len(values))
	total := Sum(values)
	if total == 0 {
		return out
	}
	for i, v := range values {
		out[i] = v / total
	}
	return out
}

// StemLeaf is one row of a stem-and-leaf plot: the leading digit of a value
// and its remaining digits.
type StemLeaf struct {
	Stem string `json:"stem"`
	Leaf string `json:"leaf"`
}

// StemLeafPlot maps each value's leading digit to its remaining digits.
// Stems keep first-appearance order and a repeated stem keeps the leaf of
// the latest value carrying it.
func StemLeafPlot(values []int) []StemLeaf {
	out := make([]StemLeaf, 0, len(values))
	index := make(map[string]int, len(values))
	for _, v := range values {
		s := strconv.Itoa(v)
		stem, leaf := s[:1], s[1:]
		if i, ok := index[stem]; ok {
			out[i].Leaf = leaf
			continue
		}
		index[stem] = len(out)
		out = append(out, StemLeaf{Stem: stem, Leaf: leaf})
	}
	return out
}

// LabeledValue pairs a category label with its amount.
type LabeledValue struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Pareto returns labels and values ordered by descending value. Ties keep
// their input order. Labels and values must have the same length.
func Pareto(labels []string, values []float64) []LabeledValue {
	out := make([]LabeledValue, 0, len(values))
	for i, v := range values {
		out = append(out, LabeledValue{Label: labels[i], Value: v})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}
