package stats

import (
	"github.com/and161185/covid19-dashboard/model"
)

// histogramBins matches the four case categories.
const histogramBins = 4

// EmpiricalRule is the fixed caption shown next to the spread figures.
const EmpiricalRule = "68% of data falls within 1 std dev, 95% within 2 std devs, 99.7% within 3 std devs"

// FrequencyRow is one line of the frequency distribution table.
type FrequencyRow struct {
	Category   string  `json:"category"`
	Amount     int     `json:"amount"`
	Relative   float64 `json:"relative_frequency"`
	Cumulative float64 `json:"cumulative_frequency"`
}

// ChebyshevBound is the guaranteed share of data within k standard deviations.
type ChebyshevBound struct {
	K      int     `json:"k"`
	Within float64 `json:"within"`
}

// Report carries every statistical figure the dashboard widgets display for
// the four case categories of one snapshot.
type Report struct {
	Categories      []string         `json:"categories"`
	Cases           []int            `json:"cases"`
	FrequencyTable  []FrequencyRow   `json:"frequency_table"`
	Midpoints       []float64        `json:"midpoints"`
	CumulativeCases []float64        `json:"cumulative_cases"`
	ClassBoundaries []Boundary       `json:"class_boundaries"`
	Histogram       []Bin            `json:"histogram"`
	StemAndLeaf     []StemLeaf       `json:"stem_and_leaf"`
	Pareto          []LabeledValue   `json:"pareto"`
	Mean            float64          `json:"mean"`
	Median          float64          `json:"median"`
	Mode            []float64        `json:"mode"`
	Variance        float64          `json:"variance"`
	StdDev          float64          `json:"std_dev"`
	EmpiricalRule   string           `json:"empirical_rule"`
	Quartiles       []float64        `json:"quartiles"`
	IQR             float64          `json:"iqr"`
	FiveNumber      []float64        `json:"five_number_summary"`
	P90             float64          `json:"p90"`
	Deciles         []float64        `json:"deciles"`
	Shape           string           `json:"shape"`
	Chebyshev       []ChebyshevBound `json:"chebyshev"`
}

// Compute assembles the whole widget payload for one snapshot.
func Compute(snap model.Snapshot) Report {
	cases := snap.Cases()
	values := Floats(cases)

	rel := RelativeFrequencies(values)
	cum := CumSum(values)

	freq := make([]FrequencyRow, len(cases))
	for i, label := range model.Categories {
		freq[i] = FrequencyRow{
			Category:   label,
			Amount:     cases[i],
			Relative:   rel[i],
			Cumulative: cum[i],
		}
	}

	q1, q2, q3 := Quartiles(values)

	bounds := make([]ChebyshevBound, 0, 3)
	for k := 1; k <= 3; k++ {
		bounds = append(bounds, ChebyshevBound{K: k, Within: Chebyshev(k)})
	}

	return Report{
		Categories:      model.Categories,
		Cases:           cases,
		FrequencyTable:  freq,
		Midpoints:       Midpoints(values),
		CumulativeCases: cum,
		ClassBoundaries: ClassBoundaries(values),
		Histogram:       Histogram(values, histogramBins),
		StemAndLeaf:     StemLeafPlot(cases),
		Pareto:          Pareto(model.Categories, values),
		Mean:            Mean(values),
		Median:          q2,
		Mode:            Mode(values),
		Variance:        Variance(values),
		StdDev:          StdDev(values),
		EmpiricalRule:   EmpiricalRule,
		Quartiles:       []float64{q1, q2, q3},
		IQR:             q3 - q1,
		FiveNumber:      []float64{Min(values), q1, q2, q3, Max(values)},
		P90:             Percentile(values, 90),
		Deciles:         Deciles(values),
		Shape:           Shape(values),
		Chebyshev:       bounds,
	}
}
