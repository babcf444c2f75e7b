package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/and161185/covid19-dashboard/model"
)

func TestCompute(t *testing.T) {
	rep := Compute(model.FallbackSnapshot())

	require.Equal(t, model.Categories, rep.Categories)
	require.Equal(t, []int{6811444, 6640216, 161853, 9375}, rep.Cases)

	require.Len(t, rep.FrequencyTable, 4)
	require.Equal(t, "Confirmed", rep.FrequencyTable[0].Category)
	require.Equal(t, 6811444, rep.FrequencyTable[0].Amount)
	require.InDelta(t, 0.5, rep.FrequencyTable[0].Relative, 1e-6)
	require.InDelta(t, 13622888, rep.FrequencyTable[3].Cumulative, 1e-9)

	require.Equal(t, []float64{6725830, 3401034.5, 85614}, rep.Midpoints)
	require.Equal(t, []float64{6811444, 13451660, 13613513, 13622888}, rep.CumulativeCases)
	require.Len(t, rep.ClassBoundaries, 4)
	require.InDelta(t, 6811443.5, rep.ClassBoundaries[0].Lower, 1e-9)

	counts := make([]int, 0, len(rep.Histogram))
	for _, b := range rep.Histogram {
		counts = append(counts, b.Count)
	}
	require.Equal(t, []int{2, 0, 0, 2}, counts)

	require.Equal(t, []StemLeaf{{Stem: "6", Leaf: "640216"}, {Stem: "1", Leaf: "61853"}, {Stem: "9", Leaf: "375"}}, rep.StemAndLeaf)

	require.Equal(t, "Confirmed", rep.Pareto[0].Label)
	require.Equal(t, "Recovered", rep.Pareto[1].Label)
	require.Equal(t, "Active Cases", rep.Pareto[3].Label)

	require.InDelta(t, 3405722, rep.Mean, 1e-9)
	require.InDelta(t, 3401034.5, rep.Median, 1e-9)
	require.Equal(t, []float64{9375, 161853, 6640216, 6811444}, rep.Mode)

	require.Equal(t, EmpiricalRule, rep.EmpiricalRule)
	require.InDelta(t, 123733.5, rep.Quartiles[0], 1e-9)
	require.InDelta(t, 6683023, rep.Quartiles[2], 1e-9)
	require.InDelta(t, 6559289.5, rep.IQR, 1e-9)
	require.Equal(t, []float64{9375, 123733.5, 3401034.5, 6683023, 6811444}, rep.FiveNumber)
	require.InDelta(t, 6760075.6, rep.P90, 1e-6)
	require.Len(t, rep.Deciles, 9)

	require.Equal(t, "Right Skewed Distribution", rep.Shape)

	require.Len(t, rep.Chebyshev, 3)
	require.Equal(t, 2, rep.Chebyshev[1].K)
	require.InDelta(t, 0.75, rep.Chebyshev[1].Within, 1e-9)
	require.InDelta(t, 1-1.0/9, rep.Chebyshev[2].Within, 1e-9)
}

func TestComputeVarianceMatchesStdDev(t *testing.T) {
	rep := Compute(model.FallbackSnapshot())
	require.InEpsilon(t, rep.Variance, rep.StdDev*rep.StdDev, 1e-12)
}
