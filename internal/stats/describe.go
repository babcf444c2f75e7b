package stats

// Description is the five-number summary of a series together with its
// count, mean and sample standard deviation.
type Description struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Describe summarizes values. Std uses the n-1 divisor and is 0 for a series
// shorter than two elements.
func Describe(values []float64) Description {
	if len(values) == 0 {
		return Description{}
	}
	q1, q2, q3 := Quartiles(values)
	return Description{
		Count:  len(values),
		Mean:   Mean(values),
		Std:    SampleStdDev(values),
		Min:    Min(values),
		Q1:     q1,
		Median: q2,
		Q3:     q3,
		Max:    Max(values),
	}
}
