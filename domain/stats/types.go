package stats

// ChiSquareResult is the outcome of a goodness-of-fit test.
// INVARIANTS:
// - Statistic >= 0
// - DegreesOfFreedom >= 0, always (included categories - 1)
// - PValue in [0.0, 1.0], upper tail of the chi-square CDF
type ChiSquareResult struct {
	Statistic        float64 `json:"statistic"`
	DegreesOfFreedom int     `json:"degrees_of_freedom"`
	PValue           float64 `json:"p_value"`
}

// Passes reports the conventional null-hypothesis reading at the given
// significance level: the data is consistent with the tested distribution
// when the p-value exceeds alpha. Interpretation belongs to callers; the
// tester itself only computes the result.
func (r ChiSquareResult) Passes(alpha float64) bool {
	return r.PValue > alpha
}

// Frequency is one observed category count
type Frequency struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary holds descriptive statistics for a numeric sample
type Summary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}
