// Package distribution produces domain samples from normalized uniforms via
// inverse-CDF and transform methods, and exposes the theoretical
// probabilities needed by goodness-of-fit testing.
package distribution

import (
	"encoding/json"
	"math"
	"strconv"

	"randlab/domain/core"
)

// Sample is one generated value. Label is the category used by
// goodness-of-fit tests; Value is the numeric form, NaN for table variants
// whose categories are opaque labels.
type Sample struct {
	Label string  `json:"label"`
	Value float64 `json:"value,omitempty"`
}

// MarshalJSON omits the numeric value for label-only samples, since JSON has
// no NaN literal.
func (s Sample) MarshalJSON() ([]byte, error) {
	if math.IsNaN(s.Value) {
		return json.Marshal(struct {
			Label string `json:"label"`
		}{s.Label})
	}
	type plain Sample
	return json.Marshal(plain(s))
}

// Prob pairs a category label with its theoretical probability
type Prob struct {
	Label string  `json:"label"`
	P     float64 `json:"p"`
}

// ProbTable is an ordered label→probability mapping. Order matters: the table
// sampler walks it cumulatively, so it is a slice rather than a map.
type ProbTable []Prob

// Map returns the unordered label→probability view used by the chi-square
// tester.
func (t ProbTable) Map() map[string]float64 {
	m := make(map[string]float64, len(t))
	for _, e := range t {
		m[e.Label] = e.P
	}
	return m
}

// Sum returns the total probability mass
func (t ProbTable) Sum() float64 {
	total := 0.0
	for _, e := range t {
		total += e.P
	}
	return total
}

// Sampler is the capability shared by all distribution variants
type Sampler interface {
	// Generate consumes normalized uniforms and produces samples. The
	// output length is not always len(uniforms): the normal variant
	// consumes uniforms pairwise and drops a trailing unpaired element.
	Generate(uniforms core.NormalizedSequence) []Sample
	// TheoreticalProbabilities returns exact mass per value for discrete
	// variants; for continuous variants it returns per-class mass when
	// discretized, otherwise a sampled density curve over ±3 standard
	// deviations at 100 points.
	TheoreticalProbabilities() ProbTable
	// FitProbabilities returns the per-label mass table consumed by
	// goodness-of-fit testing, or nil when the only theoretical view is a
	// density curve. Curves are a plotting aid: their point densities are
	// not expected counts, and their labels never match sample labels.
	FitProbabilities() ProbTable
}

// densityPoints is the default resolution of continuous density curves
const densityPoints = 100

// formatValue renders a numeric sample as its category label. The same
// formatting is used for samples and for theoretical classes so that labels
// line up in distribution-mode chi-square tests.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatInt(k int) string {
	return strconv.Itoa(k)
}

var nan = math.NaN()
