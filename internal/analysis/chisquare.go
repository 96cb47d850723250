// Package analysis implements the chi-square goodness-of-fit engine and
// descriptive summaries used by run reports.
package analysis

import (
	"sort"

	"randlab/domain/core"
	"randlab/domain/stats"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultBins is the interval count for uniformity testing
const DefaultBins = 10

// minExpectedFrequency is the floor below which distribution-mode categories
// are excluded. Excluded categories leave both the statistic and the
// degrees-of-freedom count; standard practice would merge cells instead, but
// the exclusion is preserved reference behavior.
const minExpectedFrequency = 5.0

// TestUniform partitions [0, 1) into k equal-width bins and tests the
// observed bin counts against the uniform expectation n/k.
// Degrees of freedom = k-1.
func TestUniform(values core.NormalizedSequence, k int) (stats.ChiSquareResult, error) {
	if k < 1 {
		return stats.ChiSquareResult{}, core.NewParameterError("k", "must be positive")
	}
	if len(values) == 0 {
		return stats.ChiSquareResult{}, core.NewParameterError("values", "must not be empty")
	}

	observed := make([]int, k)
	for _, v := range values {
		bin := int(v * float64(k))
		if bin >= k {
			// Absorbs the boundary case v == 1.0 exactly
			bin = k - 1
		}
		observed[bin]++
	}

	expected := float64(len(values)) / float64(k)
	statistic := 0.0
	for _, obs := range observed {
		diff := float64(obs) - expected
		statistic += diff * diff / expected
	}

	df := k - 1
	return stats.ChiSquareResult{
		Statistic:        statistic,
		DegreesOfFreedom: df,
		PValue:           chiSquarePValue(statistic, df),
	}, nil
}

// TestDistribution tests observed category labels against a theoretical
// label→probability mapping. The category set is the union of observed and
// theoretical labels; unmatched labels contribute zero observed or expected
// mass. Categories whose expected frequency falls below the floor are
// excluded from the statistic and from the degrees-of-freedom count.
func TestDistribution(observed []string, theoretical map[string]float64) (stats.ChiSquareResult, error) {
	n := len(observed)
	if n == 0 {
		return stats.ChiSquareResult{}, core.NewParameterError("observed", "must not be empty")
	}

	counts := make(map[string]int, len(theoretical))
	for _, label := range observed {
		counts[label]++
	}

	labels := make([]string, 0, len(theoretical)+len(counts))
	seen := make(map[string]bool, len(theoretical)+len(counts))
	for label := range theoretical {
		labels = append(labels, label)
		seen[label] = true
	}
	for label := range counts {
		if !seen[label] {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)

	statistic := 0.0
	included := 0
	for _, label := range labels {
		expected := theoretical[label] * float64(n)
		if expected < minExpectedFrequency {
			continue
		}
		diff := float64(counts[label]) - expected
		statistic += diff * diff / expected
		included++
	}

	df := included - 1
	if df < 0 {
		df = 0
	}
	return stats.ChiSquareResult{
		Statistic:        statistic,
		DegreesOfFreedom: df,
		PValue:           chiSquarePValue(statistic, df),
	}, nil
}

// chiSquarePValue computes the upper tail of the chi-square CDF
func chiSquarePValue(statistic float64, degreesOfFreedom int) float64 {
	if degreesOfFreedom <= 0 {
		return 1.0
	}
	chiDist := distuv.ChiSquared{K: float64(degreesOfFreedom)}
	return 1 - chiDist.CDF(statistic)
}
