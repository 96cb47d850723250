package analysis

import (
	"math"

	"randlab/domain/stats"

	montanaflynn "github.com/montanaflynn/stats"
)

// Summarize computes descriptive statistics for a numeric sample, ignoring
// NaN entries (table samples carry no numeric value). Returns false when
// nothing numeric remains.
func Summarize(values []float64) (stats.Summary, bool) {
	numeric := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			numeric = append(numeric, v)
		}
	}
	if len(numeric) == 0 {
		return stats.Summary{}, false
	}

	mean, err := montanaflynn.Mean(numeric)
	if err != nil {
		return stats.Summary{}, false
	}
	stdDev, err := montanaflynn.StandardDeviation(numeric)
	if err != nil {
		return stats.Summary{}, false
	}
	min, err := montanaflynn.Min(numeric)
	if err != nil {
		return stats.Summary{}, false
	}
	max, err := montanaflynn.Max(numeric)
	if err != nil {
		return stats.Summary{}, false
	}
	median, err := montanaflynn.Median(numeric)
	if err != nil {
		return stats.Summary{}, false
	}

	return stats.Summary{
		Mean:   mean,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
		Median: median,
	}, true
}
