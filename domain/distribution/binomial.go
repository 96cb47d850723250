package distribution

import (
	"randlab/domain/core"

	"gonum.org/v1/gonum/stat/distuv"
)

// Binomial samples trial counts by a linear inverse-CDF scan of the binomial
// probability mass function.
type Binomial struct {
	n    int
	dist distuv.Binomial
}

// NewBinomial validates n >= 1 and p in [0, 1]
func NewBinomial(n int, p float64) (*Binomial, error) {
	if p < 0 || p > 1 {
		return nil, core.NewParameterError("p", "must be between 0 and 1")
	}
	if n < 1 {
		return nil, core.NewParameterError("n", "must be positive")
	}
	return &Binomial{n: n, dist: distuv.Binomial{N: float64(n), P: p}}, nil
}

// Generate scans the pmf from k=0 upward for each uniform. If accumulated
// mass never reaches r (numerical precision at the upper tail), n is emitted
// as a fallback.
func (b *Binomial) Generate(uniforms core.NormalizedSequence) []Sample {
	samples := make([]Sample, 0, len(uniforms))
	for _, r := range uniforms {
		cdf := 0.0
		emitted := false
		for k := 0; k <= b.n; k++ {
			cdf += b.dist.Prob(float64(k))
			if r <= cdf {
				samples = append(samples, Sample{Label: formatInt(k), Value: float64(k)})
				emitted = true
				break
			}
		}
		if !emitted {
			samples = append(samples, Sample{Label: formatInt(b.n), Value: float64(b.n)})
		}
	}
	return samples
}

// TheoreticalProbabilities returns the exact mass at each k in [0, n]
func (b *Binomial) TheoreticalProbabilities() ProbTable {
	out := make(ProbTable, 0, b.n+1)
	for k := 0; k <= b.n; k++ {
		out = append(out, Prob{Label: formatInt(k), P: b.dist.Prob(float64(k))})
	}
	return out
}

// FitProbabilities equals TheoreticalProbabilities: the pmf is a mass table
func (b *Binomial) FitProbabilities() ProbTable {
	return b.TheoreticalProbabilities()
}
