package distribution

import (
	"randlab/domain/core"

	"gonum.org/v1/gonum/stat/distuv"
)

// Poisson samples event counts by an unbounded inverse-CDF scan. The scan is
// truncated once k exceeds 3λ, a heuristic runtime bound: the truncation
// point itself is emitted as an approximation for uniforms that fall in the
// far upper tail.
type Poisson struct {
	lambda float64
	dist   distuv.Poisson
}

// NewPoisson validates λ > 0
func NewPoisson(lambda float64) (*Poisson, error) {
	if lambda <= 0 {
		return nil, core.NewParameterError("lambda", "must be positive")
	}
	return &Poisson{lambda: lambda, dist: distuv.Poisson{Lambda: lambda}}, nil
}

// Generate scans the pmf from k=0 upward for each uniform
func (p *Poisson) Generate(uniforms core.NormalizedSequence) []Sample {
	limit := 3 * p.lambda
	samples := make([]Sample, 0, len(uniforms))
	for _, r := range uniforms {
		cdf := 0.0
		for k := 0; ; k++ {
			cdf += p.dist.Prob(float64(k))
			if r <= cdf || float64(k) > limit {
				samples = append(samples, Sample{Label: formatInt(k), Value: float64(k)})
				break
			}
		}
	}
	return samples
}

// TheoreticalProbabilities returns the exact mass at each k inside the same
// 3λ truncation window the scan uses.
func (p *Poisson) TheoreticalProbabilities() ProbTable {
	limit := int(3 * p.lambda)
	out := make(ProbTable, 0, limit+1)
	for k := 0; k <= limit+1; k++ {
		out = append(out, Prob{Label: formatInt(k), P: p.dist.Prob(float64(k))})
	}
	return out
}

// FitProbabilities equals TheoreticalProbabilities: the truncated pmf is a
// mass table.
func (p *Poisson) FitProbabilities() ProbTable {
	return p.TheoreticalProbabilities()
}
