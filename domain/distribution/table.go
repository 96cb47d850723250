package distribution

import (
	"math"

	"randlab/domain/core"
)

// probSumTolerance is the relative tolerance for the table mass check
const probSumTolerance = 1e-5

// Table samples opaque labels by cumulative-probability inversion over an
// ordered probability table.
type Table struct {
	entries ProbTable
}

// NewTable validates that the probabilities sum to 1 within relative
// tolerance and returns the sampler. Label order is preserved: the cumulative
// walk visits entries in table order.
func NewTable(entries ProbTable) (*Table, error) {
	sum := entries.Sum()
	if math.Abs(sum-1.0) > probSumTolerance*math.Max(math.Abs(sum), 1.0) {
		return nil, core.NewDistributionError("probabilities must sum to 1")
	}
	copied := make(ProbTable, len(entries))
	copy(copied, entries)
	return &Table{entries: copied}, nil
}

// Generate emits, for each uniform r, the first label whose cumulative mass
// reaches r. A uniform beyond the total mass produces no sample, matching the
// reference behavior.
func (t *Table) Generate(uniforms core.NormalizedSequence) []Sample {
	samples := make([]Sample, 0, len(uniforms))
	for _, r := range uniforms {
		cumulative := 0.0
		for _, e := range t.entries {
			cumulative += e.P
			if r <= cumulative {
				samples = append(samples, Sample{Label: e.Label, Value: nan})
				break
			}
		}
	}
	return samples
}

// TheoreticalProbabilities returns the table itself
func (t *Table) TheoreticalProbabilities() ProbTable {
	out := make(ProbTable, len(t.entries))
	copy(out, t.entries)
	return out
}

// FitProbabilities equals TheoreticalProbabilities: the table is already a
// mass table.
func (t *Table) FitProbabilities() ProbTable {
	return t.TheoreticalProbabilities()
}
