package distribution

import (
	"math"

	"randlab/domain/core"

	"gonum.org/v1/gonum/stat/distuv"
)

// NormalOptions configures optional class discretization. Classes > 0 maps
// each sample to the midpoint of its enclosing equal-width bin within
// [ClassMin, ClassMax], defaulting to μ±3σ when the bounds are unset.
type NormalOptions struct {
	Classes  int
	ClassMin float64
	ClassMax float64
}

// Normal samples via the Box–Muller transform. Uniforms are consumed
// pairwise, two deviates per pair; a trailing unpaired uniform is silently
// dropped.
type Normal struct {
	mu    float64
	sigma float64
	opts  NormalOptions
	dist  distuv.Normal
}

// NewNormal validates σ > 0 and resolves default class bounds
func NewNormal(mu, sigma float64, opts NormalOptions) (*Normal, error) {
	if sigma <= 0 {
		return nil, core.NewParameterError("sigma", "must be positive")
	}
	if opts.Classes < 0 {
		return nil, core.NewParameterError("classes", "must not be negative")
	}
	if opts.Classes > 0 && opts.ClassMax <= opts.ClassMin {
		opts.ClassMin = mu - 3*sigma
		opts.ClassMax = mu + 3*sigma
	}
	return &Normal{mu: mu, sigma: sigma, opts: opts, dist: distuv.Normal{Mu: mu, Sigma: sigma}}, nil
}

// Generate converts each uniform pair (u1, u2) into two standard-normal
// deviates, scaled by σ and shifted by μ.
func (n *Normal) Generate(uniforms core.NormalizedSequence) []Sample {
	samples := make([]Sample, 0, 2*(len(uniforms)/2))
	for i := 0; i+1 < len(uniforms); i += 2 {
		u1, u2 := uniforms[i], uniforms[i+1]
		if u1 <= 0 {
			// ln(0) is -Inf; floor u1 at the smallest positive float
			u1 = math.SmallestNonzeroFloat64
		}
		radius := math.Sqrt(-2 * math.Log(u1))
		z0 := radius * math.Cos(2*math.Pi*u2)
		z1 := radius * math.Sin(2*math.Pi*u2)
		samples = append(samples, n.sample(n.mu+n.sigma*z0), n.sample(n.mu+n.sigma*z1))
	}
	return samples
}

func (n *Normal) sample(x float64) Sample {
	if n.opts.Classes > 0 {
		x = n.classMidpoint(x)
	}
	return Sample{Label: formatValue(x), Value: x}
}

// classMidpoint maps x to the midpoint of its enclosing equal-width bin,
// clamping out-of-range values to the outermost bins.
func (n *Normal) classMidpoint(x float64) float64 {
	width := (n.opts.ClassMax - n.opts.ClassMin) / float64(n.opts.Classes)
	idx := int(math.Floor((x - n.opts.ClassMin) / width))
	if idx < 0 {
		idx = 0
	}
	if idx >= n.opts.Classes {
		idx = n.opts.Classes - 1
	}
	return n.opts.ClassMin + (float64(idx)+0.5)*width
}

// TheoreticalProbabilities returns per-class mass (CDF differences) when
// discretized, otherwise a 100-point density curve over μ±3σ.
func (n *Normal) TheoreticalProbabilities() ProbTable {
	if n.opts.Classes > 0 {
		return n.classMasses()
	}
	return n.densityCurve()
}

// FitProbabilities returns the class masses when discretized, nil otherwise:
// a density curve is not a valid fit input.
func (n *Normal) FitProbabilities() ProbTable {
	if n.opts.Classes > 0 {
		return n.classMasses()
	}
	return nil
}

func (n *Normal) classMasses() ProbTable {
	width := (n.opts.ClassMax - n.opts.ClassMin) / float64(n.opts.Classes)
	out := make(ProbTable, 0, n.opts.Classes)
	for i := 0; i < n.opts.Classes; i++ {
		lo := n.opts.ClassMin + float64(i)*width
		mid := n.opts.ClassMin + (float64(i)+0.5)*width
		// Outermost bins absorb the clamped tails
		mass := n.dist.CDF(lo+width) - n.dist.CDF(lo)
		switch {
		case n.opts.Classes == 1:
			mass = 1
		case i == 0:
			mass = n.dist.CDF(lo + width)
		case i == n.opts.Classes-1:
			mass = 1 - n.dist.CDF(lo)
		}
		out = append(out, Prob{Label: formatValue(mid), P: mass})
	}
	return out
}

func (n *Normal) densityCurve() ProbTable {
	lo, hi := n.mu-3*n.sigma, n.mu+3*n.sigma
	out := make(ProbTable, 0, densityPoints)
	for i := 0; i < densityPoints; i++ {
		x := lo + (hi-lo)*float64(i)/float64(densityPoints-1)
		out = append(out, Prob{Label: formatValue(x), P: n.dist.Prob(x)})
	}
	return out
}
