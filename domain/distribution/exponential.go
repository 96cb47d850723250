package distribution

import (
	"math"

	"randlab/domain/core"

	"gonum.org/v1/gonum/stat/distuv"
)

// ExponentialOptions configures optional discretization of exponential
// samples. Step > 0 rounds each sample to the nearest multiple of Step;
// bounds apply when Max > Min.
type ExponentialOptions struct {
	Step float64
	Min  float64
	Max  float64
}

// Exponential samples inter-event times by the closed-form inverse transform
// x = -ln(1-r)/λ.
type Exponential struct {
	lambda float64
	opts   ExponentialOptions
	dist   distuv.Exponential
}

// NewExponential validates λ > 0
func NewExponential(lambda float64, opts ExponentialOptions) (*Exponential, error) {
	if lambda <= 0 {
		return nil, core.NewParameterError("lambda", "must be positive")
	}
	if opts.Step < 0 {
		return nil, core.NewParameterError("step", "must not be negative")
	}
	return &Exponential{lambda: lambda, opts: opts, dist: distuv.Exponential{Rate: lambda}}, nil
}

// Generate applies the inverse transform to each uniform, then the configured
// rounding and clamping. Discretized samples are capped at the last class
// center so every label has a theoretical class.
func (e *Exponential) Generate(uniforms core.NormalizedSequence) []Sample {
	var last float64
	if e.opts.Step > 0 {
		centers := e.classCenters()
		last = centers[len(centers)-1]
	}
	samples := make([]Sample, 0, len(uniforms))
	for _, r := range uniforms {
		x := -math.Log(1-r) / e.lambda
		if e.opts.Step > 0 {
			x = math.Round(x/e.opts.Step) * e.opts.Step
			if x > last {
				x = last
			}
		}
		x = e.clamp(x)
		samples = append(samples, Sample{Label: formatValue(x), Value: x})
	}
	return samples
}

func (e *Exponential) clamp(x float64) float64 {
	if e.opts.Max <= e.opts.Min {
		return x
	}
	if x < e.opts.Min {
		return e.opts.Min
	}
	if x > e.opts.Max {
		return e.opts.Max
	}
	return x
}

// TheoreticalProbabilities returns per-class mass at each step multiple when
// discretized (CDF differences, so expected counts are true masses), or a
// 100-point density curve over [0, mean+3σ] otherwise. For the exponential,
// mean and standard deviation are both 1/λ.
func (e *Exponential) TheoreticalProbabilities() ProbTable {
	if e.opts.Step > 0 {
		return e.classMasses()
	}
	return e.densityCurve()
}

// FitProbabilities returns the class masses when discretized, nil otherwise:
// a density curve is not a valid fit input.
func (e *Exponential) FitProbabilities() ProbTable {
	if e.opts.Step > 0 {
		return e.classMasses()
	}
	return nil
}

func (e *Exponential) classMasses() ProbTable {
	centers := e.classCenters()
	step := e.opts.Step
	out := make(ProbTable, 0, len(centers))
	for i, c := range centers {
		lower := math.Max(c-step/2, 0)
		mass := e.dist.CDF(c+step/2) - e.dist.CDF(lower)
		// The outermost classes absorb the mass of samples clamped into them
		switch {
		case len(centers) == 1:
			mass = 1
		case i == 0:
			mass = e.dist.CDF(c + step/2)
		case i == len(centers)-1:
			mass = 1 - e.dist.CDF(lower)
		}
		out = append(out, Prob{Label: formatValue(c), P: mass})
	}
	return out
}

// classCenters lists the class centers at step multiples spanning the
// configured or default range. Computing each as k*step keeps labels
// bit-identical to the rounding done in Generate.
func (e *Exponential) classCenters() []float64 {
	lo, hi := e.defaultRange()
	step := e.opts.Step
	centers := make([]float64, 0)
	for k := math.Round(lo / step); ; k++ {
		c := k * step
		if c > hi+step/2 && len(centers) > 0 {
			break
		}
		centers = append(centers, c)
	}
	return centers
}

func (e *Exponential) densityCurve() ProbTable {
	lo, hi := e.defaultRange()
	out := make(ProbTable, 0, densityPoints)
	for i := 0; i < densityPoints; i++ {
		x := lo + (hi-lo)*float64(i)/float64(densityPoints-1)
		out = append(out, Prob{Label: formatValue(x), P: e.dist.Prob(x)})
	}
	return out
}

func (e *Exponential) defaultRange() (float64, float64) {
	if e.opts.Max > e.opts.Min {
		return e.opts.Min, e.opts.Max
	}
	// mean + 3σ = 4/λ
	return 0, 4 / e.lambda
}
