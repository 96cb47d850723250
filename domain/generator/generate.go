package generator

import (
	"fmt"

	"randlab/domain/core"
)

// Generate runs the recurrence described by spec and returns the raw integer
// sequence. Output length is variant-specific: mixed congruential includes
// its seed (n+1 terms), additive and multiplicative drop it (n terms),
// Fibonacci drops both seeds (n terms), mid-square drops the seed and the
// first generated term (n-1 terms), and mid-product keeps both seeds (n+2
// terms). These inconsistencies are part of the reference behavior and are
// preserved for compatibility.
func Generate(spec Spec) (core.RawSequence, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	switch s := spec.(type) {
	case MidSquare:
		return generateMidSquare(s)
	case MidProduct:
		return generateMidProduct(s)
	case Fibonacci:
		return generateFibonacci(s), nil
	case MixedCongruential:
		return generateMixed(s), nil
	case AdditiveCongruential:
		return generateAdditive(s), nil
	case MultiplicativeCongruential:
		return generateMultiplicative(s), nil
	default:
		return nil, core.NewUnknownVariantError("generator", fmt.Sprintf("%T", spec))
	}
}

func generateMidSquare(s MidSquare) (core.RawSequence, error) {
	series := make(core.RawSequence, 0, s.N+1)
	series = append(series, s.X1)

	x := s.X1
	for i := 0; i < s.N; i++ {
		next, err := extractMiddle(x*x, s.D)
		if err != nil {
			return nil, err
		}
		series = append(series, next)
		x = next
	}

	if len(series) <= 2 {
		return core.RawSequence{}, nil
	}
	return series[2:], nil
}

func generateMidProduct(s MidProduct) (core.RawSequence, error) {
	series := make(core.RawSequence, 0, s.N+2)
	series = append(series, s.X1, s.X2)

	x1, x2 := s.X1, s.X2
	for i := 0; i < s.N; i++ {
		next, err := extractMiddle(x1*x2, s.D)
		if err != nil {
			return nil, err
		}
		series = append(series, next)
		x1, x2 = x2, next
	}
	return series, nil
}

func generateFibonacci(s Fibonacci) core.RawSequence {
	series := make(core.RawSequence, 0, s.N+2)
	series = append(series, s.X0, s.X1)

	for i := 0; i < s.N; i++ {
		series = append(series, (series[len(series)-2]+series[len(series)-1])%s.M)
	}
	return series[2:]
}

func generateMixed(s MixedCongruential) core.RawSequence {
	series := make(core.RawSequence, 0, s.N+1)
	series = append(series, s.X0)

	x := s.X0
	for i := 0; i < s.N; i++ {
		x = (s.A*x + s.C) % s.M
		series = append(series, x)
	}
	return series
}

func generateAdditive(s AdditiveCongruential) core.RawSequence {
	series := make(core.RawSequence, 0, s.N)

	x := s.X0
	for i := 0; i < s.N; i++ {
		x = (x + s.C) % s.M
		series = append(series, x)
	}
	return series
}

func generateMultiplicative(s MultiplicativeCongruential) core.RawSequence {
	series := make(core.RawSequence, 0, s.N)

	x := s.X0
	for i := 0; i < s.N; i++ {
		x = (s.A * x) % s.M
		series = append(series, x)
	}
	return series
}
